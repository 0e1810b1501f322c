package transpiler

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/tangzhangming/instacode/internal/i18n"
)

// recognizer 识别并处理一类指令，返回是否已处理
type recognizer func(s *session) bool

// recognizers 按优先级排列，第一个匹配的生效
var recognizers = []recognizer{
	(*session).createVariable,
	(*session).defineFunction,
	(*session).returnStatement,
	(*session).functionCall,
	(*session).createStruct,
	(*session).createStructCollection,
	(*session).inputStructData,
	(*session).iterateStructCollection,
	(*session).sumAndStore,
	(*session).assignElement,
	(*session).assignValue,
	(*session).variableOperation,
	(*session).calculate,
	(*session).userInput,
	(*session).requestNumber,
	(*session).inputValue,
	(*session).binaryArithmetic,
	(*session).sumNumbers,
	(*session).repeat,
	(*session).while,
	(*session).createCollection,
	(*session).iterateSum,
	(*session).addElement,
	(*session).removeElement,
	(*session).sortCollection,
	(*session).iterateCollection,
	(*session).ifCondition,
	(*session).printPairs,
	(*session).printAll,
	(*session).showMessage,
	(*session).readData,
}

// noops 识别但不生成代码的指令
var noops = []string{"comenzar programa", "terminar programa", "inicio", "fin"}

// leadVerbs 用于拼写提示的指令开头词
var leadVerbs = []string{
	"crear", "definir", "retornar", "asignar", "sumar", "restar", "multiplicar",
	"dividir", "calcular", "ingresar", "pedir", "mientras", "repetir", "agregar",
	"eliminar", "quitar", "ordenar", "recorrer", "si", "sino", "mostrar",
	"imprimir", "leer", "cargar", "importar", "llamar",
}

// dispatch 把当前指令交给第一个匹配的识别器
func (s *session) dispatch() {
	text := s.ins.Text
	for _, noop := range noops {
		if text == noop {
			return
		}
	}
	if isContinuation(text) {
		s.handleElse()
		return
	}

	for _, r := range recognizers {
		if r(s) {
			return
		}
	}
	if strings.HasPrefix(text, "guardar los numeros en") {
		return
	}

	message := i18n.T(i18n.ErrUnrecognized, s.ins.Raw)
	if hint := suggest(text); hint != "" {
		message += i18n.T(i18n.MsgDidYouMean, hint)
	}
	s.reportMessage(Unrecognized, message)
}

// suggest 对拼错的开头词给出最接近的指令动词
func suggest(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 || len(words[0]) < 3 {
		return ""
	}
	first := words[0]

	ranks := fuzzy.RankFindFold(first, leadVerbs)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	if ranks[0].Distance == 0 {
		return ""
	}
	return ranks[0].Target
}

package transpiler

import (
	"strconv"
	"strings"

	"github.com/tangzhangming/instacode/internal/i18n"
	"github.com/tangzhangming/instacode/internal/normalize"
	"github.com/tangzhangming/instacode/internal/symbol"
)

// printStatement 生成一条输出语句
func (s *session) printStatement(text string) string {
	return "std::cout << " + s.printValue(text) + " << std::endl;"
}

// printValue 引号文本优先，后接 "y <变量>" 时一并输出；
// 单个已知变量直接输出，其余按字面文本输出
func (s *session) printValue(text string) string {
	text = strings.TrimSpace(text)
	if strings.Count(text, `"`) >= 2 {
		value := normalize.Quote(normalize.QuotedText(text))
		if rest, ok := cutPrefix(normalize.AfterQuote(text), "y ", "junto con ", ","); ok && rest != "" {
			value += " << " + s.expr.Operand(stripArticles(rest))
		}
		return value
	}

	text = strings.TrimSpace(strings.TrimPrefix(text, "el mensaje"))
	if id := normalize.Identifier(stripArticles(text)); text != "" && s.table.HasVariable(id) {
		return id
	}
	return normalize.Quote(text)
}

// showMessage mostrar <mensaje>
func (s *session) showMessage() bool {
	rest, ok := cutPrefix(s.ins.Text, "mostrar ", "imprimir ", "escribir ")
	if !ok {
		return false
	}
	s.emit(s.printStatement(rest))
	return true
}

// sizeExpr 集合长度的 C++ 表达式
func sizeExpr(c *symbol.Collection) string {
	if c.Kind == symbol.Array {
		return strconv.Itoa(c.Length)
	}
	return c.Name + ".size()"
}

// printCollection 逐行输出集合的全部元素
func (s *session) printCollection(c *symbol.Collection) {
	if c.Kind == symbol.Array {
		idx := s.indexName()
		s.loop("for (int "+idx+" = 0; "+idx+" < "+strconv.Itoa(c.Length)+"; ++"+idx+") {",
			"std::cout << "+c.Name+"["+idx+"] << std::endl;")
		return
	}
	item := s.localName("valor")
	s.loop("for (const "+c.ElementType+" &"+item+" : "+c.Name+") {",
		"std::cout << "+item+" << std::endl;")
}

// printAll mostrar todos los elementos de la lista
func (s *session) printAll() bool {
	text := s.ins.Text
	verb := strings.HasPrefix(text, "mostrar ") || strings.HasPrefix(text, "imprimir ")
	if !verb || !strings.Contains(text, "todos los elementos") {
		return false
	}
	starts := strings.HasPrefix(text, "mostrar todos los elementos") || strings.HasPrefix(text, "imprimir todos los elementos")
	if !starts && !strings.Contains(text, "lista") && !strings.Contains(text, "vector") && !strings.Contains(text, "arreglo") {
		return false
	}

	var c *symbol.Collection
	if words := strings.Fields(text); len(words) > 0 {
		c, _ = s.table.CollectionByAlias(words[len(words)-1])
	}
	if c == nil {
		var ok bool
		if c, ok = s.table.LastCollection(); !ok {
			s.report(MissingPrerequisite, i18n.ErrNoCollection)
			return true
		}
	}
	s.printCollection(c)
	return true
}

// printPairs mostrar los paises y sus capitales
func (s *session) printPairs() bool {
	text := s.ins.Text
	if !strings.HasPrefix(text, "mostrar los paises") && !strings.HasPrefix(text, "imprimir los paises") &&
		!(mentionsPrint(text) && strings.Contains(text, "paises") && strings.Contains(text, "capitales")) {
		return false
	}

	countries, ok := s.table.CollectionByAlias("paises")
	if !ok {
		s.report(MissingPrerequisite, i18n.ErrPairsMissing)
		return true
	}
	capitals, ok := s.table.CollectionByAlias("capitales")
	if !ok {
		s.report(MissingPrerequisite, i18n.ErrPairsMissing)
		return true
	}

	idx := s.indexName()
	s.loop("for (std::size_t "+idx+" = 0; "+idx+" < "+sizeExpr(countries)+" && "+idx+" < "+sizeExpr(capitals)+"; ++"+idx+") {",
		"std::cout << "+countries.Name+"["+idx+`] << " - " << `+capitals.Name+"["+idx+"] << std::endl;")
	return true
}

func mentionsPrint(text string) bool {
	return strings.Contains(text, "mostrar") || strings.Contains(text, "imprimir")
}

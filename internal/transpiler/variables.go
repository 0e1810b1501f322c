package transpiler

import (
	"regexp"
	"strings"

	"github.com/tangzhangming/instacode/internal/expr"
	"github.com/tangzhangming/instacode/internal/i18n"
	"github.com/tangzhangming/instacode/internal/normalize"
	"github.com/tangzhangming/instacode/internal/symbol"
)

// 类型短语，较长的在前
var typePhrases = []struct {
	phrase string
	typ    string
}{
	{"numero decimal", symbol.TypeDouble},
	{"numero entero", symbol.TypeInt},
	{"cadena de texto", symbol.TypeString},
	{"texto", symbol.TypeString},
	{"cadena", symbol.TypeString},
	{"booleano", symbol.TypeBool},
	{"decimal", symbol.TypeDouble},
	{"entero", symbol.TypeInt},
}

var (
	variableOpRe = regexp.MustCompile(`^([a-z_][a-z0-9_]*) (sumar|restar|multiplicar por|dividir entre|dividir por) (.+)$`)
	addToRe      = regexp.MustCompile(`^(sumar|restar) (.+?) (?:a|al|de|del) (?:la |el )?([a-z_][a-z0-9_]*)$`)
)

var compoundOps = map[string]string{
	"sumar":           "+=",
	"restar":          "-=",
	"multiplicar por": "*=",
	"dividir entre":   "/=",
	"dividir por":     "/=",
}

// leadingType 匹配开头的类型短语
func leadingType(text string) (typ, rest string) {
	for _, p := range typePhrases {
		if text == p.phrase {
			return p.typ, ""
		}
		if strings.HasPrefix(text, p.phrase+" ") {
			return p.typ, strings.TrimSpace(text[len(p.phrase):])
		}
	}
	return "", text
}

// createVariable crear variable <tipo> <nombre> [con valor inicial <valor>]
func (s *session) createVariable() bool {
	rest, ok := cutPrefix(s.ins.Text, "crear variable ", "crear una variable ", "definir variable ")
	if !ok {
		return false
	}
	typ, rest := leadingType(rest)
	if typ == "" {
		return false
	}

	name, value := rest, ""
	if at := normalize.IndexOutsideQuotes(rest, "con valor inicial"); at >= 0 {
		name = strings.TrimSpace(rest[:at])
		value = strings.TrimSpace(rest[at+len("con valor inicial"):])
	}
	if name == "" {
		name = "variable"
	}
	id := normalize.Identifier(name)

	init := symbol.ZeroValue(typ)
	if value != "" {
		switch typ {
		case symbol.TypeString:
			init = s.expr.Literal(value, normalize.QuotedText(value), typ)
		case symbol.TypeBool:
			init = "false"
			if strings.Contains(value, "verdadero") {
				init = "true"
			}
		default:
			if normalize.IsNumber(value) {
				init = normalize.NumberString(value, typ == symbol.TypeDouble)
			} else {
				init = s.expr.Literal(value, "", typ)
			}
		}
	}

	if s.hasVariable(id) {
		s.emitf("%s = %s;", id, init)
		return true
	}
	if s.collides(id) {
		return true
	}
	s.useType(typ)
	s.emitf("%s %s = %s;", typ, id, init)
	s.addVariable(id, typ, true)
	return true
}

// assignValue asignar [valor] <valor> a <variable>
func (s *session) assignValue() bool {
	rest, ok := cutPrefix(s.ins.Text, "asignar valor ", "asignar ")
	if !ok {
		return false
	}

	at, width := normalize.LastIndexOutsideQuotes(rest, " a "), len(" a ")
	if al := normalize.LastIndexOutsideQuotes(rest, " al "); al > at {
		at, width = al, len(" al ")
	}
	if at < 0 {
		return false
	}
	value := strings.TrimSpace(rest[:at])
	target := strings.TrimSpace(rest[at+width:])
	for _, prefix := range []string{"valor de ", "la variable ", "variable "} {
		target = strings.TrimPrefix(target, prefix)
	}
	target = stripArticles(target)
	if value == "" || target == "" {
		return false
	}

	id := normalize.Identifier(target)
	quoted := normalize.QuotedText(value)
	if !s.hasVariable(id) {
		typ := s.expr.InferType(value, quoted)
		if id = s.ensureVariable(id, typ, symbol.ZeroValue(typ)); id == "" {
			return true
		}
	}

	rhs := s.expr.Literal(value, quoted, s.table.VariableType(id))
	if rhs == "" {
		s.report(StructuralError, i18n.ErrInvalidExpression, value)
		return true
	}
	s.emitf("%s = %s;", id, rhs)
	return true
}

// variableOperation <variable> multiplicar por <valor>、sumar <valor> al <variable> 等复合赋值
func (s *session) variableOperation() bool {
	text := s.ins.Text
	var target, verb, operand string
	if m := variableOpRe.FindStringSubmatch(text); m != nil {
		target, verb, operand = m[1], m[2], m[3]
	} else if m := addToRe.FindStringSubmatch(text); m != nil && !strings.HasPrefix(m[2], "los numeros") {
		verb, operand, target = m[1], m[2], m[3]
	} else {
		return false
	}

	rhs := s.expr.Expression(operand)
	if rhs == "" {
		s.report(StructuralError, i18n.ErrInvalidOperands)
		return true
	}
	typ := symbol.TypeInt
	if expr.IsFloating(rhs) {
		typ = symbol.TypeDouble
	}
	if !s.hasVariable(normalize.Identifier(target)) && !s.table.HasCollection(target) {
		s.report(SemanticWarning, i18n.ErrUnknownVariable, normalize.Identifier(target))
	}
	id := s.ensureVariable(target, typ, symbol.ZeroValue(typ))
	if id == "" {
		return true
	}
	s.emitf("%s %s %s;", id, compoundOps[verb], rhs)
	return true
}

// calculate calcular <expresion> y asignar a <variable>
func (s *session) calculate() bool {
	rest, ok := cutPrefix(s.ins.Text, "calcular ")
	if !ok {
		return false
	}

	var source, target string
	for _, sep := range []string{" y asignar a ", " y asignar al ", " y guardar en ", " y guardarlo en "} {
		if at := normalize.LastIndexOutsideQuotes(rest, sep); at >= 0 {
			source = strings.TrimSpace(rest[:at])
			target = stripArticles(strings.TrimSpace(rest[at+len(sep):]))
			break
		}
	}
	if source == "" || target == "" {
		return false
	}
	if at := strings.Index(source, " como "); at >= 0 {
		source = strings.TrimSpace(source[at+len(" como "):])
	}

	rhs := s.expr.Expression(source)
	if rhs == "" {
		s.report(StructuralError, i18n.ErrInvalidExpression, source)
		return true
	}

	typ := symbol.TypeInt
	if expr.IsFloating(rhs) || strings.Contains(source, "decimal") ||
		strings.Contains(source, "dividir") || strings.Contains(source, "dividido") {
		typ = symbol.TypeDouble
	}
	id := s.ensureVariable(target, typ, symbol.ZeroValue(typ))
	if id == "" {
		return true
	}
	s.emitf("%s = %s;", id, rhs)
	return true
}

var eachInRe = regexp.MustCompile(`^(?:valor |valores )?de cada (.+?) en (?:la |el |los |las )?([a-z_][a-z0-9_]*)$`)

// userInput pedir al usuario ... / ingresar valor de cada <x> en la <coleccion>
func (s *session) userInput() bool {
	text := s.ins.Text
	if rest, ok := cutPrefix(text, "pedir al usuario"); ok {
		if _, hasAny := s.table.LastCollection(); !hasAny {
			noun := "numero"
			for _, verb := range []string{"que ingrese ", "ingresar ", "que introduzca "} {
				if at := strings.Index(rest, verb); at >= 0 {
					noun = stripArticles(strings.TrimSpace(rest[at+len(verb):]))
					break
				}
			}
			s.readScalar(noun)
			return true
		}
		s.collectionInput("")
		return true
	}

	rest, ok := cutPrefix(text, "ingresar ")
	if !ok {
		return false
	}
	if m := eachInRe.FindStringSubmatch(rest); m != nil {
		s.collectionInput(m[2])
		return true
	}
	return false
}

// requestNumber 各种"请用户输入数字"的说法
func (s *session) requestNumber() bool {
	text := s.ins.Text
	has := func(words ...string) bool {
		for _, w := range words {
			if !strings.Contains(text, w) {
				return false
			}
		}
		return true
	}
	if !has("solicitar", "usuario", "numero") && !has("pedir", "ingrese", "consola") {
		return false
	}
	if _, ok := s.table.LastCollection(); ok {
		s.collectionInput("")
		return true
	}
	s.readScalar("numero")
	return true
}

// inputValue ingresar [valor] <variable>
func (s *session) inputValue() bool {
	core, ok := cutPrefix(s.ins.Text, "ingresar valor", "ingresar los valores", "ingresar")
	if !ok {
		return false
	}
	if core == "" {
		s.report(StructuralError, i18n.ErrMissingInputTarget)
		return true
	}
	if strings.Contains(core, "de la lista") || strings.Contains(core, "del vector") ||
		strings.Contains(core, "del arreglo") || strings.HasPrefix(core, "de cada ") {
		alias := ""
		if words := strings.Fields(core); len(words) > 0 {
			alias = words[len(words)-1]
		}
		s.collectionInput(alias)
		return true
	}
	s.readScalar(stripArticles(core))
	return true
}

// readScalar 提示并读取一个标量，变量不存在时声明为 int
func (s *session) readScalar(noun string) {
	id := normalize.Identifier(noun)
	if !s.hasVariable(id) {
		if s.collides(id) {
			return
		}
		s.emitf("int %s;", id)
		s.addVariable(id, symbol.TypeInt, false)
	}
	s.emitf("std::cout << %s;", normalize.Quote(inputPrompt(id)))
	s.emitf("std::cin >> %s;", id)
}

func inputPrompt(id string) string {
	switch id {
	case "x", "numero":
		return "Ingrese un número: "
	case "edad":
		return "Ingrese la edad: "
	}
	return "Ingrese el " + strings.ReplaceAll(id, "_", " ") + ": "
}

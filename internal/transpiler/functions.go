package transpiler

import (
	"regexp"
	"strings"

	"github.com/tangzhangming/instacode/internal/i18n"
	"github.com/tangzhangming/instacode/internal/normalize"
	"github.com/tangzhangming/instacode/internal/symbol"
)

var (
	functionHeadRe = regexp.MustCompile(`^((?:numero(?: entero| decimal)?|entero|decimal|texto|cadena(?: de texto)?|booleano)) ([a-z_][a-z0-9_]*)(?: con (?:el |los )?parametros? (.+))?$`)
	functionBareRe = regexp.MustCompile(`^([a-z_][a-z0-9_]*)(?: con (?:el |los )?parametros? (.+))?$`)
	paramRe        = regexp.MustCompile(`^(?:(.+) )?([a-z_][a-z0-9_]*)$`)
	callAssignRe   = regexp.MustCompile(`^asignar (?:el )?valor (?:a|al) ([a-z_][a-z0-9_]*) con (?:llamar|llamada|el resultado de llamar) (?:a )?(?:la )?funcion ([a-z_][a-z0-9_]*) ?\(([^)]*)\)$`)
	callRe         = regexp.MustCompile(`^llamar (?:a )?(?:la )?funcion ([a-z_][a-z0-9_]*) ?\(([^)]*)\)$`)
)

// typeFromPhrase 参数或返回值的类型短语，默认 int
func typeFromPhrase(phrase string) string {
	switch {
	case strings.Contains(phrase, "entero"):
		return symbol.TypeInt
	case strings.Contains(phrase, "decimal"):
		return symbol.TypeDouble
	case strings.Contains(phrase, "texto"), strings.Contains(phrase, "cadena"):
		return symbol.TypeString
	case strings.Contains(phrase, "booleano"):
		return symbol.TypeBool
	}
	return symbol.TypeInt
}

// defineFunction definir funcion <tipo> <nombre> [con parametro <tipo> <nombre> [y ...]]
func (s *session) defineFunction() bool {
	rest, ok := cutPrefix(s.ins.Text, "definir funcion ", "definir la funcion ", "crear funcion ")
	if !ok {
		return false
	}

	var returnType, name, params string
	if m := functionHeadRe.FindStringSubmatch(rest); m != nil {
		returnType, name, params = typeFromPhrase(m[1]), m[2], m[3]
	} else if m := functionBareRe.FindStringSubmatch(rest); m != nil {
		returnType, name, params = "void", m[1], m[2]
	} else {
		return false
	}

	id := normalize.Identifier(name)
	if s.fn != nil {
		s.report(StructuralError, i18n.ErrNestedFunction, id, s.fn.Name)
		return true
	}

	f := &symbol.Function{Name: id, ReturnType: returnType}
	if params != "" {
		for _, p := range splitList(params) {
			m := paramRe.FindStringSubmatch(p)
			if m == nil {
				continue
			}
			f.Params = append(f.Params, symbol.Param{
				Name: normalize.Identifier(m[2]),
				Type: typeFromPhrase(m[1]),
			})
		}
	}
	s.openFunction(f)
	return true
}

// returnStatement retornar [<expresion>]，同时结束当前函数
func (s *session) returnStatement() bool {
	text := s.ins.Text
	if text != "retornar" && !strings.HasPrefix(text, "retornar ") {
		return false
	}
	if s.fn == nil {
		s.report(StructuralError, i18n.ErrReturnOutsideFunction)
		return true
	}

	for n := s.blocks.CountInFunction(); n > 0; n-- {
		s.closeBlock()
	}
	value := s.expr.Expression(stripArticles(strings.TrimSpace(strings.TrimPrefix(text, "retornar"))))
	if value == "" {
		s.emit("return;")
	} else {
		s.emitf("return %s;", value)
	}
	s.closeFunction()
	return true
}

// functionCall asignar valor a <var> con llamar funcion <f>(<args>) / llamar funcion <f>(<args>)
func (s *session) functionCall() bool {
	text := s.ins.Text
	if m := callRe.FindStringSubmatch(text); m != nil {
		name := s.callee(m[1])
		s.emitf("%s(%s);", name, s.arguments(m[2]))
		return true
	}

	m := callAssignRe.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	target := normalize.Identifier(m[1])
	name := s.callee(m[2])
	if !s.hasVariable(target) {
		if s.collides(target) {
			return true
		}
		typ := symbol.TypeInt
		if f, ok := s.table.Function(name); ok && f.ReturnType != "void" {
			typ = f.ReturnType
		}
		s.useType(typ)
		s.emitf("%s %s;", typ, target)
		s.addVariable(target, typ, false)
	}
	s.emitf("%s = %s(%s);", target, name, s.arguments(m[3]))
	return true
}

// callee 返回函数名，未定义时给出提示
func (s *session) callee(name string) string {
	id := normalize.Identifier(name)
	if _, ok := s.table.Function(id); !ok {
		s.report(SemanticWarning, i18n.ErrFunctionNotFound, id)
	}
	return id
}

func (s *session) arguments(list string) string {
	var args []string
	for _, arg := range splitList(list) {
		if translated := s.expr.Expression(arg); translated != "" {
			args = append(args, translated)
		}
	}
	return strings.Join(args, ", ")
}

// splitList 按 ", " 或 " y " 切分列表，引号内不切分
func splitList(list string) []string {
	var items []string
	for _, part := range splitOutsideQuotes(list, ",") {
		for _, item := range splitOutsideQuotes(part, " y ") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

func splitOutsideQuotes(s, sep string) []string {
	var parts []string
	for {
		at := normalize.IndexOutsideQuotes(s, sep)
		if at < 0 {
			return append(parts, s)
		}
		parts = append(parts, s[:at])
		s = s[at+len(sep):]
	}
}

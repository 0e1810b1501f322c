package transpiler

import (
	"regexp"
	"strings"

	"github.com/tangzhangming/instacode/internal/i18n"
	"github.com/tangzhangming/instacode/internal/normalize"
	"github.com/tangzhangming/instacode/internal/symbol"
)

var (
	binaryRe   = regexp.MustCompile(`^(sumar|restar|multiplicar) (.+?) (?:y|por|con) (.+)$`)
	divideRe   = regexp.MustCompile(`^dividir (.+?) (?:entre|por) (.+)$`)
	storeSumRe = regexp.MustCompile(`^(.+) y (?:guardar|guardarlo|almacenar)(?: el resultado)? en (?:la |el )?([a-z_][a-z0-9_]*)$`)
)

var binaryOps = map[string]string{
	"sumar":       "+",
	"restar":      "-",
	"multiplicar": "*",
	"dividir":     "/",
}

// sumAndStore sumar los numeros ... y mostrar el resultado / y guardar en <variable>
func (s *session) sumAndStore() bool {
	rest, ok := cutPrefix(s.ins.Text, "sumar los numeros", "sumar los valores")
	if !ok {
		return false
	}
	if at := strings.Index(rest, "y mostrar el resultado"); at >= 0 {
		numbers := normalize.Numbers(rest[:at])
		if len(numbers) == 0 {
			s.report(StructuralError, i18n.ErrInvalidOperands)
			return true
		}
		name := s.tempName("resultado")
		s.accumulate(name, numbers, true)
		return true
	}
	if m := storeSumRe.FindStringSubmatch(rest); m != nil {
		numbers := normalize.Numbers(m[1])
		if len(numbers) == 0 {
			s.report(StructuralError, i18n.ErrInvalidOperands)
			return true
		}
		s.accumulate(normalize.Identifier(m[2]), numbers, false)
		return true
	}
	return false
}

// sumNumbers sumar los numeros 1, 2 y 3：累加到临时变量并输出
func (s *session) sumNumbers() bool {
	rest, ok := cutPrefix(s.ins.Text, "sumar los numeros", "sumar los valores")
	if !ok {
		return false
	}
	numbers := normalize.Numbers(rest)
	if len(numbers) == 0 {
		s.report(StructuralError, i18n.ErrInvalidOperands)
		return true
	}
	s.accumulate(s.tempName("suma"), numbers, true)
	return true
}

// accumulate 声明（或沿用）累加变量，逐个加上数字，可选输出结果
func (s *session) accumulate(name string, numbers []string, show bool) {
	floating := false
	for _, n := range numbers {
		if normalize.IsDecimal(n) {
			floating = true
		}
	}
	if s.table.VariableType(name) == symbol.TypeDouble {
		floating = true
	}

	typ := symbol.TypeInt
	if floating {
		typ = symbol.TypeDouble
	}
	if !s.hasVariable(name) {
		if s.collides(name) {
			return
		}
		s.emitf("%s %s = %s;", typ, name, symbol.ZeroValue(typ))
		s.addVariable(name, typ, false)
	}
	for _, n := range numbers {
		s.emitf("%s += %s;", name, normalize.NumberString(n, floating))
	}
	if show {
		s.emitf("std::cout << %s << std::endl;", name)
	}
}

// binaryArithmetic sumar a y b / restar a y b / multiplicar a por b / dividir a entre b
func (s *session) binaryArithmetic() bool {
	text := s.ins.Text
	if strings.HasPrefix(text, "sumar los numeros") || strings.HasPrefix(text, "sumar los valores") {
		return false
	}

	var verb, left, right string
	if m := binaryRe.FindStringSubmatch(text); m != nil {
		verb, left, right = m[1], m[2], m[3]
	} else if m := divideRe.FindStringSubmatch(text); m != nil {
		verb, left, right = "dividir", m[1], m[2]
	} else {
		return false
	}

	a := s.expr.Operand(stripArticles(left))
	b := s.expr.Operand(stripArticles(right))
	if a == "" || b == "" {
		s.report(StructuralError, i18n.ErrInvalidOperands)
		return true
	}

	typ := symbol.TypeInt
	if s.floatingOperand(left) || s.floatingOperand(right) {
		typ = symbol.TypeDouble
	}
	name := s.tempName("resultado")
	s.emitf("%s %s = %s %s %s;", typ, name, a, binaryOps[verb], b)
	s.addVariable(name, typ, false)
	s.emitf("std::cout << %s << std::endl;", name)
	return true
}

// floatingOperand 小数字面量或 double 变量
func (s *session) floatingOperand(text string) bool {
	text = stripArticles(strings.TrimSpace(text))
	if normalize.IsNumber(text) {
		return normalize.IsDecimal(text)
	}
	return s.table.VariableType(normalize.Identifier(text)) == symbol.TypeDouble
}

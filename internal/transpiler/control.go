package transpiler

import (
	"regexp"
	"strings"

	"github.com/tangzhangming/instacode/internal/block"
	"github.com/tangzhangming/instacode/internal/i18n"
	"github.com/tangzhangming/instacode/internal/normalize"
	"github.com/tangzhangming/instacode/internal/symbol"
)

var (
	repeatRe        = regexp.MustCompile(`^repetir (\d+) veces(?:,? (?:mostrar|imprimir) (.+))?$`)
	whileIncreaseRe = regexp.MustCompile(`^mientras (?:el |la )?([a-z_][a-z0-9_]*) (?:sea |es )?menor que (-?\d+(?:[.,]\d+)?),? sumar (-?\d+(?:[.,]\d+)?) (?:al|a la|a) ([a-z_][a-z0-9_]*)$`)
)

// repeat repetir <n> veces [mostrar <mensaje>]
func (s *session) repeat() bool {
	m := repeatRe.FindStringSubmatch(s.ins.Text)
	if m == nil {
		return false
	}
	idx := s.indexName()
	header := "for (int " + idx + " = 0; " + idx + " < " + m[1] + "; ++" + idx + ") {"
	if m[2] == "" {
		s.open(header, block.Loop, idx)
		return true
	}

	message := normalize.QuotedText(m[2])
	if message == "" {
		message = strings.TrimSpace(strings.TrimPrefix(m[2], "el mensaje"))
	}
	s.loop(header, "std::cout << "+normalize.Quote(message)+" << std::endl;")
	return true
}

// while mientras <condicion>
func (s *session) while() bool {
	rest, ok := cutPrefix(s.ins.Text, "mientras ")
	if !ok {
		return false
	}

	if m := whileIncreaseRe.FindStringSubmatch(s.ins.Text); m != nil && m[1] == m[4] {
		id := s.ensureVariable(m[1], symbol.TypeDouble, symbol.ZeroValue(symbol.TypeDouble))
		if id == "" {
			return true
		}
		floating := s.table.VariableType(id) == symbol.TypeDouble
		s.loop("while ("+id+" < "+normalize.NumberString(m[2], floating)+") {",
			id+" += "+normalize.NumberString(m[3], floating)+";")
		return true
	}

	rest = strings.TrimSuffix(strings.TrimSuffix(rest, " hacer"), ":")
	cond, ok := s.expr.Condition(rest)
	if !ok {
		s.report(StructuralError, i18n.ErrInvalidCondition, rest)
		return true
	}
	s.open("while ("+cond+") {", block.Loop, "")
	return true
}

// splitAction 把 "<condicion> mostrar <accion>" 切成两部分
func splitAction(text string) (cond, action string) {
	at := -1
	for _, verb := range []string{" mostrar ", " imprimir "} {
		if i := normalize.IndexOutsideQuotes(text, verb); i >= 0 && (at < 0 || i < at) {
			at = i
		}
	}
	if at < 0 {
		return text, ""
	}
	return strings.TrimSpace(text[:at]), strings.TrimSpace(text[at+1:])
}

// cleanCondition 去掉条件末尾的 "entonces" 和标点
func cleanCondition(text string) string {
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ","))
	text = strings.TrimSuffix(text, " entonces")
	return strings.TrimSpace(strings.TrimSuffix(text, ","))
}

// ifCondition si <condicion> [mostrar <mensaje>]
func (s *session) ifCondition() bool {
	rest, ok := cutPrefix(s.ins.Text, "si ")
	if !ok {
		return false
	}
	condText, action := splitAction(rest)
	condText = cleanCondition(condText)
	cond, ok := s.expr.Condition(condText)
	if !ok {
		s.report(StructuralError, i18n.ErrInvalidCondition, condText)
		return true
	}

	s.open("if ("+cond+") {", block.Conditional, "")
	if action != "" {
		s.emit(s.printStatement(actionText(action)))
	}
	return true
}

// handleElse sino / sino si <condicion>
func (s *session) handleElse() {
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(s.ins.Text, "sino"), ","))

	if cond, ok := cutPrefix(rest, "si "); ok {
		condText, action := splitAction(cond)
		condText = cleanCondition(condText)
		translated, valid := s.expr.Condition(condText)
		if !valid {
			s.report(StructuralError, i18n.ErrInvalidCondition, condText)
			return
		}
		if err := s.blocks.ElseIf(s.ins.Indent); err != nil {
			s.elseError(err)
			return
		}
		s.reopen("} else if (" + translated + ") {")
		if action != "" {
			s.emit(s.printStatement(actionText(action)))
		}
		return
	}

	if err := s.blocks.Else(s.ins.Indent); err != nil {
		s.elseError(err)
		return
	}
	s.reopen("} else {")
	if action, ok := cutPrefix(rest, "mostrar ", "imprimir "); ok {
		s.emit(s.printStatement(action))
	}
}

// actionText 去掉动作开头的 mostrar/imprimir
func actionText(action string) string {
	if rest, ok := cutPrefix(action, "mostrar ", "imprimir "); ok {
		return rest
	}
	return action
}

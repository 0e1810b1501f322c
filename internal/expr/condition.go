package expr

import (
	"regexp"
	"strings"

	"github.com/tangzhangming/instacode/internal/normalize"
)

const marker = "\x01"

// 比较短语，较长的在前
var comparisons = []struct {
	re *regexp.Regexp
	op string
}{
	{regexp.MustCompile(`\bmayor o igual (?:que|a)\b`), ">="},
	{regexp.MustCompile(`\bmenor o igual (?:que|a)\b`), "<="},
	{regexp.MustCompile(`\b(?:diferente|distinto) (?:de|a)\b`), "!="},
	{regexp.MustCompile(`\bmayor (?:que|a)\b`), ">"},
	{regexp.MustCompile(`\bmenor (?:que|a)\b`), "<"},
	{regexp.MustCompile(`\bigual (?:que|a)\b`), "=="},
}

var copulas = []string{" es", " sea", " esta"}

// Condition 翻译条件短语，例如 "edad mayor que 18 y activo"。
// 任一子句无法翻译时返回 false。
func (t *Translator) Condition(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	marked := outsideQuotes(text, func(s string) string {
		for _, c := range comparisons {
			s = c.re.ReplaceAllString(s, marker+c.op+marker)
		}
		return s
	})

	clauses, connectives := splitLogical(marked)
	var sb strings.Builder
	for i, clause := range clauses {
		translated, ok := t.clause(clause)
		if !ok {
			return "", false
		}
		if i > 0 {
			sb.WriteString(" " + connectives[i-1] + " ")
		}
		sb.WriteString(translated)
	}
	return sb.String(), true
}

func (t *Translator) clause(clause string) (string, bool) {
	clause = strings.TrimSpace(clause)
	start := strings.Index(clause, marker)
	if start < 0 {
		negated := false
		if strings.HasPrefix(clause, "no ") {
			negated = true
			clause = strings.TrimPrefix(clause, "no ")
		}
		clause = trimCopula(clause)
		operand := t.Expression(clause)
		if operand == "" {
			return "", false
		}
		if negated {
			return "!" + operand, true
		}
		return operand, true
	}

	end := strings.Index(clause[start+1:], marker) + start + 1
	op := clause[start+1 : end]
	left := t.Expression(trimCopula(clause[:start]))
	right := t.Expression(clause[end+1:])
	if left == "" || right == "" {
		return "", false
	}

	if op == "==" {
		switch right {
		case "false":
			return "!" + left, true
		case "true":
			return left, true
		}
	}
	return left + " " + op + " " + right, true
}

func trimCopula(s string) string {
	s = strings.TrimSpace(s)
	for _, c := range copulas {
		if strings.HasSuffix(s, c) {
			return strings.TrimSpace(strings.TrimSuffix(s, c))
		}
	}
	return s
}

// splitLogical 在引号外按 " y " / " o " 切分子句
func splitLogical(s string) ([]string, []string) {
	var clauses, connectives []string
	for {
		andAt := normalize.IndexOutsideQuotes(s, " y ")
		orAt := normalize.IndexOutsideQuotes(s, " o ")
		at, op := andAt, "&&"
		if at < 0 || (orAt >= 0 && orAt < at) {
			at, op = orAt, "||"
		}
		if at < 0 {
			break
		}
		clauses = append(clauses, s[:at])
		connectives = append(connectives, op)
		s = s[at+3:]
	}
	return append(clauses, s), connectives
}

// outsideQuotes 只对引号外的片段应用 f
func outsideQuotes(s string, f func(string) string) string {
	parts := strings.Split(s, `"`)
	for i := range parts {
		if i%2 == 0 {
			parts[i] = f(parts[i])
		}
	}
	return strings.Join(parts, `"`)
}

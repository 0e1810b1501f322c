// Package expr 把指令中的算术、比较短语翻译为 C++ 表达式。
package expr

import (
	"regexp"
	"strings"

	"github.com/tangzhangming/instacode/internal/normalize"
	"github.com/tangzhangming/instacode/internal/symbol"
)

// Symbols 翻译时需要查询的符号信息，*symbol.Table 实现了该接口
type Symbols interface {
	HasVariable(name string) bool
	HasCollection(name string) bool
	VariableType(name string) string
	CollectionByAlias(alias string) (*symbol.Collection, bool)
}

// Translator 表达式翻译器
type Translator struct {
	syms Symbols

	// Declare 在表达式隐式引入变量时被调用（例如 "el numero"）
	Declare func(name, typ string)
}

// New 创建翻译器
func New(syms Symbols) *Translator {
	return &Translator{syms: syms}
}

var (
	tokenRe = regexp.MustCompile(`"[^"]*"|\d+(?:[.,]\d+)?|[\p{L}_][\p{L}\p{N}_]*(?:\[[^\]]*\])?|[-+*/%()]|\S`)
	indexRe = regexp.MustCompile(`^([\p{L}_][\p{L}\p{N}_]*)\[([^\]]*)\]$`)
)

// 运算符短语，多词短语在前
var operatorPhrases = []struct {
	words []string
	op    string
}{
	{[]string{"multiplicado", "por"}, "*"},
	{[]string{"dividido", "entre"}, "/"},
	{[]string{"dividido", "por"}, "/"},
	{[]string{"modulo", "de"}, "%"},
	{[]string{"mas"}, "+"},
	{[]string{"menos"}, "-"},
	{[]string{"por"}, "*"},
	{[]string{"entre"}, "/"},
	{[]string{"dividir"}, "/"},
	{[]string{"modulo"}, "%"},
}

var articles = map[string]bool{"el": true, "la": true, "los": true, "las": true, "un": true, "una": true}

// Expression 翻译一个算术表达式
func (t *Translator) Expression(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	switch strings.ToLower(text) {
	case "verdadero", "true":
		return "true"
	case "falso", "false":
		return "false"
	}

	tokens := tokenRe.FindAllString(text, -1)
	var out []string
	var phrase []string
	afterDivide := false

	flush := func() {
		if len(phrase) == 0 {
			return
		}
		operand := t.Operand(strings.Join(phrase, " "))
		if afterDivide && normalize.IsNumber(operand) {
			operand = normalize.NumberString(operand, true)
		}
		out = append(out, operand)
		phrase = phrase[:0]
		afterDivide = false
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		lower := strings.ToLower(tok)

		if op, n := matchOperator(tokens, i); n > 0 {
			flush()
			out = append(out, op)
			afterDivide = op == "/"
			i += n - 1
			continue
		}

		switch {
		case strings.ContainsAny(tok, "+-*/%") && len(tok) == 1:
			flush()
			out = append(out, tok)
			afterDivide = tok == "/"
		case tok == "(" || tok == ")":
			flush()
			out = append(out, tok)
		case strings.HasPrefix(tok, `"`):
			flush()
			out = append(out, t.Operand(tok))
		case normalize.IsNumber(tok):
			flush()
			phrase = append(phrase, tok)
			flush()
		default:
			phrase = append(phrase, lower)
		}
	}
	flush()

	result := strings.Join(out, " ")
	result = strings.ReplaceAll(result, "( ", "(")
	result = strings.ReplaceAll(result, " )", ")")
	return result
}

func matchOperator(tokens []string, i int) (string, int) {
	for _, p := range operatorPhrases {
		if i+len(p.words) > len(tokens) {
			continue
		}
		matched := true
		for j, w := range p.words {
			if strings.ToLower(tokens[i+j]) != w {
				matched = false
				break
			}
		}
		if matched {
			return p.op, len(p.words)
		}
	}
	return "", 0
}

// Operand 翻译单个操作数：数字、布尔、字符串、变量或集合下标
func (t *Translator) Operand(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) {
		return normalize.Quote(trimmed[1 : len(trimmed)-1])
	}
	if normalize.IsNumber(trimmed) {
		return normalize.NumberString(trimmed, normalize.IsDecimal(trimmed))
	}

	lower := strings.ToLower(trimmed)
	switch lower {
	case "verdadero", "true":
		return "true"
	case "falso", "false":
		return "false"
	}

	if m := indexRe.FindStringSubmatch(lower); m != nil {
		return t.indexed(m[1], m[2])
	}

	if id := normalize.Identifier(lower); t.syms.HasVariable(id) || t.syms.HasCollection(id) {
		return id
	}

	words := strings.Fields(lower)
	for len(words) > 1 && articles[words[0]] {
		words = words[1:]
	}
	stripped := strings.Join(words, " ")
	id := normalize.Identifier(stripped)
	if id == "numero" && !t.syms.HasVariable(id) && t.Declare != nil {
		t.Declare(id, symbol.TypeInt)
	}
	return id
}

func (t *Translator) indexed(name, index string) string {
	collection := normalize.Identifier(name)
	if !t.syms.HasCollection(collection) {
		if c, ok := t.syms.CollectionByAlias(name); ok {
			collection = c.Name
		}
	}

	index = strings.TrimSpace(index)
	if normalize.IsNumber(index) {
		index = normalize.NumberString(index, false)
	} else {
		index = t.Expression(index)
	}
	return collection + "[" + index + "]"
}

// IsFloating 判断翻译后的表达式是否产生浮点结果
func IsFloating(expr string) bool {
	inQuote := false
	for _, ch := range expr {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '.', ch == '/':
			return true
		}
	}
	return false
}

// InferType 根据赋值推断新变量的类型。
// 引号文本为 string，verdadero/falso 为 bool，小数为 double，
// 已知的单个变量沿用其类型，其余为 int。
func (t *Translator) InferType(value, quoted string) string {
	value = strings.TrimSpace(value)
	if quoted != "" || strings.HasPrefix(value, `"`) {
		return symbol.TypeString
	}
	switch strings.ToLower(value) {
	case "verdadero", "falso", "true", "false":
		return symbol.TypeBool
	}
	if normalize.IsNumber(value) {
		if normalize.IsDecimal(value) {
			return symbol.TypeDouble
		}
		return symbol.TypeInt
	}
	if typ := t.syms.VariableType(normalize.Identifier(value)); typ != "" {
		return typ
	}
	return symbol.TypeInt
}

// Literal 按目标类型格式化一个值；quoted 为原始行中的引号文本
func (t *Translator) Literal(value, quoted, typ string) string {
	value = strings.TrimSpace(value)
	switch typ {
	case symbol.TypeString:
		if quoted != "" {
			return normalize.Quote(quoted)
		}
		if id := normalize.Identifier(value); value != "" && t.syms.HasVariable(id) && t.syms.VariableType(id) == symbol.TypeString {
			return id
		}
		return normalize.Quote(strings.Trim(value, `"`))
	case symbol.TypeBool:
		switch strings.ToLower(value) {
		case "verdadero", "true":
			return "true"
		case "falso", "false", "":
			return "false"
		}
		if id := normalize.Identifier(value); t.syms.HasVariable(id) {
			return id
		}
		return "false"
	case symbol.TypeDouble:
		if value == "" || normalize.IsNumber(value) {
			return normalize.NumberString(value, true)
		}
		return t.Expression(value)
	case symbol.TypeInt:
		if value == "" || normalize.IsNumber(value) {
			return normalize.NumberString(value, false)
		}
		return t.Expression(value)
	}
	return t.Expression(value)
}

package transpiler

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// 结构体字段列表："nombre (texto), edad (entero) y nota (decimal)"
var fieldLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type fieldList struct {
	Fields []*fieldDecl `parser:"@@ ( ( \",\" | \"y\" )? @@ )*"`
}

type fieldDecl struct {
	Name string   `parser:"@Ident"`
	Type []string `parser:"\"(\" @( Ident | Number )+ \")\""`
}

var fieldParser = participle.MustBuild[fieldList](
	participle.Lexer(fieldLexer),
	participle.Elide("Whitespace"),
)

// fieldRe 语法解析失败时逐个提取 "名称 (类型)"
var fieldRe = regexp.MustCompile(`([a-z_][a-z0-9_]*) ?\(([^)]+)\)`)

// fieldSpec 解析出的字段名和类型短语
type fieldSpec struct {
	name   string
	phrase string
}

// parseFields 解析字段列表，格式不规整时退回到正则提取
func parseFields(text string) []fieldSpec {
	var specs []fieldSpec
	if list, err := fieldParser.ParseString("", text); err == nil {
		for _, f := range list.Fields {
			specs = append(specs, fieldSpec{name: f.Name, phrase: strings.Join(f.Type, " ")})
		}
		return specs
	}

	for _, m := range fieldRe.FindAllStringSubmatch(text, -1) {
		specs = append(specs, fieldSpec{name: m[1], phrase: strings.TrimSpace(m[2])})
	}
	return specs
}

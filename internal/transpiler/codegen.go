package transpiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tangzhangming/instacode/internal/symbol"
)

// CodeGen 把会话收集的各部分组装成完整的 C++ 程序
type CodeGen struct {
	builder strings.Builder
	indent  int
	unit    string // 一级缩进
}

// NewCodeGen 创建一个新的代码生成器
func NewCodeGen(unit string) *CodeGen {
	return &CodeGen{unit: unit}
}

// assemble 组装当前会话的程序
func (s *session) assemble() string {
	g := NewCodeGen(s.cfg.IndentUnit())
	return g.Generate(s.includes, s.table.Structs(), s.table.Functions(), s.startup, s.main.lines)
}

// Generate 按 头文件、结构体、函数、main 的顺序生成代码
func (g *CodeGen) Generate(includes map[string]bool, structs []*symbol.Struct, functions []*symbol.Function, startup, body []string) string {
	g.builder.Reset()

	g.generateIncludes(includes)

	for _, st := range structs {
		g.generateStruct(st)
		g.writeLine("")
	}

	for _, f := range functions {
		g.generateFunction(f)
		g.writeLine("")
	}

	g.writeLine("int main() {")
	g.writeRaw(startup)
	if len(startup) > 0 && len(body) > 0 {
		g.writeLine("")
	}
	g.writeRaw(body)
	g.indent++
	g.writeLine("return 0;")
	g.indent--
	g.writeLine("}")

	return g.builder.String()
}

// generateIncludes 排序后生成 #include
func (g *CodeGen) generateIncludes(includes map[string]bool) {
	var headers []string
	for header := range includes {
		headers = append(headers, header)
	}
	sort.Strings(headers)

	for _, header := range headers {
		g.writeLine(fmt.Sprintf("#include <%s>", header))
	}
	g.writeLine("")
}

// generateStruct 生成结构体定义
func (g *CodeGen) generateStruct(st *symbol.Struct) {
	g.writeLine(fmt.Sprintf("struct %s {", st.Name))
	g.indent++
	for _, f := range st.Fields {
		g.writeLine(fmt.Sprintf("%s %s;", f.Type, f.Name))
	}
	g.indent--
	g.writeLine("};")
}

// generateFunction 生成函数定义，函数体已缩进
func (g *CodeGen) generateFunction(f *symbol.Function) {
	g.writeLine(f.Signature() + " {")
	g.writeRaw(f.Body)
	g.writeLine("}")
}

// writeRaw 原样写入已缩进的行
func (g *CodeGen) writeRaw(lines []string) {
	for _, line := range lines {
		g.builder.WriteString(line)
		g.builder.WriteString("\n")
	}
}

// writeLine 写入一行
func (g *CodeGen) writeLine(s string) {
	if s != "" {
		g.writeIndent()
	}
	g.builder.WriteString(s)
	g.builder.WriteString("\n")
}

// writeIndent 写入缩进
func (g *CodeGen) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.builder.WriteString(g.unit)
	}
}

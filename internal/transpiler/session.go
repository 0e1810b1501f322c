package transpiler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tangzhangming/instacode/internal/block"
	"github.com/tangzhangming/instacode/internal/config"
	"github.com/tangzhangming/instacode/internal/expr"
	"github.com/tangzhangming/instacode/internal/i18n"
	"github.com/tangzhangming/instacode/internal/normalize"
	"github.com/tangzhangming/instacode/internal/symbol"
)

// Instruction 一行指令
type Instruction struct {
	Raw    string // 去掉首尾空白的原始文本
	Text   string // 规范化文本，引号内原样保留
	Indent int    // 行首空白字符数
	Line   int    // 从 1 开始的行号
}

// newInstruction 解析一行输入，空行返回 false
func newInstruction(raw string, line int) (Instruction, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Instruction{}, false
	}
	indent := strings.IndexFunc(raw, func(r rune) bool { return !unicode.IsSpace(r) })
	if indent < 0 {
		indent = 0
	}

	text := normalize.Instruction(trimmed)
	text = strings.TrimSpace(strings.TrimSuffix(text, "."))
	return Instruction{Raw: trimmed, Text: text, Indent: indent, Line: line}, true
}

// isContinuation "sino" / "sino si" 接续行
func isContinuation(text string) bool {
	return text == "sino" || strings.HasPrefix(text, "sino ") || strings.HasPrefix(text, "sino,")
}

// writer 按缩进级别收集代码行
type writer struct {
	unit  string
	level int
	lines []string
}

func (w *writer) emit(line string) {
	if line == "" {
		w.lines = append(w.lines, "")
		return
	}
	w.lines = append(w.lines, strings.Repeat(w.unit, w.level)+line)
}

// session 一次翻译会话，独占全部可变状态
type session struct {
	cfg      *config.Config
	input    Input
	dataFile string

	table  *symbol.Table
	blocks block.Stack
	expr   *expr.Translator

	includes map[string]bool
	startup  []string
	main     writer

	fn     *symbol.Function            // 正在定义的函数
	body   writer                      // 函数体
	locals map[string]*symbol.Variable // 函数内注册的变量及其遮蔽的外层变量

	diagnostics []Diagnostic
	success     bool
	temp        int
	dataWritten bool

	ins Instruction // 当前指令
}

func newSession(cfg *config.Config, in Input) *session {
	unit := cfg.IndentUnit()
	s := &session{
		cfg:      cfg,
		input:    in,
		table:    symbol.New(),
		includes: map[string]bool{"iostream": true},
		main:     writer{unit: unit, level: 1},
		success:  true,
		temp:     1,
	}

	s.dataFile = strings.TrimSpace(in.DataFileName)
	if s.dataFile == "" {
		s.dataFile = cfg.Data.File
	}
	if s.dataFile == "" {
		s.dataFile = config.DefaultDataFile
	}

	s.expr = expr.New(s.table)
	s.expr.Declare = func(name, typ string) {
		s.ensureVariable(name, typ, symbol.ZeroValue(typ))
	}
	return s
}

// run 处理全部指令并组装程序
func (s *session) run() Output {
	if s.needsData() && strings.TrimSpace(s.input.DataFileContents) == "" {
		s.fail(MissingPrerequisite, i18n.ErrDataRequired)
		return s.output("")
	}

	for n, raw := range strings.Split(s.input.Instructions, "\n") {
		ins, ok := newInstruction(raw, n+1)
		if !ok {
			continue
		}
		s.ins = ins
		s.closeBlocks(block.ToClose(s.blocks.Blocks(), ins.Indent, isContinuation(ins.Text)))
		s.dispatch()
	}
	s.finish()
	return s.output(s.assemble())
}

// finish 关闭剩余的块和未结束的函数
func (s *session) finish() {
	s.ins = Instruction{}
	for s.blocks.Len() > 0 {
		s.closeBlock()
	}
	if s.fn != nil {
		s.report(SemanticWarning, i18n.ErrUnclosedFunction, s.fn.Name)
		s.closeFunction()
	}
}

func (s *session) output(code string) Output {
	out := Output{
		Code:        code,
		Success:     s.success,
		Diagnostics: s.diagnostics,
		Symbols:     s.table.Snapshot(),
	}
	for _, d := range s.diagnostics {
		out.Issues = append(out.Issues, d.Message)
	}
	return out
}

// report 记录一条诊断
func (s *session) report(kind Kind, key string, args ...any) {
	s.reportMessage(kind, i18n.T(key, args...))
}

func (s *session) reportMessage(kind Kind, message string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Kind: kind, Line: s.ins.Line, Message: message})
	if kind.Fatal() {
		s.success = false
	}
}

// fail 记录诊断并使整次转换失败
func (s *session) fail(kind Kind, key string, args ...any) {
	s.report(kind, key, args...)
	s.success = false
}

func (s *session) include(header string) {
	s.includes[header] = true
}

// useType 按类型补充头文件
func (s *session) useType(typ string) {
	if typ == symbol.TypeString || strings.Contains(typ, symbol.TypeString) {
		s.include("string")
	}
}

// writerFor 返回块所在的输出
func (s *session) writerFor(inFunction bool) *writer {
	if inFunction && s.fn != nil {
		return &s.body
	}
	return &s.main
}

// out 当前输出：函数体或 main
func (s *session) out() *writer {
	return s.writerFor(s.fn != nil)
}

func (s *session) emit(line string) {
	s.out().emit(line)
}

// emitf 格式化后输出一行
func (s *session) emitf(format string, args ...any) {
	s.emit(fmt.Sprintf(format, args...))
}

// open 输出块头并压栈
func (s *session) open(header string, kind block.Kind, index string) {
	s.emit(header)
	s.blocks.Push(&block.Block{
		Kind:      kind,
		AutoClose: true,
		Indent:    s.ins.Indent,
		Function:  s.fn != nil,
		Index:     index,
	})
	s.out().level++
}

// closeBlock 弹出栈顶块并输出 "}"
func (s *session) closeBlock() {
	b := s.blocks.Pop()
	if b == nil {
		return
	}
	w := s.writerFor(b.Function)
	if w.level > 1 {
		w.level--
	}
	w.emit("}")
}

func (s *session) closeBlocks(n int) {
	for i := 0; i < n; i++ {
		s.closeBlock()
	}
}

// reopen 在栈顶条件块上输出 "} else ... {"
func (s *session) reopen(header string) {
	top := s.blocks.Top()
	w := s.writerFor(top.Function)
	if w.level > 1 {
		w.level--
	}
	w.emit(header)
	w.level++
}

// loop 输出一个完整的循环
func (s *session) loop(header string, body ...string) {
	s.emit(header)
	w := s.out()
	w.level++
	for _, line := range body {
		w.emit(line)
	}
	w.level--
	w.emit("}")
}

// addVariable 注册变量，函数体内的变量记为局部变量
func (s *session) addVariable(name, typ string, declared bool) string {
	id := normalize.Identifier(name)
	if s.fn != nil {
		if _, seen := s.locals[id]; !seen {
			outer, _ := s.table.Variable(id)
			s.locals[id] = outer
		}
	}
	return s.table.AddVariable(id, typ, declared).Name
}

// hasVariable 变量在当前位置可见；函数体内只能看到参数和局部变量
func (s *session) hasVariable(id string) bool {
	if !s.table.HasVariable(id) {
		return false
	}
	if s.fn == nil {
		return true
	}
	_, local := s.locals[id]
	return local
}

// collides 名称已属于集合时报告结构错误
func (s *session) collides(id string) bool {
	if !s.table.HasCollection(id) {
		return false
	}
	s.report(StructuralError, i18n.ErrNameIsCollection, id)
	return true
}

// ensureVariable 变量不存在时声明并初始化，名称被集合占用时返回空串
func (s *session) ensureVariable(name, typ, init string) string {
	id := normalize.Identifier(name)
	if s.hasVariable(id) {
		return id
	}
	if s.collides(id) {
		return ""
	}
	s.useType(typ)
	s.emitf("%s %s = %s;", typ, id, init)
	return s.addVariable(id, typ, false)
}

// tempName 生成临时变量名：resultado1, suma2...
func (s *session) tempName(base string) string {
	name := s.table.UniqueName(base + strconv.Itoa(s.temp))
	s.temp++
	return name
}

// localName 生成不与符号冲突的名称
func (s *session) localName(base string) string {
	return s.table.UniqueName(base)
}

// indexName 生成循环下标名，避开变量和外层循环的下标
func (s *session) indexName() string {
	used := map[string]bool{}
	for _, b := range s.blocks.Blocks() {
		if b.Index != "" {
			used[b.Index] = true
		}
	}
	free := func(name string) bool {
		return !used[name] && !s.table.HasVariable(name) && !s.table.HasCollection(name)
	}
	for _, name := range []string{"i", "j", "k"} {
		if free(name) {
			return name
		}
	}
	for n := 2; ; n++ {
		if name := "i" + strconv.Itoa(n); free(name) {
			return name
		}
	}
}

// openFunction 进入函数体模式
func (s *session) openFunction(f *symbol.Function) {
	s.table.AddFunction(f)
	s.fn = f
	s.body = writer{unit: s.cfg.IndentUnit(), level: 1}
	s.locals = make(map[string]*symbol.Variable)
	for _, p := range f.Params {
		s.useType(p.Type)
		s.addVariable(p.Name, p.Type, false)
	}
	s.useType(f.ReturnType)
}

// closeFunction 结束函数定义，注销参数和局部变量并恢复被遮蔽的外层变量
func (s *session) closeFunction() {
	for n := s.blocks.CountInFunction(); n > 0; n-- {
		s.closeBlock()
	}
	s.fn.Body = s.body.lines
	for name, outer := range s.locals {
		if outer != nil {
			s.table.AddVariable(outer.Name, outer.Type, outer.Declared)
			continue
		}
		s.table.RemoveVariable(name)
	}
	s.fn = nil
	s.locals = nil
	s.body = writer{}
}

// elseError 把块栈错误映射为诊断
func (s *session) elseError(err error) {
	switch {
	case errors.Is(err, block.ErrElseAfterElse):
		s.report(StructuralError, i18n.ErrElseIfAfterElse)
	case errors.Is(err, block.ErrDuplicateElse):
		s.report(StructuralError, i18n.ErrDuplicateElse)
	default:
		s.report(StructuralError, i18n.ErrElseWithoutIf)
	}
}

// cutPrefix 去掉第一个匹配的前缀
func cutPrefix(text string, prefixes ...string) (string, bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p) {
			return strings.TrimSpace(text[len(p):]), true
		}
	}
	return "", false
}

// stripArticles 去掉开头的冠词
func stripArticles(text string) string {
	words := strings.Fields(text)
	for len(words) > 1 {
		switch words[0] {
		case "el", "la", "los", "las", "un", "una", "su", "sus":
			words = words[1:]
			continue
		}
		break
	}
	return strings.Join(words, " ")
}

package symbol

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tangzhangming/instacode/internal/normalize"
)

// 生成代码中使用的标量类型
const (
	TypeInt    = "int"
	TypeDouble = "double"
	TypeBool   = "bool"
	TypeString = "std::string"
)

// ContainerKind 集合的容器类型
type ContainerKind int

const (
	Vector ContainerKind = iota // std::vector，长度可变
	Array                       // 原生数组，长度固定
)

func (k ContainerKind) String() string {
	if k == Array {
		return "array"
	}
	return "vector"
}

// UnknownLength 表示集合长度未知
const UnknownLength = -1

// Variable 标量变量
type Variable struct {
	Name     string // 净化后的标识符
	Type     string // C++ 类型
	Declared bool   // 由声明指令显式创建，否则为其他指令自动生成
}

// Collection 集合（vector 或数组）
type Collection struct {
	Name        string
	Kind        ContainerKind
	ElementType string
	Alias       string // 指令中用来指代该集合的名词
	Length      int    // 数组为权威长度，vector 为跟踪长度，未知时为 UnknownLength
}

// CppType 返回集合声明时使用的 C++ 类型
func (c *Collection) CppType() string {
	if c.Kind == Array {
		return c.ElementType
	}
	return "std::vector<" + c.ElementType + ">"
}

// Numeric 集合元素是否为数字
func (c *Collection) Numeric() bool {
	return IsNumeric(c.ElementType)
}

// Field 结构体字段
type Field struct {
	Name string
	Type string
}

// Struct 结构体类型，创建后不可变
type Struct struct {
	Name   string
	Fields []Field
}

// Field 按名称查找字段（不区分大小写）
func (s *Struct) Field(name string) (Field, bool) {
	key := normalize.Identifier(name)
	for _, f := range s.Fields {
		if f.Name == key {
			return f, true
		}
	}
	return Field{}, false
}

// FirstTextField 返回第一个文本字段
func (s *Struct) FirstTextField() (Field, bool) {
	for _, f := range s.Fields {
		if f.Type == TypeString {
			return f, true
		}
	}
	return Field{}, false
}

// Param 函数参数
type Param struct {
	Name string
	Type string
}

// Function 函数定义
type Function struct {
	Name       string
	ReturnType string
	Params     []Param
	Body       []string // 已缩进的函数体语句
}

// Signature 返回 C++ 函数头
func (f *Function) Signature() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type + " " + p.Name
	}
	return f.ReturnType + " " + f.Name + "(" + strings.Join(params, ", ") + ")"
}

// Table 符号表，由一次翻译会话独占
type Table struct {
	variables   map[string]*Variable
	collections map[string]*Collection
	structs     map[string]*Struct
	functions   map[string]*Function

	collectionOrder []string // 按创建顺序
	structOrder     []string
	functionOrder   []string
}

// New 创建一个新的符号表
func New() *Table {
	return &Table{
		variables:   make(map[string]*Variable),
		collections: make(map[string]*Collection),
		structs:     make(map[string]*Struct),
		functions:   make(map[string]*Function),
	}
}

// IsNumeric 判断 C++ 类型是否为数字
func IsNumeric(typ string) bool {
	return typ == TypeInt || typ == TypeDouble
}

// ZeroValue 返回类型的零值字面量
func ZeroValue(typ string) string {
	switch typ {
	case TypeDouble:
		return "0.0"
	case TypeBool:
		return "false"
	case TypeString:
		return `""`
	case TypeInt:
		return "0"
	}
	return "{}"
}

// AddVariable 注册变量，名称会被净化
func (t *Table) AddVariable(name, typ string, declared bool) *Variable {
	v := &Variable{Name: normalize.Identifier(name), Type: typ, Declared: declared}
	t.variables[v.Name] = v
	return v
}

// Variable 查找变量
func (t *Table) Variable(name string) (*Variable, bool) {
	v, ok := t.variables[normalize.Identifier(name)]
	return v, ok
}

// HasVariable 变量是否存在
func (t *Table) HasVariable(name string) bool {
	_, ok := t.Variable(name)
	return ok
}

// VariableType 返回变量类型，不存在时返回空串
func (t *Table) VariableType(name string) string {
	if v, ok := t.Variable(name); ok {
		return v.Type
	}
	return ""
}

// RemoveVariable 删除变量（函数参数作用域结束时）
func (t *Table) RemoveVariable(name string) {
	delete(t.variables, normalize.Identifier(name))
}

// AddCollection 注册集合并使其成为最近创建的集合
func (t *Table) AddCollection(c *Collection) *Collection {
	c.Name = normalize.Identifier(c.Name)
	if _, exists := t.collections[c.Name]; !exists {
		t.collectionOrder = append(t.collectionOrder, c.Name)
	}
	t.collections[c.Name] = c
	return c
}

// Collection 按名称查找集合
func (t *Table) Collection(name string) (*Collection, bool) {
	c, ok := t.collections[normalize.Identifier(name)]
	return c, ok
}

// HasCollection 集合是否存在
func (t *Table) HasCollection(name string) bool {
	_, ok := t.Collection(name)
	return ok
}

// LastCollection 返回最近创建的集合
func (t *Table) LastCollection() (*Collection, bool) {
	if len(t.collectionOrder) == 0 {
		return nil, false
	}
	return t.collections[t.collectionOrder[len(t.collectionOrder)-1]], true
}

// LastCollections 返回最近创建的 n 个集合，按创建顺序
func (t *Table) LastCollections(n int) []*Collection {
	if n > len(t.collectionOrder) {
		return nil
	}
	names := t.collectionOrder[len(t.collectionOrder)-n:]
	result := make([]*Collection, len(names))
	for i, name := range names {
		result[i] = t.collections[name]
	}
	return result
}

// Collections 返回全部集合，按创建顺序
func (t *Table) Collections() []*Collection {
	return t.LastCollections(len(t.collectionOrder))
}

// CollectionForAlias 按别名解析集合。
// 依次尝试：最近的精确别名、paises/capitales 名称包含、最近创建的集合。
func (t *Table) CollectionForAlias(alias string) (*Collection, bool) {
	if c, ok := t.collectionByAlias(alias); ok {
		return c, true
	}
	return t.LastCollection()
}

// CollectionByAlias 与 CollectionForAlias 相同，但不退回到最近创建的集合
func (t *Table) CollectionByAlias(alias string) (*Collection, bool) {
	return t.collectionByAlias(alias)
}

func (t *Table) collectionByAlias(alias string) (*Collection, bool) {
	if strings.TrimSpace(alias) == "" {
		return nil, false
	}
	key := normalize.Identifier(alias)
	for i := len(t.collectionOrder) - 1; i >= 0; i-- {
		c := t.collections[t.collectionOrder[i]]
		if c.Alias == key {
			return c, true
		}
	}

	if key == "paises" || key == "capitales" {
		for i := len(t.collectionOrder) - 1; i >= 0; i-- {
			c := t.collections[t.collectionOrder[i]]
			if strings.Contains(c.Name, key) {
				return c, true
			}
		}
	}
	return nil, false
}

// CollectionOfStruct 返回元素类型为指定结构体的最近集合
func (t *Table) CollectionOfStruct(structName string) (*Collection, bool) {
	for i := len(t.collectionOrder) - 1; i >= 0; i-- {
		c := t.collections[t.collectionOrder[i]]
		if c.ElementType == structName {
			return c, true
		}
	}
	return nil, false
}

// AddStruct 注册结构体
func (t *Table) AddStruct(s *Struct) {
	key := strings.ToLower(s.Name)
	if _, exists := t.structs[key]; !exists {
		t.structOrder = append(t.structOrder, key)
	}
	t.structs[key] = s
}

// Struct 按名称查找结构体（不区分大小写）
func (t *Table) Struct(name string) (*Struct, bool) {
	s, ok := t.structs[strings.ToLower(normalize.Identifier(name))]
	if !ok {
		s, ok = t.structs[strings.ToLower(name)]
	}
	return s, ok
}

// StructForNoun 按名词查找结构体，允许简单复数形式
func (t *Table) StructForNoun(noun string) (*Struct, bool) {
	noun = strings.TrimSpace(noun)
	if s, ok := t.Struct(noun); ok {
		return s, true
	}
	for _, suffix := range []string{"es", "s"} {
		if strings.HasSuffix(noun, suffix) {
			if s, ok := t.Struct(strings.TrimSuffix(noun, suffix)); ok {
				return s, true
			}
		}
	}
	return nil, false
}

// Structs 返回全部结构体，按定义顺序
func (t *Table) Structs() []*Struct {
	result := make([]*Struct, len(t.structOrder))
	for i, key := range t.structOrder {
		result[i] = t.structs[key]
	}
	return result
}

// AddFunction 注册函数
func (t *Table) AddFunction(f *Function) {
	if _, exists := t.functions[f.Name]; !exists {
		t.functionOrder = append(t.functionOrder, f.Name)
	}
	t.functions[f.Name] = f
}

// Function 查找函数
func (t *Table) Function(name string) (*Function, bool) {
	f, ok := t.functions[normalize.Identifier(name)]
	return f, ok
}

// Functions 返回全部函数，按定义顺序
func (t *Table) Functions() []*Function {
	result := make([]*Function, len(t.functionOrder))
	for i, name := range t.functionOrder {
		result[i] = t.functions[name]
	}
	return result
}

// UniqueName 生成一个不与变量和集合冲突的名称：base, base2, base3...
func (t *Table) UniqueName(base string) string {
	base = normalize.Identifier(base)
	candidate := base
	for suffix := 2; t.taken(candidate); suffix++ {
		candidate = base + strconv.Itoa(suffix)
	}
	return candidate
}

func (t *Table) taken(name string) bool {
	_, isVar := t.variables[name]
	_, isColl := t.collections[name]
	return isVar || isColl
}

// VariableNames 返回全部变量名，已排序
func (t *Table) VariableNames() []string {
	names := make([]string, 0, len(t.variables))
	for name := range t.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot 符号表的只读快照
type Snapshot struct {
	Variables   []Variable
	Collections []Collection
	Structs     []Struct
	Functions   []FunctionInfo
}

// FunctionInfo 快照中的函数信息（不含函数体）
type FunctionInfo struct {
	Name       string
	ReturnType string
	Params     []Param
}

// Snapshot 复制当前表内容
func (t *Table) Snapshot() Snapshot {
	var snap Snapshot
	for _, name := range t.VariableNames() {
		snap.Variables = append(snap.Variables, *t.variables[name])
	}
	for _, c := range t.Collections() {
		snap.Collections = append(snap.Collections, *c)
	}
	for _, s := range t.Structs() {
		cp := *s
		cp.Fields = append([]Field(nil), s.Fields...)
		snap.Structs = append(snap.Structs, cp)
	}
	for _, f := range t.Functions() {
		snap.Functions = append(snap.Functions, FunctionInfo{
			Name:       f.Name,
			ReturnType: f.ReturnType,
			Params:     append([]Param(nil), f.Params...),
		})
	}
	return snap
}

package transpiler

import "fmt"

// Kind 诊断类别
type Kind int

const (
	Unrecognized        Kind = iota // 没有识别器匹配
	MissingPrerequisite             // 缺少前置条件（集合、数据文件等）
	SemanticWarning                 // 仍然生成代码的提示
	StructuralError                 // 指令被跳过
)

func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "unrecognized"
	case MissingPrerequisite:
		return "missing-prerequisite"
	case SemanticWarning:
		return "warning"
	case StructuralError:
		return "structural"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Fatal 该类别是否使整次转换失败
func (k Kind) Fatal() bool {
	return k == Unrecognized || k == StructuralError
}

// Diagnostic 一条诊断信息
type Diagnostic struct {
	Kind    Kind
	Line    int // 从 1 开始的输入行号，0 表示整体
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%d: %s", d.Line, d.Message)
	}
	return d.Message
}

// ConversionError 转换失败时返回的错误，包含全部问题
type ConversionError struct {
	Issues []string
}

func (e *ConversionError) Error() string {
	if len(e.Issues) == 0 {
		return "conversion failed"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0]
	}
	return fmt.Sprintf("%s (and %d more)", e.Issues[0], len(e.Issues)-1)
}

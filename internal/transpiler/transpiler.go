package transpiler

import (
	"github.com/oklog/ulid/v2"

	"github.com/tangzhangming/instacode/internal/config"
	"github.com/tangzhangming/instacode/internal/symbol"
)

// Input 一次转换的输入
type Input struct {
	Instructions     string // 完整的指令脚本
	DataFileContents string // 辅助数据文件内容，没有时为空
	DataFileName     string // 生成代码中写出的数据文件名
}

// Output 一次转换的结果
type Output struct {
	Code        string
	Issues      []string // 诊断信息，按出现顺序
	Success     bool
	Diagnostics []Diagnostic
	Symbols     symbol.Snapshot // 转换结束时的符号表
	Session     string          // 会话 ID
}

// Err 转换失败时返回 *ConversionError
func (o Output) Err() error {
	if o.Success {
		return nil
	}
	return &ConversionError{Issues: o.Issues}
}

// Transpiler 转译器
type Transpiler struct {
	config *config.Config // 项目配置
}

// New 创建一个新的转译器
func New() *Transpiler {
	return &Transpiler{}
}

// SetConfig 设置项目配置
func (t *Transpiler) SetConfig(cfg *config.Config) {
	t.config = cfg
}

// GetConfig 获取项目配置
func (t *Transpiler) GetConfig() *config.Config {
	if t.config == nil {
		return config.DefaultConfig()
	}
	return t.config
}

// Convert 转换一段指令脚本。每次调用都使用全新的会话状态。
func (t *Transpiler) Convert(in Input) Output {
	s := newSession(t.GetConfig(), in)
	out := s.run()
	out.Session = ulid.Make().String()
	return out
}

// Convert 使用默认配置转换
func Convert(in Input) Output {
	return New().Convert(in)
}

// Package block 管理由指令打开的控制结构块。
// 块的顺序与生成代码中花括号的物理嵌套一致。
package block

import "errors"

// Kind 块类型
type Kind int

const (
	Conditional Kind = iota // if / else if / else
	Loop                    // while / for
)

func (k Kind) String() string {
	if k == Loop {
		return "loop"
	}
	return "conditional"
}

var (
	// ErrNoConditional "sino" 之前没有可接续的 "si"
	ErrNoConditional = errors.New("block: no open conditional")
	// ErrElseAfterElse 终结的 "sino" 之后又出现 "sino si"
	ErrElseAfterElse = errors.New("block: else-if after terminal else")
	// ErrDuplicateElse 同一个 "si" 出现两个 "sino"
	ErrDuplicateElse = errors.New("block: duplicate else")
)

// Block 一个打开的块
type Block struct {
	Kind      Kind
	AutoClose bool // 缩进回退时自动关闭
	HasElse   bool
	HasElseIf bool
	Indent    int  // 打开该块的指令缩进
	Function  bool // 在函数体内打开

	Index string // 循环下标名
}

// Stack 块栈（后进先出）
type Stack struct {
	blocks []*Block
}

// Push 压入一个块
func (s *Stack) Push(b *Block) {
	s.blocks = append(s.blocks, b)
}

// Pop 弹出栈顶块，栈为空时返回 nil
func (s *Stack) Pop() *Block {
	if len(s.blocks) == 0 {
		return nil
	}
	top := s.blocks[len(s.blocks)-1]
	s.blocks = s.blocks[:len(s.blocks)-1]
	return top
}

// Top 返回栈顶块，栈为空时返回 nil
func (s *Stack) Top() *Block {
	if len(s.blocks) == 0 {
		return nil
	}
	return s.blocks[len(s.blocks)-1]
}

// Len 返回打开的块数
func (s *Stack) Len() int {
	return len(s.blocks)
}

// Blocks 返回当前块的副本，栈底在前
func (s *Stack) Blocks() []Block {
	result := make([]Block, len(s.blocks))
	for i, b := range s.blocks {
		result[i] = *b
	}
	return result
}

// CountInFunction 返回在函数体内打开的块数
func (s *Stack) CountInFunction() int {
	n := 0
	for _, b := range s.blocks {
		if b.Function {
			n++
		}
	}
	return n
}

// ElseIf 在栈顶条件块上接续 "else if"
func (s *Stack) ElseIf(indent int) error {
	top := s.Top()
	if top == nil || top.Kind != Conditional {
		return ErrNoConditional
	}
	if top.HasElse {
		return ErrElseAfterElse
	}
	top.HasElseIf = true
	top.AutoClose = true
	top.Indent = indent
	return nil
}

// Else 在栈顶条件块上接续终结的 "else"
func (s *Stack) Else(indent int) error {
	top := s.Top()
	if top == nil || top.Kind != Conditional {
		return ErrNoConditional
	}
	if top.HasElse {
		return ErrDuplicateElse
	}
	top.HasElse = true
	top.AutoClose = true
	top.Indent = indent
	return nil
}

// ToClose 计算下一条指令之前需要关闭的栈顶块数。
// 普通指令关闭缩进 >= indent 的自动块；"sino"/"sino si" 接续行
// 只关闭缩进严格大于 indent 的块，使同级的条件块保持打开。
// 遇到第一个不可关闭的块即停止。
func ToClose(blocks []Block, indent int, continuation bool) int {
	count := 0
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		if !b.AutoClose {
			break
		}
		if continuation {
			if b.Indent <= indent {
				break
			}
		} else if b.Indent < indent {
			break
		}
		count++
	}
	return count
}

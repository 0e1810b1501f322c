package block

import (
	"errors"
	"testing"
)

func TestStackPushPop(t *testing.T) {
	var s Stack
	if s.Pop() != nil || s.Top() != nil {
		t.Fatalf("empty stack should return nil")
	}
	s.Push(&Block{Kind: Loop, Indent: 0})
	s.Push(&Block{Kind: Conditional, Indent: 4, Function: true})
	if s.Len() != 2 || s.Top().Kind != Conditional {
		t.Fatalf("unexpected top after push: %+v", s.Top())
	}
	if s.CountInFunction() != 1 {
		t.Fatalf("CountInFunction got=%d", s.CountInFunction())
	}
	if b := s.Pop(); b.Indent != 4 {
		t.Fatalf("Pop got=%+v", b)
	}
	if s.Len() != 1 {
		t.Fatalf("Len got=%d", s.Len())
	}
}

func TestElseTransitions(t *testing.T) {
	t.Run("else without if", func(t *testing.T) {
		var s Stack
		if err := s.Else(0); !errors.Is(err, ErrNoConditional) {
			t.Fatalf("got=%v", err)
		}
		s.Push(&Block{Kind: Loop})
		if err := s.ElseIf(0); !errors.Is(err, ErrNoConditional) {
			t.Fatalf("got=%v", err)
		}
	})

	t.Run("chain", func(t *testing.T) {
		var s Stack
		s.Push(&Block{Kind: Conditional, Indent: 2})
		if err := s.ElseIf(0); err != nil {
			t.Fatalf("ElseIf: %v", err)
		}
		if err := s.ElseIf(0); err != nil {
			t.Fatalf("second ElseIf: %v", err)
		}
		if err := s.Else(0); err != nil {
			t.Fatalf("Else: %v", err)
		}
		top := s.Top()
		if !top.HasElse || !top.HasElseIf || !top.AutoClose || top.Indent != 0 {
			t.Fatalf("unexpected block state: %+v", top)
		}
		if err := s.ElseIf(0); !errors.Is(err, ErrElseAfterElse) {
			t.Fatalf("ElseIf after Else got=%v", err)
		}
		if err := s.Else(0); !errors.Is(err, ErrDuplicateElse) {
			t.Fatalf("second Else got=%v", err)
		}
	})
}

func TestToClose(t *testing.T) {
	blocks := []Block{
		{Kind: Loop, AutoClose: true, Indent: 0},
		{Kind: Conditional, AutoClose: true, Indent: 4},
		{Kind: Loop, AutoClose: true, Indent: 8},
	}

	tests := []struct {
		name         string
		blocks       []Block
		indent       int
		continuation bool
		want         int
	}{
		{"nested body line", blocks, 12, false, 0},
		{"sibling of innermost", blocks, 8, false, 1},
		{"back to middle", blocks, 4, false, 2},
		{"back to top", blocks, 0, false, 3},
		{"else at middle level", blocks, 4, true, 1},
		{"else at top level", blocks, 0, true, 2},
		{"stops at manual block", []Block{
			{Kind: Loop, AutoClose: true, Indent: 0},
			{Kind: Loop, AutoClose: false, Indent: 4},
			{Kind: Conditional, AutoClose: true, Indent: 8},
		}, 0, false, 1},
		{"empty", nil, 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToClose(tt.blocks, tt.indent, tt.continuation); got != tt.want {
				t.Fatalf("ToClose got=%d want=%d", got, tt.want)
			}
		})
	}
}

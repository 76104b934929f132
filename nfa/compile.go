package nfa

import (
	"fmt"

	"github.com/coregx/spag/regex"
)

// fragment is a partially built automaton with a single entry and a single
// exit. The exit has no outgoing transitions until a later operator wires
// it up.
type fragment struct {
	entry, exit StateID
}

// Compile builds a Thompson NFA from a postfix pattern. The sole accepting
// state carries the given label.
func Compile(postfix regex.Pattern, acc Accept) (*NFA, error) {
	b := NewBuilder()
	var stack []fragment

	pop := func() (fragment, bool) {
		if len(stack) == 0 {
			return fragment{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	for _, a := range postfix {
		switch a.Kind() {
		case regex.AtomChar:
			exit := b.AddState()
			entry := b.AddState()
			b.AddTransition(entry, a.Rune(), exit)
			stack = append(stack, fragment{entry, exit})

		case regex.AtomClass:
			exit := b.AddState()
			entry := b.AddState()
			for _, r := range a.Class() {
				b.AddTransition(entry, r, exit)
			}
			stack = append(stack, fragment{entry, exit})

		case regex.AtomOp:
			f, err := applyOp(b, a.Op(), pop)
			if err != nil {
				return nil, err
			}
			stack = append(stack, f)

		default:
			return nil, fmt.Errorf("%w: unexpected %s in postfix stream", ErrConstruction, a)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d fragments remain", ErrConstruction, len(stack))
	}
	f := stack[0]
	return b.Build(f.entry, map[StateID]Accept{f.exit: acc}), nil
}

func applyOp(b *Builder, op regex.OpKind, pop func() (fragment, bool)) (fragment, error) {
	switch op {
	case regex.OpConcat:
		second, ok2 := pop()
		first, ok1 := pop()
		if !ok1 || !ok2 {
			return fragment{}, fmt.Errorf("%w: concat needs two operands", ErrConstruction)
		}
		b.AddEpsilon(first.exit, second.entry)
		return fragment{first.entry, second.exit}, nil

	case regex.OpAlt:
		second, ok2 := pop()
		first, ok1 := pop()
		if !ok1 || !ok2 {
			return fragment{}, fmt.Errorf("%w: alternation needs two operands", ErrConstruction)
		}
		entry := b.AddState()
		exit := b.AddState()
		b.AddEpsilon(entry, first.entry)
		b.AddEpsilon(entry, second.entry)
		b.AddEpsilon(first.exit, exit)
		b.AddEpsilon(second.exit, exit)
		return fragment{entry, exit}, nil

	case regex.OpStar:
		f, ok := pop()
		if !ok {
			return fragment{}, fmt.Errorf("%w: closure needs an operand", ErrConstruction)
		}
		entry := b.AddState()
		exit := b.AddState()
		b.AddEpsilon(entry, f.entry)
		b.AddEpsilon(entry, exit)
		b.AddEpsilon(f.exit, f.entry)
		b.AddEpsilon(f.exit, exit)
		return fragment{entry, exit}, nil

	case regex.OpPlus:
		f, ok := pop()
		if !ok {
			return fragment{}, fmt.Errorf("%w: closure needs an operand", ErrConstruction)
		}
		entry := b.AddState()
		exit := b.AddState()
		b.AddEpsilon(entry, f.entry)
		b.AddEpsilon(f.exit, f.entry)
		b.AddEpsilon(f.exit, exit)
		return fragment{entry, exit}, nil

	case regex.OpMaybe:
		f, ok := pop()
		if !ok {
			return fragment{}, fmt.Errorf("%w: option needs an operand", ErrConstruction)
		}
		entry := b.AddState()
		exit := b.AddState()
		b.AddEpsilon(entry, f.entry)
		b.AddEpsilon(entry, exit)
		b.AddEpsilon(f.exit, exit)
		return fragment{entry, exit}, nil

	default:
		return fragment{}, fmt.Errorf("%w: operator %s not valid in postfix", ErrConstruction, op)
	}
}

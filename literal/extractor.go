package literal

import "github.com/coregx/spag/regex"

// Extract walks a postfix pattern and enumerates its language when finite.
// Unbounded operators (star, plus) and overflowing the limit both yield an
// inexact result. The limit guards the cross product that concatenation
// and alternation build up; non-positive means DefaultLimit.
func Extract(postfix regex.Pattern, limit int) *Seq {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var stack []*Seq
	pop := func() *Seq {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return s
	}

	for _, a := range postfix {
		switch a.Kind() {
		case regex.AtomChar:
			stack = append(stack, exactSeq(map[string]struct{}{string(a.Rune()): {}}))

		case regex.AtomClass:
			lits := map[string]struct{}{}
			for _, r := range a.Class() {
				lits[string(r)] = struct{}{}
			}
			stack = append(stack, exactSeq(lits))

		case regex.AtomOp:
			switch a.Op() {
			case regex.OpStar, regex.OpPlus:
				pop()
				stack = append(stack, inexact())

			case regex.OpMaybe:
				s := pop()
				if !s.exact {
					stack = append(stack, inexact())
					continue
				}
				s.literals[""] = struct{}{}
				stack = append(stack, s)

			case regex.OpConcat:
				second, first := pop(), pop()
				stack = append(stack, cross(first, second, limit))

			case regex.OpAlt:
				second, first := pop(), pop()
				stack = append(stack, union(first, second, limit))
			}

		default:
			return inexact()
		}
	}

	if len(stack) != 1 {
		return inexact()
	}
	return stack[0]
}

func cross(first, second *Seq, limit int) *Seq {
	if !first.exact || !second.exact || first.Len()*second.Len() > limit {
		return inexact()
	}
	lits := make(map[string]struct{}, first.Len()*second.Len())
	for a := range first.literals {
		for b := range second.literals {
			lits[a+b] = struct{}{}
		}
	}
	return exactSeq(lits)
}

func union(first, second *Seq, limit int) *Seq {
	if !first.exact || !second.exact || first.Len()+second.Len() > limit {
		return inexact()
	}
	lits := make(map[string]struct{}, first.Len()+second.Len())
	for a := range first.literals {
		lits[a] = struct{}{}
	}
	for b := range second.literals {
		lits[b] = struct{}{}
	}
	return exactSeq(lits)
}

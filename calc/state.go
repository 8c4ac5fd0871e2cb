package calc

import "strings"

// ErrorText is the display sentinel for an unrecoverable arithmetic
// condition. It is not a parsable number; the next entry starts fresh.
const ErrorText = "Error"

// State is the complete calculator input state. It is a value: Apply
// returns the successor state and never mutates its argument, so the
// caller owns the single live copy.
type State struct {
	// Display is the text currently shown and edited.
	Display string
	// Acc is the operand captured when the pending operator was pressed.
	Acc float64
	// Pending is the operator awaiting a second operand, or OpNone.
	Pending Op
	// Awaiting means the next digit starts a fresh entry instead of
	// appending to Display.
	Awaiting bool
}

// NewState returns the initial (and post-Clear) state.
func NewState() State {
	return State{Display: "0", Awaiting: true}
}

// errorState is the recovery state after any arithmetic error: the sentinel
// on the display and no pending operation.
func errorState() State {
	return State{Display: ErrorText, Awaiting: true}
}

// Apply processes one input symbol and returns the successor state. The
// returned entry is non-nil only when Equals completed successfully and
// should be recorded in the history log. Memory symbols are not handled
// here; route them through ApplyMemory.
func Apply(s State, sym Symbol) (State, *Entry) {
	switch sym.Kind {
	case KindDigit:
		d := string('0' + rune(sym.Digit))
		switch {
		case s.Awaiting:
			s.Display = d
			s.Awaiting = false
		case s.Display == "0":
			s.Display = d
		default:
			s.Display += d
		}

	case KindDot:
		switch {
		case strings.Contains(s.Display, "."):
			// one decimal point per entry
		case s.Awaiting:
			s.Display = "0."
			s.Awaiting = false
		default:
			s.Display += "."
		}

	case KindOperator:
		operand := valueOf(s.Display)
		if s.Pending != OpNone && !s.Awaiting {
			r, err := Evaluate(s.Acc, operand, s.Pending)
			if err != nil {
				return errorState(), nil
			}
			s.Acc = r
			s.Display = Format(r)
		} else {
			s.Acc = operand
		}
		s.Pending = sym.Op
		s.Awaiting = true

	case KindClear:
		return NewState(), nil

	case KindEquals:
		if s.Pending == OpNone {
			return s, nil
		}
		operand := valueOf(s.Display)
		r, err := Evaluate(s.Acc, operand, s.Pending)
		if err != nil {
			return errorState(), nil
		}
		entry := &Entry{
			Expression: Format(s.Acc) + " " + s.Pending.String() + " " + Format(operand),
			Result:     Format(r),
		}
		return State{Display: Format(r), Acc: r, Awaiting: true}, entry

	case KindBackspace:
		if len(s.Display) > 1 {
			s.Display = s.Display[:len(s.Display)-1]
		} else {
			s.Display = "0"
		}
		// A bare sign cannot parse; treat it like an emptied buffer.
		if s.Display == "-" {
			s.Display = "0"
		}

	case KindPercent:
		s.Display = Format(valueOf(s.Display) / 100)
		s.Awaiting = true

	case KindSign:
		if s.Display == "0" || s.Display == ErrorText {
			return s, nil
		}
		if strings.HasPrefix(s.Display, "-") {
			s.Display = s.Display[1:]
		} else {
			s.Display = "-" + s.Display
		}

	case KindFunc:
		r, err := ApplyFunc(sym.Fn, valueOf(s.Display))
		if err != nil {
			return errorState(), nil
		}
		s.Display = Format(r)
		s.Awaiting = true
	}

	return s, nil
}

// ApplyMemory routes a memory symbol to the register. Store, add and
// subtract read the current entry; recall replaces it.
func ApplyMemory(s State, m *MemoryRegister, op MemOp) State {
	switch op {
	case MemClear:
		m.Clear()
	case MemStore:
		m.Store(valueOf(s.Display))
	case MemAdd:
		m.Add(valueOf(s.Display))
	case MemSubtract:
		m.Subtract(valueOf(s.Display))
	case MemRecall:
		s.Display = Format(m.Recall())
		s.Awaiting = true
	}
	return s
}

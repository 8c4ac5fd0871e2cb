package calc

// SymbolKind classifies one discrete calculator input.
type SymbolKind uint8

const (
	KindNone SymbolKind = iota
	KindDigit
	KindDot
	KindOperator
	KindClear
	KindEquals
	KindBackspace
	KindPercent
	KindSign
	KindFunc
	KindMemory
)

// Op is a pending binary operator.
type Op uint8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Func is a unary scientific function applied to the current entry.
type Func uint8

const (
	FuncSqrt Func = iota + 1
	FuncSquare
	FuncInverse
	FuncSin
	FuncCos
	FuncTan
	FuncLog
	FuncLn
)

// MemOp is a memory register operation.
type MemOp uint8

const (
	MemClear MemOp = iota + 1
	MemRecall
	MemStore
	MemAdd
	MemSubtract
)

// Symbol is one input to the state machine. Exactly one of the payload
// fields is meaningful, selected by Kind.
type Symbol struct {
	Kind  SymbolKind
	Digit byte
	Op    Op
	Fn    Func
	Mem   MemOp
}

// Digit returns the symbol for a single digit 0..9.
func Digit(d byte) Symbol { return Symbol{Kind: KindDigit, Digit: d} }

// Operator returns the symbol for a binary operator press.
func Operator(op Op) Symbol { return Symbol{Kind: KindOperator, Op: op} }

// Function returns the symbol for a unary scientific function press.
func Function(fn Func) Symbol { return Symbol{Kind: KindFunc, Fn: fn} }

// Memory returns the symbol for a memory register operation.
func Memory(op MemOp) Symbol { return Symbol{Kind: KindMemory, Mem: op} }

var (
	Dot       = Symbol{Kind: KindDot}
	Clear     = Symbol{Kind: KindClear}
	Equals    = Symbol{Kind: KindEquals}
	Backspace = Symbol{Kind: KindBackspace}
	Percent   = Symbol{Kind: KindPercent}
	Sign      = Symbol{Kind: KindSign}
)

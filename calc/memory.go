package calc

// MemoryRegister is the single-slot calculator memory. Zero-initialized;
// only explicit memory operations mutate it.
type MemoryRegister struct {
	v float64
}

func (m *MemoryRegister) Store(v float64)    { m.v = v }
func (m *MemoryRegister) Recall() float64    { return m.v }
func (m *MemoryRegister) Add(v float64)      { m.v += v }
func (m *MemoryRegister) Subtract(v float64) { m.v -= v }
func (m *MemoryRegister) Clear()             { m.v = 0 }

// Has reports whether the register holds a non-zero value. Used only to
// decide whether the memory indicator is drawn.
func (m *MemoryRegister) Has() bool { return m.v != 0 }

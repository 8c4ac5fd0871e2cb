package calc

// HistoryCap bounds the history log.
const HistoryCap = 10

// Entry is one completed calculation. Immutable once recorded.
type Entry struct {
	Expression string
	Result     string
}

// History is a bounded most-recent-first log of completed calculations.
// Recording past capacity evicts the oldest entry.
type History struct {
	entries []Entry
}

// Record pushes an entry to the front of the log.
func (h *History) Record(e Entry) {
	h.entries = append([]Entry{e}, h.entries...)
	if len(h.entries) > HistoryCap {
		h.entries = h.entries[:HistoryCap]
	}
}

// Clear empties the log.
func (h *History) Clear() {
	h.entries = nil
}

// Len reports the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns the log, most recent first. The slice is a copy; the log
// is display-only and never feeds back into a calculation.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

package engine

// HistoryEntry is one line of the execution trace: the lookahead (or "LEX"
// during lexing), the action performed and the stack after the action.
type HistoryEntry struct {
	Input  string `yaml:"input"`
	Action string `yaml:"action"`
	Stack  string `yaml:"stack"`
}

// HistoryLog is the append-only execution trace of a run.
type HistoryLog struct {
	entries []HistoryEntry
}

// Append adds an entry to the log.
func (h *HistoryLog) Append(e HistoryEntry) {
	h.entries = append(h.entries, e)
}

// Len is the number of entries.
func (h *HistoryLog) Len() int {
	return len(h.entries)
}

// Entries returns a copy of all entries, oldest first.
func (h *HistoryLog) Entries() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

// Last returns the most recent entry.
func (h *HistoryLog) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

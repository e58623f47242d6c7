package tracker

import "encoding/json"

// History is a bounded stack of snapshots. Pushing past the bound evicts
// the oldest entry.
type History struct {
	entries []*Snapshot // oldest first
	limit   int
}

// NewHistory creates an empty history holding at most limit entries
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push adds snap as the newest entry
func (h *History) Push(snap *Snapshot) {
	if h.limit == 0 {
		return
	}
	h.entries = append(h.entries, snap)
	h.trim()
}

// Pop removes and returns the newest entry
func (h *History) Pop() (*Snapshot, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Peek returns the newest entry without removing it
func (h *History) Peek() (*Snapshot, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// Limit returns the bound
func (h *History) Limit() int {
	return h.limit
}

// Clear drops every entry
func (h *History) Clear() {
	h.entries = nil
}

// Resize changes the bound, evicting the oldest entries if needed
func (h *History) Resize(limit int) {
	if limit < 0 {
		limit = 0
	}
	h.limit = limit
	h.trim()
}

// Entries returns the snapshots newest first
func (h *History) Entries() []*Snapshot {
	out := make([]*Snapshot, 0, len(h.entries))
	for i := len(h.entries) - 1; i >= 0; i-- {
		out = append(out, h.entries[i])
	}
	return out
}

func (h *History) trim() {
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append([]*Snapshot(nil), h.entries[over:]...)
	}
}

// MarshalJSON writes the entries oldest first. The bound comes from Settings.
func (h *History) MarshalJSON() ([]byte, error) {
	entries := h.entries
	if entries == nil {
		entries = []*Snapshot{}
	}
	return json.Marshal(entries)
}

// UnmarshalJSON reads entries oldest first. Call State.Normalize afterwards
// to apply the bound.
func (h *History) UnmarshalJSON(data []byte) error {
	var entries []*Snapshot
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	h.entries = entries
	h.limit = len(entries)
	return nil
}

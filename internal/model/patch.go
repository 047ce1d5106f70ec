package model

// SignalPatch is the outgoing partial-update body. Only fields that
// actually changed are populated; an all-nil patch means nothing to send.
type SignalPatch struct {
	Status   *StatusPatch   `json:"status,omitempty"`
	Priority *PriorityPatch `json:"priority,omitempty"`
}

type StatusPatch struct {
	State string `json:"state"`
	Text  string `json:"text"`
}

type PriorityPatch struct {
	Priority string `json:"priority"`
}

// IsEmpty reports whether the patch carries no change at all.
func (p SignalPatch) IsEmpty() bool {
	return p.Status == nil && p.Priority == nil
}

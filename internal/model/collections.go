package model

import "time"

// PaginatedResponse is the upstream list envelope. Adapters coerce it to a
// plain slice before anything else sees it.
type PaginatedResponse[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// HistoryEntry is append-only and server-authored; the console only reads it.
type HistoryEntry struct {
	When        time.Time `json:"when"`
	What        string    `json:"what,omitempty"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Signal      string    `json:"_signal,omitempty"`
}

// ContextData summarizes a signal's surroundings and its reporter's track
// record for the detail panel.
type ContextData struct {
	Near struct {
		SignalCount int `json:"signal_count"`
	} `json:"near"`
	Reporter struct {
		SignalCount   int `json:"signal_count"`
		OpenCount     int `json:"open_count"`
		PositiveCount int `json:"positive_count"`
		NegativeCount int `json:"negative_count"`
	} `json:"reporter"`
}

type RelatedReporter struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	AllowsContact  bool      `json:"allows_contact"`
	SharingAllowed bool      `json:"sharing_allowed"`
	State          string    `json:"state,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

type AutocompleteUser struct {
	Username string `json:"username"`
}

// Duplicate is one suspected duplicate pair reported by the companion
// similarity service. TextScore is cosine similarity in [0,1].
type Duplicate struct {
	SignalID1 int64   `json:"signal_id_1"`
	SignalID2 int64   `json:"signal_id_2"`
	Text1     string  `json:"signal_text_1,omitempty"`
	Text2     string  `json:"signal_text_2,omitempty"`
	TextScore float64 `json:"text_score"`
}

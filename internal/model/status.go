package model

import "time"

// Raw backend state codes. The short codes are historical; the longer ones
// were added to the upstream later and never abbreviated.
const (
	StateReported         = "m"
	StateAwaiting         = "i"
	StateInProgress       = "b"
	StateHandled          = "o"
	StateCancelled        = "a"
	StateReopened         = "reopen"
	StateScheduled        = "ingepland"
	StateReactionRequest  = "reaction requested"
	StateForwardExternal  = "forward to external"
	StateClosureRequested = "closure requested"
	StateExternalClosure  = "s"
)

// StateDisplayNames maps state codes to the Dutch display labels the
// console shows.
var StateDisplayNames = map[string]string{
	StateReported:         "Gemeld",
	StateAwaiting:         "In afwachting van behandeling",
	StateInProgress:       "In behandeling",
	StateHandled:          "Afgehandeld",
	StateCancelled:        "Geannuleerd",
	StateReopened:         "Heropend",
	StateScheduled:        "Ingepland",
	StateReactionRequest:  "Reactie gevraagd",
	StateForwardExternal:  "Doorgezet naar extern",
	StateClosureRequested: "Verzoek afhandeling extern",
	StateExternalClosure:  "Extern: verzoek tot afhandeling",
}

// statesWithoutTextRequirement lists the target states whose transition is
// self-explanatory: a save into one of these may carry the catalog's
// canned text instead of a staff-written explanation.
var statesWithoutTextRequirement = map[string]struct{}{
	StateReported:        {},
	StateAwaiting:        {},
	StateCancelled:       {},
	StateInProgress:      {},
	StateExternalClosure: {},
}

// StateRequiresText reports whether a transition into state needs a
// non-empty explanation from the user.
func StateRequiresText(state string) bool {
	_, ok := statesWithoutTextRequirement[state]
	return !ok
}

// StatusMessage is a catalog entry describing one legal status choice for
// a category: the label staff pick from, the canned text, and the raw
// state code it resolves to.
type StatusMessage struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Active     bool      `json:"active"`
	State      string    `json:"state"`
	Categories []int64   `json:"categories"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// DefaultStatusCatalog is the fallback shown when the upstream returns no
// status messages for a category.
func DefaultStatusCatalog() []StatusMessage {
	return []StatusMessage{
		{ID: 1, Title: "Gemeld", Text: "Gemeld", State: StateReported, Active: true},
		{ID: 2, Title: "In afwachting van behandeling", Text: "In afwachting van behandeling", State: StateAwaiting, Active: true},
		{ID: 3, Title: "In behandeling", Text: "In behandeling", State: StateInProgress, Active: true},
		{ID: 4, Title: "Afgehandeld", Text: "Afgehandeld", State: StateHandled, Active: true},
		{ID: 5, Title: "Geannuleerd", Text: "Geannuleerd", State: StateCancelled, Active: true},
		{ID: 6, Title: "Heropend", Text: "Heropend", State: StateReopened, Active: true},
		{ID: 7, Title: "Reactie gevraagd", Text: "Reactie gevraagd", State: StateReactionRequest, Active: true},
		{ID: 8, Title: "Ingepland", Text: "Ingepland", State: StateScheduled, Active: true},
		{ID: 9, Title: "Extern: verzoek tot afhandeling", Text: "Extern: verzoek tot afhandeling", State: StateExternalClosure, Active: true},
	}
}

// Priority levels. The upstream accepts exactly these three.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

var PriorityDisplayNames = map[string]string{
	PriorityLow:    "Laag",
	PriorityNormal: "Normaal",
	PriorityHigh:   "Hoog",
}

// StatusFilterBuckets maps UI filter values to the one-or-more raw state
// codes they cover. The enum is open: unknown buckets match nothing.
var StatusFilterBuckets = map[string][]string{
	"open":                       {StateReported},
	"in_progress":                {StateInProgress},
	"closed":                     {StateHandled},
	"afwachting":                 {StateAwaiting},
	"door_extern":                {StateForwardExternal},
	"reactie_gevraagd":           {StateReactionRequest},
	"ingepland":                  {StateScheduled},
	"verzoek_afhandeling_extern": {StateClosureRequested},
	"geannuleerd":                {StateCancelled},
}

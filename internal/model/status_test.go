package model

import "testing"

func TestStateRequiresText(t *testing.T) {
	testCases := []struct {
		name     string
		state    string
		required bool
	}{
		{"gemeld", StateReported, false},
		{"afwachting", StateAwaiting, false},
		{"in behandeling", StateInProgress, false},
		{"geannuleerd", StateCancelled, false},
		{"extern afgehandeld", StateExternalClosure, false},
		{"afgehandeld", StateHandled, true},
		{"heropend", StateReopened, true},
		{"ingepland", StateScheduled, true},
		{"reactie gevraagd", StateReactionRequest, true},
		{"unknown state", "xyz", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StateRequiresText(tc.state); got != tc.required {
				t.Errorf("StateRequiresText(%q) = %v; want %v", tc.state, got, tc.required)
			}
		})
	}
}

func TestDefaultStatusCatalogCoversEveryOption(t *testing.T) {
	catalog := DefaultStatusCatalog()
	if len(catalog) != 9 {
		t.Fatalf("expected 9 default entries, got %d", len(catalog))
	}
	for _, entry := range catalog {
		if !entry.Active {
			t.Errorf("default entry %q must be active", entry.Title)
		}
		if entry.State == "" {
			t.Errorf("default entry %q has no state code", entry.Title)
		}
		if entry.Text == "" {
			t.Errorf("default entry %q has no canned text", entry.Title)
		}
	}
}

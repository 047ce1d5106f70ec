package model

import "testing"

func buildSignal(id int64, display, text, state, address string) Signal {
	s := Signal{ID: id, IDDisplay: display, Text: text}
	s.Status.State = state
	s.Location.AddressText = address
	return s
}

func TestFilterSignals(t *testing.T) {
	signals := []Signal{
		buildSignal(1, "SIG-1", "Losse stoeptegel", StateReported, "Dorpsstraat 1"),
		buildSignal(2, "SIG-2", "Kapotte lantaarnpaal", StateInProgress, "Kerkplein 4"),
		buildSignal(3, "SIG-3", "Zwerfafval", StateHandled, "Dorpsstraat 12"),
		buildSignal(4, "SIG-4", "Omgevallen boom", StateScheduled, "Bosweg 9"),
	}

	testCases := []struct {
		name   string
		bucket string
		q      string
		want   []int64
	}{
		{"no filters", "", "", []int64{1, 2, 3, 4}},
		{"open bucket", "open", "", []int64{1}},
		{"in progress bucket", "in_progress", "", []int64{2}},
		{"closed bucket", "closed", "", []int64{3}},
		{"ingepland bucket", "ingepland", "", []int64{4}},
		{"unknown bucket matches nothing", "does-not-exist", "", nil},
		{"query on text", "", "lantaarn", []int64{2}},
		{"query is case insensitive", "", "DORPSSTRAAT", []int64{1, 3}},
		{"query on display id", "", "sig-4", []int64{4}},
		{"bucket and query combine", "closed", "dorpsstraat", []int64{3}},
		{"query without match", "", "brandkraan", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := FilterSignals(signals, tc.bucket, tc.q)
			var ids []int64
			for _, s := range filtered {
				ids = append(ids, s.ID)
			}
			if len(ids) != len(tc.want) {
				t.Fatalf("FilterSignals(%q, %q) returned ids %v; want %v", tc.bucket, tc.q, ids, tc.want)
			}
			for i := range ids {
				if ids[i] != tc.want[i] {
					t.Fatalf("FilterSignals(%q, %q) returned ids %v; want %v", tc.bucket, tc.q, ids, tc.want)
				}
			}
		})
	}
}

func TestCategoryResolveID(t *testing.T) {
	testCases := []struct {
		name     string
		category Category
		want     string
		ok       bool
	}{
		{"direct id", Category{ID: 7}, "7", true},
		{"pk fallback", Category{PK: 12}, "12", true},
		{"category_id fallback", Category{CategoryID: 3}, "3", true},
		{"trailing url segment", Category{CategoryURL: "https://api.example/categories/45"}, "45", true},
		{"url with trailing slash", Category{CategoryURL: "https://api.example/categories/45/"}, "45", true},
		{"id beats url", Category{ID: 7, CategoryURL: "https://api.example/categories/45"}, "7", true},
		{"nothing resolvable", Category{Sub: "wegen"}, "", false},
		{"non-numeric url", Category{CategoryURL: "https://api.example/categories/wegen"}, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.category.ResolveID()
			if got != tc.want || ok != tc.ok {
				t.Errorf("ResolveID() = (%q, %v); want (%q, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestAttachmentResolveID(t *testing.T) {
	withHref := Attachment{Display: "Attachment object (901)"}
	withHref.Links.Self.Href = "https://api.example/signals/42/attachments/77"

	displayOnly := Attachment{Display: "Attachment object (901)"}
	nothing := Attachment{Display: "Attachment object"}

	testCases := []struct {
		name       string
		attachment Attachment
		want       string
		ok         bool
	}{
		{"href wins over display", withHref, "77", true},
		{"display fallback", displayOnly, "901", true},
		{"no identifier at all", nothing, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.attachment.ResolveID()
			if got != tc.want || ok != tc.ok {
				t.Errorf("ResolveID() = (%q, %v); want (%q, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

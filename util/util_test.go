package util

import (
	"net/http"
	"testing"

	"github.com/delta10/signalen-console/util/values"
)

func TestTrailingNumericID(t *testing.T) {
	testCases := []struct {
		name   string
		rawURL string
		want   string
		ok     bool
	}{
		{"plain resource url", "https://api.example/signals/42/attachments/7", "7", true},
		{"trailing slash", "https://api.example/signals/42/attachments/7/", "7", true},
		{"category url", "https://api.example/categories/45", "45", true},
		{"non numeric segment", "https://api.example/categories/wegen", "", false},
		{"mixed segment", "https://api.example/categories/wegen-12", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TrailingNumericID(tc.rawURL)
			if got != tc.want || ok != tc.ok {
				t.Errorf("TrailingNumericID(%q) = (%q, %v); want (%q, %v)", tc.rawURL, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestLastNumericToken(t *testing.T) {
	testCases := []struct {
		name    string
		display string
		want    string
		ok      bool
	}{
		{"attachment display", "Attachment object (317)", "317", true},
		{"multiple runs take the last", "Signal 42 attachment 317", "317", true},
		{"no digits", "Attachment object", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := LastNumericToken(tc.display)
			if got != tc.want || ok != tc.ok {
				t.Errorf("LastNumericToken(%q) = (%q, %v); want (%q, %v)", tc.display, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestIsJSONContentType(t *testing.T) {
	testCases := []struct {
		contentType string
		want        bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/html", false},
		{"text/html; charset=utf-8", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := IsJSONContentType(tc.contentType); got != tc.want {
			t.Errorf("IsJSONContentType(%q) = %v; want %v", tc.contentType, got, tc.want)
		}
	}
}

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		status string
		want   int
	}{
		{values.Success, http.StatusOK},
		{values.Created, http.StatusCreated},
		{values.NoContent, http.StatusNoContent},
		{values.Error, http.StatusInternalServerError},
		{values.BadRequestBody, http.StatusBadRequest},
		{values.Unprocessable, http.StatusUnprocessableEntity},
		{values.NotAllowed, http.StatusForbidden},
		{values.NotFound, http.StatusNotFound},
		{values.NotAuthorised, http.StatusUnauthorized},
		{"anything-else", http.StatusOK},
	}

	for _, tc := range testCases {
		if got := StatusCode(tc.status); got != tc.want {
			t.Errorf("StatusCode(%q) = %d; want %d", tc.status, got, tc.want)
		}
	}
}

func TestValidateStructPriority(t *testing.T) {
	type request struct {
		Priority string `validate:"omitempty,priority"`
	}

	for _, valid := range []string{"", "low", "normal", "high"} {
		if err := ValidateStruct(request{Priority: valid}); err != nil {
			t.Errorf("ValidateStruct(priority=%q) returned error %v", valid, err)
		}
	}
	for _, invalid := range []string{"urgent", "High", "laag"} {
		if err := ValidateStruct(request{Priority: invalid}); err == nil {
			t.Errorf("ValidateStruct(priority=%q) expected an error", invalid)
		}
	}
}

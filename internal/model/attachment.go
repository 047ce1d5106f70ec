package model

import (
	"time"

	"github.com/delta10/signalen-console/util"
)

// Attachment is a file tied to exactly one signal. The upstream exposes no
// first-class id field; identity is recovered from the self link or, as a
// last resort, from the display string.
type Attachment struct {
	Display   string    `json:"_display,omitempty"`
	Links     Links     `json:"_links,omitempty"`
	Location  string    `json:"location"`
	IsImage   bool      `json:"is_image"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
	Public    bool      `json:"public,omitempty"`
	Caption   string    `json:"caption,omitempty"`
}

// ResolveID returns the attachment identifier used by the DELETE endpoint.
func (a Attachment) ResolveID() (string, bool) {
	if id, ok := util.TrailingNumericID(a.Links.Self.Href); ok {
		return id, true
	}
	return util.LastNumericToken(a.Display)
}

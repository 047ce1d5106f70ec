package model

import (
	"strconv"
	"time"

	"github.com/delta10/signalen-console/util"
)

// Signal is the canonical incident representation. It is decoded once at
// the upstream boundary; the rest of the app never touches raw JSON.
type Signal struct {
	Links          Links     `json:"_links,omitempty"`
	Display        string    `json:"_display,omitempty"`
	ID             int64     `json:"id"`
	IDDisplay      string    `json:"id_display,omitempty"`
	SignalUUID     string    `json:"signal_id,omitempty"`
	Source         string    `json:"source,omitempty"`
	Text           string    `json:"text"`
	TextExtra      string    `json:"text_extra,omitempty"`
	Status         Status    `json:"status"`
	Location       Location  `json:"location"`
	Category       Category  `json:"category"`
	Reporter       Reporter  `json:"reporter"`
	Priority       Priority  `json:"priority"`
	Type           TypeInfo  `json:"type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	HasAttachments bool      `json:"has_attachments"`
	Notes          []Note    `json:"notes,omitempty"`

	DirectingDepartments []Department `json:"directing_departments,omitempty"`
	RoutingDepartments   []Department `json:"routing_departments,omitempty"`
	AssignedUserEmail    string       `json:"assigned_user_email,omitempty"`
	HasParent            bool         `json:"has_parent,omitempty"`
	HasChildren          bool         `json:"has_children,omitempty"`
}

type Status struct {
	Text         string    `json:"text"`
	User         string    `json:"user,omitempty"`
	State        string    `json:"state"`
	StateDisplay string    `json:"state_display"`
	SendEmail    bool      `json:"send_email,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

type Priority struct {
	Priority  string `json:"priority"`
	CreatedBy string `json:"created_by,omitempty"`
}

type Location struct {
	ID           int64  `json:"id,omitempty"`
	Stadsdeel    string `json:"stadsdeel,omitempty"`
	AreaName     string `json:"area_name,omitempty"`
	AddressText  string `json:"address_text,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	Geometrie    Point  `json:"geometrie"`
	CreatedBy    string `json:"created_by,omitempty"`
	BagValidated bool   `json:"bag_validated,omitempty"`
}

// Point is a GeoJSON point, coordinates ordered lon,lat.
type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Category carries a few alternative id fields because the upstream is not
// consistent about which one it populates.
type Category struct {
	ID          int64  `json:"id,omitempty"`
	PK          int64  `json:"pk,omitempty"`
	CategoryID  int64  `json:"category_id,omitempty"`
	Sub         string `json:"sub,omitempty"`
	SubSlug     string `json:"sub_slug,omitempty"`
	Main        string `json:"main,omitempty"`
	MainSlug    string `json:"main_slug,omitempty"`
	CategoryURL string `json:"category_url,omitempty"`
	Departments string `json:"departments,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
}

// ResolveID finds the category identifier in whichever field the upstream
// populated, falling back to the trailing segment of the category URL.
func (c Category) ResolveID() (string, bool) {
	for _, id := range []int64{c.ID, c.PK, c.CategoryID} {
		if id != 0 {
			return strconv.FormatInt(id, 10), true
		}
	}
	if c.CategoryURL != "" {
		return util.TrailingNumericID(c.CategoryURL)
	}
	return "", false
}

type Reporter struct {
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	SharingAllowed bool   `json:"sharing_allowed,omitempty"`
	AllowsContact  bool   `json:"allows_contact,omitempty"`
}

type TypeInfo struct {
	Code      string `json:"code,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
}

type Note struct {
	Text      string `json:"text"`
	CreatedBy string `json:"created_by"`
}

type Department struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsIntern bool   `json:"is_intern"`
}

type Links struct {
	Self Link `json:"self"`
}

type Link struct {
	Href string `json:"href"`
}

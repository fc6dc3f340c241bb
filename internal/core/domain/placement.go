package domain

import (
	"regexp"
	"time"
)

// PlacementType describes where on a page a placement slot lives.
type PlacementType string

const (
	PlacementHeader       PlacementType = "header"
	PlacementSidebar      PlacementType = "sidebar"
	PlacementFooter       PlacementType = "footer"
	PlacementBetweenPosts PlacementType = "between_posts"
	PlacementPopup        PlacementType = "popup"
	PlacementInContent    PlacementType = "in_content"
)

// Valid reports whether t is one of the known placement types.
func (t PlacementType) Valid() bool {
	switch t {
	case PlacementHeader, PlacementSidebar, PlacementFooter,
		PlacementBetweenPosts, PlacementPopup, PlacementInContent:
		return true
	}
	return false
}

// Default placement attributes applied when the authoring request leaves
// them empty.
const (
	DefaultPlacementWidth  = 300
	DefaultPlacementHeight = 250
	DefaultPlacementMaxAds = 5
	DefaultPriority        = 1
)

var placementCodeRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Placement is a named slot in a page where ads may appear. Code is unique
// across the system and is the key used by the render cache.
type Placement struct {
	ID          int64
	Name        string
	Code        string
	Type        PlacementType
	Description string
	Width       int
	Height      int
	Active      bool
	MaxAds      int
	// Priority orders competing placements. Selection does not use it.
	Priority  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyDefaults fills zero-valued dimensions and limits.
func (p *Placement) ApplyDefaults() {
	if p.Width == 0 {
		p.Width = DefaultPlacementWidth
	}
	if p.Height == 0 {
		p.Height = DefaultPlacementHeight
	}
	if p.MaxAds == 0 {
		p.MaxAds = DefaultPlacementMaxAds
	}
	if p.Priority == 0 {
		p.Priority = DefaultPriority
	}
}

// Validate checks the authoring rules for a placement.
func (p *Placement) Validate() error {
	verr := &ValidationError{}
	if p.Name == "" {
		verr.Add("name", "name is required")
	}
	if !placementCodeRe.MatchString(p.Code) {
		verr.Add("code", "code must be a valid identifier (letters, numbers, underscores)")
	}
	if !p.Type.Valid() {
		verr.Add("placement_type", "unknown placement type")
	}
	if p.Width < 0 || p.Height < 0 {
		verr.Add("size", "width and height must be positive")
	}
	if p.MaxAds < 0 {
		verr.Add("max_ads", "max_ads must be positive")
	}
	return verr.OrNil()
}

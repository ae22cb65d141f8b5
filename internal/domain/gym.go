// Package domain contains the core business logic and entities.
// This package has no external dependencies (only stdlib).
package domain

// MajorArea is the coarse grouping a gym's area tag resolves to.
// Used for filtering and display ordering.
type MajorArea string

const (
	MajorAreaLocal      MajorArea = "local"
	MajorAreaRegional   MajorArea = "regional"
	MajorAreaNationwide MajorArea = "nationwide"

	// MajorAreaUnassigned is the graceful fallback when a gym's area tag
	// has no matching Area record.
	MajorAreaUnassigned MajorArea = ""
)

// Gym is a bouldering gym known to the tracker.
// Name is the unique key within a snapshot.
type Gym struct {
	Name       string   `json:"name"`
	ProfileURL string   `json:"profile_url,omitempty"`
	AreaTag    string   `json:"area_tag,omitempty"`
	Tags       []string `json:"tags,omitempty"` // wall-style labels, e.g. "slab", "board"
}

// Area maps an area tag to its major area grouping.
type Area struct {
	Tag       string    `json:"tag"`
	MajorArea MajorArea `json:"major_area"`
}

// User is a tracker participant. Color and Icon are display accents only.
type User struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// ResolveMajorArea returns the major area for a gym's area tag, or
// MajorAreaUnassigned when the tag has no matching Area record.
func ResolveMajorArea(areaTag string, areas []Area) MajorArea {
	for _, a := range areas {
		if a.Tag == areaTag {
			return a.MajorArea
		}
	}
	return MajorAreaUnassigned
}

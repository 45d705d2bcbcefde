// Package models defines the documents persisted by the memoria server.
// Documents are stored as JSON; exported fields carry json tags matching
// the camelCase names used by the editing UI.
package models

// Position is a focal point inside an image, in percent of width/height.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Image is a profile or cover image reference.
type Image struct {
	URL      string   `json:"url"`
	Position Position `json:"position"`
	Scale    float64  `json:"scale,omitempty"`
	FileSize int64    `json:"fileSize,omitempty"`
}

// IsZero reports whether no image is set.
func (i *Image) IsZero() bool {
	return i == nil || i.URL == ""
}

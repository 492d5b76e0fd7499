// Package outline assembles scored heading candidates into the final
// document outline: ordered, de-duplicated, and nested consistently via a
// running hierarchy path.
package outline

// Item is one entry of a document outline. Position is retained for
// section boundary arithmetic but is not part of the serialized shape.
type Item struct {
	Level    string  `json:"level"`
	Text     string  `json:"text"`
	Page     int     `json:"page"`
	Position float64 `json:"-"`
}

// Outline is the inferred logical structure of one document. Immutable
// once returned; order is document reading order.
type Outline struct {
	Title   string `json:"title"`
	Outline []Item `json:"outline"`
}

// Decision records why a candidate was accepted or rejected. The
// heuristics drop candidates aggressively, so the trace is the only way
// to validate a surprising outline.
type Decision struct {
	Text     string
	Page     int
	Accepted bool
	Reason   string
}

package domain

import "strings"

// Labels for the two route endpoints.
const (
	LabelStart = "start"
	LabelEnd   = "end"
)

// EndpointInput is one user-supplied route endpoint, created per search
// invocation from the current text fields.
type EndpointInput struct {
	Label   string
	RawText string
}

// Normalize collapses whitespace so equal addresses produce identical
// lookup and cache keys.
func (e EndpointInput) Normalize() string {
	return strings.Join(strings.Fields(e.RawText), " ")
}

// Empty reports whether the input holds no text after trimming.
func (e EndpointInput) Empty() bool { return e.Normalize() == "" }

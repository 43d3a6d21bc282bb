package storage

import "fmt"

// Scope selects which persisted file a change belongs to.
type Scope int

const (
	// ScopeModel covers ModelData
	ScopeModel Scope = iota
	// ScopeGeneral covers GeneralData
	ScopeGeneral
)

// String returns the scope name
func (s Scope) String() string {
	switch s {
	case ScopeModel:
		return "model"
	case ScopeGeneral:
		return "general"
	default:
		return fmt.Sprintf("Scope(%d)", s)
	}
}

// DirtyMarker receives "configuration changed" signals.
type DirtyMarker interface {
	MarkDirty(scope Scope)
}

// DirtyFunc adapts a function to DirtyMarker.
type DirtyFunc func(scope Scope)

// MarkDirty calls f(scope)
func (f DirtyFunc) MarkDirty(scope Scope) {
	f(scope)
}

// DirtyCounter is a DirtyMarker that counts signals per scope, for tests
// and for callers that only need to know whether anything changed.
type DirtyCounter struct {
	Model   int
	General int
}

// MarkDirty increments the counter for scope
func (c *DirtyCounter) MarkDirty(scope Scope) {
	switch scope {
	case ScopeModel:
		c.Model++
	case ScopeGeneral:
		c.General++
	}
}

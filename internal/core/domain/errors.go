package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when an ad or placement does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPlacementInUse is returned when deleting a placement that still
	// owns ads without asking for a cascade.
	ErrPlacementInUse = errors.New("placement has advertisements")
)

// ValidationError collects field level authoring errors.
type ValidationError struct {
	Fields map[string]string
}

// Add records msg for field, keeping the first message per field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// OrNil returns nil when no field failed, so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

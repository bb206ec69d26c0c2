// Package filter implements the faceted filtering engine shared by every
// directory domain: a declared constraint schema per record type, a mutable
// criteria set, and pure predicate evaluation over an immutable catalog.
package filter

import (
	"fmt"
	"sort"

	"github.com/wanderfolk/wayfarer/internal/common"
)

// Kind identifies the constraint applied to one record field.
type Kind int

// Constraint kinds.
const (
	// Equals matches a string field exactly (case-insensitive).
	Equals Kind = iota
	// AnyOf matches when the record's tag list shares at least one value
	// with the criterion's list.
	AnyOf
	// AllOf matches when every criterion value appears in the record's
	// tag list.
	AllOf
	// MaxNumeric matches when the numeric field is at or below a ceiling.
	MaxNumeric
	// RangeNumeric matches when the numeric field falls inside inclusive
	// bounds; a nil bound is unbounded.
	RangeNumeric
	// Substring matches when the lower-cased query is a substring of any
	// designated text field. An empty query is inactive, never
	// "match nothing".
	Substring
)

func (k Kind) String() string {
	switch k {
	case Equals:
		return "equals"
	case AnyOf:
		return "any-of"
	case AllOf:
		return "all-of"
	case MaxNumeric:
		return "max"
	case RangeNumeric:
		return "range"
	case Substring:
		return "substring"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Range holds inclusive numeric bounds. A nil bound is unbounded.
type Range struct {
	Min *float64
	Max *float64
}

// Field binds a constraint kind to the record accessors it evaluates.
// Exactly one accessor group must be set, matching the kind: String for
// Equals, Tags for AnyOf/AllOf, Number for MaxNumeric/RangeNumeric, Texts
// for Substring. Number reports ok=false when the record lacks the field;
// a missing field fails the constraint, it is never vacuously true.
type Field[T any] struct {
	String func(T) string
	Tags   func(T) []string
	Number func(T) (float64, bool)
	Texts  func(T) []string
	Kind   Kind
}

// Schema declares the full criteria key space for one domain. Keys are fixed
// up front; supplying an unrecognized key later is a configuration error,
// never silently ignored.
type Schema[T any] struct {
	fields map[string]Field[T]
	order  []string
}

// NewSchema validates the field declarations and fixes the evaluation order:
// cheap kinds (equality, numeric) before substring search, alphabetical
// within a kind so evaluation is deterministic.
func NewSchema[T any](fields map[string]Field[T]) (*Schema[T], error) {
	for key, f := range fields {
		if err := validateField(key, f); err != nil {
			return nil, err
		}
	}

	order := make([]string, 0, len(fields))
	for key := range fields {
		order = append(order, key)
	}
	sort.Slice(order, func(i, j int) bool {
		ki, kj := fields[order[i]].Kind, fields[order[j]].Kind
		if ki != kj {
			return ki < kj
		}
		return order[i] < order[j]
	})

	return &Schema[T]{fields: fields, order: order}, nil
}

// MustSchema is NewSchema for statically declared schemas; it panics on a
// bad declaration.
func MustSchema[T any](fields map[string]Field[T]) *Schema[T] {
	s, err := NewSchema(fields)
	if err != nil {
		panic(err)
	}
	return s
}

// Keys returns the declared criteria keys in evaluation order.
func (s *Schema[T]) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

func validateField[T any](key string, f Field[T]) error {
	var ok bool
	switch f.Kind {
	case Equals:
		ok = f.String != nil
	case AnyOf, AllOf:
		ok = f.Tags != nil
	case MaxNumeric, RangeNumeric:
		ok = f.Number != nil
	case Substring:
		ok = f.Texts != nil
	default:
		return common.NewConfigError(key, fmt.Errorf("%w: unknown kind %v", common.ErrBadConstraint, f.Kind))
	}

	if !ok {
		return common.NewConfigError(key, fmt.Errorf("%w: missing accessor for kind %v", common.ErrBadConstraint, f.Kind))
	}
	return nil
}

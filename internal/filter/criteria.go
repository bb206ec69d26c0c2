package filter

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wanderfolk/wayfarer/internal/common"
)

// Criteria is the mutable set of constraints a caller is currently filtering
// by. A key with no value imposes no constraint. Criteria are owned by a
// single session; they are not safe for concurrent mutation.
type Criteria[T any] struct {
	schema *Schema[T]
	values map[string]any
}

// NewCriteria returns an empty criteria set bound to this schema.
func (s *Schema[T]) NewCriteria() *Criteria[T] {
	return &Criteria[T]{
		schema: s,
		values: make(map[string]any),
	}
}

// Set replaces the constraint for one key, leaving the others untouched.
// A nil value deactivates the key. The value's shape must match the key's
// declared kind: string for Equals/Substring, []string for AnyOf/AllOf,
// float64 for MaxNumeric, Range for RangeNumeric.
func (c *Criteria[T]) Set(key string, value any) error {
	field, ok := c.schema.fields[key]
	if !ok {
		return common.NewConfigError(key, common.ErrUnknownFilterKey)
	}

	if value == nil {
		delete(c.values, key)
		return nil
	}

	if err := checkShape(key, field.Kind, value); err != nil {
		return err
	}

	c.values[key] = value
	return nil
}

// Clear resets every constraint to inactive.
func (c *Criteria[T]) Clear() {
	c.values = make(map[string]any)
}

// ReplaceAll bulk-sets the criteria. On any error the prior state is kept
// intact; a replace either fully applies or not at all.
func (c *Criteria[T]) ReplaceAll(values map[string]any) error {
	next := make(map[string]any, len(values))
	for key, value := range values {
		field, ok := c.schema.fields[key]
		if !ok {
			return common.NewConfigError(key, common.ErrUnknownFilterKey)
		}
		if value == nil {
			continue
		}
		if err := checkShape(key, field.Kind, value); err != nil {
			return err
		}
		next[key] = value
	}

	c.values = next
	return nil
}

// ActiveCount returns how many keys currently impose a constraint. Empty
// strings, empty lists and fully unbounded ranges do not count.
func (c *Criteria[T]) ActiveCount() int {
	count := 0
	for key := range c.values {
		if c.isActive(key) {
			count++
		}
	}
	return count
}

func (c *Criteria[T]) isActive(key string) bool {
	value, ok := c.values[key]
	if !ok {
		return false
	}

	switch v := value.(type) {
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	case Range:
		return v.Min != nil || v.Max != nil
	case float64:
		return true
	}
	return false
}

// Fingerprint returns a stable digest of the active constraints, used as
// the memo cache key. Identical criteria always produce the same
// fingerprint regardless of mutation order.
func (c *Criteria[T]) Fingerprint() string {
	keys := make([]string, 0, len(c.values))
	for key := range c.values {
		if c.isActive(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteByte('=')
		encodeValue(&b, c.values[key])
		b.WriteByte(';')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%x", sum)
}

func encodeValue(b *strings.Builder, value any) {
	switch v := value.(type) {
	case string:
		b.WriteString(strconv.Quote(v))
	case []string:
		for i, s := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(s))
		}
	case Range:
		b.WriteString(encodeBound(v.Min))
		b.WriteByte(':')
		b.WriteString(encodeBound(v.Max))
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
}

func encodeBound(bound *float64) string {
	if bound == nil {
		return "*"
	}
	return strconv.FormatFloat(*bound, 'g', -1, 64)
}

func checkShape(key string, kind Kind, value any) error {
	var ok bool
	switch kind {
	case Equals, Substring:
		_, ok = value.(string)
	case AnyOf, AllOf:
		_, ok = value.([]string)
	case MaxNumeric:
		_, ok = value.(float64)
	case RangeNumeric:
		_, ok = value.(Range)
	}

	if !ok {
		return common.NewConfigError(key, fmt.Errorf("%w: %T not valid for %v", common.ErrBadConstraint, value, kind))
	}
	return nil
}

package filter

import "strings"

// Filter returns the records satisfying every active constraint, as a fresh
// slice preserving catalog order. The input is never modified. Evaluation is
// pure: identical (records, criteria) always yield identical output.
func (s *Schema[T]) Filter(records []T, c *Criteria[T]) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if s.Matches(rec, c) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches evaluates one record against the full active criteria set:
// logical AND across keys, stopping at the first failing constraint.
// Keys are visited in schema order, cheap kinds first.
func (s *Schema[T]) Matches(rec T, c *Criteria[T]) bool {
	for _, key := range s.order {
		if !c.isActive(key) {
			continue
		}
		if !s.matchesKey(rec, key, c.values[key]) {
			return false
		}
	}
	return true
}

func (s *Schema[T]) matchesKey(rec T, key string, value any) bool {
	field := s.fields[key]

	switch field.Kind {
	case Equals:
		want, _ := value.(string)
		return strings.EqualFold(field.String(rec), want)

	case AnyOf:
		want, _ := value.([]string)
		return anyTag(field.Tags(rec), want)

	case AllOf:
		want, _ := value.([]string)
		return allTags(field.Tags(rec), want)

	case MaxNumeric:
		ceiling, _ := value.(float64)
		v, ok := field.Number(rec)
		return ok && v <= ceiling

	case RangeNumeric:
		r, _ := value.(Range)
		v, ok := field.Number(rec)
		if !ok {
			return false
		}
		if r.Min != nil && v < *r.Min {
			return false
		}
		if r.Max != nil && v > *r.Max {
			return false
		}
		return true

	case Substring:
		query, _ := value.(string)
		return containsFold(field.Texts(rec), query)
	}

	return false
}

// anyTag reports whether the record's tags intersect the wanted tags.
func anyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

// allTags reports whether every wanted tag appears among the record's tags.
func allTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// containsFold reports whether the lower-cased query is a substring of any
// of the texts.
func containsFold(texts []string, query string) bool {
	q := strings.ToLower(query)
	for _, text := range texts {
		if strings.Contains(strings.ToLower(text), q) {
			return true
		}
	}
	return false
}

package pagination

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownSortField is returned for sort keys outside the allowed set.
var ErrUnknownSortField = errors.New("unknown sort field")

// SortField is one ordering key. Desc is set by a leading "-" in the query form.
type SortField struct {
	Field string
	Desc  bool
}

// Sort is an ordered list of keys, most significant first.
type Sort []SortField

// ParseSort reads the "-createdAt,title" query form. Empty input yields the
// parsed fallback. Every field must be in allowed.
func ParseSort(raw string, fallback string, allowed []string) (Sort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}

	var out Sort
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		f := SortField{Field: part}
		switch part[0] {
		case '-':
			f.Field, f.Desc = part[1:], true
		case '+':
			f.Field = part[1:]
		}

		if !slices.Contains(allowed, f.Field) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSortField, f.Field)
		}
		if out.Has(f.Field) {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// Has reports whether field is already part of the ordering.
func (s Sort) Has(field string) bool {
	return slices.ContainsFunc(s, func(f SortField) bool { return f.Field == field })
}

// WithTiebreak appends a unique field so equal keys still order deterministically.
// The tiebreak follows the direction of the primary key.
func (s Sort) WithTiebreak(field string) Sort {
	if s.Has(field) {
		return s
	}
	desc := len(s) > 0 && s[0].Desc
	out := make(Sort, 0, len(s)+1)
	out = append(out, s...)
	return append(out, SortField{Field: field, Desc: desc})
}

// String renders the ordering back in query form.
func (s Sort) String() string {
	parts := make([]string, len(s))
	for i, f := range s {
		if f.Desc {
			parts[i] = "-" + f.Field
		} else {
			parts[i] = f.Field
		}
	}
	return strings.Join(parts, ",")
}

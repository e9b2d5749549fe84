// Package directory implements the shared filter engine behind the artist,
// label and festival listings: free-text matching, categorical filters with
// an "all" sentinel, live facet derivation and load-more windowing.
package directory

import (
	"sort"
	"strings"
)

// PageSize is the number of visible items per "load more" step.
const PageSize = 6

// All is the sentinel categorical value meaning "no constraint".
const All = "all"

// Entity is anything the filter engine can match: directory records expose
// their free-text haystack and one categorical value per filter dimension.
type Entity interface {
	SearchText() []string
	Facet(dim string) string
}

// Criteria holds the active filters. Unset fields mean no constraint.
type Criteria struct {
	Query  string
	Fields map[string]string // dimension -> selected value
}

func active(value string) bool {
	return value != "" && value != All
}

// Matches reports whether e satisfies every constraint in c. The free-text
// query matches on a case-insensitive substring of any SearchText entry;
// categorical filters require equality unless inert.
func Matches(e Entity, c Criteria) bool {
	if c.Query != "" {
		q := strings.ToLower(c.Query)
		found := false
		for _, hay := range e.SearchText() {
			if strings.Contains(strings.ToLower(hay), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for dim, want := range c.Fields {
		if !active(want) {
			continue
		}
		if e.Facet(dim) != want {
			return false
		}
	}
	return true
}

// Filter returns the matching subset of entities in their original order.
func Filter[E Entity](entities []E, c Criteria) []E {
	out := make([]E, 0, len(entities))
	for _, e := range entities {
		if Matches(e, c) {
			out = append(out, e)
		}
	}
	return out
}

// Facets computes the selectable values for dimension dim: the full set is
// filtered by every dimension except dim (queries included), then the
// distinct values of dim are collected and sorted. By construction no
// returned value can yield an empty result when selected.
func Facets[E Entity](entities []E, c Criteria, dim string) []string {
	rest := Criteria{Query: c.Query}
	if len(c.Fields) > 0 {
		rest.Fields = make(map[string]string, len(c.Fields))
		for d, v := range c.Fields {
			if d != dim {
				rest.Fields[d] = v
			}
		}
	}

	seen := make(map[string]bool)
	values := []string{}
	for _, e := range Filter(entities, rest) {
		v := e.Facet(dim)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Visible clamps the load-more window: loads counts "load more" invocations
// since the last filter change. loads is caller-supplied, so it is bounded
// before multiplying; an absurd value cannot overflow into a negative
// window.
func Visible(total, loads int) int {
	if loads < 0 {
		loads = 0
	}
	if maxLoads := total / PageSize; loads > maxLoads {
		loads = maxLoads
	}
	v := PageSize * (loads + 1)
	if v > total {
		v = total
	}
	return v
}

// Window returns the first visible items of the filtered list.
func Window[E Entity](entities []E, visible int) []E {
	if visible < 0 {
		visible = 0
	}
	if visible > len(entities) {
		visible = len(entities)
	}
	return entities[:visible]
}

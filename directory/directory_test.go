package directory

import (
	"math"
	"reflect"
	"testing"
)

type testArtist struct {
	name     string
	location string
	country  string
	genres   []string
	kind     string
}

func (a testArtist) SearchText() []string {
	return append([]string{a.name, a.location, a.country}, a.genres...)
}

func (a testArtist) Facet(dim string) string {
	switch dim {
	case "type":
		return a.kind
	case "country":
		return a.country
	default:
		return ""
	}
}

func roster() []testArtist {
	return []testArtist{
		{"Nova Pulse", "Berlin", "Germany", []string{"Progressive Techno"}, "dj"},
		{"Velvet Array", "Amsterdam", "Netherlands", []string{"House"}, "live"},
		{"Karst", "Leipzig", "Germany", []string{"Industrial Techno", "EBM"}, "dj"},
		{"Signal Moth", "Tbilisi", "Georgia", []string{"Acid Techno"}, "hybrid"},
		{"Lumen Tide", "Lisbon", "Portugal", []string{"Melodic House"}, "live"},
		{"Ferrite", "Detroit", "USA", []string{"Techno"}, "dj"},
		{"Glasswing", "Berlin", "Germany", []string{"Ambient"}, "live"},
		{"Oxide Nine", "Manchester", "UK", []string{"UK Techno"}, "dj"},
		{"Mira Sol", "Barcelona", "Spain", []string{"Progressive House"}, "hybrid"},
		{"Cold Array", "Oslo", "Norway", []string{"Trance"}, "dj"},
	}
}

func names(items []testArtist) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

func TestFilterEmptyCriteriaReturnsAll(t *testing.T) {
	all := roster()
	got := Filter(all, Criteria{})
	if !reflect.DeepEqual(names(got), names(all)) {
		t.Fatalf("empty criteria changed the list: %v", names(got))
	}
}

func TestFilterQueryMatchesGenreSubstring(t *testing.T) {
	got := Filter(roster(), Criteria{Query: "Techno"})
	want := []string{"Nova Pulse", "Karst", "Signal Moth", "Ferrite", "Oxide Nine"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("query=Techno got %v want %v", names(got), want)
	}
	// case-insensitive
	if got2 := Filter(roster(), Criteria{Query: "techno"}); len(got2) != len(got) {
		t.Fatalf("case-insensitive mismatch: %d vs %d", len(got2), len(got))
	}
}

func TestFilterPreservesOrderAndIsIdempotent(t *testing.T) {
	c := Criteria{Query: "e", Fields: map[string]string{"type": "dj"}}
	once := Filter(roster(), c)
	twice := Filter(once, c)
	if !reflect.DeepEqual(names(once), names(twice)) {
		t.Fatalf("filter not idempotent: %v vs %v", names(once), names(twice))
	}

	// every returned item satisfies every constraint
	for _, it := range once {
		if !Matches(it, c) {
			t.Fatalf("item %q fails its own criteria", it.name)
		}
	}
}

func TestFilterAllSentinelIsInert(t *testing.T) {
	with := Filter(roster(), Criteria{Fields: map[string]string{"type": All}})
	if len(with) != len(roster()) {
		t.Fatalf("sentinel %q filtered the list to %d items", All, len(with))
	}
}

func TestFacetsExcludeOwnDimension(t *testing.T) {
	c := Criteria{Fields: map[string]string{"type": "dj", "country": "Germany"}}
	countries := Facets(roster(), c, "country")
	// the country filter itself must not constrain its own facet values
	want := []string{"Germany", "Norway", "UK", "USA"}
	if !reflect.DeepEqual(countries, want) {
		t.Fatalf("countries got %v want %v", countries, want)
	}
}

func TestFacetsNeverOfferDeadOptions(t *testing.T) {
	c := Criteria{Query: "Techno", Fields: map[string]string{"type": "dj"}}
	for _, dim := range []string{"type", "country"} {
		for _, v := range Facets(roster(), c, dim) {
			next := Criteria{Query: c.Query, Fields: map[string]string{}}
			for d, val := range c.Fields {
				next.Fields[d] = val
			}
			next.Fields[dim] = v
			if len(Filter(roster(), next)) == 0 {
				t.Fatalf("facet %s=%q yields no results", dim, v)
			}
		}
	}
}

func TestVisibleLoadMore(t *testing.T) {
	if got := Visible(10, 0); got != 6 {
		t.Fatalf("initial visible = %d, want 6", got)
	}
	if got := Visible(10, 1); got != 10 {
		t.Fatalf("one load over 10 items = %d, want 10", got)
	}
	if got := Visible(20, 1); got != 12 {
		t.Fatalf("one load over 20 items = %d, want 12", got)
	}
}

// loads comes straight off the query string; extreme values must clamp to
// the full list, never wrap into an empty window.
func TestVisibleExtremeLoads(t *testing.T) {
	if got := Visible(10, math.MaxInt); got != 10 {
		t.Fatalf("huge loads = %d, want 10", got)
	}
	if got := Visible(10, math.MaxInt/PageSize); got != 10 {
		t.Fatalf("near-overflow loads = %d, want 10", got)
	}
	if got := Visible(10, -3); got != 6 {
		t.Fatalf("negative loads = %d, want 6", got)
	}
	if got := Visible(0, math.MaxInt); got != 0 {
		t.Fatalf("empty list = %d, want 0", got)
	}
}

func TestWindowClamps(t *testing.T) {
	all := roster()
	if got := Window(all, 6); len(got) != 6 {
		t.Fatalf("window(6) returned %d items", len(got))
	}
	if got := Window(all, 99); len(got) != len(all) {
		t.Fatalf("window(99) returned %d items", len(got))
	}
}

package nlp

import "testing"

func TestLexiconResolveAirportAlias(t *testing.T) {
	lex := NewLexicon()

	tests := []struct {
		alias string
		want  string
	}{
		{"dubai", "DXB"},
		{"heathrow", "LHR"},
		{"london", "LHR"},
		{"tokyo", "NRT"},
		{"jfk", "JFK"}, // codes resolve as their own alias
		{"lax", "LAX"},
	}

	for _, tt := range tests {
		got, ok := lex.ResolveAirportAlias(tt.alias)
		if !ok || got != tt.want {
			t.Errorf("ResolveAirportAlias(%q) = %q, %v; want %q, true", tt.alias, got, ok, tt.want)
		}
	}

	if _, ok := lex.ResolveAirportAlias("atlantis"); ok {
		t.Error("ResolveAirportAlias(atlantis) should not resolve")
	}
}

func TestLexiconResolveAirlineAlias(t *testing.T) {
	lex := NewLexicon()

	tests := []struct {
		alias string
		want  string
	}{
		{"emirates", "EK"},
		{"british airways", "BA"},
		{"qatar", "QR"},
		{"ek", "EK"},
	}

	for _, tt := range tests {
		got, ok := lex.ResolveAirlineAlias(tt.alias)
		if !ok || got != tt.want {
			t.Errorf("ResolveAirlineAlias(%q) = %q, %v; want %q, true", tt.alias, got, ok, tt.want)
		}
	}
}

func TestLexiconAirportsForCountry(t *testing.T) {
	lex := NewLexicon()

	airports := lex.AirportsForCountry("united states")
	if len(airports) == 0 {
		t.Fatal("expected airports for united states")
	}
	if airports[0] != "JFK" {
		t.Errorf("first airport = %q, want JFK", airports[0])
	}

	byAlias := lex.AirportsForCountry("USA")
	if len(byAlias) == 0 || byAlias[0] != airports[0] {
		t.Errorf("country alias lookup disagrees: %v vs %v", byAlias, airports)
	}

	if got := lex.AirportsForCountry("atlantis"); len(got) != 0 {
		t.Errorf("unknown country returned %v", got)
	}
}

func TestLexiconWithReferenceEntries(t *testing.T) {
	lex := NewLexiconWithEntries(
		[]AirportEntry{{Code: "xxa", Name: "Example Field", Aliases: []string{"exampleville"}}},
		[]AirlineEntry{{Code: "zz", Aliases: []string{"zeta air"}}},
	)

	if got, ok := lex.ResolveAirportAlias("exampleville"); !ok || got != "XXA" {
		t.Errorf("merged airport alias = %q, %v; want XXA, true", got, ok)
	}
	if got := lex.AirportName("XXA"); got != "Example Field" {
		t.Errorf("AirportName(XXA) = %q", got)
	}
	if got, ok := lex.ResolveAirlineAlias("zeta air"); !ok || got != "ZZ" {
		t.Errorf("merged airline alias = %q, %v; want ZZ, true", got, ok)
	}

	// Built-ins survive the merge
	if got, ok := lex.ResolveAirportAlias("dubai"); !ok || got != "DXB" {
		t.Errorf("builtin alias lost after merge: %q, %v", got, ok)
	}
}

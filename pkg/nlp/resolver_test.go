package nlp

import (
	"testing"

	"flightchat-service/pkg/logger"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(NewLexicon(), logger.NewNopLogger())
}

func TestResolveAirport(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name string
		span string
		want string
		ok   bool
	}{
		{"exact alias", "dubai", "DXB", true},
		{"lowercase code", "lhr", "LHR", true},
		{"untrimmed input", "  Heathrow  ", "LHR", true},
		{"typo within threshold", "londn", "LHR", true},
		{"empty span", "", "", false},
		{"garbage", "zzzzzz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ResolveAirport(tt.span)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ResolveAirport(%q) = %q, %v; want %q, %v", tt.span, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveAirline(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name string
		span string
		want string
		ok   bool
	}{
		{"exact alias", "emirates", "EK", true},
		{"typo within threshold", "emirtes", "EK", true},
		{"unlisted bare code passes through", "xy", "XY", true},
		{"empty span", "", "", false},
		{"no match and not a code", "some random carrier", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ResolveAirline(tt.span)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ResolveAirline(%q) = %q, %v; want %q, %v", tt.span, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveAirportPrefersHigherSimilarity(t *testing.T) {
	// Two candidates clear the threshold; the higher-scoring one must win.
	lex := NewLexiconWithEntries([]AirportEntry{
		{Code: "QQA", Name: "Quay Alpha", Aliases: []string{"zzzaa"}},
		{Code: "QQB", Name: "Quay Bravo", Aliases: []string{"zzzad"}},
	}, nil)
	r := NewResolver(lex, logger.NewNopLogger())

	// "zzzdd" is one edit from "zzzad" (0.8) and two from "zzzaa" (0.6)
	got, ok := r.ResolveAirport("zzzdd")
	if !ok || got != "QQB" {
		t.Errorf("ResolveAirport(zzzdd) = %q, %v; want QQB, true", got, ok)
	}
}

func TestResolveAirportTieBreaksByAliasOrder(t *testing.T) {
	lex := NewLexiconWithEntries([]AirportEntry{
		{Code: "QQA", Name: "Quay Alpha", Aliases: []string{"zzzaa"}},
		{Code: "QQB", Name: "Quay Bravo", Aliases: []string{"zzzad"}},
	}, nil)
	r := NewResolver(lex, logger.NewNopLogger())

	// "zzzab" scores 0.8 against both aliases; the lexically first alias
	// ("zzzaa" < "zzzad") decides.
	got, ok := r.ResolveAirport("zzzab")
	if !ok || got != "QQA" {
		t.Errorf("ResolveAirport(zzzab) = %q, %v; want QQA, true", got, ok)
	}
}

func TestResolveCountryAirports(t *testing.T) {
	r := newTestResolver(t)

	airports := r.ResolveCountryAirports("united states")
	if len(airports) != maxCountryAirports {
		t.Fatalf("got %d airports, want %d", len(airports), maxCountryAirports)
	}
	if airports[0] != "JFK" {
		t.Errorf("first airport = %q, want JFK", airports[0])
	}

	if got := r.ResolveCountryAirports("nowhere"); len(got) != 0 {
		t.Errorf("unknown country returned %v", got)
	}
}

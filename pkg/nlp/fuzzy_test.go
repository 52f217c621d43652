package nlp

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "dubai", "dubai", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "dubai", "", 0.0},
		{"single edit", "dubai", "dubei", 0.8},
		{"transposed pair", "heathrow", "heathorw", 0.75},
		{"disjoint", "abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"emirates", "emirtes"},
		{"london", "lonndon"},
		{"sfo", "sofia"},
	}

	for _, pair := range pairs {
		forward := Similarity(pair[0], pair[1])
		backward := Similarity(pair[1], pair[0])
		if forward != backward {
			t.Errorf("Similarity(%q, %q) = %v but reversed = %v", pair[0], pair[1], forward, backward)
		}
	}
}

func TestSimilarityTypoAboveThreshold(t *testing.T) {
	// Common single-typo forms should clear the airport threshold
	tests := []struct {
		input string
		alias string
	}{
		{"dubia", "dubai"},
		{"londn", "london"},
		{"tokio", "tokyo"},
	}

	for _, tt := range tests {
		if got := Similarity(tt.input, tt.alias); got < AirportMatchThreshold {
			t.Errorf("Similarity(%q, %q) = %v, want >= %v", tt.input, tt.alias, got, AirportMatchThreshold)
		}
	}
}

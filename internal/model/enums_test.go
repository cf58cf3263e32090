package model

import (
	"reflect"
	"testing"
)

func TestIsValidState(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{"Known code", "CA", true},
		{"Another known code", "NY", true},
		{"Lowercase is not accepted", "ca", false},
		{"Unknown code", "XX", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidState(tt.code); got != tt.expected {
				t.Errorf("IsValidState(%q) = %v, want %v", tt.code, got, tt.expected)
			}
		})
	}
}

func TestIsValidGenre(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		expected bool
	}{
		{"Known tag", "Jazz", true},
		{"Tag with space", "Rock n Roll", true},
		{"Tag with ampersand", "R&B", true},
		{"Unknown tag", "Polka", false},
		{"Wrong case", "jazz", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidGenre(tt.tag); got != tt.expected {
				t.Errorf("IsValidGenre(%q) = %v, want %v", tt.tag, got, tt.expected)
			}
		})
	}
}

func TestGenresRoundTrip(t *testing.T) {
	in := []string{"Jazz", "R&B", "Rock n Roll"}
	if got := SplitGenres(JoinGenres(in)); !reflect.DeepEqual(got, in) {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}

func TestSplitGenresEmpty(t *testing.T) {
	got := SplitGenres("")
	if len(got) != 0 {
		t.Errorf("SplitGenres(\"\") = %v, want empty slice", got)
	}
}

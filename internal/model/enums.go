package model

import "strings"

// States is the closed vocabulary of two-letter region codes accepted for the
// state field on venues and artists. Values outside this list are rejected by
// the validation layer before any write is attempted.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// Genres is the closed vocabulary of genre tags. Venues and artists carry a
// non-empty subset of these.
var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// IsValidState reports whether code is a known region code.
func IsValidState(code string) bool {
	for _, s := range States {
		if s == code {
			return true
		}
	}
	return false
}

// IsValidGenre reports whether tag belongs to the genre vocabulary.
func IsValidGenre(tag string) bool {
	for _, g := range Genres {
		if g == tag {
			return true
		}
	}
	return false
}

// JoinGenres encodes a genre set into the comma-separated form stored in the
// genres column. Tags never contain commas, so the encoding is unambiguous.
func JoinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

// SplitGenres decodes the stored comma-separated genres column back into a
// slice. An empty column yields an empty slice, not a one-element slice.
func SplitGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

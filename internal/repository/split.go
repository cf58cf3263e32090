package repository

import (
	"time"

	"fyyur/internal/model"
)

// SplitVenueShows partitions a venue's shows into past and upcoming relative
// to now. The comparison is strictly before / strictly after: a show whose
// start time equals now lands in neither bucket.
func SplitVenueShows(rows []VenueShowRow, now time.Time) (past, upcoming []VenueShowRow, err error) {
	past = []VenueShowRow{}
	upcoming = []VenueShowRow{}
	for _, row := range rows {
		t, perr := time.ParseInLocation(model.TimeLayout, row.StartTime, time.UTC)
		if perr != nil {
			return nil, nil, perr
		}
		switch {
		case t.Before(now):
			past = append(past, row)
		case t.After(now):
			upcoming = append(upcoming, row)
		}
	}
	return past, upcoming, nil
}

// SplitArtistShows is the artist-side counterpart of SplitVenueShows.
func SplitArtistShows(rows []ArtistShowRow, now time.Time) (past, upcoming []ArtistShowRow, err error) {
	past = []ArtistShowRow{}
	upcoming = []ArtistShowRow{}
	for _, row := range rows {
		t, perr := time.ParseInLocation(model.TimeLayout, row.StartTime, time.UTC)
		if perr != nil {
			return nil, nil, perr
		}
		switch {
		case t.Before(now):
			past = append(past, row)
		case t.After(now):
			upcoming = append(upcoming, row)
		}
	}
	return past, upcoming, nil
}

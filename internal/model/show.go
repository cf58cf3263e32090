package model

// TimeLayout is the DB timestamp format used everywhere a show start time is
// stored or exchanged ("2006-01-02 15:04:05", UTC).
const TimeLayout = "2006-01-02 15:04:05"

// Show is a pure join record binding one venue, one artist and a start
// timestamp. Deleting the venue or artist cascades to the show via the
// schema's foreign keys.
// NOTE: StartTime is stored in DB format "2006-01-02 15:04:05" (UTC).
type Show struct {
	ID        uint64 `json:"id"`         // shows.id
	VenueID   uint64 `json:"venue_id"`   // shows.venue_id
	ArtistID  uint64 `json:"artist_id"`  // shows.artist_id
	StartTime string `json:"start_time"` // shows.start_time (DB timestamp string)
}

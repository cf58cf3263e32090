package model

// Artist represents a performer that plays at shows. This struct corresponds
// to a row in the `artists` table. Artist names are unique across the table
// (case-insensitive, enforced by the schema's ci collation).
type Artist struct {
	ID                 uint64   `json:"id"`                  // artists.id
	Name               string   `json:"name"`                // artists.name (unique)
	City               string   `json:"city"`                // artists.city
	State              string   `json:"state"`               // artists.state
	Phone              string   `json:"phone"`               // artists.phone
	Genres             []string `json:"genres"`              // artists.genres (CSV column)
	ImageLink          string   `json:"image_link"`          // artists.image_link
	FacebookLink       string   `json:"facebook_link"`       // artists.facebook_link
	Website            string   `json:"website"`             // artists.website
	SeekingVenue       bool     `json:"seeking_venue"`       // artists.seeking_venue
	SeekingDescription string   `json:"seeking_description"` // artists.seeking_description
}

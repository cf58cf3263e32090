package model

// Venue represents a location that hosts shows. This struct corresponds to a
// row in the `venues` table. Genres is decoded from the comma-separated
// genres column via SplitGenres.
//
// Fields:
//  ID                 – primary key identifier (auto-increment).
//  Name               – display name of the venue.
//  City, State        – location; State is one of model.States.
//  Address            – street address.
//  Phone              – contact phone number.
//  Genres             – non-empty subset of model.Genres.
//  ImageLink          – optional image URL.
//  FacebookLink       – optional Facebook page URL.
//  Website            – optional website URL.
//  SeekingTalent      – whether the venue is looking for artists to perform.
//  SeekingDescription – optional free text shown when seeking talent.
type Venue struct {
	ID                 uint64   `json:"id"`                  // venues.id
	Name               string   `json:"name"`                // venues.name
	City               string   `json:"city"`                // venues.city
	State              string   `json:"state"`               // venues.state
	Address            string   `json:"address"`             // venues.address
	Phone              string   `json:"phone"`               // venues.phone
	Genres             []string `json:"genres"`              // venues.genres (CSV column)
	ImageLink          string   `json:"image_link"`          // venues.image_link
	FacebookLink       string   `json:"facebook_link"`       // venues.facebook_link
	Website            string   `json:"website"`             // venues.website
	SeekingTalent      bool     `json:"seeking_talent"`      // venues.seeking_talent
	SeekingDescription string   `json:"seeking_description"` // venues.seeking_description
}

// Package validation checks form input for venues, artists and shows before
// any write is attempted. Each entity has a typed input struct bound from
// the urlencoded form body and an explicit mapping into the model struct;
// validation produces a structured list of (field, reason) pairs and a
// failed validation never reaches the repository.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fyyur/internal/model"
)

// Phone pattern: ten digits with optional dash, dot or space separators,
// e.g. "415-000-1234" or "4150001234".
var phonePattern = regexp.MustCompile(`^\d{3}[-.\s]?\d{3}[-.\s]?\d{4}$`)

// startTimeLayouts are the accepted shapes for show start times: RFC3339,
// the DB timestamp form, and the value an HTML datetime-local field submits.
var startTimeLayouts = []string{
	time.RFC3339,
	model.TimeLayout,
	"2006-01-02T15:04",
}

// FieldError is one validation failure, addressed to a single form field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// VenueInput is the urlencoded form body of the venue create and edit
// routes. Field names mirror the form the original site submits.
type VenueInput struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website_link"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

// ArtistInput is the urlencoded form body of the artist create and edit
// routes.
type ArtistInput struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website_link"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

// ShowInput is the urlencoded form body of the show create route.
type ShowInput struct {
	VenueID   string `form:"venue_id"`
	ArtistID  string `form:"artist_id"`
	StartTime string `form:"start_time"`
}

// Validate checks the venue input and returns one FieldError per failing
// field. A nil result means the input is valid.
func (in *VenueInput) Validate() []FieldError {
	var errs []FieldError
	errs = appendRequired(errs, "name", in.Name)
	errs = appendRequired(errs, "city", in.City)
	errs = appendRequired(errs, "address", in.Address)
	errs = appendState(errs, in.State)
	errs = appendPhone(errs, in.Phone)
	errs = appendGenres(errs, in.Genres)
	errs = appendURL(errs, "image_link", in.ImageLink)
	errs = appendURL(errs, "facebook_link", in.FacebookLink)
	errs = appendURL(errs, "website_link", in.Website)
	return errs
}

// ToModel maps validated venue input to a model.Venue. Call Validate first;
// mapping does not re-check anything.
func (in *VenueInput) ToModel() model.Venue {
	return model.Venue{
		Name:               strings.TrimSpace(in.Name),
		City:               strings.TrimSpace(in.City),
		State:              in.State,
		Address:            strings.TrimSpace(in.Address),
		Phone:              strings.TrimSpace(in.Phone),
		Genres:             in.Genres,
		ImageLink:          strings.TrimSpace(in.ImageLink),
		FacebookLink:       strings.TrimSpace(in.FacebookLink),
		Website:            strings.TrimSpace(in.Website),
		SeekingTalent:      parseCheckbox(in.SeekingTalent),
		SeekingDescription: strings.TrimSpace(in.SeekingDescription),
	}
}

// Validate checks the artist input the same way venues are checked.
func (in *ArtistInput) Validate() []FieldError {
	var errs []FieldError
	errs = appendRequired(errs, "name", in.Name)
	errs = appendRequired(errs, "city", in.City)
	errs = appendState(errs, in.State)
	errs = appendPhone(errs, in.Phone)
	errs = appendGenres(errs, in.Genres)
	errs = appendURL(errs, "image_link", in.ImageLink)
	errs = appendURL(errs, "facebook_link", in.FacebookLink)
	errs = appendURL(errs, "website_link", in.Website)
	return errs
}

// ToModel maps validated artist input to a model.Artist.
func (in *ArtistInput) ToModel() model.Artist {
	return model.Artist{
		Name:               strings.TrimSpace(in.Name),
		City:               strings.TrimSpace(in.City),
		State:              in.State,
		Phone:              strings.TrimSpace(in.Phone),
		Genres:             in.Genres,
		ImageLink:          strings.TrimSpace(in.ImageLink),
		FacebookLink:       strings.TrimSpace(in.FacebookLink),
		Website:            strings.TrimSpace(in.Website),
		SeekingVenue:       parseCheckbox(in.SeekingVenue),
		SeekingDescription: strings.TrimSpace(in.SeekingDescription),
	}
}

// Validate checks the show input: both ids must be positive integers and the
// start time must parse in one of the accepted layouts.
func (in *ShowInput) Validate() []FieldError {
	var errs []FieldError
	if _, err := parseID(in.VenueID); err != nil {
		errs = append(errs, FieldError{Field: "venue_id", Reason: "must be a positive integer id"})
	}
	if _, err := parseID(in.ArtistID); err != nil {
		errs = append(errs, FieldError{Field: "artist_id", Reason: "must be a positive integer id"})
	}
	if _, err := ParseStartTime(in.StartTime); err != nil {
		errs = append(errs, FieldError{Field: "start_time", Reason: "must be a valid timestamp"})
	}
	return errs
}

// ToModel maps validated show input to a model.Show with the start time
// normalized to the DB timestamp form in UTC.
func (in *ShowInput) ToModel() model.Show {
	venueID, _ := parseID(in.VenueID)
	artistID, _ := parseID(in.ArtistID)
	t, _ := ParseStartTime(in.StartTime)
	return model.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: t.UTC().Format(model.TimeLayout),
	}
}

// ParseStartTime parses a submitted start time in any accepted layout.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("start time is required")
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func parseID(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("id must be positive")
	}
	return n, nil
}

// parseCheckbox interprets the value an HTML checkbox submits. The original
// form sends "y"; bools and "on" are accepted as well. Absent means false.
func parseCheckbox(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "on", "1":
		return true
	}
	return false
}

func appendRequired(errs []FieldError, field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, FieldError{Field: field, Reason: "is required"})
	}
	return errs
}

func appendState(errs []FieldError, state string) []FieldError {
	if strings.TrimSpace(state) == "" {
		return append(errs, FieldError{Field: "state", Reason: "is required"})
	}
	if !model.IsValidState(state) {
		errs = append(errs, FieldError{Field: "state", Reason: "is not a known region code"})
	}
	return errs
}

// appendPhone validates the phone format when a phone is present. The field
// itself is optional.
func appendPhone(errs []FieldError, phone string) []FieldError {
	phone = strings.TrimSpace(phone)
	if phone != "" && !phonePattern.MatchString(phone) {
		errs = append(errs, FieldError{Field: "phone", Reason: "must look like 123-456-7890"})
	}
	return errs
}

// appendGenres requires a non-empty subset of the genre vocabulary.
func appendGenres(errs []FieldError, genres []string) []FieldError {
	if len(genres) == 0 {
		return append(errs, FieldError{Field: "genres", Reason: "pick at least one genre"})
	}
	for _, g := range genres {
		if !model.IsValidGenre(g) {
			errs = append(errs, FieldError{Field: "genres", Reason: fmt.Sprintf("%q is not a known genre", g)})
		}
	}
	return errs
}

// appendURL validates optional URL fields: empty is fine, anything else must
// be an absolute http(s) URL.
func appendURL(errs []FieldError, field, raw string) []FieldError {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errs
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, FieldError{Field: field, Reason: "must be a well-formed http(s) URL"})
	}
	return errs
}

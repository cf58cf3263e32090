// Sentinel errors shared across the repositories. They let handlers map
// failure scenarios onto HTTP statuses: a missing entity becomes 404, a
// reserved artist name 409, and a dangling show reference 400 naming the
// offending id. Any other repository error is a store failure and surfaces
// as a generic 500.

package repository

import "errors"

// ErrVenueNotFound is returned when no venue row matches the requested id.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when no artist row matches the requested id.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when no show row matches the requested id.
var ErrShowNotFound = errors.New("show not found")

// ErrArtistNameTaken is returned when creating an artist whose name is
// already listed. Uniqueness is case-insensitive, matching search.
var ErrArtistNameTaken = errors.New("artist name already listed")

// ErrUnknownVenue is returned when a show references a venue_id that does
// not exist. Handlers use it to report which id was invalid.
var ErrUnknownVenue = errors.New("venue id does not exist")

// ErrUnknownArtist is returned when a show references an artist_id that
// does not exist.
var ErrUnknownArtist = errors.New("artist id does not exist")

// Package queue defines message payloads exchanged over the message broker.
package queue

// ListingQueueName is the durable queue carrying listing activity events.
const ListingQueueName = "listing.events"

// Event kinds published by the handlers.
const (
	KindVenueCreated  = "venue.created"
	KindVenueDeleted  = "venue.deleted"
	KindArtistCreated = "artist.created"
	KindShowCreated   = "show.created"
)

// ListingEvent is published whenever the catalog changes: a venue or artist
// is listed, a show is booked, or a venue is removed. It carries enough for
// downstream consumers to log or notify without querying the database.
type ListingEvent struct {
	Kind       string `json:"kind"`
	EntityID   uint64 `json:"entity_id"`
	Name       string `json:"name,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

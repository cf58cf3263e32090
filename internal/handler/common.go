// Package handler contains the HTTP handlers for the listing site. Every
// handler follows the same shape: bind the urlencoded form or path params,
// validate, call into the repository layer, and respond with the JSON
// payload the page rendering consumes. Repository sentinels map onto HTTP
// statuses here; raw store errors never reach the client.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fyyur/internal/repository"
)

// ListingHandler bundles the repositories behind the venue, artist and show
// routes, plus the event publisher used to announce listing activity.
type ListingHandler struct {
	VenueRepo  *repository.VenueRepo
	ArtistRepo *repository.ArtistRepo
	ShowRepo   *repository.ShowRepo
	Events     EventPublisher
}

// EventPublisher is the slice of the queue publisher the handlers need.
// Publishing is fire-and-forget; a broker outage never fails a request.
type EventPublisher interface {
	PublishListingEvent(kind string, entityID uint64, name string)
}

// NewListingHandler constructs a ListingHandler and panics if any repository
// is nil. Events may be nil when no broker is configured.
func NewListingHandler(venues *repository.VenueRepo, artists *repository.ArtistRepo, shows *repository.ShowRepo, events EventPublisher) *ListingHandler {
	if venues == nil || artists == nil || shows == nil {
		panic("nil repository passed to NewListingHandler")
	}
	return &ListingHandler{VenueRepo: venues, ArtistRepo: artists, ShowRepo: shows, Events: events}
}

// Home handles GET / and returns the home page payload.
func (h *ListingHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "welcome"})
}

// Health is a simple health-check endpoint used by load balancers to verify
// that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// publish emits a listing event when a publisher is configured.
func (h *ListingHandler) publish(kind string, entityID uint64, name string) {
	if h.Events != nil {
		h.Events.PublishListingEvent(kind, entityID, name)
	}
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// storeFailure is the uniform response for unexpected store errors: a
// generic notice, never the raw fault.
func storeFailure(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "something went wrong"})
}

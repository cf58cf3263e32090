package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"fyyur/internal/queue"
	"fyyur/internal/repository"
	"fyyur/internal/validation"
)

// ListShows handles GET /shows: every show enriched with venue name, artist
// name and artist image link.
func (h *ListingHandler) ListShows(c echo.Context) error {
	shows, err := h.ShowRepo.ListAll(c.Request().Context())
	if err != nil {
		return storeFailure(c)
	}
	if len(shows) == 0 {
		return c.JSON(http.StatusOK, map[string]any{"shows": shows, "message": "no shows exist"})
	}
	return c.JSON(http.StatusOK, map[string]any{"shows": shows})
}

// NewShowForm handles GET /shows/create. The show form needs no
// vocabularies, only the CSRF token.
func (h *ListingHandler) NewShowForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"csrf_token": c.Get("csrf"),
	})
}

// CreateShow handles POST /shows/create. A dangling venue or artist
// reference is rejected without writing, naming which id was invalid.
func (h *ListingHandler) CreateShow(c echo.Context) error {
	var in validation.ShowInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid form body"})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "please fix the form errors",
			"errors": errs,
		})
	}
	s := in.ToModel()
	if err := h.ShowRepo.Create(c.Request().Context(), &s); err != nil {
		switch {
		case errors.Is(err, repository.ErrUnknownVenue):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("venue_id %d does not exist", s.VenueID),
			})
		case errors.Is(err, repository.ErrUnknownArtist):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("artist_id %d does not exist", s.ArtistID),
			})
		}
		return storeFailure(c)
	}
	h.publish(queue.KindShowCreated, s.ID, "")
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Show was successfully listed!",
		"show":    s,
	})
}

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fyyur/internal/model"
	"fyyur/internal/queue"
	"fyyur/internal/repository"
	"fyyur/internal/validation"
)

// venueDetail is the venue page payload: the entity plus its shows split
// into past and upcoming.
type venueDetail struct {
	model.Venue
	PastShows          []repository.VenueShowRow `json:"past_shows"`
	UpcomingShows      []repository.VenueShowRow `json:"upcoming_shows"`
	PastShowsCount     int                       `json:"past_shows_count"`
	UpcomingShowsCount int                       `json:"upcoming_shows_count"`
}

// ListVenues handles GET /venues and returns venues grouped by distinct
// (city, state) pairs. An empty table is not an error; the payload says so
// explicitly.
func (h *ListingHandler) ListVenues(c echo.Context) error {
	areas, err := h.VenueRepo.ListAreas(c.Request().Context())
	if err != nil {
		return storeFailure(c)
	}
	if len(areas) == 0 {
		return c.JSON(http.StatusOK, map[string]any{"areas": areas, "message": "no venues exist"})
	}
	return c.JSON(http.StatusOK, map[string]any{"areas": areas})
}

// SearchVenues handles POST /venues/search. The search_term form field is
// matched case-insensitively against name, city and state; an empty term
// matches every venue.
func (h *ListingHandler) SearchVenues(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.VenueRepo.SearchVenues(c.Request().Context(), term)
	if err != nil {
		return storeFailure(c)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"search_term": term,
		"count":       res.Count,
		"data":        res.Data,
	})
}

// GetVenue handles GET /venues/:id and returns the venue with its past and
// upcoming shows. A show starting exactly now appears in neither list.
func (h *ListingHandler) GetVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "venue not found"})
		}
		return storeFailure(c)
	}
	rows, err := h.ShowRepo.ListForVenue(ctx, id)
	if err != nil {
		return storeFailure(c)
	}
	past, upcoming, err := repository.SplitVenueShows(rows, time.Now().UTC())
	if err != nil {
		return storeFailure(c)
	}
	return c.JSON(http.StatusOK, venueDetail{
		Venue:              *v,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

// NewVenueForm handles GET /venues/create and returns the form-support
// payload: the state and genre vocabularies plus the CSRF token the
// submission must echo back.
func (h *ListingHandler) NewVenueForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"states":     model.States,
		"genres":     model.Genres,
		"csrf_token": c.Get("csrf"),
	})
}

// CreateVenue handles POST /venues/create. Validation failures return the
// field errors without writing anything.
func (h *ListingHandler) CreateVenue(c echo.Context) error {
	var in validation.VenueInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid form body"})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "please fix the form errors",
			"errors": errs,
		})
	}
	v := in.ToModel()
	if err := h.VenueRepo.Create(c.Request().Context(), &v); err != nil {
		return storeFailure(c)
	}
	h.publish(queue.KindVenueCreated, v.ID, v.Name)
	return c.JSON(http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Venue %s was successfully listed!", v.Name),
		"venue":   v,
	})
}

// EditVenueForm handles GET /venues/:id/edit and returns the current entity
// together with the vocabularies the edit form needs.
func (h *ListingHandler) EditVenueForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	v, err := h.VenueRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "venue not found"})
		}
		return storeFailure(c)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"venue":      v,
		"states":     model.States,
		"genres":     model.Genres,
		"csrf_token": c.Get("csrf"),
	})
}

// UpdateVenue handles POST /venues/:id/edit: a validated full-field
// overwrite of the venue matched by id.
func (h *ListingHandler) UpdateVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var in validation.VenueInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid form body"})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "please fix the form errors",
			"errors": errs,
		})
	}
	v := in.ToModel()
	v.ID = id
	if err := h.VenueRepo.Update(c.Request().Context(), &v); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "venue not found"})
		}
		return storeFailure(c)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "successfully updated",
		"venue":   v,
	})
}

// DeleteVenue handles POST /venues/:id/delete. The venue and every show
// referencing it go in one transaction.
func (h *ListingHandler) DeleteVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	showsDeleted, err := h.VenueRepo.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "venue not found"})
		}
		return storeFailure(c)
	}
	h.publish(queue.KindVenueDeleted, id, "")
	return c.JSON(http.StatusOK, map[string]any{
		"message":       "venue deleted with all of its shows",
		"shows_deleted": showsDeleted,
	})
}

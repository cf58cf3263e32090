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

// artistDetail is the artist page payload, the venue-side mirror of
// venueDetail.
type artistDetail struct {
	model.Artist
	PastShows          []repository.ArtistShowRow `json:"past_shows"`
	UpcomingShows      []repository.ArtistShowRow `json:"upcoming_shows"`
	PastShowsCount     int                        `json:"past_shows_count"`
	UpcomingShowsCount int                        `json:"upcoming_shows_count"`
}

// ListArtists handles GET /artists: a flat id/name listing.
func (h *ListingHandler) ListArtists(c echo.Context) error {
	artists, err := h.ArtistRepo.ListNames(c.Request().Context())
	if err != nil {
		return storeFailure(c)
	}
	if len(artists) == 0 {
		return c.JSON(http.StatusOK, map[string]any{"artists": artists, "message": "no artists exist"})
	}
	return c.JSON(http.StatusOK, map[string]any{"artists": artists})
}

// SearchArtists handles POST /artists/search, analogous to venue search.
func (h *ListingHandler) SearchArtists(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.ArtistRepo.SearchArtists(c.Request().Context(), term)
	if err != nil {
		return storeFailure(c)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"search_term": term,
		"count":       res.Count,
		"data":        res.Data,
	})
}

// GetArtist handles GET /artists/:id with the past/upcoming split.
func (h *ListingHandler) GetArtist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	a, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "artist not found"})
		}
		return storeFailure(c)
	}
	rows, err := h.ShowRepo.ListForArtist(ctx, id)
	if err != nil {
		return storeFailure(c)
	}
	past, upcoming, err := repository.SplitArtistShows(rows, time.Now().UTC())
	if err != nil {
		return storeFailure(c)
	}
	return c.JSON(http.StatusOK, artistDetail{
		Artist:             *a,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

// NewArtistForm handles GET /artists/create.
func (h *ListingHandler) NewArtistForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"states":     model.States,
		"genres":     model.Genres,
		"csrf_token": c.Get("csrf"),
	})
}

// CreateArtist handles POST /artists/create. A name that is already listed
// is rejected with a conflict before any row is written.
func (h *ListingHandler) CreateArtist(c echo.Context) error {
	var in validation.ArtistInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid form body"})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "please fix the form errors",
			"errors": errs,
		})
	}
	a := in.ToModel()
	if err := h.ArtistRepo.Create(c.Request().Context(), &a); err != nil {
		if errors.Is(err, repository.ErrArtistNameTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "artist name already listed"})
		}
		return storeFailure(c)
	}
	h.publish(queue.KindArtistCreated, a.ID, a.Name)
	return c.JSON(http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Artist %s was successfully listed!", a.Name),
		"artist":  a,
	})
}

// EditArtistForm handles GET /artists/:id/edit.
func (h *ListingHandler) EditArtistForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	a, err := h.ArtistRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "artist not found"})
		}
		return storeFailure(c)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"artist":     a,
		"states":     model.States,
		"genres":     model.Genres,
		"csrf_token": c.Get("csrf"),
	})
}

// UpdateArtist handles POST /artists/:id/edit.
func (h *ListingHandler) UpdateArtist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var in validation.ArtistInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid form body"})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "please fix the form errors",
			"errors": errs,
		})
	}
	a := in.ToModel()
	a.ID = id
	if err := h.ArtistRepo.Update(c.Request().Context(), &a); err != nil {
		switch {
		case errors.Is(err, repository.ErrArtistNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "artist not found"})
		case errors.Is(err, repository.ErrArtistNameTaken):
			return c.JSON(http.StatusConflict, map[string]string{"error": "artist name already listed"})
		}
		return storeFailure(c)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "successfully updated",
		"artist":  a,
	})
}

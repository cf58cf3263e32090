// Package router defines how HTTP routes are registered for the site.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"fyyur/internal/config"
	"fyyur/internal/handler"
	"fyyur/internal/middleware"
)

// Register wires every route onto the Echo instance along with the ambient
// middleware: panic recovery, Redis rate limiting, CSRF verification on the
// mutating POSTs, and response caching on the read-heavy listing pages.
// rdb may be nil, in which case caching and rate limiting are no-ops.
func Register(e *echo.Echo, h *handler.ListingHandler, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {
	e.Use(echomw.Recover())
	e.Use(middleware.NewTokenBucket(rlCfg, rdb))
	// The token is looked up in the form body or header; GETs pass through
	// and receive the cookie, form submissions must echo the token back.
	e.Use(echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup: "form:csrf_token,header:X-CSRF-Token",
	}))

	// Listing and detail pages are cacheable; the form-support GETs are not,
	// because each response carries a fresh CSRF token.
	cache := middleware.NewRedisCache(cacheCfg, rdb)

	e.GET("/", h.Home)
	e.GET("/healthz", handler.Health)

	// Venues
	e.GET("/venues", h.ListVenues, cache)
	e.POST("/venues/search", h.SearchVenues)
	e.GET("/venues/create", h.NewVenueForm)
	e.POST("/venues/create", h.CreateVenue)
	e.GET("/venues/:id", h.GetVenue, cache)
	e.POST("/venues/:id/delete", h.DeleteVenue)
	e.GET("/venues/:id/edit", h.EditVenueForm)
	e.POST("/venues/:id/edit", h.UpdateVenue)

	// Artists
	e.GET("/artists", h.ListArtists, cache)
	e.POST("/artists/search", h.SearchArtists)
	e.GET("/artists/create", h.NewArtistForm)
	e.POST("/artists/create", h.CreateArtist)
	e.GET("/artists/:id", h.GetArtist, cache)
	e.GET("/artists/:id/edit", h.EditArtistForm)
	e.POST("/artists/:id/edit", h.UpdateArtist)

	// Shows
	e.GET("/shows", h.ListShows, cache)
	e.GET("/shows/create", h.NewShowForm)
	e.POST("/shows/create", h.CreateShow)
}

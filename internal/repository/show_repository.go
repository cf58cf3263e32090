// This file defines repository methods for shows. A show is a pure join
// record binding a venue, an artist and a start time; every read of shows is
// enriched with the counterpart entity's name (and image link where the
// listing needs it).

package repository

import (
	"context"
	"database/sql"
	"errors"

	"fyyur/internal/model"
)

// ShowListRow is one row of the full shows listing, enriched with venue and
// artist names and the artist image link.
type ShowListRow struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueShowRow is a show as seen from a venue's detail page: the artist side
// plus the start time.
type VenueShowRow struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShowRow is a show as seen from an artist's detail page: the venue
// side plus the start time.
type ArtistShowRow struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// DB exposes the underlying sql.DB.
func (r *ShowRepo) DB() *sql.DB {
	return r.db
}

// Create verifies both referenced ids and inserts the show inside a single
// transaction. It returns ErrUnknownVenue or ErrUnknownArtist without
// writing anything when a reference is dangling, so the caller can report
// which id was invalid.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ? LIMIT 1`, s.VenueID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrUnknownVenue
		}
		return err
	}
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ? LIMIT 1`, s.ArtistID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrUnknownArtist
		}
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`,
		s.VenueID, s.ArtistID, s.StartTime,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// ListAll returns every show joined with its venue and artist, ordered by
// start time ascending. When no shows exist it returns an empty slice and
// nil error.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListRow, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link,
	                  DATE_FORMAT(s.start_time, '%Y-%m-%d %T')
	           FROM shows s
	           JOIN venues v  ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ShowListRow{}
	for rows.Next() {
		var row ShowListRow
		if err := rows.Scan(
			&row.VenueID, &row.VenueName, &row.ArtistID, &row.ArtistName,
			&row.ArtistImageLink, &row.StartTime,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListForVenue returns all shows hosted by the venue joined with the artist
// side, ordered by start time. The caller splits them into past and
// upcoming with SplitVenueShows.
func (r *ShowRepo) ListForVenue(ctx context.Context, venueID uint64) ([]VenueShowRow, error) {
	const q = `SELECT s.artist_id, a.name, a.image_link,
	                  DATE_FORMAT(s.start_time, '%Y-%m-%d %T')
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []VenueShowRow{}
	for rows.Next() {
		var row VenueShowRow
		if err := rows.Scan(&row.ArtistID, &row.ArtistName, &row.ArtistImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListForArtist returns all shows played by the artist joined with the
// venue side, ordered by start time.
func (r *ShowRepo) ListForArtist(ctx context.Context, artistID uint64) ([]ArtistShowRow, error) {
	const q = `SELECT s.venue_id, v.name, v.image_link,
	                  DATE_FORMAT(s.start_time, '%Y-%m-%d %T')
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ArtistShowRow{}
	for rows.Next() {
		var row ArtistShowRow
		if err := rows.Scan(&row.VenueID, &row.VenueName, &row.VenueImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

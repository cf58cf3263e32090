// Package repository contains data access logic for the listing site. This
// file defines repository methods for venues: creation, lookup, the grouped
// city/state listing, full-field updates and the cascading delete.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"fyyur/internal/model"
)

// venueColumns is the column list shared by every venue SELECT.
const venueColumns = `id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description`

// Summary is the compact entity projection used by search results and the
// grouped venue listing: id, name and the count of shows with a start time
// strictly after now.
type Summary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area is one distinct (city, state) pair present among venues, together
// with its member venues.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// VenueRepo manages persistence for venues.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// DB exposes the underlying sql.DB. It allows callers to begin transactions
// spanning multiple repositories.
func (r *VenueRepo) DB() *sql.DB {
	return r.db
}

// Create inserts a new venue and assigns the store-generated id back to the
// struct. Ids come from AUTO_INCREMENT, so concurrent creates cannot collide.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, model.JoinGenres(v.Genres),
		v.ImageLink, v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID retrieves a venue by its id. It returns ErrVenueNotFound if there
// is no matching row.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	var v model.Venue
	var genres string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &genres,
		&v.ImageLink, &v.FacebookLink, &v.Website, &v.SeekingTalent, &v.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	v.Genres = model.SplitGenres(genres)
	return &v, nil
}

// ListAreas returns every distinct (city, state) pair present among venues,
// each with its member venues and their upcoming-show counts. When no venues
// exist it returns an empty slice and nil error; the caller is responsible
// for presenting the empty state distinctly.
func (r *VenueRepo) ListAreas(ctx context.Context) ([]Area, error) {
	const groupQ = `SELECT DISTINCT city, state FROM venues ORDER BY state, city`
	rows, err := r.db.QueryContext(ctx, groupQ)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []Area{}
	for rows.Next() {
		var a Area
		if err := rows.Scan(&a.City, &a.State); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One query per area, mirroring the grouped listing shape. The upcoming
	// count uses a strict > comparison against the current UTC time.
	const memberQ = `SELECT v.id, v.name,
	                   (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > UTC_TIMESTAMP())
	                 FROM venues v
	                 WHERE v.city = ? AND v.state = ?
	                 ORDER BY v.name ASC`
	for i := range areas {
		vrows, err := r.db.QueryContext(ctx, memberQ, areas[i].City, areas[i].State)
		if err != nil {
			return nil, err
		}
		members := []Summary{}
		for vrows.Next() {
			var m Summary
			if err := vrows.Scan(&m.ID, &m.Name, &m.NumUpcomingShows); err != nil {
				vrows.Close()
				return nil, err
			}
			members = append(members, m)
		}
		if err := vrows.Err(); err != nil {
			vrows.Close()
			return nil, err
		}
		vrows.Close()
		areas[i].Venues = members
	}
	return areas, nil
}

// Update overwrites every mutable field of the venue matched by v.ID. It
// returns ErrVenueNotFound when no row matches. An update that changes no
// values still succeeds.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues
	           SET name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?,
	               image_link = ?, facebook_link = ?, website = ?, seeking_talent = ?, seeking_description = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, model.JoinGenres(v.Genres),
		v.ImageLink, v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription,
		v.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	// Zero rows affected is either "not found" or "no change"; only the
	// former is an error.
	var one int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ? LIMIT 1`, v.ID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrVenueNotFound
	}
	return err
}

// Delete removes the venue and all shows referencing it as a single
// transaction, returning the number of shows removed alongside the venue.
// It returns ErrVenueNotFound if the id is absent. The shows FK already
// cascades; the explicit delete keeps the row accounting observable.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (showsDeleted int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ? LIMIT 1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return 0, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id)
	if err != nil {
		return 0, err
	}
	showsDeleted, err = res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return 0, err
	}
	return showsDeleted, nil
}

// This file defines repository methods for artists. Artists behave like
// venues minus the address field, with one extra rule: the artist name is
// unique across the table. Uniqueness is enforced twice, by a friendly
// pre-check and by the UNIQUE index under the ci collation, so a race
// between two concurrent creates still resolves to a conflict.

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"fyyur/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description`

// duplicate key error number from the MySQL server (ER_DUP_ENTRY).
const mysqlDupEntry = 1062

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// DB exposes the underlying sql.DB.
func (r *ArtistRepo) DB() *sql.DB {
	return r.db
}

// Create inserts a new artist after verifying the name is not already
// listed. It returns ErrArtistNameTaken before writing anything when the
// name exists; no row is inserted in that case.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	var existing uint64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM artists WHERE name = ? LIMIT 1`, a.Name).Scan(&existing)
	if err == nil {
		return ErrArtistNameTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	const q = `INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, model.JoinGenres(a.Genres),
		a.ImageLink, a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		// The UNIQUE index closes the pre-check race.
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return ErrArtistNameTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID retrieves an artist by its id. It returns ErrArtistNotFound if
// there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	var a model.Artist
	var genres string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres,
		&a.ImageLink, &a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	a.Genres = model.SplitGenres(genres)
	return &a, nil
}

// ListNames returns id and name for every artist, ordered by name. The flat
// artist listing needs nothing more. When no artists exist it returns an
// empty slice and nil error.
func (r *ArtistRepo) ListNames(ctx context.Context) ([]Summary, error) {
	const q = `SELECT id, name FROM artists ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every mutable field of the artist matched by a.ID. It
// returns ErrArtistNotFound when no row matches and ErrArtistNameTaken when
// the new name collides with another artist.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists
	           SET name = ?, city = ?, state = ?, phone = ?, genres = ?,
	               image_link = ?, facebook_link = ?, website = ?, seeking_venue = ?, seeking_description = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, model.JoinGenres(a.Genres),
		a.ImageLink, a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription,
		a.ID,
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return ErrArtistNameTaken
		}
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ? LIMIT 1`, a.ID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrArtistNotFound
	}
	return err
}

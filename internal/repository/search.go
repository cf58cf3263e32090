package repository

import (
	"context"
	"database/sql"
	"strings"
)

// SearchResult is the payload shape shared by venue and artist search: the
// match count and a summary per match.
type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// SearchVenues performs a case-insensitive substring match of term against
// venue name, city and state (OR across the three). An empty term matches
// every venue. Each match carries its upcoming-show count.
func (r *VenueRepo) SearchVenues(ctx context.Context, term string) (SearchResult, error) {
	return searchListings(ctx, r.db, "venues", "venue_id", term)
}

// SearchArtists is the artist-side counterpart of SearchVenues. Upcoming
// counts are taken against shows.artist_id, the matched entity's own column.
func (r *ArtistRepo) SearchArtists(ctx context.Context, term string) (SearchResult, error) {
	return searchListings(ctx, r.db, "artists", "artist_id", term)
}

// searchListings runs the shared search query. table is "venues" or
// "artists" and fkColumn the shows column referencing it; both come from
// fixed call sites, never from user input. The LIKE pattern %term% with an
// empty term degenerates to %%, which matches all rows.
func searchListings(ctx context.Context, db *sql.DB, table, fkColumn, term string) (SearchResult, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	q := `SELECT e.id, e.name,
	        (SELECT COUNT(*) FROM shows s WHERE s.` + fkColumn + ` = e.id AND s.start_time > UTC_TIMESTAMP())
	      FROM ` + table + ` e
	      WHERE LOWER(e.name) LIKE ? OR LOWER(e.city) LIKE ? OR LOWER(e.state) LIKE ?
	      ORDER BY e.name ASC`
	rows, err := db.QueryContext(ctx, q, pattern, pattern, pattern)
	if err != nil {
		return SearchResult{}, err
	}
	defer rows.Close()

	res := SearchResult{Data: []Summary{}}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.NumUpcomingShows); err != nil {
			return SearchResult{}, err
		}
		res.Data = append(res.Data, s)
	}
	if err := rows.Err(); err != nil {
		return SearchResult{}, err
	}
	res.Count = len(res.Data)
	return res, nil
}

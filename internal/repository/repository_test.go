package repository

// These tests run against a real MySQL instance, the same way the service
// does. Set MYSQL_TEST_DSN (e.g. "root@tcp(localhost:3306)/fyyur_test?parseTime=true&loc=UTC")
// to enable them; without it the whole file is skipped.

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/database"
	"fyyur/internal/model"
)

var (
	testDB     *sql.DB
	testDBOnce sync.Once
	testDBErr  error
)

func getDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}
	testDBOnce.Do(func() {
		testDB, testDBErr = sql.Open("mysql", dsn)
		if testDBErr == nil {
			testDBErr = database.MigrateSchema(context.Background(), testDB)
		}
	})
	require.NoError(t, testDBErr)
	return testDB
}

func resetTables(t *testing.T, db *sql.DB) {
	t.Helper()
	for _, table := range []string{"shows", "venues", "artists"} {
		_, err := db.Exec("DELETE FROM " + table)
		require.NoError(t, err)
	}
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func sampleVenue(name, city, state string) model.Venue {
	return model.Venue{
		Name:               name,
		City:               city,
		State:              state,
		Address:            "1805 Geary Blvd",
		Phone:              "415-000-1234",
		Genres:             []string{"Jazz", "Soul"},
		ImageLink:          "https://example.com/fillmore.jpg",
		Website:            "https://thefillmore.com",
		SeekingTalent:      true,
		SeekingDescription: "always looking",
	}
}

func sampleArtist(name string) model.Artist {
	return model.Artist{
		Name:   name,
		City:   "Boston",
		State:  "MA",
		Phone:  "617-000-1234",
		Genres: []string{"Electronic"},
	}
}

func TestVenueCreateThenGet(t *testing.T) {
	db := getDB(t)
	resetTables(t, db)
	repo := NewVenueRepo(db)
	ctx := context.Background()

	v := sampleVenue("The Fillmore", "San Francisco", "CA")
	require.NoError(t, repo.Create(ctx, &v))
	require.NotZero(t, v.ID)

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, &v, got)
}

func TestVenueGetNotFound(t *testing.T) {
	db := getDB(t)
	resetTables(t, db)
	repo := NewVenueRepo(db)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueUpdate(t *testing.T) {
	db := getDB(t)
	resetTables(t, db)
	repo := NewVenueRepo(db)
	ctx := context.Background()

	v := sampleVenue("The Fillmore", "San Francisco", "CA")
	require.NoError(t, repo.Create(ctx, &v))

	v.Name = "The Fillmore West"
	v.Genres = []string{"Blues"}
	require.NoError(t, repo.Update(ctx, &v))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Fillmore West", got.Name)
	assert.Equal(t, []string{"Blues"}, got.Genres)

	// Updating again with identical values is not an error.
	require.NoError(t, repo.Update(ctx, &v))

	missing := sampleVenue("Ghost", "Nowhere", "CA")
	missing.ID = 9999
	assert.ErrorIs(t, repo.Update(ctx, &missing), ErrVenueNotFound)
}

func TestArtistDuplicateNameRejected(t *testing.T) {
	db := getDB(t)
	resetTables(t, db)
	repo := NewArtistRepo(db)
	ctx := context.Background()

	a := sampleArtist("DJ Test")
	require.NoError(t, repo.Create(ctx, &a))
	before := countRows(t, db, "artists")

	dup := sampleArtist("DJ Test")
	assert.ErrorIs(t, repo.Create(ctx, &dup), ErrArtistNameTaken)
	assert.Equal(t, before, countRows(t, db, "artists"))
}

func TestShowCreateRejectsDanglingReferences(t *testing.T) {
	db := getDB(t)
	resetTables(t, db)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)
	ctx := context.Background()

	v := sampleVenue("The Fillmore", "San Francisco", "CA")
	require.NoError(t, venues.Create(ctx, &v))
	a := sampleArtist("DJ Test")
	require.NoError(t, artists.Create(ctx, &a))

	s := model.Show{VenueID: 9999, ArtistID: a.ID, StartTime: "2030-01-01 20:00:00"}
	assert.ErrorIs(t, shows.Create(ctx, &s), ErrUnknownVenue)
	assert.Zero(t, countRows(t, db, "shows"))

	s = model.Show{VenueID: v.ID, ArtistID: 9999, StartTime: "2030-01-01 20:00:00"}
	assert.ErrorIs(t, shows.Create(ctx, &s), ErrUnknownArtist)
	assert.Zero(t, countRows(t, db, "shows"))

	s = model.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: "2030-01-01 20:00:00"}
	require.NoError(t, shows.Create(ctx, &s))
	assert.Equal(t, 1, countRows(t, db, "shows"))
}

func TestDeleteVenueCascades(t *testing.T) {
	db := getDB(t)
	resetTables(t, db)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)
	ctx := context.Background()

	v := sampleVenue("The Fillmore", "San Francisco", "CA")
	require.NoError(t, venues.Create(ctx, &v))
	other := sampleVenue("Paradise Rock Club", "Boston", "MA")
	require.NoError(t, venues.Create(ctx, &other))
	a := sampleArtist("DJ Test")
	require.NoError(t, artists.Create(ctx, &a))

	for _, ts := range []string{"2020-01-01 20:00:00", "2030-01-01 20:00:00"} {
		s := model.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: ts}
		require.NoError(t, shows.Create(ctx, &s))
	}
	keeper := model.Show{VenueID: other.ID, ArtistID: a.ID, StartTime: "2030-06-01 20:00:00"}
	require.NoError(t, shows.Create(ctx, &keeper))

	showsDeleted, err := venues.Delete(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), showsDeleted)
	assert.Equal(t, 1, countRows(t, db, "venues"))
	assert.Equal(t, 1, countRows(t, db, "shows"))

	_, err = venues.Delete(ctx, v.ID)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestListAreasGrouping(t *testing.T) {
	db := getDB(t)
	resetTables(t, db)
	repo := NewVenueRepo(db)
	ctx := context.Background()

	for _, v := range []model.Venue{
		sampleVenue("The Fillmore", "San Francisco", "CA"),
		sampleVenue("The Chapel", "San Francisco", "CA"),
		sampleVenue("Paradise Rock Club", "Boston", "MA"),
	} {
		venue := v
		require.NoError(t, repo.Create(ctx, &venue))
	}

	areas, err := repo.ListAreas(ctx)
	require.NoError(t, err)
	require.Len(t, areas, 2)

	byCity := map[string]Area{}
	for _, a := range areas {
		byCity[a.City] = a
	}
	assert.Len(t, byCity["San Francisco"].Venues, 2)
	assert.Len(t, byCity["Boston"].Venues, 1)
	assert.Equal(t, "CA", byCity["San Francisco"].State)
}

func TestListAreasEmpty(t *testing.T) {
	db := getDB(t)
	resetTables(t, db)
	repo := NewVenueRepo(db)

	areas, err := repo.ListAreas(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestSearchVenues(t *testing.T) {
	db := getDB(t)
	resetTables(t, db)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)
	ctx := context.Background()

	v1 := sampleVenue("The Fillmore", "San Francisco", "CA")
	require.NoError(t, venues.Create(ctx, &v1))
	v2 := sampleVenue("Moe's Tavern", "Springfield", "OR")
	require.NoError(t, venues.Create(ctx, &v2))
	a := sampleArtist("DJ Test")
	require.NoError(t, artists.Create(ctx, &a))
	s := model.Show{VenueID: v2.ID, ArtistID: a.ID, StartTime: "2030-01-01 20:00:00"}
	require.NoError(t, shows.Create(ctx, &s))

	// Empty term matches every venue.
	res, err := venues.SearchVenues(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	// Case-insensitive match on city.
	res, err = venues.SearchVenues(ctx, "SPRINGfield")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "Moe's Tavern", res.Data[0].Name)
	assert.Equal(t, 1, res.Data[0].NumUpcomingShows)

	// Match on state code.
	res, err = venues.SearchVenues(ctx, "ca")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)

	res, err = venues.SearchVenues(ctx, "no such venue")
	require.NoError(t, err)
	assert.Zero(t, res.Count)
	assert.Empty(t, res.Data)
}

func TestVenueDetailScenario(t *testing.T) {
	db := getDB(t)
	resetTables(t, db)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)
	ctx := context.Background()

	v := sampleVenue("The Fillmore", "San Francisco", "CA")
	require.NoError(t, venues.Create(ctx, &v))
	a := sampleArtist("DJ Test")
	require.NoError(t, artists.Create(ctx, &a))
	s := model.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: "2020-01-01 20:00:00"}
	require.NoError(t, shows.Create(ctx, &s))

	rows, err := shows.ListForVenue(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, a.ID, rows[0].ArtistID)
	assert.Equal(t, "DJ Test", rows[0].ArtistName)

	past, upcoming, err := SplitVenueShows(rows, time.Now().UTC())
	require.NoError(t, err)
	assert.Len(t, past, 1)
	assert.Empty(t, upcoming)
}

func TestListAllShows(t *testing.T) {
	db := getDB(t)
	resetTables(t, db)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)
	ctx := context.Background()

	rows, err := shows.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	v := sampleVenue("The Fillmore", "San Francisco", "CA")
	require.NoError(t, venues.Create(ctx, &v))
	a := sampleArtist("DJ Test")
	require.NoError(t, artists.Create(ctx, &a))
	s := model.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: "2030-01-01 20:00:00"}
	require.NoError(t, shows.Create(ctx, &s))

	rows, err = shows.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "The Fillmore", rows[0].VenueName)
	assert.Equal(t, "DJ Test", rows[0].ArtistName)
	assert.Equal(t, "2030-01-01 20:00:00", rows[0].StartTime)
}

package handler

// Handler tests that exercise the request plumbing without a database:
// validation failures and malformed path params are rejected before any
// repository call, so nil-DB repos are safe here.

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/repository"
)

func newTestHandler() *ListingHandler {
	return NewListingHandler(
		repository.NewVenueRepo(nil),
		repository.NewArtistRepo(nil),
		repository.NewShowRepo(nil),
		nil,
	)
}

func postForm(t *testing.T, h echo.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func getWithID(t *testing.T, h echo.HandlerFunc, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateVenueValidationFailure(t *testing.T) {
	h := newTestHandler()
	form := url.Values{}
	form.Set("name", "The Fillmore")
	// city, state, address and genres all missing

	rec := postForm(t, h.CreateVenue, form)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "please fix the form errors", body["error"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.(map[string]any)["field"].(string)] = true
	}
	for _, f := range []string{"city", "state", "address", "genres"} {
		assert.True(t, fields[f], "expected a field error on %s", f)
	}
	assert.False(t, fields["name"])
}

func TestCreateArtistValidationFailure(t *testing.T) {
	h := newTestHandler()
	form := url.Values{}
	form.Set("name", "DJ Test")
	form.Set("city", "Boston")
	form.Set("state", "MA")
	form.Set("phone", "not a phone")
	form.Add("genres", "Electronic")

	rec := postForm(t, h.CreateArtist, form)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	errs := body["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].(map[string]any)["field"])
}

func TestCreateShowValidationFailure(t *testing.T) {
	h := newTestHandler()
	form := url.Values{}
	form.Set("venue_id", "abc")
	form.Set("artist_id", "2")
	form.Set("start_time", "tonight")

	rec := postForm(t, h.CreateShow, form)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	fields := map[string]bool{}
	for _, e := range body["errors"].([]any) {
		fields[e.(map[string]any)["field"].(string)] = true
	}
	assert.True(t, fields["venue_id"])
	assert.True(t, fields["start_time"])
	assert.False(t, fields["artist_id"])
}

func TestGetVenueInvalidID(t *testing.T) {
	h := newTestHandler()
	rec := getWithID(t, h.GetVenue, "not-a-number")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", decodeBody(t, rec)["error"])
}

func TestDeleteVenueInvalidID(t *testing.T) {
	h := newTestHandler()
	rec := getWithID(t, h.DeleteVenue, "-1")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewVenueFormPayload(t *testing.T) {
	h := newTestHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("csrf", "test-token")

	require.NoError(t, h.NewVenueForm(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "test-token", body["csrf_token"])
	assert.Len(t, body["states"], 51)
	assert.Len(t, body["genres"], 19)
}

func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestNewListingHandlerNilRepoPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewListingHandler(nil, repository.NewArtistRepo(nil), repository.NewShowRepo(nil), nil)
	})
}

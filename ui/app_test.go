package ui

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randlab/adapters/memory"
	"randlab/adapters/random"
	"randlab/app"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	service := app.NewAnalysisService(random.NewSeededRNG(), memory.NewReportRepository())
	a, err := NewApp(service)
	require.NoError(t, err)
	return a
}

func submitRun(t *testing.T, a *App, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	return rec
}

func TestIndexRenders(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "range_uniform")
	assert.Contains(t, rec.Body.String(), "goodness_of_fit")
}

func TestRunFullBatteryShowsResults(t *testing.T) {
	a := newTestApp(t)

	rec := submitRun(t, a, url.Values{
		"generator":   {"range_uniform"},
		"n":           {"10"},
		"sample_size": {"1000"},
		"seed":        {"7"},
		"check":       {""},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	index := httptest.NewRecorder()
	a.Router().ServeHTTP(index, req)
	require.Equal(t, http.StatusOK, index.Code)
	assert.Contains(t, index.Body.String(), "distribution")
	assert.Contains(t, index.Body.String(), "Shannon entropy")
}

func TestRunInvalidConfigSetsNotice(t *testing.T) {
	a := newTestApp(t)

	rec := submitRun(t, a, url.Values{
		"generator":   {"range_uniform"},
		"n":           {"0"},
		"sample_size": {"100"},
		"seed":        {"1"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	index := httptest.NewRecorder()
	a.Router().ServeHTTP(index, req)
	assert.Contains(t, index.Body.String(), "domain_size")
}

func TestRunRejectsNonIntegerInput(t *testing.T) {
	a := newTestApp(t)

	rec := submitRun(t, a, url.Values{
		"generator":   {"range_uniform"},
		"n":           {"abc"},
		"sample_size": {"xyz"},
		"seed":        {"1"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// The analysis core must never run on unparseable input.
	assert.Nil(t, a.latestReport())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	index := httptest.NewRecorder()
	a.Router().ServeHTTP(index, req)
	assert.Contains(t, index.Body.String(), "must be an integer")
}

func TestRunRejectsNonIntegerSeed(t *testing.T) {
	a := newTestApp(t)

	rec := submitRun(t, a, url.Values{
		"generator":   {"range_uniform"},
		"n":           {"10"},
		"sample_size": {"100"},
		"seed":        {"not-a-seed"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Nil(t, a.latestReport())
}

func TestChartsWithoutReport(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{"/charts/frequencies", "/charts/intervals", "/charts/qq", "/charts/acf", "/summary"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		a.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestChartsAfterRun(t *testing.T) {
	a := newTestApp(t)

	rec := submitRun(t, a, url.Values{
		"generator":   {"clipped_normal"},
		"n":           {"20"},
		"sample_size": {"2000"},
		"seed":        {"3"},
		"check":       {""},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	for _, path := range []string{"/charts/frequencies", "/charts/intervals", "/charts/qq", "/charts/acf"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		chart := httptest.NewRecorder()
		a.Router().ServeHTTP(chart, req)
		assert.Equal(t, http.StatusOK, chart.Code, path)
	}
}

func TestSummaryAfterRun(t *testing.T) {
	a := newTestApp(t)

	rec := submitRun(t, a, url.Values{
		"generator":   {"modulo_uniform"},
		"n":           {"6"},
		"sample_size": {"600"},
		"seed":        {"5"},
		"check":       {""},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	summary := httptest.NewRecorder()
	a.Router().ServeHTTP(summary, req)
	require.Equal(t, http.StatusOK, summary.Code)
	assert.Contains(t, summary.Body.String(), "modulo_uniform")
	assert.Contains(t, summary.Body.String(), "<h2")
}

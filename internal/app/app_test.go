package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/tastelog/internal/core/domain"
	coreerrors "github.com/lueurxax/tastelog/internal/core/errors"
	"github.com/lueurxax/tastelog/internal/core/ports/mocks"
	"github.com/lueurxax/tastelog/internal/platform/config"
	"github.com/lueurxax/tastelog/internal/platform/observability"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:               "local",
		HTTPPort:             8080,
		RecommendDeduplicate: true,
	}
}

func seededStore() *mocks.RecordStore {
	store := mocks.NewRecordStore()
	store.AddWines(
		domain.Wine{ID: "w1", Name: "Margaux", Region: "Bordeaux", Grape: "Cabernet Sauvignon", Vintage: 2015, Rating: 5},
		domain.Wine{ID: "w2", Name: "Pauillac", Region: "Bordeaux", Grape: "Cabernet Sauvignon", Vintage: 2016, Rating: 4},
		domain.Wine{ID: "w3", Name: "Rioja", Region: "Rioja", Grape: "Tempranillo", Vintage: 2018, Rating: 2},
	)

	return store
}

func newTestApp(t *testing.T, store Store) *App {
	t.Helper()

	logger := zerolog.Nop()

	a, err := New(testConfig(), store, &logger)
	require.NoError(t, err)

	return a
}

func TestRunRecommend(t *testing.T) {
	a := newTestApp(t, seededStore())

	var buf bytes.Buffer
	require.NoError(t, a.RunRecommend(context.Background(), &buf))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Contains(t, raw, "recommendations")

	var recs []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw["recommendations"], &recs))
	assert.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 5)
}

func TestRunRecommend_StoreFailure(t *testing.T) {
	store := seededStore()
	store.ListWinesFn = func(context.Context) ([]domain.Wine, error) {
		return nil, errors.New("connection reset")
	}

	a := newTestApp(t, store)

	var buf bytes.Buffer
	require.NoError(t, a.RunRecommend(context.Background(), &buf))
	assert.JSONEq(t, `{"recommendations":[]}`, buf.String())
}

func TestRunPreferences(t *testing.T) {
	a := newTestApp(t, seededStore())

	var buf bytes.Buffer
	require.NoError(t, a.RunPreferences(context.Background(), &buf))

	var profile domain.PreferenceProfile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &profile))
	assert.InDelta(t, 9.0, profile.Wine.PreferredRegions["Bordeaux"], 1e-9)
	require.NotNil(t, profile.Wine.PreferredVintages)
	assert.Equal(t, domain.VintageRange{Min: 2015, Max: 2016}, *profile.Wine.PreferredVintages)
}

func TestRunPreferences_StoreFailure(t *testing.T) {
	store := seededStore()
	store.ListSakesFn = func(context.Context) ([]domain.Sake, error) {
		return nil, errors.New("timeout")
	}

	a := newTestApp(t, store)

	err := a.RunPreferences(context.Background(), &bytes.Buffer{})
	assert.ErrorIs(t, err, coreerrors.ErrStoreUnavailable)
}

func TestServer_Routes(t *testing.T) {
	a := newTestApp(t, seededStore())
	h := a.Server().Handler()

	for _, path := range []string{"/healthz", "/readyz", "/api/v1/recommendations", "/api/v1/wines"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestCollectRecordStats(t *testing.T) {
	store := seededStore()
	store.AddSakes(domain.Sake{ID: "s1", Name: "獺祭", Rating: 3})

	a := newTestApp(t, store)
	a.collectRecordStats(context.Background())

	assert.InDelta(t, 3.0, testutil.ToFloat64(observability.RecordsStored.WithLabelValues("wine")), 1e-9)
	assert.InDelta(t, 2.0, testutil.ToFloat64(observability.HighRatedRecords.WithLabelValues("wine")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(observability.RecordsStored.WithLabelValues("sake")), 1e-9)
	assert.InDelta(t, 0.0, testutil.ToFloat64(observability.HighRatedRecords.WithLabelValues("sake")), 1e-9)
}

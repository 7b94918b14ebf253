package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/tastelog/internal/core/domain"
	"github.com/lueurxax/tastelog/internal/core/errors"
	"github.com/lueurxax/tastelog/internal/core/ports/mocks"
)

type mockRecommender struct {
	mock.Mock
}

func (m *mockRecommender) Generate(ctx context.Context) []domain.Recommendation {
	args := m.Called(ctx)

	recs, _ := args.Get(0).([]domain.Recommendation)

	return recs
}

func (m *mockRecommender) Preferences(ctx context.Context) (*domain.PreferenceProfile, error) {
	args := m.Called(ctx)

	profile, _ := args.Get(0).(*domain.PreferenceProfile)

	return profile, args.Error(1)
}

func newTestHandler(engine Recommender, store *mocks.RecordStore, opts Options) http.Handler {
	logger := zerolog.Nop()

	return NewHandler(engine, store, opts, &logger).Routes()
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(headerContentType, contentTypeJSON)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestGetRecommendations(t *testing.T) {
	engine := &mockRecommender{}
	engine.On("Generate", mock.Anything).Return([]domain.Recommendation{
		{
			ID:            "rec_1_1",
			Type:          domain.CategoryWine,
			Name:          "Margaux (similar recommendation)",
			Reason:        "preferred region Bordeaux: recommended based on your tasting history",
			Similarity:    1.5,
			SuggestedItem: domain.Wine{ID: "w1", Name: "Margaux", Region: "Bordeaux", Rating: 5},
		},
	})

	h := newTestHandler(engine, mocks.NewRecordStore(), Options{})
	rec := do(t, h, http.MethodGet, "/api/v1/recommendations", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeJSON, rec.Header().Get(headerContentType))

	var body struct {
		Recommendations []struct {
			ID            string                 `json:"id"`
			Type          string                 `json:"type"`
			Similarity    float64                `json:"similarity"`
			SuggestedItem map[string]interface{} `json:"suggestedItem"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 1)
	assert.Equal(t, "rec_1_1", body.Recommendations[0].ID)
	assert.Equal(t, "wine", body.Recommendations[0].Type)
	assert.InDelta(t, 1.5, body.Recommendations[0].Similarity, 1e-9)
	assert.Equal(t, "Bordeaux", body.Recommendations[0].SuggestedItem["region"])
	engine.AssertExpectations(t)
}

func TestGetRecommendations_EmptyIsArray(t *testing.T) {
	engine := &mockRecommender{}
	engine.On("Generate", mock.Anything).Return(nil)

	h := newTestHandler(engine, mocks.NewRecordStore(), Options{})
	rec := do(t, h, http.MethodGet, "/api/v1/recommendations", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"recommendations":[]}`, rec.Body.String())
}

func TestGetPreferences(t *testing.T) {
	t.Run("profile", func(t *testing.T) {
		engine := &mockRecommender{}
		engine.On("Preferences", mock.Anything).Return(&domain.PreferenceProfile{
			Wine: domain.WineProfile{
				PreferredRegions:  domain.AttributeWeights{"Bordeaux": 5},
				PreferredVintages: &domain.VintageRange{Min: 2010, Max: 2015},
				AverageRating:     4.5,
			},
		}, nil)

		rec := do(t, newTestHandler(engine, mocks.NewRecordStore(), Options{}), http.MethodGet, "/api/v1/preferences", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		profile := decode[domain.PreferenceProfile](t, rec)
		assert.InDelta(t, 5.0, profile.Wine.PreferredRegions["Bordeaux"], 1e-9)
		require.NotNil(t, profile.Wine.PreferredVintages)
		assert.Equal(t, 2010, profile.Wine.PreferredVintages.Min)
	})

	t.Run("store unavailable", func(t *testing.T) {
		engine := &mockRecommender{}
		engine.On("Preferences", mock.Anything).Return(nil, errors.ErrStoreUnavailable)

		rec := do(t, newTestHandler(engine, mocks.NewRecordStore(), Options{}), http.MethodGet, "/api/v1/preferences", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, codeUnavailable, decode[errorResponse](t, rec).Error.Code)
	})
}

func TestWineCRUD(t *testing.T) {
	store := mocks.NewRecordStore()
	h := newTestHandler(&mockRecommender{}, store, Options{})

	rec := do(t, h, http.MethodPost, "/api/v1/wines", WineRequest{
		Name: "Château Margaux", Region: "Bordeaux", Grape: "Cabernet Sauvignon", Vintage: 2015, Rating: 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[domain.Wine](t, rec)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	rec = do(t, h, http.MethodGet, "/api/v1/wines/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Château Margaux", decode[domain.Wine](t, rec).Name)

	rec = do(t, h, http.MethodPut, "/api/v1/wines/"+created.ID, WineRequest{
		Name: "Château Margaux", Region: "Bordeaux", Grape: "Merlot", Vintage: 2016, Rating: 4,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Merlot", decode[domain.Wine](t, rec).Grape)

	rec = do(t, h, http.MethodGet, "/api/v1/wines", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[winesResponse](t, rec)
	require.Len(t, list.Wines, 1)
	assert.Equal(t, 4, list.Wines[0].Rating)

	rec = do(t, h, http.MethodDelete, "/api/v1/wines/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/wines/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, codeNotFound, decode[errorResponse](t, rec).Error.Code)
}

func TestCreateWine_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    interface{}
		code    string
		message string
	}{
		{name: "missing name", body: WineRequest{Rating: 3}, code: codeValidation, message: "name is required"},
		{name: "rating too high", body: WineRequest{Name: "Rioja", Rating: 6}, code: codeValidation, message: "rating must be at most 5"},
		{name: "missing rating", body: WineRequest{Name: "Rioja"}, code: codeValidation, message: "rating is required"},
		{name: "malformed json", body: `{"name":`, code: codeInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewRecordStore()
			rec := do(t, newTestHandler(&mockRecommender{}, store, Options{}), http.MethodPost, "/api/v1/wines", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decode[errorResponse](t, rec)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.message)

			wines, err := store.ListWines(context.Background())
			require.NoError(t, err)
			assert.Empty(t, wines)
		})
	}
}

func TestSakeCRUD(t *testing.T) {
	store := mocks.NewRecordStore()
	h := newTestHandler(&mockRecommender{}, store, Options{})

	rec := do(t, h, http.MethodPost, "/api/v1/sakes", SakeRequest{
		Name: "獺祭 二割三分", Brewery: "旭酒造", Type: string(domain.SakeTypeJunmaiDaiginjo), Region: "山口", Rating: 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[domain.Sake](t, rec)
	assert.Equal(t, domain.SakeTypeJunmaiDaiginjo, created.Type)

	rec = do(t, h, http.MethodGet, "/api/v1/sakes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[sakesResponse](t, rec).Sakes, 1)

	rec = do(t, h, http.MethodDelete, "/api/v1/sakes/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/v1/sakes/"+created.ID, SakeRequest{Name: "獺祭", Rating: 4})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSake_UnknownType(t *testing.T) {
	rec := do(t, newTestHandler(&mockRecommender{}, mocks.NewRecordStore(), Options{}),
		http.MethodPost, "/api/v1/sakes", SakeRequest{Name: "Mystery", Type: "ワイン", Rating: 3})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[errorResponse](t, rec).Error.Message, "type must be a known sake classification")
}

func TestRateLimit(t *testing.T) {
	engine := &mockRecommender{}
	engine.On("Generate", mock.Anything).Return([]domain.Recommendation{})

	h := newTestHandler(engine, mocks.NewRecordStore(), Options{RateLimitRPS: 0.001, RateLimitBurst: 1})

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/v1/recommendations", nil).Code)

	rec := do(t, h, http.MethodGet, "/api/v1/recommendations", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, codeRateLimited, decode[errorResponse](t, rec).Error.Code)
}

func TestClientLimiter_PerClient(t *testing.T) {
	l := newClientLimiter(0.001, 1)

	assert.True(t, l.allow("10.0.0.1:50001"))
	assert.False(t, l.allow("10.0.0.1:50002"), "same host on another port shares the bucket")
	assert.True(t, l.allow("10.0.0.2:50001"))
	assert.True(t, l.allow("[2001:db8::1]:443"))
	assert.False(t, l.allow("[2001:db8::1]:444"))
	assert.Equal(t, 3, l.size())

	unlimited := newClientLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, unlimited.allow("10.0.0.1:1234"))
	}
}

func TestClientLimiter_EvictsIdleClients(t *testing.T) {
	l := newClientLimiter(0.001, 1)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return start }

	for i := 0; i < limiterSweepSize; i++ {
		l.allow(fmt.Sprintf("10.1.%d.%d:80", i/256, i%256))
	}

	require.Equal(t, limiterSweepSize, l.size())

	l.now = func() time.Time { return start.Add(limiterIdleTTL + time.Minute) }
	l.allow("192.0.2.1:80")

	assert.Equal(t, 1, l.size())
}

func TestRateLimit_SameHostDifferentPorts(t *testing.T) {
	engine := &mockRecommender{}
	engine.On("Generate", mock.Anything).Return([]domain.Recommendation{})

	h := newTestHandler(engine, mocks.NewRecordStore(), Options{RateLimitRPS: 0.001, RateLimitBurst: 1})

	var codes []int

	for _, addr := range []string{"203.0.113.7:50001", "203.0.113.7:50002", "203.0.113.7:50003"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
		req.RemoteAddr = addr

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

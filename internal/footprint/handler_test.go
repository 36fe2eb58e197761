package footprint

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(repo *stubRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewService(repo, nil))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

func TestCreateRecordEndpoint(t *testing.T) {
	repo := &stubRepository{}
	router := setupRouter(repo)

	body := `{"user_id":"user-1","category":"transport","activity":"car commute","distance_km":12,"emissions_kg":2.1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/footprint/records", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "car commute", repo.created[0].Activity)
}

func TestCreateRecordEndpointRejectsMissingFields(t *testing.T) {
	router := setupRouter(&stubRepository{})

	tests := []struct {
		name string
		body string
	}{
		{"missing user", `{"category":"transport","activity":"drive","emissions_kg":1}`},
		{"missing category", `{"user_id":"u1","activity":"drive","emissions_kg":1}`},
		{"missing activity", `{"user_id":"u1","category":"transport","emissions_kg":1}`},
		{"negative emissions", `{"user_id":"u1","category":"transport","activity":"drive","emissions_kg":-2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/footprint/records", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateRecordEndpointRejectsUnknownCategory(t *testing.T) {
	router := setupRouter(&stubRepository{})

	body := `{"user_id":"u1","category":"aviation","activity":"flight","emissions_kg":90}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/footprint/records", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummaryEndpointRequiresUserID(t *testing.T) {
	router := setupRouter(&stubRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/footprint/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummaryEndpoint(t *testing.T) {
	repo := &stubRepository{
		summary: &Summary{
			UserID:           "user-1",
			RecordCount:      4,
			TotalEmissionsKg: 22.0,
			CategoryTotals:   map[Category]float64{CategoryTransport: 22.0},
		},
	}
	router := setupRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/footprint/summary?user_id=user-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool    `json:"success"`
		Data    Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 18.0, resp.Data.SavedKg)
}

func TestBadgesEndpoint(t *testing.T) {
	repo := &stubRepository{
		summary: &Summary{UserID: "user-1", RecordCount: 2, TotalEmissionsKg: 5.0},
	}
	router := setupRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/footprint/badges?user_id=user-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Badges []Badge `json:"badges"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 2 * 10 - 5 = 15 kg saved
	assert.Equal(t, []string{"first_trip", "eco_starter"}, badgeNames(resp.Data.Badges))
}

func TestLeaderboardEndpoint(t *testing.T) {
	repo := &stubRepository{
		rows: []leaderboardRow{
			{UserID: "user-a", RecordCount: 5, TotalEmissionsKg: 20.0},
			{UserID: "user-b", RecordCount: 2, TotalEmissionsKg: 3.0},
		},
	}
	router := setupRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/footprint/leaderboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Leaderboard []LeaderboardEntry `json:"leaderboard"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Leaderboard, 2)
	assert.Equal(t, "user-a", resp.Data.Leaderboard[0].UserID)
	assert.Equal(t, 1, resp.Data.Leaderboard[0].Rank)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	dbMocks "github.com/bearcourt/bear-court-api/databases/mocks"
	"github.com/bearcourt/bear-court-api/models"
)

func TestStatsHandler(t *testing.T) {
	db := &dbMocks.StatsDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).
		Return(&models.GlobalStats{ID: models.GlobalStatsID, Likes: 3, Dislikes: 1}, nil)
	h := &Stats{DB: db}

	rr := httptest.NewRecorder()
	h.StatsHandler(rr, httptest.NewRequest("GET", "/api/v1/stats", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.StatsResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Likes)
	assert.Equal(t, int64(1), resp.Dislikes)
	assert.Equal(t, 75, resp.Rate)
}

func TestStatsHandlerBeforeAnyVotes(t *testing.T) {
	db := &dbMocks.StatsDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)
	h := &Stats{DB: db}

	rr := httptest.NewRecorder()
	h.StatsHandler(rr, httptest.NewRequest("GET", "/api/v1/stats", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.StatsResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Zero(t, resp.Likes)
	assert.Equal(t, 100, resp.Rate)
}

func TestStatsHandlerSurvivesACancelledCaller(t *testing.T) {
	db := &dbMocks.StatsDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		// the collapsed query must not die with the request that started it
		assert.NoError(t, args.Get(0).(context.Context).Err())
	}).Return(&models.GlobalStats{ID: models.GlobalStatsID, Likes: 2, Dislikes: 2}, nil)
	h := &Stats{DB: db}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest("GET", "/api/v1/stats", nil).WithContext(ctx)

	rr := httptest.NewRecorder()
	h.StatsHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestStatsHandlerStoreDown(t *testing.T) {
	db := &dbMocks.StatsDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrClientDisconnected)
	h := &Stats{DB: db}

	rr := httptest.NewRecorder()
	h.StatsHandler(rr, httptest.NewRequest("GET", "/api/v1/stats", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/singleflight"

	"github.com/bearcourt/bear-court-api/api"
	"github.com/bearcourt/bear-court-api/config"
	"github.com/bearcourt/bear-court-api/databases"
	"github.com/bearcourt/bear-court-api/models"
)

// Stats serves the global satisfaction tally. Concurrent reads collapse into a
// single datastore query through the singleflight group.
type Stats struct {
	DB    databases.StatsDatabase
	group singleflight.Group
}

// StatsHandler returns the global like/dislike counters and satisfaction rate
func (s *Stats) StatsHandler(w http.ResponseWriter, r *http.Request) {
	v, err, _ := s.group.Do("global-stats", func() (interface{}, error) {
		// collapsed callers share this query, so it must outlive the request
		// that happened to start it
		ctx, cancel := api.WithQueryTimeout(context.WithoutCancel(r.Context()))
		defer cancel()

		stats, err := s.DB.FindOne(ctx, bson.M{"_id": models.GlobalStatsID})
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// nobody has voted yet
				return &models.GlobalStats{ID: models.GlobalStatsID}, nil
			}
			return nil, err
		}
		return stats, nil
	})
	if err != nil {
		config.ErrorKindStatus("failed to get stats", string(models.ErrStoreUnavailable),
			http.StatusServiceUnavailable, w, err)
		return
	}

	stats := v.(*models.GlobalStats)
	b, err := json.Marshal(models.StatsResponse{
		Likes:    stats.Likes,
		Dislikes: stats.Dislikes,
		Rate:     stats.Rate(),
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

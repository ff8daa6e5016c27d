package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/bearcourt/bear-court-api/court"
	"github.com/bearcourt/bear-court-api/databases"
	"github.com/bearcourt/bear-court-api/models"
)

// Scheduler runs the recurring maintenance jobs
type Scheduler struct {
	cron   *cron.Cron
	Stats  databases.StatsDatabase
	Broker *court.Broker
}

// New creates a scheduler pinned to UTC
func New(stats databases.StatsDatabase, broker *court.Broker) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		Stats:  stats,
		Broker: broker,
	}
}

// Start registers the jobs and kicks off the cron loop
func (s *Scheduler) Start() {
	s.cron.AddFunc("0 0 * * *", s.logSatisfactionSnapshot)
	s.cron.AddFunc("*/30 * * * *", s.sweepSubscriptions)
	s.cron.Start()
	zap.S().Info("scheduler started")
}

// Stop halts the cron loop and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("scheduler stopped")
}

// logSatisfactionSnapshot records the daily global feedback tally
func (s *Scheduler) logSatisfactionSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stats, err := s.Stats.FindOne(ctx, bson.M{"_id": models.GlobalStatsID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			stats = &models.GlobalStats{ID: models.GlobalStatsID}
		} else {
			zap.S().Errorw("failed to load stats for daily snapshot", "error", err)
			return
		}
	}
	zap.S().Infow("daily satisfaction snapshot",
		"likes", stats.Likes,
		"dislikes", stats.Dislikes,
		"rate", stats.Rate(),
	)
}

// sweepSubscriptions prunes empty broker entries and reports the fan-out size
func (s *Scheduler) sweepSubscriptions() {
	cases, subscribers := s.Broker.Sweep()
	zap.S().Debugw("subscription sweep",
		"cases", cases,
		"subscribers", subscribers,
	)
}

package databases

// go generate: mockery --name StatsDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bearcourt/bear-court-api/models"
)

const statsName = "stats"

// StatsDatabase contains the methods to use with the global stats database
type StatsDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.GlobalStats, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (UpdateResultHelper, error)
}

type statsDatabase struct {
	db DatabaseHelper
}

// NewStatsDatabase initializes a new instance of stats database with the provided db connection
func NewStatsDatabase(db DatabaseHelper) StatsDatabase {
	return &statsDatabase{
		db: db,
	}
}

func (s *statsDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.GlobalStats, error) {
	stats := &models.GlobalStats{}
	err := s.db.Collection(statsName).FindOne(ctx, filter, opts...).Decode(&stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *statsDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (UpdateResultHelper, error) {
	res, err := s.db.Collection(statsName).UpdateOne(ctx, filter, update, opts...)
	return res, err
}

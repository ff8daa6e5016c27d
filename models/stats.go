package models

import "math"

// GlobalStatsID is the singleton document key for the satisfaction tally
const GlobalStatsID = "--GLOBAL-STATS--"

// GlobalStats aggregates verdict feedback across all cases. It is only ever
// mutated through atomic increments, never read-modify-written.
type GlobalStats struct {
	ID       string `json:"id" bson:"_id"`
	Likes    int64  `json:"likes" bson:"likes"`
	Dislikes int64  `json:"dislikes" bson:"dislikes"`
}

// Rate returns the rounded satisfaction percentage. An empty tally displays
// as 100.
func (s GlobalStats) Rate() int {
	total := s.Likes + s.Dislikes
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(s.Likes) / float64(total) * 100))
}

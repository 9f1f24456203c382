package models

import "time"

// WeightEstimation is one model-produced weight reading for an animal.
type WeightEstimation struct {
	ID              string    `json:"id" bson:"id"`
	AnimalID        string    `json:"animal_id" bson:"animal_id"`
	EstimatedWeight float64   `json:"estimated_weight" bson:"estimated_weight"`
	ConfidenceScore float64   `json:"confidence_score" bson:"confidence_score"`
	Timestamp       time.Time `json:"timestamp" bson:"timestamp"`
	Method          string    `json:"method,omitempty" bson:"method,omitempty"`
	ModelVersion    string    `json:"ml_model_version,omitempty" bson:"ml_model_version,omitempty"`
	FrameImagePath  string    `json:"frame_image_path,omitempty" bson:"frame_image_path,omitempty"`
}

// CacheEntry is the persisted form of the estimation cache.
type CacheEntry struct {
	Data       []WeightEstimation `json:"data" bson:"data"`
	Timestamp  time.Time          `json:"timestamp" bson:"timestamp"`
	TTLMinutes int                `json:"ttl_minutes" bson:"ttl_minutes"`
}

// Valid reports whether the entry is still fresh at now.
func (e CacheEntry) Valid(now time.Time) bool {
	return now.Sub(e.Timestamp) < time.Duration(e.TTLMinutes)*time.Minute
}

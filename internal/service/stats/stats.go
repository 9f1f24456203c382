// Package stats derives view statistics by joining entity collections that
// the backend serves separately.
package stats

import (
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

// AverageWeight is the mean of the positive values. Zero or negative values
// are treated as missing; with no valid value the result is 0.
func AverageWeight(weights []float64) float64 {
	var sum float64
	var n int
	for _, w := range weights {
		if w > 0 {
			sum += w
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Farm computes farm statistics from the farm's animals and the full
// estimation list. Only estimations whose animal belongs to the farm count.
func Farm(animals []models.Animal, estimations []models.WeightEstimation) models.FarmStats {
	out := models.FarmStats{TotalAnimals: len(animals)}

	animalIDs := make(map[string]struct{}, len(animals))
	breeds := make(map[models.Breed]struct{})
	for _, a := range animals {
		animalIDs[a.ID] = struct{}{}
		if a.Breed != "" {
			breeds[a.Breed] = struct{}{}
		}
		if a.Status == models.AnimalActive {
			out.ActiveAnimals++
		}
	}
	out.BreedDiversity = len(breeds)

	weights := make([]float64, 0, len(estimations))
	for _, e := range estimations {
		if _, ok := animalIDs[e.AnimalID]; !ok {
			continue
		}
		out.TotalEstimations++
		weights = append(weights, e.EstimatedWeight)
	}
	out.AverageWeight = AverageWeight(weights)

	return out
}

// Role counts the users attached to roleID.
func Role(roleID string, users []models.User) models.RoleStats {
	var out models.RoleStats
	for _, u := range users {
		if u.RoleID != roleID {
			continue
		}
		out.UserCount++
		if u.IsActive {
			out.ActiveUserCount++
		}
	}
	return out
}

// OwnedFarms counts farms owned by userID.
func OwnedFarms(userID string, farms []models.Farm) int {
	n := 0
	for _, f := range farms {
		if f.OwnerID == userID {
			n++
		}
	}
	return n
}

// FilterEstimations keeps estimations whose animal is in animals.
func FilterEstimations(estimations []models.WeightEstimation, animals []models.Animal) []models.WeightEstimation {
	ids := make(map[string]struct{}, len(animals))
	for _, a := range animals {
		ids[a.ID] = struct{}{}
	}
	out := make([]models.WeightEstimation, 0)
	for _, e := range estimations {
		if _, ok := ids[e.AnimalID]; ok {
			out = append(out, e)
		}
	}
	return out
}

package models

// Farm is a cattle farm owned by a platform user.
type Farm struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	OwnerID      string  `json:"owner_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Capacity     int     `json:"capacity"`
	TotalAnimals int     `json:"total_animals,omitempty"`
}

// FarmInput carries create/update form values.
type FarmInput struct {
	Name      string  `json:"name" validate:"required,max=100"`
	OwnerID   string  `json:"owner_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Capacity  int     `json:"capacity" validate:"gt=0"`
}

// FarmStats are derived client-side by joining animals and estimations.
type FarmStats struct {
	TotalAnimals     int     `json:"total_animals"`
	ActiveAnimals    int     `json:"active_animals"`
	TotalEstimations int     `json:"total_estimations"`
	AverageWeight    float64 `json:"average_weight"`
	BreedDiversity   int     `json:"breed_diversity"`
}

// FarmDetail is the farm view: the farm, its owner and statistics.
type FarmDetail struct {
	Farm      Farm      `json:"farm"`
	OwnerName string    `json:"owner_name,omitempty"`
	Stats     FarmStats `json:"stats"`
}

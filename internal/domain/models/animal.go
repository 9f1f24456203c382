package models

import "time"

// Breed enumerates the cattle breeds accepted by the platform.
type Breed string

const (
	BreedBrahman    Breed = "brahman"
	BreedNelore     Breed = "nelore"
	BreedAngus      Breed = "angus"
	BreedCebuinas   Breed = "cebuinas"
	BreedCriollo    Breed = "criollo"
	BreedPardoSuizo Breed = "pardo_suizo"
	BreedGuzerat    Breed = "guzerat"
	BreedHolstein   Breed = "holstein"
)

// Breeds lists every supported breed in display order.
var Breeds = []Breed{
	BreedBrahman, BreedNelore, BreedAngus, BreedCebuinas,
	BreedCriollo, BreedPardoSuizo, BreedGuzerat, BreedHolstein,
}

// Valid reports whether b is one of the supported breeds.
func (b Breed) Valid() bool {
	for _, known := range Breeds {
		if b == known {
			return true
		}
	}
	return false
}

// Gender of an animal.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// AnimalStatus tracks the lifecycle state of an animal.
type AnimalStatus string

const (
	AnimalActive   AnimalStatus = "active"
	AnimalInactive AnimalStatus = "inactive"
	AnimalSold     AnimalStatus = "sold"
	AnimalDeceased AnimalStatus = "deceased"
)

// Animal is the backend representation of a single head of cattle.
type Animal struct {
	ID            string       `json:"id"`
	EarTag        string       `json:"ear_tag"`
	Name          string       `json:"name,omitempty"`
	Breed         Breed        `json:"breed"`
	Gender        Gender       `json:"gender"`
	Status        AnimalStatus `json:"status"`
	FarmID        string       `json:"farm_id"`
	BirthDate     *time.Time   `json:"birth_date,omitempty"`
	BirthWeightKg *float64     `json:"birth_weight_kg,omitempty"`
	Color         string       `json:"color,omitempty"`
	Observations  string       `json:"observations,omitempty"`
	CreatedAt     *time.Time   `json:"created_at,omitempty"`
}

// AnimalInput carries create/update form values.
type AnimalInput struct {
	EarTag        string       `json:"ear_tag" validate:"required,max=50"`
	Name          string       `json:"name,omitempty" validate:"max=100"`
	Breed         Breed        `json:"breed" validate:"required,breed"`
	Gender        Gender       `json:"gender" validate:"required,oneof=male female"`
	Status        AnimalStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive sold deceased"`
	FarmID        string       `json:"farm_id" validate:"required"`
	BirthDate     *time.Time   `json:"birth_date,omitempty"`
	BirthWeightKg *float64     `json:"birth_weight_kg,omitempty" validate:"omitempty,gt=0"`
	Color         string       `json:"color,omitempty"`
	Observations  string       `json:"observations,omitempty"`
}

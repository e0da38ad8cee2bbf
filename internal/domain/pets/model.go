package pets

import "time"

// Species define las especies soportadas.
// @Enum dog, cat, rabbit, other
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesRabbit, SpeciesOther:
		return true
	}
	return false
}

// Gender define el sexo de la mascota.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Pet representa un animal del catálogo de adopción.
// IsAdopted solo pasa de false a true una vez, al registrar la adopción (ver adoptions).
type Pet struct {
	ID string

	Name    string
	Species Species
	Breed   string
	Age     string // texto libre: "8 meses", "2 años"
	Weight  string // texto libre: "12 kg"
	Gender  Gender

	Description  string
	HealthStatus []string // tags: "healthy", "vaccinated", ...
	ImageURL     *string

	IsAdopted bool
	CreatedAt time.Time
}

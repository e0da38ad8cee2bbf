package adoptions

import "time"

// Adoption registra una adopción concretada. Hay a lo sumo una por mascota.
// AdoptedBy se desnormaliza desde la solicitud (nombre del adoptante).
type Adoption struct {
	ID            string
	PetID         string
	ApplicationID string

	AdoptedBy    string
	Story        *string
	AdoptionDate time.Time
}

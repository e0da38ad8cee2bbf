package applications

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, true
	}
	return "", false
}

// LivingCondition describe dónde vivirá la mascota.
// @Enum apartment, house, house-with-yard
type LivingCondition string

const (
	LivingApartment     LivingCondition = "apartment"
	LivingHouse         LivingCondition = "house"
	LivingHouseWithYard LivingCondition = "house-with-yard"
)

func (l LivingCondition) Valid() bool {
	switch l {
	case LivingApartment, LivingHouse, LivingHouseWithYard:
		return true
	}
	return false
}

// MinApplicantAge: solo adultos pueden adoptar.
const MinApplicantAge = 18

// Application es una solicitud de adopción enviada desde el formulario público.
// Status arranca en pending y cambia una sola vez (pending -> approved | rejected).
type Application struct {
	ID    string
	PetID string

	FullName        string
	PhoneNumber     string
	Email           string
	Age             int
	Address         string
	LivingCondition LivingCondition
	Experience      *string
	Reason          *string

	Status    Status
	CreatedAt time.Time
}

// PendingPetIDs deriva el estado "en revisión" de las mascotas: las que tienen
// al menos una solicitud pending. No se guarda en ningún lado.
func PendingPetIDs(items []Application) map[string]struct{} {
	out := map[string]struct{}{}
	for _, a := range items {
		if a.Status == StatusPending {
			out[a.PetID] = struct{}{}
		}
	}
	return out
}

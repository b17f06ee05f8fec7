package domain

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginPayload carries credentials for login and registration
type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Validate checks the payload structurally. The API layer does not validate;
// callers (forms, CLI) are expected to call this before issuing the request.
func (p LoginPayload) Validate() error {
	return validate.Struct(p)
}

// CreatePlantPayload carries fields for creating a plant
type CreatePlantPayload struct {
	CultivarID string `json:"cultivarId" validate:"required"`
	GrowID     string `json:"growId,omitempty"`
	Name       string `json:"name,omitempty"`
	StartDate  string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AgeInDays  int    `json:"ageInDays,omitempty" validate:"gte=0"`
	Notes      string `json:"notes,omitempty"`
}

// Validate checks the payload structurally
func (p CreatePlantPayload) Validate() error {
	return validate.Struct(p)
}

// CreateGrowPayload carries fields for creating a grow
type CreateGrowPayload struct {
	Name        string          `json:"name" validate:"required"`
	Environment GrowEnvironment `json:"environment" validate:"required,oneof=INDOOR OUTDOOR GREENHOUSE"`
}

// Validate checks the payload structurally
func (p CreateGrowPayload) Validate() error {
	return validate.Struct(p)
}

// ActionPayload carries optional notes for a plant action
type ActionPayload struct {
	Notes string `json:"notes,omitempty"`
}

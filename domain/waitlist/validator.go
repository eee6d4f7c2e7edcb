package waitlist

import (
	"github.com/evervow/leads-api/internal/models"
	"github.com/evervow/leads-api/internal/validate"
	apperrors "github.com/evervow/leads-api/pkg/errors"
)

// coerceRole maps anything outside the known role set (including absent) to
// Other. Silent default, never a rejection.
func coerceRole(raw string) string {
	switch raw {
	case models.RoleUser, models.RoleVendor, models.RoleOther:
		return raw
	}
	return models.RoleOther
}

// validateJoinRequest normalizes a join payload into a storable row. The only
// rejection is a bad email; every other oddity is absorbed.
func validateJoinRequest(req *JoinRequest) (*models.WaitlistSubmission, error) {
	if req == nil {
		return nil, apperrors.NewInvalidRequestError("Invalid email", nil)
	}

	email, ok := validate.Email(req.Email)
	if !ok {
		return nil, apperrors.NewInvalidRequestError("Invalid email", nil)
	}

	return &models.WaitlistSubmission{
		Email:    email,
		FullName: validate.Optional(req.FullName),
		Role:     coerceRole(req.Role),
	}, nil
}

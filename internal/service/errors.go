package service

import "errors"

var (
	// ErrNotFound covers both absent resources and, under the not_found
	// ownership policy, resources owned by someone else.
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden is returned for ownership failures under the forbidden policy.
	ErrForbidden = errors.New("forbidden")

	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("email already taken")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidEventType    = errors.New("invalid event type")
	ErrVenueExists         = errors.New("event already has a venue")
)

// OwnershipPolicy decides how ownership failures surface to clients. One
// policy is chosen per deployment and applied uniformly across resources.
type OwnershipPolicy string

const (
	// OwnershipNotFound hides the resource's existence from non-owners.
	OwnershipNotFound OwnershipPolicy = "not_found"
	// OwnershipForbidden admits the resource exists but denies access.
	OwnershipForbidden OwnershipPolicy = "forbidden"
)

// Denied returns the error for an ownership mismatch under this policy.
func (p OwnershipPolicy) Denied() error {
	if p == OwnershipForbidden {
		return ErrForbidden
	}
	return ErrNotFound
}

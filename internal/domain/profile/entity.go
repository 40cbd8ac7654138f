package profile

import (
	"time"

	"humsafar-service/internal/pkg/audit"
	"humsafar-service/internal/refdata"
)

// UserProfile is the extended, one-to-one companion record of an identity.
type UserProfile struct {
	ID               int64            `json:"id" db:"id"`
	IdentityID       string           `json:"identity_id" db:"identity_id"`
	Birthdate        time.Time        `json:"birthdate" db:"birthdate"`
	Gender           string           `json:"gender" db:"gender"` // M / F
	Role             refdata.UserRole `json:"role" db:"role"`
	PrimaryContact   string           `json:"primary_contact" db:"primary_contact"`
	AlternateContact *string          `json:"alternate_contact,omitempty" db:"alternate_contact"`
	Address          string           `json:"address" db:"address"`
	AddressLatitude  *float64         `json:"address_latitude,omitempty" db:"address_latitude"`
	AddressLongitude *float64         `json:"address_longitude,omitempty" db:"address_longitude"`
	Landmark         string           `json:"landmark" db:"landmark"`
	Town             string           `json:"town" db:"town"`
	Active           bool             `json:"active" db:"active"`
	DateDeactivated  *time.Time       `json:"date_deactivated,omitempty" db:"date_deactivated"`
	Bio              string           `json:"bio" db:"bio"`
	audit.Stamp
}

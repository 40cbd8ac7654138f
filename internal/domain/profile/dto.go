package profile

// CreateProfileRequest carries the plain field values the presentation
// layer collected. Dates arrive as YYYY-MM-DD strings; all validation
// happens in the service.
type CreateProfileRequest struct {
	IdentityID       string   `json:"identity_id"`
	Birthdate        string   `json:"birthdate" binding:"required"`
	Gender           string   `json:"gender" binding:"required"`
	Role             string   `json:"role" binding:"required"`
	PrimaryContact   string   `json:"primary_contact"`
	AlternateContact *string  `json:"alternate_contact"`
	Address          string   `json:"address"`
	AddressLatitude  *float64 `json:"address_latitude"`
	AddressLongitude *float64 `json:"address_longitude"`
	Landmark         string   `json:"landmark"`
	Town             string   `json:"town"`
	Bio              string   `json:"bio"`
}

// UpdateProfileRequest patches the editable fields. The active flag and
// deactivation timestamp are deliberately absent: those move only through
// Deactivate.
type UpdateProfileRequest struct {
	PrimaryContact   *string  `json:"primary_contact"`
	AlternateContact *string  `json:"alternate_contact"`
	Address          *string  `json:"address"`
	AddressLatitude  *float64 `json:"address_latitude"`
	AddressLongitude *float64 `json:"address_longitude"`
	Landmark         *string  `json:"landmark"`
	Town             *string  `json:"town"`
	Bio              *string  `json:"bio"`
}

// ProfileListFilters narrows List results.
type ProfileListFilters struct {
	Role   string `form:"role"`
	Town   string `form:"town"`
	Active *bool  `form:"active"`
}

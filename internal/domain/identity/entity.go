package identity

import "time"

// Identity mirrors an account held by the external identity provider. The
// service never authenticates anyone; it keeps this row so foreign keys and
// cascade deletes have a concrete parent, and reads IsStaff for
// authorization checks on deletes.
type Identity struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	FullName  string    `json:"full_name" db:"full_name"`
	IsStaff   bool      `json:"is_staff" db:"is_staff"`
	CreatedOn time.Time `json:"created_on" db:"created_on"`
	UpdatedOn time.Time `json:"updated_on" db:"updated_on"`
}

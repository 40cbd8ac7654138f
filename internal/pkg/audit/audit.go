// Package audit provides the created/updated stamp carried by every
// persisted entity. Services stamp through NewStamp and Touch so the four
// fields never drift apart.
package audit

import "time"

// Stamp holds the audit metadata recorded on every write.
type Stamp struct {
	CreatedBy string    `json:"created_by"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedOn time.Time `json:"updated_on"`
}

// NewStamp returns the stamp for a freshly created record: both pairs point
// at the acting identity and the same instant.
func NewStamp(actorID string, now time.Time) Stamp {
	return Stamp{
		CreatedBy: actorID,
		CreatedOn: now,
		UpdatedBy: actorID,
		UpdatedOn: now,
	}
}

// Touch re-stamps the updated pair for a mutation, leaving the created pair
// untouched.
func (s *Stamp) Touch(actorID string, now time.Time) {
	s.UpdatedBy = actorID
	s.UpdatedOn = now
}

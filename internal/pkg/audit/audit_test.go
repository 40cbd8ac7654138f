package audit

import (
	"testing"
	"time"
)

func TestNewStamp(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewStamp("id-1", now)
	if s.CreatedBy != "id-1" || s.UpdatedBy != "id-1" {
		t.Errorf("unexpected actor fields: %+v", s)
	}
	if !s.CreatedOn.Equal(now) || !s.UpdatedOn.Equal(now) {
		t.Errorf("unexpected timestamps: %+v", s)
	}
}

func TestTouchLeavesCreatedPair(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	later := created.Add(48 * time.Hour)

	s := NewStamp("id-1", created)
	s.Touch("id-2", later)

	if s.CreatedBy != "id-1" || !s.CreatedOn.Equal(created) {
		t.Errorf("created pair changed: %+v", s)
	}
	if s.UpdatedBy != "id-2" || !s.UpdatedOn.Equal(later) {
		t.Errorf("updated pair not re-stamped: %+v", s)
	}
}

package visit

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/odonto/odonto/internal/domain/odontogram"
)

func snapshot(closed bool, age time.Duration) *odontogram.Odontogram {
	return &odontogram.Odontogram{
		ID:        uuid.New(),
		Closed:    closed,
		CreatedAt: time.Now().Add(-age),
	}
}

func TestIsEditable(t *testing.T) {
	latest := snapshot(false, 0)
	older := snapshot(true, time.Hour)

	if !IsEditable(latest, latest) {
		t.Error("open latest snapshot must be editable")
	}
	if IsEditable(older, latest) {
		t.Error("historical snapshot must never be editable")
	}
	closedLatest := snapshot(true, 0)
	if IsEditable(closedLatest, closedLatest) {
		t.Error("closed latest snapshot must not be editable")
	}
	if IsEditable(nil, latest) || IsEditable(latest, nil) {
		t.Error("nil snapshots are not editable")
	}
}

package odontogram

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists odontogram snapshots and their teeth.
type Repository interface {
	// Create stores a snapshot together with its full dentition. Returns
	// ErrOpenSnapshotExists when the patient already has an open snapshot.
	Create(ctx context.Context, o *Odontogram) error
	// GetByID loads a snapshot and its teeth.
	GetByID(ctx context.Context, id uuid.UUID) (*Odontogram, error)
	// GetLatest loads the patient's newest snapshot and its teeth.
	GetLatest(ctx context.Context, patientID uuid.UUID) (*Odontogram, error)
	// GetOpen loads the patient's open snapshot, if any.
	GetOpen(ctx context.Context, patientID uuid.UUID) (*Odontogram, error)
	// ListByPatient returns snapshot headers (no teeth), newest first.
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Odontogram, int, error)
	// UpdateTooth merges upd into one tooth under row lock and returns the
	// resulting record. Returns ErrSnapshotClosed for closed snapshots.
	UpdateTooth(ctx context.Context, id uuid.UUID, number int, upd ToothUpdate) (*ToothRecord, error)
	// ToggleInterferingField flips the neural-therapy flag of one tooth.
	ToggleInterferingField(ctx context.Context, id uuid.UUID, number int) (*ToothRecord, error)
	// UpdateObservations replaces the snapshot's general observations.
	UpdateObservations(ctx context.Context, id uuid.UUID, text string) error
	// Close marks a snapshot closed. Closing an already closed snapshot is
	// a no-op.
	Close(ctx context.Context, id uuid.UUID) (*Odontogram, error)
}

package odontogram

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/odonto/odonto/internal/domain/catalog"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateOptions controls how a new snapshot is seeded.
type CreateOptions struct {
	Reason string
	// CopyFromID seeds the dentition from an earlier snapshot instead of
	// the healthy baseline.
	CopyFromID *uuid.UUID
}

func (s *Service) Create(ctx context.Context, patientID, practitionerID uuid.UUID, opts CreateOptions) (*Odontogram, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if practitionerID == uuid.Nil {
		return nil, fmt.Errorf("practitioner_id is required")
	}

	o := &Odontogram{
		PatientID:      patientID,
		PractitionerID: practitionerID,
	}
	if opts.Reason != "" {
		o.Reason = &opts.Reason
	}

	if opts.CopyFromID != nil {
		src, err := s.repo.GetByID(ctx, *opts.CopyFromID)
		switch {
		case errors.Is(err, ErrNotFound):
			// Unresolvable source falls back to the healthy baseline.
		case err != nil:
			return nil, fmt.Errorf("loading source snapshot: %w", err)
		case src.PatientID != patientID:
			return nil, fmt.Errorf("source snapshot belongs to another patient")
		default:
			o.Teeth = CopyTeeth(uuid.Nil, src.Teeth)
		}
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Odontogram, error) {
	return s.repo.GetByID(ctx, id)
}

// Latest returns the patient's newest snapshot regardless of closed state.
func (s *Service) Latest(ctx context.Context, patientID uuid.UUID) (*Odontogram, error) {
	return s.repo.GetLatest(ctx, patientID)
}

// Open returns the patient's open snapshot, if one exists.
func (s *Service) Open(ctx context.Context, patientID uuid.UUID) (*Odontogram, error) {
	return s.repo.GetOpen(ctx, patientID)
}

func (s *Service) History(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Odontogram, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) UpdateTooth(ctx context.Context, id uuid.UUID, number int, upd ToothUpdate) (*ToothRecord, error) {
	if !ValidNumber(number) {
		return nil, fmt.Errorf("invalid tooth number: %d", number)
	}
	if upd.IsEmpty() {
		return nil, fmt.Errorf("update touches no fields")
	}
	if upd.State != nil && !catalog.Valid(*upd.State) {
		return nil, fmt.Errorf("unknown tooth state: %s", *upd.State)
	}
	return s.repo.UpdateTooth(ctx, id, number, upd)
}

func (s *Service) ToggleInterferingField(ctx context.Context, id uuid.UUID, number int) (*ToothRecord, error) {
	if !ValidNumber(number) {
		return nil, fmt.Errorf("invalid tooth number: %d", number)
	}
	return s.repo.ToggleInterferingField(ctx, id, number)
}

func (s *Service) UpdateObservations(ctx context.Context, id uuid.UUID, text string) error {
	return s.repo.UpdateObservations(ctx, id, text)
}

// Close marks the snapshot closed. Already closed snapshots pass through
// unchanged.
func (s *Service) Close(ctx context.Context, id uuid.UUID) (*Odontogram, error) {
	return s.repo.Close(ctx, id)
}

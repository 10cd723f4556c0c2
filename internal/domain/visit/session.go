package visit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/odonto/odonto/internal/domain/odontogram"
	"github.com/odonto/odonto/internal/platform/telemetry"
)

// Phase tracks where a session is in the entry lifecycle.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseCreating
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseCreating:
		return "creating"
	case PhaseReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Session is one practitioner's live view of one patient's chart. It owns
// the snapshot resolution on entry, the debounced observations autosave,
// and the best-effort close on exit. Creation and close each happen at
// most once per session.
type Session struct {
	charts  *odontogram.Service
	log     zerolog.Logger
	metrics *telemetry.Provider

	patientID      uuid.UUID
	practitionerID uuid.UUID

	mu         sync.Mutex
	phase      Phase
	snapshotID uuid.UUID
	created    bool
	closed     bool
	autosave   *Autosaver
}

func NewSession(charts *odontogram.Service, practitionerID, patientID uuid.UUID, delay time.Duration, log zerolog.Logger, metrics *telemetry.Provider) *Session {
	s := &Session{
		charts:         charts,
		log:            log.With().Str("patient_id", patientID.String()).Logger(),
		metrics:        metrics,
		patientID:      patientID,
		practitionerID: practitionerID,
	}
	s.autosave = NewAutosaver(delay, s.commitObservations, s.log, metrics)
	return s
}

func (s *Session) PatientID() uuid.UUID { return s.patientID }

// SnapshotID returns the resolved snapshot id, or uuid.Nil before Enter
// completes.
func (s *Session) SnapshotID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotID
}

// Enter resolves the working snapshot: resume the open one when it exists,
// otherwise create a new one, branching from the latest closed snapshot
// when there is history. Entering an already entered session returns the
// current snapshot.
func (s *Session) Enter(ctx context.Context) (*odontogram.Odontogram, error) {
	s.mu.Lock()
	switch s.phase {
	case PhaseReady:
		id := s.snapshotID
		s.mu.Unlock()
		return s.charts.Get(ctx, id)
	case PhaseCreating:
		s.mu.Unlock()
		return nil, ErrEnterInProgress
	}
	s.phase = PhaseCreating
	s.mu.Unlock()

	o, err := s.resolve(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.phase = PhaseUninitialized
		return nil, err
	}
	s.phase = PhaseReady
	s.snapshotID = o.ID

	var obs string
	if o.GeneralObservations != nil {
		obs = *o.GeneralObservations
	}
	s.autosave.Prime(obs)
	return o, nil
}

// resolve runs only in the goroutine that moved the session into
// PhaseCreating, so the creation latch needs no extra locking.
func (s *Session) resolve(ctx context.Context) (*odontogram.Odontogram, error) {
	open, err := s.charts.Open(ctx, s.patientID)
	if err == nil {
		s.log.Debug().Str("snapshot_id", open.ID.String()).Msg("resuming open snapshot")
		return open, nil
	}
	if !errors.Is(err, odontogram.ErrNotFound) {
		return nil, err
	}

	if s.created {
		return nil, fmt.Errorf("session already created a snapshot that is no longer open")
	}

	var opts odontogram.CreateOptions
	latest, err := s.charts.Latest(ctx, s.patientID)
	switch {
	case err == nil:
		opts.CopyFromID = &latest.ID
	case errors.Is(err, odontogram.ErrNotFound):
		// First visit ever: healthy baseline.
	default:
		return nil, err
	}

	o, err := s.charts.Create(ctx, s.patientID, s.practitionerID, opts)
	if errors.Is(err, odontogram.ErrOpenSnapshotExists) {
		// Lost a creation race; whoever won holds the open snapshot.
		return s.charts.Open(ctx, s.patientID)
	}
	if err != nil {
		return nil, err
	}
	s.created = true
	s.log.Info().Str("snapshot_id", o.ID.String()).Msg("opened visit snapshot")
	return o, nil
}

// editableErr reports why the session cannot accept writes: ErrNoActiveVisit
// before Enter resolves a snapshot, ErrNotEditable after the visit closed.
func (s *Session) editableErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return ErrNoActiveVisit
	}
	if s.closed {
		return ErrNotEditable
	}
	return nil
}

// RecordObservations schedules a debounced write of the observations text.
func (s *Session) RecordObservations(text string) error {
	if err := s.editableErr(); err != nil {
		return err
	}
	s.autosave.Record(text)
	return nil
}

func (s *Session) commitObservations(ctx context.Context, text string) error {
	if err := s.editableErr(); err != nil {
		return err
	}
	s.mu.Lock()
	id := s.snapshotID
	s.mu.Unlock()
	return s.charts.UpdateObservations(ctx, id, text)
}

// Exit closes the visit at most once. Any pending autosave is cancelled
// before the close; text not yet committed is dropped.
func (s *Session) Exit(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.phase != PhaseReady {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	id := s.snapshotID
	s.mu.Unlock()

	s.autosave.Cancel()
	if _, err := s.charts.Close(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("snapshot_id", id.String()).Msg("closing visit snapshot failed")
		return err
	}
	s.log.Info().Str("snapshot_id", id.String()).Msg("closed visit snapshot")
	return nil
}

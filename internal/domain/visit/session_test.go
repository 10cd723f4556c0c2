package visit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/odonto/odonto/internal/domain/catalog"
	"github.com/odonto/odonto/internal/domain/odontogram"
	"github.com/odonto/odonto/internal/platform/telemetry"
)

// chartRepo is a thread-safe in-memory odontogram.Repository. Autosave
// commits arrive from timer goroutines, so everything locks.
type chartRepo struct {
	mu    sync.Mutex
	store map[uuid.UUID]*odontogram.Odontogram
	now   time.Time
	// raceOnCreate makes the next Create behave as if another session won
	// the creation race: the snapshot exists but the call reports conflict.
	raceOnCreate bool
	obsWrites    []string
	closes       int
}

func newChartRepo() *chartRepo {
	return &chartRepo{store: make(map[uuid.UUID]*odontogram.Odontogram), now: time.Now()}
}

func (r *chartRepo) tick() time.Time { r.now = r.now.Add(time.Second); return r.now }

func (r *chartRepo) Create(_ context.Context, o *odontogram.Odontogram) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.store {
		if e.PatientID == o.PatientID && !e.Closed {
			return odontogram.ErrOpenSnapshotExists
		}
	}
	o.ID = uuid.New()
	if len(o.Teeth) == 0 {
		o.Teeth = odontogram.NewTeeth(o.ID)
	}
	for i := range o.Teeth {
		o.Teeth[i].OdontogramID = o.ID
	}
	o.CreatedAt = r.tick()
	o.UpdatedAt = o.CreatedAt
	r.store[o.ID] = o
	if r.raceOnCreate {
		r.raceOnCreate = false
		return odontogram.ErrOpenSnapshotExists
	}
	return nil
}

func (r *chartRepo) GetByID(_ context.Context, id uuid.UUID) (*odontogram.Odontogram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.store[id]
	if !ok {
		return nil, odontogram.ErrNotFound
	}
	return o, nil
}

func (r *chartRepo) GetLatest(_ context.Context, pid uuid.UUID) (*odontogram.Odontogram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *odontogram.Odontogram
	for _, o := range r.store {
		if o.PatientID == pid && (latest == nil || o.CreatedAt.After(latest.CreatedAt)) {
			latest = o
		}
	}
	if latest == nil {
		return nil, odontogram.ErrNotFound
	}
	return latest, nil
}

func (r *chartRepo) GetOpen(_ context.Context, pid uuid.UUID) (*odontogram.Odontogram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.store {
		if o.PatientID == pid && !o.Closed {
			return o, nil
		}
	}
	return nil, odontogram.ErrNotFound
}

func (r *chartRepo) ListByPatient(_ context.Context, pid uuid.UUID, limit, offset int) ([]*odontogram.Odontogram, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []*odontogram.Odontogram
	for _, o := range r.store {
		if o.PatientID == pid {
			items = append(items, o)
		}
	}
	// newest first
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[j].CreatedAt.After(items[i].CreatedAt) {
				items[i], items[j] = items[j], items[i]
			}
		}
	}
	total := len(items)
	if offset >= len(items) {
		return nil, total, nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items, total, nil
}

func (r *chartRepo) UpdateTooth(_ context.Context, id uuid.UUID, number int, upd odontogram.ToothUpdate) (*odontogram.ToothRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.store[id]
	if !ok {
		return nil, odontogram.ErrNotFound
	}
	if o.Closed {
		return nil, odontogram.ErrSnapshotClosed
	}
	for i := range o.Teeth {
		if o.Teeth[i].Number == number {
			upd.Apply(&o.Teeth[i])
			return &o.Teeth[i], nil
		}
	}
	return nil, odontogram.ErrToothNotFound
}

func (r *chartRepo) ToggleInterferingField(_ context.Context, id uuid.UUID, number int) (*odontogram.ToothRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.store[id]
	if !ok {
		return nil, odontogram.ErrNotFound
	}
	if o.Closed {
		return nil, odontogram.ErrSnapshotClosed
	}
	for i := range o.Teeth {
		if o.Teeth[i].Number == number {
			o.Teeth[i].InterferingField = !o.Teeth[i].InterferingField
			return &o.Teeth[i], nil
		}
	}
	return nil, odontogram.ErrToothNotFound
}

func (r *chartRepo) UpdateObservations(_ context.Context, id uuid.UUID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.store[id]
	if !ok {
		return odontogram.ErrNotFound
	}
	if o.Closed {
		return odontogram.ErrSnapshotClosed
	}
	if text == "" {
		o.GeneralObservations = nil
	} else {
		o.GeneralObservations = &text
	}
	r.obsWrites = append(r.obsWrites, text)
	return nil
}

func (r *chartRepo) Close(_ context.Context, id uuid.UUID) (*odontogram.Odontogram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.store[id]
	if !ok {
		return nil, odontogram.ErrNotFound
	}
	if !o.Closed {
		o.Closed = true
		now := r.tick()
		o.ClosedAt = &now
		r.closes++
	}
	return o, nil
}

func (r *chartRepo) observationWrites() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.obsWrites))
	copy(out, r.obsWrites)
	return out
}

func (r *chartRepo) closeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closes
}

func newTestSession(repo *chartRepo, patientID uuid.UUID) *Session {
	charts := odontogram.NewService(repo)
	return NewSession(charts, uuid.New(), patientID, testDelay, zerolog.Nop(), telemetry.NewProvider())
}

func TestSessionEnter_FreshPatient(t *testing.T) {
	repo := newChartRepo()
	s := newTestSession(repo, uuid.New())

	o, err := s.Enter(context.Background())
	if err != nil {
		t.Fatalf("enter: %v", err)
	}
	if len(o.Teeth) != 32 {
		t.Fatalf("expected baseline dentition, got %d teeth", len(o.Teeth))
	}
	for _, tooth := range o.Teeth {
		if tooth.State != catalog.StateHealthy {
			t.Fatalf("tooth %d starts as %q", tooth.Number, tooth.State)
		}
	}
}

func TestSessionEnter_ResumesOpenSnapshot(t *testing.T) {
	repo := newChartRepo()
	pid := uuid.New()
	charts := odontogram.NewService(repo)
	existing, err := charts.Create(context.Background(), pid, uuid.New(), odontogram.CreateOptions{})
	if err != nil {
		t.Fatal(err)
	}

	s := newTestSession(repo, pid)
	o, err := s.Enter(context.Background())
	if err != nil {
		t.Fatalf("enter: %v", err)
	}
	if o.ID != existing.ID {
		t.Error("enter should resume the open snapshot, not create a new one")
	}
}

func TestSessionEnter_BranchesFromClosedLatest(t *testing.T) {
	repo := newChartRepo()
	pid := uuid.New()
	ctx := context.Background()
	charts := odontogram.NewService(repo)

	prev, err := charts.Create(ctx, pid, uuid.New(), odontogram.CreateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	state := catalog.State("corona")
	if _, err := charts.UpdateTooth(ctx, prev.ID, 21, odontogram.ToothUpdate{State: &state}); err != nil {
		t.Fatal(err)
	}
	if _, err := charts.Close(ctx, prev.ID); err != nil {
		t.Fatal(err)
	}

	s := newTestSession(repo, pid)
	o, err := s.Enter(ctx)
	if err != nil {
		t.Fatalf("enter: %v", err)
	}
	if o.ID == prev.ID {
		t.Fatal("enter after close must create a new snapshot")
	}
	for _, tooth := range o.Teeth {
		if tooth.Number == 21 && tooth.State != "corona" {
			t.Errorf("tooth 21 state = %q, want carried-over corona", tooth.State)
		}
	}
}

func TestSessionEnter_SelfHealsCreationRace(t *testing.T) {
	repo := newChartRepo()
	repo.raceOnCreate = true
	pid := uuid.New()

	s := newTestSession(repo, pid)
	o, err := s.Enter(context.Background())
	if err != nil {
		t.Fatalf("enter should resume after losing the race: %v", err)
	}
	if o == nil || o.PatientID != pid {
		t.Fatal("resumed wrong snapshot")
	}
}

func TestSessionEnter_Idempotent(t *testing.T) {
	repo := newChartRepo()
	s := newTestSession(repo, uuid.New())
	ctx := context.Background()

	first, err := s.Enter(ctx)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Enter(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Error("re-enter must return the same snapshot")
	}
	if len(repo.store) != 1 {
		t.Errorf("expected one snapshot, found %d", len(repo.store))
	}
}

func TestSessionObservations_DebouncedCommit(t *testing.T) {
	repo := newChartRepo()
	s := newTestSession(repo, uuid.New())
	ctx := context.Background()

	if err := s.RecordObservations("antes de entrar"); err != ErrNoActiveVisit {
		t.Fatalf("expected ErrNoActiveVisit before enter, got %v", err)
	}

	if _, err := s.Enter(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordObservations("paciente refiere dolor"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(4 * testDelay)

	writes := repo.observationWrites()
	if len(writes) != 1 || writes[0] != "paciente refiere dolor" {
		t.Fatalf("expected one committed write, got %v", writes)
	}
}

func TestSessionExit_CancelsPendingAutosave(t *testing.T) {
	repo := newChartRepo()
	s := newTestSession(repo, uuid.New())
	ctx := context.Background()

	if _, err := s.Enter(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordObservations("no debe guardarse"); err != nil {
		t.Fatal(err)
	}
	if err := s.Exit(ctx); err != nil {
		t.Fatal(err)
	}
	time.Sleep(4 * testDelay)

	if writes := repo.observationWrites(); len(writes) != 0 {
		t.Fatalf("autosave fired after exit: %v", writes)
	}
	if repo.closeCount() != 1 {
		t.Errorf("close count = %d, want 1", repo.closeCount())
	}
}

func TestSessionExit_SingleShot(t *testing.T) {
	repo := newChartRepo()
	s := newTestSession(repo, uuid.New())
	ctx := context.Background()

	if _, err := s.Enter(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.Exit(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.Exit(ctx); err != nil {
		t.Fatalf("second exit must be a no-op, got %v", err)
	}
	if repo.closeCount() != 1 {
		t.Errorf("close count = %d, want 1", repo.closeCount())
	}

	if err := s.RecordObservations("tarde"); err != ErrNotEditable {
		t.Errorf("expected ErrNotEditable after exit, got %v", err)
	}
}

package visit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/odonto/odonto/internal/domain/odontogram"
	"github.com/odonto/odonto/internal/platform/telemetry"
)

func newTestManager(repo *chartRepo) *Manager {
	return NewManager(odontogram.NewService(repo), testDelay, zerolog.Nop(), telemetry.NewProvider())
}

func TestManagerEnter_ReusesSessionPerPatient(t *testing.T) {
	repo := newChartRepo()
	m := newTestManager(repo)
	ctx := context.Background()
	prac, pat := uuid.New(), uuid.New()

	first, err := m.Enter(ctx, prac, pat)
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Enter(ctx, prac, pat)
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Error("re-entering the same patient must reuse the session")
	}
}

func TestManagerEnter_PatientSwitchClosesPrevious(t *testing.T) {
	repo := newChartRepo()
	m := newTestManager(repo)
	ctx := context.Background()
	prac, patA, patB := uuid.New(), uuid.New(), uuid.New()

	a, err := m.Enter(ctx, prac, patA)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Enter(ctx, prac, patB); err != nil {
		t.Fatal(err)
	}

	closed, err := odontogram.NewService(repo).Get(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !closed.Closed {
		t.Error("switching patients must close the previous visit")
	}
	if m.Session(prac, patA) != nil {
		t.Error("previous session still registered after switch")
	}
	if m.Session(prac, patB) == nil {
		t.Error("new session missing after switch")
	}
}

func TestManagerExit_UnknownPatientIsNoop(t *testing.T) {
	repo := newChartRepo()
	m := newTestManager(repo)
	if err := m.Exit(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("exit without a session should be a no-op, got %v", err)
	}
}

func TestManagerRecordObservations_RequiresSession(t *testing.T) {
	repo := newChartRepo()
	m := newTestManager(repo)
	ctx := context.Background()
	prac, pat := uuid.New(), uuid.New()

	if err := m.RecordObservations(prac, pat, "x"); err != ErrNoActiveVisit {
		t.Fatalf("expected ErrNoActiveVisit, got %v", err)
	}
	if _, err := m.Enter(ctx, prac, pat); err != nil {
		t.Fatal(err)
	}
	if err := m.RecordObservations(prac, pat, "x"); err != nil {
		t.Fatalf("record after enter: %v", err)
	}
}

func TestManager_PractitionersAreIndependent(t *testing.T) {
	repo := newChartRepo()
	m := newTestManager(repo)
	ctx := context.Background()
	pat := uuid.New()

	if _, err := m.Enter(ctx, uuid.New(), pat); err != nil {
		t.Fatal(err)
	}
	// Second practitioner resumes the same open snapshot instead of
	// failing on the unique-open constraint.
	if _, err := m.Enter(ctx, uuid.New(), pat); err != nil {
		t.Fatalf("second practitioner enter: %v", err)
	}
	if len(repo.store) != 1 {
		t.Errorf("expected one shared snapshot, found %d", len(repo.store))
	}
}

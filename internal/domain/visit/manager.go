package visit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/odonto/odonto/internal/domain/odontogram"
	"github.com/odonto/odonto/internal/platform/telemetry"
)

// Manager tracks at most one live session per practitioner. Entering a
// different patient replaces the practitioner's current session, closing
// the old visit on the way out.
type Manager struct {
	charts  *odontogram.Service
	delay   time.Duration
	log     zerolog.Logger
	metrics *telemetry.Provider

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewManager(charts *odontogram.Service, delay time.Duration, log zerolog.Logger, metrics *telemetry.Provider) *Manager {
	return &Manager{
		charts:   charts,
		delay:    delay,
		log:      log,
		metrics:  metrics,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Enter returns the practitioner's session for the patient, creating or
// replacing it as needed, with the resolved snapshot.
func (m *Manager) Enter(ctx context.Context, practitionerID, patientID uuid.UUID) (*odontogram.Odontogram, error) {
	m.mu.Lock()
	cur := m.sessions[practitionerID]
	if cur != nil && cur.PatientID() != patientID {
		delete(m.sessions, practitionerID)
		m.mu.Unlock()
		if err := cur.Exit(ctx); err != nil {
			m.log.Warn().Err(err).Msg("closing previous visit on patient switch")
		}
		m.mu.Lock()
		cur = nil
	}
	if cur == nil {
		cur = NewSession(m.charts, practitionerID, patientID, m.delay, m.log, m.metrics)
		m.sessions[practitionerID] = cur
	}
	m.metrics.SetOpenVisits(int64(len(m.sessions)))
	m.mu.Unlock()

	return cur.Enter(ctx)
}

// Exit ends the practitioner's session for the patient. Exiting a patient
// the practitioner is not visiting is a no-op.
func (m *Manager) Exit(ctx context.Context, practitionerID, patientID uuid.UUID) error {
	m.mu.Lock()
	cur := m.sessions[practitionerID]
	if cur == nil || cur.PatientID() != patientID {
		m.mu.Unlock()
		return nil
	}
	delete(m.sessions, practitionerID)
	m.metrics.SetOpenVisits(int64(len(m.sessions)))
	m.mu.Unlock()

	return cur.Exit(ctx)
}

// Session returns the practitioner's live session for the patient, or nil.
func (m *Manager) Session(practitionerID, patientID uuid.UUID) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.sessions[practitionerID]
	if cur == nil || cur.PatientID() != patientID {
		return nil
	}
	return cur
}

// RecordObservations routes a debounced observations edit to the live
// session.
func (m *Manager) RecordObservations(practitionerID, patientID uuid.UUID, text string) error {
	cur := m.Session(practitionerID, patientID)
	if cur == nil {
		return ErrNoActiveVisit
	}
	return cur.RecordObservations(text)
}

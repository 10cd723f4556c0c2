// Package odontogram implements the per-visit dental chart: an immutable
// history of snapshots, each holding the full set of 32 permanent teeth in
// FDI notation.
package odontogram

import (
	"time"

	"github.com/google/uuid"

	"github.com/odonto/odonto/internal/domain/catalog"
)

// Odontogram is one chart snapshot. A snapshot is open until it is closed;
// at most one open snapshot exists per patient.
type Odontogram struct {
	ID                  uuid.UUID     `db:"id" json:"id"`
	PatientID           uuid.UUID     `db:"patient_id" json:"patient_id"`
	PractitionerID      uuid.UUID     `db:"practitioner_id" json:"practitioner_id"`
	Reason              *string       `db:"reason" json:"reason,omitempty"`
	GeneralObservations *string       `db:"general_observations" json:"general_observations,omitempty"`
	Closed              bool          `db:"closed" json:"closed"`
	ClosedAt            *time.Time    `db:"closed_at" json:"closed_at,omitempty"`
	Teeth               []ToothRecord `db:"-" json:"teeth,omitempty"`
	CreatedAt           time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time     `db:"updated_at" json:"updated_at"`
}

// ToothRecord is the clinical record of a single tooth within a snapshot.
type ToothRecord struct {
	OdontogramID          uuid.UUID     `db:"odontogram_id" json:"-"`
	Number                int           `db:"tooth_number" json:"number"`
	State                 catalog.State `db:"state" json:"state"`
	Diagnosis             *string       `db:"diagnosis" json:"diagnosis,omitempty"`
	ClinicalFindings      *string       `db:"clinical_findings" json:"clinical_findings,omitempty"`
	InterferingField      bool          `db:"interfering_field" json:"interfering_field"`
	InterferingFieldNotes *string       `db:"interfering_field_notes" json:"interfering_field_notes,omitempty"`
	AppliedProtocolIDs    []uuid.UUID   `db:"applied_protocol_ids" json:"applied_protocol_ids,omitempty"`
	Observations          *string       `db:"observations" json:"observations,omitempty"`
	UpdatedAt             time.Time     `db:"updated_at" json:"updated_at"`
}

// ToothUpdate carries a partial update for a single tooth. Nil fields are
// left untouched; a pointer to the zero value clears the field.
type ToothUpdate struct {
	State                 *catalog.State `json:"state,omitempty"`
	Diagnosis             *string        `json:"diagnosis,omitempty"`
	ClinicalFindings      *string        `json:"clinical_findings,omitempty"`
	InterferingField      *bool          `json:"interfering_field,omitempty"`
	InterferingFieldNotes *string        `json:"interfering_field_notes,omitempty"`
	AppliedProtocolIDs    *[]uuid.UUID   `json:"applied_protocol_ids,omitempty"`
	Observations          *string        `json:"observations,omitempty"`
}

// IsEmpty reports whether the update touches nothing.
func (u ToothUpdate) IsEmpty() bool {
	return u.State == nil && u.Diagnosis == nil && u.ClinicalFindings == nil &&
		u.InterferingField == nil && u.InterferingFieldNotes == nil &&
		u.AppliedProtocolIDs == nil && u.Observations == nil
}

// Apply merges the update into t. Empty-string pointers clear the field.
func (u ToothUpdate) Apply(t *ToothRecord) {
	if u.State != nil {
		t.State = *u.State
	}
	if u.Diagnosis != nil {
		t.Diagnosis = nilIfEmpty(*u.Diagnosis)
	}
	if u.ClinicalFindings != nil {
		t.ClinicalFindings = nilIfEmpty(*u.ClinicalFindings)
	}
	if u.InterferingField != nil {
		t.InterferingField = *u.InterferingField
	}
	if u.InterferingFieldNotes != nil {
		t.InterferingFieldNotes = nilIfEmpty(*u.InterferingFieldNotes)
	}
	if u.AppliedProtocolIDs != nil {
		t.AppliedProtocolIDs = *u.AppliedProtocolIDs
	}
	if u.Observations != nil {
		t.Observations = nilIfEmpty(*u.Observations)
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// toothNumbers lists the 32 permanent teeth in FDI notation, quadrant by
// quadrant.
var toothNumbers = buildToothNumbers()

func buildToothNumbers() []int {
	out := make([]int, 0, 32)
	for _, quadrant := range []int{1, 2, 3, 4} {
		for pos := 1; pos <= 8; pos++ {
			out = append(out, quadrant*10+pos)
		}
	}
	return out
}

// ToothNumbers returns the 32 FDI tooth numbers in quadrant order.
func ToothNumbers() []int {
	out := make([]int, len(toothNumbers))
	copy(out, toothNumbers)
	return out
}

// ValidNumber reports whether n is a permanent-dentition FDI number.
func ValidNumber(n int) bool {
	q, pos := n/10, n%10
	return q >= 1 && q <= 4 && pos >= 1 && pos <= 8
}

// NewTeeth builds the baseline dentition for a fresh snapshot, every tooth
// healthy.
func NewTeeth(odontogramID uuid.UUID) []ToothRecord {
	out := make([]ToothRecord, 0, len(toothNumbers))
	for _, n := range toothNumbers {
		out = append(out, ToothRecord{
			OdontogramID: odontogramID,
			Number:       n,
			State:        catalog.StateHealthy,
		})
	}
	return out
}

// CopyTeeth duplicates src's teeth for a new snapshot, carrying the clinical
// state forward.
func CopyTeeth(odontogramID uuid.UUID, src []ToothRecord) []ToothRecord {
	out := make([]ToothRecord, len(src))
	for i, t := range src {
		t.OdontogramID = odontogramID
		if t.AppliedProtocolIDs != nil {
			ids := make([]uuid.UUID, len(t.AppliedProtocolIDs))
			copy(ids, t.AppliedProtocolIDs)
			t.AppliedProtocolIDs = ids
		}
		out[i] = t
	}
	return out
}

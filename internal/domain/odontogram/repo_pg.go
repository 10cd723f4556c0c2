package odontogram

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odonto/odonto/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

// inTx runs fn inside the ambient transaction when one is present, or a new
// one otherwise.
func (r *repoPG) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if db.TxFromContext(ctx) != nil {
		return fn(ctx)
	}
	return db.WithTx(ctx, r.pool, fn)
}

const oneOpenConstraint = "odontogram_one_open_per_patient"

func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == oneOpenConstraint {
		return ErrOpenSnapshotExists
	}
	return err
}

const odoCols = `id, patient_id, practitioner_id, reason, general_observations,
	closed, closed_at, created_at, updated_at`

func scanOdontogram(row pgx.Row) (*Odontogram, error) {
	var o Odontogram
	err := row.Scan(&o.ID, &o.PatientID, &o.PractitionerID, &o.Reason,
		&o.GeneralObservations, &o.Closed, &o.ClosedAt, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &o, err
}

const toothCols = `odontogram_id, tooth_number, state, diagnosis, clinical_findings,
	interfering_field, interfering_field_notes, applied_protocol_ids,
	observations, updated_at`

func scanTooth(row pgx.Row) (*ToothRecord, error) {
	var t ToothRecord
	err := row.Scan(&t.OdontogramID, &t.Number, &t.State, &t.Diagnosis,
		&t.ClinicalFindings, &t.InterferingField, &t.InterferingFieldNotes,
		&t.AppliedProtocolIDs, &t.Observations, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrToothNotFound
	}
	return &t, err
}

func (r *repoPG) Create(ctx context.Context, o *Odontogram) error {
	o.ID = uuid.New()
	if len(o.Teeth) == 0 {
		o.Teeth = NewTeeth(o.ID)
	}
	err := r.inTx(ctx, func(ctx context.Context) error {
		q := r.conn(ctx)
		row := q.QueryRow(ctx, `
			INSERT INTO odontogram (id, patient_id, practitioner_id, reason, general_observations)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING created_at, updated_at`,
			o.ID, o.PatientID, o.PractitionerID, o.Reason, o.GeneralObservations)
		if err := row.Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
			return err
		}
		for i := range o.Teeth {
			t := &o.Teeth[i]
			t.OdontogramID = o.ID
			if err := q.QueryRow(ctx, `
				INSERT INTO odontogram_tooth (odontogram_id, tooth_number, state, diagnosis,
					clinical_findings, interfering_field, interfering_field_notes,
					applied_protocol_ids, observations)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
				RETURNING updated_at`,
				t.OdontogramID, t.Number, t.State, t.Diagnosis,
				t.ClinicalFindings, t.InterferingField, t.InterferingFieldNotes,
				t.AppliedProtocolIDs, t.Observations).Scan(&t.UpdatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	return translateErr(err)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Odontogram, error) {
	o, err := scanOdontogram(r.conn(ctx).QueryRow(ctx,
		`SELECT `+odoCols+` FROM odontogram WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	o.Teeth, err = r.loadTeeth(ctx, o.ID)
	return o, err
}

func (r *repoPG) GetLatest(ctx context.Context, patientID uuid.UUID) (*Odontogram, error) {
	o, err := scanOdontogram(r.conn(ctx).QueryRow(ctx,
		`SELECT `+odoCols+` FROM odontogram WHERE patient_id = $1
		 ORDER BY created_at DESC LIMIT 1`, patientID))
	if err != nil {
		return nil, err
	}
	o.Teeth, err = r.loadTeeth(ctx, o.ID)
	return o, err
}

func (r *repoPG) GetOpen(ctx context.Context, patientID uuid.UUID) (*Odontogram, error) {
	o, err := scanOdontogram(r.conn(ctx).QueryRow(ctx,
		`SELECT `+odoCols+` FROM odontogram WHERE patient_id = $1 AND NOT closed`, patientID))
	if err != nil {
		return nil, err
	}
	o.Teeth, err = r.loadTeeth(ctx, o.ID)
	return o, err
}

func (r *repoPG) loadTeeth(ctx context.Context, id uuid.UUID) ([]ToothRecord, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+toothCols+` FROM odontogram_tooth
		WHERE odontogram_id = $1 ORDER BY tooth_number`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var teeth []ToothRecord
	for rows.Next() {
		t, err := scanTooth(rows)
		if err != nil {
			return nil, err
		}
		teeth = append(teeth, *t)
	}
	return teeth, rows.Err()
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Odontogram, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM odontogram WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+odoCols+` FROM odontogram WHERE patient_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Odontogram
	for rows.Next() {
		o, err := scanOdontogram(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, o)
	}
	return items, total, rows.Err()
}

// lockSnapshot verifies the snapshot exists and is open, taking a row lock
// so concurrent tooth writes serialize per snapshot.
func lockSnapshot(ctx context.Context, q queryable, id uuid.UUID) error {
	var closed bool
	err := q.QueryRow(ctx,
		`SELECT closed FROM odontogram WHERE id = $1 FOR UPDATE`, id).Scan(&closed)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if closed {
		return ErrSnapshotClosed
	}
	return nil
}

func (r *repoPG) UpdateTooth(ctx context.Context, id uuid.UUID, number int, upd ToothUpdate) (*ToothRecord, error) {
	var out *ToothRecord
	err := r.inTx(ctx, func(ctx context.Context) error {
		q := r.conn(ctx)
		if err := lockSnapshot(ctx, q, id); err != nil {
			return err
		}
		t, err := scanTooth(q.QueryRow(ctx, `
			SELECT `+toothCols+` FROM odontogram_tooth
			WHERE odontogram_id = $1 AND tooth_number = $2 FOR UPDATE`, id, number))
		if err != nil {
			return err
		}
		upd.Apply(t)
		if err := q.QueryRow(ctx, `
			UPDATE odontogram_tooth
			SET state=$3, diagnosis=$4, clinical_findings=$5, interfering_field=$6,
				interfering_field_notes=$7, applied_protocol_ids=$8, observations=$9,
				updated_at=NOW()
			WHERE odontogram_id = $1 AND tooth_number = $2
			RETURNING updated_at`,
			id, number, t.State, t.Diagnosis, t.ClinicalFindings,
			t.InterferingField, t.InterferingFieldNotes, t.AppliedProtocolIDs,
			t.Observations).Scan(&t.UpdatedAt); err != nil {
			return err
		}
		if _, err := q.Exec(ctx,
			`UPDATE odontogram SET updated_at=NOW() WHERE id = $1`, id); err != nil {
			return err
		}
		out = t
		return nil
	})
	return out, err
}

func (r *repoPG) ToggleInterferingField(ctx context.Context, id uuid.UUID, number int) (*ToothRecord, error) {
	var out *ToothRecord
	err := r.inTx(ctx, func(ctx context.Context) error {
		q := r.conn(ctx)
		if err := lockSnapshot(ctx, q, id); err != nil {
			return err
		}
		t, err := scanTooth(q.QueryRow(ctx, `
			UPDATE odontogram_tooth
			SET interfering_field = NOT interfering_field, updated_at = NOW()
			WHERE odontogram_id = $1 AND tooth_number = $2
			RETURNING `+toothCols, id, number))
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx,
			`UPDATE odontogram SET updated_at=NOW() WHERE id = $1`, id); err != nil {
			return err
		}
		out = t
		return nil
	})
	return out, err
}

func (r *repoPG) UpdateObservations(ctx context.Context, id uuid.UUID, text string) error {
	return r.inTx(ctx, func(ctx context.Context) error {
		q := r.conn(ctx)
		if err := lockSnapshot(ctx, q, id); err != nil {
			return err
		}
		var obs *string
		if text != "" {
			obs = &text
		}
		_, err := q.Exec(ctx, `
			UPDATE odontogram SET general_observations=$2, updated_at=NOW()
			WHERE id = $1`, id, obs)
		return err
	})
}

// Close only touches open rows. A snapshot that is already closed is
// immutable, so the repeat call reads it back unchanged.
func (r *repoPG) Close(ctx context.Context, id uuid.UUID) (*Odontogram, error) {
	o, err := scanOdontogram(r.conn(ctx).QueryRow(ctx, `
		UPDATE odontogram
		SET closed = TRUE, closed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND NOT closed
		RETURNING `+odoCols, id))
	if errors.Is(err, ErrNotFound) {
		return r.GetByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	o.Teeth, err = r.loadTeeth(ctx, o.ID)
	return o, err
}

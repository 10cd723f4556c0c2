package odontogram

import "errors"

var (
	// ErrNotFound is returned when no snapshot matches the query.
	ErrNotFound = errors.New("odontogram not found")
	// ErrToothNotFound is returned when a tooth number is not part of the
	// snapshot.
	ErrToothNotFound = errors.New("tooth not found")
	// ErrSnapshotClosed is returned on any write against a closed snapshot.
	ErrSnapshotClosed = errors.New("odontogram is closed")
	// ErrOpenSnapshotExists is returned when creating a snapshot for a
	// patient who already has one open.
	ErrOpenSnapshotExists = errors.New("patient already has an open odontogram")
)

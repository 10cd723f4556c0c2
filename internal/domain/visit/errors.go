package visit

import "errors"

var (
	// ErrNoActiveVisit is returned when an operation needs an entered visit
	// and none exists.
	ErrNoActiveVisit = errors.New("no active visit")
	// ErrEnterInProgress is returned when a concurrent Enter is still
	// resolving the snapshot.
	ErrEnterInProgress = errors.New("visit entry already in progress")
	// ErrNotEditable is returned when writing through a session whose
	// snapshot may no longer be edited.
	ErrNotEditable = errors.New("visit is not editable")
)

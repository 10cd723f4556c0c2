package visit

import (
	"github.com/odonto/odonto/internal/domain/odontogram"
)

// IsEditable reports whether active may be edited: only the latest
// snapshot, and only while it is open. Historical snapshots are read-only
// no matter their closed flag.
func IsEditable(active, latest *odontogram.Odontogram) bool {
	if active == nil || latest == nil {
		return false
	}
	return active.ID == latest.ID && !active.Closed
}

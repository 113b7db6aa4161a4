// Package resolve answers "which folder should this note go into right
// now" by joining the timetable against a folder snapshot.
package resolve

import (
	"time"

	"tableflip.dev/satchel/pkg/remote"
	"tableflip.dev/satchel/pkg/schedule"
)

// TargetFolder resolves the active subject for now and scans the
// snapshot's subfolders in listing order for the first exact name match.
// Sibling names are not unique; when duplicates exist the first listed
// wins. The second return is false when no subject is active or no
// subfolder matches. No mutation, no network call.
func TargetFolder(rows []schedule.Row, now time.Time, folder remote.Folder) (string, bool) {
	subject, ok := schedule.ActiveSubject(rows, now)
	if !ok {
		return "", false
	}
	for _, ref := range folder.Subfolders {
		if ref.Name == subject {
			return ref.ID, true
		}
	}
	return "", false
}

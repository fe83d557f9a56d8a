// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"fmt"

	"github.com/pdiddy/jep106/pkg/types"
)

// Rename records a disabled entry whose document name changed since the
// prior registry was written.
type Rename struct {
	ID      string
	OldName string
	NewName string
}

// String formats the rename as printed on the status stream.
func (r Rename) String() string {
	return fmt.Sprintf(`%s: "%s" -> "%s"`, r.ID, r.OldName, r.NewName)
}

// Reconcile merges scanned records with a prior registry. The result holds
// one entry per id in scan order; a later record with an already-seen id
// replaces the earlier one in place.
//
// With an empty prior every record is enabled. Otherwise records are
// disabled unless the prior registry had them enabled; the sentinels are
// always enabled. An enabled entry keeps its prior name. A disabled entry
// takes the scanned name and, if that differs from the prior one, is
// reported as a Rename.
func Reconcile(records []types.RawRecord, prior Prior) ([]types.Entry, []Rename) {
	merged := make([]types.Entry, 0, len(records))
	index := make(map[string]int, len(records))
	var renames []Rename

	for _, rec := range records {
		id := rec.ID()
		name := rec.Name

		enabled := len(prior) == 0 || types.IsSentinel(id)

		if old, ok := prior[id]; ok {
			if old.Enabled {
				enabled = true
			}
			if old.Name != name {
				if enabled {
					name = old.Name
				} else {
					renames = append(renames, Rename{ID: id, OldName: old.Name, NewName: name})
				}
			}
		}

		e := types.Entry{ID: id, Name: name, Enabled: enabled}
		if i, seen := index[id]; seen {
			merged[i] = e
			continue
		}
		index[id] = len(merged)
		merged = append(merged, e)
	}
	return merged, renames
}

// Package provision lazily creates one remote folder per timetable
// subject. A local record of already-provisioned subjects keeps repeat
// runs from issuing duplicate creations; the remote service stays the
// source of truth for what actually exists.
package provision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"tableflip.dev/satchel/pkg/kv"
	"tableflip.dev/satchel/pkg/remote"
	"tableflip.dev/satchel/pkg/schedule"
)

// ProvisionedKey is where the provisioned-subject set lives in the local
// store, serialized as a JSON string array.
const ProvisionedKey = "createdMaterials"

// Provisioner creates subject folders under RootID.
type Provisioner struct {
	Folders remote.FolderService
	KV      kv.Store
	RootID  string
}

// Load reads the provisioned set. Missing or corrupt data yields an empty
// set; worst case a subject is re-created, which the service treats as
// non-destructive.
func (p *Provisioner) Load() map[string]bool {
	set := make(map[string]bool)
	if p.KV == nil {
		return set
	}
	raw, ok, err := p.KV.Get(ProvisionedKey)
	if err != nil || !ok {
		return set
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return set
	}
	for _, name := range names {
		set[name] = true
	}
	return set
}

// Save persists the provisioned set.
func (p *Provisioner) Save(set map[string]bool) error {
	if p.KV == nil {
		return errors.New("provision: no store configured")
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("provision: encode set: %w", err)
	}
	return p.KV.Set(ProvisionedKey, string(data))
}

// Provision walks the timetable's subject universe and creates a folder
// for every subject not yet provisioned. One subject failing does not stop
// the rest; successes are kept and the set is persisted once at the end.
// The returned set always includes every successfully created subject.
func (p *Provisioner) Provision(ctx context.Context, rows []schedule.Row) (map[string]bool, error) {
	if p.Folders == nil {
		return nil, errors.New("provision: no folder service configured")
	}

	set := p.Load()
	var failed []string
	for subject := range schedule.Subjects(rows) {
		if set[subject] {
			continue
		}
		if _, err := p.Folders.CreateFolder(ctx, subject, p.RootID); err != nil {
			fmt.Fprintf(os.Stderr, "provision %q: %s\n", subject, err)
			failed = append(failed, subject)
			continue
		}
		set[subject] = true
	}

	if err := p.Save(set); err != nil {
		return set, err
	}
	if len(failed) > 0 {
		sort.Strings(failed)
		return set, fmt.Errorf("provision: %d subject(s) failed: %v", len(failed), failed)
	}
	return set, nil
}

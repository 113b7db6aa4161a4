// Package provision contains the runner for the provision command.
package provision

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tableflip.dev/satchel/pkg/provision"
	"tableflip.dev/satchel/pkg/schedule"
)

// Provision creates a remote folder for every timetable subject that does
// not have one yet.
type Provision struct {
	Schedule    *schedule.Store
	Provisioner *provision.Provisioner
}

func (p *Provision) Do(ctx context.Context) error {
	if p.Schedule == nil || p.Provisioner == nil {
		return errors.New("provision: not configured")
	}

	rows := p.Schedule.Load()
	before := p.Provisioner.Load()

	set, err := p.Provisioner.Provision(ctx, rows)

	created := make([]string, 0, len(set))
	for subject := range set {
		if !before[subject] {
			created = append(created, subject)
		}
	}
	sort.Strings(created)
	switch len(created) {
	case 0:
		fmt.Println("All subjects already have folders.")
	default:
		for _, subject := range created {
			fmt.Printf("Created folder for %s\n", subject)
		}
	}
	return err
}

package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/satchel/pkg/kv"
	"tableflip.dev/satchel/pkg/provision"
	"tableflip.dev/satchel/pkg/remote"
	"tableflip.dev/satchel/pkg/schedule"
	"tableflip.dev/satchel/pkg/tree"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "satchel",
		Short: base.Wrap80("Study materials, filed by timetable."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTimetable(topLevel)
	addProvision(topLevel)
	addFolders(topLevel)
	addDocs(topLevel)
	addNow(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// env assembles the shared dependencies for runners: config, the local
// store, and (when needed) the tree service over the remote client.
type env struct {
	Config   kv.Config
	KV       kv.Store
	Schedule *schedule.Store
	Tree     *tree.Service
	RootID   string
}

func loadEnv(needRemote bool) (*env, error) {
	cfg, err := kv.LoadConfig()
	if err != nil {
		return nil, err
	}
	store, err := kv.Load(cfg)
	if err != nil {
		return nil, err
	}

	e := &env{
		Config:   cfg,
		KV:       store,
		Schedule: &schedule.Store{KV: store},
		RootID:   cfg.RootFolderID(),
	}
	if needRemote {
		client, err := remote.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		e.Tree = &tree.Service{Folders: client, Documents: client}
	}
	return e, nil
}

func (e *env) provisioner() *provision.Provisioner {
	return &provision.Provisioner{Folders: e.Tree.Folders, KV: e.KV, RootID: e.RootID}
}

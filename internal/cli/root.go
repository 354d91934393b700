package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

// options общие флаги всех команд
type options struct {
	configPath string
}

// NewRootCmd собирает дерево команд. Без подкоманды запускается сервер
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "pickup-service",
		Short:        "Pickup slot reservation service with admin dashboard",
		Version:      fmt.Sprintf("%s (%s)", Version, CommitSHA),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, false)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.toml", "path to TOML config file")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newMigrateCmd(opts))
	root.AddCommand(newAdminCmd(opts))
	root.AddCommand(newKeysCmd())
	root.AddCommand(newSeedDemoCmd(opts))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	adminUserRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/adminuser"
	sessionRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/session"
	authService "github.com/m04kA/SMC-PickupService/internal/service/auth"
)

func newAdminCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin users and sessions",
	}
	cmd.AddCommand(newAdminAddCmd(opts))
	cmd.AddCommand(newAdminPruneSessionsCmd(opts))
	return cmd
}

func newAdminAddCmd(opts *options) *cobra.Command {
	var username, password string

	c := &cobra.Command{
		Use:   "add",
		Short: "Add an admin user (username/password)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer log.Close()

			db, err := openAndMigrate(cfg, log, true)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := authService.NewService(
				adminUserRepo.NewRepository(db),
				sessionRepo.NewRepository(db),
				cfg.Session.TTL(),
				log,
			)

			user, err := svc.CreateAdmin(context.Background(), username, password)
			if err != nil {
				if errors.Is(err, authService.ErrUsernameTaken) {
					return fmt.Errorf("admin %q already exists", username)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created admin %q (id=%d)\n", user.Username, user.ID)
			return nil
		},
	}

	c.Flags().StringVar(&username, "username", "", "username")
	c.Flags().StringVar(&password, "password", "", "password")
	_ = c.MarkFlagRequired("username")
	_ = c.MarkFlagRequired("password")
	return c
}

func newAdminPruneSessionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "prune-sessions",
		Short: "Delete expired admin sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer log.Close()

			db, err := openAndMigrate(cfg, log, false)
			if err != nil {
				return err
			}
			defer db.Close()

			deleted, err := sessionRepo.NewRepository(db).DeleteExpired(context.Background(), time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d sessions\n", deleted)
			return nil
		},
	}
}

package main

import (
	"flag"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-w3s-wallet/internal/adapter"
	"github.com/MKhiriev/go-w3s-wallet/internal/client"
	"github.com/MKhiriev/go-w3s-wallet/internal/config"
	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/service"
	"github.com/MKhiriev/go-w3s-wallet/internal/store"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

// cli holds what the persistent pre-run wires for the subcommands.
type cli struct {
	buildInfo models.AppBuildInfo
	flagCfg   *config.StructuredConfig

	app      client.Client
	storages *store.ClientStorages
	log      *logger.Logger
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	c := &cli{buildInfo: buildInfo}

	fs := flag.NewFlagSet("w3s-wallet", flag.ContinueOnError)
	c.flagCfg = config.RegisterClientFlags(fs)

	root := &cobra.Command{
		Use:               "w3s-wallet",
		Short:             "Programmable wallet session client",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: c.teardown,
	}
	root.PersistentFlags().AddGoFlagSet(fs)

	root.AddCommand(
		c.signInCmd(),
		c.refreshCmd(),
		c.walletsCmd(),
		c.watchCmd(),
		c.signOutCmd(),
		c.tokenCmd(),
		c.versionCmd(),
	)

	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.GetClientConfig(c.flagCfg)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	c.log = logger.NewClientLogger("w3s-wallet-client", cfg.App.LogPath)
	c.log.Info().
		Str("version", c.buildInfo.BuildVersion()).
		Str("commit", c.buildInfo.BuildCommit()).
		Str("command", cmd.Name()).
		Msg("client started")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, c.log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	c.storages, err = store.NewClientStorages(cmd.Context(), cfg.Storage, c.log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(c.storages, serverAdapter, cfg.Workers, c.log)

	c.app, err = client.NewApp(services, cfg.Workers, cmd.OutOrStdout(), c.log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return nil
}

func (c *cli) teardown(*cobra.Command, []string) {
	if err := c.storages.Close(); err != nil {
		c.log.Err(err).Msg("close local storage")
	}
}

// run records a failed command in the client log.
func (c *cli) run(cmd *cobra.Command, err error) error {
	if err != nil {
		c.log.Err(err).Str("command", cmd.Name()).Msg("command failed")
	}
	return err
}

func (c *cli) signInCmd() *cobra.Command {
	var forceNew bool

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Provision a user (or reuse the persisted one) and list its wallets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, c.app.SignIn(cmd.Context(), forceNew))
		},
	}
	cmd.Flags().BoolVar(&forceNew, "new", false, "ignore the persisted session and create a new user")

	return cmd
}

func (c *cli) refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the user token and re-list wallets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, c.app.Refresh(cmd.Context()))
		},
	}
}

func (c *cli) walletsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "wallets",
		Short: "List wallets and their balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, c.app.Wallets(cmd.Context(), asJSON))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print wallets as JSON")

	return cmd
}

func (c *cli) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep re-listing wallets until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, c.app.Watch(cmd.Context()))
		},
	}
}

func (c *cli) signOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Forget the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, c.app.SignOut(cmd.Context()))
		},
	}
}

func (c *cli) tokenCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print the persisted user token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, c.app.Token(cmd.Context(), copyToClipboard))
		},
	}
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "copy the token to the clipboard")

	return cmd
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(c.buildInfo.String())
		},
	}
}

package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yegors/takeoff/internal/api"
	"github.com/yegors/takeoff/pkg/logger"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve take-off calculations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				a.config.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.config.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Info("Loaded aircraft profiles", logger.Any("aircraft", a.config.AircraftNames()))
			return api.NewServer(a.config, a.logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host, overrides [server].host")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port, overrides [server].port")

	return cmd
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/grandchild/hello_world"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServiceCommand(a *app) *cobra.Command {
	var kickstartPath string
	cmd := &cobra.Command{
		Use:   "service",
		Short: a.translator.Get("cli_help_service"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := hello_world.NewService(a.config.Sysroot)
			if kickstartPath != "" {
				if err := readKickstartFile(cmd, service, kickstartPath); err != nil {
					return err
				}
			}
			conn, err := a.connectBus()
			if err != nil {
				return err
			}
			defer conn.Close()
			if err := hello_world.NewInterface(service).Publish(conn); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			select {
			case <-ctx.Done():
				logrus.Info("Stopping D-Bus service")
			case <-conn.Context().Done():
				logrus.Info("Lost the connection to the message bus")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kickstartPath, "kickstart", "", "kickstart file to read at startup")
	return cmd
}

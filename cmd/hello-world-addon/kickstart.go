package main

import (
	"fmt"

	"github.com/grandchild/hello_world"

	"github.com/spf13/cobra"
)

func newKickstartCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kickstart FILE",
		Short: a.translator.Get("cli_help_kickstart"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := hello_world.NewService(a.config.Sysroot)
			if err := readKickstartFile(cmd, service, args[0]); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), service.GenerateKickstart())
			return nil
		},
	}
}

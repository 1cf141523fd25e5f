package main

import (
	"fmt"

	"github.com/grandchild/hello_world"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Linux terminal command string to clear the current line and reset the cursor
const clearLineVT100 = "\033[2K\r"

// newInstallCommand runs a "silent" installation, on the command line with no user
// interaction: the configuration and installation tasks run one after the other on the
// given system root.
func newInstallCommand(a *app) *cobra.Command {
	var (
		sysroot       string
		kickstartPath string
	)
	cmd := &cobra.Command{
		Use:   "install",
		Short: a.translator.Get("cli_help_install"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("sysroot") {
				sysroot = a.config.Sysroot
			}
			if err := hello_world.CheckSysroot(sysroot); err != nil {
				logrus.WithError(err).WithField("path", sysroot).Error("Unusable system root")
				return err
			}
			service := hello_world.NewService(sysroot)
			if kickstartPath != "" {
				if err := readKickstartFile(cmd, service, kickstartPath); err != nil {
					return err
				}
			}

			tasks := append(service.ConfigureWithTasks(), service.InstallWithTasks()...)
			runner := hello_world.NewTaskRunner(tasks...)
			runner.SetProgressFunction(func(status hello_world.TaskStatus) {
				if !status.Done {
					fmt.Fprint(out, clearLineVT100+status.Task.Name())
				}
			})
			fmt.Fprintln(out, a.translator.Get("silent_installing"))
			runner.StartTasks()
			if err := runner.WaitForDone(); err != nil {
				fmt.Fprintln(out, clearLineVT100+a.translator.Get("silent_failed"))
				return err
			}
			fmt.Fprintln(out, clearLineVT100+a.translator.Get("silent_done"))
			return nil
		},
	}
	cmd.Flags().StringVar(&sysroot, "sysroot", "", "root of the installed system")
	cmd.Flags().StringVar(&kickstartPath, "kickstart", "", "kickstart file with the addon section")
	return cmd
}

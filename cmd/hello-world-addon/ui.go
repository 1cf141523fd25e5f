package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"plugin"

	"github.com/grandchild/hello_world"
	"github.com/grandchild/hello_world/tui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const guiPluginFilename = "gui.so"

type (
	// uiFlags are shared by the tui and gui commands.
	uiFlags struct {
		local         bool
		kickstartPath string
	}
	// frontend is what a spoke runs against: a backend, a way to watch it for changes
	// made elsewhere, and a function to call when the spoke is done.
	frontend struct {
		backend hello_world.Backend
		watch   func(func()) (func(), error)
		close   func(applied bool)
	}
)

func (f *uiFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.local, "local", false,
		"run against an in-process service and print the resulting kickstart section")
	cmd.Flags().StringVar(&f.kickstartPath, "kickstart", "",
		"kickstart file to read into the in-process service")
}

// newFrontend connects to the service on the bus, or with --local, creates a service
// in this process.
func (a *app) newFrontend(cmd *cobra.Command, flags *uiFlags) (*frontend, error) {
	if flags.local {
		service := hello_world.NewService(a.config.Sysroot)
		if flags.kickstartPath != "" {
			if err := readKickstartFile(cmd, service, flags.kickstartPath); err != nil {
				return nil, err
			}
		}
		return &frontend{
			backend: hello_world.LocalBackend{Service: service},
			close: func(applied bool) {
				if applied {
					fmt.Fprint(cmd.OutOrStdout(), service.GenerateKickstart())
				}
			},
		}, nil
	}
	if flags.kickstartPath != "" {
		return nil, errors.New("--kickstart needs --local")
	}
	conn, err := a.connectBus()
	if err != nil {
		return nil, err
	}
	client := hello_world.NewClient(conn)
	return &frontend{
		backend: client,
		watch:   client.Watch,
		close:   func(bool) { conn.Close() },
	}, nil
}

func newTUICommand(a *app) *cobra.Command {
	flags := &uiFlags{}
	cmd := &cobra.Command{
		Use:   "tui",
		Short: a.translator.Get("cli_help_tui"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			front, err := a.newFrontend(cmd, flags)
			if err != nil {
				return err
			}
			return runTUI(front, a.translator)
		},
	}
	flags.register(cmd)
	return cmd
}

func runTUI(front *frontend, translator *hello_world.Translator) error {
	spoke := hello_world.NewSpoke(front.backend, translator)
	if err := spoke.Refresh(); err != nil {
		front.close(false)
		return err
	}
	applied, err := tui.Run(spoke, front.watch)
	front.close(applied)
	return err
}

func newGUICommand(a *app) *cobra.Command {
	var (
		flags      = &uiFlags{}
		pluginPath string
	)
	cmd := &cobra.Command{
		Use:   "gui",
		Short: a.translator.Get("cli_help_gui"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			front, err := a.newFrontend(cmd, flags)
			if err != nil {
				return err
			}
			if pluginPath == "" {
				pluginPath = defaultGuiPluginPath()
			}
			return runGUI(cmd, front, a.translator, pluginPath)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&pluginPath, "plugin", "",
		"path of the GUI plugin, "+guiPluginFilename+" next to the executable by default")
	return cmd
}

// runGUI loads the GUI plugin and shows the graphical spoke. If the GUI can't be loaded
// for some reason, the text spoke is shown instead. The most common reasons are a
// missing display (remote logins, text mode installations) and a missing GTK3.
func runGUI(
	cmd *cobra.Command, front *frontend, translator *hello_world.Translator, pluginPath string,
) error {
	NewSpokeWindow, RunSpokeWindow, RefreshSpokeWindow, err := loadGuiPlugin(pluginPath)
	if err != nil {
		handleGuiErr(cmd, translator.Get("err_gui_startup_failed"), err)
		return runTUI(front, translator)
	}
	spoke := hello_world.NewSpoke(front.backend, translator)
	if err := spoke.Refresh(); err != nil {
		front.close(false)
		return err
	}
	if err := NewSpokeWindow(spoke, translator); err != nil {
		handleGuiErr(cmd, translator.Get("err_gui_startup_failed"), err)
		return runTUI(front, translator)
	}
	if front.watch != nil {
		stop, err := front.watch(RefreshSpokeWindow)
		if err != nil {
			front.close(false)
			return err
		}
		defer stop()
	}
	front.close(RunSpokeWindow())
	return nil
}

func defaultGuiPluginPath() string {
	executable, err := os.Executable()
	if err != nil {
		return guiPluginFilename
	}
	return filepath.Join(filepath.Dir(executable), guiPluginFilename)
}

// loadGuiPlugin tries and loads the code from the plugin file, casts and returns the
// constructor, the run function and the refresh function of the spoke window.
func loadGuiPlugin(path string) (
	NewSpokeWindow func(*hello_world.Spoke, *hello_world.Translator) error,
	RunSpokeWindow func() bool,
	RefreshSpokeWindow func(),
	err error,
) {
	guiPlugin, err := plugin.Open(path)
	if err != nil {
		return
	}
	newRaw, errNew := guiPlugin.Lookup("NewSpokeWindow")
	runRaw, errRun := guiPlugin.Lookup("RunSpokeWindow")
	refreshRaw, errRefresh := guiPlugin.Lookup("RefreshSpokeWindow")
	if err = errors.Join(errNew, errRun, errRefresh); err != nil {
		return
	}
	NewSpokeWindow, okNew := newRaw.(func(*hello_world.Spoke, *hello_world.Translator) error)
	RunSpokeWindow, okRun := runRaw.(func() bool)
	RefreshSpokeWindow, okRefresh := refreshRaw.(func())
	if !okNew || !okRun || !okRefresh {
		err = errors.New("unexpected function types in GUI plugin, probably built against another version")
	}
	return
}

// handleGuiErr logs GUI startup errors and tells the user about them.
func handleGuiErr(cmd *cobra.Command, msg string, errs ...error) {
	for _, err := range errs {
		if err != nil {
			logrus.WithError(err).Warn("Unable to load GUI")
		}
	}
	if len(msg) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), msg)
	}
}

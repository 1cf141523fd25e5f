package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/grandchild/hello_world"

	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands. The config starts with the defaults and
// is replaced by the file given with --config before a subcommand runs.
type app struct {
	configPath string
	logFile    string
	debug      bool
	lang       string

	config     *hello_world.Config
	translator *hello_world.Translator
	logfile    *os.File
}

func newApp(config *hello_world.Config) *app {
	return &app{
		config:     config,
		translator: hello_world.NewTranslatorVar(config.Variables),
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "hello-world-addon",
		Short:             a.translator.Get("cli_help_root"),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file overriding the defaults")
	flags.StringVar(&a.logFile, "log-file", a.config.LogFile, "file to append the log to")
	flags.BoolVar(&a.debug, "debug", a.config.Debug, "log debug messages")
	flags.StringVar(&a.lang, "lang", a.config.Language,
		"language of the spokes: "+strings.Join(a.translator.GetLanguages(), ", "))

	root.AddCommand(
		newServiceCommand(a),
		newKickstartCommand(a),
		newInstallCommand(a),
		newTUICommand(a),
		newGUICommand(a),
	)
	return root
}

// setup loads the config file, applies the global flags on top of it and starts
// logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.configPath != "" {
		config, err := hello_world.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.config = config
		a.translator = hello_world.NewTranslatorVar(config.Variables)
	}
	flags := cmd.Flags()
	if flags.Changed("log-file") || a.configPath == "" {
		a.config.LogFile = a.logFile
	}
	if flags.Changed("debug") || a.configPath == "" {
		a.config.Debug = a.debug
	}
	if flags.Changed("lang") || a.configPath == "" {
		a.config.Language = a.lang
	}

	logfile, err := hello_world.StartLogging(a.config.LogFile, a.config.Debug)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	a.logfile = logfile

	if a.config.Language != "" {
		if err := a.translator.SetLanguage(a.config.Language); err != nil {
			logrus.WithError(err).Warn("Keeping the detected language")
			fmt.Fprintf(cmd.ErrOrStderr(), "Language '%s' not available\n", a.config.Language)
		}
	}
	logrus.WithFields(logrus.Fields{
		"command":  cmd.Name(),
		"language": a.translator.GetLanguage(),
	}).Debug("Starting")
	return nil
}

func (a *app) teardown() {
	if a.logfile != nil {
		a.logfile.Close()
	}
}

// connectBus connects to the private bus given in the config, or to the session or
// system bus.
func (a *app) connectBus() (*dbus.Conn, error) {
	var (
		conn *dbus.Conn
		err  error
	)
	switch {
	case a.config.BusAddress != "":
		conn, err = dbus.Connect(a.config.BusAddress)
	case a.config.Bus == hello_world.SystemBus:
		conn, err = dbus.ConnectSystemBus()
	default:
		conn, err = dbus.ConnectSessionBus()
	}
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the message bus: %w", err)
	}
	return conn, nil
}

// readKickstartFile lets service process the kickstart file at path. "-" reads
// from stdin.
func readKickstartFile(cmd *cobra.Command, service *hello_world.Service, path string) error {
	if path == "-" {
		return service.ReadKickstart(cmd.InOrStdin())
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := service.ReadKickstart(file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/expert-spoon/internal/config"
	"github.com/example/expert-spoon/internal/logging"
	"github.com/example/expert-spoon/internal/menu"
)

var version = "dev"

// The tray event loop must run on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "expert-spoon",
		Short: "Global hotkeys and a tray menu that run configured commands",
		Long: fmt.Sprintf(`expert-spoon registers the shortcuts listed in its YAML configuration as
global hotkeys and mirrors them in a system tray menu.

The configuration is read from $%s when that file exists, otherwise
from ~/%s.`, config.EnvPath, config.DefaultFileName),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(cmd.ErrOrStderr(), debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTray(cmd.Context())
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().Bool("console", false, "keep the console window open (Windows)")

	root.AddCommand(newCheckCmd())
	return root
}

func runTray(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, path, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Infof("using config: %s", path)

	if err := menu.NewRunner(cfg).Start(ctx); err != nil {
		return fmt.Errorf("tray exited with error: %w", err)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and list the menu it produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			bindings, err := menu.Prepare(cfg.Hotkeys)
			if err != nil {
				return err
			}
			if cfg.Icon != "" {
				if _, err := menu.LoadIcon(cfg.Icon); err != nil {
					return err
				}
			}
			printBindings(cmd.OutOrStdout(), path, bindings)
			return nil
		},
	}
}

func printBindings(w io.Writer, path string, bindings []menu.Binding) {
	fmt.Fprintf(w, "Config: %s\n", path)
	if len(bindings) == 0 {
		fmt.Fprintln(w, "No hotkeys configured")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MENU ENTRY\tHOTKEY\tACTION")
	for _, b := range bindings {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Label(), b.Combo, b.Action)
	}
	tw.Flush()
}

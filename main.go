package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/dumbcommander/dumbcommander/pkg/config"
	"github.com/dumbcommander/dumbcommander/pkg/dcsettings"
	"github.com/dumbcommander/dumbcommander/pkg/files"
	"github.com/dumbcommander/dumbcommander/pkg/files/osfile"
	"github.com/dumbcommander/dumbcommander/pkg/fsutils"
	"github.com/dumbcommander/dumbcommander/pkg/logs"
	"github.com/dumbcommander/dumbcommander/pkg/profiling"
	"github.com/dumbcommander/dumbcommander/pkg/tui"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	cpuProfile string
	memProfile string
	pprofAddr  string
	cfg        config.Config
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var pprofStopCPUProfile = pprof.StopCPUProfile
var loadConfig = config.Load
var saveConfig = config.Save
var setupLogging = logs.Setup

func main() {
	if err := newRootCmd().Execute(); err != nil {
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dumbcommander",
		Short:        "A two-panel terminal file manager",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if cfg, err = loadConfig(cfgFile); err != nil {
				return err
			}
			return setupLogging(cfg.Log)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ~/.dumbcommander/config.yaml)")
	flags.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&memProfile, "memprofile", "", "write memory profile to `file`")
	flags.StringVar(&pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")

	rootCmd.AddCommand(newLsCmd())
	rootCmd.AddCommand(newInitConfigCmd())
	return rootCmd
}

func runUI(ctx context.Context) (err error) {
	if pprofAddr != "" {
		go func() {
			err := httpListenAndServe(pprofAddr, nil)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	if cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(cpuProfile)
		defer stopCPUProfiling()
	}

	if memProfile != "" {
		memCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		writeMemProfile := profiling.DoMemProfiling(memCtx, memProfile)
		defer writeMemProfile()
	}

	app, closeUI, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer closeUI()
	return run(app)
}

type closer interface{ Close() }

var setupApp = func(app *tview.Application, cfg config.Config) (closer, error) {
	return tui.SetupApp(app, cfg)
}

var newApp = func(cfg config.Config) (application, func(), error) {
	app := tview.NewApplication()
	ui, err := setupApp(app, cfg)
	if err != nil {
		return nil, nil, err
	}
	return app, ui.Close, nil
}

type application interface{ Run() error }

var run = func(app application) error {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func newLsCmd() *cobra.Command {
	var order string
	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "Print a directory listing without starting the UI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			dir, err := filepath.Abs(fsutils.ExpandHome(dir))
			if err != nil {
				return err
			}
			if order == "" {
				order = cfg.Panels.Order
			}
			listingOrder, err := files.ParseOrder(order)
			if err != nil {
				return err
			}
			listing, err := files.Load(cmd.Context(), osfile.NewStore("/"), dir, files.WithOrder(listingOrder))
			if err != nil {
				return err
			}
			printListing(cmd.OutOrStdout(), listing)
			return nil
		},
	}
	cmd.Flags().StringVar(&order, "order", "", "listing order: none, name or dirs-first")
	return cmd
}

func printListing(w io.Writer, listing *files.Listing) {
	for _, entry := range listing.Entries() {
		perm := "?????????"
		if p, ok := entry.Perm(); ok {
			perm = p.String()
		}
		size := ""
		if entry.IsDir() {
			size = entry.TypeLabel()
		} else if s, ok := entry.Size(); ok {
			size = fsutils.GetSizeShortText(s)
		}
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		_, _ = fmt.Fprintf(w, "%s %8s %s\n", perm, size, name)
	}
}

func newInitConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the current settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				var err error
				if path, err = dcsettings.UserFile(dcsettings.ConfigFileName); err != nil {
					return err
				}
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := saveConfig(path, cfg); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bilal-AKAG/autogitignore/internal/app"
	"github.com/Bilal-AKAG/autogitignore/internal/config"
	"github.com/Bilal-AKAG/autogitignore/internal/logging"
	"github.com/Bilal-AKAG/autogitignore/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		dir        string
		configFile string
		baseURL    string
		cacheFile  string
		logFile    string
		trace      bool
		footer     bool
		verbose    bool
		width      int
		height     int
	)
	cmd := &cobra.Command{
		Use:   "autogitignore [dir]",
		Short: "Compose a .gitignore interactively from gitignore.io templates",
		Long: "autogitignore fetches the template catalog from gitignore.io, lets you\n" +
			"fuzzy-search and pick templates in a terminal UI, previews them, and\n" +
			"writes the merged result to <dir>/.gitignore.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ov := config.Overrides{
				ConfigFile: configFile,
				Dir:        dir,
				URL:        baseURL,
				CacheFile:  cacheFile,
				LogFile:    logFile,
				Args:       os.Args[1:],
			}
			if len(args) == 1 {
				if dir != "" {
					return fmt.Errorf("unexpected argument: %s", args[0])
				}
				ov.Dir = args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("trace") {
				ov.Trace = &trace
			}
			if flags.Changed("footer") {
				ov.Footer = &footer
			}
			if flags.Changed("verbose") {
				ov.Verbose = &verbose
			}
			if flags.Changed("width") {
				ov.Width = &width
			}
			if flags.Changed("height") {
				ov.Height = &height
			}

			cfg, err := config.Load(ov)
			if err != nil {
				return err
			}
			logging.Configure(cfg.Logging.FilePath)
			logging.SetTraceEnabled(cfg.Logging.Trace)
			defer logging.Sync()

			traceStartup(cfg)

			if err := app.Run(cfg.App); err != nil {
				logging.Error(err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to write the .gitignore into (defaults to the working directory)")
	cmd.Flags().StringVar(&configFile, "config", "", "path to a TOML config file")
	cmd.Flags().StringVar(&baseURL, "url", "", "catalog API base URL")
	cmd.Flags().StringVar(&cacheFile, "cache-file", "", "template cache location")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write trace and error logs to this file")
	cmd.Flags().BoolVar(&trace, "trace", false, "enable trace logging")
	cmd.Flags().BoolVar(&footer, "footer", true, "show the shortcut footer")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable verbose notifications")
	cmd.Flags().IntVar(&width, "width", 0, "fixed render width (0 follows the terminal)")
	cmd.Flags().IntVar(&height, "height", 0, "fixed render height (0 follows the terminal)")
	return cmd
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}

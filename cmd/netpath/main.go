package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netpath/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	out    io.Writer
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		configPath string
		a          = &app{out: out}
	)

	rootCmd := &cobra.Command{
		Use:          "netpath",
		Short:        "Generate capture-the-flag maps and search paths across them",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Log.Logger(errOut)
			for _, w := range cfg.Validate() {
				a.logger.Warn("config", "warning", w)
			}

			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file path (yaml, toml or json)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newInspectCmd(a),
		newPathCmd(a),
		newSampleCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the netpath version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.out, "netpath", version)
		},
	}
}

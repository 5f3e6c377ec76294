// Package main provides the shellkernel CLI application entry point.
// It runs the command interpreter kernel over an interactive terminal
// session: a readline loop plays the transport receive path while a
// ticker-driven loop plays the host's periodic poll.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shellkernel/internal/kernel"
	"shellkernel/internal/logger"
	"shellkernel/internal/version"
	"shellkernel/pkg/shelltypes"
)

var (
	logLevel string
	logFile  string
	prompt   string
)

// rootCmd represents the base command; without subcommands it starts the
// interactive session.
var rootCmd = &cobra.Command{
	Use:   "shellkernel",
	Short: "Shell Debug Kernel - line-oriented command interpreter",
	Long: `shellkernel is a line-oriented command interpreter in the style of a
bare-metal debug shell: each input line is normalized, split into a
command and tagged arguments, validated against the command's argument
template, and dispatched. Try "help" or "ping" at the prompt.`,
	RunE: runInteractive,
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log to a file instead of stderr")
	rootCmd.Flags().StringVar(&prompt, "prompt", "shell> ", "interactive prompt")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("prompt", rootCmd.Flags().Lookup("prompt"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig loads .env if present and binds SHELLKERNEL_* environment
// variables, with CLI flags taking precedence.
func initConfig() {
	_ = godotenv.Load()
	viper.SetEnvPrefix("SHELLKERNEL")
	viper.AutomaticEnv()
}

// runInteractive drives the kernel from a readline session. Submitted
// lines land in the kernel's mailbox from this goroutine; a separate
// polling goroutine dispatches them, exercising the same two-context
// handoff an embedded host would.
func runInteractive(_ *cobra.Command, _ []string) error {
	if err := logger.Configure(viper.GetString("log_level"), logFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	k, err := kernel.New(shelltypes.WriterSink{W: os.Stdout}, NewLedCommand())
	if err != nil {
		return fmt.Errorf("failed to build kernel: %w", err)
	}

	rl, err := readline.New(viper.GetString("prompt"))
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer func() { _ = rl.Close() }()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				k.PollAndDispatch()
			}
		}
	}()
	defer close(done)

	logger.Info("shell ready", "version", version.GetVersion())
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("read failed: %w", err)
		}
		if err := k.SubmitLine([]byte(line)); err != nil {
			logger.Error("line rejected", "error", err)
		}
	}

	// Drain anything still pending before the poll loop stops.
	k.PollAndDispatch()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads config, opens the storage collaborator, and builds the catalog state

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/harper/hobbies/internal/app"
	"github.com/harper/hobbies/internal/config"
	"github.com/harper/hobbies/internal/logging"
	"github.com/harper/hobbies/internal/storage"
)

// skipState marks commands that run without opening the catalogs.
const skipState = "skip-state"

var (
	backendFlag string
	dataDirFlag string
	verbose     bool
	logJSON     bool

	logger  = zerolog.Nop()
	kvStore storage.KV
	state   *app.State
)

var rootCmd = &cobra.Command{
	Use:   "hobbies",
	Short: "Book, movie, and recipe tracker with MCP integration",
	Long: `
██╗  ██╗ ██████╗ ██████╗ ██████╗ ██╗███████╗███████╗
██║  ██║██╔═══██╗██╔══██╗██╔══██╗██║██╔════╝██╔════╝
███████║██║   ██║██████╔╝██████╔╝██║█████╗  ███████╗
██╔══██║██║   ██║██╔══██╗██╔══██╗██║██╔══╝  ╚════██║
██║  ██║╚██████╔╝██████╔╝██████╔╝██║███████╗███████║
╚═╝  ╚═╝ ╚═════╝ ╚═════╝ ╚═════╝ ╚═╝╚══════╝╚══════╝

Track what you read, watch, and cook, for humans and AI agents.

Catalogs: books, movies, recipes. Each starts from a bundled sample
list and keeps your changes in the configured storage backend.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(logging.Options{
			Verbose: verbose,
			JSON:    logJSON,
			Out:     cmd.ErrOrStderr(),
		})

		if skipsState(cmd) {
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		kvStore, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
		}
		logger.Debug().Str("backend", cfg.GetBackend()).Str("data_dir", cfg.GetDataDir()).Msg("opened storage")

		state, err = app.New(kvStore, logger)
		if err != nil {
			return fmt.Errorf("failed to load catalogs: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeState()
	},
}

// Execute runs the root command. cobra skips PersistentPostRunE when a
// command fails, so storage is closed here as well.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeState(); err == nil {
		err = cerr
	}
	return err
}

func closeState() error {
	if kvStore == nil {
		return nil
	}
	err := kvStore.Close()
	kvStore, state = nil, nil
	if err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: sqlite, file, charm, or memory (default from config)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default: ~/.local/share/hobbies)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON lines instead of console text")
}

// loadConfig reads the config file and environment, then applies the global
// flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if backendFlag != "" {
		cfg.Backend = backendFlag
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func skipsState(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipState]; ok {
			return true
		}
	}
	return false
}

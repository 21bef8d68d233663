// ABOUTME: Migration command for copying catalogs between storage backends
// ABOUTME: Supports sqlite, file, and charm targets with safety checks

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/hobbies/internal/charm"
	"github.com/harper/hobbies/internal/config"
	"github.com/harper/hobbies/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate data between storage backends",
	Long: `Copy every catalog from the currently configured backend to a different backend.

Catalogs that were never changed are still on the sample list and are skipped.
Does NOT update the config file; verify the migration was successful, then
run 'hobbies setup' or edit config.json.

Examples:
  hobbies migrate --to file
  hobbies migrate --to sqlite --target-dir ~/hobbies-sqlite
  hobbies migrate --to file --force`,
	Annotations: map[string]string{skipState: "true"},
	RunE:        runMigrate,
}

var (
	migrateTo        string
	migrateTargetDir string
	migrateForce     bool
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "target backend (sqlite, file, or charm)")
	migrateCmd.Flags().StringVar(&migrateTargetDir, "target-dir", "", "target data directory (defaults to current data directory)")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "allow writing into a non-empty target directory")
	_ = migrateCmd.MarkFlagRequired("to")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	sourceBackend := cfg.GetBackend()
	targetBackend := strings.ToLower(migrateTo)

	switch targetBackend {
	case config.BackendSQLite, config.BackendFile, config.BackendCharm:
	default:
		return fmt.Errorf("invalid target backend %q: must be %s", migrateTo, strings.Join(config.Backends, ", "))
	}

	targetDataDir := cfg.GetDataDir()
	if migrateTargetDir != "" {
		targetDataDir = config.ExpandPath(migrateTargetDir)
	}
	if targetBackend == sourceBackend && (targetBackend == config.BackendCharm || targetDataDir == cfg.GetDataDir()) {
		return fmt.Errorf("target is the same as the current %s storage", sourceBackend)
	}

	if targetBackend != config.BackendCharm {
		nonEmpty, err := storage.IsDirNonEmpty(targetDataDir)
		if err != nil {
			return fmt.Errorf("check target directory: %w", err)
		}
		// The sqlite and file backends share the default data directory.
		if nonEmpty && !migrateForce && targetDataDir != cfg.GetDataDir() {
			return fmt.Errorf("target directory %q is not empty; use --force to overwrite", targetDataDir)
		}
	}

	src, err := cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("open source storage (%s): %w", sourceBackend, err)
	}
	defer src.Close()

	dst, err := openMigrateStorage(targetBackend, targetDataDir)
	if err != nil {
		return fmt.Errorf("open target storage (%s): %w", targetBackend, err)
	}
	defer dst.Close()

	fmt.Fprintln(out, color.YellowString("Migrating hobbies data:"))
	fmt.Fprintf(out, "  Source:  %s (%s)\n", sourceBackend, cfg.GetDataDir())
	fmt.Fprintf(out, "  Target:  %s (%s)\n", targetBackend, targetDataDir)
	fmt.Fprintln(out)

	// Write every catalog locally, then sync once.
	cloud, toCloud := dst.(*charm.Client)
	if toCloud {
		cloud.SetAutoSync(false)
		defer cloud.SetAutoSync(true)
	}

	summary, err := storage.MigrateData(src, dst)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info().Int("keys", summary.Keys).Int("bytes", summary.Bytes).Msg("migrated catalogs")

	fmt.Fprintln(out, color.GreenString("Migration complete!"))
	fmt.Fprintf(out, "  Catalogs: %d (%d bytes)\n", summary.Keys, summary.Bytes)
	if len(summary.Skipped) > 0 {
		fmt.Fprintf(out, "  Skipped:  %s %s\n", strings.Join(summary.Skipped, ", "), faint("(still on the sample list)"))
	}

	if toCloud {
		if err := cloud.Sync(); err != nil {
			fmt.Fprintln(out, color.YellowString("  Warning: sync failed: %v", err))
		} else {
			fmt.Fprintln(out, color.GreenString("  ✓ Synced to cloud"))
		}
	}
	if c, ok := dst.(storage.Compactor); ok {
		if err := c.Compact(); err != nil {
			return fmt.Errorf("compact target: %w", err)
		}
		fmt.Fprintln(out, color.GreenString("  ✓ Compacted target database"))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, color.YellowString("Note: config.json was NOT updated. To switch to the new backend, edit:"))
	fmt.Fprintf(out, "  %s\n", config.GetConfigPath())
	fmt.Fprintf(out, "  Set \"backend\": %q", targetBackend)
	if migrateTargetDir != "" {
		fmt.Fprintf(out, " and \"data_dir\": %q", migrateTargetDir)
	}
	fmt.Fprintln(out)

	return nil
}

// openMigrateStorage creates a KV implementation for the given backend and data directory.
func openMigrateStorage(backend, dataDir string) (storage.KV, error) {
	switch backend {
	case config.BackendSQLite:
		return storage.NewSQLiteStore(filepath.Join(dataDir, storage.DefaultDBFilename))
	case config.BackendFile:
		return storage.NewFileStore(dataDir)
	case config.BackendCharm:
		return charm.NewClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// ABOUTME: Sync subcommand for Charm cloud integration
// ABOUTME: Provides status, link, unlink, now, repair, reset, and wipe commands for the charm backend

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/charmbracelet/charm/kv"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/hobbies/internal/charm"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Manage cloud sync for the charm backend",
	Long: `Sync your catalogs to the cloud using Charm.

Applies when the storage backend is "charm" (see 'hobbies setup').
Charm uses your SSH keys for authentication - no passwords needed!
All data is encrypted end-to-end before being stored.

Commands:
  status  - Show sync status and account info
  link    - Link your account (open browser to charm.2389.dev)
  unlink  - Unlink this device from your account
  now     - Sync immediately
  repair  - Fix a corrupted local database
  reset   - Delete local data and re-sync from cloud
  wipe    - Permanently delete ALL data (local and cloud)

Examples:
  hobbies sync status
  hobbies sync link
  hobbies sync repair --force`,
	Annotations: map[string]string{skipState: "true"},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Long:  `Display Charm account status and which catalogs are stored in the cloud database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		client, err := charm.NewClient()
		if err != nil {
			return fmt.Errorf("failed to create charm client: %w", err)
		}

		id, err := client.ID()
		if err != nil {
			fmt.Fprintln(out, color.YellowString("Not linked to Charm"))
			fmt.Fprintln(out, "\nRun 'hobbies sync link' to connect your account.")
			return nil
		}

		fmt.Fprintln(out, color.GreenString("Linked to Charm"))
		fmt.Fprintf(out, "  Account ID: %s\n", id)
		fmt.Fprintf(out, "  Server: %s\n", charm.DefaultCharmHost)

		keys, err := client.Keys()
		if err == nil {
			if len(keys) == 0 {
				keys = []string{"none (sample lists only)"}
			}
			fmt.Fprintf(out, "\n  Catalogs: %s\n", strings.Join(keys, ", "))
		}
		return nil
	},
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link to Charm account",
	Long: `Link this device to your Charm account.

Opens your browser to authenticate with Charm Cloud.
Your SSH keys are used for secure authentication.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cc, err := charm.GetCharmClient()
		if err != nil {
			return fmt.Errorf("failed to get charm client: %w", err)
		}

		id, err := cc.ID()
		if err == nil {
			fmt.Fprintln(out, color.GreenString("Already linked to Charm!"))
			fmt.Fprintf(out, "  Account ID: %s\n", id)
			return nil
		}

		fmt.Fprintln(out, "Opening browser to link your Charm account...")
		fmt.Fprintf(out, "Visit: https://%s\n\n", charm.DefaultCharmHost)

		fmt.Fprintln(out, color.YellowString("After linking in browser, run 'hobbies sync now'."))
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Unlink from Charm account",
	Long:  `Unlink this device from your Charm account. Local data is preserved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cc, err := charm.GetCharmClient()
		if err != nil {
			return fmt.Errorf("failed to get charm client: %w", err)
		}

		id, err := cc.ID()
		if err != nil {
			fmt.Fprintln(out, "Not currently linked to Charm.")
			return nil
		}

		fmt.Fprintf(out, "Currently linked to account: %s\n", id)
		fmt.Fprintln(out, "\nTo unlink this device, visit:")
		fmt.Fprintf(out, "  https://%s\n", charm.DefaultCharmHost)
		fmt.Fprintln(out, "\nYou can manage linked devices and SSH keys there.")
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Sync with Charm Cloud immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.NewClient()
		if err != nil {
			return fmt.Errorf("failed to create charm client: %w", err)
		}
		if err := client.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("  ✓ Synced to cloud"))
		return nil
	},
}

var syncRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair a corrupted local database",
	Long: `Attempt to repair a corrupted local database.

Steps performed:
  1. Checkpoint WAL (write-ahead log) into main database
  2. Remove stale SHM (shared memory) files
  3. Run integrity check
  4. Vacuum database to reclaim space

Use --force to attempt REINDEX recovery if corruption is detected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		force, _ := cmd.Flags().GetBool("force")

		fmt.Fprintln(out, "Repairing database...")
		result, err := kv.Repair(charm.DBName, force)

		if result.WalCheckpointed {
			fmt.Fprintln(out, color.GreenString("  ✓ WAL checkpointed"))
		}
		if result.ShmRemoved {
			fmt.Fprintln(out, color.GreenString("  ✓ SHM file removed"))
		}
		if result.IntegrityOK {
			fmt.Fprintln(out, color.GreenString("  ✓ Integrity check passed"))
		} else {
			fmt.Fprintln(out, color.RedString("  ✗ Integrity check failed"))
		}
		if result.Vacuumed {
			fmt.Fprintln(out, color.GreenString("  ✓ Database vacuumed"))
		}

		if err != nil {
			if !force {
				fmt.Fprintln(out, "\nRun with --force to attempt REINDEX recovery.")
			}
			return err
		}

		fmt.Fprintln(out, color.GreenString("\nRepair complete."))
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete local database and re-download from cloud",
	Long: `Delete the local database and re-sync from Charm Cloud.

This removes all local data and re-downloads from the cloud.
Any unsynced local changes will be lost.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if !confirm(cmd, "This will DELETE your local database and re-download from Charm Cloud.\nAny unsynced local data will be lost.\n\nContinue? [y/N] ", "y", "Y") {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}

		fmt.Fprintln(out, "\nResetting database...")
		if err := kv.Reset(charm.DBName); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		fmt.Fprintln(out, color.GreenString("  ✓ Local database deleted"))
		fmt.Fprintln(out, color.GreenString("  ✓ Synced from cloud"))
		fmt.Fprintln(out, color.GreenString("\nReset complete."))
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Permanently delete ALL data (local and cloud)",
	Long: `Permanently delete ALL data for this database.

WARNING: This is destructive and cannot be undone!
This removes BOTH local data AND cloud backups.

If you only want to reset local data, use 'hobbies sync reset' instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.RedString("WARNING: This will permanently delete ALL data!"))
		if !confirm(cmd, "This includes local AND cloud data. This cannot be undone.\n\nType 'wipe' to confirm: ", "wipe") {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}

		fmt.Fprintln(out, "\nWiping database...")
		result, err := kv.Wipe(charm.DBName)
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		if result.CloudBackupsDeleted > 0 {
			fmt.Fprintln(out, color.GreenString("  ✓ %d cloud backups deleted", result.CloudBackupsDeleted))
		}
		if result.LocalFilesDeleted > 0 {
			fmt.Fprintln(out, color.GreenString("  ✓ %d local files deleted", result.LocalFilesDeleted))
		}

		fmt.Fprintln(out, color.GreenString("\nWipe complete."))
		return nil
	},
}

// confirm prints prompt and reports whether the reply is one of accepted.
func confirm(cmd *cobra.Command, prompt string, accepted ...string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	reader := bufio.NewReader(cmd.InOrStdin())
	reply, _ := reader.ReadString('\n')
	reply = strings.TrimSpace(reply)

	for _, a := range accepted {
		if reply == a {
			return true
		}
	}
	return false
}

func init() {
	syncRepairCmd.Flags().Bool("force", false, "Attempt REINDEX recovery if corruption detected")

	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncRepairCmd)
	syncCmd.AddCommand(syncResetCmd)
	syncCmd.AddCommand(syncWipeCmd)

	rootCmd.AddCommand(syncCmd)
}

// ABOUTME: Export command for writing catalogs as JSON to stdout
// ABOUTME: Output matches what the storage backend persists, for backup or inspection

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [catalog]",
	Short: "Export catalogs as JSON",
	Long:  "Write one catalog as a JSON array, or every catalog as a JSON object keyed by catalog name, to standard output",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			cat, err := state.Catalog(args[0])
			if err != nil {
				return err
			}
			data, err := cat.Export()
			if err != nil {
				return fmt.Errorf("failed to export %s: %w", cat.Name(), err)
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}

		all := make(map[string]json.RawMessage)
		for _, cat := range state.Catalogs() {
			data, err := cat.Export()
			if err != nil {
				return fmt.Errorf("failed to export %s: %w", cat.Name(), err)
			}
			all[cat.Name()] = data
		}
		data, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal export: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

// ABOUTME: Tests for CLI commands
// ABOUTME: Tests command structure, flags, and subcommands

package main

import (
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "hobbies" {
		t.Errorf("expected Use to be 'hobbies', got %q", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("expected root command to have a short description")
	}
}

func TestRootPersistentFlags(t *testing.T) {
	for _, name := range []string{"backend", "data-dir", "verbose", "log-json"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestListCommand(t *testing.T) {
	if listCmd.Use != "list <catalog>" {
		t.Errorf("expected Use to be 'list <catalog>', got %q", listCmd.Use)
	}
	if len(listCmd.Aliases) == 0 {
		t.Error("expected list command to have aliases")
	}

	for _, name := range []string{"tab", "search", "category", "sort", "limit"} {
		if listCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestDoneCommand(t *testing.T) {
	if doneCmd.Use != "done <catalog> <id>" {
		t.Errorf("expected Use to be 'done <catalog> <id>', got %q", doneCmd.Use)
	}
	for _, name := range []string{"rating", "note", "date"} {
		if doneCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestAddCommand(t *testing.T) {
	if addCmd.Use != "add <catalog> <title>" {
		t.Errorf("expected Use to be 'add <catalog> <title>', got %q", addCmd.Use)
	}
	for _, name := range []string{"by", "year", "genre", "summary", "link"} {
		if addCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestMigrateCommand(t *testing.T) {
	for _, name := range []string{"to", "target-dir", "force"} {
		if migrateCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
	if !skipsState(migrateCmd) {
		t.Error("migrate opens its own storage and should skip catalog loading")
	}
}

func TestSkipStateInherited(t *testing.T) {
	if !skipsState(syncStatusCmd) {
		t.Error("sync subcommands should inherit skip-state from sync")
	}
	if skipsState(listCmd) {
		t.Error("list needs the catalogs")
	}
}

func TestCommandRegistration(t *testing.T) {
	commands := rootCmd.Commands()

	commandNames := make(map[string]bool)
	for _, cmd := range commands {
		commandNames[cmd.Name()] = true
	}

	expectedCommands := []string{
		"list",
		"show",
		"done",
		"undo",
		"plan",
		"add",
		"update",
		"delete",
		"categories",
		"stats",
		"export",
		"reset",
		"migrate",
		"setup",
		"sync",
		"mcp",
		"version",
		"install-skill",
	}

	for _, expected := range expectedCommands {
		if !commandNames[expected] {
			t.Errorf("expected command %q to be registered", expected)
		}
	}
}

func TestSyncSubcommands(t *testing.T) {
	commands := syncCmd.Commands()

	commandNames := make(map[string]bool)
	for _, cmd := range commands {
		commandNames[cmd.Name()] = true
	}

	for _, expected := range []string{"status", "link", "unlink", "now", "repair", "reset", "wipe"} {
		if !commandNames[expected] {
			t.Errorf("expected sync subcommand %q to be registered", expected)
		}
	}
}

package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// withTempInventory points the global inventory file at a temp location
// for the duration of a test.
func withTempInventory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write temp inventory: %v", err)
		}
	}

	old := inventoryFile
	inventoryFile = &path
	t.Cleanup(func() { inventoryFile = old })
	return path
}

// run executes a subcommand with the given positional and flag
// arguments.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse args %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddCreatesInventoryFile(t *testing.T) {
	path := withTempInventory(t, "")

	if status := run(t, &addCmd{}, "apple", "10"); status != subcommands.ExitSuccess {
		t.Fatalf("add: expected ExitSuccess, got %v", status)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read inventory file: %v", err)
	}
	want := "{\n  \"apple\": 10\n}"
	if string(got) != want {
		t.Errorf("inventory file = %q, want %q", got, want)
	}
}

func TestAddAccumulates(t *testing.T) {
	path := withTempInventory(t, `{"apple": 10}`)

	if status := run(t, &addCmd{}, "apple", "5"); status != subcommands.ExitSuccess {
		t.Fatalf("add: expected ExitSuccess, got %v", status)
	}

	got, _ := os.ReadFile(path)
	want := "{\n  \"apple\": 15\n}"
	if string(got) != want {
		t.Errorf("inventory file = %q, want %q", got, want)
	}
}

func TestAddRejectsBadArgs(t *testing.T) {
	withTempInventory(t, "")

	testCases := []struct {
		name string
		args []string
	}{
		{name: "Missing quantity", args: []string{"apple"}},
		{name: "Non-integer quantity", args: []string{"apple", "ten"}},
		{name: "Negative quantity", args: []string{"apple", "-2"}},
		{name: "Empty item name", args: []string{"", "3"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status := run(t, &addCmd{}, tc.args...); status != subcommands.ExitUsageError {
				t.Errorf("add %v: expected ExitUsageError, got %v", tc.args, status)
			}
		})
	}
}

func TestAddRefusesCorruptInventory(t *testing.T) {
	path := withTempInventory(t, `{"apple": `)

	if status := run(t, &addCmd{}, "apple", "1"); status != subcommands.ExitFailure {
		t.Fatalf("add: expected ExitFailure, got %v", status)
	}

	// The corrupt file must be left alone for the user to repair.
	got, _ := os.ReadFile(path)
	if string(got) != `{"apple": ` {
		t.Errorf("corrupt inventory file rewritten: %q", got)
	}
}

func TestRemoveDepletes(t *testing.T) {
	path := withTempInventory(t, `{"apple": 10, "kiwi": 2}`)

	if status := run(t, &removeCmd{}, "apple", "100"); status != subcommands.ExitSuccess {
		t.Fatalf("remove: expected ExitSuccess, got %v", status)
	}

	got, _ := os.ReadFile(path)
	want := "{\n  \"kiwi\": 2\n}"
	if string(got) != want {
		t.Errorf("inventory file = %q, want %q", got, want)
	}
}

func TestRemoveAbsentItemFails(t *testing.T) {
	path := withTempInventory(t, `{"apple": 10}`)

	if status := run(t, &removeCmd{}, "ghost", "1"); status != subcommands.ExitFailure {
		t.Fatalf("remove: expected ExitFailure, got %v", status)
	}

	// A failed removal must not rewrite the file.
	got, _ := os.ReadFile(path)
	if string(got) != `{"apple": 10}` {
		t.Errorf("inventory file rewritten on failure: %q", got)
	}
}

func TestImportMergesFeed(t *testing.T) {
	path := withTempInventory(t, `{"apple": 10}`)

	feed := filepath.Join(t.TempDir(), "acme.json")
	if err := os.WriteFile(feed, []byte(`{"stock": {"apple": 4, "kiwi": 2}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if status := run(t, &importCmd{}, "-path", "$.stock", feed); status != subcommands.ExitSuccess {
		t.Fatalf("import: expected ExitSuccess, got %v", status)
	}

	got, _ := os.ReadFile(path)
	want := "{\n  \"apple\": 14,\n  \"kiwi\": 2\n}"
	if string(got) != want {
		t.Errorf("inventory file = %q, want %q", got, want)
	}
}

func TestFmtCanonicalizes(t *testing.T) {
	path := withTempInventory(t, `{"apple":10,"kiwi":2}`)

	if status := run(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt: expected ExitSuccess, got %v", status)
	}

	got, _ := os.ReadFile(path)
	want := "{\n  \"apple\": 10,\n  \"kiwi\": 2\n}"
	if string(got) != want {
		t.Errorf("inventory file = %q, want %q", got, want)
	}
}

func TestFmtMissingFileFails(t *testing.T) {
	withTempInventory(t, "")

	if status := run(t, &fmtCmd{}); status != subcommands.ExitFailure {
		t.Fatalf("fmt: expected ExitFailure, got %v", status)
	}
}

package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/agentstation/citylib"
	"github.com/agentstation/citylib/pkg/constants"
	"github.com/agentstation/citylib/pkg/logging"
)

// newTestApp creates an app whose data lives in a fresh temp dir and
// whose commands print the table format.
func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	return newTestAppWithFormat(t, "table")
}

func newTestAppWithFormat(t *testing.T, format string) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CITYLIB_DATA_DIR", dir)
	t.Setenv("CITYLIB_FORMAT", format)

	app, err := New("1.0.0", "abc123", "2024-01-01", "test", WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app, dir
}

// run executes the root command with args and returns what it printed.
func run(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := app.createRootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, dir := newTestApp(t)

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config().DataDir != dir {
		t.Errorf("Config().DataDir = %s, want %s", app.Config().DataDir, dir)
	}
}

// TestApp_Library_Singleton verifies that Library() returns the same instance.
func TestApp_Library_Singleton(t *testing.T) {
	app, _ := newTestApp(t)

	lib1, err := app.Library()
	if err != nil {
		t.Fatalf("Library() failed: %v", err)
	}
	lib2, err := app.Library()
	if err != nil {
		t.Fatalf("Library() failed on second call: %v", err)
	}

	if lib1 != lib2 {
		t.Error("Library() returned different instances, expected singleton")
	}
}

// TestApp_Library_ThreadSafe verifies concurrent Library() calls are safe.
func TestApp_Library_ThreadSafe(t *testing.T) {
	app, _ := newTestApp(t)

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]citylib.Library, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = app.Library()
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		if errs[i] != nil {
			t.Fatalf("goroutine %d: Library() failed: %v", i, errs[i])
		}
		if results[i] != results[0] {
			t.Errorf("goroutine %d got a different instance", i)
		}
	}
}

// TestApp_WithLibrary verifies an injected library is used as-is.
func TestApp_WithLibrary(t *testing.T) {
	lib, err := citylib.New(citylib.WithInMemory())
	if err != nil {
		t.Fatal(err)
	}
	app, err := New("dev", "", "", "", WithLibrary(lib), WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got, err := app.Library()
	if err != nil {
		t.Fatal(err)
	}
	if got != lib {
		t.Error("Library() did not return the injected library")
	}
}

// TestApp_Shutdown verifies shutdown writes unsaved changes.
func TestApp_Shutdown(t *testing.T) {
	t.Run("without library", func(t *testing.T) {
		app, _ := newTestApp(t)
		if err := app.Shutdown(context.Background()); err != nil {
			t.Errorf("Shutdown() = %v, want nil", err)
		}
	})

	t.Run("saves pending changes", func(t *testing.T) {
		dir := t.TempDir()
		lib, err := citylib.New(citylib.WithDataDir(dir), citylib.WithAutoSave(false), citylib.WithLogger(logging.NewNopLogger()))
		if err != nil {
			t.Fatal(err)
		}
		app, err := New("dev", "", "", "", WithLibrary(lib), WithLogger(logging.NewNopLogger()))
		if err != nil {
			t.Fatal(err)
		}

		if _, err := lib.AddMember(context.Background(), "Alice", "alice@example.com"); err != nil {
			t.Fatal(err)
		}
		if err := app.Shutdown(context.Background()); err != nil {
			t.Fatalf("Shutdown() failed: %v", err)
		}

		if got := readFile(t, dir, constants.MembersFile); got != "201|Alice|alice@example.com|\n" {
			t.Errorf("members file = %q", got)
		}
	})
}

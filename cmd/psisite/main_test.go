package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func useTempDatabase(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(out, "psisite dev") {
		t.Errorf("expected output to contain 'psisite dev', got: %s", out)
	}
}

func TestRootCmdHasSubcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"serve", "user", "content", "version"} {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Errorf("expected subcommand %q", name)
		}
	}
}

func TestUserEnsureCmd(t *testing.T) {
	useTempDatabase(t)

	out, err := runCmd(t, "user", "ensure", "-u", "admin", "-p", "secret")
	if err != nil {
		t.Fatalf("user ensure failed: %v", err)
	}
	if !strings.Contains(out, `Created admin user "admin"`) {
		t.Fatalf("unexpected output: %s", out)
	}

	out, err = runCmd(t, "user", "ensure", "-u", "admin", "-p", "secret")
	if err != nil {
		t.Fatalf("second user ensure failed: %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Fatalf("expected existing user message, got: %s", out)
	}
}

func TestUserEnsureRequiresCredentials(t *testing.T) {
	useTempDatabase(t)

	if _, err := runCmd(t, "user", "ensure"); err == nil {
		t.Fatal("expected error without credentials")
	}
}

func TestContentSeedExportImport(t *testing.T) {
	useTempDatabase(t)

	out, err := runCmd(t, "content", "seed")
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if !strings.HasPrefix(out, "Seeded ") {
		t.Fatalf("unexpected seed output: %s", out)
	}

	exportPath := filepath.Join(t.TempDir(), "content.yaml")
	if _, err := runCmd(t, "content", "export", "-o", exportPath); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Fatalf("export missing version header: %s", data)
	}

	out, err = runCmd(t, "content", "import", exportPath)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.HasPrefix(out, "Imported ") {
		t.Fatalf("unexpected import output: %s", out)
	}
}

func TestContentImportRequiresFile(t *testing.T) {
	useTempDatabase(t)

	if _, err := runCmd(t, "content", "import"); err == nil {
		t.Fatal("expected error without file argument")
	}
}

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDirRespectsXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME is not used on Windows")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	if got, want := Dir(), filepath.Join(base, "segbar"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
	if got, want := ModuleDir(), filepath.Join(base, "segbar", "modules"); got != want {
		t.Errorf("ModuleDir() = %q, want %q", got, want)
	}
}

func TestModuleScripts(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME is not used on Windows")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	scripts, err := ModuleScripts()
	if err != nil {
		t.Fatal(err)
	}
	if len(scripts) != 0 {
		t.Fatalf("expected no scripts before the directory exists, got %v", scripts)
	}

	if err := os.MkdirAll(ModuleDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b.lua", "a.lua", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(ModuleDir(), name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	scripts, err = ModuleScripts()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(ModuleDir(), "a.lua"), filepath.Join(ModuleDir(), "b.lua")}
	if len(scripts) != len(want) || scripts[0] != want[0] || scripts[1] != want[1] {
		t.Errorf("got %v, want %v", scripts, want)
	}
}

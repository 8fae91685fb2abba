package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flagConfig = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigDefaultCommand(t *testing.T) {
	out, err := execute(t, "config", "default")
	if err != nil {
		t.Fatalf("config default failed: %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Errorf("config default printed:\n%s", out)
	}
}

func TestConfigCommandUsesFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.yaml")
	if err := os.WriteFile(path, []byte("board: {width: 12, height: 9}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	cfg, err := config.Parse([]byte(out))
	if err != nil {
		t.Fatalf("printed config does not parse: %v\n%s", err, out)
	}
	if cfg.Board.Width != 12 || cfg.Board.Height != 9 {
		t.Errorf("board = %dx%d, expected 12x9", cfg.Board.Width, cfg.Board.Height)
	}
}

func TestConfigCommandMissingFile(t *testing.T) {
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetErr(nil) })

	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("error = %v, expected read failure", err)
	}
}

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("newLogger() should reject unknown levels")
	}

	path := filepath.Join(t.TempDir(), "mines.log")
	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("mines placed", "mines", 135)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "mines placed") || !strings.Contains(string(data), "mines=135") {
		t.Errorf("log file content = %q", data)
	}
}

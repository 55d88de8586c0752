package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathfavour/habilidades/pkg/config"
	"github.com/nathfavour/habilidades/pkg/history"
)

func testSettings(t *testing.T) config.Settings {
	t.Helper()
	return config.Settings{
		Prompt:    "> ",
		Tokenizer: "shell",
		History:   config.HistorySettings{Path: filepath.Join(t.TempDir(), "history.db")},
	}
}

func TestNewRegistry_DefaultCatalog(t *testing.T) {
	var out bytes.Buffer
	reg, err := newRegistry(testSettings(t), &out)
	if err != nil {
		t.Fatalf("newRegistry: %v", err)
	}
	if got := strings.Join(reg.Names(), ","); got != "bitcoin2euro,euro2bitcoin,listadelacompra" {
		t.Errorf("Names() = %s", got)
	}
}

func TestNewRegistry_BadCatalog(t *testing.T) {
	s := testSettings(t)
	s.Catalog = filepath.Join(t.TempDir(), "missing.hjson")
	if _, err := newRegistry(s, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for missing catalog")
	}
}

func TestNewSession_CommaTokenizer(t *testing.T) {
	s := testSettings(t)
	s.Tokenizer = "comas"
	var out bytes.Buffer
	sess, err := newSession(s, strings.NewReader("listadelacompra, insertar, pan de pueblo\nlistadelacompra, listar\nsalir\n"), &out)
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	defer sess.Close()
	if err := sess.shell.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "0: pan de pueblo\n") {
		t.Errorf("output = %q", out.String())
	}
}

func TestNewSession_History(t *testing.T) {
	s := testSettings(t)
	s.History.Enabled = true
	sess, err := newSession(s, strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	ctx := context.Background()
	sess.shell.Execute(ctx, "bitcoin2euro 100")
	sess.shell.Execute(ctx, "noexiste")
	if err := sess.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	store, err := history.Open(s.History.Path)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	defer store.Close()
	entries, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 || entries[0].Outcome != history.OutcomeOK || entries[1].Outcome != "Habilidad no encontrada: noexiste" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestEmulateCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs([]string{"emulate", "--no-color", "ayuda", "bitcoin2euro 100", "salir", "ayuda"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "> bitcoin2euro 100\n4992938.0\n") {
		t.Errorf("output = %q", got)
	}
	if n := strings.Count(got, "Habilidades disponibles:"); n != 1 {
		t.Errorf("listing printed %d times, emulation must stop at salir:\n%s", n, got)
	}
}

func TestShortSession(t *testing.T) {
	tests := map[string]string{
		"":                                     "",
		"abc":                                  "abc",
		"12345678":                             "12345678",
		"0b5e2c1a-7f44-4d7e-9a51-3c2d1e0f9a8b": "0b5e2c1a",
	}
	for in, want := range tests {
		if got := shortSession(in); got != want {
			t.Errorf("shortSession(%q) = %q, want %q", in, got, want)
		}
	}
}

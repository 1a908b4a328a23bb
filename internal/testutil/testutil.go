// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/grimoire-tools/grimoire/internal/home"
	"github.com/grimoire-tools/grimoire/internal/svcctx"
)

// NewLogger returns a test logger writing to stderr at info level.
func NewLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// NewHome returns a home directory rooted in a per-test temp dir, with the
// standard subdirectories created.
func NewHome(t *testing.T) *home.Dir {
	t.Helper()

	d, err := home.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test home: %v", err)
	}
	if err := d.EnsureExists(); err != nil {
		t.Fatalf("failed to populate test home: %v", err)
	}
	return d
}

// NewContext returns a context enriched with test services (logger and a
// temp home). Config is left unset; consumers fall back to defaults.
func NewContext(t *testing.T) context.Context {
	t.Helper()

	return svcctx.WithServices(context.Background(), &svcctx.Services{
		Logger: NewLogger(t),
		Home:   NewHome(t),
	})
}

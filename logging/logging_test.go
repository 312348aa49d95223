package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/toodle-app/toodle/logging"
)

func TestSlogBacked(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.Debug("item created", "handle", 7)
	l.Error("bad handle", "handle", 9)

	out := buf.String()
	for _, want := range []string{"item created", "handle=7", "bad handle", "handle=9"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(slog.New(slog.NewTextHandler(&buf, nil)))

	l.With("component", "boundary").Error("oops")
	if !strings.Contains(buf.String(), "component=boundary") {
		t.Errorf("With attribute missing:\n%s", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	l := logging.Discard()
	// Must be callable with anything and change nothing.
	l.Debug("ignored", "k", "v")
	l.Error("ignored")
	l.With("k", "v").Debug("still ignored")
}

package logging

import (
	"testing"

	"BezierBoard/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, cfg := range []config.Log{
		{Level: "info"},
		{Level: "debug", Development: true},
		{Level: "error"},
	} {
		l, err := New(cfg)
		if err != nil {
			t.Fatalf("New(%+v): %v", cfg, err)
		}
		want, _ := zapcore.ParseLevel(cfg.Level)
		if !l.Core().Enabled(want) {
			t.Errorf("New(%+v): level %s disabled", cfg, want)
		}
		if want > zapcore.DebugLevel && l.Core().Enabled(want-1) {
			t.Errorf("New(%+v): level %s enabled", cfg, want-1)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(config.Log{Level: "loud"}); err == nil {
		t.Fatal("expected an error")
	}
}

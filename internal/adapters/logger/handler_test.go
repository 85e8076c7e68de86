package logger_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/packsync/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_DebugFiltered(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).
		With(slog.String("manager", "npm")).
		WithGroup("install")
	lg.Info("window done", slog.Int("size", 3))

	goldie.New(t).Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_NestedGroupsAndValues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).
		WithGroup("restore").
		With(slog.String("profile", "work laptop")).
		WithGroup("pkg")
	lg.Warn("install failed",
		slog.String("name", "eslint"),
		slog.Group("result", slog.Int("exit_code", 1), slog.String("stderr", "")),
	)

	assert.Equal(t,
		"! install failed restore.profile=\"work laptop\" restore.pkg.name=eslint "+
			"restore.pkg.result.exit_code=1 restore.pkg.result.stderr=\"\"\n",
		buf.String())
}

func TestPrettyHandler_ConcurrentWritesKeepLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	base := slog.New(logger.NewPrettyHandler(buf, nil))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			base.With(slog.Int("worker", i)).Warn(fmt.Sprintf("window %d", i))
		})
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 8)
	for _, line := range lines {
		assert.Regexp(t, `^! window \d worker=\d$`, line)
	}
}

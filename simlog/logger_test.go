package simlog_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/nocsim/nocsim/simlog"
)

func TestLogger_WritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	logger := simlog.New(&buf, zerolog.InfoLevel)

	logger.Info("starting run")
	logger.Infof("tile count: %d", 4)
	logger.Debugf("suppressed at info level: %d", 1)
	logger.Error("fatal contract violation", errors.New("boom"))

	out := buf.String()
	require.Contains(t, out, "starting run")
	require.Contains(t, out, "tile count: 4")
	require.NotContains(t, out, "suppressed at info level")
	require.Contains(t, out, "boom")
	require.True(t, strings.Count(out, "\n") == 3)
}

func TestNop_DiscardsEverything(t *testing.T) {
	logger := simlog.Nop()
	logger.Info("ignored")
	logger.Error("ignored", errors.New("ignored"))
}

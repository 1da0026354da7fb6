package logging

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, LevelError, ParseLevel(" error "))
	require.Equal(t, LevelInfo, ParseLevel("info"))
	require.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	prev := current
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		current = prev
	})
	log.SetOutput(&buf)

	SetLevel(LevelError)
	Debugf("[test] debug %d", 1)
	Infof("[test] info %d", 2)
	Errorf("[test] error %d", 3)

	out := buf.String()
	require.NotContains(t, out, "debug 1")
	require.NotContains(t, out, "info 2")
	require.Contains(t, out, "error 3")

	buf.Reset()
	SetLevel(LevelDebug)
	Debugf("[test] debug %d", 4)
	require.Contains(t, buf.String(), "debug 4")
}

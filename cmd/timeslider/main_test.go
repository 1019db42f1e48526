package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/timeslider/internal/config"
	"github.com/Mr-Dark-debug/timeslider/internal/slider"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketTable(t *testing.T) {
	rows, err := bucketTable(config.Default())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "1", rows[0].ID)
	assert.Equal(t, "2020-01", rows[0].Label)
	assert.Equal(t, 0.0, rows[0].X)
	assert.Equal(t, "2020-04", rows[3].Label)
	assert.Equal(t, 70.0, rows[3].X)
	assert.True(t, strings.HasPrefix(rows[0].Background, "#"))
}

func TestWriteRows(t *testing.T) {
	rows, err := bucketTable(config.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, "json", rows))
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 4)
	assert.Equal(t, "2020-02", decoded[1]["label"])

	buf.Reset()
	require.NoError(t, writeRows(&buf, "yaml", rows))
	assert.Contains(t, buf.String(), "2020-03")

	assert.Error(t, writeRows(&buf, "xml", rows))
}

func TestRunPreview(t *testing.T) {
	cfg := config.Default()
	cfg.Sweep.Duration = 60 * time.Millisecond
	cfg.Sweep.FPS = 200

	var out bytes.Buffer
	err := runPreview(context.Background(), cfg, &out, log.New(io.Discard))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "2020-04"), "first line %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "2020-01"), "last line %q", lines[len(lines)-1])
}

func TestRunPreviewCancelled(t *testing.T) {
	cfg := config.Default()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runPreview(ctx, cfg, io.Discard, log.New(io.Discard))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPeriodSinkReportsChanges(t *testing.T) {
	var buf bytes.Buffer
	sink := periodSink(log.New(&buf))

	sel := func(id string) slider.Selection {
		return slider.Selection{Bucket: slider.Bucket{ID: id, Label: "2020-0" + id}}
	}
	sink(sel("4"))
	sink(sel("4"))
	sink(sel("3"))

	assert.Equal(t, 2, strings.Count(buf.String(), "period changed"))
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	_, _, err := newLogger(config.LogConfig{Level: "loud"}, io.Discard)
	assert.Error(t, err)
}

func TestRootBucketsCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"buckets", "--format", "json", "--max", "6", "--ticks", "6"})

	require.NoError(t, cmd.Execute())

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Len(t, rows, 6)
	assert.Equal(t, "2020-06", rows[5]["label"])
}

func TestRootRejectsBadDomain(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"buckets", "--min", "5", "--max", "2"})

	assert.ErrorIs(t, cmd.Execute(), config.ErrInvalidDomain)
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "timeslider "+Version)
}

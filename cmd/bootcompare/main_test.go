package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/errest/pkg/errors"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	plot := filepath.Join(t.TempDir(), "estimates.png")

	err := run(context.Background(),
		[]string{"-seed", "4", "-plot", plot, "-log-level", "warn", "12", "20", "3", "1.0"},
		&stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Trials 3")
	assert.Contains(t, out, "E632")

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunGRNNParallel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(),
		[]string{"-trainer", "grnn", "-workers", "2", "-log-level", "error", "10", "8", "2", "0.5"},
		&stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Trials 2")
}

func TestRunArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing arguments", args: []string{"20", "200"}},
		{name: "bad nsamples", args: []string{"x", "200", "10", "1"}},
		{name: "bad separation", args: []string{"20", "200", "10", "wide"}},
		{name: "unknown trainer", args: []string{"-trainer", "svm", "20", "200", "10", "1"}},
		{name: "unknown level", args: []string{"-log-level", "loud", "20", "200", "10", "1"}},
		{name: "unknown flag", args: []string{"-fast", "20", "200", "10", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, &stdout, &stderr)
			assert.Error(t, err)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunInvalidConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-log-level", "error", "1", "200", "10", "1"}, &stdout, &stderr)

	var ve *errors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "samples", ve.ParamName)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"-log-level", "error", "10", "10", "5", "1"}, &stdout, &stderr)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, stdout.String())
}

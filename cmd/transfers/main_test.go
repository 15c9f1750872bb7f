package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_ConfigErrorIsLocal(t *testing.T) {
	t.Setenv("TRANSFERS_API_TIMEOUT", "soon")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"find"}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "config:")
	assert.Empty(t, stdout.String())
}

func TestRun_InvalidBaseURLIsLocal(t *testing.T) {
	t.Setenv("TRANSFERS_API_BASE_URL", "not-a-url")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"find"}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "requester:")
}

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicsCmd_Use(t *testing.T) {
	assert.Equal(t, "topics", topicsCmd.Use)
}

func TestTopicsCmd_Short(t *testing.T) {
	assert.Equal(t, "List available runbook topics", topicsCmd.Short)
}

func TestTopicsCmd_RejectsArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"topics", "extra"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestTopicsCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"topics"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Available Kubernetes runbook topics (1 total)")
	assert.Contains(t, buf.String(), "- **Pod OOMKilled** (slug: oomkilled)")
}

func TestTopicsCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"topics", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		topicsJSON = false // Reset flag
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	// Runbook carries no json tags, so keys keep the Go field names.
	assert.Contains(t, buf.String(), "\"Slug\": \"oomkilled\"")
	assert.Contains(t, buf.String(), "\"Title\": \"Pod OOMKilled\"")
}

func TestTopicsCmd_ServiceNotConfigured(t *testing.T) {
	oldService := runbookService
	runbookService = nil
	defer func() {
		runbookService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"topics"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "runbook service not configured")
}

func TestTopicsCmd_ServiceError(t *testing.T) {
	oldService := runbookService
	runbookService = &mockRunbookCLIService{err: errors.New("index unreachable")}
	defer func() {
		runbookService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"topics"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "listing topics")
}

func TestTopicsCmd_HasJSONFlag(t *testing.T) {
	flag := topicsCmd.Flags().Lookup("json")
	require.NotNil(t, flag, "json flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

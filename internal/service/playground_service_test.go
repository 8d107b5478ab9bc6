package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"prompt_school_backend/internal/config"
	"prompt_school_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaygroundRunForwardsSource(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/run", r.URL.Path)
		require.Equal(t, "sekrit", r.Header.Get("X-API-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RunResult{Success: true, Output: "hello\n"})
	}))
	defer srv.Close()

	svc := NewPlaygroundService(config.SandboxConfig{URL: srv.URL, APIKey: "sekrit"})

	result, err := svc.Run(context.Background(), RunRequest{Language: "python", Source: "print('hello')"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "hello\n", result.Output)
	assert.Equal(t, "python", received["language"])
	assert.Equal(t, "print('hello')", received["source"])
}

func TestPlaygroundRunFailedExecutionIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RunResult{Success: false, Error: "SyntaxError: invalid syntax"})
	}))
	defer srv.Close()

	svc := NewPlaygroundService(config.SandboxConfig{URL: srv.URL})

	result, err := svc.Run(context.Background(), RunRequest{Language: "python", Source: "print("})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "SyntaxError")
}

func TestPlaygroundRunSandboxErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewPlaygroundService(config.SandboxConfig{URL: srv.URL})

	_, err := svc.Run(context.Background(), RunRequest{Language: "python", Source: "pass"})
	assert.ErrorIs(t, err, util.ErrSandboxUnavailable)
}

func TestPlaygroundRunSandboxUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := NewPlaygroundService(config.SandboxConfig{URL: srv.URL})

	_, err := svc.Run(context.Background(), RunRequest{Language: "python", Source: "pass"})
	assert.ErrorIs(t, err, util.ErrSandboxUnavailable)
}

package service

import (
	"context"
	"prompt_school_backend/internal/config"
	"prompt_school_backend/internal/util"
	"prompt_school_backend/pkg/logger"
	"prompt_school_backend/pkg/monitoring"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// PlaygroundService forwards playground source to the remote execution
// sandbox. The sandbox is an opaque collaborator: a run that the sandbox
// rejects is a normal result, not an error; only transport failures are
// errors.
type PlaygroundService struct {
	client *resty.Client
	cfg    config.SandboxConfig
}

type RunRequest struct {
	Language string `json:"language" binding:"required"`
	Source   string `json:"source" binding:"required"`
}

type RunResult struct {
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewPlaygroundService(cfg config.SandboxConfig) *PlaygroundService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(timeout).
		SetRetryCount(0)
	if cfg.APIKey != "" {
		client.SetHeader("X-API-Key", cfg.APIKey)
	}

	return &PlaygroundService{client: client, cfg: cfg}
}

// Run submits the source and returns the sandbox's verdict. The context lets
// an abandoned request (navigation away) cancel the call without corrupting
// any state; there is none to corrupt here.
func (s *PlaygroundService) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	var result RunResult

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"language": req.Language,
			"source":   req.Source,
		}).
		SetResult(&result).
		Post("/run")

	if err != nil {
		monitoring.SandboxRunCounter.WithLabelValues("unreachable").Inc()
		logger.Log.Error("sandbox request failed", zap.Error(err))
		return nil, util.ErrSandboxUnavailable
	}
	if resp.IsError() {
		monitoring.SandboxRunCounter.WithLabelValues("error").Inc()
		logger.Log.Error("sandbox returned error status",
			zap.Int("status", resp.StatusCode()), zap.String("body", resp.String()))
		return nil, util.ErrSandboxUnavailable
	}

	if result.Success {
		monitoring.SandboxRunCounter.WithLabelValues("success").Inc()
	} else {
		monitoring.SandboxRunCounter.WithLabelValues("failure").Inc()
	}
	return &result, nil
}

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/utils"
	"github.com/MKhiriev/algo-sync/models"
)

type solvedACAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// solvedACUser is the subset of the user document used here.
type solvedACUser struct {
	Handle string `json:"handle"`
	Tier   int    `json:"tier"`
}

// NewSolvedACAdapter constructs a [JudgeAdapter] for the solved.ac API at
// cfg.SolvedACURL.
func NewSolvedACAdapter(cfg config.Adapter, logger *logger.Logger) JudgeAdapter {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(cfg.SolvedACURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &solvedACAdapter{client: client, logger: logger}
}

func (s *solvedACAdapter) GetProfile(ctx context.Context, handle string) (models.JudgeProfile, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("handle", handle).
		Get("/api/v3/user/show")
	if err != nil {
		return models.JudgeProfile{}, fmt.Errorf("judge profile request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.JudgeProfile{}, fmt.Errorf("%w: %q", ErrJudgeHandleNotFound, handle)
		}
		return models.JudgeProfile{}, err
	}

	var user solvedACUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.JudgeProfile{}, fmt.Errorf("decode judge profile: %w", err)
	}

	if user.Handle == "" {
		user.Handle = handle
	}

	return models.JudgeProfile{Handle: user.Handle, Tier: user.Tier}, nil
}

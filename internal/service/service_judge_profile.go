package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/algo-sync/internal/adapter"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/store"
	"github.com/MKhiriev/algo-sync/models"
)

type judgeProfileService struct {
	profiles store.JudgeProfileRepository
	judge    adapter.JudgeAdapter

	logger *logger.Logger
}

func NewJudgeProfileService(profiles store.JudgeProfileRepository, judge adapter.JudgeAdapter, logger *logger.Logger) JudgeProfileService {
	return &judgeProfileService{profiles: profiles, judge: judge, logger: logger}
}

// LinkHandle implements JudgeProfileService. The handle must exist on the
// judge statistics service; its tier is stored alongside it.
func (s *judgeProfileService) LinkHandle(ctx context.Context, userID int64, handle string) (models.JudgeProfile, error) {
	if userID <= 0 {
		return models.JudgeProfile{}, ErrInvalidUserID
	}

	handle = strings.TrimSpace(handle)
	if handle == "" {
		return models.JudgeProfile{}, ErrEmptyHandle
	}

	profile, err := s.judge.GetProfile(ctx, handle)
	if errors.Is(err, adapter.ErrJudgeHandleNotFound) {
		return models.JudgeProfile{}, fmt.Errorf("%w: %q", ErrJudgeHandleNotFound, handle)
	}
	if err != nil {
		return models.JudgeProfile{}, fmt.Errorf("look up judge handle: %w", err)
	}

	profile.UserID = userID
	if err = s.profiles.SaveJudgeProfile(ctx, profile); err != nil {
		return models.JudgeProfile{}, fmt.Errorf("save judge profile: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Str("handle", profile.Handle).Msg("judge handle linked")
	return profile, nil
}

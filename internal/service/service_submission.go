package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/store"
	"github.com/MKhiriev/algo-sync/models"
)

// submissionService serves submission lists from an in-process cache filled
// on first read and dropped by Invalidate.
//
// Invalidate bumps the user's generation. A read that started under an older
// generation returns its rows but does not cache them.
type submissionService struct {
	submissions store.SubmissionRepository

	mu          sync.RWMutex
	cache       map[int64][]models.Submission
	generations map[int64]uint64

	logger *logger.Logger
}

func NewSubmissionService(submissions store.SubmissionRepository, logger *logger.Logger) SubmissionService {
	return &submissionService{
		submissions: submissions,
		cache:       make(map[int64][]models.Submission),
		generations: make(map[int64]uint64),
		logger:      logger,
	}
}

func (s *submissionService) List(ctx context.Context, userID int64) ([]models.Submission, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	s.mu.RLock()
	cached, ok := s.cache[userID]
	generation := s.generations[userID]
	s.mu.RUnlock()
	if ok {
		return slices.Clone(cached), nil
	}

	list, err := s.submissions.ListSubmissions(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.generations[userID] == generation {
		s.cache[userID] = list
	} else {
		logger.FromContext(ctx).Debug().Int64("user_id", userID).Msg("submission list invalidated during read, not cached")
	}
	s.mu.Unlock()

	return slices.Clone(list), nil
}

func (s *submissionService) Invalidate(userID int64) {
	s.mu.Lock()
	delete(s.cache, userID)
	s.generations[userID]++
	s.mu.Unlock()
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/algo-sync/internal/adapter"
	"github.com/MKhiriev/algo-sync/internal/classifier"
	"github.com/MKhiriev/algo-sync/internal/crypto"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/store"
	"github.com/MKhiriev/algo-sync/internal/utils"
	"github.com/MKhiriev/algo-sync/models"
)

const (
	// DefaultSyncConcurrency bounds per-item work when no limit is configured.
	DefaultSyncConcurrency = 4

	// SyncLockTTL is how long a store-backed sync lock survives a holder
	// that stops renewing it. A live run renews it every SyncLockTTL/3.
	SyncLockTTL = 30 * time.Minute
)

// syncState names the stages a run passes through. They appear in debug logs.
type syncState string

const (
	stateIdle              syncState = "idle"
	stateCredentialsLoaded syncState = "credentials_loaded"
	stateTreeFetched       syncState = "tree_fetched"
	stateAggregated        syncState = "aggregated"
	stateDone              syncState = "done"
	stateFailed            syncState = "failed"
)

// syncService is the concrete implementation of SyncService.
//
// A run loads and decrypts the user's credential, lists the repository tree
// once, classifies every entry and then fetches and upserts accepted entries
// on a bounded errgroup. Per-item outcomes flow through a single channel to
// one aggregating goroutine.
//
// Runs for one user are exclusive. inFlight rejects overlap inside this
// process; locks extends that to every process sharing the database.
type syncService struct {
	credentials  store.CredentialRepository
	submissions  store.SubmissionRepository
	locks        store.SyncLockRepository
	vault        crypto.CredentialVault
	repositories adapter.RepositoryAdapter
	views        SubmissionService

	concurrency int
	inFlight    sync.Map // userID -> struct{}
	lockTTL     time.Duration
	renewEvery  time.Duration

	logger  *logger.Logger
	now     func() time.Time
	ownerID func() string
}

func NewSyncService(
	credentials store.CredentialRepository,
	submissions store.SubmissionRepository,
	locks store.SyncLockRepository,
	vault crypto.CredentialVault,
	repositories adapter.RepositoryAdapter,
	views SubmissionService,
	concurrency int,
	logger *logger.Logger,
) SyncService {
	if concurrency < 1 {
		concurrency = DefaultSyncConcurrency
	}

	return &syncService{
		credentials:  credentials,
		submissions:  submissions,
		locks:        locks,
		vault:        vault,
		repositories: repositories,
		views:        views,
		concurrency:  concurrency,
		lockTTL:      SyncLockTTL,
		renewEvery:   SyncLockTTL / 3,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
		ownerID:      utils.NewUUIDGenerator().Generate,
	}
}

// itemOutcome is what one worker reports to the aggregator.
type itemOutcome struct {
	upserted bool
	failure  *models.FailedItem
}

func (s *syncService) Sync(ctx context.Context, userID int64) (models.SyncResult, error) {
	result := models.SyncResult{StartedAt: s.now()}

	busy := func() (models.SyncResult, error) {
		result.Error = ErrSyncInProgress.Error()
		result.FinishedAt = s.now()
		return result, ErrSyncInProgress
	}

	if _, running := s.inFlight.LoadOrStore(userID, struct{}{}); running {
		return busy()
	}
	defer s.inFlight.Delete(userID)

	log := logger.FromContext(ctx).WithUserID(userID)
	ctx = log.WithContext(ctx)

	fail := func(err error) (models.SyncResult, error) {
		log.Err(err).Str("state", string(stateFailed)).Msg("sync aborted")
		result.Error = err.Error()
		result.FinishedAt = s.now()
		return result, err
	}

	owner := s.ownerID()
	acquired, err := s.locks.TryAcquireSyncLock(ctx, userID, owner, s.lockTTL)
	if err != nil {
		return fail(fmt.Errorf("acquire sync lock: %w", err))
	}
	if !acquired {
		log.Info().Msg("sync already running in another process")
		return busy()
	}
	defer func() {
		if err := s.locks.ReleaseSyncLock(context.WithoutCancel(ctx), userID, owner); err != nil {
			log.Warn().Err(err).Msg("sync lock not released, it will expire")
		}
	}()

	ctx, cancel := context.WithCancelCause(ctx)
	renewed := make(chan struct{})
	go s.keepLock(ctx, cancel, userID, owner, renewed)
	defer func() {
		cancel(nil)
		<-renewed
	}()
	s.trace(log, stateIdle)

	cred, err := s.credentials.GetCredential(ctx, userID)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return fail(ErrNoCredentials)
	}
	if err != nil {
		return fail(fmt.Errorf("load credential: %w", err))
	}

	token, err := s.vault.Decrypt(cred.EncryptedToken)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrCredentialDecryptFailed, err))
	}
	s.trace(log, stateCredentialsLoaded)

	items, err := s.repositories.ListTree(ctx, cred.Repository, token)
	if err != nil {
		return fail(fmt.Errorf("%w: %s: %w", ErrTreeFetchFailed, cred.Repository, err))
	}
	log.Debug().
		Str("state", string(stateTreeFetched)).
		Str("repository", cred.Repository.String()).
		Int("items", len(items)).
		Msg("sync state")

	count, failed, err := s.ingest(ctx, userID, cred.Repository, token, items)
	result.Count = count
	result.Failed = failed
	s.views.Invalidate(userID)
	log.Debug().
		Str("state", string(stateAggregated)).
		Int("count", count).
		Int("failed", len(failed)).
		Msg("sync state")
	if err != nil {
		return fail(err)
	}

	result.Success = true
	result.FinishedAt = s.now()
	s.trace(log, stateDone)

	log.Info().Int("count", count).Int("failed", len(failed)).Msg("sync finished")
	return result, nil
}

// acceptedItem is a tree entry that classified as a submission.
type acceptedItem struct {
	item models.TreeItem
	c    models.Classification
}

// submissionKey is the stored identity of a submission within one user.
type submissionKey struct {
	problemID string
	platform  models.Platform
	language  string
}

// accept classifies items and keeps one entry per submission key. When
// several entries share a key the last one in tree order wins, so an
// unchanged tree always stores the same content.
func accept(items []models.TreeItem) (accepted []acceptedItem, rejected, superseded int) {
	index := make(map[submissionKey]int)
	for _, item := range items {
		c, ok := classifier.ClassifyPath(item.Path, item.Kind)
		if !ok {
			rejected++
			continue
		}

		key := submissionKey{problemID: c.ProblemID, platform: c.Platform, language: c.Language}
		if i, seen := index[key]; seen {
			accepted[i] = acceptedItem{item: item, c: c}
			superseded++
			continue
		}
		index[key] = len(accepted)
		accepted = append(accepted, acceptedItem{item: item, c: c})
	}

	return accepted, rejected, superseded
}

// ingest processes the accepted items on a bounded pool. It returns the
// number of upserted submissions and the per-item failures. Cancellation of
// ctx stops new work; the returned error then wraps the context error.
func (s *syncService) ingest(
	ctx context.Context,
	userID int64,
	repo models.RepositoryRef,
	token string,
	items []models.TreeItem,
) (int, []models.FailedItem, error) {
	outcomes := make(chan itemOutcome)
	aggregated := make(chan struct{})

	var (
		count  int
		failed []models.FailedItem
	)
	go func() {
		defer close(aggregated)
		for o := range outcomes {
			if o.upserted {
				count++
			}
			if o.failure != nil {
				failed = append(failed, *o.failure)
			}
		}
	}()

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	accepted, rejected, superseded := accept(items)
	logger.FromContext(ctx).Debug().
		Int("accepted", len(accepted)).
		Int("rejected", rejected).
		Int("superseded", superseded).
		Msg("classification finished")

	for _, a := range accepted {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if o, ok := s.ingestItem(ctx, userID, repo, token, a.item, a.c); ok {
				outcomes <- o
			}
			return nil
		})
	}

	_ = g.Wait()
	close(outcomes)
	<-aggregated

	if ctx.Err() != nil {
		return count, failed, fmt.Errorf("sync interrupted: %w", context.Cause(ctx))
	}

	return count, failed, nil
}

// ingestItem fetches and upserts one classified entry. ok is false when the
// run was cancelled before the content arrived and nothing was written.
func (s *syncService) ingestItem(
	ctx context.Context,
	userID int64,
	repo models.RepositoryRef,
	token string,
	item models.TreeItem,
	c models.Classification,
) (itemOutcome, bool) {
	if ctx.Err() != nil {
		return itemOutcome{}, false
	}

	var outcome itemOutcome

	code, err := s.repositories.FetchContent(ctx, repo, item, token)
	if err != nil {
		if ctx.Err() != nil {
			return itemOutcome{}, false
		}
		logger.FromContext(ctx).Warn().Err(err).Str("path", item.Path).Msg("content unavailable, storing placeholder")
		code = models.PlaceholderCode
		outcome.failure = &models.FailedItem{Path: item.Path, Reason: err.Error(), Stored: true}
	}

	submission := models.NewSubmission(userID, c, code, s.repositories.SourceURL(repo, item.Path))

	// Content is in hand, so the write finishes even if the run is cancelled.
	if err = s.submissions.UpsertSubmission(context.WithoutCancel(ctx), submission); err != nil {
		outcome.failure = &models.FailedItem{Path: item.Path, Reason: fmt.Sprintf("store: %v", err)}
		return outcome, true
	}

	outcome.upserted = true
	return outcome, true
}

// keepLock renews the store lock until ctx ends. When the lock turns out to
// be held by someone else the run is cancelled with [ErrSyncLockLost]. A
// failed renewal is retried on the next tick; the lock stays valid until
// lockTTL after the last successful one.
func (s *syncService) keepLock(ctx context.Context, cancel context.CancelCauseFunc, userID int64, owner string, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.renewEvery)
	defer ticker.Stop()

	log := logger.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		held, err := s.locks.RenewSyncLock(ctx, userID, owner, s.lockTTL)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn().Err(err).Msg("sync lock not renewed")
			continue
		}
		if !held {
			log.Error().Msg("sync lock taken by another run, stopping")
			cancel(ErrSyncLockLost)
			return
		}
	}
}

func (s *syncService) trace(log *logger.Logger, state syncState) {
	log.Debug().Str("state", string(state)).Msg("sync state")
}

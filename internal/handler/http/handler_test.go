package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/mock"
	"github.com/MKhiriev/algo-sync/internal/service"
	"github.com/MKhiriev/algo-sync/internal/utils"
	"github.com/MKhiriev/algo-sync/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "algo-sync-test"
	testUserID  = int64(42)
)

type handlerMocks struct {
	sync        *mock.MockSyncService
	settings    *mock.MockSettingsService
	judge       *mock.MockJudgeProfileService
	submissions *mock.MockSubmissionService
	appInfo     *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		sync:        mock.NewMockSyncService(ctrl),
		settings:    mock.NewMockSettingsService(ctrl),
		judge:       mock.NewMockJudgeProfileService(ctrl),
		submissions: mock.NewMockSubmissionService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		SyncService:         m.sync,
		SettingsService:     m.settings,
		JudgeProfileService: m.judge,
		SubmissionService:   m.submissions,
		AppInfoService:      m.appInfo,
	}

	cfg := config.StructuredConfig{
		App:    config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer},
		Server: config.Server{RequestTimeout: time.Minute},
	}

	return NewHandler(services, cfg, logger.Nop()).Init(), m
}

func bearer(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, userID, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func do(t *testing.T, router http.Handler, method, target, body, auth string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── public routes ────────────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := do(t, router, http.MethodGet, "/api/version", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
}

func TestTraceIDHeader(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v").Times(2)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))

	rr = do(t, router, http.MethodGet, "/api/version", "", "")
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := do(t, router, http.MethodDelete, "/api/version", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, router, http.MethodGet, "/api/sync", "", bearer(t, testUserID))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_Rejects(t *testing.T) {
	otherKey, err := utils.GenerateJWTToken(testIssuer, testUserID, time.Hour, "other-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone", testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name string
		auth string
	}{
		{name: "no header", auth: ""},
		{name: "basic scheme", auth: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", auth: "Bearer "},
		{name: "garbage token", auth: "Bearer not-a-jwt"},
		{name: "wrong key", auth: "Bearer " + otherKey.SignedString},
		{name: "wrong issuer", auth: "Bearer " + otherIssuer.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)
			rr := do(t, router, http.MethodPost, "/api/sync", "", tt.auth)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// ── settings ─────────────────────────────────────────────────────────────────

func TestSaveRepositorySettings(t *testing.T) {
	router, m := newTestRouter(t)
	m.settings.EXPECT().SaveRepository(gomock.Any(), testUserID, "ghp_x", "alice/algorithms").
		Return(models.RepositoryRef{Owner: "alice", Name: "algorithms"}, nil)

	rr := do(t, router, http.MethodPut, "/api/settings/repository",
		`{"token":"ghp_x","repository":"alice/algorithms"}`, bearer(t, testUserID))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"repository":"alice/algorithms"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "ghp_x")
}

func TestSaveRepositorySettings_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "invalid json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "invalid repository", body: `{"token":"t","repository":"x"}`, serviceErr: fmt.Errorf("%w: x", service.ErrInvalidRepository), wantStatus: http.StatusBadRequest},
		{name: "empty token", body: `{"token":"","repository":"a/b"}`, serviceErr: service.ErrEmptyToken, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			if tt.serviceErr != nil {
				m.settings.EXPECT().SaveRepository(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
					Return(models.RepositoryRef{}, tt.serviceErr)
			}

			rr := do(t, router, http.MethodPut, "/api/settings/repository", tt.body, bearer(t, testUserID))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestSaveJudgeSettings(t *testing.T) {
	router, m := newTestRouter(t)
	m.judge.EXPECT().LinkHandle(gomock.Any(), testUserID, "koosaga").
		Return(models.JudgeProfile{UserID: testUserID, Handle: "koosaga", Tier: 30}, nil)

	rr := do(t, router, http.MethodPut, "/api/settings/judge", `{"handle":"koosaga"}`, bearer(t, testUserID))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.JudgeProfile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "koosaga", got.Handle)
	assert.Equal(t, 30, got.Tier)
}

func TestSaveJudgeSettings_UnknownHandle(t *testing.T) {
	router, m := newTestRouter(t)
	m.judge.EXPECT().LinkHandle(gomock.Any(), testUserID, "nobody").
		Return(models.JudgeProfile{}, fmt.Errorf("%w: %q", service.ErrJudgeHandleNotFound, "nobody"))

	rr := do(t, router, http.MethodPut, "/api/settings/judge", `{"handle":"nobody"}`, bearer(t, testUserID))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── sync ─────────────────────────────────────────────────────────────────────

func TestSync_Success(t *testing.T) {
	router, m := newTestRouter(t)
	m.sync.EXPECT().Sync(gomock.Any(), testUserID).Return(models.SyncResult{
		Success: true,
		Count:   12,
		Failed:  []models.FailedItem{{Path: "백준/Bronze/1000. A+B/a.py", Reason: "content unavailable", Stored: true}},
	}, nil)

	rr := do(t, router, http.MethodPost, "/api/sync", "", bearer(t, testUserID))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.SyncResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, 12, got.Count)
	require.Len(t, got.Failed, 1)
	assert.True(t, got.Failed[0].Stored)
}

func TestSync_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "no credentials", err: service.ErrNoCredentials, wantStatus: http.StatusPreconditionFailed},
		{name: "in progress", err: service.ErrSyncInProgress, wantStatus: http.StatusConflict},
		{name: "tree failure", err: fmt.Errorf("%w: boom", service.ErrTreeFetchFailed), wantStatus: http.StatusBadGateway},
		{name: "decrypt failure", err: fmt.Errorf("%w: bad key", service.ErrCredentialDecryptFailed), wantStatus: http.StatusPreconditionFailed},
		{name: "unexpected", err: fmt.Errorf("load credential: connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.sync.EXPECT().Sync(gomock.Any(), testUserID).Return(models.SyncResult{Count: 0}, tt.err)

			rr := do(t, router, http.MethodPost, "/api/sync", "", bearer(t, testUserID))

			require.Equal(t, tt.wantStatus, rr.Code)
			var got models.SyncResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.False(t, got.Success)
			assert.NotEmpty(t, got.Error)
		})
	}
}

func TestSync_InternalErrorIsNotLeaked(t *testing.T) {
	router, m := newTestRouter(t)
	m.sync.EXPECT().Sync(gomock.Any(), testUserID).
		Return(models.SyncResult{}, fmt.Errorf("dial tcp 10.0.0.5:5432: connection refused"))

	rr := do(t, router, http.MethodPost, "/api/sync", "", bearer(t, testUserID))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "10.0.0.5")
}

func TestSync_DecryptFailureAsksToRelink(t *testing.T) {
	router, m := newTestRouter(t)
	m.sync.EXPECT().Sync(gomock.Any(), testUserID).
		Return(models.SyncResult{}, fmt.Errorf("%w: %w", service.ErrCredentialDecryptFailed, errors.New("cipher: message authentication failed")))

	rr := do(t, router, http.MethodPost, "/api/sync", "", bearer(t, testUserID))

	assert.Equal(t, http.StatusPreconditionFailed, rr.Code)
	assert.Contains(t, rr.Body.String(), "link the repository again")
	assert.NotContains(t, rr.Body.String(), "cipher")
}

// ── submissions ──────────────────────────────────────────────────────────────

func TestListSubmissions(t *testing.T) {
	router, m := newTestRouter(t)
	m.submissions.EXPECT().List(gomock.Any(), testUserID).Return([]models.Submission{
		{ProblemID: "1000", Platform: models.PlatformBaekjoon, Language: "py"},
		{ProblemID: "42586", Platform: models.PlatformProgrammers, Language: "js"},
	}, nil)

	rr := do(t, router, http.MethodGet, "/api/submissions", "", bearer(t, testUserID))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.SubmissionsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Length)
	assert.Equal(t, "42586", got.Submissions[1].ProblemID)
}

func TestListSubmissions_Empty(t *testing.T) {
	router, m := newTestRouter(t)
	m.submissions.EXPECT().List(gomock.Any(), testUserID).Return([]models.Submission{}, nil)

	rr := do(t, router, http.MethodGet, "/api/submissions", "", bearer(t, testUserID))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"submissions":[],"length":0}`, rr.Body.String())
}

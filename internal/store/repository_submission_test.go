package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/models"
)

func testSubmission(userID int64, problemID, title string) models.Submission {
	return models.NewSubmission(userID, models.Classification{
		Platform:  models.PlatformBaekjoon,
		ProblemID: problemID,
		Title:     title,
		Level:     "Bronze",
		Language:  "py",
	}, "print(1)", "https://github.com/alice/algorithms/blob/HEAD/x.py")
}

func upsertArgs(s models.Submission) []driver.Value {
	return []driver.Value{
		sqlmock.AnyArg(), s.UserID, s.ProblemID, string(s.Platform), s.Language,
		s.Title, s.Level, s.Code, s.GithubURL, models.SubmissionStatusSuccess,
		sqlmock.AnyArg(), sqlmock.AnyArg(),
	}
}

func TestUpsertSubmission_Postgres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db, logger.Nop())
	s := testSubmission(7, "1000", "A+B")

	mock.ExpectExec(`INSERT INTO submissions .* VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9,\$10,\$11,\$12\) ON CONFLICT \(user_id, problem_id, platform, language\) DO UPDATE SET`).
		WithArgs(upsertArgs(s)...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertSubmission(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSubmission_RetriesTransientError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db, logger.Nop())
	s := testSubmission(7, "1000", "A+B")

	mock.ExpectExec("INSERT INTO submissions").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectExec("INSERT INTO submissions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertSubmission(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSubmission_NonRetryableSurfacesImmediately(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO submissions").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation})

	err := repo.UpsertSubmission(context.Background(), testSubmission(7, "1000", "A+B"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSubmission_GivesUpAfterMaxRetries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db, logger.Nop())

	for range retryMaxRetries + 1 {
		mock.ExpectExec("INSERT INTO submissions").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	}

	err := repo.UpsertSubmission(context.Background(), testSubmission(7, "1000", "A+B"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSubmissions_Postgres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db, logger.Nop())

	rows := sqlmock.NewRows(submissionColumns).
		AddRow("id-1", int64(7), "1000", "BAEKJOON", "py", "A+B", "Bronze", "code", "url", "SUCCESS", fixedTime, fixedTime)

	mock.ExpectQuery(`SELECT .* FROM submissions WHERE user_id = \$1 ORDER BY platform, problem_id, language`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	got, err := repo.ListSubmissions(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.PlatformBaekjoon, got[0].Platform)
	assert.Equal(t, "A+B", got[0].Title)
}

func TestListSubmissions_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListSubmissions(context.Background(), 7)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestUpsertSubmission_SQLiteIdempotent(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSubmissionRepository(db, logger.Nop())
	ctx := context.Background()

	s := testSubmission(1, "1000", "A+B")
	for range 3 {
		require.NoError(t, repo.UpsertSubmission(ctx, s))
	}

	got, err := repo.ListSubmissions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A+B", got[0].Title)
	assert.Equal(t, models.SubmissionStatusSuccess, got[0].Status)
	assert.NotEmpty(t, got[0].ID)
}

func TestUpsertSubmission_SQLiteLatestValuesWin(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSubmissionRepository(db, logger.Nop())
	ctx := context.Background()

	first := testSubmission(1, "1000", "A+B")
	require.NoError(t, repo.UpsertSubmission(ctx, first))

	before, err := repo.ListSubmissions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, before, 1)

	second := first
	second.Title = "A plus B"
	second.Level = "Silver"
	second.Code = "print(2)"
	second.GithubURL = "https://github.com/alice/algorithms/blob/HEAD/y.py"
	require.NoError(t, repo.UpsertSubmission(ctx, second))

	after, err := repo.ListSubmissions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, "A plus B", after[0].Title)
	assert.Equal(t, "Silver", after[0].Level)
	assert.Equal(t, "print(2)", after[0].Code)
	assert.Equal(t, second.GithubURL, after[0].GithubURL)
}

func TestUpsertSubmission_SQLiteCompositeKey(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSubmissionRepository(db, logger.Nop())
	ctx := context.Background()

	base := testSubmission(1, "1000", "A+B")

	otherLanguage := base
	otherLanguage.Language = "cpp"

	otherPlatform := base
	otherPlatform.Platform = models.PlatformProgrammers

	otherUser := base
	otherUser.UserID = 2

	for _, s := range []models.Submission{base, otherLanguage, otherPlatform, otherUser} {
		require.NoError(t, repo.UpsertSubmission(ctx, s))
	}

	mine, err := repo.ListSubmissions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	theirs, err := repo.ListSubmissions(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)

	none, err := repo.ListSubmissions(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

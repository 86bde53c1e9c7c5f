package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/algo-sync/models"
)

const (
	tableCredentials   = "repository_credentials"
	tableSubmissions   = "submissions"
	tableJudgeProfiles = "judge_profiles"
	tableSyncLocks     = "sync_locks"
)

var submissionColumns = []string{
	"id", "user_id", "problem_id", "platform", "language",
	"title", "level", "code", "github_url", "status",
	"created_at", "updated_at",
}

const upsertSubmissionSuffix = `ON CONFLICT (user_id, problem_id, platform, language) DO UPDATE SET
		title = EXCLUDED.title,
		level = EXCLUDED.level,
		code = EXCLUDED.code,
		github_url = EXCLUDED.github_url,
		updated_at = EXCLUDED.updated_at`

const upsertCredentialSuffix = `ON CONFLICT (user_id) DO UPDATE SET
		encrypted_token = EXCLUDED.encrypted_token,
		repo_owner = EXCLUDED.repo_owner,
		repo_name = EXCLUDED.repo_name,
		updated_at = EXCLUDED.updated_at`

const upsertJudgeProfileSuffix = `ON CONFLICT (user_id) DO UPDATE SET
		handle = EXCLUDED.handle,
		tier = EXCLUDED.tier,
		updated_at = EXCLUDED.updated_at`

// A held lock is only overwritten once its expiry has passed.
const acquireSyncLockSuffix = `ON CONFLICT (user_id) DO UPDATE SET
		owner = EXCLUDED.owner,
		expires_at = EXCLUDED.expires_at
		WHERE sync_locks.expires_at < ?`

// buildUpsertSubmissionQuery builds the insert-or-update of one submission.
// The id and created_at values only take effect on insert.
func buildUpsertSubmissionQuery(b sq.StatementBuilderType, s models.Submission) (string, []any, error) {
	return b.Insert(tableSubmissions).
		Columns(submissionColumns...).
		Values(
			s.ID, s.UserID, s.ProblemID, string(s.Platform), s.Language,
			s.Title, s.Level, s.Code, s.GithubURL, s.Status,
			s.CreatedAt, s.UpdatedAt,
		).
		Suffix(upsertSubmissionSuffix).
		ToSql()
}

func buildListSubmissionsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(submissionColumns...).
		From(tableSubmissions).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("platform", "problem_id", "language").
		ToSql()
}

func buildSaveCredentialQuery(b sq.StatementBuilderType, c models.RepositoryCredential) (string, []any, error) {
	return b.Insert(tableCredentials).
		Columns("user_id", "encrypted_token", "repo_owner", "repo_name", "updated_at").
		Values(c.UserID, c.EncryptedToken, c.Repository.Owner, c.Repository.Name, c.UpdatedAt).
		Suffix(upsertCredentialSuffix).
		ToSql()
}

func buildGetCredentialQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("user_id", "encrypted_token", "repo_owner", "repo_name", "updated_at").
		From(tableCredentials).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildListLinkedUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("user_id").
		From(tableCredentials).
		OrderBy("user_id").
		ToSql()
}

func buildSaveJudgeProfileQuery(b sq.StatementBuilderType, p models.JudgeProfile) (string, []any, error) {
	return b.Insert(tableJudgeProfiles).
		Columns("user_id", "handle", "tier", "updated_at").
		Values(p.UserID, p.Handle, p.Tier, p.UpdatedAt).
		Suffix(upsertJudgeProfileSuffix).
		ToSql()
}

func buildGetJudgeProfileQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("user_id", "handle", "tier", "updated_at").
		From(tableJudgeProfiles).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildAcquireSyncLockQuery claims the user's lock row for owner. The
// statement affects no rows when a live lock is held by someone else.
func buildAcquireSyncLockQuery(b sq.StatementBuilderType, userID int64, owner string, now, expires int64) (string, []any, error) {
	return b.Insert(tableSyncLocks).
		Columns("user_id", "owner", "expires_at").
		Values(userID, owner, expires).
		Suffix(acquireSyncLockSuffix, now).
		ToSql()
}

// buildRenewSyncLockQuery extends the expiry of a lock owner still holds.
func buildRenewSyncLockQuery(b sq.StatementBuilderType, userID int64, owner string, expires int64) (string, []any, error) {
	return b.Update(tableSyncLocks).
		Set("expires_at", expires).
		Where(sq.Eq{"user_id": userID, "owner": owner}).
		ToSql()
}

func buildReleaseSyncLockQuery(b sq.StatementBuilderType, userID int64, owner string) (string, []any, error) {
	return b.Delete(tableSyncLocks).
		Where(sq.Eq{"user_id": userID, "owner": owner}).
		ToSql()
}

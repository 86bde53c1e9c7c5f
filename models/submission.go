package models

import "time"

// PlaceholderCode is stored as the submission code when the file content
// could not be retrieved.
const PlaceholderCode = "GitHub 소스코드 참조"

// SubmissionStatusSuccess is the status of every ingested submission.
const SubmissionStatusSuccess = "SUCCESS"

// Submission is a persisted solution record. It is unique per
// (UserID, ProblemID, Platform, Language).
type Submission struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"-"`
	ProblemID string    `json:"problem_id"`
	Platform  Platform  `json:"platform"`
	Language  string    `json:"language"`
	Title     string    `json:"title"`
	Level     string    `json:"level"`
	Code      string    `json:"code"`
	GithubURL string    `json:"github_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSubmission builds the record written for one classified file.
func NewSubmission(userID int64, c Classification, code, sourceURL string) Submission {
	return Submission{
		UserID:    userID,
		ProblemID: c.ProblemID,
		Platform:  c.Platform,
		Language:  c.Language,
		Title:     c.Title,
		Level:     c.Level,
		Code:      code,
		GithubURL: sourceURL,
		Status:    SubmissionStatusSuccess,
	}
}

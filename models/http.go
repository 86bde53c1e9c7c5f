package models

// RepositorySettingsRequest is the body of a repository link request.
type RepositorySettingsRequest struct {
	// Token is the repository access token in plaintext. It is encrypted
	// before it leaves the service layer.
	Token string `json:"token"`

	// Repository is the `owner/name` of the solutions repository.
	Repository string `json:"repository"`
}

// JudgeSettingsRequest is the body of a judge handle link request.
type JudgeSettingsRequest struct {
	Handle string `json:"handle"`
}

// SubmissionsResponse wraps a user's submission list.
type SubmissionsResponse struct {
	Submissions []Submission `json:"submissions"`
	Length      int          `json:"length"`
}

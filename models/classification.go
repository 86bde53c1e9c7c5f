package models

// Platform is the judge site a solution was written for.
type Platform string

const (
	PlatformBaekjoon    Platform = "BAEKJOON"
	PlatformProgrammers Platform = "PROGRAMMERS"
)

// LevelUnknown is the level assigned when no tier or level marker is found.
const LevelUnknown = "Unknown"

// LanguageUnknown is the language assigned to files without an extension.
const LanguageUnknown = "unknown"

// Classification is the structured description of a submission file derived
// from its path alone.
type Classification struct {
	Platform  Platform `json:"platform"`
	ProblemID string   `json:"problem_id"`
	Title     string   `json:"title"`
	Level     string   `json:"level"`
	Language  string   `json:"language"`
}

package store

// ErrorClassification tells withRetry whether a failed statement may succeed
// when run again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// ErrorClassificator decides whether a driver error is transient. Each
// driver brings its own implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

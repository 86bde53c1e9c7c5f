package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

const (
	userAgent  = "algo-sync"
	retryCount      = 2
)

// HTTPClient wraps a resty client preconfigured for outbound API calls.
// Requests failing with a transport error, 429 or a 5xx status are retried.
type HTTPClient struct {
	*resty.Client
}

func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(retryCount).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})

	return &HTTPClient{Client: client}
}

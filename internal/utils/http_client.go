package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the meal-log client in outbound requests.
const UserAgent = "go-meal-log"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that asks for JSON and
// identifies itself with [UserAgent]. Base URL and timeout are left to the
// caller.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}

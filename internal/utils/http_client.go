package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. It embeds *resty.Client to expose all of
// its methods directly while leaving room for client-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own configuration,
// cookie jar, and connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

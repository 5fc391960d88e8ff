package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the full resty API stays available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client for baseURL. A bare
// "host:port" gets an http:// scheme. A zero timeout leaves resty's default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(normalizeBaseURL(baseURL)).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

func normalizeBaseURL(address string) string {
	address = strings.TrimRight(address, "/")
	if address == "" || strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return address
	}
	return "http://" + address
}

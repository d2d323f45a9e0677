package gateway

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OriginClient forwards requests to the origin pipeline that would have
// served them if the gateway did not intercept.
type OriginClient struct {
	baseURL string
	client  *http.Client
}

// NewOriginClient builds an OriginClient with a bounded request timeout.
func NewOriginClient(baseURL string, timeout time.Duration) *OriginClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &OriginClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch replays the inbound request against the origin. The caller owns the
// response body.
func (o *OriginClient) Fetch(r *http.Request) (*http.Response, error) {
	target := o.baseURL + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	outReq, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		return nil, fmt.Errorf("build origin request: %w", err)
	}
	copyHeaders(outReq.Header, r.Header)

	resp, err := o.client.Do(outReq)
	if err != nil {
		return nil, fmt.Errorf("origin fetch: %w", err)
	}
	return resp, nil
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}

package pinger

import (
	"context"
	"net/http"
	"time"
)

type Prober interface {
	Probe(ctx context.Context, ip string) bool
}

// HTTPProber treats any HTTP answer from the camera as alive.
type HTTPProber struct {
	Client  *http.Client
	Timeout time.Duration
	Scheme  string
}

func NewHTTPProber(timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		Client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		Timeout: timeout,
		Scheme:  "http",
	}
}

func (p *HTTPProber) Probe(ctx context.Context, ip string) bool {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.Scheme+"://"+ip, nil)
	if err != nil {
		return false
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}

type ProberFunc func(ctx context.Context, ip string) bool

func (f ProberFunc) Probe(ctx context.Context, ip string) bool {
	return f(ctx, ip)
}

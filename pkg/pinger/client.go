package pinger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"campuscctv.xyz/inventory-service/pkg/cctv"
	"campuscctv.xyz/inventory-service/pkg/common"
)

// ErrUnavailable wraps calls rejected while the report breaker is open.
var ErrUnavailable = errors.New("inventory service unavailable")

type Device struct {
	Token        string
	ID           string
	UniqueNumber string
}

type ClientConfig struct {
	BaseURL string
	Device  Device
	Timeout time.Duration
}

type ipsResponse struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
}

type statusResponse struct {
	Message string `json:"message"`
	*cctv.BulkStatusReport
}

type Client struct {
	HTTP *resty.Client
	cb   *gobreaker.CircuitBreaker[*cctv.BulkStatusReport]
}

func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	r := resty.New()
	r.SetBaseURL(cfg.BaseURL)
	r.SetTimeout(timeout)
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")
	r.SetHeader(common.HeaderDeviceToken, cfg.Device.Token)
	r.SetHeader(common.HeaderDeviceID, cfg.Device.ID)
	r.SetHeader(common.HeaderDeviceUniqueNumber, cfg.Device.UniqueNumber)

	logger := common.GetLoggerWith(common.LoggerNamePinger)
	cb := gobreaker.NewCircuitBreaker[*cctv.BulkStatusReport](gobreaker.Settings{
		Name:        "inventory-report",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{HTTP: r, cb: cb}
}

// FetchIPs returns the camera IPs the inventory service wants probed.
func (c *Client) FetchIPs(ctx context.Context) ([]string, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetResult(&ipsResponse{}).
		Get("/api/v1/public/cameras-ips")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch ips failed: %d %s", resp.StatusCode(), resp.String())
	}

	result, ok := resp.Result().(*ipsResponse)
	if !ok {
		return nil, errors.New("failed to parse ip list response")
	}
	return result.Data, nil
}

// ReportStatus submits one batch of probe results. A total-failure batch
// still returns its report; only transport and 4xx/5xx answers are errors.
func (c *Client) ReportStatus(ctx context.Context, updates []cctv.StatusInput) (*cctv.BulkStatusReport, error) {
	report, err := c.cb.Execute(func() (*cctv.BulkStatusReport, error) {
		resp, err := c.HTTP.R().
			SetContext(ctx).
			SetBody(updates).
			SetResult(&statusResponse{}).
			Patch("/api/v1/public/cameras")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("report status failed: %d %s", resp.StatusCode(), resp.String())
		}

		result, ok := resp.Result().(*statusResponse)
		if !ok || result.BulkStatusReport == nil {
			return nil, errors.New("failed to parse status report")
		}
		return result.BulkStatusReport, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return report, err
}

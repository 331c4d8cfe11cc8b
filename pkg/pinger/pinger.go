package pinger

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"campuscctv.xyz/inventory-service/pkg/cctv"
	"campuscctv.xyz/inventory-service/pkg/common"
)

type Reporter interface {
	FetchIPs(ctx context.Context) ([]string, error)
	ReportStatus(ctx context.Context, updates []cctv.StatusInput) (*cctv.BulkStatusReport, error)
}

type Options struct {
	Interval    time.Duration
	Concurrency int
}

type Pinger struct {
	Reporter Reporter
	Prober   Prober
	Options  Options
}

// CycleResult totals one fetch-probe-report round.
type CycleResult struct {
	Probed   int
	Alive    int
	Updated  int
	NotFound int
	Failed   int
}

func New(reporter Reporter, prober Prober, opts Options) *Pinger {
	if opts.Interval <= 0 {
		opts.Interval = 3 * time.Second
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 16
	}
	return &Pinger{Reporter: reporter, Prober: prober, Options: opts}
}

func (p *Pinger) probeAll(ctx context.Context, ips []string) []cctv.StatusInput {
	updates := make([]cctv.StatusInput, len(ips))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Options.Concurrency)
	for i, ip := range ips {
		g.Go(func() error {
			alive := p.Prober.Probe(gctx, ip)
			updates[i] = cctv.StatusInput{IP: ip, Status: &alive}
			return nil
		})
	}
	_ = g.Wait()

	return updates
}

func chunks[T any](items []T, size int) [][]T {
	var out [][]T
	for size < len(items) {
		items, out = items[size:], append(out, items[:size:size])
	}
	return append(out, items)
}

// RunOnce fetches the IP list, probes every address and reports the results
// in batches no larger than the service accepts.
func (p *Pinger) RunOnce(ctx context.Context) (CycleResult, error) {
	logger := common.GetLoggerWith(common.LoggerNamePinger)

	ips, err := p.Reporter.FetchIPs(ctx)
	if err != nil {
		return CycleResult{}, err
	}
	ips = common.Distinct(ips)
	if len(ips) == 0 {
		logger.Warn("No camera IPs to probe")
		return CycleResult{}, nil
	}

	updates := p.probeAll(ctx, ips)
	result := CycleResult{Probed: len(updates)}
	for _, u := range updates {
		if *u.Status {
			result.Alive++
		}
	}

	for _, batch := range chunks(updates, cctv.MaxBatchSize) {
		report, err := p.Reporter.ReportStatus(ctx, batch)
		if err != nil {
			logger.Error("Failed to report statuses", zap.Int("batch_size", len(batch)), zap.Error(err))
			result.Failed += len(batch)
			continue
		}
		result.Updated += report.Summary.Updated
		result.NotFound += report.Summary.NotFound
		result.Failed += report.Summary.Errors
	}

	logger.Info("Probe cycle complete",
		zap.Int("probed", result.Probed),
		zap.Int("alive", result.Alive),
		zap.Int("updated", result.Updated),
		zap.Int("not_found", result.NotFound),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// Run repeats RunOnce every interval until ctx is done.
func (p *Pinger) Run(ctx context.Context) error {
	logger := common.GetLoggerWith(common.LoggerNamePinger)

	ticker := time.NewTicker(p.Options.Interval)
	defer ticker.Stop()

	for {
		if _, err := p.RunOnce(ctx); err != nil {
			logger.Error("Probe cycle failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

package metrics

import (
	"context"
	"sync"
	"time"

	pkglog "github.com/atulub35/outsider-client-go/pkg/log"
)

const DefaultPollInterval = 2 * time.Second

type PollerOption func(*Poller)

func WithPollInterval(interval time.Duration) PollerOption {
	return func(p *Poller) {
		p.interval = interval
	}
}

// Poller keeps the metrics readout current while its owning view is
// active: an immediate fetch on Start, then one per interval, until
// Stop. Fetch failures are logged and polling continues.
type Poller struct {
	gateway  Gateway
	logger   pkglog.Logger
	interval time.Duration

	mu          sync.Mutex
	latest      Snapshot
	subscribers []func(Snapshot)
	started     bool

	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
}

func NewPoller(gateway Gateway, logger pkglog.Logger, opts ...PollerOption) *Poller {
	poller := &Poller{
		gateway:  gateway,
		logger:   logger,
		interval: DefaultPollInterval,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(poller)
	}

	return poller
}

func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	go p.run(ctx)
}

// Stop tears the poller down deterministically: once it returns, no
// further fetch completes nor subscriber fires.
func (p *Poller) Stop() {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if !started {
		return
	}

	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
	<-p.doneChan
}

func (p *Poller) Latest() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}

func (p *Poller) Subscribe(fn func(Snapshot)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, fn)
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.doneChan)

	p.fetch(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetch(ctx)
		}
	}
}

func (p *Poller) fetch(ctx context.Context) {
	snapshot, err := p.gateway.Fetch(ctx)
	if err != nil {
		p.logger.WithError(err).Warn(ctx, "failed to fetch metrics")
		return
	}

	p.mu.Lock()
	p.latest = snapshot
	subscribers := make([]func(Snapshot), len(p.subscribers))
	copy(subscribers, p.subscribers)
	p.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

package tasks

import (
	"sync"
	"time"

	"github.com/johndn/portfolio/internal/logging"
)

// Reloader is anything that can refresh itself from its backing source
type Reloader interface {
	Reload() error
}

// ContentReload periodically re-reads the content catalog so edits to the
// content file go live without a restart
type ContentReload struct {
	store    Reloader
	interval time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewContentReload creates a reload task. An interval <= 0 disables it.
func NewContentReload(store Reloader, interval time.Duration) *ContentReload {
	return &ContentReload{
		store:    store,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins the reload task in the background
func (cr *ContentReload) Start() {
	if cr.interval <= 0 {
		logging.GetGlobalLogger().Debug("ContentReload: interval not set, content is loaded once")
		return
	}
	cr.wg.Add(1)
	go cr.runPeriodically()
}

// Stop ends the task and waits for an in-flight reload to finish
func (cr *ContentReload) Stop() {
	cr.once.Do(func() { close(cr.done) })
	cr.wg.Wait()
}

func (cr *ContentReload) runPeriodically() {
	defer cr.wg.Done()
	logger := logging.GetGlobalLogger()

	logger.Info("Starting content reload task (every %s)", cr.interval)

	ticker := time.NewTicker(cr.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := cr.store.Reload(); err != nil {
				logger.Error("Content reload failed, keeping previous catalog: %v", err)
			}
		case <-cr.done:
			logger.Info("Content reload task stopped")
			return
		}
	}
}

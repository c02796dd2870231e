package engine

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ftahirops/ttypanel/collector"
	"github.com/ftahirops/ttypanel/config"
	"github.com/ftahirops/ttypanel/model"
	"github.com/ftahirops/ttypanel/ui"
)

// Loop owns the sink lifecycle and the refresh cadence: open the device
// once, then clear, collect and render on every tick until the process
// is told to stop.
type Loop struct {
	cfg      config.Config
	registry *collector.Registry

	// MaxCycles bounds the run for tests and one-shot checks; 0 means
	// run until a termination signal.
	MaxCycles int
}

func New(cfg config.Config, registry *collector.Registry) *Loop {
	return &Loop{cfg: cfg, registry: registry}
}

// Run opens the display device and drives the refresh cycle. Failing to
// open the sink is fatal by design: the panel has no degraded mode. Any
// collector error also surfaces here and ends the process; the sink is
// closed on the way out in either case.
func (l *Loop) Run() error {
	sink, err := os.OpenFile(l.cfg.Device, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open display %s: %w", l.cfg.Device, err)
	}
	defer sink.Close()

	log.Printf("ttypanel started (display=%s, interval=%ds)", l.cfg.Device, l.cfg.UpdateInterval)
	return l.run(sink)
}

func (l *Loop) run(sink io.Writer) error {
	w := ui.NewWriter(sink)
	page := ui.NewPage(l.cfg, w)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	// The ticker fires relative to cycle start, so a slow render does
	// not push later cycles off schedule.
	ticker := time.NewTicker(time.Duration(l.cfg.UpdateInterval) * time.Second)
	defer ticker.Stop()

	cycles := 0
	for {
		// First paint happens immediately; a panel that stays blank for
		// a whole interval after boot looks dead.
		if err := l.cycle(w, page); err != nil {
			return err
		}
		cycles++
		if l.MaxCycles > 0 && cycles >= l.MaxCycles {
			return nil
		}

		select {
		case <-sig:
			log.Printf("ttypanel shutting down")
			return nil
		case <-ticker.C:
		}
	}
}

// cycle produces one full screen: sample everything, then clear and
// repaint. Collection happens before the clear so the previous page
// stays up while metrics are read.
func (l *Loop) cycle(w *ui.Writer, page *ui.Page) error {
	snap := &model.Snapshot{Timestamp: time.Now()}
	if err := l.registry.CollectAll(snap); err != nil {
		return err
	}
	w.Clear()
	page.Render(snap)
	return nil
}

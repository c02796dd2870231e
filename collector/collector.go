package collector

import (
	"fmt"

	"github.com/ftahirops/ttypanel/config"
	"github.com/ftahirops/ttypanel/model"
)

// Collector is the interface for all metric collectors.
type Collector interface {
	Name() string
	Collect(snap *model.Snapshot) error
}

// Registry holds the collectors that feed one render cycle.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates a registry with every collector the page needs,
// in collection order.
func NewRegistry(cfg config.Config) *Registry {
	return &Registry{
		collectors: []Collector{
			&SysInfoCollector{Interface: cfg.NetworkInterface},
			&UptimeCollector{},
			&CPUCollector{TempPath: cfg.CPUTempLocation},
			&FilesystemCollector{},
		},
	}
}

// Add registers an additional collector.
func (r *Registry) Add(c Collector) {
	r.collectors = append(r.collectors, c)
}

// CollectAll runs all collectors against snap, stopping at the first
// failure. One unreadable metric aborts the whole cycle; the operator's
// supervisor restarts the process.
func (r *Registry) CollectAll(snap *model.Snapshot) error {
	for _, c := range r.collectors {
		if err := c.Collect(snap); err != nil {
			return fmt.Errorf("%s: %w", c.Name(), err)
		}
	}
	return nil
}

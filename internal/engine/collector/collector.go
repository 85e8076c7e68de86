// Package collector snapshots the globally installed packages of a manager.
package collector

import (
	"context"

	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Collector gathers installed packages, excluding the skip set.
type Collector struct {
	pm   ports.PackageManager
	skip domain.SkipSet
}

// New creates a Collector.
func New(pm ports.PackageManager, skip domain.SkipSet) *Collector {
	if skip == nil {
		skip = domain.NewSkipSet()
	}
	return &Collector{pm: pm, skip: skip}
}

// Collect returns the filtered snapshot for m. On failure it returns an
// empty set and an error wrapping domain.ErrCollectionFailed.
func (c *Collector) Collect(ctx context.Context, m domain.Manager) (domain.PackageSet, error) {
	set, err := c.pm.ListGlobal(ctx, m)
	if err != nil {
		collectErr := zerr.Wrap(domain.ErrCollectionFailed, "cannot list global "+m.String()+" packages")
		collectErr = zerr.With(collectErr, "manager", m.String())
		return domain.PackageSet{}, zerr.With(collectErr, "reason", err.Error())
	}
	return c.skip.Filter(set), nil
}

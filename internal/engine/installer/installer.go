// Package installer reinstalls a package set in sequential, bounded-concurrency windows.
package installer

import (
	"context"
	"fmt"

	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options controls one install run.
type Options struct {
	// Concurrency is the window size. Values below 1 are treated as 1.
	Concurrency int

	// UseLatest installs the latest published version instead of the saved one.
	UseLatest bool
}

// Installer runs install attempts through a package manager.
type Installer struct {
	pm     ports.PackageManager
	tracer ports.Tracer
	logger ports.Logger
	skip   domain.SkipSet
}

// New creates an Installer.
func New(pm ports.PackageManager, tracer ports.Tracer, logger ports.Logger, skip domain.SkipSet) *Installer {
	if skip == nil {
		skip = domain.NewSkipSet()
	}
	return &Installer{
		pm:     pm,
		tracer: tracer,
		logger: logger,
		skip:   skip,
	}
}

// Install attempts every package of packages not in the skip set.
//
// Windows run strictly in sequence and the entries of a window run
// concurrently. Per-package failures are recorded in the report and never
// stop the run. If ctx is canceled, the running window is drained and
// Install returns the partial report together with ctx.Err().
func (i *Installer) Install(
	ctx context.Context,
	packages domain.PackageSet,
	m domain.Manager,
	opts Options,
) (domain.InstallReport, error) {
	var report domain.InstallReport

	specs := domain.Specs(i.skip.Filter(packages))
	windows := domain.Windows(specs, opts.Concurrency)

	names := make([]string, len(specs))
	for idx, spec := range specs {
		names[idx] = spec.String()
	}
	i.tracer.EmitPlan(ctx, names, len(windows))

	for _, window := range windows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		results := make([]domain.PackageResult, len(window))

		var g errgroup.Group
		g.SetLimit(len(window))
		for idx, spec := range window {
			g.Go(func() error {
				results[idx] = i.installOne(ctx, m, spec, opts.UseLatest)
				return ctx.Err()
			})
		}
		waitErr := g.Wait()

		for _, res := range results {
			report.Record(res)
		}
		if waitErr != nil {
			return report, waitErr
		}
	}

	return report, nil
}

func (i *Installer) installOne(
	ctx context.Context,
	m domain.Manager,
	spec domain.PackageSpec,
	useLatest bool,
) domain.PackageResult {
	ctx, span := i.tracer.Start(ctx, spec.String(),
		ports.WithAttribute(ports.AttrPackage, spec.Name),
		ports.WithAttribute(ports.AttrManager, m.String()),
	)
	defer span.End()

	res := i.attempt(ctx, m, spec, useLatest)

	span.SetAttribute(ports.AttrVersion, res.Spec.Version)
	span.SetAttribute(ports.AttrOutcome, res.Outcome.String())
	if res.Err != nil {
		span.RecordError(res.Err)
	}
	return res
}

func (i *Installer) attempt(
	ctx context.Context,
	m domain.Manager,
	spec domain.PackageSpec,
	useLatest bool,
) domain.PackageResult {
	if i.pm.IsInstalled(ctx, m, spec.Name) {
		return domain.PackageResult{Spec: spec, Outcome: domain.OutcomeSkipped}
	}

	target := spec.Version
	if useLatest {
		latest, err := i.pm.LatestVersion(ctx, m, spec.Name)
		if err != nil {
			i.logger.Warn(fmt.Sprintf("could not resolve latest version of %s, installing %s", spec.Name, spec.Version))
		} else {
			target = latest
		}
	}

	if err := i.pm.Install(ctx, m, spec.Name, target); err != nil {
		installErr := zerr.Wrap(domain.ErrInstallFailed, fmt.Sprintf("cannot install %s@%s (%v)", spec.Name, target, err))
		return domain.PackageResult{
			Spec:    spec,
			Outcome: domain.OutcomeFailed,
			Err:     zerr.With(installErr, "package", spec.Name),
		}
	}

	return domain.PackageResult{
		Spec:    domain.PackageSpec{Name: spec.Name, Version: target},
		Outcome: domain.OutcomeSucceeded,
	}
}

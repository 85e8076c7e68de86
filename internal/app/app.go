// Package app implements the profile operations of packsync.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
	"go.trai.ch/packsync/internal/engine/collector"
	"go.trai.ch/packsync/internal/engine/installer"
	"go.trai.ch/zerr"
)

const unknownVersion = "unknown"

// App represents the main application logic.
type App struct {
	store     ports.ProfileStore
	locker    ports.Locker
	pm        ports.PackageManager
	collector *collector.Collector
	installer *installer.Installer
	script    ports.RetryScriptWriter
	prompter  ports.Prompter
	logger    ports.Logger
	settings  domain.Settings
	now       func() time.Time
}

// New creates a new App instance.
func New(
	store ports.ProfileStore,
	locker ports.Locker,
	pm ports.PackageManager,
	coll *collector.Collector,
	inst *installer.Installer,
	script ports.RetryScriptWriter,
	prompter ports.Prompter,
	log ports.Logger,
	settings domain.Settings,
) *App {
	return &App{
		store:     store,
		locker:    locker,
		pm:        pm,
		collector: coll,
		installer: inst,
		script:    script,
		prompter:  prompter,
		logger:    log,
		settings:  settings,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for save timestamps and default names.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// SaveOptions configuration for the Save method.
type SaveOptions struct {
	// Manager overrides the configured or detected package manager.
	Manager domain.Manager
}

// RestoreOptions configuration for the Restore and Select methods.
type RestoreOptions struct {
	// Manager overrides the profile's package manager.
	Manager domain.Manager
	// Concurrency overrides the configured window size when positive.
	Concurrency int
	// UseLatest installs the latest published versions instead of the saved ones.
	UseLatest bool
}

// RestoreResult summarizes a finished restore.
type RestoreResult struct {
	Name       string
	Manager    domain.Manager
	Report     domain.InstallReport
	ScriptPath string
}

// Save snapshots the globally installed packages into a profile.
// An empty name is replaced by the default "<managerVersion>_<timestamp>" name.
func (a *App) Save(ctx context.Context, name string, opts SaveOptions) (saved domain.NamedProfile, err error) {
	if err := a.locker.Acquire(ctx); err != nil {
		return domain.NamedProfile{}, err
	}
	defer func() {
		err = errors.Join(err, a.locker.Release())
	}()

	m := opts.Manager
	if m == "" {
		m = a.settings.Manager
	}
	if m == "" {
		m = a.pm.Detect(ctx)
	}

	packages, collectErr := a.collector.Collect(ctx, m)
	if collectErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.NamedProfile{}, ctxErr
		}
		a.logger.Warn(fmt.Sprintf("%v, saving an empty snapshot", collectErr))
	}

	nodeVersion := a.readVersion("node", func() (string, error) { return a.pm.NodeVersion(ctx) })
	managerVersion := a.readVersion(m.String(), func() (string, error) { return a.pm.Version(ctx, m) })

	now := a.now()
	if name == "" {
		name = domain.DefaultProfileName(managerVersion, now)
	}

	set, err := a.store.Load()
	if err != nil {
		return domain.NamedProfile{}, err
	}

	if latest, ok := set.Latest(); ok && domain.Fingerprint(latest.Profile.Packages) == domain.Fingerprint(packages) {
		a.logger.Info(fmt.Sprintf("snapshot matches profile %s, saving anyway", strconv.Quote(latest.Name)))
	}

	profile := domain.Profile{
		NodeVersion:    nodeVersion,
		ManagerVersion: managerVersion,
		Manager:        m,
		Packages:       packages,
		SavedAt:        now.UTC(),
		PackageCount:   packages.Len(),
		Platform:       runtime.GOOS,
		Arch:           runtime.GOARCH,
	}
	set.Set(name, profile)

	if err := a.store.Save(set); err != nil {
		return domain.NamedProfile{}, err
	}

	return domain.NamedProfile{Name: name, Profile: profile}, nil
}

func (a *App) readVersion(what string, read func() (string, error)) string {
	v, err := read()
	if err == nil {
		v = strings.TrimSpace(v)
	}
	if err != nil || v == "" {
		a.logger.Warn(fmt.Sprintf("could not read %s version, recording %q", what, unknownVersion))
		return unknownVersion
	}
	return v
}

// Restore reinstalls the packages of the named profile, or of the most
// recently saved one when name is empty.
//
// Per-package failures do not produce an error. They are listed in the
// report and a retry script is written for them.
func (a *App) Restore(ctx context.Context, name string, opts RestoreOptions) (result RestoreResult, err error) {
	if err := a.locker.Acquire(ctx); err != nil {
		return RestoreResult{}, err
	}
	defer func() {
		err = errors.Join(err, a.locker.Release())
	}()

	profile, err := a.pick(name)
	if err != nil {
		return RestoreResult{}, err
	}

	return a.install(ctx, profile, profile.Profile.Packages, opts)
}

// Select works like Restore but first asks which packages to leave out.
// The answer is a space-separated list of 1-based indices. An empty answer
// installs everything.
func (a *App) Select(ctx context.Context, name string, opts RestoreOptions) (result RestoreResult, err error) {
	if err := a.locker.Acquire(ctx); err != nil {
		return RestoreResult{}, err
	}
	defer func() {
		err = errors.Join(err, a.locker.Release())
	}()

	profile, err := a.pick(name)
	if err != nil {
		return RestoreResult{}, err
	}

	specs := domain.Specs(profile.Profile.Packages)
	answer, err := a.prompter.Ask(ctx, selectionQuestion(profile.Name, specs))
	if err != nil {
		return RestoreResult{}, err
	}

	excluded := ParseExclusions(answer, len(specs))
	var chosen domain.PackageSet
	for idx, spec := range specs {
		if _, skip := excluded[idx+1]; !skip {
			chosen.Set(spec.Name, spec.Version)
		}
	}

	return a.install(ctx, profile, chosen, opts)
}

func selectionQuestion(name string, specs []domain.PackageSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Packages in %s:\n", strconv.Quote(name))
	width := len(strconv.Itoa(len(specs)))
	for idx, spec := range specs {
		fmt.Fprintf(&b, "  %*d) %s\n", width, idx+1, spec)
	}
	b.WriteString("Numbers to exclude (space-separated, empty installs all): ")
	return b.String()
}

// ParseExclusions returns the 1-based indices named in answer.
// Tokens that are not numbers in [1, n] are ignored.
func ParseExclusions(answer string, n int) map[int]struct{} {
	out := make(map[int]struct{})
	for _, tok := range strings.Fields(answer) {
		idx, err := strconv.Atoi(tok)
		if err != nil || idx < 1 || idx > n {
			continue
		}
		out[idx] = struct{}{}
	}
	return out
}

func (a *App) install(
	ctx context.Context,
	profile domain.NamedProfile,
	packages domain.PackageSet,
	opts RestoreOptions,
) (RestoreResult, error) {
	m := a.restoreManager(ctx, profile.Profile, opts.Manager)

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = a.settings.Concurrency
	}

	report, err := a.installer.Install(ctx, packages, m, installer.Options{
		Concurrency: concurrency,
		UseLatest:   opts.UseLatest,
	})
	result := RestoreResult{Name: profile.Name, Manager: m, Report: report}

	switch {
	case len(report.Failed) > 0:
		path, scriptErr := a.script.Write(m, report.Failed)
		if scriptErr != nil {
			a.logger.Error(scriptErr)
		} else {
			result.ScriptPath = path
		}
	case err == nil:
		// A clean run leaves no retry script behind.
		if clearErr := a.script.Clear(); clearErr != nil {
			a.logger.Warn(fmt.Sprintf("could not remove stale retry script: %v", clearErr))
		}
	}

	return result, err
}

// restoreManager picks the manager for a restore: the explicit override,
// then the profile's manager, then the configured default, then detection.
func (a *App) restoreManager(ctx context.Context, p domain.Profile, override domain.Manager) domain.Manager {
	for _, m := range []domain.Manager{override, p.Manager, a.settings.Manager} {
		if m.Valid() {
			return m
		}
	}
	return a.pm.Detect(ctx)
}

func (a *App) pick(name string) (domain.NamedProfile, error) {
	set, err := a.store.Load()
	if err != nil {
		return domain.NamedProfile{}, err
	}

	if name == "" {
		latest, ok := set.Latest()
		if !ok {
			return domain.NamedProfile{}, domain.ErrNoProfiles
		}
		return latest, nil
	}

	p, ok := set.Get(name)
	if !ok {
		return domain.NamedProfile{}, notFound(name)
	}
	return domain.NamedProfile{Name: name, Profile: p}, nil
}

// Diff compares the package sets of profiles a and b.
func (a *App) Diff(_ context.Context, from, to string) (domain.ProfileDiff, error) {
	set, err := a.store.Load()
	if err != nil {
		return domain.ProfileDiff{}, err
	}

	pa, ok := set.Get(from)
	if !ok {
		return domain.ProfileDiff{}, notFound(from)
	}
	pb, ok := set.Get(to)
	if !ok {
		return domain.ProfileDiff{}, notFound(to)
	}

	d := domain.Diff(pa.Packages, pb.Packages)
	d.From, d.To = from, to
	return d, nil
}

// Delete removes the named profile from the store.
func (a *App) Delete(ctx context.Context, name string) (err error) {
	if err := a.locker.Acquire(ctx); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.locker.Release())
	}()

	set, err := a.store.Load()
	if err != nil {
		return err
	}

	if !set.Delete(name) {
		return notFound(name)
	}

	return a.store.Save(set)
}

// List returns every saved profile, most recent first.
func (a *App) List(_ context.Context) ([]domain.NamedProfile, error) {
	set, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	return set.ByRecency(), nil
}

func notFound(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrProfileNotFound, "no profile named "+strconv.Quote(name)), "profile", name)
}

package app_test

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packsync/internal/app"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
	"go.trai.ch/packsync/internal/core/ports/mocks"
	"go.trai.ch/packsync/internal/engine/collector"
	"go.trai.ch/packsync/internal/engine/installer"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

type appTestMocks struct {
	store    *mocks.MockProfileStore
	locker   *mocks.MockLocker
	pm       *mocks.MockPackageManager
	script   *mocks.MockRetryScriptWriter
	prompter *mocks.MockPrompter
	logger   *mocks.MockLogger
}

// setupAppTest creates an App over mocked ports with the real collector and installer.
func setupAppTest(t *testing.T, settings domain.Settings) (*app.App, appTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		store:    mocks.NewMockProfileStore(ctrl),
		locker:   mocks.NewMockLocker(ctrl),
		pm:       mocks.NewMockPackageManager(ctrl),
		script:   mocks.NewMockRetryScriptWriter(ctrl),
		prompter: mocks.NewMockPrompter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	if settings.Concurrency == 0 {
		settings.Concurrency = domain.DefaultConcurrency
	}

	a := app.New(
		m.store,
		m.locker,
		m.pm,
		collector.New(m.pm, nil),
		installer.New(m.pm, tracer, m.logger, nil),
		m.script,
		m.prompter,
		m.logger,
		settings,
	).WithClock(func() time.Time { return fixedNow })

	return a, m
}

// expectLock expects exactly one acquire and one release.
func (m appTestMocks) expectLock() {
	gomock.InOrder(
		m.locker.EXPECT().Acquire(gomock.Any()).Return(nil),
		m.locker.EXPECT().Release().Return(nil),
	)
}

func packages(pairs ...string) domain.PackageSet {
	var set domain.PackageSet
	for i := 0; i+1 < len(pairs); i += 2 {
		set.Set(pairs[i], pairs[i+1])
	}
	return set
}

func profileSet(profiles ...domain.NamedProfile) domain.ProfileSet {
	var set domain.ProfileSet
	for _, p := range profiles {
		set.Set(p.Name, p.Profile)
	}
	return set
}

func named(name string, m domain.Manager, savedAt time.Time, pkgs domain.PackageSet) domain.NamedProfile {
	return domain.NamedProfile{
		Name: name,
		Profile: domain.Profile{
			Manager:      m,
			Packages:     pkgs,
			SavedAt:      savedAt,
			PackageCount: pkgs.Len(),
		},
	}
}

func TestApp_Save(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.pm.EXPECT().ListGlobal(gomock.Any(), domain.ManagerPNPM).
		Return(packages("npm", "10.0.0", "eslint", "8.0.0", "typescript", "5.0.0"), nil)
	m.pm.EXPECT().NodeVersion(gomock.Any()).Return("v20.11.0\n", nil)
	m.pm.EXPECT().Version(gomock.Any(), domain.ManagerPNPM).Return("8.15.1", nil)
	m.store.EXPECT().Load().Return(domain.ProfileSet{}, nil)

	var stored domain.ProfileSet
	m.store.EXPECT().Save(gomock.Any()).DoAndReturn(func(set domain.ProfileSet) error {
		stored = set
		return nil
	})

	saved, err := a.Save(context.Background(), "work", app.SaveOptions{Manager: domain.ManagerPNPM})
	require.NoError(t, err)

	assert.Equal(t, "work", saved.Name)
	p := saved.Profile
	assert.Equal(t, domain.ManagerPNPM, p.Manager)
	assert.Equal(t, "v20.11.0", p.NodeVersion)
	assert.Equal(t, "8.15.1", p.ManagerVersion)
	assert.Equal(t, []string{"eslint", "typescript"}, p.Packages.Keys())
	assert.Equal(t, 2, p.PackageCount)
	assert.Equal(t, fixedNow, p.SavedAt)
	assert.Equal(t, runtime.GOOS, p.Platform)
	assert.Equal(t, runtime.GOARCH, p.Arch)

	got, ok := stored.Get("work")
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestApp_Save_DefaultNameAndDetection(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.pm.EXPECT().Detect(gomock.Any()).Return(domain.ManagerYarn)
	m.pm.EXPECT().ListGlobal(gomock.Any(), domain.ManagerYarn).Return(packages("prettier", "3.2.5"), nil)
	m.pm.EXPECT().NodeVersion(gomock.Any()).Return("v20.11.0", nil)
	m.pm.EXPECT().Version(gomock.Any(), domain.ManagerYarn).Return("1.22.19", nil)
	m.store.EXPECT().Load().Return(domain.ProfileSet{}, nil)
	m.store.EXPECT().Save(gomock.Any()).Return(nil)

	saved, err := a.Save(context.Background(), "", app.SaveOptions{})
	require.NoError(t, err)
	assert.Equal(t, "1.22.19_20240309-140507", saved.Name)
	assert.Equal(t, domain.ManagerYarn, saved.Profile.Manager)
}

func TestApp_Save_StoresUTC(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	cet := time.FixedZone("CET", 3600)
	a.WithClock(func() time.Time { return fixedNow.In(cet) })
	m.expectLock()

	m.pm.EXPECT().ListGlobal(gomock.Any(), domain.ManagerNPM).Return(domain.PackageSet{}, nil)
	m.pm.EXPECT().NodeVersion(gomock.Any()).Return("v20.11.0", nil)
	m.pm.EXPECT().Version(gomock.Any(), domain.ManagerNPM).Return("10.2.4", nil)
	m.store.EXPECT().Load().Return(domain.ProfileSet{}, nil)
	m.store.EXPECT().Save(gomock.Any()).Return(nil)

	saved, err := a.Save(context.Background(), "", app.SaveOptions{Manager: domain.ManagerNPM})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, saved.Profile.SavedAt.Location())
	assert.True(t, fixedNow.Equal(saved.Profile.SavedAt))
	assert.Equal(t, "10.2.4_20240309-150507", saved.Name, "the default name uses the local clock")
}

func TestApp_Save_ConfiguredManager(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{Manager: domain.ManagerPNPM})
	m.expectLock()

	m.pm.EXPECT().ListGlobal(gomock.Any(), domain.ManagerPNPM).Return(domain.PackageSet{}, nil)
	m.pm.EXPECT().NodeVersion(gomock.Any()).Return("v20.11.0", nil)
	m.pm.EXPECT().Version(gomock.Any(), domain.ManagerPNPM).Return("8.15.1", nil)
	m.store.EXPECT().Load().Return(domain.ProfileSet{}, nil)
	m.store.EXPECT().Save(gomock.Any()).Return(nil)

	saved, err := a.Save(context.Background(), "p", app.SaveOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.ManagerPNPM, saved.Profile.Manager)
}

func TestApp_Save_CollectionFailureSavesEmptySnapshot(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.pm.EXPECT().ListGlobal(gomock.Any(), domain.ManagerNPM).Return(domain.PackageSet{}, errors.New("npm not found"))
	m.logger.EXPECT().Warn(gomock.Any())
	m.pm.EXPECT().NodeVersion(gomock.Any()).Return("v20.11.0", nil)
	m.pm.EXPECT().Version(gomock.Any(), domain.ManagerNPM).Return("10.2.4", nil)
	m.store.EXPECT().Load().Return(domain.ProfileSet{}, nil)
	m.store.EXPECT().Save(gomock.Any()).Return(nil)

	saved, err := a.Save(context.Background(), "empty", app.SaveOptions{Manager: domain.ManagerNPM})
	require.NoError(t, err)
	assert.Equal(t, 0, saved.Profile.Packages.Len())
	assert.Equal(t, 0, saved.Profile.PackageCount)
}

func TestApp_Save_UnknownVersions(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.pm.EXPECT().ListGlobal(gomock.Any(), domain.ManagerNPM).Return(domain.PackageSet{}, nil)
	m.pm.EXPECT().NodeVersion(gomock.Any()).Return("", errors.New("node: not found"))
	m.pm.EXPECT().Version(gomock.Any(), domain.ManagerNPM).Return("  \n", nil)
	m.logger.EXPECT().Warn(`could not read node version, recording "unknown"`)
	m.logger.EXPECT().Warn(`could not read npm version, recording "unknown"`)
	m.store.EXPECT().Load().Return(domain.ProfileSet{}, nil)
	m.store.EXPECT().Save(gomock.Any()).Return(nil)

	saved, err := a.Save(context.Background(), "", app.SaveOptions{Manager: domain.ManagerNPM})
	require.NoError(t, err)
	assert.Equal(t, "unknown", saved.Profile.NodeVersion)
	assert.Equal(t, "unknown", saved.Profile.ManagerVersion)
	assert.Equal(t, "unknown_20240309-140507", saved.Name)
}

func TestApp_Save_IdenticalSnapshotNotes(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	current := packages("eslint", "8.0.0", "typescript", "5.0.0")
	m.pm.EXPECT().ListGlobal(gomock.Any(), domain.ManagerNPM).Return(current, nil)
	m.pm.EXPECT().NodeVersion(gomock.Any()).Return("v20.11.0", nil)
	m.pm.EXPECT().Version(gomock.Any(), domain.ManagerNPM).Return("10.2.4", nil)
	m.store.EXPECT().Load().Return(profileSet(
		named("old", domain.ManagerNPM, fixedNow.Add(-time.Hour), packages("typescript", "5.0.0", "eslint", "8.0.0")),
	), nil)
	m.logger.EXPECT().Info(`snapshot matches profile "old", saving anyway`)

	var stored domain.ProfileSet
	m.store.EXPECT().Save(gomock.Any()).DoAndReturn(func(set domain.ProfileSet) error {
		stored = set
		return nil
	})

	_, err := a.Save(context.Background(), "new", app.SaveOptions{Manager: domain.ManagerNPM})
	require.NoError(t, err)
	assert.Equal(t, []string{"old", "new"}, stored.Keys())
}

func TestApp_Save_LockHeld(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.locker.EXPECT().Acquire(gomock.Any()).Return(domain.ErrLockHeld)

	_, err := a.Save(context.Background(), "work", app.SaveOptions{Manager: domain.ManagerNPM})
	require.ErrorIs(t, err, domain.ErrLockHeld)
}

func TestApp_Save_CorruptStoreReleasesLock(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.pm.EXPECT().ListGlobal(gomock.Any(), domain.ManagerNPM).Return(domain.PackageSet{}, nil)
	m.pm.EXPECT().NodeVersion(gomock.Any()).Return("v20.11.0", nil)
	m.pm.EXPECT().Version(gomock.Any(), domain.ManagerNPM).Return("10.2.4", nil)
	m.store.EXPECT().Load().Return(domain.ProfileSet{}, domain.ErrCorruptStore)

	_, err := a.Save(context.Background(), "work", app.SaveOptions{Manager: domain.ManagerNPM})
	require.ErrorIs(t, err, domain.ErrCorruptStore)
}

func TestApp_Save_ReleaseErrorIsJoined(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.locker.EXPECT().Acquire(gomock.Any()).Return(nil)
	m.locker.EXPECT().Release().Return(domain.ErrLockReleaseFailed)

	m.pm.EXPECT().ListGlobal(gomock.Any(), domain.ManagerNPM).Return(domain.PackageSet{}, nil)
	m.pm.EXPECT().NodeVersion(gomock.Any()).Return("v20.11.0", nil)
	m.pm.EXPECT().Version(gomock.Any(), domain.ManagerNPM).Return("10.2.4", nil)
	m.store.EXPECT().Load().Return(domain.ProfileSet{}, domain.ErrCorruptStore)

	_, err := a.Save(context.Background(), "work", app.SaveOptions{Manager: domain.ManagerNPM})
	require.ErrorIs(t, err, domain.ErrCorruptStore)
	require.ErrorIs(t, err, domain.ErrLockReleaseFailed)
}

func TestApp_Restore_Latest(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("newer", domain.ManagerYarn, fixedNow, packages("eslint", "8.0.0", "typescript", "5.0.0")),
		named("older", domain.ManagerNPM, fixedNow.Add(-time.Hour), packages("prettier", "3.0.0")),
	), nil)

	m.pm.EXPECT().IsInstalled(gomock.Any(), domain.ManagerYarn, "eslint").Return(true)
	m.pm.EXPECT().IsInstalled(gomock.Any(), domain.ManagerYarn, "typescript").Return(false)
	m.pm.EXPECT().Install(gomock.Any(), domain.ManagerYarn, "typescript", "5.0.0").Return(nil)
	m.script.EXPECT().Clear().Return(nil)

	res, err := a.Restore(context.Background(), "", app.RestoreOptions{})
	require.NoError(t, err)

	assert.Equal(t, "newer", res.Name)
	assert.Equal(t, domain.ManagerYarn, res.Manager)
	assert.Equal(t, []domain.PackageSpec{{Name: "typescript", Version: "5.0.0"}}, res.Report.Succeeded)
	assert.Equal(t, []domain.PackageSpec{{Name: "eslint", Version: "8.0.0"}}, res.Report.Skipped)
	assert.Empty(t, res.Report.Failed)
	assert.Empty(t, res.ScriptPath)
}

func TestApp_Restore_LatestTieGoesToLastInserted(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("first", domain.ManagerNPM, fixedNow, domain.PackageSet{}),
		named("second", domain.ManagerNPM, fixedNow, domain.PackageSet{}),
	), nil)
	m.script.EXPECT().Clear().Return(nil)

	res, err := a.Restore(context.Background(), "", app.RestoreOptions{})
	require.NoError(t, err)
	assert.Equal(t, "second", res.Name)
	assert.Equal(t, 0, res.Report.Total())
}

func TestApp_Restore_ManagerPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		override domain.Manager
		profile  domain.Manager
		settings domain.Manager
		detect   bool
		want     domain.Manager
	}{
		{name: "flag wins", override: domain.ManagerPNPM, profile: domain.ManagerYarn, want: domain.ManagerPNPM},
		{name: "profile manager", profile: domain.ManagerYarn, settings: domain.ManagerPNPM, want: domain.ManagerYarn},
		{name: "configured default", profile: "bun", settings: domain.ManagerPNPM, want: domain.ManagerPNPM},
		{name: "detected", profile: "", detect: true, want: domain.ManagerYarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, m := setupAppTest(t, domain.Settings{Manager: tt.settings})
			m.expectLock()

			m.store.EXPECT().Load().Return(profileSet(
				named("p", tt.profile, fixedNow, packages("eslint", "8.0.0")),
			), nil)
			if tt.detect {
				m.pm.EXPECT().Detect(gomock.Any()).Return(domain.ManagerYarn)
			}
			m.pm.EXPECT().IsInstalled(gomock.Any(), tt.want, "eslint").Return(true)
			m.script.EXPECT().Clear().Return(nil)

			res, err := a.Restore(context.Background(), "p", app.RestoreOptions{Manager: tt.override})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Manager)
		})
	}
}

func TestApp_Restore_FailuresWriteRetryScript(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("work", domain.ManagerNPM, fixedNow, packages("eslint", "8.0.0", "ghost", "1.0.0", "typescript", "5.0.0")),
	), nil)

	m.pm.EXPECT().IsInstalled(gomock.Any(), domain.ManagerNPM, gomock.Any()).Return(false).Times(3)
	m.pm.EXPECT().Install(gomock.Any(), domain.ManagerNPM, "eslint", "8.0.0").Return(nil)
	m.pm.EXPECT().Install(gomock.Any(), domain.ManagerNPM, "ghost", "1.0.0").Return(errors.New("404"))
	m.pm.EXPECT().Install(gomock.Any(), domain.ManagerNPM, "typescript", "5.0.0").Return(nil)
	m.script.EXPECT().Write(domain.ManagerNPM, []domain.PackageSpec{{Name: "ghost", Version: "1.0.0"}}).
		Return("/store/retry-failed.sh", nil)

	res, err := a.Restore(context.Background(), "work", app.RestoreOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Report.Succeeded, 2)
	assert.Equal(t, []domain.PackageSpec{{Name: "ghost", Version: "1.0.0"}}, res.Report.Failed)
	assert.Equal(t, "/store/retry-failed.sh", res.ScriptPath)
}

func TestApp_Restore_ScriptWriteFailureIsLogged(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("work", domain.ManagerNPM, fixedNow, packages("ghost", "1.0.0")),
	), nil)
	m.pm.EXPECT().IsInstalled(gomock.Any(), domain.ManagerNPM, "ghost").Return(false)
	m.pm.EXPECT().Install(gomock.Any(), domain.ManagerNPM, "ghost", "1.0.0").Return(errors.New("404"))
	m.script.EXPECT().Write(gomock.Any(), gomock.Any()).Return("", domain.ErrScriptWriteFailed)
	m.logger.EXPECT().Error(domain.ErrScriptWriteFailed)

	res, err := a.Restore(context.Background(), "work", app.RestoreOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Report.Failed, 1)
	assert.Empty(t, res.ScriptPath)
}

func TestApp_Restore_CleanRunClearsRetryScript(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("work", domain.ManagerNPM, fixedNow, packages("eslint", "8.0.0")),
	), nil)
	m.pm.EXPECT().IsInstalled(gomock.Any(), domain.ManagerNPM, "eslint").Return(false)
	m.pm.EXPECT().Install(gomock.Any(), domain.ManagerNPM, "eslint", "8.0.0").Return(nil)
	m.script.EXPECT().Clear().Return(errors.New("permission denied"))
	m.logger.EXPECT().Warn("could not remove stale retry script: permission denied")

	res, err := a.Restore(context.Background(), "work", app.RestoreOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Report.Succeeded, 1)
	assert.Empty(t, res.ScriptPath)
}

func TestApp_Restore_ProfileNotFound(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("work", domain.ManagerNPM, fixedNow, packages("eslint", "8.0.0")),
	), nil)

	_, err := a.Restore(context.Background(), "missing", app.RestoreOptions{})
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Contains(t, err.Error(), `no profile named "missing"`)
}

func TestApp_Restore_NoProfiles(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()
	m.store.EXPECT().Load().Return(domain.ProfileSet{}, nil)

	_, err := a.Restore(context.Background(), "", app.RestoreOptions{})
	require.ErrorIs(t, err, domain.ErrNoProfiles)
}

func TestApp_Restore_CancelMidInstallReleasesLock(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("work", domain.ManagerNPM, fixedNow, packages("eslint", "8.0.0", "typescript", "5.0.0")),
	), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.pm.EXPECT().IsInstalled(gomock.Any(), domain.ManagerNPM, "eslint").Return(false)
	m.pm.EXPECT().Install(gomock.Any(), domain.ManagerNPM, "eslint", "8.0.0").DoAndReturn(
		func(context.Context, domain.Manager, string, string) error {
			cancel()
			return nil
		},
	)

	res, err := a.Restore(ctx, "work", app.RestoreOptions{Concurrency: 1})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []domain.PackageSpec{{Name: "eslint", Version: "8.0.0"}}, res.Report.Succeeded)
}

func TestApp_Select_ExcludesChosenIndices(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("work", domain.ManagerNPM, fixedNow, packages("eslint", "8.0.0", "prettier", "3.0.0", "typescript", "5.0.0")),
	), nil)

	m.prompter.EXPECT().Ask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, question string) (string, error) {
			assert.Contains(t, question, "1) eslint@8.0.0")
			assert.Contains(t, question, "2) prettier@3.0.0")
			assert.Contains(t, question, "3) typescript@5.0.0")
			return "2 x 9 2", nil
		},
	)
	m.pm.EXPECT().IsInstalled(gomock.Any(), domain.ManagerNPM, "eslint").Return(false)
	m.pm.EXPECT().IsInstalled(gomock.Any(), domain.ManagerNPM, "typescript").Return(false)
	m.pm.EXPECT().Install(gomock.Any(), domain.ManagerNPM, "eslint", "8.0.0").Return(nil)
	m.pm.EXPECT().Install(gomock.Any(), domain.ManagerNPM, "typescript", "5.0.0").Return(nil)
	m.script.EXPECT().Clear().Return(nil)

	res, err := a.Select(context.Background(), "work", app.RestoreOptions{})
	require.NoError(t, err)
	assert.Equal(t, []domain.PackageSpec{
		{Name: "eslint", Version: "8.0.0"},
		{Name: "typescript", Version: "5.0.0"},
	}, res.Report.Succeeded)
}

func TestApp_Select_EmptyAnswerInstallsAll(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("work", domain.ManagerNPM, fixedNow, packages("eslint", "8.0.0", "prettier", "3.0.0")),
	), nil)
	m.prompter.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("", nil)
	m.pm.EXPECT().IsInstalled(gomock.Any(), domain.ManagerNPM, gomock.Any()).Return(true).Times(2)
	m.script.EXPECT().Clear().Return(nil)

	res, err := a.Select(context.Background(), "work", app.RestoreOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Report.Skipped, 2)
}

func TestApp_Select_PromptCanceled(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("work", domain.ManagerNPM, fixedNow, packages("eslint", "8.0.0")),
	), nil)
	m.prompter.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("", context.Canceled)

	_, err := a.Select(context.Background(), "work", app.RestoreOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseExclusions(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		n      int
		want   []int
	}{
		{name: "empty", answer: "", n: 3, want: nil},
		{name: "whitespace", answer: "   \t", n: 3, want: nil},
		{name: "single", answer: "2", n: 3, want: []int{2}},
		{name: "several", answer: " 1  3 ", n: 3, want: []int{1, 3}},
		{name: "out of range", answer: "0 4 -1", n: 3, want: nil},
		{name: "non numeric", answer: "a 2b 3", n: 3, want: []int{3}},
		{name: "duplicates", answer: "1 1", n: 3, want: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := app.ParseExclusions(tt.answer, tt.n)
			assert.Len(t, got, len(tt.want))
			for _, idx := range tt.want {
				assert.Contains(t, got, idx)
			}
		})
	}
}

func TestApp_Diff(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.store.EXPECT().Load().Return(profileSet(
		named("a", domain.ManagerNPM, fixedNow, packages("eslint", "8.0.0", "typescript", "5.0.0")),
		named("b", domain.ManagerNPM, fixedNow, packages("eslint", "9.0.0", "prettier", "3.0.0")),
	), nil)

	d, err := a.Diff(context.Background(), "a", "b")
	require.NoError(t, err)

	assert.Equal(t, "a", d.From)
	assert.Equal(t, "b", d.To)
	assert.Equal(t, []domain.PackageSpec{{Name: "prettier", Version: "3.0.0"}}, d.Added)
	assert.Equal(t, []domain.PackageSpec{{Name: "typescript", Version: "5.0.0"}}, d.Removed)
	assert.Equal(t, []domain.VersionChange{{Name: "eslint", From: "8.0.0", To: "9.0.0"}}, d.Changed)
	assert.Empty(t, d.Unchanged)
}

func TestApp_Diff_ProfileNotFound(t *testing.T) {
	for _, names := range [][2]string{{"missing", "b"}, {"a", "missing"}} {
		a, m := setupAppTest(t, domain.Settings{})
		m.store.EXPECT().Load().Return(profileSet(
			named("a", domain.ManagerNPM, fixedNow, domain.PackageSet{}),
			named("b", domain.ManagerNPM, fixedNow, domain.PackageSet{}),
		), nil)

		_, err := a.Diff(context.Background(), names[0], names[1])
		require.ErrorIs(t, err, domain.ErrProfileNotFound)
	}
}

func TestApp_Delete(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("a", domain.ManagerNPM, fixedNow, domain.PackageSet{}),
		named("b", domain.ManagerNPM, fixedNow, domain.PackageSet{}),
	), nil)

	var stored domain.ProfileSet
	m.store.EXPECT().Save(gomock.Any()).DoAndReturn(func(set domain.ProfileSet) error {
		stored = set
		return nil
	})

	require.NoError(t, a.Delete(context.Background(), "a"))
	assert.Equal(t, []string{"b"}, stored.Keys())
}

func TestApp_Delete_ProfileNotFoundDoesNotRewrite(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.expectLock()

	m.store.EXPECT().Load().Return(profileSet(
		named("a", domain.ManagerNPM, fixedNow, domain.PackageSet{}),
	), nil)
	m.store.EXPECT().Save(gomock.Any()).Times(0)

	err := a.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestApp_List(t *testing.T) {
	a, m := setupAppTest(t, domain.Settings{})
	m.store.EXPECT().Load().Return(profileSet(
		named("old", domain.ManagerNPM, fixedNow.Add(-2*time.Hour), domain.PackageSet{}),
		named("new", domain.ManagerNPM, fixedNow, domain.PackageSet{}),
		named("mid", domain.ManagerNPM, fixedNow.Add(-time.Hour), domain.PackageSet{}),
	), nil)

	list, err := a.List(context.Background())
	require.NoError(t, err)

	names := make([]string, len(list))
	for i, p := range list {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"new", "mid", "old"}, names)
}

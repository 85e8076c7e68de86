package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsync/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/packsync/internal/adapters/lock"    //nolint:depguard // Wired in app layer
	"go.trai.ch/packsync/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/packsync/internal/adapters/manager" //nolint:depguard // Wired in app layer
	"go.trai.ch/packsync/internal/adapters/prompt"  //nolint:depguard // Wired in app layer
	"go.trai.ch/packsync/internal/adapters/script"  //nolint:depguard // Wired in app layer
	"go.trai.ch/packsync/internal/adapters/store"   //nolint:depguard // Wired in app layer
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
	"go.trai.ch/packsync/internal/engine/collector"
	"go.trai.ch/packsync/internal/engine/installer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI layer needs.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings domain.Settings
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			lock.NodeID,
			manager.NodeID,
			collector.NodeID,
			installer.NodeID,
			script.NodeID,
			prompt.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	profiles, err := graft.Dep[ports.ProfileStore](ctx)
	if err != nil {
		return nil, err
	}

	locker, err := graft.Dep[ports.Locker](ctx)
	if err != nil {
		return nil, err
	}

	pm, err := graft.Dep[ports.PackageManager](ctx)
	if err != nil {
		return nil, err
	}

	coll, err := graft.Dep[*collector.Collector](ctx)
	if err != nil {
		return nil, err
	}

	inst, err := graft.Dep[*installer.Installer](ctx)
	if err != nil {
		return nil, err
	}

	retry, err := graft.Dep[ports.RetryScriptWriter](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(profiles, locker, pm, coll, inst, retry, prompter, log, settings), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Settings: settings,
	}, nil
}

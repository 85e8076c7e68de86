package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Manager is one of the supported package manager variants.
type Manager string

const (
	// ManagerNPM is the npm package manager.
	ManagerNPM Manager = "npm"
	// ManagerYarn is the yarn (classic) package manager.
	ManagerYarn Manager = "yarn"
	// ManagerPNPM is the pnpm package manager.
	ManagerPNPM Manager = "pnpm"
)

// DetectionOrder is the order in which managers are probed when none is given.
var DetectionOrder = []Manager{ManagerNPM, ManagerYarn, ManagerPNPM}

// commandSet is the per-variant command template table.
type commandSet struct {
	list    []string
	probe   func(name string) []string
	latest  func(name string) []string
	install func(name, version string) []string
}

var commandTable = map[Manager]commandSet{
	ManagerNPM: {
		list: []string{"list", "-g", "--depth=0", "--json"},
		probe: func(name string) []string {
			return []string{"list", "-g", name, "--depth=0"}
		},
		latest: func(name string) []string {
			return []string{"view", name, "version", "--json"}
		},
		install: func(name, version string) []string {
			return []string{"install", "-g", name + "@" + version}
		},
	},
	ManagerYarn: {
		list: []string{"global", "list", "--json"},
		probe: func(name string) []string {
			return []string{"list", "-g", name, "--depth=0"}
		},
		latest: func(name string) []string {
			return []string{"info", name, "version", "--json"}
		},
		install: func(name, version string) []string {
			return []string{"global", "add", name + "@" + version}
		},
	},
	ManagerPNPM: {
		list: []string{"list", "-g", "--depth=0", "--json"},
		probe: func(name string) []string {
			return []string{"list", "-g", name, "--depth=0"}
		},
		latest: func(name string) []string {
			return []string{"view", name, "version", "--json"}
		},
		install: func(name, version string) []string {
			return []string{"add", "-g", name + "@" + version}
		},
	},
}

// ParseManager converts a user-supplied name into a Manager.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseManager(s string) (Manager, error) {
	m := Manager(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := commandTable[m]; !ok {
		return "", zerr.With(zerr.Wrap(ErrUnknownManager, "invalid package manager "+strconv.Quote(s)), "manager", s)
	}
	return m, nil
}

// NormalizeManager converts a stored name into a Manager, falling back to npm.
func NormalizeManager(s string) Manager {
	m, err := ParseManager(s)
	if err != nil {
		return ManagerNPM
	}
	return m
}

// Valid reports whether m is one of the supported variants.
func (m Manager) Valid() bool {
	_, ok := commandTable[m]
	return ok
}

// String returns the manager's executable name.
func (m Manager) String() string {
	return string(m)
}

func (m Manager) commands() commandSet {
	if cs, ok := commandTable[m]; ok {
		return cs
	}
	return commandTable[ManagerNPM]
}

// VersionCommand returns the command printing the manager's own version.
func (m Manager) VersionCommand() Command {
	return Command{Name: m.String(), Args: []string{"--version"}, Timeout: ProbeTimeout}
}

// ListCommand returns the command listing globally installed packages.
func (m Manager) ListCommand() Command {
	return Command{
		Name:           m.String(),
		Args:           append([]string(nil), m.commands().list...),
		Timeout:        ListTimeout,
		MaxOutputBytes: MaxOutputBytes,
	}
}

// ProbeCommand returns the command that succeeds only if name is installed globally.
func (m Manager) ProbeCommand(name string) Command {
	return Command{
		Name:           m.String(),
		Args:           m.commands().probe(name),
		Timeout:        ProbeTimeout,
		MaxOutputBytes: MaxOutputBytes,
	}
}

// LatestCommand returns the command querying the latest published version of name.
func (m Manager) LatestCommand(name string) Command {
	return Command{
		Name:           m.String(),
		Args:           m.commands().latest(name),
		Timeout:        LatestTimeout,
		MaxOutputBytes: MaxOutputBytes,
	}
}

// InstallCommand returns the command installing name@version globally.
func (m Manager) InstallCommand(name, version string) Command {
	return Command{
		Name:           m.String(),
		Args:           m.commands().install(name, version),
		Timeout:        InstallTimeout,
		MaxOutputBytes: MaxOutputBytes,
	}
}

// NodeVersionCommand returns the command printing the Node.js runtime version.
func NodeVersionCommand() Command {
	return Command{Name: "node", Args: []string{"--version"}, Timeout: ProbeTimeout}
}

// Package manager drives npm, yarn and pnpm through the executor port.
package manager

import (
	"context"
	"strings"

	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.PackageManager on top of a ports.Executor.
type Client struct {
	exec ports.Executor
}

// NewClient creates a Client running commands through exec.
func NewClient(exec ports.Executor) *Client {
	return &Client{exec: exec}
}

// Detect returns the first manager in domain.DetectionOrder whose version
// command succeeds, or npm when none does.
func (c *Client) Detect(ctx context.Context) domain.Manager {
	for _, m := range domain.DetectionOrder {
		if _, err := c.exec.Run(ctx, m.VersionCommand()); err == nil {
			return m
		}
	}
	return domain.ManagerNPM
}

// Version returns the manager's own version string.
func (c *Client) Version(ctx context.Context, m domain.Manager) (string, error) {
	out, err := c.exec.Run(ctx, m.VersionCommand())
	if err != nil {
		return "", zerr.With(err, "manager", m.String())
	}
	return strings.TrimSpace(string(out)), nil
}

// NodeVersion returns the Node.js runtime version.
func (c *Client) NodeVersion(ctx context.Context) (string, error) {
	out, err := c.exec.Run(ctx, domain.NodeVersionCommand())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ListGlobal returns the globally installed packages as reported by m.
func (c *Client) ListGlobal(ctx context.Context, m domain.Manager) (domain.PackageSet, error) {
	out, err := c.exec.Run(ctx, m.ListCommand())
	if err != nil {
		return domain.PackageSet{}, zerr.With(err, "manager", m.String())
	}

	if m == domain.ManagerYarn {
		return parseYarnList(out), nil
	}

	set, err := parseDependencyTree(out)
	if err != nil {
		return domain.PackageSet{}, zerr.With(zerr.Wrap(err, "cannot parse "+m.String()+" list output"), "manager", m.String())
	}
	return set, nil
}

// IsInstalled reports whether the probe command for name succeeds.
func (c *Client) IsInstalled(ctx context.Context, m domain.Manager, name string) bool {
	_, err := c.exec.Run(ctx, m.ProbeCommand(name))
	return err == nil
}

// LatestVersion resolves the latest published version of name.
func (c *Client) LatestVersion(ctx context.Context, m domain.Manager, name string) (string, error) {
	out, err := c.exec.Run(ctx, m.LatestCommand(name))
	if err != nil {
		resolveErr := zerr.Wrap(domain.ErrVersionResolutionFailed, "cannot resolve latest version of "+name)
		return "", zerr.With(zerr.With(resolveErr, "package", name), "reason", err.Error())
	}

	version := parseVersionOutput(out)
	if version == "" {
		resolveErr := zerr.Wrap(domain.ErrVersionResolutionFailed, "empty version output for "+name)
		return "", zerr.With(resolveErr, "package", name)
	}
	return version, nil
}

// Install installs name@version globally.
func (c *Client) Install(ctx context.Context, m domain.Manager, name, version string) error {
	if _, err := c.exec.Run(ctx, m.InstallCommand(name, version)); err != nil {
		return zerr.With(err, "package", name+"@"+version)
	}
	return nil
}

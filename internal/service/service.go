// Package service manages the systemd user unit that runs the reaction
// daemon.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/HyDE-Project/hyde-ipc/internal/config"
)

// UnitName is the systemd user unit this package manages.
const UnitName = "hyde-ipc.service"

const unitTemplate = `[Unit]
Description=hyde-ipc reaction daemon
After=default.target

[Service]
ExecStart=%s react -c %s --watch
Restart=always
StandardOutput=journal
StandardError=journal

[Install]
WantedBy=default.target
`

// Manager wraps the systemctl and journalctl invocations for the user unit.
// Binary discovery and paths are overridable for tests.
type Manager struct {
	Systemctl  string
	Journalctl string
	UnitDir    string
	Executable func() (string, error)
	ConfigPath func() (string, error)
}

// NewManager returns a manager using the standard user unit directory.
func NewManager() *Manager {
	return &Manager{
		Systemctl:  "systemctl",
		Journalctl: "journalctl",
		UnitDir:    filepath.Join(xdg.ConfigHome, "systemd", "user"),
		Executable: os.Executable,
		ConfigPath: config.DefaultPath,
	}
}

// UnitPath returns the path the unit file is written to.
func (m *Manager) UnitPath() string {
	return filepath.Join(m.UnitDir, UnitName)
}

func (m *Manager) systemctl(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, m.Systemctl, append([]string{"--user"}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl --user %v: %v: %s", args, err, out)
	}
	return nil
}

func (m *Manager) systemctlOK(ctx context.Context, args ...string) bool {
	cmd := exec.CommandContext(ctx, m.Systemctl, append([]string{"--user"}, args...)...)
	return cmd.Run() == nil
}

// WriteUnit renders and writes the unit file, creating the directory as
// needed.
func (m *Manager) WriteUnit() error {
	bin, err := m.Executable()
	if err != nil {
		return fmt.Errorf("locate binary: %w", err)
	}
	cfg, err := m.ConfigPath()
	if err != nil {
		return fmt.Errorf("config path: %w", err)
	}
	if err := os.MkdirAll(m.UnitDir, 0o755); err != nil {
		return fmt.Errorf("create unit dir: %w", err)
	}
	contents := fmt.Sprintf(unitTemplate, bin, cfg)
	if err := os.WriteFile(m.UnitPath(), []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write unit file: %w", err)
	}
	return nil
}

// Install writes the unit file, then enables and starts the service.
func (m *Manager) Install(ctx context.Context) error {
	if err := m.WriteUnit(); err != nil {
		return err
	}
	if err := m.systemctl(ctx, "daemon-reload"); err != nil {
		return err
	}
	if err := m.systemctl(ctx, "enable", UnitName); err != nil {
		return err
	}
	return m.systemctl(ctx, "restart", UnitName)
}

// Uninstall stops and disables the service, then removes the unit file.
// A stop failure is not fatal; the unit may already be gone.
func (m *Manager) Uninstall(ctx context.Context) error {
	_ = m.systemctl(ctx, "stop", UnitName)
	_ = m.systemctl(ctx, "disable", UnitName)
	if err := os.Remove(m.UnitPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove unit file: %w", err)
	}
	return m.systemctl(ctx, "daemon-reload")
}

// Start starts the service.
func (m *Manager) Start(ctx context.Context) error {
	return m.systemctl(ctx, "start", UnitName)
}

// Stop stops the service.
func (m *Manager) Stop(ctx context.Context) error {
	return m.systemctl(ctx, "stop", UnitName)
}

// Restart restarts the service.
func (m *Manager) Restart(ctx context.Context) error {
	return m.systemctl(ctx, "restart", UnitName)
}

// IsActive reports whether the service is running.
func (m *Manager) IsActive(ctx context.Context) bool {
	return m.systemctlOK(ctx, "is-active", UnitName)
}

// IsEnabled reports whether the service is enabled.
func (m *Manager) IsEnabled(ctx context.Context) bool {
	return m.systemctlOK(ctx, "is-enabled", UnitName)
}

// EnsureInstalled installs the service unless it is already enabled and
// running with its unit file in place.
func (m *Manager) EnsureInstalled(ctx context.Context) error {
	if _, err := os.Stat(m.UnitPath()); err == nil &&
		m.IsEnabled(ctx) && m.IsActive(ctx) {
		return nil
	}
	return m.Install(ctx)
}

// InstallConfig copies a reactions file to the global config location and
// restarts the service so it takes effect.
func (m *Manager) InstallConfig(ctx context.Context, src string) (string, error) {
	dest, err := m.ConfigPath()
	if err != nil {
		return "", fmt.Errorf("config path: %w", err)
	}
	if err := copyFile(src, dest); err != nil {
		return "", err
	}
	return dest, m.Restart(ctx)
}

// WatchLogs follows the unit's journal, writing to the given streams until
// journalctl exits or the context is canceled.
func (m *Manager) WatchLogs(ctx context.Context, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, m.Journalctl, "--user", "-fu", UnitName)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

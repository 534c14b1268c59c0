package health

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ongvang00/HealthManagementSystem/internal/app"
	"github.com/ongvang00/HealthManagementSystem/internal/config"
	"github.com/ongvang00/HealthManagementSystem/internal/logger"
	"github.com/ongvang00/HealthManagementSystem/internal/session"
	"github.com/ongvang00/HealthManagementSystem/internal/store"
)

// env is what a command needs to touch the data directory.
type env struct {
	cfg        *config.Config
	configPath string
	log        logger.Logger
	store      *store.Store
}

func (e *env) registryPath() string {
	return filepath.Join(e.cfg.DataDir, session.FileName)
}

func (e *env) registry() (*session.Registry, error) {
	return session.Load(e.registryPath())
}

// loadConfig resolves the config file and overlays the global flags.
func loadConfig() (*config.Config, string, error) {
	dir := strings.TrimSpace(dataDir)
	if dir == "" {
		d, err := app.DefaultDataDir()
		if err != nil {
			return nil, "", err
		}
		dir = d
	}
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = app.DefaultConfigPath(dir)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	cfg.MergeWithFlags(&dataDir, &logLevel, &noColor)
	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func withStore(cmd *cobra.Command, run func(*env) error) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.NewConsole(cmd.ErrOrStderr(), level, cfg.Color)

	if err := app.EnsureDataDir(cfg.DataDir); err != nil {
		return err
	}
	st, err := store.Open(cfg.DataDir, store.WithLogger(log))
	if err != nil {
		return err
	}
	log.Debugf("data directory %s", cfg.DataDir)
	return run(&env{cfg: cfg, configPath: path, log: log, store: st})
}

// withSession runs as --user when set, otherwise as the logged-in user.
func withSession(cmd *cobra.Command, run func(*env, session.Session) error) error {
	return withStore(cmd, func(e *env) error {
		reg, err := e.registry()
		if err != nil {
			return err
		}
		sess, err := resolveSession(reg)
		if err != nil {
			return err
		}
		return run(e, sess)
	})
}

func resolveSession(reg *session.Registry) (session.Session, error) {
	if u := strings.TrimSpace(userFlag); u != "" {
		if !reg.Exists(u) {
			return session.Session{}, fmt.Errorf("--user %q: %w", u, session.ErrUnknownUser)
		}
		return session.Session{Username: u}, nil
	}
	sess, ok := reg.Current()
	if !ok {
		return session.Session{}, session.ErrNoSession
	}
	return sess, nil
}

// Package config resolves runtime settings from defaults, an optional TOML
// file and NEURAPLAN_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/storage"
)

const (
	DefaultStartDate       = "2026-02-16"
	DefaultScheduleVersion = 2
	EnvConfigPath          = "NEURAPLAN_CONFIG"
)

type Config struct {
	StatePath       string `toml:"state_path"`
	Backend         string `toml:"backend"`
	StartDate       string `toml:"start_date"`
	ScheduleVersion int    `toml:"schedule_version"`
	LogLevel        string `toml:"log_level"`
	LogFile         string `toml:"log_file"`
	OwnerName       string `toml:"owner_name"`
	Color           bool   `toml:"color"`
}

// fileConfig mirrors Config with pointers so absent keys keep the default.
type fileConfig struct {
	StatePath       *string `toml:"state_path"`
	Backend         *string `toml:"backend"`
	StartDate       *string `toml:"start_date"`
	ScheduleVersion *int    `toml:"schedule_version"`
	LogLevel        *string `toml:"log_level"`
	LogFile         *string `toml:"log_file"`
	OwnerName       *string `toml:"owner_name"`
	Color           *bool   `toml:"color"`
}

func Default() Config {
	dir := homeDir()
	return Config{
		StatePath:       filepath.Join(dir, "state.json"),
		Backend:         storage.BackendJSON,
		StartDate:       DefaultStartDate,
		ScheduleVersion: DefaultScheduleVersion,
		LogLevel:        "info",
		LogFile:         filepath.Join(dir, "neuraplan.log"),
		Color:           true,
	}
}

// DefaultPath is where the config file lives unless NEURAPLAN_CONFIG says
// otherwise.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	return filepath.Join(homeDir(), "config.toml")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".neuraplan"
	}
	return filepath.Join(home, ".neuraplan")
}

// Load layers the file at path (missing is fine) and the environment over
// the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg, err := FromFile(Default(), path)
	if err != nil {
		return Config{}, err
	}
	cfg = FromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func FromFile(base Config, path string) (Config, error) {
	cfg := base
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	setString(&cfg.StatePath, fc.StatePath)
	setString(&cfg.Backend, fc.Backend)
	setString(&cfg.StartDate, fc.StartDate)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFile, fc.LogFile)
	setString(&cfg.OwnerName, fc.OwnerName)
	if fc.ScheduleVersion != nil && *fc.ScheduleVersion > 0 {
		cfg.ScheduleVersion = *fc.ScheduleVersion
	}
	if fc.Color != nil {
		cfg.Color = *fc.Color
	}
	return cfg, nil
}

// SaveSchedule records the schedule identity in the file at path, keeping
// any other keys already there. The next Load reconciles to it.
func SaveSchedule(path, startDate string, version int) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("config: no config path")
	}
	if _, err := calendar.ParseDateKey(startDate); err != nil {
		return fmt.Errorf("config: start_date: %w", err)
	}
	if version <= 0 {
		return fmt.Errorf("config: schedule_version must be positive, got %d", version)
	}

	doc := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read config %s: %w", path, err)
	}
	doc["start_date"] = startDate
	doc["schedule_version"] = version

	out, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("NEURAPLAN_STATE_PATH"); ok {
		cfg.StatePath = v
	}
	if v, ok := getEnvString("NEURAPLAN_BACKEND"); ok {
		cfg.Backend = v
	}
	if v, ok := getEnvString("NEURAPLAN_START_DATE"); ok {
		cfg.StartDate = v
	}
	if v, ok := getEnvInt("NEURAPLAN_SCHEDULE_VERSION"); ok && v > 0 {
		cfg.ScheduleVersion = v
	}
	if v, ok := getEnvString("NEURAPLAN_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("NEURAPLAN_LOG_FILE"); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
	if v, ok := getEnvString("NEURAPLAN_OWNER"); ok {
		cfg.OwnerName = v
	}
	if v, ok := getEnvBool("NEURAPLAN_COLOR"); ok {
		cfg.Color = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Color = false
	}
	return cfg
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Backend) {
	case storage.BackendJSON, storage.BackendSQLite:
	default:
		return fmt.Errorf("config: backend %q: %w", c.Backend, storage.ErrUnknownBackend)
	}
	if strings.TrimSpace(c.StatePath) == "" {
		return errors.New("config: state_path is required")
	}
	if _, err := calendar.ParseDateKey(c.StartDate); err != nil {
		return fmt.Errorf("config: start_date: %w", err)
	}
	if c.ScheduleVersion <= 0 {
		return fmt.Errorf("config: schedule_version must be positive, got %d", c.ScheduleVersion)
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

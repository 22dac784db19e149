package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"task-tracker/internal/domain"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds all configuration options for the task tracker application
type Config struct {
	Storage     StorageConfig
	Display     DisplayConfig
	Query       QueryConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// StorageConfig holds persistence-related configuration
type StorageConfig struct {
	Backend         string        `env:"TASKS_STORAGE_BACKEND"`
	Dir             string        `env:"TASKS_DATA_DIR"`
	DBFilename      string        `env:"TASKS_DB_FILENAME"`
	Key             string        `env:"TASKS_STORAGE_KEY"`
	WriteTimeout    time.Duration `env:"TASKS_WRITE_TIMEOUT"`
	DirPermissions  uint32        `env:"TASKS_DIR_PERMISSIONS"`
	PreserveCorrupt bool          `env:"TASKS_PRESERVE_CORRUPT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `env:"TASKS_DATE_FORMAT"`
	TitleWidth int    `env:"TASKS_TITLE_WIDTH"`
}

// QueryConfig holds the default list ordering
type QueryConfig struct {
	DefaultSortBy string `env:"TASKS_DEFAULT_SORT"`
	DefaultOrder  string `env:"TASKS_DEFAULT_ORDER"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength int `env:"TASKS_TITLE_MAX"`
	NotesMaxLength int `env:"TASKS_NOTES_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TASKS_APP_TIMEOUT"`
	Verbose bool          `env:"TASKS_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".tasks")

	return &Config{
		Storage: StorageConfig{
			Backend:         BackendSQLite,
			Dir:             defaultDir,
			DBFilename:      "tasks.db",
			Key:             "dsa-tasks",
			WriteTimeout:    5 * time.Second,
			DirPermissions:  0700,
			PreserveCorrupt: true,
		},
		Display: DisplayConfig{
			DateFormat: "Jan 2, 2006",
			TitleWidth: 40,
		},
		Query: QueryConfig{
			DefaultSortBy: string(domain.SortByDueDate),
			DefaultOrder:  string(domain.OrderAsc),
		},
		Validation: ValidationConfig{
			TitleMaxLength: 200,
			NotesMaxLength: 2000,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.DBFilename)
}

// GetWriteTimeout returns the timeout applied to each save
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Storage.WriteTimeout
}

// DefaultSortOptions returns the configured list ordering
func (c *Config) DefaultSortOptions() domain.SortOptions {
	opts := domain.DefaultSortOptions()
	if by, err := domain.ParseSortBy(c.Query.DefaultSortBy); err == nil {
		opts.SortBy = by
	}
	if order, err := domain.ParseSortOrder(c.Query.DefaultOrder); err == nil {
		opts.Order = order
	}
	return opts
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("TASKS_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = strings.ToLower(backend)
	}
	if dir := os.Getenv("TASKS_DATA_DIR"); dir != "" {
		c.Storage.Dir = expandHome(dir)
	}
	if filename := os.Getenv("TASKS_DB_FILENAME"); filename != "" {
		c.Storage.DBFilename = filename
	}
	if key := os.Getenv("TASKS_STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}
	if timeout := os.Getenv("TASKS_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}
	if perms := os.Getenv("TASKS_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}
	if preserve := os.Getenv("TASKS_PRESERVE_CORRUPT"); preserve != "" {
		c.Storage.PreserveCorrupt = ParseBoolWithFallback(preserve, c.Storage.PreserveCorrupt)
	}

	// Display configuration
	if format := os.Getenv("TASKS_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if width := os.Getenv("TASKS_TITLE_WIDTH"); width != "" {
		c.Display.TitleWidth = ParseIntWithFallback(width, c.Display.TitleWidth)
	}

	// Query configuration
	if sortBy := os.Getenv("TASKS_DEFAULT_SORT"); sortBy != "" {
		c.Query.DefaultSortBy = sortBy
	}
	if order := os.Getenv("TASKS_DEFAULT_ORDER"); order != "" {
		c.Query.DefaultOrder = order
	}

	// Validation configuration
	if maxLen := os.Getenv("TASKS_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}
	if maxLen := os.Getenv("TASKS_NOTES_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.NotesMaxLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("TASKS_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TASKS_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of sqlite, file, memory"}
	}
	if c.Storage.Backend != BackendMemory && c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.DBFilename == "" {
		return &ConfigError{Field: "storage.db_filename", Message: "database filename cannot be empty"}
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return &ConfigError{Field: "storage.key", Message: "storage key cannot be empty"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.TitleWidth < 10 {
		return &ConfigError{Field: "display.title_width", Message: "title width must be at least 10"}
	}

	// Validate query configuration
	if _, err := domain.ParseSortBy(c.Query.DefaultSortBy); err != nil {
		return &ConfigError{Field: "query.default_sort", Message: "sort must be one of dueDate, priority, created"}
	}
	if _, err := domain.ParseSortOrder(c.Query.DefaultOrder); err != nil {
		return &ConfigError{Field: "query.default_order", Message: "order must be asc or desc"}
	}

	// Validate validation configuration
	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.NotesMaxLength < 0 {
		return &ConfigError{Field: "validation.notes_max_length", Message: "notes maximum length cannot be negative"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/output"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/parser"
)

type Config struct {
	// Workbook
	FilePath string
	Password string
	Format   string
	Sheets   []string

	// Preview
	PreviewRows int
	MaxColWidth int

	// Application
	AppEnv       string
	LogLevel     string
	FailExitCode bool
}

// LoadEnvFile loads variables from .env files without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	var existing []string
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			existing = append(existing, name)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		FilePath: getEnv("XLINSPECT_FILE", xlinspect.DefaultPath),
		Password: getEnv("XLINSPECT_PASSWORD", ""),
		Format:   getEnv("XLINSPECT_FORMAT", string(parser.FormatAuto)),

		PreviewRows: getEnvInt("XLINSPECT_PREVIEW_ROWS", xlinspect.DefaultPreviewRows),
		MaxColWidth: getEnvInt("XLINSPECT_MAX_COLWIDTH", output.DefaultMaxColWidth),

		AppEnv:       getEnv("APP_ENV", "production"),
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		FailExitCode: getEnvBool("XLINSPECT_FAIL_EXIT_CODE", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BindFlags registers command-line flags that override cfg. Flag
// defaults are the values already loaded from the environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.PreviewRows, "rows", "n", c.PreviewRows, "Number of data rows to preview per sheet (at least 1)")
	fs.StringArrayVarP(&c.Sheets, "sheet", "s", c.Sheets, "Preview only this sheet (repeatable)")
	fs.StringVar(&c.Password, "password", c.Password, "Password for an encrypted workbook")
	fs.StringVar(&c.Format, "format", c.Format, "Workbook format: auto, xlsx, xls")
	fs.IntVar(&c.MaxColWidth, "max-colwidth", c.MaxColWidth, "Truncate cells wider than this")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Diagnostics level on stderr: debug, info, warn, error")
	fs.BoolVar(&c.FailExitCode, "fail-exit-code", c.FailExitCode, "Exit with status 1 when inspection fails")
}

func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("XLINSPECT_FILE must not be empty")
	}
	if c.PreviewRows < 1 {
		return fmt.Errorf("preview rows must be at least 1, got %d", c.PreviewRows)
	}
	if c.MaxColWidth < 0 {
		return fmt.Errorf("max column width must not be negative, got %d", c.MaxColWidth)
	}
	if _, err := parser.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// Options converts the configuration into inspection options.
func (c *Config) Options() (xlinspect.Options, error) {
	if err := c.Validate(); err != nil {
		return xlinspect.Options{}, err
	}
	format, err := parser.ParseFormat(c.Format)
	if err != nil {
		return xlinspect.Options{}, err
	}
	return xlinspect.Options{
		Path:        c.FilePath,
		PreviewRows: c.PreviewRows,
		Sheets:      c.Sheets,
		Password:    c.Password,
		Format:      format,
		MaxColWidth: c.MaxColWidth,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

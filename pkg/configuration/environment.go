package configuration

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/pharma-admin/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

// LoadEnv loads the given env files from the working directory, falling back
// to the directory holding go.mod when none of them exist there.
func LoadEnv(envFiles []string) (int, error) {
	existing := existingFiles("", envFiles)
	if len(existing) == 0 {
		if root, ok := moduleRoot(); ok {
			existing = existingFiles(root, envFiles)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

func existingFiles(dir string, envFiles []string) []string {
	out := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		path := file
		if dir != "" {
			path = filepath.Join(dir, file)
		}
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			out = append(out, path)
		}
	}
	return out
}

func moduleRoot() (string, bool) {
	wd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		if parent := filepath.Dir(dir); parent == dir {
			return "", false
		}
	}
}

type APIOptions struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8000/"`
	Token   string        `env:"API_TOKEN"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"0s"`
}

// Validate checks that the base URL is absolute.
func (a *APIOptions) Validate() error {
	u, err := url.Parse(strings.TrimSpace(a.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API_BASE_URL: %q", a.BaseURL)
	}
	if a.Timeout < 0 {
		return fmt.Errorf("API_TIMEOUT must be non-negative, got %s", a.Timeout)
	}
	return nil
}

// TokenExpiry reads the exp claim of API_TOKEN without verifying the
// signature. ok is false when there is no token or it carries no exp claim.
func (a *APIOptions) TokenExpiry() (exp time.Time, ok bool, err error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(a.Token), "Bearer "))
	if raw == "" {
		return time.Time{}, false, nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false, fmt.Errorf("API_TOKEN is not a JWT: %w", err)
	}
	date, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, err
	}
	if date == nil {
		return time.Time{}, false, nil
	}
	return date.Time, true, nil
}

type MockAPIOptions struct {
	Port        int      `env:"MOCK_API_PORT" envDefault:"8000"`
	Origins     []string `env:"MOCK_API_ORIGINS" envSeparator:"," envDefault:"*"`
	MetricsPath string   `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type Configuration struct {
	API     APIOptions
	MockAPI MockAPIOptions

	RequestIDHeader  string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	PageSize         int    `env:"PAGE_SIZE" envDefault:"10"`
	MaxPageSize      int    `env:"MAX_PAGE_SIZE" envDefault:"100"`
	MaxUploadSize    int64  `env:"MAX_UPLOAD_SIZE" envDefault:"5242880"`
	Currency         string `env:"CURRENCY" envDefault:"INR"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"error"`
	LogPath          string `env:"LOG_PATH"`
	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	return logging.ParseLevel(c.LogLevel)
}

func Use() *Configuration {
	return singleton()
}

// Load builds a fresh configuration from the given env files and the
// process environment. Most callers want Use.
func Load(envFiles ...string) (*Configuration, error) {
	c := &Configuration{}
	if err := c.load(envFiles); err != nil {
		c.Unload()
		return nil, err
	}
	return c, nil
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 && len(envFiles) > 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	if err := c.API.Validate(); err != nil {
		return err
	}
	if err := c.validatePaging(); err != nil {
		return err
	}
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown CURRENCY=%q", c.Currency)
	}
	if !strings.HasSuffix(c.API.BaseURL, "/") {
		c.API.BaseURL += "/"
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger
	return nil
}

func (c *Configuration) validatePaging() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.PageSize > c.MaxPageSize {
		return fmt.Errorf("PAGE_SIZE=%d exceeds MAX_PAGE_SIZE=%d", c.PageSize, c.MaxPageSize)
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive, got %d", c.MaxUploadSize)
	}
	return nil
}

// Unload releases the log file, if any.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}

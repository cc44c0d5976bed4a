package engine

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/germanamz/chatbridge/pkg/providers/model"
)

// DefaultEndpoint is used when the configuration names no endpoint.
const DefaultEndpoint = "https://api.openai.com/v1/chat/completions"

// Config is the top-level engine configuration.
type Config struct {
	Endpoint string            `yaml:"endpoint"`
	APIKey   string            `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Headers  map[string]string `yaml:"headers"`
	Model    model.Config      `yaml:"model"`
	Share    ShareConfig       `yaml:"share"`
}

// ShareConfig holds transcript sharing settings. Empty fields fall back to
// the public ShareGPT service.
type ShareConfig struct {
	URL       string `yaml:"url"`
	LinkBase  string `yaml:"link_base"`
	AvatarURL string `yaml:"avatar_url"`
}

// DefaultConfig returns the configuration LoadConfig starts from.
func DefaultConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Model:    model.Default(),
	}
}

// LoadConfig reads a YAML file and returns a Config layered over
// DefaultConfig.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing. This allows API keys to be kept in environment variables
// (e.g. loaded from a .env file) rather than committed in the config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("engine: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("engine: config: endpoint is required")
	}

	if err := checkHTTPURL(c.Endpoint); err != nil {
		return fmt.Errorf("engine: config: endpoint: %w", err)
	}

	if c.Model.Model == "" {
		return fmt.Errorf("engine: config: model.model is required")
	}

	if c.Share.URL != "" {
		if err := checkHTTPURL(c.Share.URL); err != nil {
			return fmt.Errorf("engine: config: share.url: %w", err)
		}
	}

	return nil
}

func checkHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("missing host")
	}

	return nil
}

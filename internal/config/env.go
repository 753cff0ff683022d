package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config contains all configuration parameters for the application.
// Values come from the environment; a YAML file passed with --config
// overrides whatever it sets.
type Config struct {
	SolanaRPCURL     string        `envconfig:"SOLANA_RPC_URL" default:"https://api.mainnet-beta.solana.com" yaml:"solana_rpc_url"`
	Commitment       string        `envconfig:"SOLANA_COMMITMENT" default:"confirmed" yaml:"commitment"`
	CheckInterval    time.Duration `envconfig:"CHECK_INTERVAL" default:"500ms" yaml:"check_interval"`
	InputFile        string        `envconfig:"INPUT_FILE" default:"skey.txt" yaml:"input_file"`
	PrivateKeysFile  string        `envconfig:"PRIVATE_KEYS_FILE" default:"skey.txt" yaml:"private_keys_file"`
	PublicKeysFile   string        `envconfig:"PUBLIC_KEYS_FILE" default:"pkey.txt" yaml:"public_keys_file"`
	FundedFile       string        `envconfig:"FUNDED_FILE" default:"funded.txt" yaml:"funded_file"`
	EmptyFile        string        `envconfig:"EMPTY_FILE" default:"empty.txt" yaml:"empty_file"`
	QRDir            string        `envconfig:"QR_DIR" yaml:"qr_dir"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info" yaml:"log_level"`
	LogFile          string        `envconfig:"LOG_FILE" yaml:"log_file"`
	HideSecretsInLog bool          `envconfig:"HIDE_SECRETS" default:"false" yaml:"hide_secrets"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables and the optional YAML file.
func Init(yamlPath string) error {
	c, err := Load(yamlPath)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// Load builds a Config from the environment, then applies yamlPath on top
// when it is not empty.
func Load(yamlPath string) (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if yamlPath != "" {
		if err := overlayYAML(c, yamlPath); err != nil {
			return nil, err
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the values a run cannot start without
func (c *Config) Validate() error {
	if c.SolanaRPCURL == "" {
		return fmt.Errorf("SOLANA_RPC_URL must not be empty")
	}
	if c.CheckInterval < 0 {
		return fmt.Errorf("CHECK_INTERVAL must not be negative")
	}
	if c.FundedFile == "" || c.EmptyFile == "" {
		return fmt.Errorf("FUNDED_FILE and EMPTY_FILE must be set")
	}
	if c.FundedFile == c.EmptyFile {
		return fmt.Errorf("FUNDED_FILE and EMPTY_FILE must differ")
	}
	if c.PrivateKeysFile == c.PublicKeysFile {
		return fmt.Errorf("PRIVATE_KEYS_FILE and PUBLIC_KEYS_FILE must differ")
	}
	return nil
}

func overlayYAML(c *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	// Decoding into the populated struct only touches keys present in the file
	if err := yaml.NewDecoder(f).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config yaml %q: %w", path, err)
	}
	return nil
}

// Package hsm reads public-key material from PKCS#11 security tokens.
//
// Only the raw public parameters (RSA modulus/exponent, EC curve/point) are
// read from the token; they are rebuilt into key objects through the key
// codec. Private keys never leave the token.
package hsm

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotAvailable indicates PKCS#11 support was compiled out (no cgo).
var ErrNotAvailable = errors.New("PKCS#11 support requires cgo")

// Config represents the YAML configuration for a PKCS#11 token.
type Config struct {
	Type   string   `yaml:"type"`
	PKCS11 Settings `yaml:"pkcs11"`
}

// Settings holds PKCS#11 specific configuration.
type Settings struct {
	// Lib is the path to the PKCS#11 library (.so/.dylib/.dll)
	Lib string `yaml:"lib"`

	// Token identifies the token by label (recommended)
	Token string `yaml:"token"`

	// Slot identifies the token by slot ID (less portable)
	Slot *uint `yaml:"slot"`

	// KeyLabel is the CKA_LABEL of the public key to read
	KeyLabel string `yaml:"key_label"`

	// PinEnv is the name of the environment variable containing the PIN.
	// Public objects on most tokens are readable without a PIN; leave
	// empty to skip login.
	PinEnv string `yaml:"pin_env"`
}

// LoadConfig loads token configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse token config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid token config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Type != "pkcs11" {
		return fmt.Errorf("unsupported token type: %s (only 'pkcs11' is supported)", c.Type)
	}
	if c.PKCS11.Lib == "" {
		return errors.New("pkcs11.lib is required")
	}
	if c.PKCS11.Token == "" && c.PKCS11.Slot == nil {
		return errors.New("one of pkcs11.token or pkcs11.slot is required")
	}
	if c.PKCS11.KeyLabel == "" {
		return errors.New("pkcs11.key_label is required")
	}
	return nil
}

// PIN resolves the token PIN from the configured environment variable.
// Returns empty if no PIN is configured.
func (c *Config) PIN() string {
	if c.PKCS11.PinEnv == "" {
		return ""
	}
	return os.Getenv(c.PKCS11.PinEnv)
}

package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"cashu-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/tyler-smith/go-bip39"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Wallet WalletConfig `mapstructure:"wallet"`
	Nostr  NostrConfig  `mapstructure:"nostr"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"` // debug, release, test
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// Addr returns the listen address string.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type WalletConfig struct {
	// Mnemonic is the BIP-39 seed phrase. Empty means generate one and
	// persist it to EnvFile.
	Mnemonic string `mapstructure:"mnemonic"`
	// DBPath is the SQLite wallet database file.
	DBPath string `mapstructure:"db_path"`
	// WalletDir is where the wallet engine keeps its own proof database.
	WalletDir string `mapstructure:"wallet_dir"`
	// DefaultMint is the primary mint URL.
	DefaultMint string `mapstructure:"default_mint"`
	Unit        string `mapstructure:"unit"`
	// EnvFile is where a generated mnemonic is persisted.
	EnvFile string `mapstructure:"env_file"`
	// PollInterval controls the quote watcher cadence.
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

type NostrConfig struct {
	// PrivateKey identifies the server on networked transports.
	PrivateKey string `mapstructure:"private_key"`
	// Relays is a comma-separated relay list.
	Relays string `mapstructure:"relays"`
	// AllowedPubkeys is a comma-separated caller allow-list; empty allows all.
	AllowedPubkeys string `mapstructure:"allowed_pubkeys"`
}

// RelayList returns the parsed relay URLs.
func (n NostrConfig) RelayList() []string {
	return splitList(n.Relays)
}

// PubkeyList returns the parsed caller allow-list.
func (n NostrConfig) PubkeyList() []string {
	return splitList(n.AllowedPubkeys)
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type RedisConfig struct {
	// Enabled gates the optional rate-limiting dependency.
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CWS_ (Cashu Wallet Service).
// Nested keys use underscore: CWS_WALLET_MNEMONIC, CWS_SERVER_PORT, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.name", "cashu-wallet-service")
	v.SetDefault("server.version", "0.1.0")
	v.SetDefault("wallet.mnemonic", "")
	v.SetDefault("wallet.db_path", "./data/wallet.db")
	v.SetDefault("wallet.wallet_dir", "./data/engine")
	v.SetDefault("wallet.default_mint", "")
	v.SetDefault("wallet.unit", "sat")
	v.SetDefault("wallet.env_file", ".env")
	v.SetDefault("wallet.poll_interval", "5s")
	v.SetDefault("nostr.private_key", "")
	v.SetDefault("nostr.relays", "")
	v.SetDefault("nostr.allowed_pubkeys", "")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CWS_WALLET_MNEMONIC -> wallet.mnemonic
	v.SetEnvPrefix("CWS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

const mnemonicEnvKey = "CWS_WALLET_MNEMONIC"

// ResolveMnemonic ensures the wallet has a seed phrase. A configured phrase
// is validated and used as-is. Otherwise a fresh one is generated, validated
// and persisted to the env file exactly once; an entry already present in
// that file is authoritative and never overwritten.
func ResolveMnemonic(cfg *Config, log zerolog.Logger) error {
	if cfg.Wallet.Mnemonic != "" {
		if !bip39.IsMnemonicValid(cfg.Wallet.Mnemonic) {
			return apperror.ErrConfiguration("configured mnemonic is not a valid BIP-39 phrase", nil)
		}
		return nil
	}

	if existing, err := readEnvValue(cfg.Wallet.EnvFile, mnemonicEnvKey); err != nil {
		return apperror.ErrConfiguration("reading env file", err)
	} else if existing != "" {
		log.Warn().Str("file", cfg.Wallet.EnvFile).Msg("mnemonic already present in env file, using it")
		if !bip39.IsMnemonicValid(existing) {
			return apperror.ErrConfiguration("mnemonic in env file is not a valid BIP-39 phrase", nil)
		}
		cfg.Wallet.Mnemonic = existing
		return nil
	}

	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return apperror.ErrConfiguration("generating seed entropy", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return apperror.ErrConfiguration("generating mnemonic", err)
	}
	// Guard against a broken generator; this should never fire.
	if !bip39.IsMnemonicValid(mnemonic) {
		return apperror.ErrConfiguration("generated mnemonic failed validation", nil)
	}

	if err := appendEnvValue(cfg.Wallet.EnvFile, mnemonicEnvKey, mnemonic); err != nil {
		return apperror.ErrConfiguration("persisting mnemonic", err)
	}

	log.Info().Str("file", cfg.Wallet.EnvFile).Msg("generated new wallet mnemonic")
	cfg.Wallet.Mnemonic = mnemonic
	return nil
}

// readEnvValue scans an env file for KEY="value" or KEY=value lines.
func readEnvValue(path, key string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, key+"=") {
			continue
		}
		value := strings.TrimPrefix(line, key+"=")
		return strings.Trim(value, `"`), nil
	}
	return "", scanner.Err()
}

// appendEnvValue appends KEY="value" to the env file, creating it if needed.
func appendEnvValue(path, key, value string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s=%q\n", key, value); err != nil {
		return err
	}
	return nil
}

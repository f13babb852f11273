package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ProviderEndpoint is one wallet JSON-RPC endpoint from WALLET_PROVIDERS.
type ProviderEndpoint struct {
	Name string
	URL  string
}

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// AdminToken guards the /system endpoints; empty disables them.
	AdminToken string

	// Database URLs
	PostgresURL string
	RedisURL    string

	// Wallet
	WalletProviders        []ProviderEndpoint
	WalletPreferred        string
	WalletRequirePreferred bool
	WatchInterval          time.Duration

	// Chain
	RPCURL              string
	ChainID             int64
	ChainName           string
	ContractAddress     common.Address
	ReceiptPollInterval time.Duration
	TxWaitTimeout       time.Duration

	// Leaderboard
	LeaderboardSize          int
	LeaderboardQueueSize     int
	LeaderboardBatchSize     int
	LeaderboardFlushInterval time.Duration
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		WalletPreferred:        getEnv("WALLET_PREFERRED", "metamask"),
		WalletRequirePreferred: getEnvBool("WALLET_REQUIRE_PREFERRED", false),
		WatchInterval:          getEnvDuration("WATCH_INTERVAL", 2*time.Second),

		RPCURL:              getEnv("RPC_URL", ""),
		ChainID:             int64(getEnvInt("CHAIN_ID", 11155111)),
		ChainName:           getEnv("CHAIN_NAME", "Sepolia"),
		ReceiptPollInterval: getEnvDuration("RECEIPT_POLL_INTERVAL", 1*time.Second),
		TxWaitTimeout:       getEnvDuration("TX_WAIT_TIMEOUT", 0),

		LeaderboardSize:          getEnvInt("LEADERBOARD_SIZE", 10),
		LeaderboardQueueSize:     getEnvInt("LEADERBOARD_QUEUE_SIZE", 1000),
		LeaderboardBatchSize:     getEnvInt("LEADERBOARD_BATCH_SIZE", 50),
		LeaderboardFlushInterval: getEnvDuration("LEADERBOARD_FLUSH_INTERVAL", 1*time.Second),
	}

	// CORS
	cfg.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"))

	providers, err := parseProviders(getEnv("WALLET_PROVIDERS", "metamask=http://127.0.0.1:1248"))
	if err != nil {
		return nil, err
	}
	cfg.WalletProviders = providers

	// Critical configuration - fail if missing
	if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
		return nil, err
	}
	if cfg.RedisURL, err = getEnvRequired("REDIS_URL"); err != nil {
		return nil, err
	}
	contract, err := getEnvRequired("CONTRACT_ADDRESS")
	if err != nil {
		return nil, err
	}
	if !common.IsHexAddress(contract) {
		return nil, fmt.Errorf("CONTRACT_ADDRESS is not a valid address: %q", contract)
	}
	cfg.ContractAddress = common.HexToAddress(contract)

	return cfg, nil
}

// parseProviders reads "name=url,name=url". An entry without a name is
// called "wallet" (then "wallet-2", ...).
func parseProviders(raw string) ([]ProviderEndpoint, error) {
	var out []ProviderEndpoint
	for i, entry := range splitList(raw) {
		name, url, ok := strings.Cut(entry, "=")
		if !ok {
			name, url = "wallet", entry
			if i > 0 {
				name = fmt.Sprintf("wallet-%d", i+1)
			}
		}
		name, url = strings.TrimSpace(name), strings.TrimSpace(url)
		if name == "" || url == "" {
			return nil, fmt.Errorf("invalid WALLET_PROVIDERS entry: %q", entry)
		}
		out = append(out, ProviderEndpoint{Name: name, URL: url})
	}
	return out, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abstrakts/storefront-core/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
	// Environment tags logs and sentry events, e.g. "production"
	Environment string `mapstructure:"environment"`
}

// ChainConfig describes one network: its indexer and its RPC node
type ChainConfig struct {
	Name       string `mapstructure:"name"`
	AAEndpoint string `mapstructure:"aa_endpoint"`
	ChainID    string `mapstructure:"chain_id"`
	Protocol   string `mapstructure:"protocol"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
}

// RPCEndpoint returns the base URL of the chain RPC node
func (c ChainConfig) RPCEndpoint() string {
	protocol := c.Protocol
	if protocol == "" {
		protocol = "https"
	}
	if c.Port == 0 {
		return fmt.Sprintf("%s://%s", protocol, c.Host)
	}
	return fmt.Sprintf("%s://%s", protocol, net.JoinHostPort(c.Host, strconv.Itoa(c.Port)))
}

// TokenConfig describes a fungible token accepted for payment
type TokenConfig struct {
	Contract string `mapstructure:"contract"`
	Decimals int    `mapstructure:"decimals"`
}

// MarketConfig holds marketplace contract configuration
type MarketConfig struct {
	AtomicMarketContract string        `mapstructure:"atomic_market_contract"`
	AtomicAssetsContract string        `mapstructure:"atomic_assets_contract"`
	Marketplace          string        `mapstructure:"marketplace"`
	ReloadDelay          time.Duration `mapstructure:"reload_delay"`
	ShortReloadDelay     time.Duration `mapstructure:"short_reload_delay"`
	PageLimit            int           `mapstructure:"page_limit"`
	ShowcaseLimit        int           `mapstructure:"showcase_limit"`
	MaxShowcases         int           `mapstructure:"max_showcases"`
}

// WalletConfig holds the remote signer configuration
type WalletConfig struct {
	BridgeURL string        `mapstructure:"bridge_url"`
	APIKey    string        `mapstructure:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// MediaConfig holds IPFS gateway configuration
type MediaConfig struct {
	IPFSGateway  string   `mapstructure:"ipfs_gateway"`
	IPFSGateways []string `mapstructure:"ipfs_gateways"`
}

// OwnershipConfig holds the templates that act as access keys
type OwnershipConfig struct {
	KeyTemplateID       string `mapstructure:"key_template_id"`
	BotKeyTemplateID    string `mapstructure:"bot_key_template_id"`
	UnlockKeyTemplateID string `mapstructure:"unlock_key_template_id"`
}

// MessagingConfig holds NATS JetStream configuration for market events
type MessagingConfig struct {
	// NatsURL enables event publishing when set
	NatsURL        string        `mapstructure:"nats_url"`
	ConnectionName string        `mapstructure:"connection_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	// MaxRetryTime bounds the time spent retrying one indexer or RPC request
	MaxRetryTime time.Duration `mapstructure:"max_retry_time"`
}

// CacheConfig holds in-process cache configuration
type CacheConfig struct {
	SizeMB        int           `mapstructure:"size_mb"`
	CollectionTTL time.Duration `mapstructure:"collection_ttl"`
	AccountTTL    time.Duration `mapstructure:"account_ttl"`
}

// RateLimitConfig holds the limits for one upstream provider
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds rate limiter configuration
type RateLimiterConfig struct {
	// RedisURL enables the distributed limiter when set
	RedisURL                string                     `mapstructure:"redis_url"`
	RedisKeyPrefix          string                     `mapstructure:"redis_key_prefix"`
	EnableLocalFallback     bool                       `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64                    `mapstructure:"local_fallback_multiplier"`
	MaxWorkers              int                        `mapstructure:"max_workers"`
	MaxQueueSize            int                        `mapstructure:"max_queue_size"`
	Providers               map[string]RateLimitConfig `mapstructure:"providers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// AllowedOrigins restricts CORS, all origins when empty
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig         `mapstructure:",squash"`
	Server             ServerConfig           `mapstructure:"server"`
	Auth               AuthConfig             `mapstructure:"auth"`
	Chains             map[string]ChainConfig `mapstructure:"chains"`
	Tokens             map[string]TokenConfig `mapstructure:"tokens"`
	TokensRegistryPath string                 `mapstructure:"tokens_registry_path"`
	Market             MarketConfig           `mapstructure:"market"`
	Wallet             WalletConfig           `mapstructure:"wallet"`
	Media              MediaConfig            `mapstructure:"media"`
	Ownership          OwnershipConfig        `mapstructure:"ownership"`
	Messaging          MessagingConfig        `mapstructure:"messaging"`
	HTTP               HTTPConfig             `mapstructure:"http"`
	Cache              CacheConfig            `mapstructure:"cache"`
	RateLimiter        RateLimiterConfig      `mapstructure:"rate_limiter"`
}

// Chain returns the configuration of a network
func (c *APIConfig) Chain(key domain.ChainKey) (ChainConfig, error) {
	chain, ok := c.Chains[string(key)]
	if !ok {
		return ChainConfig{}, fmt.Errorf("%w: %s", domain.ErrUnknownChain, key)
	}
	return chain, nil
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("environment", "development")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("chains.xprnetwork.name", "XPR Network")
	v.SetDefault("chains.xprnetwork.aa_endpoint", "https://proton.api.atomicassets.io")
	v.SetDefault("chains.xprnetwork.chain_id", "384da888112027f0321850a169f737c33e53b388aad48b5adace4bab97f437e0")
	v.SetDefault("chains.xprnetwork.protocol", "https")
	v.SetDefault("chains.xprnetwork.host", "proton.eosusa.io")
	v.SetDefault("chains.xprnetwork-test.name", "XPR Network (Testnet)")
	v.SetDefault("chains.xprnetwork-test.aa_endpoint", "https://test.proton.api.atomicassets.io")
	v.SetDefault("chains.xprnetwork-test.chain_id", "71ee83bcf52142d61019d95f9cc5427ba6a0d7ff8accd9e2088ae2abeaf3d3dd")
	v.SetDefault("chains.xprnetwork-test.protocol", "https")
	v.SetDefault("chains.xprnetwork-test.host", "testnet.protonchain.com")
	v.SetDefault("market.atomic_market_contract", domain.ATOMIC_MARKET_CONTRACT)
	v.SetDefault("market.atomic_assets_contract", domain.ATOMIC_ASSETS_CONTRACT)
	v.SetDefault("market.marketplace", domain.DEFAULT_MARKETPLACE)
	v.SetDefault("market.reload_delay", domain.DEFAULT_RELOAD_DELAY)
	v.SetDefault("market.short_reload_delay", domain.DEFAULT_SHORT_RELOAD_DELAY)
	v.SetDefault("market.page_limit", domain.DEFAULT_PAGE_LIMIT)
	v.SetDefault("market.showcase_limit", 3)
	v.SetDefault("market.max_showcases", 3)
	v.SetDefault("wallet.timeout", "60s")
	v.SetDefault("media.ipfs_gateway", domain.DEFAULT_IPFS_GATEWAY)
	v.SetDefault("ownership.key_template_id", "97288")
	v.SetDefault("ownership.bot_key_template_id", "98644")
	v.SetDefault("ownership.unlock_key_template_id", "98646")
	v.SetDefault("messaging.connection_name", "storefront-api")
	v.SetDefault("messaging.max_reconnects", -1)
	v.SetDefault("messaging.reconnect_wait", "2s")
	v.SetDefault("http.timeout", "30s")
	v.SetDefault("http.max_retry_time", "1m")
	v.SetDefault("cache.size_mb", 32)
	v.SetDefault("cache.collection_ttl", "5m")
	v.SetDefault("cache.account_ttl", "30s")
	v.SetDefault("rate_limiter.enable_local_fallback", true)
	v.SetDefault("rate_limiter.local_fallback_multiplier", 1.0)
	v.SetDefault("rate_limiter.redis_key_prefix", "storefront:limiter:")
	v.SetDefault("rate_limiter.providers.atomic.requests_per_second", 10)
	v.SetDefault("rate_limiter.providers.atomic.burst", 10)
	v.SetDefault("rate_limiter.providers.chainrpc.requests_per_second", 20)
	v.SetDefault("rate_limiter.providers.chainrpc.burst", 20)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *APIConfig) validate() error {
	if len(c.Chains) == 0 {
		return errors.New("at least one chain must be configured")
	}
	for key, chain := range c.Chains {
		if chain.AAEndpoint == "" {
			return fmt.Errorf("chains.%s.aa_endpoint is required", key)
		}
		if chain.Host == "" {
			return fmt.Errorf("chains.%s.host is required", key)
		}
	}
	if c.Market.Marketplace == "" {
		return errors.New("market.marketplace is required")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Tokens
		"tokens_registry_path",
		// Market
		"market.atomic_market_contract",
		"market.atomic_assets_contract",
		"market.marketplace",
		"market.reload_delay",
		"market.short_reload_delay",
		"market.page_limit",
		"market.showcase_limit",
		"market.max_showcases",
		// Wallet
		"wallet.bridge_url",
		"wallet.api_key",
		"wallet.timeout",
		// Media
		"media.ipfs_gateway",
		"media.ipfs_gateways",
		// Ownership
		"ownership.key_template_id",
		"ownership.bot_key_template_id",
		"ownership.unlock_key_template_id",
		// Messaging
		"messaging.nats_url",
		"messaging.connection_name",
		"messaging.max_reconnects",
		"messaging.reconnect_wait",
		// HTTP and cache
		"http.timeout",
		"http.max_retry_time",
		"cache.size_mb",
		"cache.collection_ttl",
		"cache.account_ttl",
		// Rate limiter
		"rate_limiter.redis_url",
		"rate_limiter.redis_key_prefix",
		"rate_limiter.enable_local_fallback",
		"rate_limiter.local_fallback_multiplier",
		"rate_limiter.max_workers",
		"rate_limiter.max_queue_size",
	}

	// Per-chain keys, e.g. STOREFRONT_CHAINS_XPRNETWORK_TEST_AA_ENDPOINT
	for _, chain := range []domain.ChainKey{domain.ChainXPRNetwork, domain.ChainXPRNetworkTest} {
		for _, field := range []string{"name", "aa_endpoint", "chain_id", "protocol", "host", "port"} {
			commonKeys = append(commonKeys, fmt.Sprintf("chains.%s.%s", chain, field))
		}
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

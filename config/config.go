package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "KANOHA_CONFIG_FILE"

const (
	CartStorageMemory   = "memory"
	CartStorageRedis    = "redis"
	CartStoragePostgres = "postgres"
)

type catalog struct {
	File      string `mapstructure:"file"`
	StaticDir string `mapstructure:"static_dir"`
	PageSize  int    `mapstructure:"page_size"`
}

type cart struct {
	Storage       string `mapstructure:"storage"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

type theme struct {
	Default    string `mapstructure:"default"`
	Switchable bool   `mapstructure:"switchable"`
}

type submission struct {
	AckDelay time.Duration `mapstructure:"ack_delay"`
}

type brokerTLS struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

type broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	SubmissionsTopic   string    `mapstructure:"submissions_topic"`
	TLS                brokerTLS `mapstructure:"tls"`
}

type Config struct {
	LogLevel       string        `mapstructure:"log_level"`
	HTTPServerAddr string        `mapstructure:"http_server_addr"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	SQLDB          string        `mapstructure:"sql_db"`
	Catalog        catalog       `mapstructure:"catalog"`
	Cart           cart          `mapstructure:"cart"`
	Theme          theme         `mapstructure:"theme"`
	Submission     submission    `mapstructure:"submission"`
	Broker         broker        `mapstructure:"broker"`
}

func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads the YAML config at path on top of the defaults.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server_addr", ":8080")
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("sql_db", "")
	v.SetDefault("catalog.file", "data/products.json")
	v.SetDefault("catalog.static_dir", "")
	v.SetDefault("catalog.page_size", 12)
	v.SetDefault("cart.storage", CartStorageMemory)
	v.SetDefault("cart.redis_addr", "localhost:6379")
	v.SetDefault("cart.redis_password", "")
	v.SetDefault("cart.redis_db", 0)
	v.SetDefault("theme.default", "light")
	v.SetDefault("theme.switchable", false)
	v.SetDefault("submission.ack_delay", time.Second)
	v.SetDefault("broker.seed_brokers", []string{})
	v.SetDefault("broker.schema_registry_urls", []string{})
	v.SetDefault("broker.submissions_topic", "kanoha-submissions")
	v.SetDefault("broker.tls.ca", "")
	v.SetDefault("broker.tls.cert", "")
	v.SetDefault("broker.tls.key", "")
}

func (c Config) validate() error {
	switch c.Cart.Storage {
	case CartStorageMemory, CartStorageRedis:
	case CartStoragePostgres:
		if c.SQLDB == "" {
			return fmt.Errorf("cart.storage %q requires sql_db", c.Cart.Storage)
		}
	default:
		return fmt.Errorf("unknown cart.storage %q", c.Cart.Storage)
	}

	if c.RequestTimeout <= c.Submission.AckDelay {
		return fmt.Errorf("request_timeout %s must exceed submission.ack_delay %s",
			c.RequestTimeout, c.Submission.AckDelay)
	}

	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("catalog.page_size must be positive, got %d",
			c.Catalog.PageSize)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// BrokerEnabled reports whether submissions should be published to Kafka.
func (c Config) BrokerEnabled() bool {
	return len(c.Broker.SeedBrokers) != 0
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	RequestTimeout=%s
	SQLDB=%q

	Catalog:
	File=%q
	StaticDir=%q
	PageSize=%d

	Cart:
	Storage=%q
	RedisAddr=%q
	RedisDB=%d

	Theme:
	Default=%q
	Switchable=%t

	Submission:
	AckDelay=%s

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	SubmissionsTopic=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.RequestTimeout,
		maskDSN(c.SQLDB),
		c.Catalog.File,
		c.Catalog.StaticDir,
		c.Catalog.PageSize,
		c.Cart.Storage,
		c.Cart.RedisAddr,
		c.Cart.RedisDB,
		c.Theme.Default,
		c.Theme.Switchable,
		c.Submission.AckDelay,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.SubmissionsTopic,
	)
}

func maskDSN(dsn string) string {
	if dsn == "" {
		return ""
	}
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at == -1 || scheme == -1 || scheme > at {
		return dsn
	}
	return dsn[:scheme+3] + "***" + dsn[at:]
}

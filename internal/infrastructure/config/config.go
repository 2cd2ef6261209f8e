package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverMemory   = "memory"

	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
	CacheDriverNone   = "none"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Prometheus Prometheus
	Redis      Redis
	Cache      Cache
}

type HTTPServer struct {
	Address         string
	Port            int
	BasePath        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

type Database struct {
	Driver      string
	URL         string
	Username    string
	Password    string
	Host        string
	Port        string
	DbName      string
	SSLMode     string
	MaxConns    int32
	AutoMigrate bool
}

type Prometheus struct {
	Address string
	Port    int
}

type Redis struct {
	URL      string
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type Cache struct {
	Driver          string
	KeyPrefix       string
	PostsListTTL    time.Duration
	CommentsListTTL time.Duration
	DefaultTTL      time.Duration
	MemoryCapacity  int
}

// DSN returns the connection string, preferring an explicit URL.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(d.Username),
		url.QueryEscape(d.Password),
		d.Host,
		d.Port,
		d.DbName,
		d.SSLMode)
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Printf("Error loading config: %s", err)
		os.Exit(1)
	}
	return cfg
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:         v.GetString("http_server.address"),
			Port:            v.GetInt("http_server.port"),
			BasePath:        v.GetString("http_server.base_path"),
			ReadTimeout:     v.GetDuration("http_server.read_timeout"),
			WriteTimeout:    v.GetDuration("http_server.write_timeout"),
			IdleTimeout:     v.GetDuration("http_server.idle_timeout"),
			ShutdownTimeout: v.GetDuration("http_server.shutdown_timeout"),
			CORSOrigins:     v.GetStringSlice("http_server.cors_origins"),
		},
		Database: Database{
			Driver:      v.GetString("database.driver"),
			URL:         v.GetString("database.url"),
			Username:    v.GetString("database.username"),
			Password:    v.GetString("database.password"),
			Host:        v.GetString("database.host"),
			Port:        v.GetString("database.port"),
			DbName:      v.GetString("database.db_name"),
			SSLMode:     v.GetString("database.ssl_mode"),
			MaxConns:    v.GetInt32("database.max_conns"),
			AutoMigrate: v.GetBool("database.auto_migrate"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Redis: Redis{
			URL:      v.GetString("redis.url"),
			Address:  v.GetString("redis.address"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
		},
		Cache: Cache{
			Driver:          v.GetString("cache.driver"),
			KeyPrefix:       v.GetString("cache.key_prefix"),
			PostsListTTL:    v.GetDuration("cache.posts_list_ttl"),
			CommentsListTTL: v.GetDuration("cache.comments_list_ttl"),
			DefaultTTL:      v.GetDuration("cache.default_ttl"),
			MemoryCapacity:  v.GetInt("cache.memory_capacity"),
		},
	}

	cfg.Cache.applyDefaultTTL()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaultTTL fills listing TTLs that are unset or non-positive with DefaultTTL.
func (c *Cache) applyDefaultTTL() {
	if c.PostsListTTL <= 0 {
		c.PostsListTTL = c.DefaultTTL
	}
	if c.CommentsListTTL <= 0 {
		c.CommentsListTTL = c.DefaultTTL
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.base_path", "/api")
	v.SetDefault("http_server.read_timeout", 10*time.Second)
	v.SetDefault("http_server.write_timeout", 15*time.Second)
	v.SetDefault("http_server.idle_timeout", 60*time.Second)
	v.SetDefault("http_server.shutdown_timeout", 30*time.Second)
	v.SetDefault("http_server.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("database.driver", DatabaseDriverPostgres)
	v.SetDefault("database.url", "")
	v.SetDefault("database.username", "bloguser")
	v.SetDefault("database.password", "blogpassword")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "blogsite_db")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9103)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.address", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("cache.driver", CacheDriverRedis)
	v.SetDefault("cache.key_prefix", "blog")
	v.SetDefault("cache.posts_list_ttl", 10*time.Minute)
	v.SetDefault("cache.comments_list_ttl", 3*time.Minute)
	v.SetDefault("cache.default_ttl", 5*time.Minute)
	v.SetDefault("cache.memory_capacity", 10000)
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DatabaseDriverPostgres, DatabaseDriverMemory:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	switch c.Cache.Driver {
	case CacheDriverRedis, CacheDriverMemory, CacheDriverNone:
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}
	if c.Cache.KeyPrefix == "" {
		return errors.New("cache key prefix must not be empty")
	}
	return nil
}

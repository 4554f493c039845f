package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	ContactSinkNone     = "none"
	ContactSinkDatabase = "database"
)

// Config holds all configuration for the landing site
type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Toast    ToastConfig
	Content  ContentConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Contact  ContactConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port   string
	AppURL string
}

// SessionConfig controls where page sessions live and for how long
type SessionConfig struct {
	Store string
	TTL   time.Duration
}

// ToastConfig controls notification display
type ToastConfig struct {
	Duration time.Duration
}

// ContentConfig points at an override for the embedded site content
type ContentConfig struct {
	File  string
	Watch bool
}

type RedisConfig struct {
	URL string
}

type DatabaseConfig struct {
	URL string
}

// ContactConfig selects the contact form collaborator
type ContactConfig struct {
	Sink string
}

type LogConfig struct {
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("app_url", "http://localhost:8080")
	v.SetDefault("session.store", SessionStoreMemory)
	v.SetDefault("session.ttl", "2h")
	v.SetDefault("toast.duration", "5s")
	v.SetDefault("content.file", "")
	v.SetDefault("content.watch", false)
	v.SetDefault("redis.url", "")
	v.SetDefault("database.url", "")
	v.SetDefault("contact.sink", ContactSinkNone)
	v.SetDefault("log.level", "info")
}

// Load reads .env, the optional YAML config file and the environment, in
// increasing priority, then applies overrides (usually CLI flags).
// An empty configFile looks for $HOME/.triptogether.yaml and tolerates its absence.
func Load(configFile string, overrides map[string]interface{}) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment")
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(".triptogether")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.WithField("file", filepath.Base(v.ConfigFileUsed())).Debug("Config file loaded")
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:   v.GetString("port"),
			AppURL: v.GetString("app_url"),
		},
		Session: SessionConfig{
			Store: strings.ToLower(v.GetString("session.store")),
			TTL:   v.GetDuration("session.ttl"),
		},
		Toast: ToastConfig{
			Duration: v.GetDuration("toast.duration"),
		},
		Content: ContentConfig{
			File:  v.GetString("content.file"),
			Watch: v.GetBool("content.watch"),
		},
		Redis:    RedisConfig{URL: v.GetString("redis.url")},
		Database: DatabaseConfig{URL: v.GetString("database.url")},
		Contact:  ContactConfig{Sink: strings.ToLower(v.GetString("contact.sink"))},
		Log:      LogConfig{Level: v.GetString("log.level")},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks combinations the server cannot start with
func (c *Config) Validate() error {
	switch c.Session.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if c.Redis.URL == "" {
			return errors.New("session store redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unknown session store %q", c.Session.Store)
	}

	switch c.Contact.Sink {
	case ContactSinkNone:
	case ContactSinkDatabase:
		if c.Database.URL == "" {
			return errors.New("contact sink database requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown contact sink %q", c.Contact.Sink)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Content.Watch && c.Content.File == "" {
		return errors.New("content watch requires CONTENT_FILE")
	}
	return nil
}

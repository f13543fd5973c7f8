package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	ClientURL string `yaml:"client_url"`

	JWT struct {
		Secret     string `yaml:"secret"`
		AccessTTL  int    `yaml:"access_ttl"`  // minutes
		RefreshTTL int    `yaml:"refresh_ttl"` // hours
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage StorageConfig `yaml:"storage"`

	AIService struct {
		URL string `yaml:"url"`
	} `yaml:"ai_service"`
}

type StorageConfig struct {
	Type       string `yaml:"type"`        // local, s3
	BasePath   string `yaml:"base_path"`   // for local storage
	BaseURL    string `yaml:"base_url"`    // public URL base
	Bucket     string `yaml:"bucket"`      // for S3-compatible storage
	Region     string `yaml:"region"`      // for S3
	AccessKey  string `yaml:"access_key"`  // for S3
	SecretKey  string `yaml:"secret_key"`  // for S3
	Endpoint   string `yaml:"endpoint"`    // custom S3-compatible endpoint
	PublicRead bool   `yaml:"public_read"` // make uploaded files public
}

// Load reads configuration and returns it. Environment variables take
// precedence over the yaml file so the same binary runs in containers and
// CI without a config file.
func Load() (*Config, error) {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Host = os.Getenv("SERVER_HOST")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		if cfg.Server.Port == 0 {
			cfg.Server.Port = 8000
		}
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.ClientURL = os.Getenv("CLIENT_URL")
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.AccessTTL = 60 * 24 // 1 day, matches the original token expiry
		cfg.JWT.RefreshTTL = 24 * 10

		cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
		cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
		cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
		cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
		cfg.Email.FromEmail = os.Getenv("SMTP_FROM")
		cfg.Email.FromName = "TalentHive"

		cfg.Storage.Type = envOr("STORAGE_TYPE", "local")
		cfg.Storage.BasePath = envOr("STORAGE_BASE_PATH", "./uploads")
		cfg.Storage.BaseURL = envOr("STORAGE_BASE_URL", "/api/files")
		cfg.Storage.Bucket = os.Getenv("STORAGE_BUCKET")
		cfg.Storage.Region = os.Getenv("STORAGE_REGION")
		cfg.Storage.AccessKey = os.Getenv("STORAGE_ACCESS_KEY")
		cfg.Storage.SecretKey = os.Getenv("STORAGE_SECRET_KEY")
		cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")
		cfg.Storage.PublicRead = os.Getenv("STORAGE_PUBLIC_READ") == "true"

		cfg.AIService.URL = os.Getenv("AISERVICE_URL")

		return &cfg, nil
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at %s: %w", configPath, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
	}

	if cfg.JWT.AccessTTL == 0 {
		cfg.JWT.AccessTTL = 60 * 24
	}
	if cfg.JWT.RefreshTTL == 0 {
		cfg.JWT.RefreshTTL = 24 * 10
	}

	return &cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

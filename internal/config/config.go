package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	BaseURL string `yaml:"base_url"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
	EmailTTL   string `yaml:"email_ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type S3Config struct {
	Region       string `yaml:"region"`
	BaseEndpoint string `yaml:"base_endpoint"`
	Bucket       string `yaml:"bucket"`
	AccessKey    string `yaml:"access_key"`
	SecretKey    string `yaml:"secret_key"`
	PublicURL    string `yaml:"public_url"`
}

type RateLimitConfig struct {
	Limit  int    `yaml:"limit"`
	Window string `yaml:"window"`
}

type ContactsConfig struct {
	BirthdayWindowDays int `yaml:"birthday_window_days"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	S3        S3Config        `yaml:"s3"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Contacts  ContactsConfig  `yaml:"contacts"`
	Casbin    CasbinConfig    `yaml:"casbin"`
}

type Config struct {
	Port               string
	GinMode            string
	BaseURL            string
	DSN                string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	JWTSecret          string
	JWTIssuer          string
	AccessTTL          time.Duration
	RefreshTTL         time.Duration
	EmailTokenTTL      time.Duration
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPFrom           string
	S3Region           string
	S3BaseEndpoint     string
	S3Bucket           string
	S3AccessKey        string
	S3SecretKey        string
	S3PublicURL        string
	RateLimit          int
	RateLimitWindow    time.Duration
	BirthdayWindowDays int
	CasbinModelPath    string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for the
// secrets that should not live in the file.
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(configFile.JWT.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}

	emailTTL, err := time.ParseDuration(configFile.JWT.EmailTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT email TTL: %w", err)
	}

	rateWindow, err := time.ParseDuration(configFile.RateLimit.Window)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit window: %w", err)
	}

	window := configFile.Contacts.BirthdayWindowDays
	if window <= 0 {
		window = 7
	}

	return &Config{
		Port:               fmt.Sprintf("%d", configFile.App.Port),
		GinMode:            configFile.App.GinMode,
		BaseURL:            env("BASE_URL", configFile.App.BaseURL),
		DSN:                env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:          env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:      env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:            configFile.Redis.DB,
		JWTSecret:          env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:          configFile.JWT.Issuer,
		AccessTTL:          accTTL,
		RefreshTTL:         refTTL,
		EmailTokenTTL:      emailTTL,
		SMTPHost:           env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:           envInt("SMTP_PORT", configFile.SMTP.Port),
		SMTPUsername:       env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:       env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:           env("SMTP_FROM", configFile.SMTP.From),
		S3Region:           env("S3_REGION", configFile.S3.Region),
		S3BaseEndpoint:     env("S3_BASE_ENDPOINT", configFile.S3.BaseEndpoint),
		S3Bucket:           env("S3_BUCKET", configFile.S3.Bucket),
		S3AccessKey:        env("S3_ACCESS_KEY", configFile.S3.AccessKey),
		S3SecretKey:        env("S3_SECRET_KEY", configFile.S3.SecretKey),
		S3PublicURL:        env("S3_PUBLIC_URL", configFile.S3.PublicURL),
		RateLimit:          configFile.RateLimit.Limit,
		RateLimitWindow:    rateWindow,
		BirthdayWindowDays: window,
		CasbinModelPath:    configFile.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS CORSConfig `mapstructure:"cors"`
	App  struct {
		ReviewLimit  int           `mapstructure:"review_limit"`
		UndoWindow   time.Duration `mapstructure:"undo_window"`   // 0 ならクライアントが commit を決める
		SessionGrace time.Duration `mapstructure:"session_grace"` // 最後の購読者が離れてから一覧セッションを破棄するまで
		Workers      int           `mapstructure:"workers"`
	} `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey string        `mapstructure:"secret_key"`
		ExpiresIn time.Duration `mapstructure:"expires_in"`
	} `mapstructure:"jwt"`
	Mirror struct {
		URL     string        `mapstructure:"url"`
		Token   string        `mapstructure:"token"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"mirror"`
	Reminder struct {
		TickInterval time.Duration `mapstructure:"tick_interval"`
	} `mapstructure:"reminder"`
	Mailer struct {
		Type string `mapstructure:"type"` // "log", "smtp", "ses"
	} `mapstructure:"mailer"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	SES  SESConfig  `mapstructure:"ses"`
}

var Cfg Config

func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// APP_DATABASE_URL のように接頭辞付きの環境変数で上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")
	v.BindEnv("jwt.secret_key", "APP_JWT_SECRET_KEY", "JWT_SECRET_KEY")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults(&cfg, v.IsSet("auth.enabled"))
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Review Limit: %d", Cfg.App.ReviewLimit)
	log.Printf("Undo Window: %s", Cfg.App.UndoWindow)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	return nil
}

// applyDefaults は未設定の項目にデフォルト値を入れる
func applyDefaults(cfg *Config, authSet bool) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.App.ReviewLimit <= 0 {
		log.Printf("App review limit not set or invalid, using default '%d'", DefaultAppReviewLimit)
		cfg.App.ReviewLimit = DefaultAppReviewLimit
	}
	if cfg.App.UndoWindow < 0 {
		cfg.App.UndoWindow = 0
	}
	if cfg.App.SessionGrace <= 0 {
		cfg.App.SessionGrace = DefaultSessionGrace
	}
	if cfg.App.Workers <= 0 {
		cfg.App.Workers = DefaultWorkers
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if !authSet {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		cfg.Auth.Enabled = true
	}
	if cfg.JWT.ExpiresIn <= 0 {
		cfg.JWT.ExpiresIn = DefaultJWTExpiresIn
	}
	if cfg.Mirror.Timeout <= 0 {
		cfg.Mirror.Timeout = DefaultMirrorTimeout
	}
	if cfg.Reminder.TickInterval <= 0 {
		cfg.Reminder.TickInterval = DefaultReminderTick
	}
	if cfg.Mailer.Type == "" {
		cfg.Mailer.Type = "log"
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Authorization", "Content-Type", "X-Tenant-ID"}
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	yaml := `
database:
  url: "sqlite://wordnote.db"
server:
  port: ":9090"
app:
  review_limit: 5
  undo_window: 5s
  workers: 2
auth:
  enabled: false
jwt:
  secret_key: "from-file"
mailer:
  type: smtp
smtp:
  host: localhost
  port: 1025
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("APP_JWT_SECRET_KEY", "from-env")
	t.Setenv("APP_APP_WORKERS", "8")

	require.NoError(t, LoadConfig(dir))

	assert.Equal(t, "sqlite://wordnote.db", Cfg.Database.URL)
	assert.Equal(t, ":9090", Cfg.Server.Port)
	assert.Equal(t, 5, Cfg.App.ReviewLimit)
	assert.Equal(t, 5*time.Second, Cfg.App.UndoWindow)
	assert.Equal(t, 8, Cfg.App.Workers)
	assert.False(t, Cfg.Auth.Enabled)
	assert.Equal(t, "from-env", Cfg.JWT.SecretKey)
	assert.Equal(t, "smtp", Cfg.Mailer.Type)
	assert.Equal(t, 1025, Cfg.SMTP.Port)
	// 未設定はデフォルト
	assert.Equal(t, DefaultSessionGrace, Cfg.App.SessionGrace)
	assert.Equal(t, DefaultJWTExpiresIn, Cfg.JWT.ExpiresIn)
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.App.UndoWindow = -time.Second
	applyDefaults(&cfg, false)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultAppReviewLimit, cfg.App.ReviewLimit)
	assert.Zero(t, cfg.App.UndoWindow)
	assert.Equal(t, DefaultWorkers, cfg.App.Workers)
	assert.True(t, cfg.Auth.Enabled, "未設定なら認証は有効")
	assert.Equal(t, DefaultMirrorTimeout, cfg.Mirror.Timeout)
	assert.Equal(t, DefaultReminderTick, cfg.Reminder.TickInterval)
	assert.Equal(t, "log", cfg.Mailer.Type)
	assert.NotEmpty(t, cfg.CORS.AllowedMethods)
}

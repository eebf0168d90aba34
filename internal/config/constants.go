// internal/config/constants.go
package config

import (
	"strings"
	"time"
)

// アプリケーション情報
const (
	AppName    = "wordnote"
	AppVersion = "0.4.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultAppReviewLimit = 20
	DefaultSessionGrace   = 5 * time.Minute
	DefaultWorkers        = 4
	DefaultJWTExpiresIn   = 24 * time.Hour
	DefaultMirrorTimeout  = 10 * time.Second
	DefaultReminderTick   = time.Minute
)

// app.undo_window -> APP_APP_UNDO_WINDOW
var envKeyReplacer = strings.NewReplacer(".", "_")

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名のリストです (小文字で定義)。
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"x-csrf-token":  true,
}

// sensitiveFields はボディ中で値をマスキングする JSON キーです (小文字で定義)。
var sensitiveFields = map[string]bool{
	"password":      true,
	"access_token":  true,
	"token":         true,
	"refresh_token": true,
	"secret_key":    true,
}

// ボディはこのサイズまでしか抱えない
const maxLoggedBody = 4 << 10

// responseLogger は http.ResponseWriter をラップし、ステータスコードと書き込みバイト数を記録します。
// body は maxLoggedBody まで。text/event-stream のレスポンスはキャプチャしない。
type responseLogger struct {
	http.ResponseWriter
	statusCode int
	bytesOut   int
	body       *bytes.Buffer
}

func newResponseLogger(w http.ResponseWriter, captureBody bool) *responseLogger {
	rl := &responseLogger{ResponseWriter: w, statusCode: http.StatusOK}
	if captureBody {
		rl.body = new(bytes.Buffer)
	}
	return rl
}

func (rl *responseLogger) WriteHeader(statusCode int) {
	rl.statusCode = statusCode
	rl.ResponseWriter.WriteHeader(statusCode)
}

func (rl *responseLogger) Write(b []byte) (int, error) {
	if rl.body != nil {
		if isEventStream(rl.Header()) {
			rl.body = nil
		} else if room := maxLoggedBody - rl.body.Len(); room > 0 {
			rl.body.Write(b[:min(len(b), room)])
		}
	}
	n, err := rl.ResponseWriter.Write(b)
	rl.bytesOut += n
	return n, err
}

// Flush は SSE 用。下位の ResponseWriter が対応していれば委譲する
func (rl *responseLogger) Flush() {
	if f, ok := rl.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isEventStream(h http.Header) bool {
	return strings.HasPrefix(h.Get("Content-Type"), "text/event-stream")
}

// LoggingMiddleware はリクエスト/レスポンスのログ出力を一元管理するミドルウェアです。
// debug レベルではステータスが 4xx 以上のときだけボディも出します (機密フィールドはマスキング)。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			// リクエストID付きのロガーを生成し、コンテキストに格納
			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			debug := logger.Enabled(r.Context(), slog.LevelDebug)
			var reqBodyBytes []byte
			if debug && r.Body != nil && r.Body != http.NoBody {
				// 先頭だけ読み、残りはそのままハンドラに渡す
				reqBodyBytes, _ = io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
				r.Body = readCloser{io.MultiReader(bytes.NewReader(reqBodyBytes), r.Body), r.Body}
			}

			rl := newResponseLogger(w, debug)
			next.ServeHTTP(rl, r)

			latency := time.Since(startTime)
			logLevel := slog.LevelInfo
			if rl.statusCode >= 500 {
				logLevel = slog.LevelError
			} else if rl.statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			requestLogger.Log(r.Context(), logLevel, "Request completed",
				"status", rl.statusCode,
				"latency_ms", float64(latency.Nanoseconds())/1e6,
				"bytes_out", rl.bytesOut,
			)

			if !debug {
				return
			}
			requestAttrs := []any{"headers", formatHeaders(r.Header)}
			responseAttrs := []any{"status", rl.statusCode, "headers", formatHeaders(rl.Header())}
			if rl.statusCode >= 400 { // エラー時のみボディを出す
				requestAttrs = append(requestAttrs, "body", maskBody(reqBodyBytes))
				if rl.body != nil {
					responseAttrs = append(responseAttrs, "body", maskBody(rl.body.Bytes()))
				}
			}
			requestLogger.Debug("Request detail", requestAttrs...)
			requestLogger.Debug("Response detail", responseAttrs...)
		})
	}
}

type readCloser struct {
	io.Reader
	io.Closer
}

// maskBody は JSON ボディの機密フィールドを伏せます。JSON として読めないものは中身を出しません
func maskBody(body []byte) any {
	if len(body) == 0 {
		return ""
	}
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return fmt.Sprintf("[Raw body not logged: %d bytes]", len(body))
	}
	return maskValue(data)
}

func maskValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, inner := range val {
			if sensitiveFields[strings.ToLower(k)] {
				val[k] = "[MASKED]"
				continue
			}
			val[k] = maskValue(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = maskValue(inner)
		}
		return val
	default:
		return v
	}
}

// WithLogger はロガーをコンテキストに格納します。バックグラウンド処理にロガーを引き継ぐときにも使います
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// formatHeaders はヘッダー情報をログ出力用に整形・マスキングするヘルパー関数
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"wordnote/internal/model"
)

// RemoteMirror はローカルDBへの書き込みをリモートのリアルタイムDBへ複製します
type RemoteMirror interface {
	PutWords(ctx context.Context, tenantID uuid.UUID, words []model.Word) error
	DeleteWords(ctx context.Context, tenantID uuid.UUID, wordIDs []string) error
}

// NewRemoteMirror は baseURL が空なら何もしないミラーを返します
func NewRemoteMirror(baseURL, token string, timeout time.Duration) RemoteMirror {
	if baseURL == "" {
		return NopMirror{}
	}
	return NewHTTPMirror(baseURL, token, timeout)
}

type NopMirror struct{}

func (NopMirror) PutWords(context.Context, uuid.UUID, []model.Word) error { return nil }
func (NopMirror) DeleteWords(context.Context, uuid.UUID, []string) error  { return nil }

// HTTPMirror は REST 形式のリアルタイムDB (<base>/words/<tenant>.json) に PATCH で反映します。
// 値が null のキーは削除として扱われます
type HTTPMirror struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPMirror(baseURL, token string, timeout time.Duration) *HTTPMirror {
	return &HTTPMirror{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

type mirrorWord struct {
	Term         string    `json:"term"`
	PartOfSpeech string    `json:"part_of_speech"`
	Phonetic     string    `json:"phonetic"`
	Meaning      string    `json:"meaning"`
	Remind       bool      `json:"remind"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (m *HTTPMirror) PutWords(ctx context.Context, tenantID uuid.UUID, words []model.Word) error {
	if len(words) == 0 {
		return nil
	}
	body := make(map[string]*mirrorWord, len(words))
	for _, w := range words {
		body[w.WordID] = &mirrorWord{
			Term:         w.Term,
			PartOfSpeech: w.PartOfSpeech,
			Phonetic:     w.Phonetic,
			Meaning:      w.Meaning,
			Remind:       w.Remind,
			CreatedAt:    w.CreatedAt,
			UpdatedAt:    w.UpdatedAt,
		}
	}
	return m.patch(ctx, tenantID, body)
}

func (m *HTTPMirror) DeleteWords(ctx context.Context, tenantID uuid.UUID, wordIDs []string) error {
	if len(wordIDs) == 0 {
		return nil
	}
	body := make(map[string]*mirrorWord, len(wordIDs))
	for _, id := range wordIDs {
		body[id] = nil
	}
	return m.patch(ctx, tenantID, body)
}

func (m *HTTPMirror) patch(ctx context.Context, tenantID uuid.UUID, body map[string]*mirrorWord) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("HTTPMirror.patch: marshal: %w", err)
	}

	endpoint := fmt.Sprintf("%s/words/%s.json", m.baseURL, tenantID.String())
	target := endpoint
	if m.token != "" {
		target += "?auth=" + url.QueryEscape(m.token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, target, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("HTTPMirror.patch: new request: %w", redactURL(err, endpoint))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTPMirror.patch: %w", redactURL(err, endpoint))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("HTTPMirror.patch: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

// redactURL はエラーに含まれる URL からトークン付きのクエリを外します
func redactURL(err error, endpoint string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = endpoint
	}
	return err
}

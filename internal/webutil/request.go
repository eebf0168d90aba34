package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"wordnote/internal/model"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラーにします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが空です。", "", model.ErrInvalidInput)
		}
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", errors.Join(model.ErrInvalidInput, err))
	}
	return nil
}

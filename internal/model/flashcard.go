package model

// FlashcardResponse はフラッシュカード1枚分のレスポンスDTO
type FlashcardResponse struct {
	WordID       string `json:"word_id"`
	Term         string `json:"term"`
	PartOfSpeech string `json:"part_of_speech"`
	Phonetic     string `json:"phonetic"`
	Meaning      string `json:"meaning"` // 裏面
	Level        int    `json:"level"`
}

// SubmitFlashcardRequest は自己採点結果の送信リクエスト
type SubmitFlashcardRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}

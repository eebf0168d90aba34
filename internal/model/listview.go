package model

// ViewItem は一覧表示用に選択状態を付けた単語。状態の再計算ごとに作り直され、永続化はされない
type ViewItem struct {
	Word
	IsSelected bool `json:"is_selected"`
}

// PendingBatch は削除待ち (Undo 可能) のバッチ
type PendingBatch struct {
	BatchID string `json:"batch_id"`
	Count   int    `json:"count"`
}

// UIState は単語一覧画面の状態スナップショット
type UIState struct {
	Items         []ViewItem     `json:"items"`
	ShowEmpty     bool           `json:"show_empty"`
	Loading       bool           `json:"loading"`
	ActionMode    bool           `json:"action_mode"`
	SelectedCount int            `json:"selected_count"`
	Searching     bool           `json:"searching"`
	Query         string         `json:"query"`
	SearchResults []ViewItem     `json:"search_results"`
	Pending       []PendingBatch `json:"pending"`
	Error         string         `json:"error,omitempty"`
}

// InitialUIState は最初の読み込みが終わるまでの状態
func InitialUIState() UIState {
	return UIState{
		Items:         []ViewItem{},
		Loading:       true,
		SearchResults: []ViewItem{},
		Pending:       []PendingBatch{},
	}
}

// SetQueryRequest は検索語の更新リクエスト
type SetQueryRequest struct {
	Query string `json:"query" validate:"max=200"`
}

// DeleteSelectedResponse は選択削除の結果。batch_id を restore/commit に渡す
type DeleteSelectedResponse struct {
	BatchID string  `json:"batch_id"`
	Count   int     `json:"count"`
	State   UIState `json:"state"`
}

// RemindSelectedResponse は選択単語のリマインド設定結果
type RemindSelectedResponse struct {
	Count int     `json:"count"`
	State UIState `json:"state"`
}

package listview

// SelectionTracker は選択中の単語IDの集合です。空になった時点で選択モードも終わります
type SelectionTracker struct {
	ids   map[string]struct{}
	order []string
}

func NewSelectionTracker() *SelectionTracker {
	return &SelectionTracker{ids: make(map[string]struct{})}
}

// Toggle は未選択なら追加、選択済みなら外します
func (s *SelectionTracker) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		if len(s.ids) == 0 {
			s.Clear()
		}
		return
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
}

// SelectAll は集合を丸ごと置き換えます
func (s *SelectionTracker) SelectAll(ids []string) {
	s.Clear()
	for _, id := range ids {
		if _, ok := s.ids[id]; ok {
			continue
		}
		s.ids[id] = struct{}{}
		s.order = append(s.order, id)
	}
}

func (s *SelectionTracker) Clear() {
	s.ids = make(map[string]struct{})
	s.order = nil
}

func (s *SelectionTracker) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *SelectionTracker) Len() int {
	return len(s.ids)
}

// Active は選択モード中かどうか
func (s *SelectionTracker) Active() bool {
	return len(s.ids) > 0
}

// IDs は選択した順にIDを返します
func (s *SelectionTracker) IDs() []string {
	return append([]string(nil), s.order...)
}

package listview

import "strings"

// SearchFilter は検索中フラグと検索語を持ちます。検索語が空なら何にも一致しません
type SearchFilter struct {
	active bool
	query  string
}

func (f *SearchFilter) Start() {
	f.active = true
}

// Stop は検索を終え、検索語も消します
func (f *SearchFilter) Stop() {
	f.active = false
	f.query = ""
}

func (f *SearchFilter) SetQuery(q string) {
	f.query = q
}

func (f *SearchFilter) Active() bool {
	return f.active
}

func (f *SearchFilter) Query() string {
	return f.query
}

// Match は見出し語に検索語が含まれるか (大文字小文字を区別) を返します
func (f *SearchFilter) Match(term string) bool {
	return f.query != "" && strings.Contains(term, f.query)
}

// Package reminder は復習リマインダーの通知時刻の計算と送信を扱います。
package reminder

import (
	"fmt"
	"time"

	"wordnote/internal/model"
)

const minutesPerDay = 24 * 60

// ParseClock は "HH:MM" を0時からの経過分に変換します
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("reminder.ParseClock: %w", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock は0時からの経過分を "HH:MM" にします
func FormatClock(minute int) string {
	minute = ((minute % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// dayTriggers は day の日付に属する通知時刻を昇順で返します。
// 終了時刻が開始時刻より前なら翌日の終了時刻までを窓とみなします
func dayTriggers(s *model.ReminderSettings, day time.Time) []time.Time {
	if s.IntervalMinutes <= 0 {
		return nil
	}
	end := s.EndMinute
	if end < s.StartMinute {
		end += minutesPerDay
	}
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var out []time.Time
	for m := s.StartMinute; m <= end; m += s.IntervalMinutes {
		out = append(out, midnight.Add(time.Duration(m)*time.Minute))
	}
	return out
}

// NextTriggers は now より後の通知時刻を n 件返します。無効な設定なら空です
func NextTriggers(s *model.ReminderSettings, now time.Time, n int) []time.Time {
	if s == nil || !s.Enabled || n <= 0 || s.IntervalMinutes <= 0 {
		return []time.Time{}
	}
	out := make([]time.Time, 0, n)
	// 前日分も見るのは日付をまたぐ窓のため
	for d := -1; len(out) < n && d <= n+1; d++ {
		for _, t := range dayTriggers(s, now.AddDate(0, 0, d)) {
			if t.After(now) {
				out = append(out, t)
				if len(out) == n {
					break
				}
			}
		}
	}
	return out
}

// LatestTrigger は now 以前で最も新しい通知時刻を返します
func LatestTrigger(s *model.ReminderSettings, now time.Time) (time.Time, bool) {
	if s == nil || !s.Enabled || s.IntervalMinutes <= 0 {
		return time.Time{}, false
	}
	var latest time.Time
	found := false
	for d := -2; d <= 0; d++ {
		for _, t := range dayTriggers(s, now.AddDate(0, 0, d)) {
			if !t.After(now) && (!found || t.After(latest)) {
				latest = t
				found = true
			}
		}
	}
	return latest, found
}

// Due は最後の送信以降に通知時刻を迎えていれば true です
func Due(s *model.ReminderSettings, now time.Time) bool {
	latest, ok := LatestTrigger(s, now)
	if !ok {
		return false
	}
	return s.LastSentAt == nil || s.LastSentAt.Before(latest)
}

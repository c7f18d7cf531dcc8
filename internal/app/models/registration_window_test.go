package models

import (
	"testing"
	"time"
)

func TestRegistrationWindowContains(t *testing.T) {
	opens := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	closes := time.Date(2025, 2, 21, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		window RegistrationWindow
		at     time.Time
		want   bool
	}{
		{
			name:   "inside both bounds",
			window: RegistrationWindow{OpensAt: &opens, ClosesAt: &closes},
			at:     opens.Add(24 * time.Hour),
			want:   true,
		},
		{
			name:   "before opening",
			window: RegistrationWindow{OpensAt: &opens, ClosesAt: &closes},
			at:     opens.Add(-time.Minute),
			want:   false,
		},
		{
			name:   "exactly at opening",
			window: RegistrationWindow{OpensAt: &opens, ClosesAt: &closes},
			at:     opens,
			want:   true,
		},
		{
			name:   "exactly at closing",
			window: RegistrationWindow{OpensAt: &opens, ClosesAt: &closes},
			at:     closes,
			want:   false,
		},
		{
			name:   "after closing",
			window: RegistrationWindow{OpensAt: &opens, ClosesAt: &closes},
			at:     closes.Add(time.Hour),
			want:   false,
		},
		{
			name:   "open ended start",
			window: RegistrationWindow{ClosesAt: &closes},
			at:     closes.Add(-time.Hour),
			want:   true,
		},
		{
			name:   "open ended finish",
			window: RegistrationWindow{OpensAt: &opens},
			at:     opens.Add(365 * 24 * time.Hour),
			want:   true,
		},
		{
			name:   "no bounds at all",
			window: RegistrationWindow{},
			at:     time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Contains(tt.at); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.at.Format(time.RFC3339), got, tt.want)
			}
		})
	}
}

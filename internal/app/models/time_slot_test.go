package models

import (
	"encoding/json"
	"testing"
)

// slotAt builds a slot on the given day with "HH:MM" bounds.
func slotAt(day int, start, end string) TimeSlot {
	s, err := ParseMinuteOfDay(start)
	if err != nil {
		panic(err)
	}
	e, err := ParseMinuteOfDay(end)
	if err != nil {
		panic(err)
	}
	return TimeSlot{DayOfWeek: day, StartTime: s, EndTime: e}
}

// weekSlot is slotAt restricted to one week number.
func weekSlot(week, day int, start, end string) TimeSlot {
	s := slotAt(day, start, end)
	s.WeekNumber = &week
	return s
}

func TestParseMinuteOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    MinuteOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "9:00", want: 540},
		{in: "13:45", want: 825},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "0900", wantErr: true},
		{in: "09:00x", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMinuteOfDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMinuteOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMinuteOfDay(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestMinuteOfDayString(t *testing.T) {
	if got := MinuteOfDay(540).String(); got != "09:00" {
		t.Errorf("String() = %q, want %q", got, "09:00")
	}
	if got := MinuteOfDay(0).String(); got != "00:00" {
		t.Errorf("String() = %q, want %q", got, "00:00")
	}
	if got := MinuteOfDay(1439).String(); got != "23:59" {
		t.Errorf("String() = %q, want %q", got, "23:59")
	}
}

func TestMinuteOfDayJSON(t *testing.T) {
	data, err := json.Marshal(MinuteOfDay(630))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"10:30"` {
		t.Errorf("Marshal() = %s, want %q", data, `"10:30"`)
	}

	var m MinuteOfDay
	if err := json.Unmarshal([]byte(`"08:15"`), &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if m != 495 {
		t.Errorf("Unmarshal() = %d, want 495", m)
	}

	if err := json.Unmarshal([]byte(`"later"`), &m); err == nil {
		t.Error("Unmarshal() accepted a non-clock string")
	}
	if err := json.Unmarshal([]byte(`630`), &m); err == nil {
		t.Error("Unmarshal() accepted a bare number")
	}
}

func TestTimeSlotValidate(t *testing.T) {
	week0 := 0
	tests := []struct {
		name    string
		slot    TimeSlot
		wantErr bool
	}{
		{name: "valid", slot: slotAt(1, "09:00", "10:00")},
		{name: "valid with period", slot: TimeSlot{DayOfWeek: 3, Period: "D5", StartTime: 720, EndTime: 770}},
		{name: "valid night period", slot: TimeSlot{DayOfWeek: 5, Period: "DN", StartTime: 1110, EndTime: 1160}},
		{name: "valid with week", slot: weekSlot(4, 2, "08:00", "09:00")},
		{name: "day too small", slot: slotAt(0, "09:00", "10:00"), wantErr: true},
		{name: "day too large", slot: slotAt(8, "09:00", "10:00"), wantErr: true},
		{name: "zero length", slot: slotAt(1, "10:00", "10:00"), wantErr: true},
		{name: "inverted", slot: slotAt(1, "11:00", "10:00"), wantErr: true},
		{name: "unknown period", slot: TimeSlot{DayOfWeek: 1, Period: "X1", StartTime: 540, EndTime: 600}, wantErr: true},
		{name: "week zero", slot: TimeSlot{DayOfWeek: 1, WeekNumber: &week0, StartTime: 540, EndTime: 600}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.slot.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTimeSlotOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{
			name: "different days",
			a:    slotAt(1, "09:00", "10:00"),
			b:    slotAt(2, "09:00", "10:00"),
			want: false,
		},
		{
			name: "partial overlap",
			a:    slotAt(1, "09:00", "10:00"),
			b:    slotAt(1, "09:30", "10:30"),
			want: true,
		},
		{
			name: "back to back half open",
			a:    slotAt(1, "09:00", "10:00"),
			b:    slotAt(1, "10:00", "11:00"),
			want: false,
		},
		{
			name: "containment",
			a:    slotAt(1, "09:00", "12:00"),
			b:    slotAt(1, "10:00", "11:00"),
			want: true,
		},
		{
			name: "identical times",
			a:    slotAt(2, "14:00", "15:00"),
			b:    slotAt(2, "14:00", "15:00"),
			want: true,
		},
		{
			name: "disjoint same day",
			a:    slotAt(3, "08:00", "09:00"),
			b:    slotAt(3, "13:00", "14:00"),
			want: false,
		},
		{
			name: "same week number",
			a:    weekSlot(1, 1, "09:00", "10:00"),
			b:    weekSlot(1, 1, "09:00", "10:00"),
			want: true,
		},
		{
			name: "different week numbers",
			a:    weekSlot(1, 1, "09:00", "10:00"),
			b:    weekSlot(2, 1, "09:00", "10:00"),
			want: false,
		},
		{
			name: "week set against every week",
			a:    weekSlot(3, 1, "09:00", "10:00"),
			b:    slotAt(1, "09:00", "10:00"),
			want: true,
		},
		{
			name: "same period label disjoint times",
			a:    TimeSlot{DayOfWeek: 1, Period: "D1", StartTime: 540, EndTime: 600},
			b:    TimeSlot{DayOfWeek: 1, Period: "D1", StartTime: 780, EndTime: 840},
			want: true,
		},
		{
			name: "same period different days",
			a:    TimeSlot{DayOfWeek: 1, Period: "D1", StartTime: 540, EndTime: 600},
			b:    TimeSlot{DayOfWeek: 2, Period: "D1", StartTime: 540, EndTime: 600},
			want: false,
		},
		{
			name: "different periods disjoint times",
			a:    TimeSlot{DayOfWeek: 1, Period: "D1", StartTime: 540, EndTime: 600},
			b:    TimeSlot{DayOfWeek: 1, Period: "D3", StartTime: 780, EndTime: 840},
			want: false,
		},
		{
			name: "same period different weeks",
			a:    TimeSlot{DayOfWeek: 1, Period: "D1", StartTime: 540, EndTime: 600, WeekNumber: intPtr(1)},
			b:    TimeSlot{DayOfWeek: 1, Period: "D1", StartTime: 540, EndTime: 600, WeekNumber: intPtr(2)},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// the predicate is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeSlotOverlapsReflexive(t *testing.T) {
	slots := []TimeSlot{
		slotAt(3, "14:00", "15:30"),
		weekSlot(2, 5, "08:00", "08:50"),
		{DayOfWeek: 1, Period: "D7", StartTime: 900, EndTime: 950},
	}
	for _, s := range slots {
		if !s.Overlaps(s) {
			t.Errorf("slot %+v does not overlap itself", s)
		}
	}
}

func intPtr(i int) *int { return &i }

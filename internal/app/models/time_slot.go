package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// MinuteOfDay is a clock time expressed as minutes elapsed since midnight.
// It serializes as "HH:MM".
type MinuteOfDay int

// ParseMinuteOfDay parses a "HH:MM" clock string into a MinuteOfDay.
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	return MinuteOfDay(t.Hour()*60 + t.Minute()), nil
}

// String formats the time as "HH:MM".
func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// MarshalJSON implements json.Marshaler.
func (m MinuteOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *MinuteOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMinuteOfDay(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// validPeriods holds the recognized period labels: D1 through D9 plus the
// night session DN.
var validPeriods = map[string]struct{}{
	"D1": {}, "D2": {}, "D3": {}, "D4": {}, "D5": {},
	"D6": {}, "D7": {}, "D8": {}, "D9": {}, "DN": {},
}

// IsValidPeriod reports whether p is a recognized period label.
func IsValidPeriod(p string) bool {
	_, ok := validPeriods[p]
	return ok
}

// TimeSlot represents one weekly meeting period of a course offering.
// Slots are immutable once attached to an offering and are removed only
// when the owning offering is deleted.
type TimeSlot struct {
	ID         int64       `json:"id" db:"id"`
	OfferingID int64       `json:"offeringId" db:"course_offering_id"`
	WeekNumber *int        `json:"weekNumber,omitempty" db:"week_number"` // nil means the slot applies every week
	DayOfWeek  int         `json:"dayOfWeek" db:"day_of_week"`            // 1 = Monday .. 7 = Sunday
	Period     string      `json:"period" db:"period"`
	StartTime  MinuteOfDay `json:"startTime" db:"start_time"`
	EndTime    MinuteOfDay `json:"endTime" db:"end_time"`
	Location   string      `json:"location,omitempty" db:"location"`
}

// Validate checks the slot invariants. Zero-length or inverted intervals are
// invalid input and rejected here rather than silently treated as
// non-overlapping.
func (s TimeSlot) Validate() error {
	if s.DayOfWeek < 1 || s.DayOfWeek > 7 {
		return fmt.Errorf("day of week %d outside 1..7", s.DayOfWeek)
	}
	if s.Period != "" && !IsValidPeriod(s.Period) {
		return fmt.Errorf("unknown period label %q", s.Period)
	}
	if s.StartTime < 0 || s.EndTime > 24*60 {
		return fmt.Errorf("times %s-%s outside the day", s.StartTime, s.EndTime)
	}
	if s.StartTime >= s.EndTime {
		return fmt.Errorf("start time %s not before end time %s", s.StartTime, s.EndTime)
	}
	if s.WeekNumber != nil && *s.WeekNumber < 1 {
		return fmt.Errorf("week number %d must be positive", *s.WeekNumber)
	}
	return nil
}

// Overlaps reports whether the two slots could require a student's presence in
// two places at once. Slots on different days never overlap. A missing week
// number means the slot repeats every week, so week numbers separate two slots
// only when both are set and differ. Matching period labels on the same day
// count as an overlap regardless of clock times; otherwise the half-open
// intervals [start, end) are compared, so back-to-back slots do not overlap.
// The predicate is symmetric.
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	if s.DayOfWeek != o.DayOfWeek {
		return false
	}
	if s.WeekNumber != nil && o.WeekNumber != nil && *s.WeekNumber != *o.WeekNumber {
		return false
	}
	if s.Period != "" && s.Period == o.Period {
		return true
	}
	return s.StartTime < o.EndTime && o.StartTime < s.EndTime
}

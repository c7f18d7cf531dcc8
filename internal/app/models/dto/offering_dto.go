package dto

import (
	"fmt"
	"time"

	"github.com/derya/retakereg/internal/app/models"
)

// TimeSlotRequest carries one meeting period in offering payloads.
type TimeSlotRequest struct {
	WeekNumber *int   `json:"weekNumber,omitempty" binding:"omitempty,gt=0"`
	DayOfWeek  int    `json:"dayOfWeek" binding:"required,min=1,max=7" example:"1"`
	Period     string `json:"period,omitempty" binding:"omitempty,period" example:"D1"`
	StartTime  string `json:"startTime" binding:"required" example:"09:00"`
	EndTime    string `json:"endTime" binding:"required" example:"10:00"`
	Location   string `json:"location,omitempty" example:"A-302"`
}

// ToModel converts the request slot, parsing and validating the clock times.
func (r TimeSlotRequest) ToModel() (models.TimeSlot, error) {
	start, err := models.ParseMinuteOfDay(r.StartTime)
	if err != nil {
		return models.TimeSlot{}, fmt.Errorf("startTime: %w", err)
	}
	end, err := models.ParseMinuteOfDay(r.EndTime)
	if err != nil {
		return models.TimeSlot{}, fmt.Errorf("endTime: %w", err)
	}
	slot := models.TimeSlot{
		WeekNumber: r.WeekNumber,
		DayOfWeek:  r.DayOfWeek,
		Period:     r.Period,
		StartTime:  start,
		EndTime:    end,
		Location:   r.Location,
	}
	if err := slot.Validate(); err != nil {
		return models.TimeSlot{}, err
	}
	return slot, nil
}

// CreateOfferingRequest represents course offering creation data.
type CreateOfferingRequest struct {
	AcademicTerm string            `json:"academicTerm" binding:"required,academicterm" example:"113-1"`
	SubjectCode  string            `json:"subjectCode" binding:"required,subjectcode" example:"MATH101"`
	SectionKey   string            `json:"sectionKey" binding:"required" example:"A"`
	Title        string            `json:"title" binding:"required" example:"Calculus I"`
	Instructor   string            `json:"instructor,omitempty"`
	Credits      int               `json:"credits" binding:"omitempty,min=0,max=30" example:"3"`
	IsOpen       *bool             `json:"isOpen,omitempty"` // defaults to true
	TimeSlots    []TimeSlotRequest `json:"timeSlots" binding:"omitempty,dive"`
}

// UpdateOfferingRequest represents course offering update data. Term,
// subject and section identify the offering and cannot change; enrollment
// records denormalize them. A non-nil TimeSlots replaces the schedule
// wholesale.
type UpdateOfferingRequest struct {
	Title      *string           `json:"title,omitempty" binding:"omitempty,min=1" example:"Calculus I"`
	Instructor *string           `json:"instructor,omitempty"`
	Credits    *int              `json:"credits,omitempty" binding:"omitempty,min=0,max=30" example:"3"`
	IsOpen     *bool             `json:"isOpen,omitempty"`
	TimeSlots  []TimeSlotRequest `json:"timeSlots,omitempty" binding:"omitempty,dive"`
}

// TimeSlotResponse represents one meeting period in API responses.
type TimeSlotResponse struct {
	ID         int64  `json:"id"`
	WeekNumber *int   `json:"weekNumber,omitempty"`
	DayOfWeek  int    `json:"dayOfWeek" example:"1"`
	Period     string `json:"period,omitempty" example:"D1"`
	StartTime  string `json:"startTime" example:"09:00"`
	EndTime    string `json:"endTime" example:"10:00"`
	Location   string `json:"location,omitempty"`
}

// OfferingResponse represents a course offering with its schedule.
type OfferingResponse struct {
	ID           int64              `json:"id"`
	AcademicTerm string             `json:"academicTerm" example:"113-1"`
	SubjectCode  string             `json:"subjectCode" example:"MATH101"`
	SectionKey   string             `json:"sectionKey" example:"A"`
	Title        string             `json:"title" example:"Calculus I"`
	Instructor   string             `json:"instructor,omitempty"`
	Credits      int                `json:"credits" example:"3"`
	IsOpen       bool               `json:"isOpen"`
	TimeSlots    []TimeSlotResponse `json:"timeSlots"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// OfferingListResponse represents a page of course offerings.
type OfferingListResponse struct {
	Offerings []OfferingResponse `json:"offerings"`
	PaginationInfo
}

// OfferingFilterRequest represents offering list filter parameters.
type OfferingFilterRequest struct {
	AcademicTerm *string `form:"term,omitempty"`
	SubjectCode  *string `form:"subject,omitempty"`
	OpenOnly     bool    `form:"openOnly,default=false"`
	Page         int     `form:"page,default=1" binding:"min=1"`
	PageSize     int     `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// FromTimeSlot converts a model slot to its response shape.
func FromTimeSlot(s models.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{
		ID:         s.ID,
		WeekNumber: s.WeekNumber,
		DayOfWeek:  s.DayOfWeek,
		Period:     s.Period,
		StartTime:  s.StartTime.String(),
		EndTime:    s.EndTime.String(),
		Location:   s.Location,
	}
}

// FromCourseOffering converts a model offering to its response shape.
func FromCourseOffering(o *models.CourseOffering) OfferingResponse {
	if o == nil {
		return OfferingResponse{}
	}
	slots := make([]TimeSlotResponse, 0, len(o.TimeSlots))
	for _, s := range o.TimeSlots {
		slots = append(slots, FromTimeSlot(s))
	}
	return OfferingResponse{
		ID:           o.ID,
		AcademicTerm: o.AcademicTerm,
		SubjectCode:  o.SubjectCode,
		SectionKey:   o.SectionKey,
		Title:        o.Title,
		Instructor:   o.Instructor,
		Credits:      o.Credits,
		IsOpen:       o.IsOpen,
		TimeSlots:    slots,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/derya/retakereg/internal/app/models"
	"github.com/derya/retakereg/internal/middleware"
	"github.com/derya/retakereg/internal/pkg/apperrors"
)

type stubAdmissionService struct {
	decision models.AdmissionDecision
	err      error

	gotStudentID  int64
	gotOfferingID int64
}

func (s *stubAdmissionService) Admit(ctx context.Context, studentID, offeringID int64) (models.AdmissionDecision, error) {
	s.gotStudentID = studentID
	s.gotOfferingID = offeringID
	return s.decision, s.err
}

func newAdmissionRouter(svc *stubAdmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAdmissionController(svc)
	router.POST("/api/v1/enrollments", controller.Admit)
	return router
}

func postAdmission(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/enrollments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", recorder.Body.String(), err)
	}
	return body
}

func TestAdmitEndpointAccepted(t *testing.T) {
	enrollmentID := int64(42)
	svc := &stubAdmissionService{decision: models.AcceptedDecision(enrollmentID)}
	router := newAdmissionRouter(svc)

	recorder := postAdmission(t, router, `{"studentId":7,"courseOfferingId":3}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
	}
	if svc.gotStudentID != 7 || svc.gotOfferingID != 3 {
		t.Errorf("service called with (%d, %d), want (7, 3)", svc.gotStudentID, svc.gotOfferingID)
	}

	body := decodeBody(t, recorder)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %v", body)
	}
	if data["status"] != "ACCEPTED" {
		t.Errorf("status = %v, want ACCEPTED", data["status"])
	}
	if data["enrollmentId"] != float64(enrollmentID) {
		t.Errorf("enrollmentId = %v, want %d", data["enrollmentId"], enrollmentID)
	}
}

func TestAdmitEndpointRejectionIsStillOK(t *testing.T) {
	conflictWith := int64(9)
	svc := &stubAdmissionService{
		decision: models.ConflictDecision(models.ConflictResult{
			Kind:           models.ConflictTimeOverlap,
			WithOfferingID: conflictWith,
		}),
	}
	router := newAdmissionRouter(svc)

	recorder := postAdmission(t, router, `{"studentId":7,"courseOfferingId":3}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
	}

	body := decodeBody(t, recorder)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %v", body)
	}
	if data["status"] != "REJECTED" {
		t.Errorf("status = %v, want REJECTED", data["status"])
	}
	if data["reason"] != "TIME_OVERLAP" {
		t.Errorf("reason = %v, want TIME_OVERLAP", data["reason"])
	}
	if data["conflictWithOfferingId"] != float64(conflictWith) {
		t.Errorf("conflictWithOfferingId = %v, want %d", data["conflictWithOfferingId"], conflictWith)
	}
}

func TestAdmitEndpointErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		decision   models.AdmissionDecision
		err        error
		wantStatus int
	}{
		{
			name:       "unknown offering",
			decision:   models.FailedDecision(models.ReasonCourseNotFound),
			err:        apperrors.ErrOfferingNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "lock timeout",
			decision:   models.FailedDecision(models.ReasonLockTimeout),
			err:        apperrors.ErrLockTimeout,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown student",
			decision:   models.FailedDecision(models.ReasonStorageError),
			err:        apperrors.ErrStudentNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAdmissionService{decision: tt.decision, err: tt.err}
			router := newAdmissionRouter(svc)

			recorder := postAdmission(t, router, `{"studentId":7,"courseOfferingId":3}`)

			if recorder.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
			body := decodeBody(t, recorder)
			if body["error"] == nil {
				t.Errorf("expected error envelope, got %v", body)
			}
		})
	}
}

func TestAdmitEndpointRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"studentId":`},
		{name: "missing offering", body: `{"studentId":7}`},
		{name: "non-positive student", body: `{"studentId":0,"courseOfferingId":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAdmissionService{decision: models.AcceptedDecision(1)}
			router := newAdmissionRouter(svc)

			recorder := postAdmission(t, router, tt.body)

			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
			}
			if svc.gotStudentID != 0 && svc.gotOfferingID != 0 {
				t.Errorf("service should not be called for invalid payloads")
			}
		})
	}
}

// Keeps the HandleAPIError middleware honest about which sentinel maps to
// which status without spinning up the full router.
func TestHandleAPIErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "offering not found", err: apperrors.ErrOfferingNotFound, wantStatus: http.StatusNotFound},
		{name: "already enrolled", err: apperrors.ErrAlreadyEnrolled, wantStatus: http.StatusConflict},
		{name: "schedule conflict", err: apperrors.ErrScheduleConflict, wantStatus: http.StatusConflict},
		{name: "offering has enrollments", err: apperrors.ErrOfferingHasEnrollments, wantStatus: http.StatusConflict},
		{name: "validation failed", err: apperrors.ErrValidationFailed, wantStatus: http.StatusBadRequest},
		{name: "lock timeout", err: apperrors.ErrLockTimeout, wantStatus: http.StatusServiceUnavailable},
		{name: "database error", err: apperrors.ErrDatabaseOperation, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			middleware.HandleAPIError(ctx, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}

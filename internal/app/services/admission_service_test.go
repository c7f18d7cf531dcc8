package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/derya/retakereg/internal/app/models"
	"github.com/derya/retakereg/internal/pkg/apperrors"
	"github.com/derya/retakereg/internal/pkg/keylock"
)

var admissionNow = time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)

// fakeStore is an in-memory implementation of the admission ports. Its
// CreateActive enforces the same uniqueness rules as the partial indexes.
type fakeStore struct {
	mu          sync.Mutex
	offerings   map[int64]models.CourseOffering
	windows     map[string]models.RegistrationWindow
	enrollments []models.Enrollment
	nextID      int64
	readErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		offerings: make(map[int64]models.CourseOffering),
		windows:   make(map[string]models.RegistrationWindow),
	}
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*models.CourseOffering, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	offering, ok := f.offerings[id]
	if !ok {
		return nil, nil
	}
	return &offering, nil
}

func (f *fakeStore) GetByTerm(ctx context.Context, term string) (*models.RegistrationWindow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	window, ok := f.windows[term]
	if !ok {
		return nil, nil
	}
	return &window, nil
}

func (f *fakeStore) ListActiveJoined(ctx context.Context, studentID int64, academicTerm string) ([]models.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	var held []models.Enrollment
	for _, e := range f.enrollments {
		if e.StudentID != studentID || e.AcademicTerm != academicTerm || e.Status != models.EnrollmentActive {
			continue
		}
		offering := f.offerings[e.CourseOfferingID]
		e.Offering = &offering
		held = append(held, e)
	}
	return held, nil
}

func (f *fakeStore) CreateActive(ctx context.Context, enrollment *models.Enrollment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.enrollments {
		if e.Status != models.EnrollmentActive || e.StudentID != enrollment.StudentID {
			continue
		}
		if e.CourseOfferingID == enrollment.CourseOfferingID {
			return apperrors.ErrAlreadyEnrolled
		}
		if e.SubjectCode == enrollment.SubjectCode && e.AcademicTerm == enrollment.AcademicTerm {
			return apperrors.ErrScheduleConflict
		}
	}
	f.nextID++
	enrollment.ID = f.nextID
	enrollment.Status = models.EnrollmentActive
	enrollment.CreatedAt = admissionNow
	enrollment.UpdatedAt = admissionNow
	f.enrollments = append(f.enrollments, *enrollment)
	return nil
}

func (f *fakeStore) activeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.enrollments {
		if e.Status == models.EnrollmentActive {
			n++
		}
	}
	return n
}

func (f *fakeStore) addOffering(id int64, subject, section string, slots ...models.TimeSlot) {
	f.offerings[id] = models.CourseOffering{
		ID:           id,
		AcademicTerm: "113-1",
		SubjectCode:  subject,
		SectionKey:   section,
		Title:        subject + " retake",
		IsOpen:       true,
		TimeSlots:    slots,
	}
}

func (f *fakeStore) openWindow(term string) {
	opens := admissionNow.Add(-time.Hour)
	closes := admissionNow.Add(time.Hour)
	f.windows[term] = models.RegistrationWindow{AcademicTerm: term, OpensAt: &opens, ClosesAt: &closes}
}

func slot(day int, start, end models.MinuteOfDay) models.TimeSlot {
	return models.TimeSlot{DayOfWeek: day, StartTime: start, EndTime: end}
}

func newAdmissionHarness(store *fakeStore) *admissionServiceImpl {
	return &admissionServiceImpl{
		offerings:   store,
		enrollments: store,
		windows:     store,
		writer:      store,
		locks:       keylock.New(),
		lockWait:    500 * time.Millisecond,
		now:         func() time.Time { return admissionNow },
		logger:      zerolog.Nop(),
	}
}

func TestAdmitAcceptsFirstEnrollment(t *testing.T) {
	store := newFakeStore()
	store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
	store.openWindow("113-1")
	svc := newAdmissionHarness(store)

	decision, err := svc.Admit(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("Admit() error = %v", err)
	}
	if decision.Status != models.AdmissionAccepted {
		t.Fatalf("Admit() status = %s, want %s", decision.Status, models.AdmissionAccepted)
	}
	if decision.EnrollmentID == nil {
		t.Fatal("Admit() accepted without an enrollment ID")
	}
	if store.activeCount() != 1 {
		t.Errorf("active enrollments = %d, want 1", store.activeCount())
	}

	created := store.enrollments[0]
	if created.SubjectCode != "MATH101" || created.AcademicTerm != "113-1" {
		t.Errorf("enrollment denormalized fields = %s/%s, want MATH101/113-1",
			created.SubjectCode, created.AcademicTerm)
	}
}

func TestAdmitUnknownOffering(t *testing.T) {
	store := newFakeStore()
	store.openWindow("113-1")
	svc := newAdmissionHarness(store)

	decision, err := svc.Admit(context.Background(), 7, 99)
	if !errors.Is(err, apperrors.ErrOfferingNotFound) {
		t.Fatalf("Admit() error = %v, want ErrOfferingNotFound", err)
	}
	if decision.Status != models.AdmissionFailed || decision.Reason != models.ReasonCourseNotFound {
		t.Errorf("Admit() = %s/%s, want %s/%s",
			decision.Status, decision.Reason, models.AdmissionFailed, models.ReasonCourseNotFound)
	}
}

func TestAdmitClosedOffering(t *testing.T) {
	store := newFakeStore()
	store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
	offering := store.offerings[1]
	offering.IsOpen = false
	store.offerings[1] = offering
	store.openWindow("113-1")
	svc := newAdmissionHarness(store)

	_, err := svc.Admit(context.Background(), 7, 1)
	if !errors.Is(err, apperrors.ErrOfferingNotFound) {
		t.Fatalf("Admit() error = %v, want ErrOfferingNotFound", err)
	}
	if store.activeCount() != 0 {
		t.Errorf("active enrollments = %d, want 0", store.activeCount())
	}
}

func TestAdmitWindowBounds(t *testing.T) {
	opens := admissionNow.Add(-time.Hour)
	closes := admissionNow.Add(time.Hour)

	tests := []struct {
		name   string
		window *models.RegistrationWindow
		at     time.Time
		want   models.AdmissionStatus
	}{
		{name: "no window row", window: nil, at: admissionNow, want: models.AdmissionRejected},
		{name: "inside window", window: &models.RegistrationWindow{OpensAt: &opens, ClosesAt: &closes}, at: admissionNow, want: models.AdmissionAccepted},
		{name: "before opens", window: &models.RegistrationWindow{OpensAt: &opens, ClosesAt: &closes}, at: opens.Add(-time.Minute), want: models.AdmissionRejected},
		{name: "at opens", window: &models.RegistrationWindow{OpensAt: &opens, ClosesAt: &closes}, at: opens, want: models.AdmissionAccepted},
		{name: "at closes", window: &models.RegistrationWindow{OpensAt: &opens, ClosesAt: &closes}, at: closes, want: models.AdmissionRejected},
		{name: "after closes", window: &models.RegistrationWindow{OpensAt: &opens, ClosesAt: &closes}, at: closes.Add(time.Minute), want: models.AdmissionRejected},
		{name: "unbounded opens", window: &models.RegistrationWindow{ClosesAt: &closes}, at: admissionNow, want: models.AdmissionAccepted},
		{name: "unbounded closes", window: &models.RegistrationWindow{OpensAt: &opens}, at: admissionNow, want: models.AdmissionAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
			if tt.window != nil {
				w := *tt.window
				w.AcademicTerm = "113-1"
				store.windows["113-1"] = w
			}
			svc := newAdmissionHarness(store)
			svc.now = func() time.Time { return tt.at }

			decision, err := svc.Admit(context.Background(), 7, 1)
			if err != nil {
				t.Fatalf("Admit() error = %v", err)
			}
			if decision.Status != tt.want {
				t.Errorf("Admit() status = %s, want %s", decision.Status, tt.want)
			}
			if tt.want == models.AdmissionRejected && decision.Reason != models.ReasonWindowClosed {
				t.Errorf("Admit() reason = %s, want %s", decision.Reason, models.ReasonWindowClosed)
			}
		})
	}
}

func TestAdmitAlreadyEnrolledIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
	store.openWindow("113-1")
	svc := newAdmissionHarness(store)

	if _, err := svc.Admit(context.Background(), 7, 1); err != nil {
		t.Fatalf("first Admit() error = %v", err)
	}

	decision, err := svc.Admit(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("second Admit() error = %v", err)
	}
	if decision.Status != models.AdmissionRejected || decision.Reason != models.ReasonAlreadyEnrolled {
		t.Errorf("second Admit() = %s/%s, want %s/%s",
			decision.Status, decision.Reason, models.AdmissionRejected, models.ReasonAlreadyEnrolled)
	}
	if store.activeCount() != 1 {
		t.Errorf("active enrollments = %d, want 1 after repeat admit", store.activeCount())
	}
}

func TestAdmitRejectsTimeOverlap(t *testing.T) {
	store := newFakeStore()
	store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
	store.addOffering(2, "PHYS101", "A", slot(1, 570, 630))
	store.openWindow("113-1")
	svc := newAdmissionHarness(store)

	if _, err := svc.Admit(context.Background(), 7, 1); err != nil {
		t.Fatalf("setup Admit() error = %v", err)
	}

	decision, err := svc.Admit(context.Background(), 7, 2)
	if err != nil {
		t.Fatalf("Admit() error = %v", err)
	}
	if decision.Status != models.AdmissionRejected || decision.Reason != models.ReasonTimeOverlap {
		t.Fatalf("Admit() = %s/%s, want %s/%s",
			decision.Status, decision.Reason, models.AdmissionRejected, models.ReasonTimeOverlap)
	}
	if decision.ConflictWithOfferingID == nil || *decision.ConflictWithOfferingID != 1 {
		t.Errorf("ConflictWithOfferingID = %v, want 1", decision.ConflictWithOfferingID)
	}
	if store.activeCount() != 1 {
		t.Errorf("active enrollments = %d, want 1: rejection must not write", store.activeCount())
	}
}

func TestAdmitRejectsSameSubjectDifferentSection(t *testing.T) {
	store := newFakeStore()
	store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
	store.addOffering(2, "MATH101", "B", slot(3, 540, 600))
	store.openWindow("113-1")
	svc := newAdmissionHarness(store)

	if _, err := svc.Admit(context.Background(), 7, 1); err != nil {
		t.Fatalf("setup Admit() error = %v", err)
	}

	decision, err := svc.Admit(context.Background(), 7, 2)
	if err != nil {
		t.Fatalf("Admit() error = %v", err)
	}
	if decision.Status != models.AdmissionRejected || decision.Reason != models.ReasonSameSubjectSection {
		t.Fatalf("Admit() = %s/%s, want %s/%s",
			decision.Status, decision.Reason, models.AdmissionRejected, models.ReasonSameSubjectSection)
	}
	if decision.ConflictWithOfferingID == nil || *decision.ConflictWithOfferingID != 1 {
		t.Errorf("ConflictWithOfferingID = %v, want 1", decision.ConflictWithOfferingID)
	}
}

func TestAdmitHeldInOtherTermDoesNotBlock(t *testing.T) {
	store := newFakeStore()
	store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
	store.openWindow("113-1")

	// Same subject and same meeting time, held in the previous term.
	previous := models.CourseOffering{
		ID: 50, AcademicTerm: "112-2", SubjectCode: "MATH101", SectionKey: "A",
		IsOpen: true, TimeSlots: []models.TimeSlot{slot(1, 540, 600)},
	}
	store.offerings[50] = previous
	store.enrollments = append(store.enrollments, models.Enrollment{
		ID: 1, StudentID: 7, CourseOfferingID: 50,
		SubjectCode: "MATH101", AcademicTerm: "112-2", Status: models.EnrollmentActive,
	})
	store.nextID = 1

	svc := newAdmissionHarness(store)
	decision, err := svc.Admit(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("Admit() error = %v", err)
	}
	if decision.Status != models.AdmissionAccepted {
		t.Errorf("Admit() status = %s, want %s: other terms must not block",
			decision.Status, models.AdmissionAccepted)
	}
}

func TestAdmitCancelledEnrollmentDoesNotBlock(t *testing.T) {
	store := newFakeStore()
	store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
	store.addOffering(2, "MATH101", "B", slot(3, 540, 600))
	store.openWindow("113-1")

	store.enrollments = append(store.enrollments, models.Enrollment{
		ID: 1, StudentID: 7, CourseOfferingID: 1,
		SubjectCode: "MATH101", AcademicTerm: "113-1", Status: models.EnrollmentCancelled,
	})
	store.nextID = 1

	svc := newAdmissionHarness(store)
	decision, err := svc.Admit(context.Background(), 7, 2)
	if err != nil {
		t.Fatalf("Admit() error = %v", err)
	}
	if decision.Status != models.AdmissionAccepted {
		t.Errorf("Admit() status = %s, want %s: cancelled sections must not block",
			decision.Status, models.AdmissionAccepted)
	}
}

func TestAdmitLockTimeout(t *testing.T) {
	store := newFakeStore()
	store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
	store.openWindow("113-1")
	svc := newAdmissionHarness(store)
	svc.lockWait = 20 * time.Millisecond

	release, err := svc.locks.Acquire(context.Background(), 7)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer release()

	decision, err := svc.Admit(context.Background(), 7, 1)
	if !errors.Is(err, apperrors.ErrLockTimeout) {
		t.Fatalf("Admit() error = %v, want ErrLockTimeout", err)
	}
	if decision.Status != models.AdmissionFailed || decision.Reason != models.ReasonLockTimeout {
		t.Errorf("Admit() = %s/%s, want %s/%s",
			decision.Status, decision.Reason, models.AdmissionFailed, models.ReasonLockTimeout)
	}
	if store.activeCount() != 0 {
		t.Errorf("active enrollments = %d, want 0 after lock timeout", store.activeCount())
	}
}

func TestAdmitStorageErrorSurfacedOnce(t *testing.T) {
	store := newFakeStore()
	store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
	store.openWindow("113-1")
	store.readErr = errors.New("connection reset")
	svc := newAdmissionHarness(store)

	decision, err := svc.Admit(context.Background(), 7, 1)
	if err == nil {
		t.Fatal("Admit() error = nil, want storage error")
	}
	if decision.Status != models.AdmissionFailed || decision.Reason != models.ReasonStorageError {
		t.Errorf("Admit() = %s/%s, want %s/%s",
			decision.Status, decision.Reason, models.AdmissionFailed, models.ReasonStorageError)
	}
}

// rejectingWriter simulates losing a cross-process race: the insert hits the
// partial unique index even though the in-process check passed.
type rejectingWriter struct {
	*fakeStore
	err error
}

func (w *rejectingWriter) CreateActive(ctx context.Context, enrollment *models.Enrollment) error {
	return w.err
}

func TestAdmitWriterBackstops(t *testing.T) {
	tests := []struct {
		name       string
		writerErr  error
		wantStatus models.AdmissionStatus
		wantReason models.AdmissionReason
	}{
		{"duplicate offering", apperrors.ErrAlreadyEnrolled, models.AdmissionRejected, models.ReasonAlreadyEnrolled},
		{"duplicate subject", apperrors.ErrScheduleConflict, models.AdmissionRejected, models.ReasonSameSubjectSection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
			store.openWindow("113-1")
			svc := newAdmissionHarness(store)
			svc.writer = &rejectingWriter{fakeStore: store, err: tt.writerErr}

			decision, err := svc.Admit(context.Background(), 7, 1)
			if err != nil {
				t.Fatalf("Admit() error = %v", err)
			}
			if decision.Status != tt.wantStatus || decision.Reason != tt.wantReason {
				t.Errorf("Admit() = %s/%s, want %s/%s",
					decision.Status, decision.Reason, tt.wantStatus, tt.wantReason)
			}
		})
	}
}

func TestAdmitConcurrentConflictingOfferings(t *testing.T) {
	const n = 8

	store := newFakeStore()
	store.openWindow("113-1")
	// n offerings of distinct subjects, all meeting Monday 09:00-10:00.
	for i := int64(1); i <= n; i++ {
		store.addOffering(i, subjectFor(i), "A", slot(1, 540, 600))
	}
	svc := newAdmissionHarness(store)

	var wg sync.WaitGroup
	decisions := make([]models.AdmissionDecision, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			decisions[i], errs[i] = svc.Admit(context.Background(), 7, int64(i+1))
		}(i)
	}
	wg.Wait()

	accepted := 0
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("Admit() #%d error = %v", i, errs[i])
		}
		switch decisions[i].Status {
		case models.AdmissionAccepted:
			accepted++
		case models.AdmissionRejected:
			if decisions[i].Reason != models.ReasonTimeOverlap {
				t.Errorf("Admit() #%d reason = %s, want %s", i, decisions[i].Reason, models.ReasonTimeOverlap)
			}
		default:
			t.Errorf("Admit() #%d status = %s", i, decisions[i].Status)
		}
	}

	if accepted != 1 {
		t.Errorf("accepted = %d, want exactly 1", accepted)
	}
	if store.activeCount() != 1 {
		t.Errorf("active enrollments = %d, want exactly 1", store.activeCount())
	}
}

func TestAdmitConcurrentSameOffering(t *testing.T) {
	const n = 8

	store := newFakeStore()
	store.openWindow("113-1")
	store.addOffering(1, "MATH101", "A", slot(1, 540, 600))
	svc := newAdmissionHarness(store)

	var wg sync.WaitGroup
	decisions := make([]models.AdmissionDecision, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			decisions[i], _ = svc.Admit(context.Background(), 7, 1)
		}(i)
	}
	wg.Wait()

	accepted, duplicates := 0, 0
	for i := 0; i < n; i++ {
		switch {
		case decisions[i].Status == models.AdmissionAccepted:
			accepted++
		case decisions[i].Reason == models.ReasonAlreadyEnrolled:
			duplicates++
		}
	}

	if accepted != 1 || duplicates != n-1 {
		t.Errorf("accepted = %d, duplicates = %d, want 1 and %d", accepted, duplicates, n-1)
	}
	if store.activeCount() != 1 {
		t.Errorf("active enrollments = %d, want exactly 1", store.activeCount())
	}
}

func subjectFor(i int64) string {
	subjects := []string{"MATH101", "PHYS101", "CHEM101", "BIO101", "CS101", "ENG101", "HIST101", "ECON101"}
	return subjects[(i-1)%int64(len(subjects))]
}

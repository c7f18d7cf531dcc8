package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appModels "github.com/derya/retakereg/internal/app/models"
	appRepos "github.com/derya/retakereg/internal/app/repositories"
	"github.com/derya/retakereg/internal/db"
	"github.com/derya/retakereg/internal/pkg/apperrors"
)

// demoTerm is the academic term the demo data lives in.
const demoTerm = "113-1"

// CreateDefaultData seeds a demo term so a fresh install has something to
// register against: an open registration window, a handful of retake
// offerings with overlapping schedules, a few roster entries with their
// required-course lists, and one legacy pending application. Every step is
// idempotent, so running the seed twice leaves the data unchanged.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(database.Pool)
	offeringRepo := appRepos.NewOfferingRepository(database.Pool)
	windowRepo := appRepos.NewWindowRepository(database.Pool)
	requirementRepo := appRepos.NewRequirementRepository(database.Pool)

	lgr.Info().Str("term", demoTerm).Msg("Checking/Creating default data...")
	var finalErr error // To collect potential errors without stopping the process

	// --- Registration window --- //
	now := time.Now()
	opensAt := now.Add(-7 * 24 * time.Hour)
	closesAt := now.Add(14 * 24 * time.Hour)
	window := &appModels.RegistrationWindow{
		AcademicTerm: demoTerm,
		OpensAt:      &opensAt,
		ClosesAt:     &closesAt,
		SetBy:        "seed",
	}
	if err := windowRepo.Upsert(ctx, window); err != nil {
		lgr.Error().Err(err).Msg("Error seeding registration window")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Course offerings --- //
	// MATH101 runs two sections; PHYS101 overlaps MATH101 section A on
	// Monday mornings.
	offerings := []*appModels.CourseOffering{
		{
			AcademicTerm: demoTerm, SubjectCode: "MATH101", SectionKey: "A",
			Title: "Calculus I", Instructor: "Prof. Wu", Credits: 4, IsOpen: true,
			TimeSlots: []appModels.TimeSlot{
				slot(1, "09:00", "11:00", "D1", "A-302"),
				slot(4, "09:00", "10:00", "D1", "A-302"),
			},
		},
		{
			AcademicTerm: demoTerm, SubjectCode: "MATH101", SectionKey: "B",
			Title: "Calculus I", Instructor: "Prof. Hsieh", Credits: 4, IsOpen: true,
			TimeSlots: []appModels.TimeSlot{
				slot(3, "13:00", "15:00", "D5", "A-305"),
			},
		},
		{
			AcademicTerm: demoTerm, SubjectCode: "PHYS101", SectionKey: "A",
			Title: "General Physics I", Instructor: "Prof. Kao", Credits: 3, IsOpen: true,
			TimeSlots: []appModels.TimeSlot{
				slot(1, "10:00", "12:00", "D2", "S-110"),
			},
		},
		{
			AcademicTerm: demoTerm, SubjectCode: "CHEM101", SectionKey: "A",
			Title: "General Chemistry", Instructor: "Prof. Liao", Credits: 3, IsOpen: true,
			TimeSlots: []appModels.TimeSlot{
				slot(4, "14:00", "16:00", "D6", "S-201"),
			},
		},
		{
			// Not open for registration.
			AcademicTerm: demoTerm, SubjectCode: "ENG101", SectionKey: "A",
			Title: "Freshman English", Instructor: "Prof. Tsai", Credits: 2, IsOpen: false,
			TimeSlots: []appModels.TimeSlot{
				slot(5, "09:00", "11:00", "D1", "H-404"),
			},
		},
	}
	offeringIDs := make(map[string]int64, len(offerings))
	for _, offering := range offerings {
		id, err := ensureOffering(ctx, offeringRepo, offering)
		if err != nil {
			lgr.Error().Err(err).
				Str("subject", offering.SubjectCode).
				Str("section", offering.SectionKey).
				Msg("Error seeding course offering")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		offeringIDs[offering.SubjectCode+"-"+offering.SectionKey] = id
	}

	// --- Students --- //
	students := []*appModels.Student{
		{StudentNumber: "B11109001", FullName: "Lin Yu-Chen", Email: "b11109001@school.edu"},
		{StudentNumber: "B11109002", FullName: "Chen Wei-Ting", Email: "b11109002@school.edu"},
		{StudentNumber: "B11109003", FullName: "Huang Mei-Ling", Email: "b11109003@school.edu"},
	}
	studentIDs := make(map[string]int64, len(students))
	for _, student := range students {
		id, err := ensureStudent(ctx, studentRepo, student)
		if err != nil {
			lgr.Error().Err(err).Str("studentNumber", student.StudentNumber).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		studentIDs[student.StudentNumber] = id
	}

	// --- Required courses --- //
	requirements := []struct {
		studentNumber string
		subjectCode   string
		subjectName   string
	}{
		{"B11109001", "MATH101", "Calculus I"},
		{"B11109001", "PHYS101", "General Physics I"},
		{"B11109002", "MATH101", "Calculus I"},
		{"B11109003", "CHEM101", "General Chemistry"},
	}
	for _, req := range requirements {
		studentID, ok := studentIDs[req.studentNumber]
		if !ok {
			continue
		}
		requirement := &appModels.RequiredCourse{
			StudentID:    studentID,
			SubjectCode:  req.subjectCode,
			SubjectName:  req.subjectName,
			AcademicTerm: demoTerm,
			Note:         "failed in 112-2",
		}
		if err := requirementRepo.Create(ctx, requirement); err != nil &&
			!errors.Is(err, apperrors.ErrRequirementAlreadyExists) {
			lgr.Error().Err(err).
				Str("studentNumber", req.studentNumber).
				Str("subject", req.subjectCode).
				Msg("Error seeding required course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Legacy pending application --- //
	// Applications filed on paper are keyed in as PENDING and either
	// confirmed by staff or swept up by the expiry job. One is seeded so
	// those paths have data to act on.
	pendingStudent, okStudent := studentIDs["B11109003"]
	pendingOffering, okOffering := offeringIDs["CHEM101-A"]
	if okStudent && okOffering {
		err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			return ensurePendingApplication(ctx, tx, pendingStudent, pendingOffering, "CHEM101", demoTerm)
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Error seeding pending application")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr // Return collected errors, if any
}

// ensureOffering creates the offering or resolves the ID of the existing one.
func ensureOffering(ctx context.Context, repo *appRepos.OfferingRepository, offering *appModels.CourseOffering) (int64, error) {
	err := repo.Create(ctx, offering)
	if err == nil {
		return offering.ID, nil
	}
	if !errors.Is(err, apperrors.ErrOfferingAlreadyExists) {
		return 0, err
	}

	existing, _, err := repo.GetAll(ctx, &offering.AcademicTerm, &offering.SubjectCode, false, 1, 50)
	if err != nil {
		return 0, err
	}
	for _, o := range existing {
		if o.SectionKey == offering.SectionKey {
			return o.ID, nil
		}
	}
	return 0, apperrors.ErrOfferingNotFound
}

// ensureStudent creates the student or resolves the ID of the existing one.
func ensureStudent(ctx context.Context, repo *appRepos.StudentRepository, student *appModels.Student) (int64, error) {
	err := repo.Create(ctx, student)
	if err == nil {
		return student.ID, nil
	}
	if !errors.Is(err, apperrors.ErrStudentAlreadyExists) {
		return 0, err
	}

	existing, err := repo.GetByStudentNumber(ctx, student.StudentNumber)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, apperrors.ErrStudentNotFound
	}
	return existing.ID, nil
}

// ensurePendingApplication inserts the PENDING row unless the student
// already has one, or any other record, for the offering. PENDING rows have
// no unique index backing them, so the existence check and the insert share
// a transaction.
func ensurePendingApplication(ctx context.Context, tx pgx.Tx, studentID, offeringID int64, subjectCode, academicTerm string) error {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM enrollments
			WHERE student_id = $1 AND course_offering_id = $2
		)
	`, studentID, offeringID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO enrollments (student_id, course_offering_id, subject_code, academic_term, status)
		VALUES ($1, $2, $3, $4, $5)
	`, studentID, offeringID, subjectCode, academicTerm, string(appModels.EnrollmentPending))
	return err
}

// slot builds a seed time slot without the error plumbing of the parsers;
// the literals above are known-valid.
func slot(day int, start, end, period, location string) appModels.TimeSlot {
	startMin, _ := appModels.ParseMinuteOfDay(start)
	endMin, _ := appModels.ParseMinuteOfDay(end)
	return appModels.TimeSlot{
		DayOfWeek: day,
		Period:    period,
		StartTime: startMin,
		EndTime:   endMin,
		Location:  location,
	}
}

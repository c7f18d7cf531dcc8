package services

// Services defined in this package:
// - AdmissionService: Decides retake registration requests
// - OfferingService: Handles course offering management
// - EnrollmentService: Handles enrollment records and cancellation
// - WindowService: Handles registration window management
// - StudentService: Handles the student roster
// - RequirementService: Handles required-course lists

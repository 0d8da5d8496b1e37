// Package services holds the business rules of the catalog and enrollment services.
// Services depend on the repository store interfaces, never on a concrete database.
package services

// Services groups the services a process role runs. Fields for services the role does
// not own are nil.
type Services struct {
	Course     CourseService
	Student    StudentService
	Enrollment EnrollmentService
	Reconciler *SeatReconciler
}

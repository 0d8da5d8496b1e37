package dto

// EnrollRequest asks to enroll a student (by student number) in a course.
// A status in the payload is accepted for compatibility and ignored.
type EnrollRequest struct {
	CourseID  string `json:"courseId" binding:"required" example:"8d0f6c1e-2a7b-4a51-9d0c-6f3f0c1b2a11"`
	StudentID string `json:"studentId" binding:"required" example:"S2024001"`
	Status    string `json:"status,omitempty" swaggerignore:"true"`
}

// ReconcileResponse summarises one seat reconciliation pass.
type ReconcileResponse struct {
	Courses int `json:"courses" example:"12"`
	Updated int `json:"updated" example:"11"`
	Failed  int `json:"failed" example:"1"`
}

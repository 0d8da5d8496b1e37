package dto

import "github.com/yigit/campus/internal/app/models"

// StudentRequest is used for both create and update. On update the student number must
// match the stored one.
type StudentRequest struct {
	StudentID string `json:"studentId" binding:"required,max=20" example:"S2024001"`
	Name      string `json:"name" binding:"required,max=50" example:"Grace Hopper"`
	Major     string `json:"major" binding:"required,max=50" example:"Computer Science"`
	Grade     int    `json:"grade" binding:"required" example:"2024"`
	Email     string `json:"email" binding:"required,email,max=100" example:"grace@campus.edu"`
}

// ToModel builds a new student from the request.
func (r *StudentRequest) ToModel() *models.Student {
	return models.NewStudent(r.StudentID, r.Name, r.Major, r.Grade, r.Email)
}

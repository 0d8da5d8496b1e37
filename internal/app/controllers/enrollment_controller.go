package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/middleware"
)

// EnrollmentController handles enrollment operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
	reconciler        *services.SeatReconciler
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService, reconciler *services.SeatReconciler) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		reconciler:        reconciler,
	}
}

// Enroll enrolls a student in a course
// @Summary Enroll a student
// @Description Creates an ACTIVE enrollment after checking course, student, duplicates and capacity. The course seat counter is updated on a best-effort basis.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Course and student"
// @Success 201 {object} dto.Result{data=models.Enrollment} "Enrolled"
// @Failure 400 {object} dto.Result "Duplicate enrollment or capacity exceeded"
// @Failure 404 {object} dto.Result "Course or student not found"
// @Failure 503 {object} dto.Result "Catalog unavailable"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx.Request.Context(), req.CourseID, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Created(enrollment))
}

// Drop drops an enrollment
// @Summary Drop an enrollment
// @Description Marks the enrollment DROPPED. The record is kept.
// @Tags enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} dto.Result "Dropped"
// @Failure 400 {object} dto.Result "Already dropped"
// @Failure 404 {object} dto.Result "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) Drop(ctx *gin.Context) {
	if err := c.enrollmentService.Drop(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(nil))
}

// GetAllEnrollments retrieves all enrollments
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {object} dto.Result{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(enrollments))
}

// GetEnrollmentByID retrieves an enrollment by ID
// @Summary Get enrollment details
// @Tags enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} dto.Result{data=models.Enrollment} "Enrollment retrieved successfully"
// @Failure 404 {object} dto.Result "Enrollment not found"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(enrollment))
}

// GetEnrollmentsByCourse retrieves the enrollments of a course
// @Summary List a course's enrollments
// @Tags enrollments
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.Result{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 404 {object} dto.Result "Course not found"
// @Failure 503 {object} dto.Result "Catalog unavailable"
// @Router /enrollments/course/{courseId} [get]
func (c *EnrollmentController) GetEnrollmentsByCourse(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetEnrollmentsByCourse(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(enrollments))
}

// GetEnrollmentsByCourseAndStatus filters a course's enrollments by status
// @Summary List a course's enrollments by status
// @Tags enrollments
// @Produce json
// @Param courseId path string true "Course ID"
// @Param status query string true "Status" Enums(ACTIVE, DROPPED, COMPLETED)
// @Success 200 {object} dto.Result{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.Result "Invalid status"
// @Failure 404 {object} dto.Result "Course not found"
// @Router /enrollments/course/{courseId}/status [get]
func (c *EnrollmentController) GetEnrollmentsByCourseAndStatus(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetEnrollmentsByCourseAndStatus(
		ctx.Request.Context(), ctx.Param("courseId"), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(enrollments))
}

// GetEnrollmentsByStudent retrieves the enrollments of a student
// @Summary List a student's enrollments
// @Tags enrollments
// @Produce json
// @Param studentId path string true "Student number"
// @Success 200 {object} dto.Result{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 404 {object} dto.Result "Student not found"
// @Router /enrollments/student/{studentId} [get]
func (c *EnrollmentController) GetEnrollmentsByStudent(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetEnrollmentsByStudent(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(enrollments))
}

// GetEnrollmentsByStudentAndStatus filters a student's enrollments by status
// @Summary List a student's enrollments by status
// @Tags enrollments
// @Produce json
// @Param studentId path string true "Student number"
// @Param status query string true "Status" Enums(ACTIVE, DROPPED, COMPLETED)
// @Success 200 {object} dto.Result{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.Result "Invalid status"
// @Failure 404 {object} dto.Result "Student not found"
// @Router /enrollments/student/{studentId}/status [get]
func (c *EnrollmentController) GetEnrollmentsByStudentAndStatus(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetEnrollmentsByStudentAndStatus(
		ctx.Request.Context(), ctx.Param("studentId"), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(enrollments))
}

// CountActiveByCourse counts ACTIVE enrollments of a course
// @Summary Count a course's active enrollments
// @Tags enrollments
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.Result{data=int} "Active enrollment count"
// @Failure 404 {object} dto.Result "Course not found"
// @Router /enrollments/course/{courseId}/active-count [get]
func (c *EnrollmentController) CountActiveByCourse(ctx *gin.Context) {
	count, err := c.enrollmentService.CountActiveByCourse(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(count))
}

// Reconcile runs one seat reconciliation pass
// @Summary Reconcile course seat counters
// @Description Pushes the ACTIVE enrollment count of every enrolled course to the catalog
// @Tags enrollments
// @Produce json
// @Security ServiceAuth
// @Success 200 {object} dto.Result{data=dto.ReconcileResponse} "Reconciliation summary"
// @Failure 401 {object} dto.Result "Missing or invalid service token"
// @Router /enrollments/reconcile [post]
func (c *EnrollmentController) Reconcile(ctx *gin.Context) {
	result, err := c.reconciler.ReconcileAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(result))
}

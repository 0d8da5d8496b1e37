package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/middleware"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/helpers"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetAllStudents retrieves all students
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {object} dto.Result{data=[]models.Student} "Students retrieved successfully"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(students))
}

// GetStudentByID retrieves a student by ID
// @Summary Get student details
// @Tags students
// @Produce json
// @Param id path string true "Student record ID"
// @Success 200 {object} dto.Result{data=models.Student} "Student retrieved successfully"
// @Failure 404 {object} dto.Result "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(student))
}

// GetStudentByNumber retrieves a student by student number
// @Summary Get student by student number
// @Tags students
// @Produce json
// @Param studentId path string true "Student number"
// @Success 200 {object} dto.Result{data=models.Student} "Student retrieved successfully"
// @Failure 404 {object} dto.Result "Student not found"
// @Router /students/studentId/{studentId} [get]
func (c *StudentController) GetStudentByNumber(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByNumber(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(student))
}

// GetStudentsByMajor retrieves one page of students in a major
// @Summary List students by major
// @Tags students
// @Produce json
// @Param major path string true "Major"
// @Param pageNum query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.Result{data=dto.PaginatedResponse} "Students retrieved successfully"
// @Router /students/major/{major} [get]
func (c *StudentController) GetStudentsByMajor(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	result, err := c.studentService.GetStudentsByMajor(ctx.Request.Context(), ctx.Param("major"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(result))
}

// GetStudentsByGrade retrieves one page of students in a grade
// @Summary List students by grade
// @Tags students
// @Produce json
// @Param grade path int true "Grade"
// @Param pageNum query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.Result{data=dto.PaginatedResponse} "Students retrieved successfully"
// @Failure 400 {object} dto.Result "Grade is not a number"
// @Router /students/grade/{grade} [get]
func (c *StudentController) GetStudentsByGrade(ctx *gin.Context) {
	grade, err := strconv.Atoi(ctx.Param("grade"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("grade must be a number"))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	result, err := c.studentService.GetStudentsByGrade(ctx.Request.Context(), grade, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(result))
}

// FilterStudents retrieves students matching major and grade
// @Summary Filter students by major and grade
// @Tags students
// @Produce json
// @Param major query string true "Major"
// @Param grade query int true "Grade"
// @Success 200 {object} dto.Result{data=[]models.Student} "Students retrieved successfully"
// @Failure 400 {object} dto.Result "Missing or invalid filter"
// @Router /students/filter [get]
func (c *StudentController) FilterStudents(ctx *gin.Context) {
	major := ctx.Query("major")
	grade, err := strconv.Atoi(ctx.Query("grade"))
	if major == "" || err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("major and numeric grade are required"))
		return
	}

	students, err := c.studentService.GetStudentsByMajorAndGrade(ctx.Request.Context(), major, grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(students))
}

// CreateStudent handles student creation
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.Result{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.Result "Invalid data or duplicate student number/email"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Created(student))
}

// UpdateStudent updates an existing student
// @Summary Update a student
// @Description Replaces name, major, grade and email. The student number cannot change.
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student record ID"
// @Param request body dto.StudentRequest true "Updated student information"
// @Success 200 {object} dto.Result{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.Result "Invalid data, number change or email taken"
// @Failure 404 {object} dto.Result "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("id"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(student))
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Description Refused while any enrollment references the student
// @Tags students
// @Produce json
// @Param id path string true "Student record ID"
// @Success 200 {object} dto.Result "Student deleted successfully"
// @Failure 400 {object} dto.Result "Student has enrollments"
// @Failure 404 {object} dto.Result "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(nil))
}

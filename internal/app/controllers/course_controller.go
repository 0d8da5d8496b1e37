package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/middleware"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/helpers"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses retrieves all courses
// @Summary List courses
// @Description Returns every course ordered by code
// @Tags courses
// @Produce json
// @Success 200 {object} dto.Result{data=[]models.Course} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(courses))
}

// GetCoursePage retrieves one page of courses
// @Summary List courses by page
// @Description Returns one page of courses ordered by code
// @Tags courses
// @Produce json
// @Param pageNum query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.Result{data=dto.PaginatedResponse} "Course page retrieved successfully"
// @Router /courses/page [get]
func (c *CourseController) GetCoursePage(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	result, err := c.courseService.GetCoursePage(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(result))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.Result{data=models.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.Result "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(course))
}

// GetCourseByCode retrieves a course by code
// @Summary Get course by code
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.Result{data=models.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.Result "Course not found"
// @Router /courses/code/{code} [get]
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByCode(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(course))
}

// GetCoursesByInstructor retrieves the courses of one instructor
// @Summary List an instructor's courses
// @Tags courses
// @Produce json
// @Param instructorId path string true "Instructor ID"
// @Success 200 {object} dto.Result{data=[]models.Course} "Courses retrieved successfully"
// @Router /courses/instructor/{instructorId} [get]
func (c *CourseController) GetCoursesByInstructor(ctx *gin.Context) {
	courses, err := c.courseService.GetCoursesByInstructor(ctx.Request.Context(), ctx.Param("instructorId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(courses))
}

// GetAvailableCourses retrieves courses with free seats
// @Summary List courses with free seats
// @Tags courses
// @Produce json
// @Success 200 {object} dto.Result{data=[]models.Course} "Courses retrieved successfully"
// @Router /courses/available [get]
func (c *CourseController) GetAvailableCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAvailableCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(courses))
}

// SearchCourses searches course titles
// @Summary Search courses by title
// @Description Case-insensitive substring match on the title, paged
// @Tags courses
// @Produce json
// @Param keyword query string true "Title keyword"
// @Param pageNum query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.Result{data=dto.PaginatedResponse} "Matching courses"
// @Failure 400 {object} dto.Result "Missing keyword"
// @Router /courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	keyword := strings.TrimSpace(ctx.Query("keyword"))
	if keyword == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("keyword is required"))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	result, err := c.courseService.SearchCourses(ctx.Request.Context(), keyword, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(result))
}

// CreateCourse handles course creation
// @Summary Create a course
// @Description Creates a course with zero seats taken. The code must be unique and the schedule must not overlap another course.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.Result{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.Result "Invalid data, duplicate code or schedule conflict"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Created(course))
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Description Replaces title, instructor, schedule and capacity. The code cannot change and enrolled is ignored.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Updated course information"
// @Success 200 {object} dto.Result{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.Result "Invalid data, code change or schedule conflict"
// @Failure 404 {object} dto.Result "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), ctx.Param("id"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(course))
}

// UpdateEnrolled overwrites the seat counter of a course
// @Summary Set the enrolled count
// @Description Seat-count path used by the enrollment service
// @Tags courses
// @Accept json
// @Produce json
// @Security ServiceAuth
// @Param id path string true "Course ID"
// @Param request body dto.UpdateEnrolledRequest true "New enrolled count"
// @Success 200 {object} dto.Result{data=models.Course} "Seat counter updated"
// @Failure 400 {object} dto.Result "Invalid count"
// @Failure 401 {object} dto.Result "Missing or invalid service token"
// @Failure 403 {object} dto.Result "Caller is not the enrollment service"
// @Failure 404 {object} dto.Result "Course not found"
// @Router /courses/{id}/enrolled [put]
func (c *CourseController) UpdateEnrolled(ctx *gin.Context) {
	var req dto.UpdateEnrolledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateEnrolled(ctx.Request.Context(), ctx.Param("id"), *req.Enrolled)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(course))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.Result "Course deleted successfully"
// @Failure 400 {object} dto.Result "Course still has enrollments"
// @Failure 404 {object} dto.Result "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(nil))
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/controllers"
	"github.com/yigit/campus/internal/middleware"
	"github.com/yigit/campus/internal/pkg/auth"
)

// Controllers groups the handlers a role exposes. Nil controllers are not mounted.
type Controllers struct {
	Course     *controllers.CourseController
	Student    *controllers.StudentController
	Enrollment *controllers.EnrollmentController
	Health     *controllers.HealthController
	// SeatPath mounts PUT /api/courses/:id/enrolled. Only a standalone catalog needs it;
	// in a single process the workflow updates seats in-process.
	SeatPath bool
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrls Controllers, authMiddleware *middleware.AuthMiddleware) {
	if ctrls.Health != nil {
		router.GET("/ping", ctrls.Health.Ping)
		router.GET("/health", ctrls.Health.Health)
	}

	api := router.Group("/api")

	if ctrls.Course != nil {
		registerCourseRoutes(api, ctrls.Course, ctrls.SeatPath, authMiddleware)
	}
	if ctrls.Student != nil {
		registerStudentRoutes(api, ctrls.Student)
	}
	if ctrls.Enrollment != nil {
		registerEnrollmentRoutes(api, ctrls.Enrollment, authMiddleware)
	}
}

func registerCourseRoutes(api *gin.RouterGroup, c *controllers.CourseController, seatPath bool, authMiddleware *middleware.AuthMiddleware) {
	courses := api.Group("/courses")
	{
		courses.GET("", c.GetAllCourses)
		courses.GET("/page", c.GetCoursePage)
		courses.GET("/available", c.GetAvailableCourses)
		courses.GET("/search", c.SearchCourses)
		courses.GET("/code/:code", c.GetCourseByCode)
		courses.GET("/instructor/:instructorId", c.GetCoursesByInstructor)
		courses.GET("/:id", c.GetCourseByID)
		courses.POST("", c.CreateCourse)
		courses.PUT("/:id", c.UpdateCourse)
		courses.DELETE("/:id", c.DeleteCourse)
	}

	if !seatPath {
		return
	}

	// Seat-count path, called by the enrollment service
	seats := courses.Group("")
	seats.Use(authMiddleware.ServiceAuth(auth.EnrollmentService))
	{
		seats.PUT("/:id/enrolled", c.UpdateEnrolled)
	}
}

func registerStudentRoutes(api *gin.RouterGroup, c *controllers.StudentController) {
	students := api.Group("/students")
	{
		students.GET("", c.GetAllStudents)
		students.GET("/filter", c.FilterStudents)
		students.GET("/studentId/:studentId", c.GetStudentByNumber)
		students.GET("/major/:major", c.GetStudentsByMajor)
		students.GET("/grade/:grade", c.GetStudentsByGrade)
		students.GET("/:id", c.GetStudentByID)
		students.POST("", c.CreateStudent)
		students.PUT("/:id", c.UpdateStudent)
		students.DELETE("/:id", c.DeleteStudent)
	}
}

func registerEnrollmentRoutes(api *gin.RouterGroup, c *controllers.EnrollmentController, authMiddleware *middleware.AuthMiddleware) {
	enrollments := api.Group("/enrollments")
	{
		enrollments.GET("", c.GetAllEnrollments)
		enrollments.POST("", c.Enroll)
		enrollments.POST("/reconcile", authMiddleware.ServiceAuth(), c.Reconcile)
		enrollments.GET("/course/:courseId", c.GetEnrollmentsByCourse)
		enrollments.GET("/course/:courseId/status", c.GetEnrollmentsByCourseAndStatus)
		enrollments.GET("/course/:courseId/active-count", c.CountActiveByCourse)
		enrollments.GET("/student/:studentId", c.GetEnrollmentsByStudent)
		enrollments.GET("/student/:studentId/status", c.GetEnrollmentsByStudentAndStatus)
		enrollments.GET("/:id", c.GetEnrollmentByID)
		enrollments.DELETE("/:id", c.Drop)
	}
}

package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campus/internal/app/controllers"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories/memory"
	"github.com/yigit/campus/internal/app/routes"
	"github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/middleware"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/auth"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newAPI mounts every route the "all" role serves on memory storage.
func newAPI(t *testing.T) *gin.Engine {
	t.Helper()
	return newAPIWith(t, auth.NewJWTService(auth.JWTConfig{}), false)
}

// newAPIWith wires every controller on memory storage behind the given token service.
func newAPIWith(t *testing.T, tokens *auth.JWTService, seatPath bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := memory.NewRepositories()
	courses := services.NewCourseService(repos.Courses,
		services.CourseOptions{References: repos.Enrollments}, zerolog.Nop())
	directory := services.NewLocalCourseDirectory(courses)
	students := services.NewStudentService(repos.Students, repos.Enrollments, zerolog.Nop())
	enrollments := services.NewEnrollmentService(repos.Enrollments, repos.Students, directory,
		services.EnrollmentOptions{AllowReenroll: true}, zerolog.Nop())
	reconciler := services.NewSeatReconciler(repos.Enrollments, directory, 2, zerolog.Nop())

	router := gin.New()
	routes.SetupRouter(router, routes.Controllers{
		Course:     controllers.NewCourseController(courses),
		Student:    controllers.NewStudentController(students),
		Enrollment: controllers.NewEnrollmentController(enrollments, reconciler),
		Health:     controllers.NewHealthController("all", nil),
		SeatPath:   seatPath,
	}, middleware.NewAuthMiddleware(tokens))
	return router
}

func call(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func coursePayload(code, day string, capacity int) map[string]interface{} {
	return map[string]interface{}{
		"code":  code,
		"title": "Course " + code,
		"instructor": map[string]interface{}{
			"id": "T001", "name": "Ada Lovelace", "email": "ada@campus.edu",
		},
		"schedule": map[string]interface{}{
			"dayOfWeek": day, "startTime": "09:00", "endTime": "11:00", "expectedAttendance": capacity,
		},
		"capacity": capacity,
	}
}

func studentPayload(number string) map[string]interface{} {
	return map[string]interface{}{
		"studentId": number,
		"name":      "Student " + number,
		"major":     "Computer Science",
		"grade":     2024,
		"email":     number + "@campus.edu",
	}
}

func TestCourseEndpoints(t *testing.T) {
	router := newAPI(t)

	w, env := call(t, router, http.MethodPost, "/api/courses", coursePayload("CS101", "MONDAY", 30))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, http.StatusCreated, env.Code)

	var course models.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Equal(t, 0, course.Enrolled)

	w, env = call(t, router, http.MethodPost, "/api/courses", coursePayload("CS101", "FRIDAY", 30))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, env.Code, "envelope code mirrors the status")

	w, env = call(t, router, http.MethodPost, "/api/courses", coursePayload("CS102", "MONDAY", 30))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "schedule conflict with course CS101")

	w, _ = call(t, router, http.MethodGet, "/api/courses/"+course.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, router, http.MethodGet, "/api/courses/code/CS101", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = call(t, router, http.MethodGet, "/api/courses/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, env.Code)

	w, _ = call(t, router, http.MethodGet, "/api/courses/page?pageNum=1&pageSize=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, router, http.MethodGet, "/api/courses/search?keyword=course", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = call(t, router, http.MethodGet, "/api/courses/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "keyword is required", env.Message)

	w, _ = call(t, router, http.MethodPut, "/api/courses/"+course.ID+"/enrolled", map[string]int{"enrolled": 999})
	assert.Equal(t, http.StatusNotFound, w.Code, "the seat path is not mounted when both halves share a process")

	w, _ = call(t, router, http.MethodPost, "/api/students", studentPayload("S1"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w, _ = call(t, router, http.MethodPost, "/api/enrollments", map[string]string{"courseId": course.ID, "studentId": "S1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	update := coursePayload("CS101", "MONDAY", 40)
	update["enrolled"] = 99
	w, env = call(t, router, http.MethodPut, "/api/courses/"+course.ID, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Equal(t, 40, course.Capacity)
	assert.Equal(t, 1, course.Enrolled, "the update body cannot move the seat counter")

	w, env = call(t, router, http.MethodPut, "/api/courses/"+course.ID, coursePayload("CS999", "MONDAY", 40))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "CS101")
}

func TestHugePageNumberReturnsEmptyPage(t *testing.T) {
	router := newAPI(t)

	w, _ := call(t, router, http.MethodPost, "/api/courses", coursePayload("CS101", "MONDAY", 30))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w, _ = call(t, router, http.MethodPost, "/api/students", studentPayload("S1"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	for _, path := range []string{
		"/api/courses/page?pageNum=1000000000000000000&pageSize=10",
		"/api/courses/search?keyword=course&pageNum=1000000000000000000",
		"/api/students/major/Computer%20Science?pageNum=1000000000000000000",
	} {
		w, env := call(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)

		var page struct {
			Items []json.RawMessage `json:"items"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &page), path)
		assert.Empty(t, page.Items, path)
	}
}

func TestBindingErrors(t *testing.T) {
	router := newAPI(t)

	w, env := call(t, router, http.MethodPost, "/api/courses", `{"code":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, env.Message)

	payload := coursePayload("CS101", "MONDAY", 30)
	delete(payload, "title")
	w, env = call(t, router, http.MethodPost, "/api/courses", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "title is required")

	w, env = call(t, router, http.MethodPost, "/api/students", map[string]interface{}{"studentId": "S1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "name is required")
}

func TestEnrollmentFlow(t *testing.T) {
	router := newAPI(t)

	w, env := call(t, router, http.MethodPost, "/api/courses", coursePayload("C1", "MONDAY", 2))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var course models.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))

	for _, n := range []string{"S1", "S2", "S3"} {
		w, _ = call(t, router, http.MethodPost, "/api/students", studentPayload(n))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	var first models.Enrollment
	for i, n := range []string{"S1", "S2"} {
		w, env = call(t, router, http.MethodPost, "/api/enrollments", map[string]string{"courseId": course.ID, "studentId": n})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		if i == 0 {
			require.NoError(t, json.Unmarshal(env.Data, &first))
		}
	}

	w, env = call(t, router, http.MethodPost, "/api/enrollments", map[string]string{"courseId": course.ID, "studentId": "S3"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "capacity exceeded")

	w, env = call(t, router, http.MethodPost, "/api/enrollments", map[string]string{"courseId": course.ID, "studentId": "S1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "duplicate enrollment")

	w, _ = call(t, router, http.MethodPost, "/api/enrollments", map[string]string{"courseId": course.ID, "studentId": "S404"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = call(t, router, http.MethodGet, "/api/courses/"+course.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Equal(t, 2, course.Enrolled)

	w, env = call(t, router, http.MethodGet, "/api/enrollments/course/"+course.ID+"/active-count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "2", string(env.Data))

	w, _ = call(t, router, http.MethodDelete, "/api/courses/"+course.ID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "a referenced course cannot be deleted")

	w, _ = call(t, router, http.MethodDelete, "/api/enrollments/"+first.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = call(t, router, http.MethodDelete, "/api/enrollments/"+first.ID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "already dropped")

	w, env = call(t, router, http.MethodGet, "/api/enrollments/student/S1/status?status=dropped", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dropped []models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &dropped))
	assert.Len(t, dropped, 1)

	w, _ = call(t, router, http.MethodGet, "/api/enrollments/course/"+course.ID+"/status?status=unknown", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = call(t, router, http.MethodPost, "/api/enrollments/reconcile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"courses":1,"updated":1,"failed":0}`, string(env.Data))

	w, _ = call(t, router, http.MethodGet, "/api/students/studentId/S1", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestStudentEndpoints(t *testing.T) {
	router := newAPI(t)

	w, env := call(t, router, http.MethodPost, "/api/students", studentPayload("S1"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var student models.Student
	require.NoError(t, json.Unmarshal(env.Data, &student))

	w, _ = call(t, router, http.MethodPost, "/api/students", studentPayload("S1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = call(t, router, http.MethodGet, "/api/students/major/Computer%20Science", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = call(t, router, http.MethodGet, "/api/students/grade/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "grade must be a number", env.Message)

	w, env = call(t, router, http.MethodGet, "/api/students/filter?major=Computer%20Science", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "major and numeric grade are required", env.Message)

	w, env = call(t, router, http.MethodGet, "/api/students/filter?major=Computer%20Science&grade=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []models.Student
	require.NoError(t, json.Unmarshal(env.Data, &filtered))
	assert.Len(t, filtered, 1)

	update := studentPayload("S1")
	update["name"] = "Renamed"
	w, env = call(t, router, http.MethodPut, "/api/students/"+student.ID, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &student))
	assert.Equal(t, "Renamed", student.Name)

	w, _ = call(t, router, http.MethodDelete, "/api/students/"+student.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, router, http.MethodGet, "/api/students/"+student.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type unavailableDirectory struct{}

func (unavailableDirectory) GetCourse(context.Context, string) (*models.Course, error) {
	return nil, apperrors.NewUnavailableError("catalog unavailable", nil)
}

func (unavailableDirectory) SetEnrolled(context.Context, string, int) error {
	return apperrors.NewUnavailableError("catalog unavailable", nil)
}

func TestEnrollCatalogUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repos := memory.NewRepositories()
	require.NoError(t, repos.Students.Create(context.Background(), models.NewStudent("S1", "Ada", "CS", 2024, "ada@campus.edu")))

	enrollments := services.NewEnrollmentService(repos.Enrollments, repos.Students, unavailableDirectory{},
		services.EnrollmentOptions{SeatMode: services.SeatsCounter}, zerolog.Nop())

	router := gin.New()
	routes.SetupRouter(router, routes.Controllers{
		Enrollment: controllers.NewEnrollmentController(enrollments,
			services.NewSeatReconciler(repos.Enrollments, unavailableDirectory{}, 1, zerolog.Nop())),
	}, middleware.NewAuthMiddleware(nil))

	w, env := call(t, router, http.MethodPost, "/api/enrollments", map[string]string{"courseId": "c1", "studentId": "S1"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, http.StatusServiceUnavailable, env.Code)
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return assert.AnError }

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	routes.SetupRouter(router, routes.Controllers{
		Health: controllers.NewHealthController("enrollment", map[string]controllers.Pinger{"catalog": failingPinger{}}),
	}, middleware.NewAuthMiddleware(nil))

	w, _ := call(t, router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := call(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, string(env.Data), "catalog")
}

func TestServiceRoutesRequireTokens(t *testing.T) {
	tokens := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", TokenIssuer: "campus.catalog"})
	router := newAPIWith(t, tokens, true)

	w, env := call(t, router, http.MethodPost, "/api/courses", coursePayload("C1", "MONDAY", 40))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var course models.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))

	enrollmentToken, err := tokens.GenerateServiceToken(auth.EnrollmentService)
	require.NoError(t, err)
	reportingToken, err := tokens.GenerateServiceToken("reporting-service")
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		wantStatus int
	}{
		{"reconcile without token", http.MethodPost, "/api/enrollments/reconcile", "", "", http.StatusUnauthorized},
		{"reconcile with token", http.MethodPost, "/api/enrollments/reconcile", "", reportingToken, http.StatusOK},
		{"seats without token", http.MethodPut, "/api/courses/" + course.ID + "/enrolled", `{"enrolled":3}`, "", http.StatusUnauthorized},
		{"seats from other service", http.MethodPut, "/api/courses/" + course.ID + "/enrolled", `{"enrolled":3}`, reportingToken, http.StatusForbidden},
		{"seats from enrollment service", http.MethodPut, "/api/courses/" + course.ID + "/enrolled", `{"enrolled":3}`, enrollmentToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}

	w, env = call(t, router, http.MethodGet, "/api/courses/"+course.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Equal(t, 3, course.Enrolled, "only the enrollment service moved the counter")
}

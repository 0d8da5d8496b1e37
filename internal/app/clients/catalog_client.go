package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/auth"
)

const defaultCatalogTimeout = 3 * time.Second

// CatalogConfig configures the catalog HTTP client
type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CatalogClient talks to a remote catalog service. It satisfies services.CourseDirectory.
type CatalogClient struct {
	http   *resty.Client
	tokens *auth.JWTService
	logger zerolog.Logger
}

// courseEnvelope mirrors the catalog response envelope; data is decoded separately.
type courseEnvelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// NewCatalogClient creates a catalog client. tokens may be nil when the catalog does
// not require service authentication.
func NewCatalogClient(cfg CatalogConfig, tokens *auth.JWTService, logger zerolog.Logger) *CatalogClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultCatalogTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
		SetHeader("Accept", "application/json")

	return &CatalogClient{
		http:   client,
		tokens: tokens,
		logger: logger,
	}
}

func (c *CatalogClient) request(ctx context.Context) (*resty.Request, error) {
	req := c.http.R().SetContext(ctx)
	if c.tokens.Enabled() {
		token, err := c.tokens.GenerateServiceToken(auth.EnrollmentService)
		if err != nil {
			return nil, err
		}
		req.SetAuthToken(token)
	}
	return req, nil
}

// decodeCourse unwraps the envelope of a course response.
func decodeCourse(body []byte) (*models.Course, error) {
	var env courseEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("malformed catalog response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}
	var course models.Course
	if err := json.Unmarshal(env.Data, &course); err != nil {
		return nil, fmt.Errorf("malformed course payload: %w", err)
	}
	return &course, nil
}

// GetCourse fetches a course. Unknown courses are NotFound; anything else that keeps
// the catalog from answering is Unavailable.
func (c *CatalogClient) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to sign catalog request", err)
	}

	resp, err := req.SetPathParam("id", courseID).Get("/api/courses/{id}")
	if err != nil {
		c.logger.Error().Err(err).Str("courseId", courseID).Msg("Catalog service call failed")
		return nil, apperrors.NewUnavailableError("failed to call catalog service", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, courseID)
	case resp.IsError():
		c.logger.Error().Int("status", resp.StatusCode()).Str("courseId", courseID).Msg("Catalog service returned an error")
		return nil, apperrors.NewUnavailableError(
			fmt.Sprintf("catalog service answered %d", resp.StatusCode()), nil)
	}

	course, err := decodeCourse(resp.Body())
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to read catalog response", err)
	}
	if course == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, courseID)
	}
	return course, nil
}

// SetEnrolled overwrites the remote seat counter.
func (c *CatalogClient) SetEnrolled(ctx context.Context, courseID string, enrolled int) error {
	req, err := c.request(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", courseID).
		SetBody(dto.UpdateEnrolledRequest{Enrolled: &enrolled}).
		Put("/api/courses/{id}/enrolled")
	if err != nil {
		return fmt.Errorf("seat update request failed: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, courseID)
	case resp.IsError():
		return fmt.Errorf("seat update rejected with status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// Ping checks that the catalog answers its health endpoint.
func (c *CatalogClient) Ping(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/ping")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return errors.New("catalog ping returned " + resp.Status())
	}
	return nil
}

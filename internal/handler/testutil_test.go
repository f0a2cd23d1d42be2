package handler_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/school-fees/internal/database"
	"github.com/noah-isme/school-fees/internal/handler"
	"github.com/noah-isme/school-fees/internal/middleware"
	"github.com/noah-isme/school-fees/internal/repository"
	"github.com/noah-isme/school-fees/internal/service"
	"github.com/noah-isme/school-fees/internal/views"
)

type testApp struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestApp(t *testing.T) testApp {
	t.Helper()

	db, err := database.Connect("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := zerolog.New(io.Discard)
	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	termRepo := repository.NewTermRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	app := newFiberApp(logger)
	flash := handler.NewFlash(session.New())

	handler.NewStudentHandler(service.NewStudentService(studentRepo, validate, logger), flash, logger).Register(app)
	handler.NewTermHandler(service.NewTermService(termRepo, validate, logger), flash, logger).Register(app)
	handler.NewPaymentHandler(service.NewPaymentService(paymentRepo, studentRepo, termRepo, validate, logger), flash, logger).Register(app)

	reports := handler.NewReportHandler(
		service.NewReportService(repository.NewReportRepository(db), logger),
		service.NewReceiptService(paymentRepo, logger),
		flash,
		logger,
	)
	reports.Register(app)
	reports.RegisterAPI(app.Group("/api/v1"))

	return testApp{app: app, db: db}
}

func newFiberApp(logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(),
		ViewsLayout:  views.Layout,
		ErrorHandler: handler.ErrorHandler(logger),
	})
	middleware.Register(app, middleware.Config{Logger: &logger})
	return app
}

// postForm submits values and returns the response together with its cookies.
func (a testApp) postForm(t *testing.T, path string, values url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (a testApp) get(t *testing.T, path string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// submit posts a form, expects the redirect to target, follows it with the
// session cookie and returns the page body carrying the flash.
func (a testApp) submit(t *testing.T, path string, values url.Values, target string) string {
	t.Helper()
	resp := a.postForm(t, path, values)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, target, resp.Header.Get("Location"))

	page, body := a.get(t, target, resp.Cookies()...)
	require.Equal(t, fiber.StatusOK, page.StatusCode)
	return body
}

func (a testApp) count(t *testing.T, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, a.db.Table(table).Count(&count).Error)
	return count
}

package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/company-reviews-api/internal/application/dto"
	"github.com/jhoicas/company-reviews-api/internal/application/usecase"
	"github.com/jhoicas/company-reviews-api/internal/domain/entity"
	"github.com/jhoicas/company-reviews-api/internal/domain/repository"
	"github.com/jhoicas/company-reviews-api/internal/domain/search"
	"github.com/jhoicas/company-reviews-api/internal/infrastructure/memory"
	"github.com/jhoicas/company-reviews-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/company-reviews-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/company-reviews-api/internal/interfaces/http"
	"github.com/jhoicas/company-reviews-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación Fiber completa sobre el almacén en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.Nop()
	mem := memory.NewStore()
	companies, reviews := mem.Companies(), mem.Reviews()
	logos, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC: usecase.NewCompanyUseCase(companies, reviews, logos, mongodb.IsValidID, log),
		ReviewUC:  usecase.NewReviewUseCase(companies, reviews, memory.NewTxRunner(companies, reviews), mongodb.IsValidID, log),
		Log:       log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// createCompany sube una empresa por multipart, como el frontend.
func createCompany(t *testing.T, app *fiber.App, fields map[string]string, logo []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if logo != nil {
		fw, err := w.CreateFormFile("logo", "logo.png")
		require.NoError(t, err)
		_, err = fw.Write(logo)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/companies", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func mustCreateCompany(t *testing.T, app *fiber.App, name, location string) dto.CompanyResponse {
	t.Helper()
	resp := createCompany(t, app, map[string]string{"name": name, "location": location}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.CompanyCreatedResponse](t, resp).Company
}

func mustCreateReview(t *testing.T, app *fiber.App, in dto.CreateReviewRequest) dto.ReviewResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/reviews", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.ReviewCreatedResponse](t, resp)
	assert.Equal(t, "Review added successfully", out.Message)
	return out.Review
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies_CrearYObtener(t *testing.T) {
	app := buildTestApp(t)

	resp := createCompany(t, app, map[string]string{
		"name": "Acme", "location": "Springfield", "foundedOn": "1990-05-01",
	}, []byte("png"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.CompanyCreatedResponse](t, resp)
	assert.Equal(t, "Company added successfully", created.Message)
	assert.Equal(t, "Acme", created.Company.Name)
	assert.True(t, strings.HasSuffix(created.Company.Logo, ".png"))
	require.NotNil(t, created.Company.FoundedOn)

	resp = doJSON(t, app, http.MethodGet, "/api/companies/"+created.Company.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.CompanyResponse](t, resp)
	assert.Equal(t, created.Company.ID, got.ID)
	assert.Equal(t, "Springfield", got.Location)
	assert.Empty(t, got.Reviews)
}

func TestCompanies_CrearSinCamposRequeridos(t *testing.T) {
	app := buildTestApp(t)
	resp := createCompany(t, app, map[string]string{"name": "Acme"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "name and location are required", body.Message)
}

func TestCompanies_IDInvalidoYNoEncontrado(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/companies/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_ID", body.Code)
	assert.Equal(t, "invalid id format", body.Message)

	resp = doJSON(t, app, http.MethodGet, "/api/companies/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body = decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "company not found", body.Message)
}

func TestCompanies_ListarYFiltrar(t *testing.T) {
	app := buildTestApp(t)
	acme := mustCreateCompany(t, app, "Acme", "Springfield")
	globex := mustCreateCompany(t, app, "Globex", "Cypress Creek")

	resp := doJSON(t, app, http.MethodGet, "/api/companies", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decode[[]dto.CompanyResponse](t, resp)
	require.Len(t, all, 2)
	assert.Equal(t, globex.ID, all[0].ID, "más reciente primero")

	// by-city no queda oculta por /:id.
	resp = doJSON(t, app, http.MethodGet, "/api/companies/by-city?city=spring", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	byCity := decode[[]dto.CompanyResponse](t, resp)
	require.Len(t, byCity, 1)
	assert.Equal(t, acme.ID, byCity[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/companies?name=GLOB", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	byName := decode[[]dto.CompanyResponse](t, resp)
	require.Len(t, byName, 1)
	assert.Equal(t, globex.ID, byName[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/companies/by-city?city=Paris", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, "[]", string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reseñas
// ──────────────────────────────────────────────────────────────────────────────

func TestReviews_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)
	c1 := mustCreateCompany(t, app, "Acme", "Springfield")
	r1 := mustCreateReview(t, app, dto.CreateReviewRequest{
		CompanyID: c1.ID, Name: "Bob", ReviewText: "Great", Rating: 5,
	})
	assert.Equal(t, "Bob", r1.ReviewerName)
	assert.Equal(t, c1.ID, r1.CompanyID)

	resp := doJSON(t, app, http.MethodGet, "/api/companies/"+c1.ID+"/reviews", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	byCompany := decode[[]dto.ReviewResponse](t, resp)
	require.Len(t, byCompany, 1)
	assert.Equal(t, r1.ID, byCompany[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/reviews/"+c1.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ReviewResponse](t, resp), 1)

	for _, q := range []string{"5", "bob"} {
		resp = doJSON(t, app, http.MethodGet, "/api/reviews/search?companyId="+c1.ID+"&query="+q, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		found := decode[[]dto.ReviewResponse](t, resp)
		require.Len(t, found, 1, q)
		assert.Equal(t, r1.ID, found[0].ID)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/companies/"+c1.ID, nil)
	company := decode[dto.CompanyResponse](t, resp)
	assert.Equal(t, []dto.ReviewRatingResponse{{ID: r1.ID, Rating: 5}}, company.Reviews)
	assert.Equal(t, 5.0, company.AverageRating)
}

func TestReviews_EmpresaInexistente(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/reviews", dto.CreateReviewRequest{
		CompanyID: primitive.NewObjectID().Hex(), Name: "Bob", ReviewText: "Great", Rating: 5,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReviews_ErroresDeValidacion(t *testing.T) {
	app := buildTestApp(t)
	c := mustCreateCompany(t, app, "Acme", "Springfield")

	resp := doJSON(t, app, http.MethodGet, "/api/reviews/search?query=x", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "MISSING_ID", body.Code)
	assert.Equal(t, "id required", body.Message)

	resp = doJSON(t, app, http.MethodGet, "/api/reviews/bad-id", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/reviews", dto.CreateReviewRequest{
		CompanyID: c.ID, Name: "Bob", ReviewText: "Great", Rating: 7,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestLogger_PropagaRequestID(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))

	resp = doJSON(t, app, http.MethodGet, "/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

// brokenCompanies simula un almacén caído en las lecturas de empresas.
type brokenCompanies struct {
	*memory.CompanyRepo
}

func (brokenCompanies) Find(context.Context, search.CompanyFilter, repository.CompanyListOptions) ([]*entity.Company, error) {
	return nil, errors.New("server selection timeout: mongo-0:27017")
}

func TestErrores_InternoSinDetalle(t *testing.T) {
	log := logger.Nop()
	mem := memory.NewStore()
	companies := brokenCompanies{CompanyRepo: mem.Companies()}
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC: usecase.NewCompanyUseCase(companies, mem.Reviews(), nil, mongodb.IsValidID, log),
		ReviewUC:  usecase.NewReviewUseCase(companies, mem.Reviews(), memory.NewTxRunner(companies, mem.Reviews()), mongodb.IsValidID, log),
		Log:       log,
	})

	resp := doJSON(t, app, http.MethodGet, "/api/companies", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "Internal Server Error", body.Message)
}

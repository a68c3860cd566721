package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/company-reviews-api/internal/application/usecase"
	"github.com/jhoicas/company-reviews-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	ReviewUC  *usecase.ReviewUseCase
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies: /by-city va antes de /:id para no quedar oculta por el parámetro.
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/by-city", companyHandler.Search)
	companies.Get("/:id/reviews", companyHandler.Reviews)
	companies.Get("/:id", companyHandler.GetByID)

	// Reviews: /search antes de /:companyId.
	reviews := api.Group("/reviews")
	reviewHandler := NewReviewHandler(deps.ReviewUC, deps.Log)
	reviews.Get("/search", reviewHandler.Search)
	reviews.Get("/:companyId", reviewHandler.ListByCompany)
	reviews.Post("/", reviewHandler.Create)
}

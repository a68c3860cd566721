package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/company-reviews-api/internal/application/dto"
	"github.com/jhoicas/company-reviews-api/internal/application/usecase"
	"github.com/jhoicas/company-reviews-api/pkg/logger"
)

// ReviewHandler maneja las peticiones HTTP de reseñas.
type ReviewHandler struct {
	uc  *usecase.ReviewUseCase
	log *logger.Logger
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *usecase.ReviewUseCase, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear reseña
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewRequest  true  "Reseña"
// @Success      201   {object}  dto.ReviewCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, "review.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReviewCreatedResponse{
		Message: "Review added successfully",
		Review:  *out,
	})
}

// ListByCompany GET /api/reviews/:companyId
func (h *ReviewHandler) ListByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.UserContext(), c.Params("companyId"))
	if err != nil {
		return writeError(c, h.log, "review.list", err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar reseñas
// @Description  Coincidencia sin mayúsculas en autor, asunto o texto; si query es numérico también por rating.
// @Tags         reviews
// @Produce      json
// @Param        companyId  query  string  true   "ID de la empresa"
// @Param        query      query  string  false  "Texto o calificación"
// @Success      200  {array}   dto.ReviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reviews/search [get]
func (h *ReviewHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), dto.ReviewSearchQuery{
		CompanyID: c.Query("companyId"),
		Query:     c.Query("query"),
	})
	if err != nil {
		return writeError(c, h.log, "review.search", err)
	}
	return c.JSON(out)
}

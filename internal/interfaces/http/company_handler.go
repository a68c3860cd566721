package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/company-reviews-api/internal/application/dto"
	"github.com/jhoicas/company-reviews-api/internal/application/usecase"
	"github.com/jhoicas/company-reviews-api/pkg/logger"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	log *logger.Logger
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       mpfd
// @Produce      json
// @Param        name       formData  string  true   "Nombre"
// @Param        location   formData  string  true   "Ubicación"
// @Param        foundedOn  formData  string  false  "Fecha de fundación (YYYY-MM-DD)"
// @Param        logo       formData  file    false  "Logo"
// @Success      201   {object}  dto.CompanyCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if fh, err := c.FormFile("logo"); err == nil {
		in.Logo = &dto.Upload{
			Filename: fh.Filename,
			Size:     fh.Size,
			Open:     func() (io.ReadCloser, error) { return fh.Open() },
		}
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, "company.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompanyCreatedResponse{
		Message: "Company added successfully",
		Company: *out,
	})
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, "company.get", err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Description  Sin filtros devuelve todas, las más recientes primero. Con city o name filtra.
// @Tags         companies
// @Produce      json
// @Param        city  query  string  false  "Ciudad (subcadena)"
// @Param        name  query  string  false  "Nombre (subcadena)"
// @Success      200   {array}  dto.CompanyResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	q := companyQuery(c)
	if q.City != "" || q.Name != "" {
		return h.search(c, q)
	}
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, "company.list", err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar empresas por ciudad o nombre
// @Tags         companies
// @Produce      json
// @Param        city  query  string  false  "Ciudad (subcadena)"
// @Param        name  query  string  false  "Nombre (subcadena)"
// @Success      200   {array}  dto.CompanyResponse
// @Router       /api/companies/by-city [get]
func (h *CompanyHandler) Search(c *fiber.Ctx) error {
	return h.search(c, companyQuery(c))
}

func (h *CompanyHandler) search(c *fiber.Ctx, q dto.CompanyQuery) error {
	out, err := h.uc.Search(c.UserContext(), q)
	if err != nil {
		return writeError(c, h.log, "company.search", err)
	}
	return c.JSON(out)
}

// Reviews godoc
// @Summary      Reseñas de una empresa
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {array}   dto.ReviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/reviews [get]
func (h *CompanyHandler) Reviews(c *fiber.Ctx) error {
	out, err := h.uc.Reviews(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, "company.reviews", err)
	}
	return c.JSON(out)
}

func companyQuery(c *fiber.Ctx) dto.CompanyQuery {
	return dto.CompanyQuery{City: c.Query("city"), Name: c.Query("name")}
}

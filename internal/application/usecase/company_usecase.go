package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/company-reviews-api/internal/application/dto"
	"github.com/jhoicas/company-reviews-api/internal/application/ports"
	"github.com/jhoicas/company-reviews-api/internal/domain"
	"github.com/jhoicas/company-reviews-api/internal/domain/entity"
	"github.com/jhoicas/company-reviews-api/internal/domain/repository"
	"github.com/jhoicas/company-reviews-api/internal/domain/search"
	"github.com/jhoicas/company-reviews-api/pkg/logger"
)

// Formatos aceptados para foundedOn.
var foundedOnLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	companies repository.CompanyRepository
	reviews   repository.ReviewRepository
	logos     ports.LogoStorage
	validID   IDValidator
	log       *logger.Logger
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia y almacenamiento.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	reviews repository.ReviewRepository,
	logos ports.LogoStorage,
	validID IDValidator,
	log *logger.Logger,
) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, reviews: reviews, logos: logos, validID: validID, log: log}
}

// Search lista las empresas cuya ubicación contiene city O cuyo nombre contiene name.
// Sin filtros devuelve todas, en el orden natural del almacén.
func (uc *CompanyUseCase) Search(ctx context.Context, q dto.CompanyQuery) ([]dto.CompanyResponse, error) {
	list, err := uc.companies.Find(ctx, search.NewCompanyFilter(q.City, q.Name), repository.CompanyListOptions{})
	if err != nil {
		return nil, err
	}
	return toCompanyResponses(list), nil
}

// List lista todas las empresas, las más recientes primero.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.companies.Find(ctx, search.CompanyFilter{}, repository.CompanyListOptions{NewestFirst: true})
	if err != nil {
		return nil, err
	}
	return toCompanyResponses(list), nil
}

// GetByID obtiene una empresa por ID con las calificaciones de sus reseñas.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	if err := checkID(uc.validID, "id", id); err != nil {
		return nil, err
	}
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, &domain.NotFoundError{Entity: "company", ID: id}
	}
	return toCompanyResponse(company), nil
}

// Create crea una empresa. Si llega logo se guarda primero y solo se persiste su nombre.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	if err := validateStruct(in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, domain.Invalid("name", "name and location are required")
		}
		return nil, err
	}
	foundedOn, err := parseFoundedOn(in.FoundedOn)
	if err != nil {
		return nil, err
	}

	company := &entity.Company{
		Name:      in.Name,
		Location:  in.Location,
		FoundedOn: foundedOn,
		Reviews:   []entity.ReviewRef{},
	}
	if in.Logo != nil {
		name, err := uc.saveLogo(ctx, in.Logo)
		if err != nil {
			return nil, err
		}
		company.Logo = name
	}

	if err := uc.companies.Create(ctx, company); err != nil {
		if company.Logo != "" {
			if rmErr := uc.logos.Remove(ctx, company.Logo); rmErr != nil {
				uc.log.Warn().Err(rmErr).Str("logo", company.Logo).Msg("no se pudo eliminar logo huérfano")
			}
		}
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Reviews devuelve las reseñas completas referenciadas por la empresa, en el orden guardado.
func (uc *CompanyUseCase) Reviews(ctx context.Context, id string) ([]dto.ReviewResponse, error) {
	if err := checkID(uc.validID, "id", id); err != nil {
		return nil, err
	}
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, &domain.NotFoundError{Entity: "company", ID: id}
	}
	list, err := uc.reviews.GetByIDs(ctx, company.ReviewIDs())
	if err != nil {
		return nil, err
	}
	return toReviewResponses(list), nil
}

func (uc *CompanyUseCase) saveLogo(ctx context.Context, up *dto.Upload) (string, error) {
	f, err := up.Open()
	if err != nil {
		return "", fmt.Errorf("open logo: %w", err)
	}
	defer f.Close()
	name, err := uc.logos.Save(ctx, up.Filename, f)
	if err != nil {
		return "", fmt.Errorf("save logo: %w", err)
	}
	return name, nil
}

func parseFoundedOn(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range foundedOnLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, domain.Invalid("foundedOn", "invalid foundedOn date")
}

func toCompanyResponses(list []*entity.Company) []dto.CompanyResponse {
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	refs := make([]dto.ReviewRatingResponse, 0, len(c.Reviews))
	for _, r := range c.Reviews {
		refs = append(refs, dto.ReviewRatingResponse{ID: r.ID, Rating: r.Rating})
	}
	return &dto.CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Location:      c.Location,
		FoundedOn:     c.FoundedOn,
		Logo:          c.Logo,
		Reviews:       refs,
		ReviewCount:   len(refs),
		AverageRating: averageRating(c.Reviews),
	}
}

// averageRating media de las calificaciones pobladas, redondeada a un decimal.
func averageRating(refs []entity.ReviewRef) float64 {
	if len(refs) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, r := range refs {
		sum = sum.Add(decimal.NewFromInt(int64(r.Rating)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(refs)))).Round(1).InexactFloat64()
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/company-reviews-api/internal/application/dto"
	"github.com/jhoicas/company-reviews-api/internal/domain"
	"github.com/jhoicas/company-reviews-api/internal/domain/entity"
	"github.com/jhoicas/company-reviews-api/internal/domain/repository"
	"github.com/jhoicas/company-reviews-api/internal/domain/search"
	"github.com/jhoicas/company-reviews-api/pkg/logger"
)

// ReviewUseCase casos de uso de reseñas.
type ReviewUseCase struct {
	companies repository.CompanyRepository
	reviews   repository.ReviewRepository
	tx        repository.TxRunner
	validID   IDValidator
	log       *logger.Logger
	now       func() time.Time
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(
	companies repository.CompanyRepository,
	reviews repository.ReviewRepository,
	tx repository.TxRunner,
	validID IDValidator,
	log *logger.Logger,
) *ReviewUseCase {
	return &ReviewUseCase{
		companies: companies,
		reviews:   reviews,
		tx:        tx,
		validID:   validID,
		log:       log,
		now:       time.Now,
	}
}

// ListByCompany devuelve las reseñas cuyo companyId es companyID.
func (uc *ReviewUseCase) ListByCompany(ctx context.Context, companyID string) ([]dto.ReviewResponse, error) {
	if err := checkID(uc.validID, "companyId", companyID); err != nil {
		return nil, err
	}
	list, err := uc.reviews.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toReviewResponses(list), nil
}

// Create guarda la reseña y la enlaza a su empresa.
//
// Con un TxRunner atómico ambas escrituras van en la misma transacción. Si no, cuando
// falla el enlace se borra la reseña recién creada; si ese borrado también falla queda
// una reseña sin referencia en la empresa y se registra en el log.
func (uc *ReviewUseCase) Create(ctx context.Context, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if err := checkID(uc.validID, "companyId", in.CompanyID); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.ReviewText = strings.TrimSpace(in.ReviewText)
	in.Subject = strings.TrimSpace(in.Subject)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	exists, err := uc.companies.Exists(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.NotFoundError{Entity: "company", ID: in.CompanyID}
	}

	review := &entity.Review{
		CompanyID:    in.CompanyID,
		ReviewerName: in.Name,
		Subject:      in.Subject,
		ReviewText:   in.ReviewText,
		Rating:       in.Rating,
		CreatedAt:    uc.now().UTC(),
	}
	err = uc.tx.Run(ctx, func(ctx context.Context, companies repository.CompanyRepository, reviews repository.ReviewRepository) error {
		if err := reviews.Create(ctx, review); err != nil {
			return err
		}
		if err := companies.AppendReview(ctx, review.CompanyID, review.ID); err != nil {
			if !uc.tx.Atomic() {
				uc.compensate(ctx, reviews, review, err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toReviewResponse(review)
	return &out, nil
}

// compensate borra una reseña cuya referencia no pudo guardarse en la empresa.
func (uc *ReviewUseCase) compensate(ctx context.Context, reviews repository.ReviewRepository, review *entity.Review, cause error) {
	if err := reviews.Delete(context.WithoutCancel(ctx), review.ID); err != nil {
		uc.log.Error().
			Err(errors.Join(cause, fmt.Errorf("compensate: %w", err))).
			Str("review_id", review.ID).
			Str("company_id", review.CompanyID).
			Msg("reseña sin referencia en la empresa")
		return
	}
	uc.log.Warn().Err(cause).Str("review_id", review.ID).Msg("enlace de reseña fallido, reseña eliminada")
}

// Search busca reseñas de la empresa por texto libre o calificación.
func (uc *ReviewUseCase) Search(ctx context.Context, q dto.ReviewSearchQuery) ([]dto.ReviewResponse, error) {
	if err := checkID(uc.validID, "companyId", q.CompanyID); err != nil {
		return nil, err
	}
	list, err := uc.reviews.Search(ctx, search.NewReviewSearch(q.CompanyID, q.Query))
	if err != nil {
		return nil, err
	}
	return toReviewResponses(list), nil
}

func toReviewResponses(list []*entity.Review) []dto.ReviewResponse {
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toReviewResponse(r))
	}
	return items
}

func toReviewResponse(r *entity.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:           r.ID,
		CompanyID:    r.CompanyID,
		ReviewerName: r.ReviewerName,
		Subject:      r.Subject,
		ReviewText:   r.ReviewText,
		Rating:       r.Rating,
		CreatedAt:    r.CreatedAt,
	}
}

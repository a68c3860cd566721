package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/company-reviews-api/internal/application/dto"
	"github.com/jhoicas/company-reviews-api/internal/application/usecase"
	"github.com/jhoicas/company-reviews-api/internal/domain"
	"github.com/jhoicas/company-reviews-api/internal/infrastructure/memory"
	"github.com/jhoicas/company-reviews-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/company-reviews-api/pkg/logger"
)

const seedJSON = `[
  {"name": "Acme", "location": "Springfield", "foundedOn": "1990-05-01",
   "reviews": [
     {"name": "Bob", "reviewText": "Great", "rating": 5},
     {"name": "Ann", "subject": "Salario", "reviewText": "Ok", "rating": 3}
   ]},
  {"name": "Globex", "location": "Cypress Creek"}
]`

func TestLoad_CargaEmpresasYResenas(t *testing.T) {
	items, err := decodeSeed(strings.NewReader(seedJSON))
	require.NoError(t, err)
	require.Len(t, items, 2)

	mem := memory.NewStore()
	companies, reviews := mem.Companies(), mem.Reviews()
	companyUC := usecase.NewCompanyUseCase(companies, reviews, nil, mongodb.IsValidID, logger.Nop())
	reviewUC := usecase.NewReviewUseCase(companies, reviews, memory.NewTxRunner(companies, reviews), mongodb.IsValidID, logger.Nop())

	nc, nr, err := load(context.Background(), companyUC, reviewUC, items)
	require.NoError(t, err)
	assert.Equal(t, 2, nc)
	assert.Equal(t, 2, nr)

	list, err := companyUC.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Globex", list[0].Name, "más reciente primero")
	assert.Equal(t, 4.0, list[1].AverageRating)
}

func TestLoad_ResenaInvalidaDetieneCarga(t *testing.T) {
	items := []seedCompany{{
		CreateCompanyRequest: dto.CreateCompanyRequest{Name: "Acme", Location: "Springfield"},
		Reviews:              []dto.CreateReviewRequest{{Name: "Bob", ReviewText: "x", Rating: 9}},
	}}
	mem := memory.NewStore()
	companies, reviews := mem.Companies(), mem.Reviews()
	companyUC := usecase.NewCompanyUseCase(companies, reviews, nil, mongodb.IsValidID, logger.Nop())
	reviewUC := usecase.NewReviewUseCase(companies, reviews, memory.NewTxRunner(companies, reviews), mongodb.IsValidID, logger.Nop())

	nc, nr, err := load(context.Background(), companyUC, reviewUC, items)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, nc)
	assert.Equal(t, 0, nr)
}

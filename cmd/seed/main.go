// seed carga empresas y reseñas de ejemplo desde un archivo JSON usando los mismos
// casos de uso que la API (validaciones incluidas).
//
// Uso: go run ./cmd/seed [ruta/seed.json]
// Por defecto busca seed.json en el directorio actual. Formato:
//
//	[{"name": "Acme", "location": "Springfield", "foundedOn": "1990-05-01",
//	  "reviews": [{"name": "Bob", "subject": "", "reviewText": "Great", "rating": 5}]}]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/company-reviews-api/internal/application/dto"
	"github.com/jhoicas/company-reviews-api/internal/application/usecase"
	"github.com/jhoicas/company-reviews-api/internal/bootstrap"
	"github.com/jhoicas/company-reviews-api/pkg/config"
	"github.com/jhoicas/company-reviews-api/pkg/logger"
)

type seedCompany struct {
	dto.CreateCompanyRequest
	Reviews []dto.CreateReviewRequest `json:"reviews"`
}

func main() {
	path := "seed.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	items, err := decodeSeed(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar %s: %v\n", path, err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg.DB, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar almacén: %v\n", err)
		os.Exit(1)
	}
	defer store.Close(ctx)

	companyUC := usecase.NewCompanyUseCase(store.Companies, store.Reviews, nil, store.ValidID, log)
	reviewUC := usecase.NewReviewUseCase(store.Companies, store.Reviews, store.Tx, store.ValidID, log)

	companies, reviews, err := load(ctx, companyUC, reviewUC, items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar datos: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cargadas %d empresas y %d reseñas\n", companies, reviews)
}

func decodeSeed(r io.Reader) ([]seedCompany, error) {
	var items []seedCompany
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// load crea cada empresa y después sus reseñas. Los logos no se cargan desde el seed.
func load(ctx context.Context, companyUC *usecase.CompanyUseCase, reviewUC *usecase.ReviewUseCase, items []seedCompany) (int, int, error) {
	var companies, reviews int
	for i, item := range items {
		item.Logo = nil
		company, err := companyUC.Create(ctx, item.CreateCompanyRequest)
		if err != nil {
			return companies, reviews, fmt.Errorf("empresa #%d (%s): %w", i, item.Name, err)
		}
		companies++
		for j, rv := range item.Reviews {
			rv.CompanyID = company.ID
			if _, err := reviewUC.Create(ctx, rv); err != nil {
				return companies, reviews, fmt.Errorf("reseña #%d de %s: %w", j, item.Name, err)
			}
			reviews++
		}
	}
	return companies, reviews, nil
}

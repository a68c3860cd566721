// Package bootstrap conecta el almacén configurado con los puertos de persistencia.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/company-reviews-api/internal/application/usecase"
	"github.com/jhoicas/company-reviews-api/internal/domain/repository"
	"github.com/jhoicas/company-reviews-api/internal/infrastructure/memory"
	"github.com/jhoicas/company-reviews-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/company-reviews-api/pkg/config"
	"github.com/jhoicas/company-reviews-api/pkg/logger"
)

// Store repositorios listos para inyectar en los casos de uso.
type Store struct {
	Companies repository.CompanyRepository
	Reviews   repository.ReviewRepository
	Tx        repository.TxRunner
	ValidID   usecase.IDValidator
	close     func(ctx context.Context) error
}

// Close libera la conexión del almacén.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStore abre el almacén según DB_DRIVER. El handle es único por proceso.
func OpenStore(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn().Msg("usando almacén en memoria: los datos se pierden al reiniciar")
		mem := memory.NewStore()
		companies, reviews := mem.Companies(), mem.Reviews()
		return &Store{
			Companies: companies,
			Reviews:   reviews,
			Tx:        memory.NewTxRunner(companies, reviews),
			ValidID:   mongodb.IsValidID,
		}, nil
	case config.DriverMongo:
		client, err := mongodb.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Database)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Warn().Err(err).Msg("índices no creados")
		}
		companies := mongodb.NewCompanyRepository(db)
		reviews := mongodb.NewReviewRepository(db)
		log.Info().
			Str("database", cfg.Database).
			Bool("transactions", cfg.Transactions).
			Msg("conectado a MongoDB")
		return &Store{
			Companies: companies,
			Reviews:   reviews,
			Tx:        mongodb.NewTxRunner(client, companies, reviews, cfg.Transactions),
			ValidID:   mongodb.IsValidID,
			close:     client.Disconnect,
		}, nil
	default:
		return nil, fmt.Errorf("DB_DRIVER desconocido: %q", cfg.Driver)
	}
}

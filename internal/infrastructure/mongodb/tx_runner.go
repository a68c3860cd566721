package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/company-reviews-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción MongoDB (requiere replica set).
// Con transactional=false ejecuta fn directamente, sin sesión.
type TxRunner struct {
	client        *mongo.Client
	companies     *CompanyRepo
	reviews       *ReviewRepo
	transactional bool
}

// NewTxRunner construye el runner con el cliente y los repositorios.
func NewTxRunner(client *mongo.Client, companies *CompanyRepo, reviews *ReviewRepo, transactional bool) *TxRunner {
	return &TxRunner{client: client, companies: companies, reviews: reviews, transactional: transactional}
}

// Atomic informa si Run usa transacciones.
func (r *TxRunner) Atomic() bool { return r.transactional }

// Run inicia una sesión, ejecuta fn con el contexto de la sesión y hace Commit o Abort.
// WithTransaction reintenta fn ante errores transitorios.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ctx context.Context,
	companies repository.CompanyRepository,
	reviews repository.ReviewRepository,
) error) error {
	if !r.transactional {
		return fn(ctx, r.companies, r.reviews)
	}

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(context.Background())

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, r.companies, r.reviews)
	})
	if err != nil {
		return fmt.Errorf("transaction: %w", err)
	}
	return nil
}

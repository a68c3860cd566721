package mongodb_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/company-reviews-api/internal/domain"
	"github.com/jhoicas/company-reviews-api/internal/domain/entity"
	"github.com/jhoicas/company-reviews-api/internal/domain/repository"
	"github.com/jhoicas/company-reviews-api/internal/domain/search"
	"github.com/jhoicas/company-reviews-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/company-reviews-api/pkg/config"
)

// setupRepos conecta a TEST_MONGO_URI y usa una base de datos desechable.
func setupRepos(t *testing.T) (*mongodb.CompanyRepo, *mongodb.ReviewRepo) {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI no definido")
	}
	ctx := context.Background()
	client, err := mongodb.Connect(ctx, config.DBConfig{URI: uri, Timeout: 5 * time.Second})
	require.NoError(t, err)

	db := client.Database("company_reviews_test_" + primitive.NewObjectID().Hex())
	require.NoError(t, mongodb.EnsureIndexes(ctx, db))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return mongodb.NewCompanyRepository(db), mongodb.NewReviewRepository(db)
}

func TestMongo_EmpresaYResenas(t *testing.T) {
	companies, reviews := setupRepos(t)
	ctx := context.Background()

	acme := &entity.Company{Name: "Acme", Location: "Springfield"}
	require.NoError(t, companies.Create(ctx, acme))
	require.True(t, mongodb.IsValidID(acme.ID))

	got, err := companies.GetByID(ctx, acme.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Name)
	assert.Empty(t, got.Reviews)

	r := &entity.Review{CompanyID: acme.ID, ReviewerName: "Bob", ReviewText: "Great", Rating: 5, CreatedAt: time.Now().UTC()}
	require.NoError(t, reviews.Create(ctx, r))
	require.NoError(t, companies.AppendReview(ctx, acme.ID, r.ID))

	got, err = companies.GetByID(ctx, acme.ID)
	require.NoError(t, err)
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, repositoryRef(r), got.Reviews[0])

	found, err := reviews.Search(ctx, search.NewReviewSearch(acme.ID, "BOB"))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, r.ID, found[0].ID)

	byRating, err := reviews.Search(ctx, search.NewReviewSearch(acme.ID, "5"))
	require.NoError(t, err)
	assert.Len(t, byRating, 1)

	list, err := companies.Find(ctx, search.NewCompanyFilter("spring", ""), repository.CompanyListOptions{NewestFirst: true})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	missing := primitive.NewObjectID().Hex()
	none, err := companies.GetByID(ctx, missing)
	require.NoError(t, err)
	assert.Nil(t, none)
	assert.ErrorIs(t, companies.AppendReview(ctx, missing, r.ID), domain.ErrNotFound)
}

func repositoryRef(r *entity.Review) entity.ReviewRef {
	return entity.ReviewRef{ID: r.ID, Rating: r.Rating}
}

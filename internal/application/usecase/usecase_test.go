package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/application/usecase"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/memory"
)

const ownerID = "user-1"

type env struct {
	ctx        context.Context
	store      *memory.Store
	products   *usecase.ProductUseCase
	categories *usecase.CategoryUseCase
	suppliers  *usecase.SupplierUseCase
	users      *usecase.UserUseCase
}

// newEnv casos de uso sobre un Store en memoria con el usuario ya sincronizado.
func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	ctx := auth.WithIdentity(context.Background(), auth.Identity{UserID: ownerID, Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, memory.NewUserRepository(store).Create(ctx, &entity.User{ID: ownerID, Name: "Ana", CreatedAt: time.Now()}))

	categoryRepo := memory.NewCategoryRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	return &env{
		ctx:        ctx,
		store:      store,
		products:   usecase.NewProductUseCase(memory.NewProductRepository(store), categoryRepo, supplierRepo),
		categories: usecase.NewCategoryUseCase(categoryRepo),
		suppliers:  usecase.NewSupplierUseCase(supplierRepo),
		users:      usecase.NewUserUseCase(memory.NewUserRepository(store)),
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// UserUseCase sincroniza la identidad del proveedor externo con la tabla local de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Sync crea el usuario local a partir de la identidad del token si aún no existe.
// created indica si se insertó en esta llamada.
func (uc *UserUseCase) Sync(ctx context.Context) (created bool, err error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	existing, err := uc.repo.GetByID(ctx, id.UserID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	user := &entity.User{
		ID:        id.UserID,
		Name:      id.Name,
		Email:     id.Email,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		// Otra petición concurrente lo creó primero.
		if errors.Is(err, domain.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// EnsureSynced devuelve ErrUserNotSynced si el usuario del token no tiene fila local.
func (uc *UserUseCase) EnsureSynced(ctx context.Context, userID string) error {
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotSynced
	}
	return nil
}

// Me devuelve el perfil del usuario del contexto.
func (uc *UserUseCase) Me(ctx context.Context) (*dto.UserResponse, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotSynced
	}
	return dto.FromUser(user), nil
}

// UpdateName cambia el nombre visible del usuario.
func (uc *UserUseCase) UpdateName(ctx context.Context, name string) error {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateName(ctx, ownerID, name)
}

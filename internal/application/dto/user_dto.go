package dto

import "time"

// UserResponse salida del perfil del usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// SyncUserResponse resultado de POST /api/users/sync.
type SyncUserResponse struct {
	Message string `json:"message"`
	Created bool   `json:"created"`
}

// UpdateUserRequest entrada de PUT /api/users/me.
type UpdateUserRequest struct {
	Name string `json:"name"`
}

package entity

import "time"

// Category clasificador opcional de productos, propiedad de un usuario.
type Category struct {
	ID        string
	OwnerID   string
	Name      string
	CreatedAt time.Time
}

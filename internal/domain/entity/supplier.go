package entity

import "time"

// Supplier proveedor de origen opcional de un producto.
type Supplier struct {
	ID        string
	OwnerID   string
	Name      string
	Phone     string
	CreatedAt time.Time
}

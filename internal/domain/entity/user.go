package entity

import "time"

// User identidad local de un usuario del proveedor de identidad.
// ID es el subject (sub) del token; se crea en la primera sincronización y nunca se borra.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

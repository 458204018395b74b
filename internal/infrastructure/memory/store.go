// Package memory implementa todos los repositorios y el TxRunner en memoria.
// Se usa con DB_DRIVER=memory (desarrollo) y en los tests de casos de uso y HTTP.
// Reproduce las reglas del esquema PostgreSQL: filas por usuario, ON DELETE SET NULL
// para categoría/proveedor, ON DELETE CASCADE de producto a ventas y CHECK (stock >= 0).
package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// Store datos compartidos por todos los repositorios en memoria.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

type dataset struct {
	users      map[string]entity.User
	categories map[string]entity.Category
	suppliers  map[string]entity.Supplier
	products   map[string]entity.Product
	sales      map[string]entity.Sale
}

func newDataset() *dataset {
	return &dataset{
		users:      map[string]entity.User{},
		categories: map[string]entity.Category{},
		suppliers:  map[string]entity.Supplier{},
		products:   map[string]entity.Product{},
		sales:      map[string]entity.Sale{},
	}
}

// clone copia superficial de cada mapa; las entidades se guardan por valor.
func (d *dataset) clone() *dataset {
	return &dataset{
		users:      maps.Clone(d.users),
		categories: maps.Clone(d.categories),
		suppliers:  maps.Clone(d.suppliers),
		products:   maps.Clone(d.products),
		sales:      maps.Clone(d.sales),
	}
}

// access envuelve el acceso al Store. Dentro de una transacción el TxRunner ya tiene
// el lock exclusivo, así que los repos de la tx no vuelven a bloquear.
type access struct {
	s    *Store
	inTx bool
}

func (a access) read(fn func(d *dataset) error) error {
	if !a.inTx {
		a.s.mu.RLock()
		defer a.s.mu.RUnlock()
	}
	return fn(a.s.data)
}

func (a access) write(fn func(d *dataset) error) error {
	if !a.inTx {
		a.s.mu.Lock()
		defer a.s.mu.Unlock()
	}
	return fn(a.s.data)
}

func (d *dataset) hasUser(id string) bool {
	_, ok := d.users[id]
	return ok
}

// newestFirst ordena por CreatedAt descendente (desempate por ID para que sea determinista).
func newestFirst[T any](list []T, createdAt func(T) int64, id func(T) string) {
	slices.SortStableFunc(list, func(a, b T) int {
		ta, tb := createdAt(a), createdAt(b)
		switch {
		case ta > tb:
			return -1
		case ta < tb:
			return 1
		}
		ia, ib := id(a), id(b)
		switch {
		case ia > ib:
			return -1
		case ia < ib:
			return 1
		}
		return 0
	})
}

package memory

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones con el lock exclusivo del Store.
// Si fn falla se restaura la copia tomada al inicio (rollback).
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repositorios atados a la transacción. Si fn devuelve error o entra
// en pánico se restaura la copia tomada al inicio; el pánico se propaga.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snapshot := r.s.data.clone()
	committed := false
	defer func() {
		if !committed {
			r.s.data = snapshot
		}
	}()

	tx := access{s: r.s, inTx: true}
	if err := fn(&ProductRepo{tx}, &SaleRepo{tx}); err != nil {
		return err
	}
	committed = true
	return nil
}

package memory

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	s  *Store
	tx *txLog
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.skuTaken(p.SKU, 0) {
		return domain.ErrDuplicateSKU
	}
	if _, ok := r.s.suppliers[p.SupplierID]; !ok {
		return domain.ErrSupplierNotFound
	}
	r.s.nextProduct++
	p.ID = r.s.nextProduct
	r.s.products[p.ID] = *p
	id := p.ID
	r.tx.record(func() { delete(r.s.products, id) })
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range sortedKeys(r.s.products) {
		if p := r.s.products[id]; p.SKU == sku {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) ExistsBySKU(_ context.Context, sku string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.skuTaken(sku, 0), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.products[p.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if r.skuTaken(p.SKU, p.ID) {
		return domain.ErrDuplicateSKU
	}
	if _, ok := r.s.suppliers[p.SupplierID]; !ok {
		return domain.ErrSupplierNotFound
	}
	next := *p
	next.CreatedAt = current.CreatedAt
	r.s.products[p.ID] = next
	r.tx.record(func() { r.s.products[current.ID] = current })
	return nil
}

// Delete elimina el producto y sus movimientos.
func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	delete(r.s.products, id)
	var removed []entity.StockMovement
	for mid, m := range r.s.movements {
		if m.ProductID == id {
			removed = append(removed, m)
			delete(r.s.movements, mid)
		}
	}
	r.tx.record(func() {
		r.s.products[p.ID] = p
		for _, m := range removed {
			r.s.movements[m.ID] = m
		}
	})
	return nil
}

func (r *ProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := r.filter(func(*entity.Product) bool { return true })
	return page(all, limit, offset), nil
}

func (r *ProductRepo) Find(_ context.Context, q repository.ProductQuery) ([]*entity.Product, error) {
	if q.Kind < repository.ProductByNameContaining || q.Kind > repository.ProductOverStock {
		return nil, domain.ErrInvalidInput
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.filter(q.Matches), nil
}

func (r *ProductRepo) AdjustStock(_ context.Context, id int64, delta int) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if p.CurrentStock+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	p.CurrentStock += delta
	r.s.products[id] = p
	// Se revierte el delta, no el valor: un ajuste ajeno posterior se conserva.
	r.tx.record(func() {
		if cur, ok := r.s.products[id]; ok {
			cur.CurrentStock -= delta
			r.s.products[id] = cur
		}
	})
	return &p, nil
}

func (r *ProductRepo) skuTaken(sku string, exceptID int64) bool {
	for id, p := range r.s.products {
		if id != exceptID && p.SKU == sku {
			return true
		}
	}
	return false
}

func (r *ProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	var out []*entity.Product
	for _, id := range sortedKeys(r.s.products) {
		p := r.s.products[id]
		if keep(&p) {
			out = append(out, &p)
		}
	}
	return out
}

package memory

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores en memoria.
type SupplierRepo struct {
	s *Store
}

func (r *SupplierRepo) Create(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.emailTaken(sup.Email, 0) {
		return domain.ErrDuplicateEmail
	}
	r.s.nextSupplier++
	sup.ID = r.s.nextSupplier
	r.s.suppliers[sup.ID] = *sup
	return nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &sup, nil
}

func (r *SupplierRepo) GetByEmail(_ context.Context, email string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range sortedKeys(r.s.suppliers) {
		if sup := r.s.suppliers[id]; sup.Email == email {
			return &sup, nil
		}
	}
	return nil, nil
}

func (r *SupplierRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.emailTaken(email, 0), nil
}

func (r *SupplierRepo) Update(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.suppliers[sup.ID]
	if !ok {
		return domain.ErrSupplierNotFound
	}
	if r.emailTaken(sup.Email, sup.ID) {
		return domain.ErrDuplicateEmail
	}
	next := *sup
	next.CreatedAt = current.CreatedAt
	r.s.suppliers[sup.ID] = next
	return nil
}

// Delete falla con ErrSupplierInUse mientras existan productos del proveedor.
func (r *SupplierRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[id]; !ok {
		return domain.ErrSupplierNotFound
	}
	for _, p := range r.s.products {
		if p.SupplierID == id {
			return domain.ErrSupplierInUse
		}
	}
	delete(r.s.suppliers, id)
	return nil
}

func (r *SupplierRepo) List(_ context.Context, limit, offset int) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return page(r.filter(func(*entity.Supplier) bool { return true }), limit, offset), nil
}

func (r *SupplierRepo) Find(_ context.Context, q repository.SupplierQuery) ([]*entity.Supplier, error) {
	if q.Kind != repository.SupplierByNameContaining && q.Kind != repository.SupplierByStatus {
		return nil, domain.ErrInvalidInput
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.filter(q.Matches), nil
}

func (r *SupplierRepo) emailTaken(email string, exceptID int64) bool {
	for id, sup := range r.s.suppliers {
		if id != exceptID && sup.Email == email {
			return true
		}
	}
	return false
}

func (r *SupplierRepo) filter(keep func(*entity.Supplier) bool) []*entity.Supplier {
	var out []*entity.Supplier
	for _, id := range sortedKeys(r.s.suppliers) {
		sup := r.s.suppliers[id]
		if keep(&sup) {
			out = append(out, &sup)
		}
	}
	return out
}

package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/validation"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	validate *validation.Validator
	log      *logger.Logger
	now      func() time.Time
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, v *validation.Validator, log *logger.Logger) *SupplierUseCase {
	return &SupplierUseCase{
		repo:     repo,
		validate: v,
		log:      logger.OrNop(log).Named("suppliers"),
		now:      time.Now,
	}
}

// Create crea un proveedor. El email se compara en minúsculas.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	in = in.Normalized()
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	supplier := &entity.Supplier{}
	if err := applySupplierRequest(supplier, in); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByEmail(ctx, supplier.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}
	supplier.BeforeCreate(uc.now())
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("supplier_id", supplier.ID).Msg("proveedor creado")
	return dto.FromSupplier(supplier), nil
}

// GetByID obtiene un proveedor o ErrSupplierNotFound.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromSupplier(supplier), nil
}

// GetByEmail obtiene un proveedor por email o ErrSupplierNotFound.
func (uc *SupplierUseCase) GetByEmail(ctx context.Context, email string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByEmail(ctx, dto.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	return dto.FromSupplier(supplier), nil
}

// Update reemplaza los datos de un proveedor. Status vacío conserva el actual.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	in = in.Normalized()
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	supplier, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	previousEmail := supplier.Email
	if err := applySupplierRequest(supplier, in); err != nil {
		return nil, err
	}
	if supplier.Email != previousEmail {
		exists, err := uc.repo.ExistsByEmail(ctx, supplier.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateEmail
		}
	}
	supplier.BeforeUpdate(uc.now())
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return dto.FromSupplier(supplier), nil
}

// Delete elimina un proveedor. Falla con ErrSupplierInUse si aún tiene productos.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("supplier_id", id).Msg("proveedor eliminado")
	return nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SupplierListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierListResponse{
		Items: dto.FromSuppliers(list),
		Page:  &dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// SearchByName proveedores cuyo nombre contiene name.
func (uc *SupplierUseCase) SearchByName(ctx context.Context, name string) (*dto.SupplierListResponse, error) {
	return uc.find(ctx, repository.SuppliersNameContaining(dto.CleanText(name)))
}

// ByStatus proveedores con el estado indicado.
func (uc *SupplierUseCase) ByStatus(ctx context.Context, status string) (*dto.SupplierListResponse, error) {
	st, ok := entity.ParseSupplierStatus(status)
	if !ok {
		return nil, domain.NewValidationError("status", "oneof", "debe ser uno de: ACTIVE INACTIVE SUSPENDED")
	}
	return uc.find(ctx, repository.SuppliersWithStatus(st))
}

func (uc *SupplierUseCase) find(ctx context.Context, q repository.SupplierQuery) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierListResponse{Items: dto.FromSuppliers(list)}, nil
}

func (uc *SupplierUseCase) load(ctx context.Context, id int64) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	return supplier, nil
}

func applySupplierRequest(s *entity.Supplier, in dto.SupplierRequest) error {
	s.Name = in.Name
	s.Email = in.Email
	s.Phone = in.Phone
	s.Address = in.Address
	s.ContactPerson = in.ContactPerson
	if in.Status != "" {
		st, ok := entity.ParseSupplierStatus(in.Status)
		if !ok {
			return domain.NewValidationError("status", "oneof", "debe ser uno de: ACTIVE INACTIVE SUSPENDED")
		}
		s.Status = st
	}
	return nil
}

// Package memory implementa los puertos de persistencia en memoria, con las mismas
// restricciones que el esquema PostgreSQL (únicos, claves foráneas y cascada).
// Se usa en desarrollo local (DB_DRIVER=memory) y en pruebas.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store contiene las tres relaciones. Es seguro para uso concurrente.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	suppliers map[int64]entity.Supplier
	products  map[int64]entity.Product
	movements map[int64]entity.StockMovement

	nextSupplier int64
	nextProduct  int64
	nextMovement int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		suppliers: make(map[int64]entity.Supplier),
		products:  make(map[int64]entity.Product),
		movements: make(map[int64]entity.StockMovement),
	}
}

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Suppliers devuelve el repositorio de proveedores.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{s: s} }

// Movements devuelve el repositorio de movimientos.
func (s *Store) Movements() *StockMovementRepo { return &StockMovementRepo{s: s} }

// Run serializa las transacciones. Si fn falla se deshacen, en orden inverso, solo las
// escrituras hechas a través de los repositorios de la transacción; lo que otros escriban
// mientras tanto se conserva. Los IDs consumidos no se reutilizan, como en una secuencia.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	tx := &txLog{}
	if err := fn(&ProductRepo{s: s, tx: tx}, &StockMovementRepo{s: s, tx: tx}); err != nil {
		s.rollback(tx)
		return err
	}
	return nil
}

// txLog guarda cómo deshacer cada escritura de una transacción. Las entradas se
// registran y se ejecutan con mu tomado.
type txLog struct {
	undo []func()
}

// record no hace nada fuera de una transacción (l nil).
func (l *txLog) record(fn func()) {
	if l != nil {
		l.undo = append(l.undo, fn)
	}
}

func (s *Store) rollback(tx *txLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
}

// sortedKeys devuelve las claves en orden ascendente para listados estables.
func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

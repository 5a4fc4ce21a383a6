package test

import (
	"context"
	"sort"
	"sync"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

// MemoryStore keeps orders and products in memory and mirrors the
// transactional fulfillment semantics of the SQL backends.
type MemoryStore struct {
	mu       sync.Mutex
	orders   map[string]*model.Order
	products map[string]*model.Product

	// Err, when set, is returned by every repository call.
	Err error
	// FulfillCalls counts Fulfill invocations, including failed ones.
	FulfillCalls int
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders:   make(map[string]*model.Order),
		products: make(map[string]*model.Product),
	}
}

// AddProduct stores a copy of the product.
func (s *MemoryStore) AddProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = &p
}

// AddOrder stores a copy of the order and its items.
func (s *MemoryStore) AddOrder(o model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = cloneOrder(&o)
}

// Order returns a snapshot of the stored order.
func (s *MemoryStore) Order(id string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return model.Order{}, false
	}
	return *cloneOrder(o), true
}

// Product returns a snapshot of the stored product.
func (s *MemoryStore) Product(id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, false
	}
	return *p, true
}

// Orders implements repository.Factory.
func (s *MemoryStore) Orders() repository.OrderRepository { return s }

// Products implements repository.Factory.
func (s *MemoryStore) Products() repository.ProductRepository { return memoryProducts{s} }

// GetByID returns the order with its items.
func (s *MemoryStore) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return cloneOrder(o), nil
}

// ListByStore returns store orders newest first.
func (s *MemoryStore) ListByStore(ctx context.Context, storeID string) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Order
	for _, o := range s.orders {
		if o.StoreID == storeID {
			out = append(out, *cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Fulfill marks the order paid once and archives its products on every call.
func (s *MemoryStore) Fulfill(ctx context.Context, id string, details model.PaymentDetails) (*model.Fulfillment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FulfillCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	result := &model.Fulfillment{OrderID: id, ProductIDs: o.ProductIDs(), AlreadyPaid: o.IsPaid}
	if !o.IsPaid {
		address, phone := details.Address, details.Phone
		o.IsPaid = true
		o.Address = &address
		o.Phone = &phone
	}
	for _, pid := range result.ProductIDs {
		if p, ok := s.products[pid]; ok && !p.IsArchived {
			p.IsArchived = true
			result.Archived++
		}
	}
	return result, nil
}

type memoryProducts struct{ s *MemoryStore }

func (m memoryProducts) GetByID(ctx context.Context, id string) (*model.Product, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	p, ok := m.s.products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func cloneOrder(o *model.Order) *model.Order {
	cp := *o
	cp.Items = append([]model.OrderItem(nil), o.Items...)
	if o.Address != nil {
		v := *o.Address
		cp.Address = &v
	}
	if o.Phone != nil {
		v := *o.Phone
		cp.Phone = &v
	}
	return &cp
}

package httpx

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

// memStore is an in-memory Store with the same semantics as *pos.Repo,
// so the handlers can be exercised without postgres.
type memStore struct {
	mu       sync.Mutex
	users    map[string]pos.User
	dishes   map[string]pos.Dish
	orders   map[string]*pos.Order
	seq      []string // creation order
	payments []pos.Payment
}

func newMemStore() *memStore {
	return &memStore{
		users:  map[string]pos.User{},
		dishes: map[string]pos.Dish{},
		orders: map[string]*pos.Order{},
	}
}

func (m *memStore) CreateUser(_ context.Context, name, email, passwordHash string, role pos.Role) (pos.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return pos.User{}, pos.ErrEmailTaken
		}
	}
	u := pos.User{
		ID: uuid.NewString(), Name: name, Email: email,
		PasswordHash: passwordHash, Role: role, CreatedAt: time.Now().UTC(),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (pos.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return pos.User{}, pos.ErrNotFound
}

func (m *memStore) ListUsers(_ context.Context) ([]pos.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]pos.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memStore) UpdateUser(_ context.Context, id string, req pos.UpdateUserRequest) (pos.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return pos.User{}, pos.ErrNotFound
	}
	u.Name, u.Email, u.Role = req.Name, req.Email, req.Role
	m.users[id] = u
	return u, nil
}

func (m *memStore) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return pos.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memStore) CreateDish(_ context.Context, req pos.CreateDishRequest) (pos.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := pos.Dish{
		ID: uuid.NewString(), Name: req.Name, Price: req.Price,
		Type: req.Type, ImageURL: req.ImageURL, CreatedAt: time.Now().UTC(),
	}
	m.dishes[d.ID] = d
	return d, nil
}

func (m *memStore) ListDishes(_ context.Context) ([]pos.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]pos.Dish, 0, len(m.dishes))
	for _, d := range m.dishes {
		out = append(out, d)
	}
	return out, nil
}

func (m *memStore) DeleteDish(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dishes[id]; !ok {
		return pos.ErrNotFound
	}
	delete(m.dishes, id)
	return nil
}

func (m *memStore) CreateOrder(_ context.Context, req pos.CreateOrderRequest, dailyNumber int) (pos.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	o := &pos.Order{
		ID: uuid.NewString(), DailyNumber: dailyNumber, Table: req.Table,
		Dishes: pos.Snapshots(req.Dishes), Status: pos.StatusPending,
		WaiterName: req.WaiterName, Notes: req.Notes,
		CreatedAt: now, UpdatedAt: now,
	}
	m.orders[o.ID] = o
	m.seq = append(m.seq, o.ID)
	return *o, nil
}

func (m *memStore) ListOrders(_ context.Context, status pos.Status, unpaidOnly bool) ([]pos.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []pos.Order
	for _, id := range m.seq {
		o := m.orders[id]
		if status != "" && o.Status != status {
			continue
		}
		if unpaidOnly && o.PaymentID != nil {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (m *memStore) GetOrderStatus(_ context.Context, id string) (pos.Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return "", pos.ErrNotFound
	}
	return o.Status, nil
}

func (m *memStore) UpdateOrderStatus(_ context.Context, id string, to pos.Status) (pos.Order, pos.Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return pos.Order{}, "", pos.ErrNotFound
	}
	from := o.Status
	if !pos.CanTransition(from, to) {
		return pos.Order{}, "", pos.ErrBadTransition
	}
	o.Status = to
	o.UpdatedAt = time.Now().UTC()
	return *o, from, nil
}

func (m *memStore) AppendOrderDishes(_ context.Context, id string, req pos.AppendOrderRequest) (pos.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return pos.Order{}, pos.ErrNotFound
	}
	if !o.Status.Appendable() || o.PaymentID != nil {
		return pos.Order{}, pos.ErrOrderLocked
	}
	o.Dishes = append(o.Dishes, pos.Snapshots(req.NewDishes)...)
	if req.Notes != nil {
		o.Notes = req.Notes
	}
	if req.WaiterName != nil {
		o.WaiterName = req.WaiterName
	}
	o.UpdatedAt = time.Now().UTC()
	return *o, nil
}

func (m *memStore) RecordPayment(_ context.Context, req pos.PaymentRequest) (pos.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[req.OrderID]
	if !ok {
		return pos.Payment{}, pos.ErrNotFound
	}
	if o.Status != pos.StatusServed || o.PaymentID != nil {
		return pos.Payment{}, pos.ErrOrderNotPayable
	}
	if o.Total() != req.Total {
		return pos.Payment{}, pos.ErrTotalMismatch
	}
	p := pos.Payment{
		ID: uuid.NewString(), OrderID: req.OrderID, Total: req.Total,
		Method: req.Method, CardReference: req.CardReference, PaidAt: time.Now().UTC(),
	}
	o.Status = pos.StatusPaid
	o.PaymentID = &p.ID
	m.payments = append(m.payments, p)
	return p, nil
}

func (m *memStore) ListPayments(_ context.Context) ([]pos.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]pos.Payment, len(m.payments))
	copy(out, m.payments)
	return out, nil
}

// ---- collaborator fakes ----

type fakeSessions struct {
	mu     sync.Mutex
	tokens map[string]pos.User
}

func newFakeSessions() *fakeSessions { return &fakeSessions{tokens: map[string]pos.User{}} }

func (f *fakeSessions) Create(_ context.Context, u pos.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	token := uuid.NewString()
	f.tokens[token] = u
	return token, nil
}

func (f *fakeSessions) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
	return nil
}

type fakeNumbers struct {
	mu sync.Mutex
	n  int
}

func (f *fakeNumbers) Next(_ context.Context, _ time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return f.n, nil
}

type fakeCache struct {
	mu sync.Mutex
	m  map[string]pos.Status
}

func newFakeCache() *fakeCache { return &fakeCache{m: map[string]pos.Status{}} }

func (f *fakeCache) Set(_ context.Context, orderID string, st pos.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.m[orderID] = st
}

func (f *fakeCache) Get(_ context.Context, orderID string) (pos.Status, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.m[orderID]
	return st, ok
}

type fakePublisher struct {
	mu     sync.Mutex
	events []pos.Envelope
}

func (f *fakePublisher) Publish(_, value []byte, _ ...kafkago.Header) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var env pos.Envelope
	if json.Unmarshal(value, &env) == nil {
		f.events = append(f.events, env)
	}
}

func (f *fakePublisher) count(eventType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.events {
		if e.EventType == eventType {
			n++
		}
	}
	return n
}

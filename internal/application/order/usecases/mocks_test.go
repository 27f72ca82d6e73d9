package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"farmgate/internal/domain/order"
	"farmgate/internal/domain/user"
	uservo "farmgate/internal/domain/user/valueobjects"
	"farmgate/internal/shared/config"
	"farmgate/internal/shared/logger"
)

type mockOrderRepository struct {
	mu     sync.Mutex
	orders map[uint]*order.Order
	nextID uint

	saveErr   error
	getErr    error
	updateErr error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[uint]*order.Order)}
}

func (m *mockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	if o.ID() == 0 {
		m.nextID++
		if err := o.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.orders[o.ID()] = o
	return nil
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	m.orders[o.ID()] = o
	return nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.orders[id], nil
}

func (m *mockOrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*order.Order
	for _, o := range m.orders {
		if filter.BuyerID != nil && o.BuyerID() != *filter.BuyerID {
			continue
		}
		if filter.SellerID != nil && o.SellerID() != *filter.SellerID {
			continue
		}
		if filter.Status != nil && o.Status().String() != *filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

type mockUserRepository struct {
	mu    sync.Mutex
	users map[uint]*user.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]*user.User)}
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID()] = u
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Save(ctx, u)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, nil
}

type mockDeliveryNotifier struct {
	mu sync.Mutex

	calls         int
	lastEmail     string
	lastCode      string
	lastExpiresAt time.Time

	sendErr error
}

func (m *mockDeliveryNotifier) SendDeliveryCode(ctx context.Context, email, name, code string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.calls++
	m.lastEmail = email
	m.lastCode = code
	m.lastExpiresAt = expiresAt
	return nil
}

type mockTxRunner struct {
	err error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type mockLimiter struct {
	allowed bool
	err     error
}

func (m *mockLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.allowed, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func testClaimsConfig() *config.ClaimsConfig {
	return &config.ClaimsConfig{
		AllowDuplicatePending:   true,
		HandoverSweepMinutes:    5,
		VerifyAttemptsPerMinute: 10,
	}
}

func newTestOrder(t *testing.T, repo *mockOrderRepository, buyerID, sellerID uint) *order.Order {
	t.Helper()
	o, err := order.NewOrder(buyerID, sellerID, "two crates of apples", 4500)
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}
	if err := repo.Save(context.Background(), o); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	return o
}

func newTestBuyer(t *testing.T, repo *mockUserRepository, id uint, email string) *user.User {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	if err != nil {
		t.Fatalf("NewEmail() error = %v", err)
	}
	u, err := user.NewUser(addr, "Test Buyer")
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	if err := u.SetID(id); err != nil {
		t.Fatalf("SetID() error = %v", err)
	}
	if err := repo.Save(context.Background(), u); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	return u
}

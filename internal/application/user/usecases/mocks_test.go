package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"farmgate/internal/domain/user"
	"farmgate/internal/shared/logger"
)

type mockUserRepository struct {
	mu     sync.Mutex
	users  map[uint]*user.User
	nextID uint

	saveErr error
	getErr  error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]*user.User)}
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	if u.ID() == 0 {
		m.nextID++
		if err := u.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.users[u.ID()] = u
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID()] = u
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users[id], nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, nil
}

// plainHasher keeps tests independent of bcrypt cost settings.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockAccountNotifier struct {
	mu sync.Mutex

	verificationCalls int
	lastVerifyCode    string
	resetCalls        int
	lastResetCode     string

	sendErr error
}

func (m *mockAccountNotifier) SendVerificationCode(ctx context.Context, email, name, code string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.verificationCalls++
	m.lastVerifyCode = code
	return nil
}

func (m *mockAccountNotifier) SendPasswordResetCode(ctx context.Context, email, name, code string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.resetCalls++
	m.lastResetCode = code
	return nil
}

type mockJWTService struct {
	err error
}

func (m *mockJWTService) Generate(userID uint, role string) (*TokenPair, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &TokenPair{
		AccessToken: fmt.Sprintf("token-for-%d-%s", userID, role),
		ExpiresIn:   3600,
	}, nil
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

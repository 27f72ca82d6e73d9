package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"farmgate/internal/domain/claim"
	"farmgate/internal/domain/listing"
	"farmgate/internal/domain/user"
	uservo "farmgate/internal/domain/user/valueobjects"
	"farmgate/internal/shared/logger"
)

type mockClaimRepository struct {
	mu     sync.Mutex
	claims map[uint]*claim.Claim
	nextID uint

	saveErr    error
	getErr     error
	updateErr  error
	approveErr error
	listErr    error
}

func newMockClaimRepository() *mockClaimRepository {
	return &mockClaimRepository{claims: make(map[uint]*claim.Claim)}
}

func (m *mockClaimRepository) Save(ctx context.Context, c *claim.Claim) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	if c.ID() == 0 {
		m.nextID++
		if err := c.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.claims[c.ID()] = c
	return nil
}

func (m *mockClaimRepository) Update(ctx context.Context, c *claim.Claim) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	m.claims[c.ID()] = c
	return nil
}

func (m *mockClaimRepository) GetByID(ctx context.Context, id uint) (*claim.Claim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.claims[id], nil
}

func (m *mockClaimRepository) GetByIDForUpdate(ctx context.Context, id uint) (*claim.Claim, error) {
	return m.GetByID(ctx, id)
}

func (m *mockClaimRepository) List(ctx context.Context, filter claim.Filter) ([]*claim.Claim, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	var out []*claim.Claim
	for _, c := range m.claims {
		if filter.ListingID != nil && c.ListingID() != *filter.ListingID {
			continue
		}
		if filter.ClaimantID != nil && c.ClaimantID() != *filter.ClaimantID {
			continue
		}
		if filter.OwnerID != nil && c.OwnerID() != *filter.OwnerID {
			continue
		}
		if filter.Status != nil && c.Status().String() != *filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (m *mockClaimRepository) ApproveExclusively(ctx context.Context, claimID, listingID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.approveErr != nil {
		return 0, m.approveErr
	}
	c, ok := m.claims[claimID]
	if !ok || !c.Status().IsPending() {
		return 0, claim.ErrNotPending
	}
	if err := c.Approve(); err != nil {
		return 0, err
	}
	var rejected int64
	for _, other := range m.claims {
		if other.ID() != claimID && other.ListingID() == listingID && other.Status().IsPending() {
			if err := other.Reject(); err == nil {
				rejected++
			}
		}
	}
	return rejected, nil
}

func (m *mockClaimRepository) HasPendingByClaimant(ctx context.Context, listingID, claimantID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.claims {
		if c.ListingID() == listingID && c.ClaimantID() == claimantID && c.Status().IsPending() {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockClaimRepository) ListExpiredHandovers(ctx context.Context, before time.Time) ([]*claim.Claim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*claim.Claim
	for _, c := range m.claims {
		if c.Status().IsHandoverInProgress() && c.Challenge().Expired(before) {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockListingRepository struct {
	mu       sync.Mutex
	listings map[uint]*listing.Listing
	nextID   uint

	getErr    error
	updateErr error
}

func newMockListingRepository() *mockListingRepository {
	return &mockListingRepository{listings: make(map[uint]*listing.Listing)}
}

func (m *mockListingRepository) Save(ctx context.Context, l *listing.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l.ID() == 0 {
		m.nextID++
		if err := l.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.listings[l.ID()] = l
	return nil
}

func (m *mockListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	m.listings[l.ID()] = l
	return nil
}

func (m *mockListingRepository) GetByID(ctx context.Context, id uint) (*listing.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.listings[id], nil
}

func (m *mockListingRepository) List(ctx context.Context, filter listing.Filter) ([]*listing.Listing, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*listing.Listing
	for _, l := range m.listings {
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

type mockUserRepository struct {
	mu    sync.Mutex
	users map[uint]*user.User

	getErr error
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
	if m.getErr != nil {
		return nil, m.getErr
	}
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

type mockNotifier struct {
	mu sync.Mutex

	codeCalls     int
	lastCodeEmail string
	lastCode      string
	lastExpiresAt time.Time

	decisionCalls int
	lastDecision  bool

	sendCodeErr     error
	sendDecisionErr error
}

func (m *mockNotifier) SendHandoverCode(ctx context.Context, email, name, code string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendCodeErr != nil {
		return m.sendCodeErr
	}
	m.codeCalls++
	m.lastCodeEmail = email
	m.lastCode = code
	m.lastExpiresAt = expiresAt
	return nil
}

func (m *mockNotifier) SendClaimDecision(ctx context.Context, email, name, listingTitle string, approved bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendDecisionErr != nil {
		return m.sendDecisionErr
	}
	m.decisionCalls++
	m.lastDecision = approved
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
	calls   int
}

func (m *mockLimiter) Allow(ctx context.Context, key string) (bool, error) {
	m.calls++
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

func newTestListing(t *testing.T, repo *mockListingRepository, ownerID uint) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(ownerID, "Five acre paddock", "Flat, fenced, water on site", "Taranaki", 5, 120000, nil)
	if err != nil {
		t.Fatalf("NewListing() error = %v", err)
	}
	if err := repo.Save(context.Background(), l); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	return l
}

func newTestUser(t *testing.T, repo *mockUserRepository, id uint, email string) *user.User {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	if err != nil {
		t.Fatalf("NewEmail() error = %v", err)
	}
	u, err := user.NewUser(addr, "Test Grower")
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

func newTestClaim(t *testing.T, repo *mockClaimRepository, listingID, claimantID, ownerID uint) *claim.Claim {
	t.Helper()
	c, err := claim.NewClaim(listingID, claimantID, ownerID, "keen to run sheep here", 6)
	if err != nil {
		t.Fatalf("NewClaim() error = %v", err)
	}
	if err := repo.Save(context.Background(), c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	return c
}

// Package user holds the marketplace account aggregate. Email
// verification and password reset ride on the shared passcode primitive.
package user

import (
	"fmt"
	"time"

	"farmgate/internal/domain/otp"
	vo "farmgate/internal/domain/user/valueobjects"
	"farmgate/internal/shared/biztime"
)

// Role grants capabilities beyond ordinary ownership relations.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// PasswordHasher abstracts the password hashing scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type User struct {
	id            uint
	email         *vo.Email
	name          string
	role          Role
	status        vo.Status
	passwordHash  string
	emailVerified bool
	// verification and reset are independent passcode challenges; either
	// may be active while the other is not.
	verification *otp.Challenge
	reset        *otp.Challenge
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email *vo.Email, name string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := biztime.NowUTC()
	return &User{
		email:     email,
		name:      name,
		role:      RoleUser,
		status:    vo.StatusPending,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

type AuthData struct {
	PasswordHash       string
	EmailVerified      bool
	VerificationHash   string
	VerificationSalt   string
	VerificationExpiry time.Time
	ResetHash          string
	ResetSalt          string
	ResetExpiry        time.Time
}

func ReconstructUser(
	id uint,
	email *vo.Email,
	name string,
	role Role,
	status vo.Status,
	auth *AuthData,
	version int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	u := &User{
		id:        id,
		email:     email,
		name:      name,
		role:      role,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}

	if auth != nil {
		u.passwordHash = auth.PasswordHash
		u.emailVerified = auth.EmailVerified
		u.verification = otp.ReconstructChallenge(auth.VerificationHash, auth.VerificationSalt, auth.VerificationExpiry)
		u.reset = otp.ReconstructChallenge(auth.ResetHash, auth.ResetSalt, auth.ResetExpiry)
	}

	return u, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) Status() vo.Status {
	return u.status
}

func (u *User) EmailVerified() bool {
	return u.emailVerified
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) VerificationChallenge() *otp.Challenge {
	return u.verification
}

func (u *User) ResetChallenge() *otp.Challenge {
	return u.reset
}

func (u *User) Version() int {
	return u.version
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.touch()
	return nil
}

func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}
	if err := hasher.Verify(password, u.passwordHash); err != nil {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}

// BeginEmailVerification issues a fresh verification passcode, replacing
// any outstanding one, and returns the plaintext code for dispatch.
func (u *User) BeginEmailVerification() (string, error) {
	if u.emailVerified {
		return "", fmt.Errorf("email is already verified")
	}

	challenge, code, err := otp.NewChallenge(otp.PurposeEmailVerification)
	if err != nil {
		return "", err
	}

	u.verification = challenge
	u.touch()
	return code, nil
}

// VerifyEmail consumes the verification passcode and activates a pending
// account.
func (u *User) VerifyEmail(code string) error {
	if u.emailVerified {
		return fmt.Errorf("email is already verified")
	}

	if err := u.verification.Verify(code); err != nil {
		return err
	}

	u.emailVerified = true
	u.verification = nil
	if u.status.IsPending() {
		u.status = vo.StatusActive
	}
	u.touch()
	return nil
}

// BeginPasswordReset issues a fresh reset passcode and returns the
// plaintext code for dispatch.
func (u *User) BeginPasswordReset() (string, error) {
	challenge, code, err := otp.NewChallenge(otp.PurposePasswordReset)
	if err != nil {
		return "", err
	}

	u.reset = challenge
	u.touch()
	return code, nil
}

// ResetPassword consumes the reset passcode and replaces the password.
func (u *User) ResetPassword(code, newPassword string, hasher PasswordHasher) error {
	if err := u.reset.Verify(code); err != nil {
		return err
	}

	if err := u.SetPassword(newPassword, hasher); err != nil {
		return err
	}

	u.reset = nil
	return nil
}

func (u *User) Suspend() error {
	if u.status.IsSuspended() {
		return nil
	}
	if !u.status.CanTransitionTo(vo.StatusSuspended) {
		return fmt.Errorf("cannot suspend user with status %s", u.status)
	}
	u.status = vo.StatusSuspended
	u.touch()
	return nil
}

func (u *User) CanPerformActions() bool {
	return u.status.IsActive()
}

func (u *User) touch() {
	u.updatedAt = biztime.NowUTC()
	u.version++
}

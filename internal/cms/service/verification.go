package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"
)

// Verification code lifecycle parameters.
const (
	codeTTL     = 10 * time.Minute
	maxAttempts = 3
)

var (
	ErrNoCode          = errors.New("service: no verification code for email")
	ErrCodeExpired     = errors.New("service: verification code expired")
	ErrTooManyAttempts = errors.New("service: too many failed attempts")
	ErrCodeMismatch    = errors.New("service: verification code mismatch")
)

// verification is a pending login challenge for one email address.
type verification struct {
	code      string
	expiresAt time.Time
	attempts  int
	userID    int
}

// CodeRegistry holds pending verification codes in process memory, keyed
// by lower-cased email. Entries do not survive a restart; a user mid-login
// when the process bounces simply requests a new code.
type CodeRegistry struct {
	mu      sync.Mutex
	entries map[string]*verification
	now     func() time.Time
}

func NewCodeRegistry() *CodeRegistry {
	return &CodeRegistry{
		entries: make(map[string]*verification),
		now:     time.Now,
	}
}

// Issue generates a fresh 6-digit code for the email, replacing any prior
// outstanding code so exactly one is live per address at a time.
func (r *CodeRegistry) Issue(email string, userID int) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[strings.ToLower(email)] = &verification{
		code:      code,
		expiresAt: r.now().Add(codeTTL),
		attempts:  0,
		userID:    userID,
	}
	return code, nil
}

// Verify checks a submitted code. On success the entry is consumed and the
// associated user id returned. Expiry and the attempt cap both clear the
// entry, forcing a fresh login request; a plain mismatch keeps it and
// counts the attempt.
func (r *CodeRegistry) Verify(email, submitted string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(email)
	entry, ok := r.entries[key]
	if !ok {
		return 0, ErrNoCode
	}

	if r.now().After(entry.expiresAt) {
		delete(r.entries, key)
		return 0, ErrCodeExpired
	}

	if entry.attempts >= maxAttempts {
		delete(r.entries, key)
		return 0, ErrTooManyAttempts
	}

	if entry.code != submitted {
		entry.attempts++
		return 0, ErrCodeMismatch
	}

	delete(r.entries, key)
	return entry.userID, nil
}

// generateCode returns a uniformly random 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("service: generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

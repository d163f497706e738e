package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"scholarstream/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	"scholarstream/internal/shared/identity"
)

// Store is an in-memory adapter implementing the repository and clock ports.
// It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	accounts map[string]entities.Account
	byEmail  map[string]string
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]entities.Account),
		byEmail:  make(map[string]string),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SeedAccount inserts or replaces an account, bypassing registration rules.
func (s *Store) SeedAccount(account entities.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account.Email = identity.NormalizeEmail(account.Email)
	if account.CreatedAt.IsZero() {
		account.CreatedAt = s.now()
	}
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = account.CreatedAt
	}
	s.accounts[account.AccountID] = account
	s.byEmail[account.Email] = account.AccountID
}

func (s *Store) InsertAccountIfAbsent(_ context.Context, account entities.Account) (entities.Account, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := identity.NormalizeEmail(account.Email)
	if existingID, ok := s.byEmail[email]; ok {
		return s.accounts[existingID], false, nil
	}
	if _, ok := s.accounts[account.AccountID]; ok {
		return entities.Account{}, false, fmt.Errorf("%w: account id already registered", domainerrors.ErrInvalidInput)
	}
	account.Email = email
	s.accounts[account.AccountID] = account
	s.byEmail[email] = account.AccountID
	return account, true, nil
}

func (s *Store) GetAccount(_ context.Context, accountID string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[strings.TrimSpace(accountID)]
	if !ok {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) GetAccountByEmail(_ context.Context, email string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accountID, ok := s.byEmail[identity.NormalizeEmail(email)]
	if !ok {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return s.accounts[accountID], nil
}

func (s *Store) UpdateRole(_ context.Context, accountID string, role identity.Role, updatedAt time.Time) (entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[strings.TrimSpace(accountID)]
	if !ok {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	account.Role = role
	account.UpdatedAt = updatedAt
	s.accounts[account.AccountID] = account
	return account, nil
}

func (s *Store) DeleteNonAdminAccount(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[strings.TrimSpace(accountID)]
	if !ok {
		return domainerrors.ErrAccountNotFound
	}
	if account.IsAdmin() {
		return domainerrors.ErrAdminDeletion
	}
	delete(s.accounts, account.AccountID)
	delete(s.byEmail, account.Email)
	return nil
}

func (s *Store) Now() time.Time {
	return s.now()
}

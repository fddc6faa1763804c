package impl

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"solara-auth/internal/domain"
	"solara-auth/internal/store"
)

// memoryStore backs service tests without gorm. WithTx snapshots state and
// restores it when fn fails, mirroring the rollback the real store provides.
type memoryStore struct {
	mu         sync.Mutex
	users      map[uuid.UUID]*domain.User
	emailIndex map[string]uuid.UUID
	codes      map[uint]*domain.VerificationCode
	nextCodeID uint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:      make(map[uuid.UUID]*domain.User),
		emailIndex: make(map[string]uuid.UUID),
		codes:      make(map[uint]*domain.VerificationCode),
	}
}

type storeSnapshot struct {
	users      map[uuid.UUID]*domain.User
	emailIndex map[string]uuid.UUID
	codes      map[uint]*domain.VerificationCode
	nextCodeID uint
}

func (m *memoryStore) snapshot() storeSnapshot {
	users := make(map[uuid.UUID]*domain.User, len(m.users))
	for id, user := range m.users {
		copy := *user
		users[id] = &copy
	}
	emails := make(map[string]uuid.UUID, len(m.emailIndex))
	for k, v := range m.emailIndex {
		emails[k] = v
	}
	codes := make(map[uint]*domain.VerificationCode, len(m.codes))
	for id, vc := range m.codes {
		copy := *vc
		codes[id] = &copy
	}
	return storeSnapshot{users: users, emailIndex: emails, codes: codes, nextCodeID: m.nextCodeID}
}

func (m *memoryStore) restore(s storeSnapshot) {
	m.users = s.users
	m.emailIndex = s.emailIndex
	m.codes = s.codes
	m.nextCodeID = s.nextCodeID
}

func (m *memoryStore) WithTx(ctx context.Context, fn func(tx storeTx) error) error {
	snapshot := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(snapshot)
		return err
	}
	return nil
}

func (m *memoryStore) Users() userStore { return &memoryUserStore{store: m} }

func (m *memoryStore) Codes() codeStore { return &memoryCodeStore{store: m} }

// --- inspection helpers ---

func (m *memoryStore) userByEmail(email string) (*domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.emailIndex[email]
	if !ok {
		return nil, false
	}
	user := *m.users[id]
	return &user, true
}

func (m *memoryStore) codesForEmail(email string) []domain.VerificationCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.VerificationCode
	for _, vc := range m.codes {
		if vc.Email == email {
			out = append(out, *vc)
		}
	}
	return out
}

type memoryUserStore struct {
	store *memoryStore
}

func (u *memoryUserStore) Create(ctx context.Context, usr *domain.User) error {
	copy := *usr
	u.store.users[usr.ID] = &copy
	u.store.emailIndex[usr.Email] = usr.ID
	return nil
}

func (u *memoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	id, ok := u.store.emailIndex[email]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	copy := *u.store.users[id]
	return &copy, nil
}

func (u *memoryUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := u.store.emailIndex[email]
	return ok, nil
}

func (u *memoryUserStore) SetEmailVerified(ctx context.Context, userID uuid.UUID) error {
	usr, ok := u.store.users[userID]
	if !ok {
		return store.ErrRecordNotFound
	}
	usr.EmailVerified = true
	return nil
}

func (u *memoryUserStore) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	usr, ok := u.store.users[userID]
	if !ok {
		return store.ErrRecordNotFound
	}
	usr.PasswordHash = hash
	return nil
}

type memoryCodeStore struct {
	store *memoryStore
}

func (c *memoryCodeStore) Create(ctx context.Context, vc *domain.VerificationCode) error {
	c.store.nextCodeID++
	vc.ID = c.store.nextCodeID
	copy := *vc
	c.store.codes[vc.ID] = &copy
	return nil
}

func (c *memoryCodeStore) GetByEmailAndCode(ctx context.Context, email, code string) (*domain.VerificationCode, error) {
	for _, vc := range c.store.codes {
		if vc.Email == email && vc.Code == code {
			copy := *vc
			return &copy, nil
		}
	}
	return nil, store.ErrRecordNotFound
}

func (c *memoryCodeStore) DeleteByEmail(ctx context.Context, email string) error {
	for id, vc := range c.store.codes {
		if vc.Email == email {
			delete(c.store.codes, id)
		}
	}
	return nil
}

func (c *memoryCodeStore) Delete(ctx context.Context, vc *domain.VerificationCode) error {
	delete(c.store.codes, vc.ID)
	return nil
}

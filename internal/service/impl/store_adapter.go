package impl

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"solara-auth/internal/domain"
	"solara-auth/internal/store"
)

// Service-local store contracts. Implementations keep a narrow view of the
// persistence layer so tests can swap in an in-memory store without gorm.
//
// dataStore doubles as a storeTx for single-statement access; WithTx scopes
// the sequences that must commit or roll back together.

type dataStore interface {
	storeTx
	WithTx(ctx context.Context, fn func(tx storeTx) error) error
}

type storeTx interface {
	Users() userStore
	Codes() codeStore
}

type userStore interface {
	Create(ctx context.Context, usr *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetEmailVerified(ctx context.Context, userID uuid.UUID) error
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error
}

type codeStore interface {
	Create(ctx context.Context, vc *domain.VerificationCode) error
	GetByEmailAndCode(ctx context.Context, email, code string) (*domain.VerificationCode, error)
	DeleteByEmail(ctx context.Context, email string) error
	Delete(ctx context.Context, vc *domain.VerificationCode) error
}

type gormStoreAdapter struct {
	store *store.Store
}

func (g gormStoreAdapter) Users() userStore { return g.store.Users() }

func (g gormStoreAdapter) Codes() codeStore { return g.store.Codes() }

func (g gormStoreAdapter) WithTx(ctx context.Context, fn func(tx storeTx) error) error {
	if g.store == nil {
		return errors.New("nil store")
	}
	return g.store.WithTx(ctx, func(tx *store.Store) error {
		return fn(gormTxAdapter{tx: tx})
	})
}

type gormTxAdapter struct {
	tx *store.Store
}

func (g gormTxAdapter) Users() userStore { return g.tx.Users() }

func (g gormTxAdapter) Codes() codeStore { return g.tx.Codes() }

package repositories

import (
	"context"

	"gorm.io/gorm"
)

// GORMRepositories provides the per-aggregate repositories over one *gorm.DB,
// which may be the root connection or an open transaction.
type GORMRepositories struct {
	products      *GORMProductRepository
	userProfiles  *GORMUserProfileRepository
	identityUsers *GORMIdentityUserRepository
}

// NewGORMRepositories creates repositories bound to db.
func NewGORMRepositories(db *gorm.DB) *GORMRepositories {
	return &GORMRepositories{
		products:      NewGORMProductRepository(db),
		userProfiles:  NewGORMUserProfileRepository(db),
		identityUsers: NewGORMIdentityUserRepository(db),
	}
}

func (r *GORMRepositories) Products() ProductRepository           { return r.products }
func (r *GORMRepositories) UserProfiles() UserProfileRepository   { return r.userProfiles }
func (r *GORMRepositories) IdentityUsers() IdentityUserRepository { return r.identityUsers }

// GORMUnitOfWork runs work inside a single database transaction.
type GORMUnitOfWork struct {
	db *gorm.DB
}

// NewGORMUnitOfWork creates a new instance of GORMUnitOfWork.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	return &GORMUnitOfWork{db: db}
}

// Do opens a transaction, hands fn repositories scoped to it, and commits when
// fn returns nil. Any error or panic rolls the transaction back.
func (u *GORMUnitOfWork) Do(ctx context.Context, fn func(tx Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMRepositories(tx))
	})
}

package repositories

import "context"

// Repositories bundles the per-aggregate repositories sharing one store scope.
type Repositories interface {
	Products() ProductRepository
	UserProfiles() UserProfileRepository
	IdentityUsers() IdentityUserRepository
}

// UnitOfWork runs fn against transaction-scoped repositories. If fn returns an
// error the whole transaction rolls back; otherwise it commits. Queries that
// need no transaction read through Repositories directly.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx Repositories) error) error
}

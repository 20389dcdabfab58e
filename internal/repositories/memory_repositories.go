package repositories

import (
	"context"
	"fmt"
	"sync"

	"shopapi/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
type MemoryProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: make(map[string]models.Product)}
}

// GetAll returns all products.
func (r *MemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p)
	}
	return list, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MemoryProductRepository) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = *product
	return nil
}

// CreateBulk adds every product.
func (r *MemoryProductRepository) CreateBulk(ctx context.Context, products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		r.products[p.ID] = p
	}
	return nil
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// DeleteBulk removes every listed id.
func (r *MemoryProductRepository) DeleteBulk(ctx context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		delete(r.products, id)
	}
	return nil
}

// MemoryUserProfileRepository is an in-memory implementation of UserProfileRepository.
type MemoryUserProfileRepository struct {
	profiles map[string]models.UserProfile
	mu       sync.RWMutex
}

// NewMemoryUserProfileRepository creates a new instance of MemoryUserProfileRepository.
func NewMemoryUserProfileRepository() *MemoryUserProfileRepository {
	return &MemoryUserProfileRepository{profiles: make(map[string]models.UserProfile)}
}

// GetAll returns all user profiles.
func (r *MemoryUserProfileRepository) GetAll(ctx context.Context) ([]models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.UserProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		list = append(list, p)
	}
	return list, nil
}

// GetByID returns a user profile by its ID.
func (r *MemoryUserProfileRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("user profile %s: %w", id, ErrNotFound)
	}
	return &profile, nil
}

// GetByEmail returns a user profile by the normalized email.
func (r *MemoryUserProfileRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := models.NormalizeEmail(email)
	for _, p := range r.profiles {
		if models.NormalizeEmail(p.Email) == normalized {
			profile := p
			return &profile, nil
		}
	}
	return nil, fmt.Errorf("user profile with email %s: %w", normalized, ErrNotFound)
}

// Create adds a new user profile.
func (r *MemoryUserProfileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.ID] = *profile
	return nil
}

// Update modifies an existing user profile.
func (r *MemoryUserProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.ID]; !ok {
		return fmt.Errorf("user profile %s: %w", profile.ID, ErrNotFound)
	}
	r.profiles[profile.ID] = *profile
	return nil
}

// Delete removes a user profile by its ID.
func (r *MemoryUserProfileRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[id]; !ok {
		return fmt.Errorf("user profile %s: %w", id, ErrNotFound)
	}
	delete(r.profiles, id)
	return nil
}

// MemoryIdentityUserRepository is an in-memory implementation of IdentityUserRepository.
type MemoryIdentityUserRepository struct {
	users map[string]models.IdentityUser
	mu    sync.RWMutex
}

// NewMemoryIdentityUserRepository creates a new instance of MemoryIdentityUserRepository.
func NewMemoryIdentityUserRepository() *MemoryIdentityUserRepository {
	return &MemoryIdentityUserRepository{users: make(map[string]models.IdentityUser)}
}

// GetByEmail returns an identity user by the normalized email.
func (r *MemoryIdentityUserRepository) GetByEmail(ctx context.Context, email string) (*models.IdentityUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := models.NormalizeEmail(email)
	for _, u := range r.users {
		if u.Email == normalized {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("identity user with email %s: %w", normalized, ErrNotFound)
}

// Create adds a new identity user.
func (r *MemoryIdentityUserRepository) Create(ctx context.Context, user *models.IdentityUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = *user
	return nil
}

// Delete removes an identity user by its ID.
func (r *MemoryIdentityUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("identity user %s: %w", id, ErrNotFound)
	}
	delete(r.users, id)
	return nil
}

// MemoryRepositories bundles the in-memory repositories for tests and local
// runs without a database.
type MemoryRepositories struct {
	products      *MemoryProductRepository
	userProfiles  *MemoryUserProfileRepository
	identityUsers *MemoryIdentityUserRepository
}

// NewMemoryRepositories creates a fresh in-memory repository set.
func NewMemoryRepositories() *MemoryRepositories {
	return &MemoryRepositories{
		products:      NewMemoryProductRepository(),
		userProfiles:  NewMemoryUserProfileRepository(),
		identityUsers: NewMemoryIdentityUserRepository(),
	}
}

func (r *MemoryRepositories) Products() ProductRepository           { return r.products }
func (r *MemoryRepositories) UserProfiles() UserProfileRepository   { return r.userProfiles }
func (r *MemoryRepositories) IdentityUsers() IdentityUserRepository { return r.identityUsers }

// MemoryUnitOfWork satisfies UnitOfWork without transactional rollback; fn
// runs against the shared in-memory set.
type MemoryUnitOfWork struct {
	repos *MemoryRepositories
}

// NewMemoryUnitOfWork creates a unit of work over repos.
func NewMemoryUnitOfWork(repos *MemoryRepositories) *MemoryUnitOfWork {
	return &MemoryUnitOfWork{repos: repos}
}

// Do runs fn against the in-memory repositories.
func (u *MemoryUnitOfWork) Do(ctx context.Context, fn func(tx Repositories) error) error {
	return fn(u.repos)
}

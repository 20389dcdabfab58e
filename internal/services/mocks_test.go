package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shopapi/internal/models"
	"shopapi/internal/repositories"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) CreateBulk(ctx context.Context, products []models.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteBulk(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockUserProfileRepository is a mock implementation of repositories.UserProfileRepository.
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) GetAll(ctx context.Context) ([]models.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIdentityUserRepository is a mock implementation of repositories.IdentityUserRepository.
type MockIdentityUserRepository struct {
	mock.Mock
}

func (m *MockIdentityUserRepository) GetByEmail(ctx context.Context, email string) (*models.IdentityUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IdentityUser), args.Error(1)
}

func (m *MockIdentityUserRepository) Create(ctx context.Context, user *models.IdentityUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockIdentityUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockRepos bundles the mocks as a repositories.Repositories.
type mockRepos struct {
	products  *MockProductRepository
	profiles  *MockUserProfileRepository
	identity  *MockIdentityUserRepository
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		products: new(MockProductRepository),
		profiles: new(MockUserProfileRepository),
		identity: new(MockIdentityUserRepository),
	}
}

func (m *mockRepos) Products() repositories.ProductRepository           { return m.products }
func (m *mockRepos) UserProfiles() repositories.UserProfileRepository   { return m.profiles }
func (m *mockRepos) IdentityUsers() repositories.IdentityUserRepository { return m.identity }

// passthroughUOW runs the unit of work directly against the mocks, without
// transaction semantics.
type passthroughUOW struct {
	repos repositories.Repositories
}

func (u passthroughUOW) Do(ctx context.Context, fn func(tx repositories.Repositories) error) error {
	return fn(u.repos)
}

func (m *mockRepos) uow() passthroughUOW {
	return passthroughUOW{repos: m}
}

package repository

import (
	"context"

	domainrepo "lazycook/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock implementation of repository.TransactionManager.
// By default Execute runs the given function against the Factory, mimicking
// a committed transaction; set FailWith to simulate a transaction that
// never reaches the callback.
type MockTransactionManager struct {
	mock.Mock

	Factory  domainrepo.RepositoryFactory
	FailWith error
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory domainrepo.RepositoryFactory) error) error {
	m.Called(ctx, mock.Anything)
	if m.FailWith != nil {
		return m.FailWith
	}

	return fn(m.Factory)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
// It hands out the fixed repositories it was built with.
type MockRepositoryFactory struct {
	Accounts domainrepo.AccountRepository
	Profiles domainrepo.ProfileRepository
	Recipes  domainrepo.RecipeRepository
}

func (f *MockRepositoryFactory) AccountRepo() domainrepo.AccountRepository {
	return f.Accounts
}

func (f *MockRepositoryFactory) ProfileRepo() domainrepo.ProfileRepository {
	return f.Profiles
}

func (f *MockRepositoryFactory) RecipeRepo() domainrepo.RecipeRepository {
	return f.Recipes
}

package postgres

import (
	"context"

	"userhub/internal/domain/repository"
	"userhub/internal/errors"

	"gorm.io/gorm"
)

// transactionManager implements repository.TransactionManager using GORM transactions.
type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn inside a single database transaction. Repositories handed
// to fn through the factory are bound to that transaction.
func (m *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repositoryFactory{tx: tx})
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// repositoryFactory hands out repositories bound to one transaction.
type repositoryFactory struct {
	tx *gorm.DB
}

// NewUserRepository returns a UserRepository bound to the current transaction.
func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewRoleRepository returns a RoleRepository bound to the current transaction.
func (f *repositoryFactory) NewRoleRepository() repository.RoleRepository {
	return NewRoleRepository(f.tx)
}

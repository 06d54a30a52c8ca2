package store

import "github.com/psantos/go-accounts/internal/logger"

type Repositories struct {
	UserRepository UserRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
	}
}

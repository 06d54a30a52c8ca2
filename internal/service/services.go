package service

import (
	"github.com/psantos/go-accounts/internal/config"
	"github.com/psantos/go-accounts/internal/logger"
	"github.com/psantos/go-accounts/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		UserService: NewUserService(repositories.UserRepository, logger),
	}
}

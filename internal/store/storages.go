package store

import "github.com/periodicapp/periodic/internal/logger"

// Storages aggregates every repository backed by the relational database.
type Storages struct {
	UserRepository    UserRepository
	ElementRepository ElementRepository
	SessionRepository *SessionRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ElementRepository: NewElementRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
	}
}

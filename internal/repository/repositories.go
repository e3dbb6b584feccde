package repository

import (
	"github.com/deppfellow/notes-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Note *NoteRepository
}

// NewRepositories constructs the repository container on top of the
// server's shared connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Note: NewNoteRepository(s.DB.Pool),
	}
}

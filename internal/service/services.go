// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data.
package service

import (
	"github.com/deppfellow/notes-api/internal/repository"
	"github.com/deppfellow/notes-api/internal/server"
)

// Services groups every service so handlers receive a single dependency.
type Services struct {
	Note *NoteService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Note: NewNoteService(repos.Note),
	}, nil
}

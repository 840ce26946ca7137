package userdir

import (
	"context"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
	"github.com/Crestview-Financial/bank-portal-api/internal/ports/out/userdir"
)

// Directory is an in-memory implementation of userdir.Directory.
//
// The record set is fixed at construction and never mutated, so reads need no
// locking.
type Directory struct {
	users []domain.User
}

func NewDirectory(users []domain.User) *Directory {
	cp := make([]domain.User, len(users))
	copy(cp, users)
	return &Directory{users: cp}
}

func (d *Directory) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	_ = ctx
	for _, u := range d.users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return domain.User{}, userdir.ErrNotFound
}

package jsonfile

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	"github.com/risechangeslives/risecms/internal/cms/store"
)

type usersRepo struct {
	s *FileStore
}

func (r usersRepo) List(ctx context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return slices.Clone(r.s.users), nil
}

func (r usersRepo) GetByID(ctx context.Context, id int) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r usersRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	maxID := 0
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.User{}, store.ErrAlreadyExists
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u.ID = maxID + 1

	r.s.users = append(r.s.users, u)
	if err := r.s.saveUsers(); err != nil {
		// Roll the in-memory append back so memory and disk stay in step.
		r.s.users = r.s.users[:len(r.s.users)-1]
		return domain.User{}, err
	}
	return u, nil
}

func (r usersRepo) Update(ctx context.Context, u domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.users {
		if existing.ID == u.ID {
			r.s.users[i] = u
			if err := r.s.saveUsers(); err != nil {
				r.s.users[i] = existing
				return err
			}
			return nil
		}
	}
	return store.ErrNotFound
}

func (r usersRepo) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.users {
		if existing.ID == id {
			backup := slices.Clone(r.s.users)
			r.s.users = slices.Delete(r.s.users, i, i+1)
			if err := r.s.saveUsers(); err != nil {
				r.s.users = backup
				return err
			}
			return nil
		}
	}
	return store.ErrNotFound
}

func (r usersRepo) TouchLastLogin(ctx context.Context, id int, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.users {
		if existing.ID == id {
			prev := existing.LastLogin
			at := at
			r.s.users[i].LastLogin = &at
			if err := r.s.saveUsers(); err != nil {
				r.s.users[i].LastLogin = prev
				return err
			}
			return nil
		}
	}
	return store.ErrNotFound
}

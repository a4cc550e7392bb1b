package jsonfile

import (
	"context"
	"encoding/json"
	"maps"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	"github.com/risechangeslives/risecms/internal/cms/store"
)

type contentRepo struct {
	s *FileStore
}

func (r contentRepo) All(ctx context.Context) (domain.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return maps.Clone(r.s.content), nil
}

func (r contentRepo) Section(ctx context.Context, name string) (json.RawMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	value, ok := r.s.content[name]
	if !ok || len(value) == 0 {
		return nil, store.ErrNotFound
	}
	return value, nil
}

func (r contentRepo) ReplaceAll(ctx context.Context, doc domain.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev := r.s.content
	r.s.content = maps.Clone(doc)
	if err := r.s.saveContent(); err != nil {
		r.s.content = prev
		return err
	}
	return nil
}

func (r contentRepo) ReplaceSection(ctx context.Context, name string, value json.RawMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev := r.s.content
	next := maps.Clone(r.s.content)
	if next == nil {
		next = domain.Document{}
	}
	next[name] = value

	r.s.content = next
	if err := r.s.saveContent(); err != nil {
		r.s.content = prev
		return err
	}
	return nil
}

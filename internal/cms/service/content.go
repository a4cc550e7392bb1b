package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	"github.com/risechangeslives/risecms/internal/cms/store"
	"github.com/risechangeslives/risecms/pkg/slogx"
)

var ErrSectionNotFound = errors.New("service: content section not found")

// ContentService exposes the site content document: public reads and
// token-gated replacement of the whole document or a single section.
type ContentService struct {
	Store store.Store

	now func() time.Time
}

func NewContentService(st store.Store) *ContentService {
	return &ContentService{Store: st, now: time.Now}
}

func (s *ContentService) All(ctx context.Context) (domain.Document, error) {
	return s.Store.Content().All(ctx)
}

func (s *ContentService) Section(ctx context.Context, name string) (json.RawMessage, error) {
	raw, err := s.Store.Content().Section(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return raw, nil
}

// ReplaceAll swaps the entire document and returns the write timestamp.
func (s *ContentService) ReplaceAll(ctx context.Context, doc domain.Document) (time.Time, error) {
	if err := s.Store.Content().ReplaceAll(ctx, doc); err != nil {
		return time.Time{}, err
	}

	ts := s.now().UTC()
	slogx.FromContext(ctx).Info("content replaced",
		slog.Int("user_id", callerID(ctx)),
		slog.Int("sections", len(doc)),
	)
	return ts, nil
}

// ReplaceSection swaps one section, leaving every other section
// byte-identical on disk.
func (s *ContentService) ReplaceSection(ctx context.Context, name string, raw json.RawMessage) (time.Time, error) {
	if err := s.Store.Content().ReplaceSection(ctx, name, raw); err != nil {
		return time.Time{}, err
	}

	ts := s.now().UTC()
	slogx.FromContext(ctx).Info("content section replaced",
		slog.Int("user_id", callerID(ctx)),
		slog.String("section", name),
	)
	return ts, nil
}

package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	"github.com/risechangeslives/risecms/internal/cms/store/drivers/jsonfile"
)

func newTestContent(t *testing.T) *ContentService {
	t.Helper()

	dir := t.TempDir()
	st, err := jsonfile.Open(jsonfile.Config{
		UsersPath:      filepath.Join(dir, "users.json"),
		ContentPath:    filepath.Join(dir, "content.json"),
		DefaultUsers:   domain.DefaultUsers("admin@example.com", "Admin", time.Now().UTC()),
		DefaultContent: domain.DefaultContent(),
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return NewContentService(st)
}

func TestContentSections(t *testing.T) {
	svc := newTestContent(t)
	ctx := context.Background()

	doc, err := svc.All(ctx)
	require.NoError(t, err)
	require.Contains(t, doc, "hero")
	require.Contains(t, doc, "faq")

	raw, err := svc.Section(ctx, "hero")
	require.NoError(t, err)
	require.JSONEq(t, string(doc["hero"]), string(raw))

	_, err = svc.Section(ctx, "pricing")
	require.ErrorIs(t, err, ErrSectionNotFound)
}

func TestReplaceSection(t *testing.T) {
	svc := newTestContent(t)
	ctx := context.Background()

	before, err := svc.All(ctx)
	require.NoError(t, err)

	hero := json.RawMessage(`{"title":"Rebuilt","subtitle":"Stronger"}`)
	ts, err := svc.ReplaceSection(ctx, "hero", hero)
	require.NoError(t, err)
	require.False(t, ts.IsZero())

	after, err := svc.All(ctx)
	require.NoError(t, err)
	require.JSONEq(t, string(hero), string(after["hero"]))
	require.Equal(t, before["faq"], after["faq"])
}

func TestReplaceAll(t *testing.T) {
	svc := newTestContent(t)
	ctx := context.Background()

	doc := domain.Document{
		"hero": json.RawMessage(`{"title":"Fresh"}`),
	}
	ts, err := svc.ReplaceAll(ctx, doc)
	require.NoError(t, err)
	require.False(t, ts.IsZero())

	after, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)

	// Sections from the previous document are gone.
	_, err = svc.Section(ctx, "faq")
	require.ErrorIs(t, err, ErrSectionNotFound)
}

package providers

import (
	"context"
	"errors"
	"testing"

	"docdesk/internal/domains"
	"docdesk/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	storage.BlobStore
	loadErr  error
	storeErr error
}

func (f *failingStore) Load(ctx context.Context, key string) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.BlobStore.Load(ctx, key)
}

func (f *failingStore) Store(ctx context.Context, key string, value []byte) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	return f.BlobStore.Store(ctx, key, value)
}

func newProvider(t *testing.T) (*TemplateProvider, *storage.Memory) {
	t.Helper()
	blobs := storage.NewMemory()
	return NewTemplateProvider(blobs, DefaultTemplatesKey), blobs
}

func TestSaveThenList(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	fields := domains.LoanFields{
		FullName:       "Ivanov Ivan Ivanovich",
		BirthDate:      "1990-01-31",
		PassportSeries: "1234",
		PassportNumber: "567890",
		Amount:         "50000",
		Term:           "30",
		Phone:          "+7 (999) 123-45-67",
		Email:          "client@example.com",
	}
	saved, err := p.Save(ctx, "30-day loan", domains.KindLoan, fields)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	list := p.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "30-day loan", list[0].Name)
	assert.Equal(t, domains.KindLoan, list[0].Kind)
	assert.Equal(t, fields, list[0].Fields)
	assert.Equal(t, saved.ID, list[0].ID)
}

func TestSaveKeepsOrderAndUniqueIDs(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	seen := map[string]bool{}
	for _, name := range []string{"a", "b", "c", "d"} {
		tpl, err := p.Save(ctx, name, domains.KindContact, domains.ContactFields{FullName: name})
		require.NoError(t, err)
		require.False(t, seen[tpl.ID], "duplicate id %s", tpl.ID)
		seen[tpl.ID] = true
	}

	var names []string
	for _, tpl := range p.List(ctx) {
		names = append(names, tpl.Name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, names)
}

func TestSaveValidation(t *testing.T) {
	ctx := context.Background()
	p, blobs := newProvider(t)

	cases := map[string]func() error{
		"blank name": func() error {
			_, err := p.Save(ctx, "   ", domains.KindContact, domains.ContactFields{})
			return err
		},
		"nil fields": func() error {
			_, err := p.Save(ctx, "name", domains.KindLoan, nil)
			return err
		},
		"kind mismatch": func() error {
			_, err := p.Save(ctx, "name", domains.KindLoan, domains.ContactFields{})
			return err
		},
	}
	for name, save := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.Is(save(), domains.ErrValidation))
		})
	}

	_, err := blobs.Load(ctx, DefaultTemplatesKey)
	assert.True(t, errors.Is(err, storage.ErrNotFound), "nothing should be persisted")
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	a, err := p.Save(ctx, "a", domains.KindContact, domains.ContactFields{})
	require.NoError(t, err)
	b, err := p.Save(ctx, "b", domains.KindContact, domains.ContactFields{})
	require.NoError(t, err)

	require.NoError(t, p.Remove(ctx, a.ID))
	list := p.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	require.NoError(t, p.Remove(ctx, "no-such-id"))
	assert.Equal(t, list, p.List(ctx))
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	saved, err := p.Save(ctx, "a", domains.KindContact, domains.ContactFields{Phone: "1"})
	require.NoError(t, err)

	got, err := p.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domains.ContactFields{Phone: "1"}, got.Fields)

	_, err = p.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	p, blobs := newProvider(t)

	_, err := p.Save(ctx, "a", domains.KindContact, domains.ContactFields{})
	require.NoError(t, err)
	require.NoError(t, p.Clear(ctx))
	assert.Empty(t, p.List(ctx))

	blob, err := blobs.Load(ctx, DefaultTemplatesKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(blob))
}

func TestListCorruptBlob(t *testing.T) {
	ctx := context.Background()
	p, blobs := newProvider(t)

	require.NoError(t, blobs.Store(ctx, DefaultTemplatesKey, []byte(`{not json`)))
	assert.Empty(t, p.List(ctx))

	// saving over a corrupt blob starts a fresh list
	_, err := p.Save(ctx, "fresh", domains.KindContact, domains.ContactFields{})
	require.NoError(t, err)
	assert.Len(t, p.List(ctx), 1)
}

func TestListDropsBadRecords(t *testing.T) {
	ctx := context.Background()
	p, blobs := newProvider(t)

	blob := `[
		{"id":"1","name":"good","type":"contact","data":{"fullName":"a","phone":"b","email":"c"},"createdAt":"2024-03-01T10:00:00.000Z"},
		{"id":"2","name":"wrong shape","type":"loan","data":{"fullName":"a","phone":"b","email":"c"},"createdAt":"2024-03-01T10:00:00.000Z"},
		{"id":"3","name":"no type","data":{"fullName":"a","phone":"b","email":"c"}},
		"garbage",
		{"id":"1","name":"duplicate","type":"contact","data":{"fullName":"x","phone":"y","email":"z"},"createdAt":"2024-03-01T10:00:00.000Z"}
	]`
	require.NoError(t, blobs.Store(ctx, DefaultTemplatesKey, []byte(blob)))

	list := p.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "good", list[0].Name)
}

func TestListReadError(t *testing.T) {
	p := NewTemplateProvider(&failingStore{BlobStore: storage.NewMemory(), loadErr: errors.New("disk gone")}, DefaultTemplatesKey)
	assert.Empty(t, p.List(context.Background()))
}

func TestSaveWriteError(t *testing.T) {
	writeErr := errors.New("read-only")
	p := NewTemplateProvider(&failingStore{BlobStore: storage.NewMemory(), storeErr: writeErr}, DefaultTemplatesKey)
	_, err := p.Save(context.Background(), "a", domains.KindContact, domains.ContactFields{})
	assert.True(t, errors.Is(err, writeErr))
}

func TestSaveIDFailure(t *testing.T) {
	p, _ := newProvider(t)
	p.newID = func() (string, error) { return "", errors.New("no entropy") }
	_, err := p.Save(context.Background(), "a", domains.KindContact, domains.ContactFields{})
	assert.Error(t, err)
}

func TestMutationsKeepTemplatesWhenReadFails(t *testing.T) {
	ctx := context.Background()
	blobs := &failingStore{BlobStore: storage.NewMemory()}
	p := NewTemplateProvider(blobs, DefaultTemplatesKey)

	var first domains.Template
	for i, name := range []string{"a", "b", "c"} {
		tpl, err := p.Save(ctx, name, domains.KindContact, domains.ContactFields{})
		require.NoError(t, err)
		if i == 0 {
			first = tpl
		}
	}

	readErr := errors.New("connection reset")
	blobs.loadErr = readErr

	_, err := p.Save(ctx, "d", domains.KindContact, domains.ContactFields{})
	assert.True(t, errors.Is(err, readErr))
	assert.True(t, errors.Is(p.Remove(ctx, first.ID), readErr))
	_, err = p.Get(ctx, first.ID)
	assert.True(t, errors.Is(err, readErr))
	assert.Empty(t, p.List(ctx))

	blobs.loadErr = nil
	var names []string
	for _, tpl := range p.List(ctx) {
		names = append(names, tpl.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestSaveClipsPassport(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	saved, err := p.Save(ctx, "long passport", domains.KindLoan, domains.LoanFields{PassportSeries: "12345678", PassportNumber: "1234567890"})
	require.NoError(t, err)
	assert.Equal(t, domains.LoanFields{PassportSeries: "1234", PassportNumber: "123456"}, saved.Fields)

	got, err := p.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Fields, got.Fields)
}

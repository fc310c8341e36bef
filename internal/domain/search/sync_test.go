package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storehub-server/internal/domain/search"
)

// MockRepository is a mock implementation of search.Repository.
type MockRepository struct {
	FindByProductIDFunc func(ctx context.Context, productID string) (*search.Record, error)
	UpdateFunc          func(ctx context.Context, productID string, fields search.Fields) error
}

func (m *MockRepository) FindByProductID(ctx context.Context, productID string) (*search.Record, error) {
	if m.FindByProductIDFunc != nil {
		return m.FindByProductIDFunc(ctx, productID)
	}
	return nil, nil
}

func (m *MockRepository) Update(ctx context.Context, productID string, fields search.Fields) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, productID, fields)
	}
	return nil
}

func strPtr(s string) *string { return &s }

func TestReconcileUpdatesExistingRecord(t *testing.T) {
	var gotProductID string
	var gotFields search.Fields
	repo := &MockRepository{
		FindByProductIDFunc: func(ctx context.Context, productID string) (*search.Record, error) {
			return &search.Record{ProductID: productID}, nil
		},
		UpdateFunc: func(ctx context.Context, productID string, fields search.Fields) error {
			gotProductID = productID
			gotFields = fields
			return nil
		},
	}
	sync := search.NewSync(repo, zerolog.Nop())

	err := sync.Reconcile(context.Background(), "prod-1", search.Fields{
		MainImageURL: strPtr("https://cdn.example.com/a.webp"),
	})
	require.NoError(t, err)
	assert.Equal(t, "prod-1", gotProductID)
	require.NotNil(t, gotFields.MainImageURL)
	assert.Equal(t, "https://cdn.example.com/a.webp", *gotFields.MainImageURL)
}

func TestReconcileSkipsAbsentRecord(t *testing.T) {
	updated := false
	repo := &MockRepository{
		UpdateFunc: func(ctx context.Context, productID string, fields search.Fields) error {
			updated = true
			return nil
		},
	}
	sync := search.NewSync(repo, zerolog.Nop())

	err := sync.Reconcile(context.Background(), "prod-missing", search.Fields{
		VideoURL: strPtr("https://cdn.example.com/v.mp4"),
	})
	require.NoError(t, err)
	assert.False(t, updated, "absent record must not be updated")
}

func TestReconcileEmptyFieldsIsNoop(t *testing.T) {
	repo := &MockRepository{
		FindByProductIDFunc: func(ctx context.Context, productID string) (*search.Record, error) {
			t.Fatal("repository must not be touched for an empty update")
			return nil, nil
		},
	}
	sync := search.NewSync(repo, zerolog.Nop())

	require.NoError(t, sync.Reconcile(context.Background(), "prod-1", search.Fields{}))
}

func TestReconcilePropagatesLookupError(t *testing.T) {
	repo := &MockRepository{
		FindByProductIDFunc: func(ctx context.Context, productID string) (*search.Record, error) {
			return nil, errors.New("connection reset")
		},
	}
	sync := search.NewSync(repo, zerolog.Nop())

	err := sync.Reconcile(context.Background(), "prod-1", search.Fields{
		MainImageURL: strPtr("x"),
	})
	require.Error(t, err)
}

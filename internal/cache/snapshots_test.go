package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-crm/leadline/internal/common"
	"github.com/leadline-crm/leadline/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleLeads() []model.Lead {
	return []model.Lead{
		{ID: "1", Name: "Asha", Mobile: "987", Status: model.StatusInterested, Branch: "North"},
		{ID: "2", Name: "Bilal", Mobile: "912", Status: model.StatusConverted, Branch: "South"},
		{ID: "3", Name: "Carla", Mobile: "998", Status: model.StatusDropped},
	}
}

func TestStore_LeadRoundTripPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	require.NoError(t, store.SaveLeads(ctx, sampleLeads()))

	loaded, fetchedAt, err := store.LoadLeads(ctx)
	require.NoError(t, err)
	assert.False(t, fetchedAt.IsZero())
	require.Len(t, loaded, 3)
	for i, want := range []string{"1", "2", "3"} {
		assert.Equal(t, want, loaded[i].ID)
	}
	assert.Equal(t, model.StatusInterested, loaded[0].Status)
}

func TestStore_SaveReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	require.NoError(t, store.SaveLeads(ctx, sampleLeads()))
	require.NoError(t, store.SaveLeads(ctx, sampleLeads()[:1]))

	loaded, _, err := store.LoadLeads(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "1", loaded[0].ID)
}

func TestStore_LoadWithoutSnapshot(t *testing.T) {
	store := testStore(t)

	_, _, err := store.LoadLeads(context.Background())
	assert.ErrorIs(t, err, common.ErrNoSnapshot)

	_, _, err = store.LoadFollowUps(context.Background())
	assert.ErrorIs(t, err, common.ErrNoSnapshot)
}

func TestStore_DeleteLead(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)
	require.NoError(t, store.SaveLeads(ctx, sampleLeads()))

	require.NoError(t, store.DeleteLead(ctx, "2"))

	loaded, _, err := store.LoadLeads(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "1", loaded[0].ID)
	assert.Equal(t, "3", loaded[1].ID)
}

func TestStore_FollowUpRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	followUps := []model.FollowUp{
		{
			ID:     "f1",
			LeadID: "1",
			Lead:   model.LeadRef{ID: "1", Name: "Asha", Mobile: "987"},
			Date:   "2026-02-10", Time: "14:00",
			FollowedBy: "Ravi", Feedback: "asked for fees",
			Status:           model.StatusNextFollowUp,
			NextFollowUpDate: "2026-02-20", NextFollowUpTime: "10:00",
		},
		{
			ID:     "f2",
			LeadID: "2",
			Lead:   model.LeadRef{ID: "2", Name: "Bilal", Mobile: "912"},
			Date:   "2026-02-11",
			Status: model.StatusConverted, FollowedBy: "Meena",
		},
	}
	require.NoError(t, store.SaveFollowUps(ctx, followUps))

	loaded, _, err := store.LoadFollowUps(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, followUps[0], loaded[0])
	assert.Equal(t, followUps[1], loaded[1])
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}

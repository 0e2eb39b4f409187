package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketapp/internal/domain/ticket"
)

func snapshot(id uint, createdBy string) *ticket.Snapshot {
	now := time.Now().UTC()
	return &ticket.Snapshot{
		ID:        id,
		Title:     "cached ticket",
		Status:    "OPEN",
		Priority:  "LOW",
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryTicketCache_ByID(t *testing.T) {
	c := NewMemoryTicketCache(0)
	ctx := context.Background()

	got, err := c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got, "empty cache must miss")

	require.NoError(t, c.SetByID(ctx, 1, snapshot(1, "alice")))

	got, err = c.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.ID)

	require.NoError(t, c.EvictByID(ctx, 1))

	got, err = c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got, "lookup after eviction must miss")
}

func TestMemoryTicketCache_ByIDReturnsCopy(t *testing.T) {
	c := NewMemoryTicketCache(0)
	ctx := context.Background()

	require.NoError(t, c.SetByID(ctx, 1, snapshot(1, "alice")))

	got, err := c.GetByID(ctx, 1)
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "cached ticket", again.Title)
}

func TestMemoryTicketCache_ByCreator(t *testing.T) {
	c := NewMemoryTicketCache(0)
	ctx := context.Background()

	got, err := c.GetByCreator(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)

	list := []ticket.Snapshot{*snapshot(1, "alice"), *snapshot(2, "alice")}
	require.NoError(t, c.SetByCreator(ctx, "alice", list))

	got, err = c.GetByCreator(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// The two keyspaces are independent.
	byID, err := c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, byID)

	require.NoError(t, c.EvictByCreator(ctx, "alice"))
	got, err = c.GetByCreator(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryTicketCache_CachedEmptyListIsNotAMiss(t *testing.T) {
	c := NewMemoryTicketCache(0)
	ctx := context.Background()

	require.NoError(t, c.SetByCreator(ctx, "bob", []ticket.Snapshot{}))

	got, err := c.GetByCreator(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMemoryTicketCache_TTLExpiry(t *testing.T) {
	c := NewMemoryTicketCache(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, c.SetByID(ctx, 1, snapshot(1, "alice")))
	time.Sleep(25 * time.Millisecond)

	got, err := c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got, "expired entry must miss")
}

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/sns-timeline/internal/model"
)

func TestListReceivedJoinsOwnerEntries(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	entries := NewEntryRepository(db)
	comments := NewCommentRepository(db)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mine := &model.Entry{UserID: 1, Body: "mine\n", CreatedAt: base}
	theirs := &model.Entry{UserID: 2, Body: "theirs\n", CreatedAt: base}
	require.NoError(t, entries.Create(ctx, mine))
	require.NoError(t, entries.Create(ctx, theirs))

	for i := 0; i < 15; i++ {
		require.NoError(t, comments.Create(ctx, &model.Comment{
			EntryID:   mine.ID,
			UserID:    2,
			Comment:   fmt.Sprintf("on mine %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, comments.Create(ctx, &model.Comment{
		EntryID: theirs.ID, UserID: 1, Comment: "on theirs", CreatedAt: base.Add(time.Hour),
	}))

	got, err := comments.ListReceived(ctx, 1, 10)
	require.NoError(t, err)
	// capped at 10 no matter how many comments exist on the owner's entries
	require.Len(t, got, 10)
	require.Equal(t, "on mine 14", got[0].Comment)
	for _, c := range got {
		require.Equal(t, mine.ID, c.EntryID)
	}
}

func TestListByEntryInCreationOrder(t *testing.T) {
	ctx := context.Background()
	comments := NewCommentRepository(setupDB(t))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, comments.Create(ctx, &model.Comment{
			EntryID: 7, UserID: 1, Comment: fmt.Sprintf("c%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := comments.ListByEntry(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "c0", got[0].Comment)
	require.Equal(t, "c2", got[2].Comment)
}

func TestCommentListRecentIsBounded(t *testing.T) {
	ctx := context.Background()
	comments := NewCommentRepository(setupDB(t))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		require.NoError(t, comments.Create(ctx, &model.Comment{
			EntryID: 1, UserID: 1, Comment: fmt.Sprintf("c%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := comments.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 10)
	require.Equal(t, "c24", got[0].Comment)
}

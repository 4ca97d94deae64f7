package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/sns-timeline/internal/model"
)

func TestCreatePairIsSymmetric(t *testing.T) {
	ctx := context.Background()
	repo := NewRelationRepository(setupDB(t))

	require.NoError(t, repo.CreatePair(ctx, 1, 2))

	ab, err := repo.Exists(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, ab)

	ba, err := repo.Exists(ctx, 2, 1)
	require.NoError(t, err)
	require.True(t, ba)
}

func TestCreatePairIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewRelationRepository(db)

	require.NoError(t, repo.CreatePair(ctx, 1, 2))
	require.NoError(t, repo.CreatePair(ctx, 1, 2))

	var cnt int64
	require.NoError(t, db.Model(&model.Relation{}).Count(&cnt).Error)
	require.Equal(t, int64(2), cnt)

	still, err := repo.Exists(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, still)
}

func TestExistsChecksOneDirectionOnly(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewRelationRepository(db)

	// a lone directed row, as after a partial manual import
	require.NoError(t, db.Create(&model.Relation{One: 5, Another: 6}).Error)

	fwd, err := repo.Exists(ctx, 5, 6)
	require.NoError(t, err)
	require.True(t, fwd)

	rev, err := repo.Exists(ctx, 6, 5)
	require.NoError(t, err)
	require.False(t, rev)
}

func TestFriendIDsAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewRelationRepository(setupDB(t))

	require.NoError(t, repo.CreatePair(ctx, 1, 2))
	require.NoError(t, repo.CreatePair(ctx, 1, 3))
	require.NoError(t, repo.CreatePair(ctx, 2, 3))

	ids, err := repo.FriendIDs(ctx, 1)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{2, 3}, ids)

	cnt, err := repo.Count(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), cnt)
}

func TestRelationDeleteAbove(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewRelationRepository(db)

	for i := int64(1); i <= 10; i++ {
		require.NoError(t, db.Create(&model.Relation{ID: i, One: i, Another: i + 100}).Error)
	}
	require.NoError(t, repo.DeleteAbove(ctx, 5))

	var cnt int64
	require.NoError(t, db.Model(&model.Relation{}).Count(&cnt).Error)
	require.Equal(t, int64(5), cnt)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/sns-timeline/internal/model"
)

func TestAddFriendSymmetricAndIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a := env.createUser(t, "alice")
	b := env.createUser(t, "bob")

	require.NoError(t, env.graph.AddFriend(ctx, a.ID, b.ID))

	ab, err := env.graph.IsFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.True(t, ab)
	ba, err := env.graph.IsFriend(ctx, b.ID, a.ID)
	require.NoError(t, err)
	require.True(t, ba)

	// repeating the call must not change the visible relation state
	require.NoError(t, env.graph.AddFriend(ctx, a.ID, b.ID))
	still, err := env.graph.IsFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.True(t, still)

	var cnt int64
	require.NoError(t, env.db.Model(&model.Relation{}).Count(&cnt).Error)
	require.Equal(t, int64(2), cnt)
}

func TestAddFriendSelfRejected(t *testing.T) {
	env := newTestEnv(t)
	a := env.createUser(t, "alice")
	require.ErrorIs(t, env.graph.AddFriend(context.Background(), a.ID, a.ID), ErrFriendSelf)
}

func TestPermitted(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	owner := env.createUser(t, "owner")
	friend := env.createUser(t, "friend")
	stranger := env.createUser(t, "stranger")
	env.befriend(t, owner.ID, friend.ID)

	self, err := env.graph.Permitted(ctx, owner.ID, owner.ID)
	require.NoError(t, err)
	require.True(t, self)

	asFriend, err := env.graph.Permitted(ctx, owner.ID, friend.ID)
	require.NoError(t, err)
	require.True(t, asFriend)

	asStranger, err := env.graph.Permitted(ctx, owner.ID, stranger.ID)
	require.NoError(t, err)
	require.False(t, asStranger)
}

func TestFriendCountMatchesRelationSet(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a := env.createUser(t, "alice")
	b := env.createUser(t, "bob")
	c := env.createUser(t, "carol")
	env.befriend(t, a.ID, b.ID)
	env.befriend(t, a.ID, c.ID)

	cnt, err := env.graph.FriendCount(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), cnt)

	cnt, err = env.graph.FriendCount(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), cnt)
}

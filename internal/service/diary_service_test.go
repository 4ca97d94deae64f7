package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/sns-timeline/internal/model"
)

func TestPostEntryDefaultTitle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	entry, err := env.diary.PostEntry(ctx, alice.ID, "", "content only", false)
	require.NoError(t, err)
	require.Equal(t, "タイトルなし\ncontent only", entry.Body)
	require.Equal(t, "タイトルなし", entry.Title())
}

func TestPostEntryBodyAlwaysHasTitleLine(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	entry, err := env.diary.PostEntry(ctx, alice.ID, "Hi", "", true)
	require.NoError(t, err)
	require.Equal(t, "Hi\n", entry.Body)
	require.Equal(t, "Hi", entry.Title())
	require.Empty(t, entry.Content())
	require.True(t, entry.Private)
}

func TestPostCommentOnPrivateRequiresPermission(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")
	env.befriend(t, alice.ID, bob.ID)

	entry, err := env.diary.PostEntry(ctx, alice.ID, "Hi", "there", true)
	require.NoError(t, err)

	_, err = env.diary.PostComment(ctx, carol.ID, entry.ID, "nope")
	require.ErrorIs(t, err, ErrPermissionDenied)

	comment, err := env.diary.PostComment(ctx, bob.ID, entry.ID, "hello")
	require.NoError(t, err)
	require.Equal(t, entry.ID, comment.EntryID)
	require.Equal(t, bob.ID, comment.UserID)
}

func TestPostCommentOnMissingEntry(t *testing.T) {
	env := newTestEnv(t)
	bob := env.createUser(t, "bob")
	_, err := env.diary.PostComment(context.Background(), bob.ID, 4242, "hello")
	require.ErrorIs(t, err, ErrContentNotFound)
}

func TestProfileUpdateOwnerOnly(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	err := env.profileSvc.Update(ctx, alice, "bob", nil)
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestProfileUpsertInsertThenUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	require.NoError(t, env.profileSvc.Update(ctx, alice, "alice", &model.Profile{FirstName: "花子"}))
	require.NoError(t, env.profileSvc.Update(ctx, alice, "alice", &model.Profile{FirstName: "華子", Pref: 13}))

	prof, err := env.profiles.Get(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "華子", prof.FirstName)
	require.Equal(t, 13, prof.Pref)
}

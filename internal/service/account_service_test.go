package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovacic/devlink/internal/domain"
)

func TestDeleteAccount_CascadeOrder(t *testing.T) {
	t.Parallel()

	journal := &deleteJournal{}
	users := newMemUserRepo()
	users.journal = journal
	profiles := newMemProfileRepo(users)
	profiles.journal = journal
	posts := newMemPostRepo()
	posts.journal = journal

	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, users.Create(ctx, &domain.User{ID: userID, Email: "a@x.com", Name: "Ana", CreatedAt: time.Now()}))
	require.NoError(t, profiles.Upsert(ctx, &domain.Profile{ID: uuid.New(), UserID: userID, Status: "Dev"}))
	require.NoError(t, posts.Create(ctx, &domain.Post{ID: uuid.New(), UserID: userID, Text: "hello"}))
	require.NoError(t, posts.Create(ctx, &domain.Post{ID: uuid.New(), UserID: userID, Text: "world"}))

	svc := NewAccountService(posts, profiles, users)
	require.NoError(t, svc.DeleteAccount(ctx, userID))

	// User deletion must come strictly last.
	assert.Equal(t, []string{"posts", "profile", "user"}, journal.steps)

	u, err := users.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, u)

	p, err := profiles.GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, p)

	assert.Empty(t, posts.posts)
}

func TestDeleteAccount_Retryable(t *testing.T) {
	t.Parallel()

	users := newMemUserRepo()
	profiles := newMemProfileRepo(users)
	posts := newMemPostRepo()
	svc := NewAccountService(posts, profiles, users)

	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, users.Create(ctx, &domain.User{ID: userID, Email: "a@x.com", Name: "Ana"}))

	// Every step is a no-op on absent rows, so repeating the whole cascade
	// after a partial failure is safe.
	require.NoError(t, svc.DeleteAccount(ctx, userID))
	require.NoError(t, svc.DeleteAccount(ctx, userID))
}

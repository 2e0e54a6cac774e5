package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomidar/jomidar-api/internal/config"
	"github.com/jomidar/jomidar-api/internal/jobs"
	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/persistence"
	"github.com/jomidar/jomidar-api/internal/store"
)

func newAuthFixture(t *testing.T) (*AuthService, *SnapshotFlusher, *persistence.SnapshotStore) {
	t.Helper()

	st := store.New(models.Snapshot{})
	db, err := persistence.Connect(filepath.Join(t.TempDir(), "auth_test.db"))
	require.NoError(t, err)

	worker := jobs.NewWorker(1)
	t.Cleanup(worker.Shutdown)

	snapshots := persistence.NewSnapshotStore(db, "test")
	flusher := NewSnapshotFlusher(st, snapshots, worker)
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1}
	return NewAuthService(st, flusher, cfg), flusher, snapshots
}

func TestSignUpAndSignIn(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	result, err := service.SignUp(ctx, "Rahim Ahmed", "rahim@example.com", "strongpassword")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "rahim@example.com", result.User.Email)

	signedIn, err := service.SignIn(ctx, "rahim@example.com", "strongpassword")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, signedIn.User.ID)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.SignUp(ctx, "Rahim Ahmed", "rahim@example.com", "strongpassword")
	require.NoError(t, err)

	_, err = service.SignUp(ctx, "Other Person", "rahim@example.com", "differentpass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInWrongPassword(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.SignUp(ctx, "Rahim Ahmed", "rahim@example.com", "strongpassword")
	require.NoError(t, err)

	_, err = service.SignIn(ctx, "rahim@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.SignIn(ctx, "nobody@example.com", "strongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	result, err := service.SignUp(ctx, "Rahim Ahmed", "rahim@example.com", "strongpassword")
	require.NoError(t, err)

	refreshed, err := service.Refresh(ctx, result.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, refreshed.User.ID)
	assert.NotEqual(t, result.RefreshToken, refreshed.RefreshToken)

	// The old token was consumed by rotation.
	_, err = service.Refresh(ctx, result.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSignOutInvalidatesRefreshToken(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	result, err := service.SignUp(ctx, "Rahim Ahmed", "rahim@example.com", "strongpassword")
	require.NoError(t, err)

	service.SignOut(ctx, result.RefreshToken)

	_, err = service.Refresh(ctx, result.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMe(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	result, err := service.SignUp(ctx, "Rahim Ahmed", "rahim@example.com", "strongpassword")
	require.NoError(t, err)

	me, err := service.Me(result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rahim Ahmed", me.Name)

	_, err = service.Me("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSignInAfterRestart(t *testing.T) {
	service, flusher, snapshots := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.SignUp(ctx, "Rahim Ahmed", "rahim@example.com", "strongpassword")
	require.NoError(t, err)
	require.NoError(t, flusher.Flush(ctx))

	// Rebuild the whole stack from the persisted snapshot, as a process
	// restart would.
	loaded, err := snapshots.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	restarted := NewAuthService(
		store.New(*loaded),
		flusher,
		&config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1},
	)

	result, err := restarted.SignIn(ctx, "rahim@example.com", "strongpassword")
	require.NoError(t, err)
	assert.Equal(t, "rahim@example.com", result.User.Email)

	_, err = restarted.SignIn(ctx, "rahim@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, VerifyPassword("secret123", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

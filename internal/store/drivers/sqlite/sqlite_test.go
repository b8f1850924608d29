package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/krishnaagrawal0402/gamehelper/internal/domain"
	"github.com/krishnaagrawal0402/gamehelper/internal/store"
	"github.com/krishnaagrawal0402/gamehelper/pkg/idx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testUser(username string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		FullName:     "Test User",
		Age:          30,
		Gender:       "Female",
		ContactInfo:  "test@example.com",
	}
}

func testProfile(userID string) domain.PreferenceProfile {
	return domain.PreferenceProfile{
		UserID:                  userID,
		MemoryChallengeSeverity: 3,
		FocusDifficulty:         2,
		EverydayProblems:        "Sometimes",
		RememberingInfo:         "Often",
		NavigationAbility:       4,
		LeisureDevices:          []string{"Mobile", "Tablet"},
		GamePreferences:         "Puzzle",
		TimeSpent:               5,
		CognitiveFocusAreas:     []string{"Memory", "Language"},
		GameValues:              "Relaxation",
		ProgressTracking:        "Yes",
	}
}

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("alice")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.PasswordHash, got.PasswordHash)
	assert.Equal(t, u.FullName, got.FullName)
	assert.False(t, got.CreatedAt.IsZero())

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Users().GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Users().CreateUser(ctx, testUser("bob")))

	err := s.Users().CreateUser(ctx, testUser("bob"))
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("carol")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	require.NoError(t, s.Preferences().Create(ctx, testProfile(u.ID)))

	got, err := s.Preferences().GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.MemoryChallengeSeverity)
	assert.Equal(t, []string{"Mobile", "Tablet"}, got.LeisureDevices)
	assert.Equal(t, []string{"Memory", "Language"}, got.CognitiveFocusAreas)
	assert.Equal(t, "Relaxation", got.GameValues)
}

func TestPreferencesMalformedListDegradesToEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("dave")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	require.NoError(t, s.Preferences().Create(ctx, testProfile(u.ID)))

	// Corrupt the stored JSON the way a legacy writer might have.
	_, err := s.db.ExecContext(ctx,
		`UPDATE user_preferences SET leisure_devices = 'not-json' WHERE user_id = ?`, u.ID)
	require.NoError(t, err)

	got, err := s.Preferences().GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LeisureDevices)
	assert.Equal(t, []string{"Memory", "Language"}, got.CognitiveFocusAreas)
}

func TestUpdateFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("erin")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	require.NoError(t, s.Preferences().Create(ctx, testProfile(u.ID)))

	err := s.Preferences().UpdateFields(ctx, u.ID, map[string]any{
		"time_spent":      10,
		"game_values":     "Challenge",
		"leisure_devices": []any{"PC"},
	})
	require.NoError(t, err)

	got, err := s.Preferences().GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.TimeSpent)
	assert.Equal(t, "Challenge", got.GameValues)
	assert.Equal(t, []string{"PC"}, got.LeisureDevices)

	// Untouched fields keep their values.
	assert.Equal(t, "Puzzle", got.GamePreferences)
}

func TestUpdateFieldsRejectsUnknownColumn(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("frank")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	require.NoError(t, s.Preferences().Create(ctx, testProfile(u.ID)))

	err := s.Preferences().UpdateFields(ctx, u.ID, map[string]any{
		"time_spent":    10,
		"password_hash": "owned",
	})
	require.ErrorIs(t, err, store.ErrUnknownField)

	// Nothing was applied.
	got, err := s.Preferences().GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.TimeSpent)
}

func TestUpdateFieldsUnknownUser(t *testing.T) {
	s := newTestStore(t)

	err := s.Preferences().UpdateFields(context.Background(), idx.New().String(),
		map[string]any{"time_spent": 1})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("grace")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		if err := tx.Preferences().Create(ctx, testProfile(u.ID)); err != nil {
			return err
		}
		// Second preference row for the same user violates the PK and
		// must take the user row down with it.
		return tx.Preferences().Create(ctx, testProfile(u.ID))
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.Users().GetUserByUsername(ctx, "grace")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListGamesSeeded(t *testing.T) {
	s := newTestStore(t)

	games, err := s.Games().ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 3)

	assert.Equal(t, "Memory Match", games[0].Name)
	assert.Equal(t, domain.DifficultyEasy, games[0].Difficulty)
	assert.Equal(t, []string{"Web", "Mobile"}, games[0].Platforms)
	assert.Equal(t, "Puzzle Quest", games[1].Name)
	assert.Equal(t, "Word Builder", games[2].Name)
}

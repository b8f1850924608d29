package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/krishnaagrawal0402/gamehelper/internal/domain"
	"github.com/krishnaagrawal0402/gamehelper/internal/store"
	"github.com/krishnaagrawal0402/gamehelper/internal/store/drivers/sqlite"
	"github.com/krishnaagrawal0402/gamehelper/pkg/cryptox"
	"github.com/krishnaagrawal0402/gamehelper/pkg/jwtx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service-test-*")
	if err != nil {
		os.Exit(1)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestSigner(t *testing.T) jwtx.Signer {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)
	return signer
}

func newAccountService(t *testing.T, st store.Store) *AccountService {
	t.Helper()

	svc, err := NewAccountService(st, newTestSigner(t), "https://gamehelper.test", time.Hour)
	require.NoError(t, err)
	return svc
}

func registerInput(username string) RegisterInput {
	return RegisterInput{
		Username:    username,
		Password:    "correct-horse-battery",
		FullName:    "Alice Example",
		Age:         34,
		Gender:      "Female",
		ContactInfo: "alice@example.com",
		Preferences: intakeAnswers(),
	}
}

// intakeAnswers fills in every required preference question.
func intakeAnswers() domain.PreferenceProfile {
	return domain.PreferenceProfile{
		MemoryChallengeSeverity:  2,
		FocusDifficulty:          3,
		EverydayProblems:         "Sometimes",
		RememberingInfo:          "Usually fine",
		NavigationAbility:        4,
		LanguageDifficulties:     "No",
		PhysicalLimitations:      "No",
		DeviceUsability:          "Comfortable",
		LeisureDevices:           []string{"Mobile"},
		GamePreferences:          "Puzzle",
		TimeSpent:                5,
		GameplayPreference:       "Single-player",
		MultiplayerInteraction:   "Rarely",
		AccommodationsNeeded:     "No",
		VisualHearingImpairments: "No",
		FrustratingGameMechanics: "Strict time limits",
		CognitiveFocusAreas:      []string{"Memory"},
		IdealGameDescription:     "Calm and forgiving",
		DesiredOutcomes:          "Better recall",
		PreviousExperience:       "Casual",
		GamePreferencesType:      "Casual",
		GameValues:               "Relaxation",
		ProgressTracking:         "Weekly",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	st := newTestStore(t)
	svc := newAccountService(t, st)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct-horse-battery", user.PasswordHash)

	token, expiresIn, err := svc.Login(ctx, "alice", "correct-horse-battery")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, time.Hour, expiresIn)
}

func TestRegisterCreatesPreferencesAtomically(t *testing.T) {
	st := newTestStore(t)
	svc := newAccountService(t, st)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	prefs, err := st.Preferences().GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mobile"}, prefs.LeisureDevices)
	assert.Equal(t, []string{"Memory"}, prefs.CognitiveFocusAreas)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	st := newTestStore(t)
	svc := newAccountService(t, st)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerInput("alice"))
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestRegisterValidation(t *testing.T) {
	st := newTestStore(t)
	svc := newAccountService(t, st)

	input := registerInput("al") // too short
	input.Password = "short"
	input.ContactInfo = ""

	_, err := svc.Register(context.Background(), input)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "contactinfo")
}

func TestRegisterRequiresIntakeAnswers(t *testing.T) {
	st := newTestStore(t)
	svc := newAccountService(t, st)
	ctx := context.Background()

	input := registerInput("alice")
	input.Preferences = domain.PreferenceProfile{}

	_, err := svc.Register(ctx, input)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "memorychallengeseverity")
	assert.Contains(t, verr.Fields, "gamepreferences")
	assert.Contains(t, verr.Fields, "cognitivefocusareas")

	// The free-text elaboration fields stay optional.
	assert.NotContains(t, verr.Fields, "physicaldetails")
	assert.NotContains(t, verr.Fields, "gamestried")

	// Nothing was written.
	_, err = st.Users().GetUserByUsername(ctx, "alice")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRegisterRequiresNonEmptyListAnswers(t *testing.T) {
	st := newTestStore(t)
	svc := newAccountService(t, st)

	input := registerInput("alice")
	input.Preferences.LeisureDevices = []string{}
	input.Preferences.CognitiveFocusAreas = nil

	_, err := svc.Register(context.Background(), input)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "leisuredevices")
	assert.Contains(t, verr.Fields, "cognitivefocusareas")
}

func TestLoginWrongPassword(t *testing.T) {
	st := newTestStore(t)
	svc := newAccountService(t, st)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	st := newTestStore(t)
	svc := newAccountService(t, st)

	_, _, err := svc.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerify(t *testing.T) {
	st := newTestStore(t)
	svc := newAccountService(t, st)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	ok, err := svc.Verify(ctx, "alice", "correct-horse-battery")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, "alice", "wrong-password")
	require.NoError(t, err)
	assert.False(t, ok)

	// Unknown usernames look exactly like a wrong password.
	ok, err = svc.Verify(ctx, "nobody", "correct-horse-battery")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetProfile(t *testing.T) {
	st := newTestStore(t)
	accounts := newAccountService(t, st)
	profiles := &ProfileService{Store: st}
	ctx := context.Background()

	_, err := accounts.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	got, err := profiles.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.User.Username)
	assert.Equal(t, "Alice Example", got.User.FullName)
	assert.Equal(t, 5, got.Preferences.TimeSpent)
}

func TestGetProfileUnknownUser(t *testing.T) {
	st := newTestStore(t)
	profiles := &ProfileService{Store: st}

	_, err := profiles.GetProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	st := newTestStore(t)
	accounts := newAccountService(t, st)
	profiles := &ProfileService{Store: st}
	ctx := context.Background()

	_, err := accounts.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	err = profiles.UpdateProfile(ctx, "alice", map[string]any{
		"time_spent":      12,
		"leisure_devices": []any{"Web", "Tablet"},
	})
	require.NoError(t, err)

	got, err := profiles.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Preferences.TimeSpent)
	assert.Equal(t, []string{"Web", "Tablet"}, got.Preferences.LeisureDevices)
}

func TestUpdateProfileUnknownField(t *testing.T) {
	st := newTestStore(t)
	accounts := newAccountService(t, st)
	profiles := &ProfileService{Store: st}
	ctx := context.Background()

	_, err := accounts.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	err = profiles.UpdateProfile(ctx, "alice", map[string]any{"username": "mallory"})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestUpdateProfileEmpty(t *testing.T) {
	st := newTestStore(t)
	profiles := &ProfileService{Store: st}

	err := profiles.UpdateProfile(context.Background(), "ghost", map[string]any{})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRecommendNoFilters(t *testing.T) {
	st := newTestStore(t)
	rec := &RecommendService{Store: st}

	games, err := rec.Recommend(context.Background(), "", Filters{})
	require.NoError(t, err)
	require.Len(t, games, 3)

	// Catalog order is preserved.
	assert.Equal(t, "Memory Match", games[0].Name)
	assert.Equal(t, "Puzzle Quest", games[1].Name)
	assert.Equal(t, "Word Builder", games[2].Name)
}

func TestRecommendByDifficulty(t *testing.T) {
	st := newTestStore(t)
	rec := &RecommendService{Store: st}

	games, err := rec.Recommend(context.Background(), "", Filters{Difficulty: domain.DifficultyEasy})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Memory Match", games[0].Name)
}

func TestRecommendPlatformExactMembership(t *testing.T) {
	st := newTestStore(t)
	rec := &RecommendService{Store: st}
	ctx := context.Background()

	// "Web" matches Memory Match (Web,Mobile) and Word Builder (Mobile,Web).
	games, err := rec.Recommend(ctx, "", Filters{Platform: "Web"})
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Memory Match", games[0].Name)
	assert.Equal(t, "Word Builder", games[1].Name)

	// A prefix of a platform tag matches nothing.
	games, err = rec.Recommend(ctx, "", Filters{Platform: "We"})
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestRecommendCombinedFilters(t *testing.T) {
	st := newTestStore(t)
	rec := &RecommendService{Store: st}

	games, err := rec.Recommend(context.Background(), "", Filters{
		Difficulty:     domain.DifficultyHard,
		Platform:       "Mobile",
		CognitiveFocus: "Language",
	})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Word Builder", games[0].Name)
}

func TestRecommendMatchDevices(t *testing.T) {
	st := newTestStore(t)
	accounts := newAccountService(t, st)
	rec := &RecommendService{Store: st}
	ctx := context.Background()

	input := registerInput("alice")
	input.Preferences.LeisureDevices = []string{"PC"}
	_, err := accounts.Register(ctx, input)
	require.NoError(t, err)

	games, err := rec.Recommend(ctx, "alice", Filters{MatchDevices: true})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Puzzle Quest", games[0].Name)
}

func TestRegisteredFocusAreasDriveRecommendations(t *testing.T) {
	st := newTestStore(t)
	accounts := newAccountService(t, st)
	profiles := &ProfileService{Store: st}
	rec := &RecommendService{Store: st}
	ctx := context.Background()

	input := registerInput("alice")
	input.Preferences.CognitiveFocusAreas = []string{"Memory"}
	_, err := accounts.Register(ctx, input)
	require.NoError(t, err)

	profile, err := profiles.GetProfile(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, []string{"Memory"}, profile.Preferences.CognitiveFocusAreas)

	games, err := rec.Recommend(ctx, "alice", Filters{
		CognitiveFocus: profile.Preferences.CognitiveFocusAreas[0],
	})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Memory Match", games[0].Name)
}

func TestRecommendNoMatchesIsEmptyNotError(t *testing.T) {
	st := newTestStore(t)
	rec := &RecommendService{Store: st}

	games, err := rec.Recommend(context.Background(), "", Filters{Difficulty: "Impossible"})
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestTipOfDayStableWithinDay(t *testing.T) {
	rec := &RecommendService{}

	morning := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, rec.TipOfDay(morning), rec.TipOfDay(evening))
	assert.NotEqual(t, rec.TipOfDay(morning), rec.TipOfDay(nextDay))
	assert.NotEmpty(t, rec.TipOfDay(morning))
}

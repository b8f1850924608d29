package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/krishnaagrawal0402/gamehelper/internal/domain"
	"github.com/krishnaagrawal0402/gamehelper/internal/store"
)

type preferencesRepo struct {
	db dbtx
}

// preferenceColumns lists every column in persistence order. The same order
// is used for INSERT, SELECT and scan so a mismatch is impossible to miss.
var preferenceColumns = []string{
	"memory_challenge_severity",
	"focus_difficulty",
	"everyday_problems",
	"remembering_info",
	"navigation_ability",
	"language_difficulties",
	"physical_limitations",
	"physical_details",
	"device_usability",
	"leisure_devices",
	"game_preferences",
	"time_spent",
	"gameplay_preference",
	"multiplayer_interaction",
	"accommodations_needed",
	"accommodations_details",
	"visual_hearing_impairments",
	"impairments_details",
	"frustrating_game_mechanics",
	"cognitive_focus_areas",
	"ideal_game_description",
	"desired_outcomes",
	"previous_experience",
	"games_tried",
	"enjoyed_aspects",
	"difficulties",
	"game_preferences_type",
	"game_values",
	"progress_tracking",
}

// updatableColumns is the whitelist for partial updates. It is the same set
// as preferenceColumns: identity and timestamps are never updatable, list
// columns expect the caller to hand over an encoded value.
var updatableColumns = func() map[string]struct{} {
	m := make(map[string]struct{}, len(preferenceColumns))
	for _, c := range preferenceColumns {
		m[c] = struct{}{}
	}
	return m
}()

// listColumns are persisted as JSON arrays.
var listColumns = map[string]struct{}{
	"leisure_devices":       {},
	"cognitive_focus_areas": {},
}

func (r *preferencesRepo) GetByUserID(ctx context.Context, userID string) (domain.PreferenceProfile, error) {
	query := `SELECT ` + strings.Join(preferenceColumns, ", ") +
		` FROM user_preferences WHERE user_id = ?`

	var (
		p                   domain.PreferenceProfile
		rawLeisureDevices   string
		rawCognitiveFocuses string
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.MemoryChallengeSeverity,
		&p.FocusDifficulty,
		&p.EverydayProblems,
		&p.RememberingInfo,
		&p.NavigationAbility,
		&p.LanguageDifficulties,
		&p.PhysicalLimitations,
		&p.PhysicalDetails,
		&p.DeviceUsability,
		&rawLeisureDevices,
		&p.GamePreferences,
		&p.TimeSpent,
		&p.GameplayPreference,
		&p.MultiplayerInteraction,
		&p.AccommodationsNeeded,
		&p.AccommodationsDetails,
		&p.VisualHearingImpairments,
		&p.ImpairmentsDetails,
		&p.FrustratingGameMechanics,
		&rawCognitiveFocuses,
		&p.IdealGameDescription,
		&p.DesiredOutcomes,
		&p.PreviousExperience,
		&p.GamesTried,
		&p.EnjoyedAspects,
		&p.Difficulties,
		&p.GamePreferencesType,
		&p.GameValues,
		&p.ProgressTracking,
	)
	if err != nil {
		return domain.PreferenceProfile{}, mapNotFound(err)
	}

	p.UserID = userID
	p.LeisureDevices = decodeList(rawLeisureDevices)
	p.CognitiveFocusAreas = decodeList(rawCognitiveFocuses)
	return p, nil
}

func (r *preferencesRepo) Create(ctx context.Context, p domain.PreferenceProfile) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(preferenceColumns)+1), ", ")
	query := `INSERT INTO user_preferences (user_id, ` +
		strings.Join(preferenceColumns, ", ") + `) VALUES (` + placeholders + `)`

	_, err := r.db.ExecContext(ctx, query,
		p.UserID,
		p.MemoryChallengeSeverity,
		p.FocusDifficulty,
		p.EverydayProblems,
		p.RememberingInfo,
		p.NavigationAbility,
		p.LanguageDifficulties,
		p.PhysicalLimitations,
		p.PhysicalDetails,
		p.DeviceUsability,
		encodeList(p.LeisureDevices),
		p.GamePreferences,
		p.TimeSpent,
		p.GameplayPreference,
		p.MultiplayerInteraction,
		p.AccommodationsNeeded,
		p.AccommodationsDetails,
		p.VisualHearingImpairments,
		p.ImpairmentsDetails,
		p.FrustratingGameMechanics,
		encodeList(p.CognitiveFocusAreas),
		p.IdealGameDescription,
		p.DesiredOutcomes,
		p.PreviousExperience,
		p.GamesTried,
		p.EnjoyedAspects,
		p.Difficulties,
		p.GamePreferencesType,
		p.GameValues,
		p.ProgressTracking,
	)
	return mapConstraint(err)
}

func (r *preferencesRepo) UpdateFields(ctx context.Context, userID string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}

	// Validate every column name before building any SQL. The names come
	// from the whitelist above, never from the request, so the assembled
	// statement contains no user-controlled identifiers.
	setClauses := make([]string, 0, len(updates)+1)
	args := make([]any, 0, len(updates)+1)
	for _, col := range preferenceColumns {
		val, ok := updates[col]
		if !ok {
			continue
		}
		if _, isList := listColumns[col]; isList {
			val = encodeList(toStringList(val))
		}
		setClauses = append(setClauses, col+" = ?")
		args = append(args, val)
	}
	if len(setClauses) != len(updates) {
		for col := range updates {
			if _, ok := updatableColumns[col]; !ok {
				return fmt.Errorf("%w: %s", store.ErrUnknownField, col)
			}
		}
	}

	setClauses = append(setClauses, "updated_at = CURRENT_TIMESTAMP")
	query := `UPDATE user_preferences SET ` + strings.Join(setClauses, ", ") +
		` WHERE user_id = ?`
	args = append(args, userID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// toStringList coerces the decoded JSON value of a list field. PATCH bodies
// arrive as []any after generic decoding.
func toStringList(val any) []string {
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return decodeList(v)
	default:
		return []string{}
	}
}

package domain

// PreferenceProfile is the wide per-user record of cognitive and gaming
// preference answers collected during intake. Exactly one row exists per
// user; it is created together with the User and never deleted on its own.
//
// Severity and ability fields are small integer scales. The two list-valued
// fields keep their answer order; the store persists them as JSON text.
// Intake requires an answer to every question except the free-text detail
// fields, which only elaborate on a yes/no answer.
type PreferenceProfile struct {
	UserID string

	MemoryChallengeSeverity  int      `validate:"required,gte=1,lte=5"`
	FocusDifficulty          int      `validate:"required,gte=1,lte=5"`
	EverydayProblems         string   `validate:"required"`
	RememberingInfo          string   `validate:"required"`
	NavigationAbility        int      `validate:"required,gte=1,lte=5"`
	LanguageDifficulties     string   `validate:"required"`
	PhysicalLimitations      string   `validate:"required"`
	PhysicalDetails          string   `validate:"-"`
	DeviceUsability          string   `validate:"required"`
	LeisureDevices           []string `validate:"required,min=1"`
	GamePreferences          string   `validate:"required"`
	TimeSpent                int      `validate:"required"`
	GameplayPreference       string   `validate:"required"`
	MultiplayerInteraction   string   `validate:"required"`
	AccommodationsNeeded     string   `validate:"required"`
	AccommodationsDetails    string   `validate:"-"`
	VisualHearingImpairments string   `validate:"required"`
	ImpairmentsDetails       string   `validate:"-"`
	FrustratingGameMechanics string   `validate:"required"`
	CognitiveFocusAreas      []string `validate:"required,min=1"`
	IdealGameDescription     string   `validate:"required"`
	DesiredOutcomes          string   `validate:"required"`
	PreviousExperience       string   `validate:"required"`
	GamesTried               string   `validate:"-"`
	EnjoyedAspects           string   `validate:"-"`
	Difficulties             string   `validate:"-"`
	GamePreferencesType      string   `validate:"required"`
	GameValues               string   `validate:"required"`
	ProgressTracking         string   `validate:"required"`
}

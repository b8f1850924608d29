package gamesdk

// Request and response types for the Game Helper HTTP API. Handlers encode
// these, the SDK client decodes them, and the API tests assert against them,
// so the wire contract lives in exactly one place.

// ErrorResponse is the standard error envelope returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "duplicate_username")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// Details contains field-specific validation errors (field name: message)
	Details map[string]string `json:"details,omitempty"`
}

// ProfilePayload is the wide cognitive/gaming preference record. Field names
// match the persisted column names so a profile read renders exactly the
// mapping the intake form submitted.
type ProfilePayload struct {
	MemoryChallengeSeverity  int      `json:"memory_challenge_severity"`
	FocusDifficulty          int      `json:"focus_difficulty"`
	EverydayProblems         string   `json:"everyday_problems"`
	RememberingInfo          string   `json:"remembering_info"`
	NavigationAbility        int      `json:"navigation_ability"`
	LanguageDifficulties     string   `json:"language_difficulties"`
	PhysicalLimitations      string   `json:"physical_limitations"`
	PhysicalDetails          string   `json:"physical_details,omitempty"`
	DeviceUsability          string   `json:"device_usability"`
	LeisureDevices           []string `json:"leisure_devices"`
	GamePreferences          string   `json:"game_preferences"`
	TimeSpent                int      `json:"time_spent"`
	GameplayPreference       string   `json:"gameplay_preference"`
	MultiplayerInteraction   string   `json:"multiplayer_interaction"`
	AccommodationsNeeded     string   `json:"accommodations_needed"`
	AccommodationsDetails    string   `json:"accommodations_details,omitempty"`
	VisualHearingImpairments string   `json:"visual_hearing_impairments"`
	ImpairmentsDetails       string   `json:"impairments_details,omitempty"`
	FrustratingGameMechanics string   `json:"frustrating_game_mechanics"`
	CognitiveFocusAreas      []string `json:"cognitive_focus_areas"`
	IdealGameDescription     string   `json:"ideal_game_description"`
	DesiredOutcomes          string   `json:"desired_outcomes"`
	PreviousExperience       string   `json:"previous_experience"`
	GamesTried               string   `json:"games_tried,omitempty"`
	EnjoyedAspects           string   `json:"enjoyed_aspects,omitempty"`
	Difficulties             string   `json:"difficulties,omitempty"`
	GamePreferencesType      string   `json:"game_preferences_type"`
	GameValues               string   `json:"game_values"`
	ProgressTracking         string   `json:"progress_tracking"`
}

// RegisterRequest creates a user account together with its preference
// profile in one call.
type RegisterRequest struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	FullName         string `json:"full_name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	ContactInfo      string `json:"contact_info"`
	PrimaryCaregiver string `json:"primary_caregiver,omitempty"`

	Profile ProfilePayload `json:"profile"`
}

// RegisterResponse confirms the created account.
type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse carries the minted session token.
type SessionResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"` // always "Bearer"
	ExpiresIn int    `json:"expires_in"` // seconds
}

// ProfileResponse is the joined user + preference record.
type ProfileResponse struct {
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	FullName         string `json:"full_name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	ContactInfo      string `json:"contact_info"`
	PrimaryCaregiver string `json:"primary_caregiver,omitempty"`
	CreatedAt        string `json:"created_at"`

	Profile ProfilePayload `json:"profile"`
}

// UpdateProfileRequest applies a partial set of preference-field updates.
// Keys are column names from ProfilePayload; unknown keys are rejected.
type UpdateProfileRequest struct {
	Fields map[string]any `json:"fields"`
}

// GameCard is one catalog entry as rendered to the user.
type GameCard struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Difficulty     string   `json:"difficulty"`
	Platforms      []string `json:"platforms"`
	CognitiveFocus string   `json:"cognitive_focus"`
	Description    string   `json:"description"`
	MinAge         int      `json:"min_age,omitempty"`
	MaxAge         int      `json:"max_age,omitempty"`
}

// RecommendationsResponse is the filtered catalog, in catalog order. Games
// may be empty; that is a valid answer, not an error.
type RecommendationsResponse struct {
	Games []GameCard `json:"games"`
}

// TipResponse is the tip-of-the-day payload.
type TipResponse struct {
	Tip string `json:"tip"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/krishnaagrawal0402/gamehelper/internal/domain"
	"github.com/krishnaagrawal0402/gamehelper/internal/store"
	"github.com/krishnaagrawal0402/gamehelper/pkg/cryptox"
	"github.com/krishnaagrawal0402/gamehelper/pkg/idx"
	"github.com/krishnaagrawal0402/gamehelper/pkg/jwtx"
	"github.com/krishnaagrawal0402/gamehelper/pkg/slogx"

	"github.com/go-playground/validator/v10"
)

// RegisterInput is the full signup payload: the account fields plus the
// intake preference answers, created atomically. The nested preference
// struct carries its own validation tags; a signup missing required intake
// answers fails the same way as a bad account field.
type RegisterInput struct {
	Username         string `validate:"required,min=3,max=32,alphanum"`
	Password         string `validate:"required,min=8,max=128"`
	FullName         string `validate:"required,max=128"`
	Age              int    `validate:"required,gte=5,lte=120"`
	Gender           string `validate:"required"`
	ContactInfo      string `validate:"required,max=256"`
	PrimaryCaregiver string `validate:"max=128"`

	Preferences domain.PreferenceProfile
}

// AccountService handles signup and login.
type AccountService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration

	validate *validator.Validate

	// dummyHash is verified against on login for unknown usernames, so the
	// response time does not reveal whether the username exists.
	dummyHash string
}

func NewAccountService(st store.Store, signer jwtx.Signer, issuer string, sessionTTL time.Duration) (*AccountService, error) {
	if sessionTTL <= 0 {
		sessionTTL = jwtx.DefaultSessionTTL
	}

	dummyHash, err := cryptox.HashPassword(idx.New().String())
	if err != nil {
		return nil, err
	}

	return &AccountService{
		Store:      st,
		Signer:     signer,
		Issuer:     issuer,
		SessionTTL: sessionTTL,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		dummyHash:  dummyHash,
	}, nil
}

// Register creates the user and their preference profile in one transaction.
// Either both rows land or neither does.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the account fields.
	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field())] = validationMessage(fe)
			}
			return domain.User{}, &ValidationError{Fields: fields}
		}
		return domain.User{}, err
	}

	// 2. Hash the password before touching the database.
	hash, err := cryptox.HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:               idx.New().String(),
		Username:         input.Username,
		PasswordHash:     hash,
		FullName:         input.FullName,
		Age:              input.Age,
		Gender:           input.Gender,
		ContactInfo:      input.ContactInfo,
		PrimaryCaregiver: input.PrimaryCaregiver,
	}

	prefs := input.Preferences
	prefs.UserID = user.ID

	// 3. Create both rows atomically.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.Preferences().Create(ctx, prefs)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("signup with taken username",
				slog.String("username", input.Username),
			)
			return domain.User{}, ErrDuplicateUsername
		}
		log.Error("failed to create account", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("account created",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}

// Verify reports whether the credentials match a stored account. Unknown
// usernames and wrong passwords are both a plain false, never distinguished.
func (s *AccountService) Verify(ctx context.Context, username, password string) (bool, error) {
	_, err := s.authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// authenticate resolves the username and checks the password, costing the
// same whether or not the account exists.
func (s *AccountService) authenticate(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn the same hashing work as a real check.
			_ = cryptox.VerifyPassword(password, s.dummyHash)
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("failed login attempt",
				slog.String("username", username),
			)
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return domain.User{}, err
	}

	return user, nil
}

// Login verifies credentials and mints a session token. Unknown usernames
// and wrong passwords both come back as ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, username, password string) (token string, expiresIn time.Duration, err error) {
	log := slogx.FromContext(ctx)

	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return "", 0, err
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Username, s.Issuer, s.SessionTTL, time.Now().UTC())
	token, err = s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return "", 0, err
	}

	log.Info("session started",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return token, s.SessionTTL, nil
}

// validationMessage renders a human-readable message for a failed rule.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " entries"
		}
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "alphanum":
		return "must contain only letters and digits"
	default:
		return "is invalid"
	}
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/krishnaagrawal0402/gamehelper/internal/domain"
	"github.com/krishnaagrawal0402/gamehelper/internal/store"
	"github.com/krishnaagrawal0402/gamehelper/pkg/slogx"
)

// ProfileService reads and updates the joined user + preference record.
// Operations are keyed by username, the identity the session layer supplies.
type ProfileService struct {
	Store store.Store
}

// GetProfile returns the user row and their preference profile.
func (s *ProfileService) GetProfile(ctx context.Context, username string) (domain.UserProfile, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.UserProfile{}, ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	prefs, err := s.Store.Preferences().GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// A user without a preference row should not happen (signup is
			// atomic), but surface it the same way as a missing user.
			return domain.UserProfile{}, ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	return domain.UserProfile{User: user, Preferences: prefs}, nil
}

// UpdateProfile applies a partial set of preference-field updates. The
// username is resolved before any write; field names outside the whitelist
// reject the whole request, nothing is applied partially.
func (s *ProfileService) UpdateProfile(ctx context.Context, username string, fields map[string]any) error {
	log := slogx.FromContext(ctx)

	if len(fields) == 0 {
		return &ValidationError{Fields: map[string]string{
			"fields": "must contain at least one update",
		}}
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.Store.Preferences().UpdateFields(ctx, user.ID, fields); err != nil {
		switch {
		case errors.Is(err, store.ErrUnknownField):
			log.Warn("profile update with unknown field",
				slog.String("username", username),
				slog.Any("error", err),
			)
			return ErrUnknownField
		case errors.Is(err, store.ErrNotFound):
			return ErrUserNotFound
		default:
			log.Error("failed to update profile", slog.Any("error", err))
			return err
		}
	}

	log.Info("profile updated",
		slog.String("username", username),
		slog.Int("field_count", len(fields)),
	)
	return nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/krishnaagrawal0402/gamehelper/internal/domain"
	"github.com/krishnaagrawal0402/gamehelper/internal/store"
)

// Filters are the optional narrowing criteria for a recommendation query.
// Zero values mean "don't filter on this".
type Filters struct {
	Difficulty     string
	Platform       string
	CognitiveFocus string

	// MatchDevices applies the user's stored preferred-device list as a
	// platform filter. An explicit Platform takes precedence.
	MatchDevices bool
}

// RecommendService narrows the game catalog against filter criteria.
type RecommendService struct {
	Store store.Store
}

// Recommend returns the catalog entries matching every supplied filter, in
// catalog order. An empty result is a valid answer.
//
// Platform matching is exact set membership: a game tagged "Web,Mobile"
// matches "Web" but never "We".
func (s *RecommendService) Recommend(ctx context.Context, username string, f Filters) ([]domain.Game, error) {
	games, err := s.Store.Games().ListGames(ctx)
	if err != nil {
		return nil, err
	}

	var devicePlatforms []string
	if f.MatchDevices && f.Platform == "" {
		user, err := s.Store.Users().GetUserByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		prefs, err := s.Store.Preferences().GetByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		devicePlatforms = prefs.LeisureDevices
	}

	out := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if f.Difficulty != "" && g.Difficulty != f.Difficulty {
			continue
		}
		if f.CognitiveFocus != "" && g.CognitiveFocus != f.CognitiveFocus {
			continue
		}
		if f.Platform != "" && !g.SupportsPlatform(f.Platform) {
			continue
		}
		// An empty stored device list applies no platform narrowing.
		if len(devicePlatforms) > 0 && !g.SupportsAnyPlatform(devicePlatforms) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// ListGames returns the full catalog.
func (s *RecommendService) ListGames(ctx context.Context) ([]domain.Game, error) {
	return s.Store.Games().ListGames(ctx)
}

// gamingTips rotate daily on the public tip endpoint.
var gamingTips = []string{
	"Take regular breaks to avoid mental fatigue.",
	"Start with easier difficulty levels and progress gradually.",
	"Play games that match your cognitive goals.",
	"Ensure proper lighting to reduce eye strain.",
	"Stay hydrated during gaming sessions.",
	"Use accessibility settings whenever a game offers them.",
	"Short daily sessions beat occasional marathons.",
}

// TipOfDay returns the tip for the given date. The rotation is stable within
// a calendar day.
func (s *RecommendService) TipOfDay(now time.Time) string {
	return gamingTips[now.YearDay()%len(gamingTips)]
}

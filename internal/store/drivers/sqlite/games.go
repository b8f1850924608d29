package sqlite

import (
	"context"

	"github.com/krishnaagrawal0402/gamehelper/internal/domain"
)

type gamesRepo struct {
	db dbtx
}

func (r *gamesRepo) ListGames(ctx context.Context) ([]domain.Game, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, difficulty_level, platforms, cognitive_focus, description, min_age, max_age
		FROM games
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var games []domain.Game
	for rows.Next() {
		var (
			g            domain.Game
			rawPlatforms string
		)
		if err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.Difficulty,
			&rawPlatforms,
			&g.CognitiveFocus,
			&g.Description,
			&g.MinAge,
			&g.MaxAge,
		); err != nil {
			return nil, err
		}
		g.Platforms = splitPlatforms(rawPlatforms)
		games = append(games, g)
	}
	return games, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/elimu-ai/Dooz/internal/entity"
)

type MatchRepository interface {
	Save(ctx context.Context, match *entity.Match) error
	Recent(ctx context.Context, limit int) ([]*entity.Match, error)
}

type dbMatch struct {
	db *sql.DB
}

func NewMatchRepository(db *sql.DB) MatchRepository {
	return &dbMatch{
		db: db,
	}
}

// Save - archives one finished game; saving the same game twice keeps the
// first record.
func (that *dbMatch) Save(ctx context.Context, match *entity.Match) error {
	query := `INSERT INTO matches (id, mode, difficulty, board_size, win_length, winner, moves, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`

	_, err := that.db.ExecContext(ctx, query,
		match.ID,
		match.Mode,
		match.Difficulty,
		match.BoardSize,
		match.WinLength,
		match.Winner,
		match.Moves,
		match.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}

	return nil
}

// Recent - the latest matches, newest first.
func (that *dbMatch) Recent(ctx context.Context, limit int) ([]*entity.Match, error) {
	query := `SELECT id, mode, difficulty, board_size, win_length, winner, moves, finished_at
		FROM matches
		ORDER BY finished_at DESC
		LIMIT ?`

	rows, err := that.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []*entity.Match
	for rows.Next() {
		match := &entity.Match{}
		if err = rows.Scan(
			&match.ID,
			&match.Mode,
			&match.Difficulty,
			&match.BoardSize,
			&match.WinLength,
			&match.Winner,
			&match.Moves,
			&match.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}

		matches = append(matches, match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	return matches, nil
}

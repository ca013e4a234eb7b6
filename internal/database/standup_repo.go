package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/mattn/go-sqlite3"
)

type standupRepo struct {
	db dbConn
}

func newStandupRepo(db dbConn) contract.StandupRepo {
	return &standupRepo{db: db}
}

// Create inserts the record with its roster and responses. Callers should
// run it inside WithTransaction when the roster is not empty.
func (r *standupRepo) Create(ctx context.Context, standup *entity.Standup) error {
	query := `
		INSERT INTO standups (id, channel_id, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, standup.ID, standup.ChannelID, now, now)
	if err != nil {
		return fmt.Errorf("failed to create standup: %w", err)
	}

	for i, memberID := range standup.Members {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO standup_members (standup_id, member_id, position) VALUES (?, ?, ?)`,
			standup.ID, memberID, i+1,
		)
		if err != nil {
			return fmt.Errorf("failed to create standup member: %w", mapConstraintErr(err))
		}
	}

	for memberID, response := range standup.Responses {
		if err := r.SetResponse(ctx, standup.ID, memberID, response); err != nil {
			return err
		}
	}

	standup.CreatedAt = now
	standup.UpdatedAt = now
	return nil
}

func (r *standupRepo) GetByID(ctx context.Context, id string) (*entity.Standup, error) {
	standup := &entity.Standup{}
	query := `
		SELECT id, channel_id, created_at, updated_at
		FROM standups
		WHERE id = ?
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&standup.ID,
		&standup.ChannelID,
		&standup.CreatedAt,
		&standup.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get standup: %w", err)
	}

	standup.Members, err = r.getMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	standup.Responses, err = r.getResponses(ctx, id)
	if err != nil {
		return nil, err
	}

	return standup, nil
}

func (r *standupRepo) ListIDs(ctx context.Context) ([]string, error) {
	return r.queryIDs(ctx, `SELECT id FROM standups ORDER BY created_at ASC, id ASC`)
}

func (r *standupRepo) FindByMember(ctx context.Context, memberID string) ([]*entity.Standup, error) {
	ids, err := r.queryIDs(ctx, `
		SELECT standup_id FROM standup_members
		WHERE member_id = ?
		ORDER BY standup_id ASC
	`, memberID)
	if err != nil {
		return nil, err
	}
	return r.getMany(ctx, ids)
}

func (r *standupRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM standups WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete standup: %w", err)
	}

	return nil
}

func (r *standupRepo) AddMember(ctx context.Context, id, memberID string) error {
	query := `
		INSERT INTO standup_members (standup_id, member_id, position)
		SELECT ?, ?, COALESCE(MAX(position), 0) + 1
		FROM standup_members
		WHERE standup_id = ?
	`

	_, err := r.db.ExecContext(ctx, query, id, memberID, id)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", mapConstraintErr(err))
	}

	return r.touch(ctx, id)
}

func (r *standupRepo) RemoveMember(ctx context.Context, id, memberID string) (bool, error) {
	query := `DELETE FROM standup_members WHERE standup_id = ? AND member_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, memberID)
	if err != nil {
		return false, fmt.Errorf("failed to remove member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return false, nil
	}

	return true, r.touch(ctx, id)
}

func (r *standupRepo) SetResponse(ctx context.Context, id, memberID, response string) error {
	query := `
		INSERT INTO standup_responses (standup_id, member_id, response, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (standup_id, member_id) DO UPDATE SET
			response = excluded.response,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, id, memberID, response, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set response: %w", mapConstraintErr(err))
	}

	return nil
}

func (r *standupRepo) DeleteResponse(ctx context.Context, id, memberID string) error {
	query := `DELETE FROM standup_responses WHERE standup_id = ? AND member_id = ?`

	_, err := r.db.ExecContext(ctx, query, id, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete response: %w", err)
	}

	return nil
}

func (r *standupRepo) ClearResponses(ctx context.Context, id string) error {
	query := `DELETE FROM standup_responses WHERE standup_id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to clear responses: %w", err)
	}

	return nil
}

func (r *standupRepo) touch(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE standups SET updated_at = ? WHERE id = ?`, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update standup: %w", err)
	}
	return nil
}

func (r *standupRepo) getMembers(ctx context.Context, id string) ([]string, error) {
	members, err := r.queryIDs(ctx, `
		SELECT member_id FROM standup_members
		WHERE standup_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	if members == nil {
		members = []string{}
	}
	return members, nil
}

func (r *standupRepo) getResponses(ctx context.Context, id string) (map[string]string, error) {
	query := `SELECT member_id, response FROM standup_responses WHERE standup_id = ?`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get responses: %w", err)
	}
	defer rows.Close()

	responses := make(map[string]string)
	for rows.Next() {
		var memberID, response string
		if err := rows.Scan(&memberID, &response); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses[memberID] = response
	}

	return responses, rows.Err()
}

// queryIDs reads a single string column. Rows are fully drained before
// returning so callers can issue follow-up queries on the same connection.
func (r *standupRepo) queryIDs(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *standupRepo) getMany(ctx context.Context, ids []string) ([]*entity.Standup, error) {
	standups := make([]*entity.Standup, 0, len(ids))
	for _, id := range ids {
		standup, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if standup != nil {
			standups = append(standups, standup)
		}
	}
	return standups, nil
}

func mapConstraintErr(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return domain.ErrMemberExists
	case sqlite3.ErrConstraintForeignKey:
		return domain.ErrStandupNotFound
	}
	return err
}

package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/leadline-crm/leadline/internal/common"
	"github.com/leadline-crm/leadline/internal/model"
)

// SaveLeads replaces the lead snapshot with the given collection,
// preserving fetch order.
func (s *Store) SaveLeads(ctx context.Context, leads []model.Lead) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM leads`); err != nil {
		return fmt.Errorf("failed to clear lead snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO leads
		(id, name, mobile, email, status, branch, lead_source, course, specialization, handled_by, created_at, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i, lead := range leads {
		if _, err := stmt.ExecContext(ctx,
			lead.ID, lead.Name, lead.Mobile, lead.Email, string(lead.Status),
			lead.Branch, lead.LeadSource, lead.Course, lead.Specialization,
			lead.HandledBy, lead.CreatedAt, i); err != nil {
			return fmt.Errorf("failed to insert lead %s: %w", lead.ID, err)
		}
	}

	if err := s.touch(ctx, tx, CollectionLeads); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit lead snapshot: %w", err)
	}

	return nil
}

// LoadLeads returns the cached lead snapshot in fetch order, along with
// when it was taken. Returns ErrNoSnapshot when nothing has been cached.
func (s *Store) LoadLeads(ctx context.Context) ([]model.Lead, time.Time, error) {
	fetchedAt, err := s.fetchedAt(ctx, CollectionLeads)
	if err != nil {
		return nil, time.Time{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT
		id, name, mobile, email, status, branch, lead_source, course, specialization, handled_by, created_at
		FROM leads ORDER BY position`)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query lead snapshot: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var leads []model.Lead
	for rows.Next() {
		var lead model.Lead
		var status string
		var createdAt sql.NullTime
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Mobile, &lead.Email, &status,
			&lead.Branch, &lead.LeadSource, &lead.Course, &lead.Specialization,
			&lead.HandledBy, &createdAt); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to scan lead: %w", err)
		}
		lead.Status = model.Status(status)
		if createdAt.Valid {
			lead.CreatedAt = createdAt.Time
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read lead snapshot: %w", err)
	}

	return leads, fetchedAt, nil
}

// SaveFollowUps replaces the follow-up snapshot.
func (s *Store) SaveFollowUps(ctx context.Context, followUps []model.FollowUp) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM followups`); err != nil {
		return fmt.Errorf("failed to clear follow-up snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO followups
		(id, lead_id, lead_name, lead_mobile, date, time, followed_by, feedback, status, next_date, next_time, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i, fu := range followUps {
		if _, err := stmt.ExecContext(ctx,
			fu.ID, fu.LeadID, fu.Lead.Name, fu.Lead.Mobile, fu.Date, fu.Time,
			fu.FollowedBy, fu.Feedback, string(fu.Status),
			fu.NextFollowUpDate, fu.NextFollowUpTime, i); err != nil {
			return fmt.Errorf("failed to insert follow-up %s: %w", fu.ID, err)
		}
	}

	if err := s.touch(ctx, tx, CollectionFollowUps); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit follow-up snapshot: %w", err)
	}

	return nil
}

// LoadFollowUps returns the cached follow-up snapshot in fetch order.
func (s *Store) LoadFollowUps(ctx context.Context) ([]model.FollowUp, time.Time, error) {
	fetchedAt, err := s.fetchedAt(ctx, CollectionFollowUps)
	if err != nil {
		return nil, time.Time{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT
		id, lead_id, lead_name, lead_mobile, date, time, followed_by, feedback, status, next_date, next_time
		FROM followups ORDER BY position`)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query follow-up snapshot: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var followUps []model.FollowUp
	for rows.Next() {
		var fu model.FollowUp
		var status string
		if err := rows.Scan(&fu.ID, &fu.LeadID, &fu.Lead.Name, &fu.Lead.Mobile,
			&fu.Date, &fu.Time, &fu.FollowedBy, &fu.Feedback, &status,
			&fu.NextFollowUpDate, &fu.NextFollowUpTime); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to scan follow-up: %w", err)
		}
		fu.Status = model.Status(status)
		fu.Lead.ID = fu.LeadID
		followUps = append(followUps, fu)
	}

	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read follow-up snapshot: %w", err)
	}

	return followUps, fetchedAt, nil
}

// DeleteLead drops one lead from the snapshot after a confirmed backend
// delete, keeping the cache consistent with the store's local patch.
func (s *Store) DeleteLead(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete cached lead: %w", err)
	}
	return nil
}

func (s *Store) touch(ctx context.Context, tx *sql.Tx, collection string) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta (collection, fetched_at) VALUES (?, ?)
		 ON CONFLICT(collection) DO UPDATE SET fetched_at = excluded.fetched_at`,
		collection, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update snapshot metadata: %w", err)
	}
	return nil
}

func (s *Store) fetchedAt(ctx context.Context, collection string) (time.Time, error) {
	var fetchedAt time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT fetched_at FROM snapshot_meta WHERE collection = ?`, collection).Scan(&fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, common.ErrNoSnapshot
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read snapshot metadata: %w", err)
	}
	return fetchedAt, nil
}

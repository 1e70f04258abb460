package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nick0a/founderbleed-sub001/internal/common"
	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// SaveAudit stores one complete audit run atomically.
func (s *SQLiteStorage) SaveAudit(ctx context.Context, record *AuditRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAuditRecord(record); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	m := &record.Metrics
	_, err = tx.ExecContext(ctx, `
		INSERT INTO audits (
			id, period_start, period_end, audit_days,
			total_hours, hours_unique, hours_founder, hours_senior, hours_junior, hours_ea,
			founder_cost, delegated_cost, arbitrage,
			efficiency_score, reclaimable_hours, reclaimable_hours_weekly,
			planning_score, planning_assessment
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.PeriodStart, record.PeriodEnd, record.AuditDays,
		m.TotalHours, m.HoursByTier.Unique, m.HoursByTier.Founder,
		m.HoursByTier.Senior, m.HoursByTier.Junior, m.HoursByTier.EA,
		nullableFloat(m.FounderCostTotal), m.DelegatedCostTotal, nullableFloat(m.Arbitrage),
		m.EfficiencyScore, m.ReclaimableHours, m.ReclaimableHoursWeekly,
		record.Planning.Score, record.Planning.Assessment)
	if err != nil {
		return fmt.Errorf("failed to insert audit: %w", err)
	}

	for i := range record.Events {
		if err := insertEvent(ctx, tx, record.ID, &record.Events[i]); err != nil {
			return err
		}
	}

	for position, role := range record.Roles {
		if err := insertRole(ctx, tx, record.ID, position, &role); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit audit: %w", err)
	}
	return nil
}

func insertEvent(ctx context.Context, tx *sql.Tx, auditID string, ev *model.ClassifiedEvent) error {
	var tier, finalTier, area, vertical, confidence, category any
	if ev.Classification != nil {
		tier = string(ev.Classification.SuggestedTier)
		area = ev.Classification.BusinessArea
		vertical = string(ev.Classification.Vertical)
		confidence = string(ev.Classification.Confidence)
		category = string(ev.Classification.EventCategory)
	}
	if ev.FinalTier != "" {
		finalTier = string(ev.FinalTier)
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO audit_events (
			audit_id, external_event_id, title, description, start_time, end_time,
			is_all_day, attendees_count, is_recurring, duration_minutes,
			is_leave, leave_method, leave_confidence,
			tier, final_tier, business_area, vertical, confidence, event_category,
			planning_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		auditID, ev.Event.ExternalEventID, ev.Event.Title, ev.Event.Description,
		ev.Event.Start, ev.Event.End,
		ev.Event.IsAllDay, ev.Event.AttendeesCount, ev.Event.IsRecurring, ev.DurationMinutes,
		ev.Leave.IsLeave, ev.Leave.Method, string(ev.Leave.Confidence),
		tier, finalTier, area, vertical, confidence, category,
		ev.PlanningScore)
	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}
	return nil
}

func insertRole(ctx context.Context, tx *sql.Tx, auditID string, position int, role *model.RoleRecommendation) error {
	var vertical any
	if role.Vertical != nil {
		vertical = string(*role.Vertical)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO audit_roles (
			audit_id, position, role_title, role_tier, vertical, business_area,
			hours_per_week, cost_weekly, cost_monthly, cost_annual, job_description
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		auditID, position, role.RoleTitle, string(role.RoleTier), vertical, role.BusinessArea,
		role.HoursPerWeek, role.CostWeekly, role.CostMonthly, role.CostAnnual, role.JobDescription)
	if err != nil {
		return fmt.Errorf("failed to insert audit role: %w", err)
	}

	roleID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read role id: %w", err)
	}

	for _, task := range role.Tasks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO audit_role_tasks (role_id, title, hours_per_week)
			VALUES (?, ?, ?)`,
			roleID, task.Title, task.HoursPerWeek); err != nil {
			return fmt.Errorf("failed to insert role task: %w", err)
		}
	}
	return nil
}

// GetAudit loads one stored audit with its events and roles.
func (s *SQLiteStorage) GetAudit(ctx context.Context, id string) (*AuditRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	record := &AuditRecord{}
	var founderCost, arbitrage sql.NullFloat64

	err := s.db.QueryRowContext(ctx, `
		SELECT id, period_start, period_end, audit_days,
			total_hours, hours_unique, hours_founder, hours_senior, hours_junior, hours_ea,
			founder_cost, delegated_cost, arbitrage,
			efficiency_score, reclaimable_hours, reclaimable_hours_weekly,
			planning_score, planning_assessment, created_at
		FROM audits WHERE id = ?`, id).Scan(
		&record.ID, &record.PeriodStart, &record.PeriodEnd, &record.AuditDays,
		&record.Metrics.TotalHours,
		&record.Metrics.HoursByTier.Unique, &record.Metrics.HoursByTier.Founder,
		&record.Metrics.HoursByTier.Senior, &record.Metrics.HoursByTier.Junior,
		&record.Metrics.HoursByTier.EA,
		&founderCost, &record.Metrics.DelegatedCostTotal, &arbitrage,
		&record.Metrics.EfficiencyScore,
		&record.Metrics.ReclaimableHours, &record.Metrics.ReclaimableHoursWeekly,
		&record.Planning.Score, &record.Planning.Assessment, &record.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("audit %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load audit: %w", err)
	}

	if founderCost.Valid {
		record.Metrics.FounderCostTotal = &founderCost.Float64
	}
	if arbitrage.Valid {
		record.Metrics.Arbitrage = &arbitrage.Float64
	}

	if record.Events, err = s.loadEvents(ctx, id); err != nil {
		return nil, err
	}
	if record.Roles, err = s.loadRoles(ctx, id); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *SQLiteStorage) loadEvents(ctx context.Context, auditID string) ([]model.ClassifiedEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT external_event_id, title, description, start_time, end_time,
			is_all_day, attendees_count, is_recurring, duration_minutes,
			is_leave, leave_method, leave_confidence,
			tier, final_tier, business_area, vertical, confidence, event_category,
			planning_score
		FROM audit_events WHERE audit_id = ? ORDER BY id`, auditID)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []model.ClassifiedEvent
	for rows.Next() {
		var ev model.ClassifiedEvent
		var tier, finalTier, area, vertical, confidence, category sql.NullString
		var leaveConfidence string

		if err := rows.Scan(
			&ev.Event.ExternalEventID, &ev.Event.Title, &ev.Event.Description,
			&ev.Event.Start, &ev.Event.End,
			&ev.Event.IsAllDay, &ev.Event.AttendeesCount, &ev.Event.IsRecurring,
			&ev.DurationMinutes,
			&ev.Leave.IsLeave, &ev.Leave.Method, &leaveConfidence,
			&tier, &finalTier, &area, &vertical, &confidence, &category,
			&ev.PlanningScore); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}

		ev.Leave.Confidence = model.Confidence(leaveConfidence)
		if tier.Valid {
			ev.Classification = &model.ClassificationResult{
				SuggestedTier: model.Tier(tier.String),
				BusinessArea:  area.String,
				Vertical:      model.Vertical(vertical.String),
				Confidence:    model.Confidence(confidence.String),
				EventCategory: model.EventCategory(category.String),
			}
		}
		if finalTier.Valid {
			ev.FinalTier = model.Tier(finalTier.String)
		}

		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *SQLiteStorage) loadRoles(ctx context.Context, auditID string) ([]model.RoleRecommendation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, role_title, role_tier, vertical, business_area,
			hours_per_week, cost_weekly, cost_monthly, cost_annual, job_description
		FROM audit_roles WHERE audit_id = ? ORDER BY position`, auditID)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit roles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var roles []model.RoleRecommendation
	var roleIDs []int64
	for rows.Next() {
		var role model.RoleRecommendation
		var roleID int64
		var vertical sql.NullString

		if err := rows.Scan(&roleID, &role.RoleTitle, (*string)(&role.RoleTier), &vertical,
			&role.BusinessArea, &role.HoursPerWeek,
			&role.CostWeekly, &role.CostMonthly, &role.CostAnnual,
			&role.JobDescription); err != nil {
			return nil, fmt.Errorf("failed to scan audit role: %w", err)
		}

		if vertical.Valid {
			v := model.Vertical(vertical.String)
			role.Vertical = &v
		}

		roles = append(roles, role)
		roleIDs = append(roleIDs, roleID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, roleID := range roleIDs {
		tasks, err := s.loadTasks(ctx, roleID)
		if err != nil {
			return nil, err
		}
		roles[i].Tasks = tasks
	}
	return roles, nil
}

func (s *SQLiteStorage) loadTasks(ctx context.Context, roleID int64) ([]model.RoleTask, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, hours_per_week FROM audit_role_tasks
		WHERE role_id = ? ORDER BY hours_per_week DESC, title`, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load role tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []model.RoleTask
	for rows.Next() {
		var task model.RoleTask
		if err := rows.Scan(&task.Title, &task.HoursPerWeek); err != nil {
			return nil, fmt.Errorf("failed to scan role task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// ListAudits returns summaries of stored audits, newest first.
func (s *SQLiteStorage) ListAudits(ctx context.Context, limit int) ([]AuditSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.period_start, a.period_end, a.created_at,
			a.total_hours, a.efficiency_score, a.planning_score,
			(SELECT COUNT(*) FROM audit_roles r WHERE r.audit_id = a.id)
		FROM audits a
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []AuditSummary
	for rows.Next() {
		var s AuditSummary
		if err := rows.Scan(&s.ID, &s.PeriodStart, &s.PeriodEnd, &s.CreatedAt,
			&s.TotalHours, &s.EfficiencyScore, &s.PlanningScore, &s.RoleCount); err != nil {
			return nil, fmt.Errorf("failed to scan audit summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetLatestAudit loads the most recently created audit.
func (s *SQLiteStorage) GetLatestAudit(ctx context.Context) (*AuditRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM audits ORDER BY created_at DESC, id DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest audit: %w", err)
	}

	return s.GetAudit(ctx, id)
}

// nullableFloat converts an optional money value for binding.
func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nick0a/founderbleed-sub001/internal/model"
	"github.com/nick0a/founderbleed-sub001/internal/storage"
)

// RenderAudit formats a stored audit run for terminal display.
func RenderAudit(record *storage.AuditRecord) string {
	var sections []string

	header := FormatTitle(fmt.Sprintf("Time Audit %s", record.ID))
	period := SubtitleStyle.Render(fmt.Sprintf("%s to %s (%d days, %d events)",
		record.PeriodStart.Format("2006-01-02"),
		record.PeriodEnd.Format("2006-01-02"),
		record.AuditDays,
		len(record.Events)))
	sections = append(sections, header, period)

	sections = append(sections, RenderBox(ChartIcon+" Metrics", renderMetrics(&record.Metrics)))
	sections = append(sections, RenderBox("Planning", renderPlanning(&record.Planning)))

	if len(record.Roles) > 0 {
		sections = append(sections, RenderBox(MoneyIcon+" Recommended Roles", renderRoles(record.Roles)))
	} else {
		sections = append(sections, SubtleStyle.Render("No roles recommended for this period."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderMetrics(m *model.AuditMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total hours:        %.1f\n", m.TotalHours)
	fmt.Fprintf(&b, "  unique %.1f | founder %.1f | senior %.1f | junior %.1f | ea %.1f\n",
		m.HoursByTier.Unique, m.HoursByTier.Founder,
		m.HoursByTier.Senior, m.HoursByTier.Junior, m.HoursByTier.EA)
	fmt.Fprintf(&b, "Founder cost:       %s\n", money(m.FounderCostTotal))
	fmt.Fprintf(&b, "Delegated cost:     $%.2f\n", m.DelegatedCostTotal)
	fmt.Fprintf(&b, "Arbitrage:          %s\n", money(m.Arbitrage))
	fmt.Fprintf(&b, "Efficiency score:   %d/100\n", m.EfficiencyScore)
	fmt.Fprintf(&b, "Reclaimable hours:  %.1f (%.1f per week)", m.ReclaimableHours, m.ReclaimableHoursWeekly)

	return b.String()
}

func renderPlanning(p *model.PlanningScoreResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Score: %d/100\n\n", p.Score)
	b.WriteString(p.Assessment)

	return b.String()
}

func renderRoles(roles []model.RoleRecommendation) string {
	var lines []string
	for i, role := range roles {
		lines = append(lines, BoldStyle.Render(fmt.Sprintf("%d. %s", i+1, role.RoleTitle)))
		lines = append(lines, fmt.Sprintf("   %s, %d h/week", role.BusinessArea, role.HoursPerWeek))
		lines = append(lines, fmt.Sprintf("   $%.2f/week | $%.2f/month | $%.2f/year",
			role.CostWeekly, role.CostMonthly, role.CostAnnual))
		for _, task := range role.Tasks {
			lines = append(lines, SubtleStyle.Render(fmt.Sprintf("   - %s (%.1f h/week)", task.Title, task.HoursPerWeek)))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderAuditList formats stored audit summaries as a table, newest first.
func RenderAuditList(summaries []storage.AuditSummary) string {
	if len(summaries) == 0 {
		return SubtleStyle.Render("No audits stored yet. Run 'bleed audit' first.")
	}

	header := TableHeaderStyle.Render(fmt.Sprintf("%-36s  %-10s  %-10s  %8s  %6s  %6s  %5s",
		"ID", "FROM", "TO", "HOURS", "EFF", "PLAN", "ROLES"))

	rows := []string{header}
	for _, s := range summaries {
		rows = append(rows, TableCellStyle.Render(fmt.Sprintf("%-36s  %-10s  %-10s  %8.1f  %6d  %6d  %5d",
			s.ID,
			s.PeriodStart.Format("2006-01-02"),
			s.PeriodEnd.Format("2006-01-02"),
			s.TotalHours, s.EfficiencyScore, s.PlanningScore, s.RoleCount)))
	}

	return strings.Join(rows, "\n")
}

func money(v *float64) string {
	if v == nil {
		return "n/a (no salary configured)"
	}
	return fmt.Sprintf("$%.2f", *v)
}

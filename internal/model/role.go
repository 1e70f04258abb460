package model

import "fmt"

// Bounds on a recommended role's weekly commitment.
const (
	MinRoleHoursPerWeek = 8
	MaxRoleHoursPerWeek = 40
)

// MaxRecommendedRoles caps how many roles one audit may recommend.
const MaxRecommendedRoles = 5

// MaxRoleTasks caps how many example tasks a role carries.
const MaxRoleTasks = 10

// RoleTask is one recurring piece of work folded into a recommended role.
type RoleTask struct {
	Title        string
	HoursPerWeek float64
}

// RoleRecommendation describes one concrete hire that would absorb a cluster
// of delegable calendar time. Vertical is nil for executive assistants.
type RoleRecommendation struct {
	Vertical       *Vertical
	RoleTitle      string
	BusinessArea   string
	JobDescription string
	RoleTier       Tier
	Tasks          []RoleTask
	HoursPerWeek   int
	CostWeekly     float64
	CostMonthly    float64
	CostAnnual     float64
}

// Validate checks the structural invariants every emitted role must hold.
func (r *RoleRecommendation) Validate() error {
	if r.RoleTitle == "" {
		return fmt.Errorf("role title is required")
	}
	if !r.RoleTier.IsValid() {
		return fmt.Errorf("invalid role tier %q", r.RoleTier)
	}
	if r.HoursPerWeek < MinRoleHoursPerWeek || r.HoursPerWeek > MaxRoleHoursPerWeek {
		return fmt.Errorf("hours per week must be between %d and %d, got %d",
			MinRoleHoursPerWeek, MaxRoleHoursPerWeek, r.HoursPerWeek)
	}
	if len(r.Tasks) > MaxRoleTasks {
		return fmt.Errorf("role may carry at most %d tasks, got %d", MaxRoleTasks, len(r.Tasks))
	}
	for _, cost := range []float64{r.CostWeekly, r.CostMonthly, r.CostAnnual} {
		if !IsFinite(cost) || cost < 0 {
			return fmt.Errorf("role costs must be nonnegative numbers, got %v", cost)
		}
	}
	return nil
}

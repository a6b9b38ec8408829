package projectplan

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/blueprint/generator/design"
	"github.com/c360studio/blueprint/generator/threatmodel"
)

func planFixture() Input {
	return Input{
		Features: []design.Feature{
			{ID: "F-001", Name: "Manage Accounts", Priority: design.PriorityP0},
			{ID: "F-002", Name: "Generate Reports", Priority: design.PriorityP1, DependsOn: []string{"F-001"}},
			{ID: "F-003", Name: "Export Data", Priority: design.PriorityP2},
		},
		Threats: []threatmodel.Threat{
			{ID: "T-001", Category: threatmodel.Spoofing, Name: "Identity spoofing", Component: "AuthController", Score: 9.0, Likelihood: threatmodel.LevelHigh, Impact: threatmodel.LevelCritical},
			{ID: "T-002", Category: threatmodel.DenialOfService, Name: "Request flooding", Component: "ApiController", Score: 5.5, Likelihood: threatmodel.LevelMedium, Impact: threatmodel.LevelMedium},
		},
		StartDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestPlanBreakdown(t *testing.T) {
	out := Plan(planFixture())

	// P0 and P1 features carry a verification task; P2 does not. Only the
	// critical threat becomes a remediation task.
	require.Len(t, out.Tasks, 6)

	impl := out.Tasks[0]
	assert.Equal(t, "TASK-001", impl.ID)
	assert.Equal(t, "Implement Manage Accounts", impl.Name)
	assert.Equal(t, 40, impl.Hours)
	assert.Equal(t, 10, impl.Points)
	assert.Equal(t, RoleTechLead, impl.Role)

	verify := out.Tasks[1]
	assert.Equal(t, "Verify Manage Accounts", verify.Name)
	assert.Equal(t, 10, verify.Hours)
	assert.Equal(t, []string{"TASK-001"}, verify.DependsOn)
	assert.Equal(t, RoleQA, verify.Role)

	// Feature dependencies translate to implementation-task dependencies.
	impl2 := out.Tasks[2]
	assert.Equal(t, "Implement Generate Reports", impl2.Name)
	assert.Equal(t, 24, impl2.Hours)
	assert.Equal(t, []string{"TASK-001"}, impl2.DependsOn)

	mitigate := out.Tasks[5]
	assert.Equal(t, "Mitigate Identity spoofing", mitigate.Name)
	assert.Equal(t, 16, mitigate.Hours)
	assert.Equal(t, RoleSecurity, mitigate.Role)
}

func TestPlanSprintPacking(t *testing.T) {
	in := planFixture()
	in.TeamSize = 1
	in.SprintWeeks = 1
	out := Plan(in)

	capacity := 1 * 1 * velocityPerPersonWeek
	require.NotEmpty(t, out.Sprints)

	// Input order is preserved across sprint boundaries.
	var packed []string
	for _, s := range out.Sprints {
		packed = append(packed, s.TaskIDs...)
	}
	var want []string
	for _, task := range out.Tasks {
		want = append(want, task.ID)
	}
	assert.Equal(t, want, packed)

	// Capacity is only exceeded by a single oversized task.
	for _, s := range out.Sprints {
		if s.Points > capacity {
			assert.Len(t, s.TaskIDs, 1, "sprint %d overfilled with multiple tasks", s.Number)
		}
		assert.Equal(t, capacity, s.Capacity)
	}

	// Sprints are contiguous: each starts where the previous ended.
	for i := 1; i < len(out.Sprints); i++ {
		assert.Equal(t, out.Sprints[i-1].End, out.Sprints[i].Start)
	}
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), out.Sprints[0].Start)
	assert.Equal(t, time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), out.Sprints[0].End)
}

func TestPlanCriticalPath(t *testing.T) {
	out := Plan(planFixture())

	// Longest chain by hours: implement F-001 (40h), implement F-002
	// (24h), verify F-002 (6h) = 70h, which is 9 working days plus 2
	// buffer days.
	assert.Equal(t, []string{"TASK-001", "TASK-003", "TASK-004"}, out.CriticalPath)
	assert.Equal(t, 9, out.DurationDays)
	assert.Equal(t, 2, out.BufferDays)
}

func TestPlanAllocations(t *testing.T) {
	out := Plan(planFixture())

	byRole := make(map[string]Allocation)
	for _, a := range out.Allocations {
		byRole[a.Role] = a
	}

	lead := byRole[RoleTechLead]
	assert.Equal(t, 40, lead.Hours)

	qa := byRole[RoleQA]
	assert.Equal(t, 16, qa.Hours)

	sec := byRole[RoleSecurity]
	assert.Equal(t, []string{"TASK-006"}, sec.TaskIDs)

	// One sprint of two weeks: 80 available hours per person.
	assert.Equal(t, 50, lead.Utilization)
}

func TestPlanRisks(t *testing.T) {
	out := Plan(planFixture())

	// The critical threat plus the thin schedule buffer.
	require.Len(t, out.Risks, 2)

	security := out.Risks[0]
	assert.Equal(t, "RISK-001", security.ID)
	assert.Contains(t, security.Name, "Identity spoofing")
	// probability high (3) × impact critical (4)
	assert.InDelta(t, 12.0, security.Score, 0.001)

	buffer := out.Risks[1]
	assert.Contains(t, buffer.Name, "schedule buffer")
}

func TestPlanOverAllocationRisk(t *testing.T) {
	in := planFixture()
	// A large team packs everything into few sprints, so the delivery
	// roles' assigned hours exceed the utilization ceiling.
	in.Features = []design.Feature{
		{ID: "F-001", Name: "Alpha Intake", Priority: design.PriorityP0},
		{ID: "F-002", Name: "Beta Billing", Priority: design.PriorityP0},
		{ID: "F-003", Name: "Gamma Audit", Priority: design.PriorityP0},
		{ID: "F-004", Name: "Delta Sync", Priority: design.PriorityP0},
		{ID: "F-005", Name: "Epsilon Search", Priority: design.PriorityP0},
		{ID: "F-006", Name: "Zeta Export", Priority: design.PriorityP0},
	}
	in.Threats = nil
	in.TeamSize = 10
	in.SprintWeeks = 1
	out := Plan(in)

	found := false
	for _, r := range out.Risks {
		if strings.Contains(r.Name, "Over-allocation") {
			found = true
		}
	}
	assert.True(t, found, "expected an over-allocation risk, got %+v", out.Risks)
}

func TestPlanEmptyInput(t *testing.T) {
	out := Plan(Input{})

	assert.Empty(t, out.Tasks)
	assert.Empty(t, out.Sprints)
	assert.Empty(t, out.CriticalPath)
	assert.Equal(t, 0, out.DurationDays)

	// Utilization must not divide by zero sprints.
	for _, a := range out.Allocations {
		assert.Equal(t, 0, a.Utilization)
	}

	// The only risk is the missing schedule buffer.
	require.Len(t, out.Risks, 1)
	assert.Contains(t, out.Risks[0].Name, "schedule buffer")
}

func TestPlanGantt(t *testing.T) {
	out := Plan(planFixture())

	assert.True(t, strings.HasPrefix(out.Gantt, "gantt\n"))
	assert.Contains(t, out.Gantt, "section Sprint 1")
	assert.Contains(t, out.Gantt, "task-001")
	// Mermaid syntax characters are stripped from task names.
	assert.NotContains(t, out.Gantt, "Implement Manage Accounts:")
}

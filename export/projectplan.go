package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/blueprint/generator/projectplan"
)

// ProjectPlan renders the PM phase output as one Markdown document.
func ProjectPlan(plan projectplan.Output, projectName string) string {
	var sb strings.Builder

	heading(&sb, 1, "Project Plan: "+projectName)

	heading(&sb, 2, "Overview")
	field(&sb, "Tasks", fmt.Sprintf("%d", len(plan.Tasks)))
	field(&sb, "Sprints", fmt.Sprintf("%d", len(plan.Sprints)))
	field(&sb, "Estimated Duration", fmt.Sprintf("%d working days", plan.DurationDays))
	field(&sb, "Schedule Buffer", fmt.Sprintf("%d days", plan.BufferDays))
	sb.WriteString("\n")

	heading(&sb, 2, "Task Breakdown")
	tableHeader(&sb, "ID", "Task", "Hours", "Points", "Role", "Depends On")
	for _, t := range plan.Tasks {
		tableRow(&sb, t.ID, t.Name,
			fmt.Sprintf("%d", t.Hours),
			fmt.Sprintf("%d", t.Points),
			t.Role,
			strings.Join(t.DependsOn, ", "))
	}
	sb.WriteString("\n")

	heading(&sb, 2, "Sprint Schedule")
	for _, s := range plan.Sprints {
		heading(&sb, 3, fmt.Sprintf("Sprint %d (%s → %s)",
			s.Number, s.Start.Format("2006-01-02"), s.End.Format("2006-01-02")))
		field(&sb, "Capacity", fmt.Sprintf("%d points", s.Capacity))
		field(&sb, "Planned", fmt.Sprintf("%d points", s.Points))
		field(&sb, "Tasks", strings.Join(s.TaskIDs, ", "))
		sb.WriteString("\n")
	}

	heading(&sb, 2, "Critical Path")
	if len(plan.CriticalPath) == 0 {
		sb.WriteString("No dependency chain spans more than one task.\n\n")
	} else {
		sb.WriteString(strings.Join(plan.CriticalPath, " → "))
		sb.WriteString("\n\n")
	}

	heading(&sb, 2, "Team Allocation")
	tableHeader(&sb, "Role", "Tasks", "Hours", "Utilization")
	for _, a := range plan.Allocations {
		tableRow(&sb, a.Role,
			fmt.Sprintf("%d", len(a.TaskIDs)),
			fmt.Sprintf("%d", a.Hours),
			percent(a.Utilization))
	}
	sb.WriteString("\n")

	if plan.Gantt != "" {
		heading(&sb, 2, "Timeline")
		codeBlock(&sb, "mermaid", plan.Gantt)
	}

	return sb.String()
}

// RiskRegister renders the risk register as its own document.
func RiskRegister(risks []projectplan.Risk, projectName string) string {
	var sb strings.Builder

	heading(&sb, 1, "Risk Register: "+projectName)

	if len(risks) == 0 {
		sb.WriteString("No risks identified for the current plan.\n")
		return sb.String()
	}

	tableHeader(&sb, "ID", "Risk", "Probability", "Impact", "Score")
	for _, r := range risks {
		tableRow(&sb, r.ID, r.Name, r.Probability, r.Impact, fmt.Sprintf("%.1f", r.Score))
	}
	sb.WriteString("\n")

	heading(&sb, 2, "Details")
	for _, r := range risks {
		heading(&sb, 3, fmt.Sprintf("%s: %s", r.ID, r.Name))
		sb.WriteString(r.Description)
		sb.WriteString("\n\n")
		field(&sb, "Mitigation", r.Mitigation)
		sb.WriteString("\n")
	}

	return sb.String()
}

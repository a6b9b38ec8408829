package export

import (
	"strings"

	"github.com/c360studio/blueprint/domain"
	"github.com/c360studio/blueprint/generator/analysis"
)

// Analysis renders the business-analysis output as a requirements
// document.
func Analysis(out analysis.Output, d *domain.Domain, projectName string) string {
	var sb strings.Builder

	heading(&sb, 1, "Requirements: "+projectName)

	if d != nil {
		heading(&sb, 2, "Domain")
		field(&sb, "Profile", d.DisplayName)
		if d.Description != "" {
			field(&sb, "Description", d.Description)
		}
		if regs := d.RegulationNames(); len(regs) > 0 {
			field(&sb, "Regulations", strings.Join(regs, ", "))
		}
		sb.WriteString("\n")
	}

	heading(&sb, 2, "User Stories")
	for _, s := range out.UserStories {
		heading(&sb, 3, s.ID)
		sb.WriteString("As a **")
		sb.WriteString(s.Role)
		sb.WriteString("**, I want ")
		sb.WriteString(s.Goal)
		sb.WriteString(" so that ")
		sb.WriteString(s.Benefit)
		sb.WriteString(".\n\n")
		if len(s.AcceptanceCriteria) > 0 {
			sb.WriteString("**Acceptance Criteria:**\n")
			bullets(&sb, s.AcceptanceCriteria)
		}
	}

	heading(&sb, 2, "Security Requirements")
	tableHeader(&sb, "ID", "Requirement", "Category", "Driver")
	for _, r := range out.SecurityRequirements {
		tableRow(&sb, r.ID, r.Title, r.Category, r.Driver)
	}
	sb.WriteString("\n")

	heading(&sb, 2, "Abuse Cases")
	for _, a := range out.AbuseCases {
		heading(&sb, 3, a.ID)
		field(&sb, "Actor", a.Actor)
		field(&sb, "Scenario", a.Scenario)
		field(&sb, "Impact", a.Impact)
		field(&sb, "Mitigation", a.Mitigation)
		sb.WriteString("\n")
	}

	return sb.String()
}

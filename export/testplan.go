package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/blueprint/generator/teststrategy"
)

// TestPlan renders the QA phase output.
func TestPlan(out teststrategy.Output, projectName string) string {
	var sb strings.Builder

	heading(&sb, 1, "Test Plan: "+projectName)

	heading(&sb, 2, "Overview")
	field(&sb, "Test Cases", fmt.Sprintf("%d", len(out.TestCases)))
	field(&sb, "Automation Coverage", percent(out.AutomationCoverage))
	sb.WriteString("\n")

	heading(&sb, 2, "Test Cases")
	for _, tc := range out.TestCases {
		heading(&sb, 3, fmt.Sprintf("%s: %s", tc.ID, tc.Title))
		field(&sb, "Category", tc.Category)
		field(&sb, "Priority", tc.Priority)
		if tc.RelatedID != "" {
			field(&sb, "Covers", tc.RelatedID)
		}
		automated := "manual"
		if tc.Automated {
			automated = "automated"
		}
		field(&sb, "Execution", automated)
		sb.WriteString("\n**Steps:**\n")
		for i, step := range tc.Steps {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
		}
		sb.WriteString("\n")
		field(&sb, "Expected", tc.Expected)
		sb.WriteString("\n")
	}

	heading(&sb, 2, "Penetration Test Plan")
	for _, phase := range out.PentestPlan {
		heading(&sb, 3, phase.Name)
		bullets(&sb, phase.Activities)
	}

	return sb.String()
}

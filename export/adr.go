package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/blueprint/generator/archdecision"
)

// ADR renders one architecture decision record with its fixed sections.
func ADR(d archdecision.Decision) string {
	var sb strings.Builder

	heading(&sb, 1, fmt.Sprintf("%s: %s", d.ID, d.Title))

	if d.HighRisk {
		sb.WriteString("> **High risk**: this decision is hard to reverse or touches a hard constraint.\n\n")
	}

	heading(&sb, 2, "Context")
	sb.WriteString(d.Context)
	sb.WriteString("\n\n")

	heading(&sb, 2, "Decision Drivers")
	bullets(&sb, d.Drivers)

	heading(&sb, 2, "Options")
	for _, opt := range d.Options {
		marker := ""
		if opt.Name == d.Chosen {
			marker = " (chosen)"
		}
		heading(&sb, 3, fmt.Sprintf("%s%s (score %d)", opt.Name, marker, opt.Score))
		sb.WriteString(opt.Description)
		sb.WriteString("\n\n")
		for _, p := range opt.Pros {
			sb.WriteString("- Pro: ")
			sb.WriteString(p)
			sb.WriteString("\n")
		}
		for _, c := range opt.Cons {
			sb.WriteString("- Con: ")
			sb.WriteString(c)
			sb.WriteString("\n")
		}
		if !opt.Reversible {
			sb.WriteString("- Not easily reversible\n")
		}
		sb.WriteString("\n")
	}

	heading(&sb, 2, "Decision")
	sb.WriteString("Adopt **")
	sb.WriteString(d.Chosen)
	sb.WriteString("**.")
	if d.ComplianceImpact != "" {
		sb.WriteString(" ")
		sb.WriteString(d.ComplianceImpact)
	}
	sb.WriteString("\n\n")

	heading(&sb, 2, "Consequences")
	bullets(&sb, d.Consequences)

	return sb.String()
}

// ArchitectureDecisions renders the whole decision log as one document.
func ArchitectureDecisions(out archdecision.Output, projectName string) string {
	var sb strings.Builder

	heading(&sb, 1, "Architecture Decisions: "+projectName)
	field(&sb, "Decisions", fmt.Sprintf("%d", len(out.Decisions)))
	field(&sb, "High Risk", strings.Join(out.HighRiskDecisions, ", "))
	sb.WriteString("\n---\n\n")

	for i, d := range out.Decisions {
		if i > 0 {
			sb.WriteString("---\n\n")
		}
		sb.WriteString(ADR(d))
	}

	return sb.String()
}

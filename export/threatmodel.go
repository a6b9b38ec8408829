package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/blueprint/generator/threatmodel"
)

// ThreatModel renders the security phase output.
func ThreatModel(out threatmodel.Output, projectName string) string {
	var sb strings.Builder

	heading(&sb, 1, "Threat Model: "+projectName)

	heading(&sb, 2, "Threats")
	tableHeader(&sb, "ID", "Category", "Threat", "Component", "Score", "CWE", "OWASP")
	for _, t := range out.Threats {
		tableRow(&sb, t.ID, string(t.Category), t.Name, t.Component,
			fmt.Sprintf("%.1f", t.Score), t.CWE, t.OWASP)
	}
	sb.WriteString("\n")

	heading(&sb, 2, "Risk Matrix")
	field(&sb, "Critical", strings.Join(out.Matrix.Critical, ", "))
	field(&sb, "High", strings.Join(out.Matrix.High, ", "))
	field(&sb, "Medium", strings.Join(out.Matrix.Medium, ", "))
	field(&sb, "Low", strings.Join(out.Matrix.Low, ", "))
	sb.WriteString("\n")

	heading(&sb, 2, "Mitigations")
	for _, t := range out.Threats {
		heading(&sb, 3, fmt.Sprintf("%s: %s", t.ID, t.Name))
		sb.WriteString(t.Description)
		sb.WriteString("\n\n")
		bullets(&sb, t.Mitigations)
	}

	heading(&sb, 2, "Recommendations")
	bullets(&sb, out.Recommendations)

	return sb.String()
}

package export

import (
	"sort"
	"strings"

	"github.com/c360studio/blueprint/generator/design"
)

// Design renders the tech-lead output as a technical design document.
func Design(out design.Output, projectName string) string {
	var sb strings.Builder

	heading(&sb, 1, "Technical Design: "+projectName)

	heading(&sb, 2, "Features")
	tableHeader(&sb, "ID", "Feature", "Priority", "Depends On")
	for _, f := range out.Features {
		tableRow(&sb, f.ID, f.Name, string(f.Priority), strings.Join(f.DependsOn, ", "))
	}
	sb.WriteString("\n")

	if out.ArchitectureDiagram != "" {
		heading(&sb, 2, "Architecture")
		codeBlock(&sb, "mermaid", out.ArchitectureDiagram)
	}

	heading(&sb, 2, "Modules")
	for _, m := range out.Modules {
		heading(&sb, 3, m.Name)
		field(&sb, "Type", string(m.Type))
		if len(m.DependsOn) > 0 {
			field(&sb, "Depends On", strings.Join(m.DependsOn, ", "))
		}
		sb.WriteString("\n")
		for _, c := range m.Classes {
			sb.WriteString("**")
			sb.WriteString(c.Name)
			sb.WriteString("** (")
			sb.WriteString(c.Kind)
			sb.WriteString(")\n")
			bullets(&sb, c.Methods)
		}
		if code, ok := out.Pseudocode[m.Name]; ok {
			codeBlock(&sb, "", code)
		}
	}

	if out.ComponentDiagram != "" {
		heading(&sb, 2, "Component Interactions")
		codeBlock(&sb, "mermaid", out.ComponentDiagram)
	}

	if len(out.Scaffold) > 0 {
		heading(&sb, 2, "Project Scaffold")
		scaffold := append([]string(nil), out.Scaffold...)
		sort.Strings(scaffold)
		codeBlock(&sb, "", strings.Join(scaffold, "\n"))
	}

	return sb.String()
}

package export

import (
	"strings"

	"github.com/c360studio/blueprint/generator/cicd"
)

// DeliveryPipeline renders the DevOps phase output.
func DeliveryPipeline(out cicd.Output, projectName string) string {
	var sb strings.Builder

	heading(&sb, 1, "Delivery Pipeline: "+projectName)

	heading(&sb, 2, "Overview")
	field(&sb, "Platform", out.Platform)
	field(&sb, "Config Path", out.ConfigPath)
	field(&sb, "Trigger", out.Trigger)
	sb.WriteString("\n")

	heading(&sb, 2, "Build Stages")
	for _, s := range out.BuildStages {
		heading(&sb, 3, s.Name)
		sb.WriteString(s.Description)
		sb.WriteString("\n\n")
		codeBlock(&sb, "sh", strings.Join(s.Commands, "\n"))
	}

	heading(&sb, 2, "Deployment Stages")
	for _, s := range out.DeploymentStages {
		heading(&sb, 3, s.Name)
		sb.WriteString(s.Description)
		sb.WriteString("\n\n")
		codeBlock(&sb, "sh", strings.Join(s.Commands, "\n"))
	}

	heading(&sb, 2, "Security Gates")
	tableHeader(&sb, "Gate", "Tool", "Stage", "Blocking")
	for _, g := range out.SecurityGates {
		blocking := "no"
		if g.Blocking {
			blocking = "yes"
		}
		tableRow(&sb, g.Name, g.Tool, g.Stage, blocking)
	}
	sb.WriteString("\n")

	return sb.String()
}

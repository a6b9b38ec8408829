package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/c360studio/blueprint/config"
	"github.com/c360studio/blueprint/domain"
	"github.com/c360studio/blueprint/export"
	"github.com/c360studio/blueprint/generator/archdecision"
	"github.com/c360studio/blueprint/pipeline"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func newGenerateCmd() *cobra.Command {
	var (
		goals       []string
		stack       []string
		compliance  []string
		constraints []string
		projectName string
		domainName  string
		language    string
		deployment  string
		platform    string
		teamSize    int
		sprintWeeks int
		outDir      string
		preview     bool
	)

	cmd := &cobra.Command{
		Use:   "generate \"project description\"",
		Short: "Generate SDLC documents from a project description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader(slog.Default()).Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			req := pipeline.Request{
				ProjectName:            projectName,
				ProjectDescription:     args[0],
				BusinessGoals:          goals,
				TechStack:              stack,
				ComplianceRequirements: compliance,
				Constraints:            parseConstraints(constraints),
				Domain:                 domainName,
				TargetLanguage:         firstNonEmpty(language, cfg.Generation.TargetLanguage),
				DeploymentTarget:       firstNonEmpty(deployment, cfg.Generation.DeploymentTarget),
				RepositoryPlatform:     firstNonEmpty(platform, cfg.Generation.RepositoryPlatform),
				TeamSize:               cfg.Generation.TeamSize,
				SprintWeeks:            cfg.Generation.SprintWeeks,
			}
			if teamSize > 0 {
				req.TeamSize = teamSize
			}
			if sprintWeeks > 0 {
				req.SprintWeeks = sprintWeeks
			}

			catalogOpts := []domain.Option{domain.WithLogger(slog.Default())}
			if cfg.Catalog.OverlayDir != "" {
				catalogOpts = append(catalogOpts, domain.WithOverlayDir(cfg.Catalog.OverlayDir))
			}
			catalog, err := domain.New(catalogOpts...)
			if err != nil {
				return fmt.Errorf("loading domain catalog: %w", err)
			}

			p := pipeline.New(catalog, pipeline.WithLogger(slog.Default()))
			result, err := p.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			docs := renderDocuments(result)

			if preview || cfg.Output.Preview {
				return previewDocuments(cmd, docs)
			}

			dir := firstNonEmpty(outDir, cfg.Output.Dir)
			if err := writeDocuments(dir, docs); err != nil {
				return err
			}
			printSummary(cmd, result, dir)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&goals, "goal", nil, "Business goal (repeatable)")
	cmd.Flags().StringSliceVar(&stack, "stack", nil, "Tech stack entries")
	cmd.Flags().StringSliceVar(&compliance, "compliance", nil, "Compliance requirements")
	cmd.Flags().StringArrayVar(&constraints, "constraint", nil, "Architecture constraint, \"hard:\" prefix marks it non-negotiable (repeatable)")
	cmd.Flags().StringVar(&projectName, "name", "", "Project name (derived from the description when empty)")
	cmd.Flags().StringVar(&domainName, "domain", "", "Domain profile (keyword detection when empty)")
	cmd.Flags().StringVar(&language, "language", "", "Target language for pseudocode and scaffold")
	cmd.Flags().StringVar(&deployment, "deploy", "", "Deployment target (kubernetes, serverless, vm)")
	cmd.Flags().StringVar(&platform, "platform", "", "Repository platform (github, gitlab)")
	cmd.Flags().IntVar(&teamSize, "team-size", 0, "Team size for sprint planning")
	cmd.Flags().IntVar(&sprintWeeks, "sprint-weeks", 0, "Sprint length in weeks")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory")
	cmd.Flags().BoolVar(&preview, "preview", false, "Render documents to the terminal instead of writing files")

	return cmd
}

// document pairs an output filename with its rendered Markdown.
type document struct {
	Name    string
	Content string
}

func renderDocuments(r *pipeline.Result) []document {
	return []document{
		{"requirements.md", export.Analysis(r.Analysis, r.Domain, r.ProjectName)},
		{"technical-design.md", export.Design(r.Design, r.ProjectName)},
		{"threat-model.md", export.ThreatModel(r.ThreatModel, r.ProjectName)},
		{"test-plan.md", export.TestPlan(r.TestStrategy, r.ProjectName)},
		{"delivery-pipeline.md", export.DeliveryPipeline(r.CICD, r.ProjectName)},
		{"project-plan.md", r.Documents.ProjectPlan},
		{"risk-register.md", r.Documents.RiskRegister},
		{"architecture-decisions.md", export.ArchitectureDecisions(r.Architecture, r.ProjectName)},
	}
}

func writeDocuments(dir string, docs []document) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, doc := range docs {
		path := filepath.Join(dir, doc.Name)
		if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", doc.Name, err)
		}
	}
	return nil
}

func previewDocuments(cmd *cobra.Command, docs []document) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	for _, doc := range docs {
		out, err := renderer.Render(doc.Content)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", doc.Name, err)
		}
		cmd.Println(titleStyle.Render("── " + doc.Name + " "))
		cmd.Println(out)
	}
	return nil
}

func printSummary(cmd *cobra.Command, r *pipeline.Result, dir string) {
	s := r.Summary

	cmd.Println(titleStyle.Render("Blueprint: " + r.ProjectName))
	row := func(label, value string) {
		cmd.Println(labelStyle.Render(fmt.Sprintf("  %-22s", label)) + valueStyle.Render(value))
	}
	row("Run", r.RunID)
	row("Domain", s.DomainName)
	row("User stories", fmt.Sprintf("%d", s.UserStories))
	row("Features / modules", fmt.Sprintf("%d / %d", s.Features, s.Modules))
	row("Threats", fmt.Sprintf("%d", s.Threats))
	row("Test cases", fmt.Sprintf("%d (%d%% automated)", s.TestCases, s.AutomationCoverage))
	row("Tasks / sprints", fmt.Sprintf("%d / %d", s.Tasks, s.Sprints))
	row("Duration", fmt.Sprintf("%d working days", s.DurationDays))
	row("Decisions", fmt.Sprintf("%d", s.Decisions))
	if len(s.ComplianceFrameworks) > 0 {
		row("Compliance", strings.Join(s.ComplianceFrameworks, ", "))
	}
	if len(s.HighRiskDecisions) > 0 {
		cmd.Println(warnStyle.Render("  High-risk decisions:  " + strings.Join(s.HighRiskDecisions, ", ")))
	}
	row("Output", dir)
}

// parseConstraints turns --constraint values into constraint records. A
// "hard:" prefix marks the constraint as disqualifying.
func parseConstraints(values []string) []archdecision.Constraint {
	var out []archdecision.Constraint
	for _, v := range values {
		c := archdecision.Constraint{Type: "stated", Description: strings.TrimSpace(v)}
		if rest, ok := strings.CutPrefix(c.Description, "hard:"); ok {
			c.Hard = true
			c.Description = strings.TrimSpace(rest)
		}
		if c.Description != "" {
			out = append(out, c)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Package pipeline chains the seven generation phases into one
// synchronous run. Every phase is a pure computation over the previous
// outputs; the pipeline adds domain resolution at the front and the
// result envelope at the back.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/blueprint/domain"
	"github.com/c360studio/blueprint/export"
	"github.com/c360studio/blueprint/generator/analysis"
	"github.com/c360studio/blueprint/generator/archdecision"
	"github.com/c360studio/blueprint/generator/cicd"
	"github.com/c360studio/blueprint/generator/design"
	"github.com/c360studio/blueprint/generator/projectplan"
	"github.com/c360studio/blueprint/generator/teststrategy"
	"github.com/c360studio/blueprint/generator/threatmodel"
)

// ErrEmptyDescription is returned when a run is requested without a
// project description.
var ErrEmptyDescription = errors.New("project description is empty")

// Request defaults.
const (
	DefaultLanguage   = "python"
	DefaultDeployment = "kubernetes"
	DefaultPlatform   = "github"
)

// Request carries everything one generation run needs. Zero values get
// the package defaults; Domain overrides keyword detection when set.
type Request struct {
	ProjectName            string
	ProjectDescription     string
	BusinessGoals          []string
	TechStack              []string
	TargetLanguage         string
	DeploymentTarget       string
	RepositoryPlatform     string
	ComplianceRequirements []string
	Domain                 string
	Constraints            []archdecision.Constraint
	TeamSize               int
	SprintWeeks            int
	StartDate              time.Time
}

// Documents holds the Markdown artifacts rendered as part of the run.
type Documents struct {
	ProjectPlan  string
	RiskRegister string
}

// Summary condenses a run for display and for JSON consumers.
type Summary struct {
	DomainName           string
	UserStories          int
	Features             int
	Modules              int
	Threats              int
	TestCases            int
	AutomationCoverage   int
	Tasks                int
	Sprints              int
	DurationDays         int
	Decisions            int
	ComplianceFrameworks []string
	HighRiskDecisions    []string
}

// Result is the aggregated envelope for one run.
type Result struct {
	GenerationID string
	RunID        string
	GeneratedAt  time.Time
	ProjectName  string
	Domain       *domain.Domain
	Analysis     analysis.Output
	Design       design.Output
	ThreatModel  threatmodel.Output
	TestStrategy teststrategy.Output
	CICD         cicd.Output
	ProjectPlan  projectplan.Output
	Architecture archdecision.Output
	Documents    Documents
	Summary      Summary
}

// Pipeline runs generation requests against one domain catalog.
type Pipeline struct {
	catalog *domain.Catalog
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithClock overrides the time source, used by tests for stable run ids.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New creates a Pipeline over the given catalog.
func New(catalog *domain.Catalog, opts ...Option) *Pipeline {
	p := &Pipeline{
		catalog: catalog,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes phases in order, checking for cancellation between
// phases. Phases themselves never block.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.ProjectDescription) == "" {
		return nil, ErrEmptyDescription
	}
	applyDefaults(&req)

	now := p.now().UTC()
	result := &Result{
		GenerationID: uuid.New().String(),
		RunID:        "run-" + now.Format("20060102-150405"),
		GeneratedAt:  now,
		ProjectName:  req.ProjectName,
	}

	d, err := p.resolveDomain(req)
	if err != nil {
		return nil, fmt.Errorf("resolving domain: %w", err)
	}
	result.Domain = d
	p.logger.Info("domain resolved",
		"run_id", result.RunID,
		"domain", d.Name,
		"explicit", req.Domain != "")

	phases := []struct {
		name string
		run  func()
	}{
		{"business-analysis", func() {
			result.Analysis = analysis.Analyze(analysis.Input{
				Description:   req.ProjectDescription,
				BusinessGoals: req.BusinessGoals,
				Domain:        d,
			})
		}},
		{"tech-lead", func() {
			result.Design = design.Design(design.Input{
				Stories:              result.Analysis.UserStories,
				SecurityRequirements: result.Analysis.SecurityRequirements,
				TargetLanguage:       req.TargetLanguage,
				DomainName:           d.Name,
			})
		}},
		{"security", func() {
			result.ThreatModel = threatmodel.Model(threatmodel.Input{
				Modules: result.Design.Modules,
				Domain:  d,
			})
		}},
		{"qa", func() {
			result.TestStrategy = teststrategy.Design(teststrategy.Input{
				Features:               result.Design.Features,
				Threats:                result.ThreatModel.Threats,
				ComplianceRequirements: req.ComplianceRequirements,
			})
		}},
		{"devops", func() {
			result.CICD = cicd.Design(cicd.Input{
				ProjectName:        req.ProjectName,
				TechStack:          req.TechStack,
				DeploymentTarget:   req.DeploymentTarget,
				RepositoryPlatform: req.RepositoryPlatform,
			})
		}},
		{"project-management", func() {
			result.ProjectPlan = projectplan.Plan(projectplan.Input{
				Features:    result.Design.Features,
				Threats:     result.ThreatModel.Threats,
				TeamSize:    req.TeamSize,
				SprintWeeks: req.SprintWeeks,
				StartDate:   req.StartDate,
			})
		}},
		{"architecture", func() {
			result.Architecture = archdecision.Decide(archdecision.Input{
				Modules:     result.Design.Modules,
				TechStack:   req.TechStack,
				Domain:      d,
				Constraints: deriveConstraints(req, result.ProjectPlan),
			})
		}},
	}

	for _, phase := range phases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("phase %s: %w", phase.name, err)
		}
		phase.run()
		p.logger.Debug("phase complete", "run_id", result.RunID, "phase", phase.name)
	}

	result.Documents = Documents{
		ProjectPlan:  export.ProjectPlan(result.ProjectPlan, req.ProjectName),
		RiskRegister: export.RiskRegister(result.ProjectPlan.Risks, req.ProjectName),
	}
	result.Summary = summarize(req, result)

	p.logger.Info("generation complete",
		"run_id", result.RunID,
		"generation_id", result.GenerationID,
		"domain", d.Name,
		"modules", result.Summary.Modules,
		"threats", result.Summary.Threats,
		"tasks", result.Summary.Tasks)
	return result, nil
}

func applyDefaults(req *Request) {
	if req.TargetLanguage == "" {
		req.TargetLanguage = DefaultLanguage
	}
	if req.DeploymentTarget == "" {
		req.DeploymentTarget = DefaultDeployment
	}
	if req.RepositoryPlatform == "" {
		req.RepositoryPlatform = DefaultPlatform
	}
	if req.ProjectName == "" {
		req.ProjectName = deriveProjectName(req.ProjectDescription)
	}
}

func (p *Pipeline) resolveDomain(req Request) (*domain.Domain, error) {
	if req.Domain != "" {
		return p.catalog.Load(req.Domain)
	}
	return p.catalog.LoadAuto(req.ProjectDescription)
}

// deriveConstraints folds the request's compliance requirements and the
// derived delivery timeline into the explicit constraint list handed to
// the architecture phase.
func deriveConstraints(req Request, plan projectplan.Output) []archdecision.Constraint {
	constraints := append([]archdecision.Constraint(nil), req.Constraints...)
	for _, c := range req.ComplianceRequirements {
		constraints = append(constraints, archdecision.Constraint{
			Type:        "compliance",
			Description: c,
			Hard:        true,
			Impact:      "Controls must be demonstrable in an audit.",
		})
	}
	if plan.DurationDays > 0 {
		constraints = append(constraints, archdecision.Constraint{
			Type: "timeline",
			Description: fmt.Sprintf("Delivery window of %d working days plus %d buffer days.",
				plan.DurationDays, plan.BufferDays),
			Impact: "Options with long lead times lose ground.",
		})
	}
	return constraints
}

func summarize(req Request, r *Result) Summary {
	s := Summary{
		DomainName:         r.Domain.Name,
		UserStories:        len(r.Analysis.UserStories),
		Features:           len(r.Design.Features),
		Modules:            len(r.Design.Modules),
		Threats:            len(r.ThreatModel.Threats),
		TestCases:          len(r.TestStrategy.TestCases),
		AutomationCoverage: r.TestStrategy.AutomationCoverage,
		Tasks:              len(r.ProjectPlan.Tasks),
		Sprints:            len(r.ProjectPlan.Sprints),
		DurationDays:       r.ProjectPlan.DurationDays,
		Decisions:          len(r.Architecture.Decisions),
		HighRiskDecisions:  append([]string(nil), r.Architecture.HighRiskDecisions...),
	}
	seen := make(map[string]bool)
	for _, f := range req.ComplianceRequirements {
		if !seen[f] {
			seen[f] = true
			s.ComplianceFrameworks = append(s.ComplianceFrameworks, f)
		}
	}
	for _, name := range r.Domain.RegulationNames() {
		if !seen[name] {
			seen[name] = true
			s.ComplianceFrameworks = append(s.ComplianceFrameworks, name)
		}
	}
	return s
}

// deriveProjectName takes the first clause of the description, trimmed
// to a handful of words.
func deriveProjectName(description string) string {
	head := description
	for _, sep := range []string{".", ",", ";", "\n"} {
		if i := strings.Index(head, sep); i > 0 {
			head = head[:i]
		}
	}
	words := strings.Fields(head)
	if len(words) > 6 {
		words = words[:6]
	}
	if len(words) == 0 {
		return "Untitled Project"
	}
	return strings.Join(words, " ")
}

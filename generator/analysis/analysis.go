// Package analysis implements the business-analysis phase: it turns a
// project description, its business goals, and the resolved domain
// profile into user stories, security requirements, and abuse cases.
// Generation is deterministic: the same inputs always produce the same
// entities in the same order.
package analysis

import (
	"fmt"
	"strings"

	"github.com/c360studio/blueprint/domain"
	"github.com/c360studio/blueprint/generator/genid"
)

// Input carries everything the phase needs. Domain must not be nil; use
// the generic profile when no specific domain applies.
type Input struct {
	Description   string
	BusinessGoals []string
	Domain        *domain.Domain
}

// UserStory is one actor-goal-benefit statement with acceptance criteria.
type UserStory struct {
	ID                 string
	Role               string
	Goal               string
	Benefit            string
	AcceptanceCriteria []string
}

// SecurityRequirement is a domain- or compliance-driven control the
// design phase must account for.
type SecurityRequirement struct {
	ID          string
	Title       string
	Description string
	Category    string
	Driver      string
}

// AbuseCase describes how a hostile actor could misuse the system.
type AbuseCase struct {
	ID         string
	Actor      string
	Scenario   string
	Impact     string
	Mitigation string
}

// Output is the phase result. Downstream phases receive it read-only.
type Output struct {
	UserStories          []UserStory
	SecurityRequirements []SecurityRequirement
	AbuseCases           []AbuseCase
}

// Security requirement categories.
const (
	CategoryEncryption    = "encryption"
	CategoryAccessControl = "access-control"
	CategoryCompliance    = "compliance"
	CategoryAudit         = "audit"
)

// Analyze runs the business-analysis phase.
func Analyze(in Input) Output {
	var out Output

	out.UserStories = generateStories(in)
	out.SecurityRequirements = generateRequirements(in.Domain)
	out.AbuseCases = generateAbuseCases(in.Domain)

	return out
}

// generateStories emits one story per business goal and one per domain
// stakeholder. Goal stories are attributed to the primary stakeholder.
func generateStories(in Input) []UserStory {
	ids := genid.NewSequence("US")
	primary := primaryStakeholder(in.Domain)

	stories := make([]UserStory, 0, len(in.BusinessGoals)+len(in.Domain.Stakeholders))
	for _, goal := range in.BusinessGoals {
		stories = append(stories, UserStory{
			ID:      ids.Next(),
			Role:    primary,
			Goal:    goal,
			Benefit: fmt.Sprintf("the system delivers on %q", goal),
			AcceptanceCriteria: []string{
				fmt.Sprintf("Given a signed-in %s, the flow for %q completes without errors", primary, goal),
				"All inputs are validated before processing",
			},
		})
	}

	for _, stakeholder := range in.Domain.Stakeholders {
		stories = append(stories, UserStory{
			ID:      ids.Next(),
			Role:    stakeholder,
			Goal:    fmt.Sprintf("access the %s capabilities relevant to my role", in.Domain.DisplayName),
			Benefit: "I can complete my day-to-day work in one place",
			AcceptanceCriteria: []string{
				fmt.Sprintf("A %s sees only data permitted by their role", stakeholder),
				"Every action is attributable to the acting account",
			},
		})
	}

	return stories
}

// generateRequirements derives security requirements from the domain
// profile: critical data always yields an encryption-at-rest control,
// confidential data an access-control requirement, each regulation a
// compliance requirement, and declared audit requirements an audit-trail
// control.
func generateRequirements(d *domain.Domain) []SecurityRequirement {
	ids := genid.NewSequence("SR")
	var reqs []SecurityRequirement

	if d.HasCriticalData() {
		reqs = append(reqs, SecurityRequirement{
			ID:          ids.Next(),
			Title:       "Encryption at rest",
			Description: "All critically classified data stores must be encrypted at rest with managed keys: " + joinCritical(d),
			Category:    CategoryEncryption,
			Driver:      "critical sensitive data",
		})
	}

	for _, sd := range d.SensitiveData {
		if sd.Classification != domain.ClassificationConfidential {
			continue
		}
		reqs = append(reqs, SecurityRequirement{
			ID:          ids.Next(),
			Title:       fmt.Sprintf("Access control for %s", sd.Name),
			Description: fmt.Sprintf("Reads and writes of %s require role-based authorization checks", sd.Name),
			Category:    CategoryAccessControl,
			Driver:      "confidential sensitive data",
		})
	}

	for _, reg := range d.Regulations {
		reqs = append(reqs, SecurityRequirement{
			ID:          ids.Next(),
			Title:       fmt.Sprintf("%s compliance", reg.Name),
			Description: fmt.Sprintf("Satisfy %s (%s): %s", reg.Name, reg.Region, strings.Join(reg.Requirements, "; ")),
			Category:    CategoryCompliance,
			Driver:      reg.Name,
		})
	}

	if len(d.AuditRequirements) > 0 {
		reqs = append(reqs, SecurityRequirement{
			ID:          ids.Next(),
			Title:       "Audit trail",
			Description: "Record an immutable audit trail covering: " + strings.Join(d.AuditRequirements, "; "),
			Category:    CategoryAudit,
			Driver:      "domain audit requirements",
		})
	}

	return reqs
}

// generateAbuseCases emits one abuse case per domain-declared threat plus
// a generic credential-stuffing case whenever the domain has stakeholders
// (i.e. authenticated actors exist).
func generateAbuseCases(d *domain.Domain) []AbuseCase {
	ids := genid.NewSequence("AB")
	var cases []AbuseCase

	for _, t := range d.KnownThreats {
		cases = append(cases, AbuseCase{
			ID:         ids.Next(),
			Actor:      "external attacker",
			Scenario:   fmt.Sprintf("%s: %s", t.Name, t.Description),
			Impact:     t.Impact,
			Mitigation: fmt.Sprintf("Address via the %s controls in the threat model", t.Category),
		})
	}

	if len(d.Stakeholders) > 0 {
		cases = append(cases, AbuseCase{
			ID:         ids.Next(),
			Actor:      "credential-stuffing bot",
			Scenario:   "Breached username/password lists are replayed against the login endpoint at scale",
			Impact:     "high",
			Mitigation: "Rate limiting, breached-password screening, and MFA for privileged roles",
		})
	}

	return cases
}

func primaryStakeholder(d *domain.Domain) string {
	if len(d.Stakeholders) > 0 {
		return d.Stakeholders[0]
	}
	return "user"
}

func joinCritical(d *domain.Domain) string {
	var names []string
	for _, sd := range d.SensitiveData {
		if sd.Classification == domain.ClassificationCritical {
			names = append(names, sd.Name)
		}
	}
	return strings.Join(names, ", ")
}

package archdecision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/blueprint/domain"
	"github.com/c360studio/blueprint/generator/design"
)

func decideInput() Input {
	return Input{
		Modules: []design.Module{
			{Name: "AccountModule"},
			{Name: "CommonModule"},
		},
		TechStack: []string{"go", "postgres"},
	}
}

func findDecision(t *testing.T, decisions []Decision, title string) Decision {
	t.Helper()
	for _, d := range decisions {
		if d.Title == title {
			return d
		}
	}
	t.Fatalf("no decision titled %q", title)
	return Decision{}
}

func TestDecideStandingConcerns(t *testing.T) {
	out := Decide(decideInput())

	// One decision per recurring concern, ids ascending from ADR-001.
	require.Len(t, out.Decisions, len(standingConcerns))
	assert.Equal(t, "ADR-001", out.Decisions[0].ID)

	for _, d := range out.Decisions {
		assert.NotEmpty(t, d.Context, "decision %s has no context", d.ID)
		assert.NotEmpty(t, d.Drivers, "decision %s has no drivers", d.ID)
		assert.GreaterOrEqual(t, len(d.Options), 2, "decision %s needs a real option menu", d.ID)
		assert.NotEmpty(t, d.Chosen, "decision %s chose nothing", d.ID)
		assert.NotEmpty(t, d.Consequences, "decision %s has no consequences", d.ID)
	}

	// Without constraints the highest base score wins.
	db := findDecision(t, out.Decisions, "Primary datastore")
	assert.Equal(t, "PostgreSQL", db.Chosen)
	assert.True(t, db.HighRisk, "a non-reversible choice is high risk")

	api := findDecision(t, out.Decisions, "API style")
	assert.Equal(t, "REST", api.Chosen)
	assert.False(t, api.HighRisk)
}

func TestDecideHighRiskList(t *testing.T) {
	out := Decide(decideInput())

	idsByTitle := make(map[string]string)
	highRisk := make(map[string]bool)
	for _, d := range out.Decisions {
		idsByTitle[d.Title] = d.ID
		highRisk[d.ID] = d.HighRisk
	}
	for _, id := range out.HighRiskDecisions {
		assert.True(t, highRisk[id], "%s listed as high risk but not flagged", id)
	}
	assert.Contains(t, out.HighRiskDecisions, idsByTitle["Primary datastore"])
	assert.Contains(t, out.HighRiskDecisions, idsByTitle["Authentication strategy"])
	assert.NotContains(t, out.HighRiskDecisions, idsByTitle["API style"])
}

func TestDecideHardConstraintDisqualifies(t *testing.T) {
	in := decideInput()
	in.Constraints = []Constraint{
		{Type: "infrastructure", Description: "Must run on-prem in the customer datacenter", Hard: true, Impact: "no cloud services"},
	}
	out := Decide(in)

	enc := findDecision(t, out.Decisions, "Encryption approach")
	assert.Equal(t, "Application-layer field encryption", enc.Chosen)
}

func TestDecideSoftConstraintSubtracts(t *testing.T) {
	in := decideInput()
	in.Constraints = []Constraint{
		{Type: "budget", Description: "Tight budget for the first year", Hard: false},
	}
	out := Decide(in)

	auth := findDecision(t, out.Decisions, "Authentication strategy")
	for _, opt := range auth.Options {
		if opt.Name == "OIDC with managed identity provider" {
			assert.Equal(t, 2, opt.Score, "soft conflict should subtract a point")
		}
	}
	// After the penalty the options tie; ties keep the earlier option.
	assert.Equal(t, "OIDC with managed identity provider", auth.Chosen)
}

func TestDecideAllOptionsDisqualified(t *testing.T) {
	in := decideInput()
	in.Constraints = []Constraint{
		{Type: "data", Description: "schemaless document store with acid transaction support at scale", Hard: true},
	}
	out := Decide(in)

	db := findDecision(t, out.Decisions, "Primary datastore")
	// Every option conflicts: fall back to the best raw score and flag it.
	assert.Equal(t, "PostgreSQL", db.Chosen)
	assert.True(t, db.HighRisk)
}

func TestDecideHardConstraintTouchFlagsRisk(t *testing.T) {
	in := decideInput()
	in.Constraints = []Constraint{
		{Type: "compliance", Description: "encryption required for all stored records", Hard: true},
	}
	out := Decide(in)

	enc := findDecision(t, out.Decisions, "Encryption approach")
	assert.True(t, enc.HighRisk, "touching a hard constraint is high risk even for reversible options")
}

func TestDecideDomainDecisions(t *testing.T) {
	tests := []struct {
		domainName string
		title      string
	}{
		{"secure-communication", "End-to-end encryption protocol"},
		{"blockchain", "Consensus mechanism"},
		{"malware-analysis", "Sandbox isolation boundary"},
	}

	for _, tt := range tests {
		t.Run(tt.domainName, func(t *testing.T) {
			in := decideInput()
			in.Domain = &domain.Domain{Name: tt.domainName, DisplayName: tt.domainName}
			out := Decide(in)

			require.Len(t, out.Decisions, len(standingConcerns)+1)
			extra := out.Decisions[len(out.Decisions)-1]
			assert.Equal(t, tt.title, extra.Title)
		})
	}
}

func TestDecideComplianceImpact(t *testing.T) {
	in := decideInput()
	in.Domain = &domain.Domain{
		Name: "healthcare",
		Regulations: []domain.Regulation{
			{Name: "HIPAA", Region: "US"},
		},
	}
	out := Decide(in)

	db := findDecision(t, out.Decisions, "Primary datastore")
	assert.Contains(t, db.ComplianceImpact, "HIPAA")

	api := findDecision(t, out.Decisions, "API style")
	assert.Empty(t, api.ComplianceImpact, "non-sensitive concerns carry no compliance impact")
}

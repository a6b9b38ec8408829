package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/blueprint/domain"
)

func healthcareFixture() *domain.Domain {
	return &domain.Domain{
		Name:        "healthcare",
		DisplayName: "Healthcare",
		Stakeholders: []string{
			"patient",
			"physician",
		},
		SensitiveData: []domain.SensitiveData{
			{Name: "protected health information", Classification: domain.ClassificationCritical},
			{Name: "appointment schedules", Classification: domain.ClassificationConfidential},
			{Name: "provider directory", Classification: domain.ClassificationInternal},
		},
		Regulations: []domain.Regulation{
			{Name: "HIPAA", Region: "US", Requirements: []string{"access controls", "breach notification"}},
		},
		AuditRequirements: []string{"log every PHI access"},
		KnownThreats: []domain.KnownThreat{
			{Name: "Ransomware on clinical systems", Category: "Denial of Service", Description: "Hospital systems encrypted by ransomware", Likelihood: "medium", Impact: "critical"},
		},
	}
}

func TestAnalyzeUserStories(t *testing.T) {
	out := Analyze(Input{
		Description:   "Patient portal",
		BusinessGoals: []string{"book appointments online", "view lab results"},
		Domain:        healthcareFixture(),
	})

	// One story per goal plus one per stakeholder.
	require.Len(t, out.UserStories, 4)

	assert.Equal(t, "US-001", out.UserStories[0].ID)
	assert.Equal(t, "US-004", out.UserStories[3].ID)

	// Goal stories are attributed to the primary stakeholder.
	assert.Equal(t, "patient", out.UserStories[0].Role)
	assert.Equal(t, "book appointments online", out.UserStories[0].Goal)
	assert.NotEmpty(t, out.UserStories[0].AcceptanceCriteria)

	// Stakeholder stories follow the goal stories.
	assert.Equal(t, "patient", out.UserStories[2].Role)
	assert.Equal(t, "physician", out.UserStories[3].Role)
}

func TestAnalyzeSecurityRequirements(t *testing.T) {
	out := Analyze(Input{
		Description: "Patient portal",
		Domain:      healthcareFixture(),
	})

	// Critical data + one confidential category + one regulation + audit.
	require.Len(t, out.SecurityRequirements, 4)

	byCategory := make(map[string]SecurityRequirement)
	for _, r := range out.SecurityRequirements {
		byCategory[r.Category] = r
	}

	enc, ok := byCategory[CategoryEncryption]
	require.True(t, ok, "expected an encryption requirement for critical data")
	assert.Contains(t, enc.Description, "protected health information")

	ac, ok := byCategory[CategoryAccessControl]
	require.True(t, ok, "expected an access-control requirement for confidential data")
	assert.Contains(t, ac.Title, "appointment schedules")

	comp, ok := byCategory[CategoryCompliance]
	require.True(t, ok, "expected a compliance requirement per regulation")
	assert.Equal(t, "HIPAA", comp.Driver)

	_, ok = byCategory[CategoryAudit]
	assert.True(t, ok, "expected an audit requirement")
}

func TestAnalyzeAbuseCases(t *testing.T) {
	out := Analyze(Input{
		Description: "Patient portal",
		Domain:      healthcareFixture(),
	})

	// One per known threat plus the credential-stuffing case.
	require.Len(t, out.AbuseCases, 2)
	assert.Contains(t, out.AbuseCases[0].Scenario, "Ransomware")
	assert.Equal(t, "credential-stuffing bot", out.AbuseCases[1].Actor)
}

func TestAnalyzeBareDomain(t *testing.T) {
	out := Analyze(Input{
		Description:   "Internal tool",
		BusinessGoals: []string{"track widgets"},
		Domain:        &domain.Domain{Name: "custom", DisplayName: "Custom"},
	})

	require.Len(t, out.UserStories, 1)
	// No stakeholders declared: fall back to the generic role.
	assert.Equal(t, "user", out.UserStories[0].Role)
	assert.Empty(t, out.SecurityRequirements)
	assert.Empty(t, out.AbuseCases)
}

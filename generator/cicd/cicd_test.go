package cicd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignGitHubKubernetes(t *testing.T) {
	out := Design(Input{
		ProjectName:        "Care Portal",
		TechStack:          []string{"go", "typescript"},
		DeploymentTarget:   "kubernetes",
		RepositoryPlatform: "github",
	})

	assert.Equal(t, "GitHub Actions", out.Platform)
	assert.Equal(t, ".github/workflows/ci.yml", out.ConfigPath)
	assert.NotEmpty(t, out.Trigger)

	// Per-stack stages plus the shared package stage.
	require.NotEmpty(t, out.BuildStages)
	last := out.BuildStages[len(out.BuildStages)-1]
	assert.Equal(t, "package", last.Name)

	require.Len(t, out.DeploymentStages, 2)
	assert.Equal(t, "deploy-staging", out.DeploymentStages[0].Name)
	assert.Contains(t, out.DeploymentStages[0].Commands[0], "care-portal")

	// Containerized targets add the image scan gate.
	require.Len(t, out.SecurityGates, 4)
	var tools []string
	for _, g := range out.SecurityGates {
		tools = append(tools, g.Tool)
	}
	assert.Equal(t, []string{"Semgrep", "OSV-Scanner", "Gitleaks", "Trivy"}, tools)
	for _, g := range out.SecurityGates[:3] {
		assert.True(t, g.Blocking, "gate %s should block", g.Name)
	}
}

func TestDesignServerlessSkipsContainerScan(t *testing.T) {
	out := Design(Input{
		ProjectName:        "fn-app",
		DeploymentTarget:   "serverless",
		RepositoryPlatform: "gitlab",
	})

	assert.Equal(t, "GitLab CI", out.Platform)
	assert.Equal(t, ".gitlab-ci.yml", out.ConfigPath)

	require.Len(t, out.SecurityGates, 3)
	for _, g := range out.SecurityGates {
		assert.NotEqual(t, "Trivy", g.Tool)
	}
	assert.Contains(t, out.DeploymentStages[0].Commands[0], "serverless deploy")
}

func TestDesignFallbacks(t *testing.T) {
	out := Design(Input{
		ProjectName:        "mystery",
		TechStack:          []string{"fortran"},
		DeploymentTarget:   "mainframe",
		RepositoryPlatform: "gitea",
	})

	// Unknown platform falls back to the generic template.
	assert.Equal(t, "Generic CI", out.Platform)

	// Unknown stacks get the generic build stage before packaging.
	require.Len(t, out.BuildStages, 2)
	assert.Equal(t, "build", out.BuildStages[0].Name)

	// Unknown deployment target behaves as kubernetes.
	assert.Contains(t, out.DeploymentStages[0].Commands[0], "helm upgrade")
}

func TestBuildStagesDeduplicateStack(t *testing.T) {
	out := Design(Input{
		ProjectName:        "svc",
		TechStack:          []string{"go", "golang", "node", "typescript"},
		DeploymentTarget:   "vm",
		RepositoryPlatform: "github",
	})

	// Aliases normalize and repeats collapse: go once, typescript once.
	var names []string
	for _, s := range out.BuildStages {
		names = append(names, s.Name)
	}
	joined := strings.Join(names, " ")
	assert.Equal(t, 1, strings.Count(joined, "test-go"), "stages: %v", names)
	assert.Equal(t, 1, strings.Count(joined, "test-ts"), "stages: %v", names)
}

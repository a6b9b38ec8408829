// Package cicd implements the DevOps phase. The project name, tech stack,
// deployment target, and repository platform select fixed pipeline-stage
// and security-gate templates; there is no computation beyond table
// lookups, mirroring how quality-gate checks are seeded from templates.
package cicd

import (
	"fmt"
	"strings"
)

// Input carries the phase inputs. All selector fields are opaque
// enum-like strings; unknown values fall back to generic templates.
type Input struct {
	ProjectName        string
	TechStack          []string
	DeploymentTarget   string
	RepositoryPlatform string
}

// Stage is one pipeline stage with its ordered commands.
type Stage struct {
	Name        string
	Description string
	Commands    []string
}

// SecurityGate is one scanning step wired into a stage.
type SecurityGate struct {
	Name     string
	Tool     string
	Stage    string
	Blocking bool
}

// Output is the phase result.
type Output struct {
	Platform         string
	ConfigPath       string
	Trigger          string
	BuildStages      []Stage
	DeploymentStages []Stage
	SecurityGates    []SecurityGate
}

// Design runs the DevOps phase.
func Design(in Input) Output {
	platform := platformTemplate(in.RepositoryPlatform)
	deploy := deployTemplate(in.DeploymentTarget)

	out := Output{
		Platform:         platform.name,
		ConfigPath:       platform.configPath,
		Trigger:          platform.trigger,
		BuildStages:      buildStages(in.TechStack),
		DeploymentStages: deploy.stages(in.ProjectName),
		SecurityGates:    securityGates(deploy.containerized),
	}
	return out
}

// buildStages assembles lint/test/build stages from the per-stack command
// tables, one entry per recognized stack string plus a shared package stage.
func buildStages(stack []string) []Stage {
	var stages []Stage
	seen := make(map[string]bool)

	for _, s := range stack {
		key := normalizeStack(s)
		tmpl, ok := stackTemplates[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		stages = append(stages, tmpl...)
	}

	if len(stages) == 0 {
		stages = append(stages, genericBuildStage)
	}

	stages = append(stages, Stage{
		Name:        "package",
		Description: "Assemble the release artifact",
		Commands:    []string{"docker build -t $IMAGE:$GIT_SHA .", "docker push $IMAGE:$GIT_SHA"},
	})
	return stages
}

func normalizeStack(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "golang":
		return "go"
	case "node", "nodejs", "javascript":
		return "typescript"
	case "py":
		return "python"
	}
	return key
}

// securityGates returns the fixed gate set; the container-image scan is
// included only for containerized deployment targets.
func securityGates(containerized bool) []SecurityGate {
	gates := []SecurityGate{
		{Name: "static-analysis", Tool: "Semgrep", Stage: "test", Blocking: true},
		{Name: "dependency-scan", Tool: "OSV-Scanner", Stage: "test", Blocking: true},
		{Name: "secret-scan", Tool: "Gitleaks", Stage: "test", Blocking: true},
	}
	if containerized {
		gates = append(gates, SecurityGate{Name: "container-scan", Tool: "Trivy", Stage: "package", Blocking: false})
	}
	return gates
}

// --- Platform templates -------------------------------------------------------

type platform struct {
	name       string
	configPath string
	trigger    string
}

var platformTemplates = map[string]platform{
	"github": {
		name:       "GitHub Actions",
		configPath: ".github/workflows/ci.yml",
		trigger:    "push to main and every pull request",
	},
	"gitlab": {
		name:       "GitLab CI",
		configPath: ".gitlab-ci.yml",
		trigger:    "push to default branch and merge requests",
	},
}

var genericPlatform = platform{
	name:       "Generic CI",
	configPath: "ci/pipeline.yml",
	trigger:    "every push to the integration branch",
}

func platformTemplate(name string) platform {
	if p, ok := platformTemplates[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return genericPlatform
}

// --- Deployment templates -----------------------------------------------------

type deployment struct {
	containerized bool
	stages        func(projectName string) []Stage
}

var deployTemplates = map[string]deployment{
	"kubernetes": {
		containerized: true,
		stages: func(projectName string) []Stage {
			return []Stage{
				{
					Name:        "deploy-staging",
					Description: "Roll out to the staging namespace",
					Commands: []string{
						fmt.Sprintf("helm upgrade --install %s ./chart -n staging --set image.tag=$GIT_SHA", slugify(projectName)),
						fmt.Sprintf("kubectl rollout status deploy/%s -n staging", slugify(projectName)),
					},
				},
				{
					Name:        "deploy-production",
					Description: "Promote the staging image to production after approval",
					Commands: []string{
						fmt.Sprintf("helm upgrade --install %s ./chart -n production --set image.tag=$GIT_SHA", slugify(projectName)),
						fmt.Sprintf("kubectl rollout status deploy/%s -n production", slugify(projectName)),
					},
				},
			}
		},
	},
	"serverless": {
		containerized: false,
		stages: func(projectName string) []Stage {
			return []Stage{
				{
					Name:        "deploy-staging",
					Description: "Deploy functions to the staging stage",
					Commands:    []string{"serverless deploy --stage staging"},
				},
				{
					Name:        "deploy-production",
					Description: "Deploy functions to production after approval",
					Commands:    []string{"serverless deploy --stage production"},
				},
			}
		},
	},
	"vm": {
		containerized: false,
		stages: func(projectName string) []Stage {
			return []Stage{
				{
					Name:        "deploy-staging",
					Description: "Provision and configure staging hosts",
					Commands:    []string{"ansible-playbook deploy.yml -l staging"},
				},
				{
					Name:        "deploy-production",
					Description: "Rolling release across production hosts",
					Commands:    []string{"ansible-playbook deploy.yml -l production --serial 1"},
				},
			}
		},
	},
}

func deployTemplate(target string) deployment {
	if d, ok := deployTemplates[strings.ToLower(strings.TrimSpace(target))]; ok {
		return d
	}
	return deployTemplates["kubernetes"]
}

var genericBuildStage = Stage{
	Name:        "build",
	Description: "Compile and test the project",
	Commands:    []string{"make build", "make test"},
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "app"
	}
	return slug
}

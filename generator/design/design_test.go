package design

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/blueprint/generator/analysis"
)

func storiesFixture() []analysis.UserStory {
	return []analysis.UserStory{
		{ID: "US-001", Role: "administrator", Goal: "manage user accounts", Benefit: "onboarding is self-service", AcceptanceCriteria: []string{"admin can create accounts"}},
		{ID: "US-002", Role: "user", Goal: "secure authentication for staff", Benefit: "access stays controlled"},
		{ID: "US-003", Role: "analyst", Goal: "generate usage reports", Benefit: "trends are visible"},
		{ID: "US-004", Role: "analyst", Goal: "export reports as files", Benefit: "data feeds downstream tools"},
	}
}

func TestDesignFeatures(t *testing.T) {
	out := Design(Input{Stories: storiesFixture(), TargetLanguage: "python", DomainName: "generic"})

	require.Len(t, out.Features, 4)

	// Ids ascend from F-001, priorities follow story-position quartiles.
	assert.Equal(t, "F-001", out.Features[0].ID)
	assert.Equal(t, PriorityP0, out.Features[0].Priority)
	assert.Equal(t, PriorityP1, out.Features[1].Priority)
	assert.Equal(t, PriorityP2, out.Features[2].Priority)
	assert.Equal(t, PriorityP3, out.Features[3].Priority)

	assert.Equal(t, "Manage User Accounts", out.Features[0].Name)
	assert.Equal(t, []string{"admin can create accounts"}, out.Features[0].AcceptanceCriteria)

	// Adjacent goals sharing a significant word form a dependency chain.
	assert.Empty(t, out.Features[2].DependsOn)
	assert.Equal(t, []string{"F-003"}, out.Features[3].DependsOn)
}

func TestDesignModules(t *testing.T) {
	out := Design(Input{Stories: storiesFixture(), TargetLanguage: "python", DomainName: "generic"})

	// One module per feature plus the shared modules; the database module
	// appears because the user module depends on it.
	require.Len(t, out.Modules, 7)
	assert.Equal(t, CommonModuleName, out.Modules[4].Name)
	assert.Equal(t, SecurityModuleName, out.Modules[5].Name)
	assert.Equal(t, DatabaseModuleName, out.Modules[6].Name)

	user := out.Modules[0]
	assert.Equal(t, "ManageUserModule", user.Name)

	// CRUD triad plus the same-named interface.
	require.Len(t, user.Classes, 4)
	assert.Equal(t, "IManageUserService", user.Classes[0].Name)
	assert.Equal(t, "interface", user.Classes[0].Kind)
	assert.Equal(t, "ManageUserService", user.Classes[1].Name)
	assert.Equal(t, "ManageUserRepository", user.Classes[2].Name)
	assert.Equal(t, "ManageUserController", user.Classes[3].Name)

	// Dependency-injection rules: user-handling modules need the database,
	// auth features need the security module, everything needs common.
	assert.Contains(t, user.DependsOn, DatabaseModuleName)
	assert.Contains(t, user.DependsOn, CommonModuleName)

	auth := out.Modules[1]
	assert.Contains(t, auth.DependsOn, SecurityModuleName)

	reports := out.Modules[2]
	assert.NotContains(t, reports.DependsOn, DatabaseModuleName)
	assert.Contains(t, reports.DependsOn, CommonModuleName)
}

func TestDesignDependenciesResolve(t *testing.T) {
	out := Design(Input{Stories: storiesFixture(), TargetLanguage: "python", DomainName: "generic"})

	// Every dependency names a module emitted in the same breakdown.
	names := make(map[string]bool, len(out.Modules))
	for _, m := range out.Modules {
		names[m.Name] = true
	}
	for _, m := range out.Modules {
		for _, dep := range m.DependsOn {
			assert.True(t, names[dep], "module %s depends on %s, which is not in the breakdown", m.Name, dep)
		}
	}
}

func TestDesignDatabaseModuleOmittedWhenUnreferenced(t *testing.T) {
	stories := []analysis.UserStory{
		{ID: "US-001", Role: "analyst", Goal: "generate usage reports", Benefit: "trends are visible"},
	}
	out := Design(Input{Stories: stories, TargetLanguage: "python", DomainName: "generic"})

	require.Len(t, out.Modules, 3)
	for _, m := range out.Modules {
		assert.NotEqual(t, DatabaseModuleName, m.Name)
	}
}

func TestDesignSecureCommunicationSpecialization(t *testing.T) {
	stories := []analysis.UserStory{
		{ID: "US-001", Role: "message sender", Goal: "send encrypted messages", Benefit: "content stays private"},
		{ID: "US-002", Role: "group administrator", Goal: "manage group membership", Benefit: "rooms stay curated"},
	}
	out := Design(Input{Stories: stories, TargetLanguage: "python", DomainName: "secure-communication"})

	require.Len(t, out.Modules, 4)

	// The encrypted-messaging feature gets the key-exchange module shape.
	session := out.Modules[0]
	var classNames []string
	for _, c := range session.Classes {
		classNames = append(classNames, c.Name)
	}
	assert.Contains(t, strings.Join(classNames, " "), "SessionService")
	foundRatchet := false
	for _, c := range session.Classes {
		for _, m := range c.Methods {
			if strings.Contains(m, "advanceRatchet") {
				foundRatchet = true
			}
		}
	}
	assert.True(t, foundRatchet, "expected ratchet methods on the session service")

	// A non-matching feature keeps the generic CRUD shape.
	assert.Equal(t, "ManageGroupModule", out.Modules[1].Name)

	// The shared security module is swapped for the crypto services.
	security := out.Modules[3]
	require.Equal(t, SecurityModuleName, security.Name)
	require.Len(t, security.Classes, 2)
	assert.Equal(t, "KeyManagementService", security.Classes[0].Name)
	assert.Equal(t, "EncryptionService", security.Classes[1].Name)
}

func TestDesignPseudocodeLanguages(t *testing.T) {
	stories := storiesFixture()[:1]

	tests := []struct {
		name     string
		language string
		marker   string
	}{
		{"python", "python", "class ManageUserService:"},
		{"go", "go", "type ManageUserService struct{}"},
		{"golang alias", "golang", "type ManageUserService struct{}"},
		{"typescript", "ts", "class ManageUserService {"},
		{"java", "java", "public class ManageUserService {"},
		{"unknown falls back to python", "cobol", "class ManageUserService:"},
		{"empty falls back to python", "", "class ManageUserService:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Design(Input{Stories: stories, TargetLanguage: tt.language, DomainName: "generic"})
			code, ok := out.Pseudocode["ManageUserModule"]
			require.True(t, ok)
			assert.Contains(t, code, tt.marker)
		})
	}
}

func TestDesignDiagramsAndScaffold(t *testing.T) {
	out := Design(Input{Stories: storiesFixture(), TargetLanguage: "go", DomainName: "generic"})

	assert.True(t, strings.HasPrefix(out.ArchitectureDiagram, "graph TD"), "architecture diagram should be mermaid")
	assert.Contains(t, out.ArchitectureDiagram, "ManageUserModule")
	assert.Contains(t, out.ComponentDiagram, CommonModuleName)
	assert.NotEmpty(t, out.Scaffold)
}

func TestDesignEmptyStories(t *testing.T) {
	out := Design(Input{TargetLanguage: "python", DomainName: "generic"})

	assert.Empty(t, out.Features)
	// Shared modules are still emitted.
	require.Len(t, out.Modules, 2)
	assert.Equal(t, CommonModuleName, out.Modules[0].Name)
	assert.Equal(t, SecurityModuleName, out.Modules[1].Name)
}

// Package design implements the tech-lead phase: it derives features from
// user stories and produces a module breakdown with class triads,
// dependency wiring, per-language pseudocode, diagram markup, and a file
// scaffold listing.
package design

import (
	"fmt"
	"strings"

	"github.com/c360studio/blueprint/generator/analysis"
	"github.com/c360studio/blueprint/generator/genid"
)

// Priority is the ordinal feature priority, P0 (highest) through P3.
type Priority string

const (
	PriorityP0 Priority = "P0"
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// ModuleType classifies a module's architectural role.
type ModuleType string

const (
	ModuleService    ModuleType = "service"
	ModuleRepository ModuleType = "repository"
	ModuleController ModuleType = "controller"
	ModuleUtility    ModuleType = "utility"
)

// Input carries the phase inputs.
type Input struct {
	Stories              []analysis.UserStory
	SecurityRequirements []analysis.SecurityRequirement
	TargetLanguage       string
	DomainName           string
}

// Feature is one unit of deliverable functionality derived from a story.
type Feature struct {
	ID                 string
	Name               string
	Priority           Priority
	Description        string
	DependsOn          []string
	AcceptanceCriteria []string
}

// Class is a class or interface with descriptive method signatures.
type Class struct {
	Name    string
	Kind    string // "class" or "interface"
	Methods []string
}

// Module groups the classes serving one feature plus its dependencies on
// other modules by name.
type Module struct {
	Name      string
	Type      ModuleType
	Classes   []Class
	DependsOn []string
}

// Output is the phase result.
type Output struct {
	Features            []Feature
	Modules             []Module
	Pseudocode          map[string]string // module name -> rendered pseudocode
	ArchitectureDiagram string
	ComponentDiagram    string
	Scaffold            []string
}

// Shared modules appended once per run.
const (
	DatabaseModuleName = "DatabaseModule"
	SecurityModuleName = "SecurityModule"
	CommonModuleName   = "CommonModule"
)

// Design runs the tech-lead phase.
func Design(in Input) Output {
	features := deriveFeatures(in.Stories)
	modules := buildModules(features, in.DomainName)

	out := Output{
		Features:   features,
		Modules:    modules,
		Pseudocode: make(map[string]string, len(modules)),
	}

	lang := normalizeLanguage(in.TargetLanguage)
	for _, m := range modules {
		out.Pseudocode[m.Name] = renderPseudocode(m, lang)
	}
	out.ArchitectureDiagram = architectureDiagram(modules)
	out.ComponentDiagram = componentDiagram(modules)
	out.Scaffold = scaffold(modules, lang)

	return out
}

// deriveFeatures maps each user story to one feature. Priority follows
// story position: the list is split into four quartiles, P0 first. A
// feature depends on its predecessor when its story goal mentions a word
// from the previous goal, which keeps chains deterministic.
func deriveFeatures(stories []analysis.UserStory) []Feature {
	ids := genid.NewSequence("F")
	features := make([]Feature, 0, len(stories))

	for i, s := range stories {
		f := Feature{
			ID:                 ids.Next(),
			Name:               featureName(s.Goal),
			Priority:           quartilePriority(i, len(stories)),
			Description:        fmt.Sprintf("As a %s, I want to %s so that %s.", s.Role, s.Goal, s.Benefit),
			AcceptanceCriteria: append([]string(nil), s.AcceptanceCriteria...),
		}
		if i > 0 && sharesSignificantWord(s.Goal, stories[i-1].Goal) {
			f.DependsOn = []string{features[i-1].ID}
		}
		features = append(features, f)
	}

	return features
}

// buildModules produces one module per feature (specialized when the
// domain calls for it), then appends the shared CommonModule and
// SecurityModule exactly once. The shared DatabaseModule is appended only
// when some module depends on it, so every dependency names a module that
// exists in the same breakdown.
func buildModules(features []Feature, domainName string) []Module {
	modules := make([]Module, 0, len(features)+3)

	needsDatabase := false
	for _, f := range features {
		base := moduleBaseName(f.Name)
		m, specialized := specialize(domainName, f, base)
		if !specialized {
			m = crudModule(base)
		}
		m.DependsOn = wireDependencies(m.Name, f.Name, m.DependsOn)
		for _, dep := range m.DependsOn {
			if dep == DatabaseModuleName {
				needsDatabase = true
			}
		}
		modules = append(modules, m)
	}

	modules = append(modules, commonModule(), securityModule(domainName))
	if needsDatabase {
		modules = append(modules, databaseModule())
	}
	return modules
}

// crudModule is the generic Service/Repository/Controller triad plus a
// same-named interface.
func crudModule(base string) Module {
	entity := strings.ToLower(base)
	return Module{
		Name: base + "Module",
		Type: ModuleService,
		Classes: []Class{
			{
				Name: "I" + base + "Service",
				Kind: "interface",
				Methods: []string{
					fmt.Sprintf("create(%s) -> %s", entity, base),
					fmt.Sprintf("get(id) -> %s", base),
					fmt.Sprintf("update(id, %s) -> %s", entity, base),
					"delete(id) -> bool",
				},
			},
			{
				Name: base + "Service",
				Kind: "class",
				Methods: []string{
					fmt.Sprintf("create(%s) -> %s", entity, base),
					fmt.Sprintf("get(id) -> %s", base),
					fmt.Sprintf("update(id, %s) -> %s", entity, base),
					"delete(id) -> bool",
					fmt.Sprintf("validate(%s) -> list[error]", entity),
				},
			},
			{
				Name: base + "Repository",
				Kind: "class",
				Methods: []string{
					fmt.Sprintf("save(%s) -> %s", entity, base),
					fmt.Sprintf("findById(id) -> %s", base),
					fmt.Sprintf("findAll(filter) -> list[%s]", base),
					"deleteById(id) -> bool",
				},
			},
			{
				Name: base + "Controller",
				Kind: "class",
				Methods: []string{
					fmt.Sprintf("handleCreate(request) -> response[%s]", base),
					fmt.Sprintf("handleGet(request) -> response[%s]", base),
					fmt.Sprintf("handleList(request) -> response[list[%s]]", base),
					"handleDelete(request) -> response[bool]",
				},
			},
		},
	}
}

// wireDependencies applies the dependency-injection rules: a module whose
// name mentions data, record, or user needs the DatabaseModule; a module
// whose feature mentions auth or security needs the SecurityModule.
func wireDependencies(moduleName, featureName string, existing []string) []string {
	deps := append([]string(nil), existing...)
	lowerModule := strings.ToLower(moduleName)
	lowerFeature := strings.ToLower(featureName)

	if containsAny(lowerModule, "data", "record", "user") {
		deps = appendUnique(deps, DatabaseModuleName)
	}
	if containsAny(lowerFeature, "auth", "security") {
		deps = appendUnique(deps, SecurityModuleName)
	}
	deps = appendUnique(deps, CommonModuleName)
	return deps
}

// databaseModule is the shared persistence module injected into every
// module that handles data, records, or users.
func databaseModule() Module {
	return Module{
		Name: DatabaseModuleName,
		Type: ModuleRepository,
		Classes: []Class{
			{
				Name:    "ConnectionPool",
				Kind:    "class",
				Methods: []string{"acquire() -> connection", "release(connection)", "healthCheck() -> status"},
			},
			{
				Name:    "TransactionManager",
				Kind:    "class",
				Methods: []string{"begin() -> transaction", "commit(transaction)", "rollback(transaction)"},
			},
			{
				Name:    "MigrationRunner",
				Kind:    "class",
				Methods: []string{"pending() -> list[migration]", "apply(migration)", "currentVersion() -> version"},
			},
		},
	}
}

func commonModule() Module {
	return Module{
		Name: CommonModuleName,
		Type: ModuleUtility,
		Classes: []Class{
			{
				Name:    "Logger",
				Kind:    "class",
				Methods: []string{"info(message, fields)", "warn(message, fields)", "error(message, fields)"},
			},
			{
				Name:    "InputValidator",
				Kind:    "class",
				Methods: []string{"validate(payload, schema) -> list[error]", "sanitize(payload) -> payload"},
			},
		},
	}
}

// securityModule is the shared auth/RBAC module, swapped for the
// domain-specialized crypto services when the domain demands it.
func securityModule(domainName string) Module {
	if build, ok := securityModuleSpecializers[domainName]; ok {
		return build()
	}
	return Module{
		Name: SecurityModuleName,
		Type: ModuleService,
		Classes: []Class{
			{
				Name:    "AuthService",
				Kind:    "class",
				Methods: []string{"login(credentials) -> session", "logout(session)", "refresh(session) -> session"},
			},
			{
				Name:    "RBACService",
				Kind:    "class",
				Methods: []string{"authorize(session, resource, action) -> bool", "grantRole(user, role)", "revokeRole(user, role)"},
			},
		},
	}
}

// --- Naming helpers ----------------------------------------------------------

// stopwords excluded when deriving feature and module names from goals.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "for": true, "in": true,
	"my": true, "of": true, "on": true, "so": true, "that": true,
	"the": true, "to": true, "with": true,
}

// featureName derives a short title from a story goal: the first three
// significant words, title-cased.
func featureName(goal string) string {
	words := significantWords(goal, 3)
	if len(words) == 0 {
		return "Core Capability"
	}
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// moduleBaseName derives the PascalCase base used for class names: the
// first two significant words of the feature name.
func moduleBaseName(feature string) string {
	words := significantWords(feature, 2)
	if len(words) == 0 {
		return "Core"
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(titleWord(w))
	}
	return b.String()
}

func significantWords(s string, max int) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,;:!?\"'()")
		if w == "" || stopwords[w] {
			continue
		}
		words = append(words, w)
		if len(words) == max {
			break
		}
	}
	return words
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

func quartilePriority(index, total int) Priority {
	if total == 0 {
		return PriorityP3
	}
	switch (index * 4) / total {
	case 0:
		return PriorityP0
	case 1:
		return PriorityP1
	case 2:
		return PriorityP2
	default:
		return PriorityP3
	}
}

func sharesSignificantWord(a, b string) bool {
	set := make(map[string]bool)
	for _, w := range significantWords(b, 8) {
		set[w] = true
	}
	for _, w := range significantWords(a, 8) {
		if set[w] {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

package design

import (
	"fmt"
	"strings"
)

// Diagrams are emitted as mermaid markup so they render inline in the
// exported Markdown documents.

// architectureDiagram renders the module dependency graph.
func architectureDiagram(modules []Module) string {
	var b strings.Builder
	b.WriteString("graph TD\n")
	for _, m := range modules {
		fmt.Fprintf(&b, "    %s[%s]\n", nodeID(m.Name), m.Name)
	}
	for _, m := range modules {
		for _, dep := range m.DependsOn {
			fmt.Fprintf(&b, "    %s --> %s\n", nodeID(m.Name), nodeID(dep))
		}
	}
	return b.String()
}

// componentDiagram lists each module's classes as a subgraph.
func componentDiagram(modules []Module) string {
	var b strings.Builder
	b.WriteString("graph LR\n")
	for _, m := range modules {
		fmt.Fprintf(&b, "    subgraph %s\n", m.Name)
		for _, c := range m.Classes {
			fmt.Fprintf(&b, "        %s_%s[%s]\n", nodeID(m.Name), nodeID(c.Name), c.Name)
		}
		b.WriteString("    end\n")
	}
	return b.String()
}

func nodeID(name string) string {
	return strings.NewReplacer(" ", "", "-", "", ".", "").Replace(name)
}

// scaffold lists the proposed file/folder layout for the target language.
// Entries ending in "/" are directories.
func scaffold(modules []Module, lang string) []string {
	layout, ok := scaffoldLayouts[lang]
	if !ok {
		layout = scaffoldLayouts[DefaultLanguage]
	}

	entries := append([]string(nil), layout.roots...)
	for _, m := range modules {
		base := strings.TrimSuffix(m.Name, "Module")
		entries = append(entries, layout.moduleFiles(strings.ToLower(base))...)
	}
	entries = append(entries, layout.tail...)
	return entries
}

type scaffoldLayout struct {
	roots       []string
	moduleFiles func(base string) []string
	tail        []string
}

var scaffoldLayouts = map[string]scaffoldLayout{
	"python": {
		roots: []string{"pyproject.toml", "src/", "tests/"},
		moduleFiles: func(base string) []string {
			return []string{
				fmt.Sprintf("src/%s/__init__.py", base),
				fmt.Sprintf("src/%s/service.py", base),
				fmt.Sprintf("src/%s/repository.py", base),
				fmt.Sprintf("tests/test_%s.py", base),
			}
		},
		tail: []string{"src/common/logging.py", "src/common/validation.py"},
	},
	"go": {
		roots: []string{"go.mod", "cmd/server/main.go", "internal/"},
		moduleFiles: func(base string) []string {
			return []string{
				fmt.Sprintf("internal/%s/service.go", base),
				fmt.Sprintf("internal/%s/repository.go", base),
				fmt.Sprintf("internal/%s/handler.go", base),
				fmt.Sprintf("internal/%s/service_test.go", base),
			}
		},
		tail: []string{"internal/platform/logging.go", "internal/platform/validation.go"},
	},
	"typescript": {
		roots: []string{"package.json", "tsconfig.json", "src/", "test/"},
		moduleFiles: func(base string) []string {
			return []string{
				fmt.Sprintf("src/%s/%s.service.ts", base, base),
				fmt.Sprintf("src/%s/%s.repository.ts", base, base),
				fmt.Sprintf("src/%s/%s.controller.ts", base, base),
				fmt.Sprintf("test/%s.spec.ts", base),
			}
		},
		tail: []string{"src/common/logger.ts", "src/common/validator.ts"},
	},
	"java": {
		roots: []string{"pom.xml", "src/main/java/", "src/test/java/"},
		moduleFiles: func(base string) []string {
			return []string{
				fmt.Sprintf("src/main/java/app/%s/%sService.java", base, titleWord(base)),
				fmt.Sprintf("src/main/java/app/%s/%sRepository.java", base, titleWord(base)),
				fmt.Sprintf("src/main/java/app/%s/%sController.java", base, titleWord(base)),
				fmt.Sprintf("src/test/java/app/%s/%sServiceTest.java", base, titleWord(base)),
			}
		},
		tail: []string{"src/main/java/app/common/Logger.java", "src/main/java/app/common/InputValidator.java"},
	},
}

package design

import (
	"fmt"
	"strings"
)

// Pseudocode is rendered from a fixed template per target language. The
// output follows the language's surface conventions only; it is
// descriptive text, never compiled.

// DefaultLanguage is used when the requested target language has no
// template.
const DefaultLanguage = "python"

// languageRenderers maps a normalized language tag to its template.
var languageRenderers = map[string]func(Module) string{
	"python":     renderPython,
	"go":         renderGo,
	"typescript": renderTypeScript,
	"java":       renderJava,
}

// normalizeLanguage lowercases the tag and folds common aliases; unknown
// tags fall back to the default language.
func normalizeLanguage(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "go", "golang":
		return "go"
	case "typescript", "ts":
		return "typescript"
	case "java":
		return "java"
	case "python", "py", "":
		return "python"
	default:
		return DefaultLanguage
	}
}

func renderPseudocode(m Module, lang string) string {
	render, ok := languageRenderers[lang]
	if !ok {
		render = languageRenderers[DefaultLanguage]
	}
	return render(m)
}

func renderPython(m Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n", m.Name, m.Type)
	for _, c := range m.Classes {
		if c.Kind == "interface" {
			fmt.Fprintf(&b, "\nclass %s(Protocol):\n", c.Name)
		} else {
			fmt.Fprintf(&b, "\nclass %s:\n", c.Name)
		}
		for _, method := range c.Methods {
			fmt.Fprintf(&b, "    def %s:\n        ...\n", pythonSignature(method))
		}
	}
	return b.String()
}

func renderGo(m Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s (%s)\n", m.Name, m.Type)
	for _, c := range m.Classes {
		if c.Kind == "interface" {
			fmt.Fprintf(&b, "\ntype %s interface {\n", c.Name)
			for _, method := range c.Methods {
				fmt.Fprintf(&b, "\t%s\n", goSignature(method))
			}
			b.WriteString("}\n")
			continue
		}
		fmt.Fprintf(&b, "\ntype %s struct{}\n", c.Name)
		for _, method := range c.Methods {
			fmt.Fprintf(&b, "\nfunc (s *%s) %s {\n\t// TODO: implement\n}\n", c.Name, goSignature(method))
		}
	}
	return b.String()
}

func renderTypeScript(m Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s (%s)\n", m.Name, m.Type)
	for _, c := range m.Classes {
		keyword := "class"
		if c.Kind == "interface" {
			keyword = "interface"
		}
		fmt.Fprintf(&b, "\n%s %s {\n", keyword, c.Name)
		for _, method := range c.Methods {
			if c.Kind == "interface" {
				fmt.Fprintf(&b, "  %s;\n", tsSignature(method))
			} else {
				fmt.Fprintf(&b, "  %s { /* ... */ }\n", tsSignature(method))
			}
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func renderJava(m Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s (%s)\n", m.Name, m.Type)
	for _, c := range m.Classes {
		keyword := "public class"
		if c.Kind == "interface" {
			keyword = "public interface"
		}
		fmt.Fprintf(&b, "\n%s %s {\n", keyword, c.Name)
		for _, method := range c.Methods {
			if c.Kind == "interface" {
				fmt.Fprintf(&b, "    Object %s;\n", javaSignature(method))
			} else {
				fmt.Fprintf(&b, "    public Object %s { return null; }\n", javaSignature(method))
			}
		}
		b.WriteString("}\n")
	}
	return b.String()
}

// --- Signature shaping --------------------------------------------------------

// Method entries use the descriptive form "name(args) -> result". Each
// renderer reshapes that into its language's surface syntax.

func splitSignature(method string) (name string, result string) {
	parts := strings.SplitN(method, "->", 2)
	name = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		result = strings.TrimSpace(parts[1])
	}
	return name, result
}

func pythonSignature(method string) string {
	name, result := splitSignature(method)
	name = strings.Replace(name, "(", "(self, ", 1)
	name = strings.Replace(name, "(self, )", "(self)", 1)
	if result == "" {
		return name + " -> None"
	}
	return name + " -> " + result
}

func goSignature(method string) string {
	name, result := splitSignature(method)
	name = titleWord(name)
	if result == "" {
		return name + " error"
	}
	return fmt.Sprintf("%s (%s, error)", name, result)
}

func tsSignature(method string) string {
	name, result := splitSignature(method)
	if result == "" {
		return name + ": void"
	}
	return name + ": " + result
}

func javaSignature(method string) string {
	name, _ := splitSignature(method)
	return name
}

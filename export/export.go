// Package export renders phase outputs as Markdown documents. Every
// renderer is a pure function over its input; nothing here touches the
// filesystem.
package export

import (
	"fmt"
	"strings"
)

func heading(sb *strings.Builder, level int, title string) {
	for i := 0; i < level; i++ {
		sb.WriteString("#")
	}
	sb.WriteString(" ")
	sb.WriteString(title)
	sb.WriteString("\n\n")
}

func bullets(sb *strings.Builder, items []string) {
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func field(sb *strings.Builder, name, value string) {
	sb.WriteString("- **")
	sb.WriteString(name)
	sb.WriteString(":** ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

func tableRow(sb *strings.Builder, cells ...string) {
	sb.WriteString("|")
	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(strings.ReplaceAll(c, "|", "\\|"))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

func tableHeader(sb *strings.Builder, cells ...string) {
	tableRow(sb, cells...)
	sb.WriteString("|")
	for range cells {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")
}

func codeBlock(sb *strings.Builder, lang, body string) {
	sb.WriteString("```")
	sb.WriteString(lang)
	sb.WriteString("\n")
	sb.WriteString(strings.TrimRight(body, "\n"))
	sb.WriteString("\n```\n\n")
}

func percent(v int) string {
	return fmt.Sprintf("%d%%", v)
}

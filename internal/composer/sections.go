package composer

import "strings"

type section struct {
	title   string
	content string
}

func appendSection(list []section, title, content string) []section {
	if strings.TrimSpace(content) == "" {
		return list
	}
	return append(list, section{title: title, content: content})
}

func renderSections(sections []section) string {
	var out strings.Builder
	for i, s := range sections {
		if i > 0 {
			out.WriteString("\n\n")
		}
		out.WriteString("### ")
		out.WriteString(s.title)
		out.WriteString("\n\n")
		out.WriteString(s.content)
	}
	return out.String()
}

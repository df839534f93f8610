package dirsync

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header of a synced file:
//
//	---
//	title: Drawing UML with emacs
//	tags: [uml, emacs]
//	---
type frontMatter struct {
	Title string  `yaml:"title"`
	Tags  tagList `yaml:"tags"`
}

// tagList accepts a YAML sequence or a comma separated string.
type tagList []string

func (t *tagList) UnmarshalYAML(node *yaml.Node) error {
	var raw []string
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&raw); err != nil {
			return err
		}
	case yaml.ScalarNode:
		raw = strings.Split(strings.Trim(node.Value, "[]"), ",")
	default:
		return fmt.Errorf("line %d: tags must be a list", node.Line)
	}

	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = nil
	}
	*t = tags
	return nil
}

// splitFrontMatter separates a leading front matter block from the body.
// Text without a closed block is all body.
func splitFrontMatter(text string) (frontMatter, string, error) {
	var fm frontMatter

	lines := strings.SplitAfter(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return fm, text, nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "---" {
			continue
		}
		header := strings.Join(lines[1:i], "")
		body := strings.Join(lines[i+1:], "")
		if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
			return frontMatter{}, text, fmt.Errorf("front matter: %w", err)
		}
		fm.Title = strings.TrimSpace(fm.Title)
		return fm, body, nil
	}
	return fm, text, nil
}

// stripControl drops control characters other than whitespace.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r', '\v', '\f':
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

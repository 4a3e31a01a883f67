package media

import "strings"

// ParseTags splits a comma-separated tag string, trimming whitespace around
// each entry and dropping entries that are empty after trimming.
func ParseTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// NewTags maps parsed tag names onto rows for an asset create.
func NewTags(names []string) []Tag {
	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, Tag{Name: name})
	}
	return tags
}

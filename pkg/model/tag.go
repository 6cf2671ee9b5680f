package model

import (
	"slices"
	"strings"

	"gorm.io/gorm"
)

type Tag struct {
	gorm.Model
	Tag string `gorm:"uniqueIndex"`
}

// TagSet is a normalized set of tags: trimmed, lower-cased, without duplicates or empty entries.
type TagSet map[string]struct{}

func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))

	for _, tag := range tags {
		normalized := NormalizeTag(tag)
		if len(normalized) > 0 {
			set[normalized] = struct{}{}
		}
	}

	return set
}

// ParseTagList builds a TagSet from a comma separated list such as "dog-friendly, Patio".
func ParseTagList(list string) TagSet {
	return NewTagSet(strings.Split(list, ",")...)
}

func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// Values returns the tags in lexical order.
func (t TagSet) Values() []string {
	values := make([]string, 0, len(t))
	for tag := range t {
		values = append(values, tag)
	}

	slices.Sort(values)

	return values
}

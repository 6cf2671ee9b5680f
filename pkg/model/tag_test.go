package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"droscher.com/BreweryDB/pkg/model"
)

func TestNewTagSet_NormalizesAndDeduplicates(t *testing.T) {
	tags := model.NewTagSet("Dog-Friendly", "dog-friendly ", "", "  ", "PATIO")

	assert.Len(t, tags, 2)
	assert.Equal(t, []string{"dog-friendly", "patio"}, tags.Values())
}

func TestParseTagList_SplitsOnComma(t *testing.T) {
	tags := model.ParseTagList("dog-friendly, Patio,,outdoor")

	assert.Equal(t, []string{"dog-friendly", "outdoor", "patio"}, tags.Values())
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabularySeedAndGrowth(t *testing.T) {
	v := NewVocabulary([]string{"Recipes", "Travel"})
	assert.Equal(t, 2, v.Len())
	assert.True(t, v.Contains("Recipes"))

	v.Add("Automotive")
	v.Add("Recipes") // re-adding is absorbed
	v.Add("")        // empty names never enter

	assert.Equal(t, []string{"Recipes", "Travel", "Automotive"}, v.Names())
	assert.Equal(t, "Recipes, Travel, Automotive", v.Joined())
}

func TestVocabularyEmpty(t *testing.T) {
	v := NewVocabulary(nil)
	assert.Zero(t, v.Len())
	assert.Empty(t, v.Names())
	assert.Equal(t, "", v.Joined())
	assert.False(t, v.Contains("anything"))
}

func TestVocabularyNamesReturnsCopy(t *testing.T) {
	v := NewVocabulary([]string{"Recipes"})
	names := v.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"Recipes"}, v.Names())
}

package models_test

import (
	"testing"

	"github.com/sanctuary-builder/backend/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParseLocale(t *testing.T) {
	loc, err := models.ParseLocale("en")
	assert.NoError(t, err)
	assert.Equal(t, models.LocaleEN, loc)

	loc, err = models.ParseLocale("zh")
	assert.NoError(t, err)
	assert.Equal(t, models.LocaleZH, loc)

	_, err = models.ParseLocale("fr")
	assert.Error(t, err)

	_, err = models.ParseLocale("")
	assert.Error(t, err)
}

func TestDevotionalLocalize(t *testing.T) {
	d := models.Devotional{
		Day:       "2025-01-01",
		TitleEN:   "New Beginnings",
		TitleZH:   "新的开始",
		PassageEN: strPtr("Genesis 1"),
		PassageZH: strPtr("创世记 1"),
		ContentEN: "In the beginning...",
		ContentZH: "起初...",
	}

	en := d.Localize(models.LocaleEN)
	assert.Equal(t, "New Beginnings", en.Title)
	assert.Equal(t, "Genesis 1", *en.Passage)
	assert.Equal(t, "In the beginning...", en.Content)
	assert.Nil(t, en.ReflectionPrompt)

	zh := d.Localize(models.LocaleZH)
	assert.Equal(t, "新的开始", zh.Title)
	assert.Equal(t, "创世记 1", *zh.Passage)
	assert.Equal(t, "起初...", zh.Content)
}

func TestProductLocalize(t *testing.T) {
	p := models.Product{
		SKU:           "journal-1",
		TitleEN:       "Prayer Journal",
		TitleZH:       "祷告日记",
		DescriptionEN: strPtr("A guided journal"),
		Price:         12.99,
		Currency:      "USD",
		Status:        "active",
	}

	en := p.Localize(models.LocaleEN)
	assert.Equal(t, "Prayer Journal", en.Title)
	assert.Equal(t, 12.99, en.Price)

	zh := p.Localize(models.LocaleZH)
	assert.Equal(t, "祷告日记", zh.Title)
	// No zh description provided, projection carries the nil through.
	assert.Nil(t, zh.Description)
}

func TestRewardLocalize(t *testing.T) {
	r := models.Reward{
		RewardType: "streak_7",
		NameEN:     "One Week Faithful",
		NameZH:     "坚持一周",
		Points:     50,
	}

	assert.Equal(t, "One Week Faithful", r.Localize(models.LocaleEN).Name)
	assert.Equal(t, "坚持一周", r.Localize(models.LocaleZH).Name)
}

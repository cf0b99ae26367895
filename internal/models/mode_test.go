package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("praise")
	require.NoError(t, err)
	assert.Equal(t, ModePraise, mode)

	mode, err = ParseMode("criticism")
	require.NoError(t, err)
	assert.Equal(t, ModeCriticism, mode)

	_, err = ParseMode("Praise")
	assert.Error(t, err)
}

func TestModeSymbol(t *testing.T) {
	assert.Equal(t, "✓", ModePraise.Symbol())
	assert.Equal(t, "✗", ModeCriticism.Symbol())
	assert.Equal(t, PraiseColor, ModePraise.Color())
	assert.Equal(t, CriticismColor, ModeCriticism.Color())
}

func TestPreferences_Validate(t *testing.T) {
	assert.NoError(t, DefaultPreferences().Validate())

	p := DefaultPreferences()
	p.Language = "fr_FR"
	var verr *ValidationError
	require.ErrorAs(t, p.Validate(), &verr)
	assert.Equal(t, "Language", verr.Field)

	p = DefaultPreferences()
	p.TimeFormat = "时"
	assert.Error(t, p.Validate())
}

func TestPreferences_WithDefaults(t *testing.T) {
	p := Preferences{Language: LangAmericanEnglish}.WithDefaults()
	assert.Equal(t, Preferences{Language: LangAmericanEnglish, DateFormat: DateYMD, TimeFormat: TimeHMS}, p)
}

func TestLanguageTag(t *testing.T) {
	assert.Equal(t, "en-GB", LangBritishEnglish.Tag().String())
	assert.Equal(t, "zh-Hant", LangTraditionalChinese.Tag().String())
	assert.Equal(t, "und", Language("xx").Tag().String())
}

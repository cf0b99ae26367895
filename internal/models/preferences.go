package models

import (
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// DateFormat orders the calendar fields of the clock label
type DateFormat string

const (
	DateYMD DateFormat = "年月日"
	DateMDY DateFormat = "月日年"
	DateDMY DateFormat = "日月年"
)

// TimeFormat chooses whether the clock shows seconds
type TimeFormat string

const (
	TimeHMS TimeFormat = "时分秒"
	TimeHM  TimeFormat = "时分"
)

// Language is a locale code as used for locale file names
type Language string

const (
	LangSimplifiedChinese  Language = "zh_CN"
	LangTraditionalChinese Language = "zh_TW"
	LangAmericanEnglish    Language = "en_US"
	LangBritishEnglish     Language = "en_UK"
)

// LanguageOption pairs a locale code with its display name in the preferences dialog
type LanguageOption struct {
	Code  Language
	Label string
	Tag   language.Tag
}

var Languages = []LanguageOption{
	{LangSimplifiedChinese, "中文简体", language.SimplifiedChinese},
	{LangTraditionalChinese, "中文繁體", language.TraditionalChinese},
	{LangAmericanEnglish, "English US", language.AmericanEnglish},
	{LangBritishEnglish, "English UK", language.BritishEnglish},
}

var (
	DateFormats = []DateFormat{DateYMD, DateMDY, DateDMY}
	TimeFormats = []TimeFormat{TimeHMS, TimeHM}
)

// Tag returns the BCP 47 tag for a locale code, or und when unknown
func (l Language) Tag() language.Tag {
	for _, option := range Languages {
		if option.Code == l {
			return option.Tag
		}
	}
	return language.Und
}

// Preferences is the persisted user preference record
type Preferences struct {
	Language   Language   `json:"language" validate:"oneof=zh_CN zh_TW en_US en_UK"`
	DateFormat DateFormat `json:"date_format" validate:"oneof=年月日 月日年 日月年"`
	TimeFormat TimeFormat `json:"time_format" validate:"oneof=时分秒 时分"`
}

// DefaultPreferences is Simplified Chinese with year-month-day dates and
// seconds on the clock.
func DefaultPreferences() Preferences {
	return Preferences{
		Language:   LangSimplifiedChinese,
		DateFormat: DateYMD,
		TimeFormat: TimeHMS,
	}
}

var preferenceValidator = validator.New()

// Validate checks every field against its enumerated values
func (p Preferences) Validate() error {
	if err := preferenceValidator.Struct(p); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return NewValidationError(first.Field(), first.Value(), "not an allowed value")
		}
		return err
	}
	return nil
}

// WithDefaults fills empty fields from DefaultPreferences
func (p Preferences) WithDefaults() Preferences {
	defaults := DefaultPreferences()
	if p.Language == "" {
		p.Language = defaults.Language
	}
	if p.DateFormat == "" {
		p.DateFormat = defaults.DateFormat
	}
	if p.TimeFormat == "" {
		p.TimeFormat = defaults.TimeFormat
	}
	return p
}

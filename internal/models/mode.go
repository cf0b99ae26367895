package models

import "image/color"

// Mode is the evaluation polarity a click applies
type Mode string

const (
	ModePraise    Mode = "praise"
	ModeCriticism Mode = "criticism"
)

var (
	PraiseColor    = color.NRGBA{R: 0, G: 128, B: 0, A: 255}
	CriticismColor = color.NRGBA{R: 220, G: 0, B: 0, A: 255}
)

// ParseMode accepts only the two enumerated modes
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePraise, ModeCriticism:
		return Mode(s), nil
	}
	return "", NewValidationError("mode", s, "must be praise or criticism")
}

// Valid reports whether m is praise or criticism
func (m Mode) Valid() bool {
	return m == ModePraise || m == ModeCriticism
}

// Symbol is the mark shown next to a flagged student
func (m Mode) Symbol() string {
	if m == ModeCriticism {
		return "✗"
	}
	return "✓"
}

// Color is green for praise and red for criticism
func (m Mode) Color() color.Color {
	if m == ModeCriticism {
		return CriticismColor
	}
	return PraiseColor
}

// Subjects lists the selectable subject labels in display order
var Subjects = []string{
	"语文", "数学", "英语", "物理", "化学", "政治",
	"历史", "地理", "生物", "请输入文本", "广告位招租",
}

// DefaultSubject is used for new boards and for session files without a subject
func DefaultSubject() string {
	return Subjects[0]
}

// IsSubject reports whether s is one of Subjects
func IsSubject(s string) bool {
	for _, subject := range Subjects {
		if subject == s {
			return true
		}
	}
	return false
}

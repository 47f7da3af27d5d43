package progression

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/GemClicker_Go/internal/domain"
)

var languageTags = map[domain.Language]language.Tag{
	domain.LanguageEnglish:    language.English,
	domain.LanguagePortuguese: language.Portuguese,
	domain.LanguageSpanish:    language.Spanish,
}

// LanguageTag maps a persisted language to its x/text tag. Unknown values
// fall back to English.
func LanguageTag(lang domain.Language) language.Tag {
	if tag, ok := languageTags[lang]; ok {
		return tag
	}
	return language.English
}

// FormatEffect renders an effect descriptor at a level, e.g. "+20% Click Power"
// for linear_percent or "4% Critical Chance" for chance_percent. Numbers use
// the locale's decimal separator.
func FormatEffect(e domain.Effect, level int, tag language.Tag) string {
	p := message.NewPrinter(tag)
	pct := e.Magnitude(level) * 100
	pct = math.Round(pct*10) / 10

	var num string
	if pct == math.Trunc(pct) {
		num = p.Sprintf("%.0f", pct)
	} else {
		num = p.Sprintf("%.1f", pct)
	}

	switch e.Kind {
	case domain.EffectChancePercent:
		return num + "% " + e.Label
	default:
		return "+" + num + "% " + e.Label
	}
}

// BranchTitle returns the display title of a skill branch.
func BranchTitle(b domain.SkillBranch, tag language.Tag) string {
	return cases.Title(tag).String(string(b))
}

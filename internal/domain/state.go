package domain

import (
	"maps"
	"slices"
	"time"
)

// Language is the UI language persisted with the save.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguagePortuguese Language = "pt"
	LanguageSpanish    Language = "es"
)

// DefaultLanguage matches the original game's initial state.
const DefaultLanguage = LanguagePortuguese

// SupportedLanguages lists the languages in preference order.
var SupportedLanguages = []Language{LanguagePortuguese, LanguageEnglish, LanguageSpanish}

// IsValid reports whether l is a supported language.
func (l Language) IsValid() bool {
	return slices.Contains(SupportedLanguages, l)
}

// State is the progression save aggregate.
//
// Handlers treat a State as a value: they return a modified copy and never
// mutate maps or slices reachable from their input. Use Clone before mutating.
type State struct {
	Currency                 Coins
	LifetimeCurrency         Coins
	LifetimeCurrencyPrestige Coins
	ClickCount               int64
	StartTime                time.Time
	Upgrades                 map[string]int
	CompletedQuests          []string
	UnlockedAchievements     []string
	PrestigeLevel            int
	SkillPoints              int
	Skills                   map[string]int
	Language                 Language
	LastSaveTime             time.Time
}

// NewState returns the default state for a fresh game started at now.
func NewState(now time.Time) State {
	return State{
		StartTime:            now,
		Upgrades:             map[string]int{},
		CompletedQuests:      []string{},
		UnlockedAchievements: []string{},
		Skills:               map[string]int{},
		Language:             DefaultLanguage,
		LastSaveTime:         now,
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Upgrades = cloneLevels(s.Upgrades)
	c.Skills = cloneLevels(s.Skills)
	c.CompletedQuests = append([]string{}, s.CompletedQuests...)
	c.UnlockedAchievements = append([]string{}, s.UnlockedAchievements...)
	return c
}

func cloneLevels(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return maps.Clone(m)
}

// UpgradeLevel returns the owned level of an upgrade (0 when never bought).
func (s State) UpgradeLevel(id string) int {
	return s.Upgrades[id]
}

// SkillLevel returns the level of a skill node (0 when never bought).
func (s State) SkillLevel(id string) int {
	return s.Skills[id]
}

// TotalUpgradeLevels sums the levels of every owned upgrade.
func (s State) TotalUpgradeLevels() int {
	total := 0
	for _, lvl := range s.Upgrades {
		total += lvl
	}
	return total
}

// HasCompletedQuest reports whether the quest was claimed in this run.
func (s State) HasCompletedQuest(id string) bool {
	return slices.Contains(s.CompletedQuests, id)
}

// HasAchievement reports whether the achievement is unlocked.
func (s State) HasAchievement(id string) bool {
	return slices.Contains(s.UnlockedAchievements, id)
}

// PlaySeconds returns whole seconds elapsed since StartTime.
func (s State) PlaySeconds(now time.Time) int64 {
	if s.StartTime.IsZero() || now.Before(s.StartTime) {
		return 0
	}
	return int64(now.Sub(s.StartTime) / time.Second)
}

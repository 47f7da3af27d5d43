package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
)

// document is the persisted save layout. Timestamps are epoch milliseconds and
// currency amounts are plain JSON numbers of coins. prestigeCurrency is always
// written as 0 and ignored on load.
type document struct {
	Currency                 domain.Coins    `json:"currency"`
	LifetimeCurrency         domain.Coins    `json:"lifetimeCurrency"`
	LifetimeCurrencyPrestige domain.Coins    `json:"lifetimeCurrencyPrestige"`
	ClickCount               int64           `json:"clickCount"`
	StartTime                int64           `json:"startTime"`
	Upgrades                 map[string]int  `json:"upgrades"`
	CompletedQuests          []string        `json:"completedQuests"`
	UnlockedAchievements     []string        `json:"unlockedAchievements"`
	PrestigeLevel            int             `json:"prestigeLevel"`
	PrestigeCurrency         int             `json:"prestigeCurrency"`
	SkillPoints              int             `json:"skillPoints"`
	Skills                   map[string]int  `json:"skills"`
	Language                 domain.Language `json:"language"`
	LastSaveTime             int64           `json:"lastSaveTime"`
}

// Encode serializes a state into the save layout.
func Encode(st domain.State) ([]byte, error) {
	st = st.Clone()
	doc := document{
		Currency:                 st.Currency,
		LifetimeCurrency:         st.LifetimeCurrency,
		LifetimeCurrencyPrestige: st.LifetimeCurrencyPrestige,
		ClickCount:               st.ClickCount,
		StartTime:                st.StartTime.UnixMilli(),
		Upgrades:                 st.Upgrades,
		CompletedQuests:          st.CompletedQuests,
		UnlockedAchievements:     st.UnlockedAchievements,
		PrestigeLevel:            st.PrestigeLevel,
		SkillPoints:              st.SkillPoints,
		Skills:                   st.Skills,
		Language:                 st.Language,
		LastSaveTime:             st.LastSaveTime.UnixMilli(),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode save: %w", err)
	}
	return data, nil
}

// Report describes what Decode had to repair.
type Report struct {
	// Missing lists keys absent from the document (or null).
	Missing []string
	// Invalid lists keys, or key.entry for map entries, whose value was replaced.
	Invalid []string
	// SkillPointsRebuilt is set when skillPoints was back-computed from skills.
	SkillPointsRebuilt bool
}

// Decode parses a save and migrates it into the current shape.
//
// Each field is sanitized on its own: a missing or malformed value falls back
// to the default for a new game started at now, negative numbers become zero,
// skill levels are clamped to the node's max level, and repeated set entries
// are collapsed. Unknown keys are ignored. Only input that is not a JSON
// object fails, with domain.ErrCorruptSave.
func Decode(data []byte, cat *catalog.Catalog, now time.Time) (domain.State, Report, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.NewState(now), Report{}, fmt.Errorf("%w: %v", domain.ErrCorruptSave, err)
	}
	if fields == nil {
		return domain.NewState(now), Report{}, fmt.Errorf("%w: document is null", domain.ErrCorruptSave)
	}

	d := &decoder{fields: fields}
	st := domain.NewState(now)

	st.Currency = d.coins(keyCurrency)
	st.LifetimeCurrency = max(d.coins(keyLifetimeCurrency), st.Currency)
	st.LifetimeCurrencyPrestige = d.coins(keyLifetimeCurrencyPrestige)
	st.ClickCount = d.count(keyClickCount, math.MaxInt64)
	st.StartTime = d.timestamp(keyStartTime, now)
	st.LastSaveTime = d.timestamp(keyLastSaveTime, now)
	st.Upgrades = d.levels(keyUpgrades)
	st.CompletedQuests = d.set(keyCompletedQuests)
	st.UnlockedAchievements = d.set(keyUnlockedAchievements)
	st.PrestigeLevel = int(d.count(keyPrestigeLevel, math.MaxInt32))
	st.Skills = d.skills(cat)
	st.Language = d.language()

	if sp, ok := d.number(keySkillPoints); ok {
		st.SkillPoints = int(whole(sp, math.MaxInt32))
	} else {
		st.SkillPoints = rebuildSkillPoints(st.PrestigeLevel, st.Skills, cat)
		d.report.SkillPointsRebuilt = true
	}

	return st, d.report, nil
}

// rebuildSkillPoints is max(0, prestigeLevel - spent) for saves that predate
// skill points. Nodes the catalog no longer knows cost domain.UnknownSkillCost.
func rebuildSkillPoints(prestigeLevel int, skills map[string]int, cat *catalog.Catalog) int {
	spent := 0
	for id, lvl := range skills {
		spent += lvl * cat.SkillCost(id)
	}
	return max(0, prestigeLevel-spent)
}

type decoder struct {
	fields map[string]json.RawMessage
	report Report
}

func (d *decoder) raw(key string) (json.RawMessage, bool) {
	raw, ok := d.fields[key]
	if !ok || isNull(raw) {
		d.report.Missing = append(d.report.Missing, key)
		return nil, false
	}
	return raw, true
}

func (d *decoder) invalid(key string) {
	d.report.Invalid = append(d.report.Invalid, key)
}

// number parses a non-negative JSON number. Negative values are clamped to
// zero and still count as present.
func (d *decoder) number(key string) (decimal.Decimal, bool) {
	raw, ok := d.raw(key)
	if !ok {
		return decimal.Zero, false
	}
	n, ok, clamped := parseNumber(raw)
	if !ok {
		d.invalid(key)
		return decimal.Zero, false
	}
	if clamped || n.IsNegative() {
		d.invalid(key)
	}
	if n.IsNegative() {
		return decimal.Zero, true
	}
	return n, true
}

func (d *decoder) coins(key string) domain.Coins {
	n, _ := d.number(key)
	return domain.CoinsFromDecimal(n)
}

func (d *decoder) count(key string, limit int64) int64 {
	n, _ := d.number(key)
	return whole(n, limit)
}

func (d *decoder) timestamp(key string, fallback time.Time) time.Time {
	n, ok := d.number(key)
	if !ok || !n.IsPositive() {
		return fallback
	}
	return time.UnixMilli(whole(n, math.MaxInt64)).UTC()
}

// levels parses an id -> level map, dropping entries that are not positive numbers.
func (d *decoder) levels(key string) map[string]int {
	out := map[string]int{}
	raw, ok := d.raw(key)
	if !ok {
		return out
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		d.invalid(key)
		return out
	}
	for id, v := range entries {
		n, ok, clamped := parseNumber(v)
		if !ok || n.IsNegative() {
			d.invalid(key + "." + id)
			continue
		}
		if clamped {
			d.invalid(key + "." + id)
		}
		if lvl := int(whole(n, math.MaxInt32)); lvl > 0 {
			out[id] = lvl
		}
	}
	return out
}

func (d *decoder) skills(cat *catalog.Catalog) map[string]int {
	skills := d.levels(keySkills)
	for id, lvl := range skills {
		node, ok := cat.Skill(id)
		if ok && lvl > node.MaxLevel {
			skills[id] = node.MaxLevel
			d.invalid(keySkills + "." + id)
		}
	}
	return skills
}

// set parses a list of ids in order, skipping non-strings and repeats.
func (d *decoder) set(key string) []string {
	out := []string{}
	raw, ok := d.raw(key)
	if !ok {
		return out
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		d.invalid(key)
		return out
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		var id string
		if err := json.Unmarshal(item, &id); err != nil || id == "" {
			d.invalid(key)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (d *decoder) language() domain.Language {
	raw, ok := d.raw(keyLanguage)
	if !ok {
		return domain.DefaultLanguage
	}
	var lang domain.Language
	if err := json.Unmarshal(raw, &lang); err != nil || !lang.IsValid() {
		d.invalid(keyLanguage)
		return domain.DefaultLanguage
	}
	return lang
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// maxNumberDigits bounds the integer digits of a parsed number. Every field
// saturates well below it.
const maxNumberDigits = 20

// parseNumber accepts JSON numbers only. Quoted numbers are rejected like any
// other non-number. Numbers with more than maxNumberDigits integer digits are
// clamped to ±1e20 and tiny ones to 0, so an extreme exponent never reaches
// the decimal arithmetic; clamped reports either case.
func parseNumber(raw json.RawMessage) (n decimal.Decimal, ok, clamped bool) {
	n, err := decimal.NewFromString(string(bytes.TrimSpace(raw)))
	if err != nil {
		return decimal.Zero, false, false
	}
	if n.IsZero() {
		return decimal.Zero, true, false
	}
	switch digits := n.NumDigits() + int(n.Exponent()); {
	case digits > maxNumberDigits:
		return decimal.New(int64(n.Sign()), maxNumberDigits), true, true
	case digits < -maxNumberDigits:
		return decimal.Zero, true, true
	}
	return n, true, false
}

// whole floors n and clamps it to [0, limit].
func whole(n decimal.Decimal, limit int64) int64 {
	if !n.IsPositive() {
		return 0
	}
	n = n.Floor()
	if n.GreaterThan(decimal.NewFromInt(limit)) {
		return limit
	}
	return n.IntPart()
}

package game

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/progression"
)

// Action handlers are pure: they never mutate their input and return the
// input unchanged together with a domain error when a precondition fails.

// ClickResult is the outcome of one manual action.
type ClickResult struct {
	Amount     int64 `json:"amount"`
	IsCritical bool  `json:"is_critical"`
}

// Roller returns a uniformly distributed number in [0, 1).
type Roller func() float64

// ManualAction credits one click. The critical roll is only consulted when the
// crit chance is non-zero.
func ManualAction(st domain.State, cat *catalog.Catalog, roll Roller) (domain.State, ClickResult) {
	power := progression.ClickPower(st, cat)
	result := ClickResult{Amount: power}

	if chance := progression.CritChance(st, cat); chance > 0 && roll != nil && roll() < chance {
		result.Amount = progression.CriticalAmount(power)
		result.IsCritical = true
	}

	next := st.Clone()
	credit(&next, domain.WholeCoins(result.Amount))
	next.ClickCount++
	return next, result
}

// BuyUpgrade purchases the next level of an upgrade.
func BuyUpgrade(st domain.State, cat *catalog.Catalog, id string) (domain.State, domain.Coins, error) {
	u, ok := cat.Upgrade(id)
	if !ok {
		return st, 0, fmt.Errorf("%w: %s", domain.ErrUnknownUpgrade, id)
	}

	cost := progression.UpgradeCost(u, st.UpgradeLevel(id))
	if st.Currency < cost {
		return st, cost, fmt.Errorf("%w: need %s, have %s", domain.ErrInsufficientFunds, cost, st.Currency)
	}

	next := st.Clone()
	next.Currency -= cost
	next.Upgrades[id]++
	return next, cost, nil
}

// ClaimQuest pays out a completed quest once per prestige run. The reward
// counts as earned currency, so it also raises both lifetime totals.
func ClaimQuest(st domain.State, cat *catalog.Catalog, id string, now time.Time) (domain.State, domain.Quest, error) {
	q, ok := cat.Quest(id)
	if !ok {
		return st, domain.Quest{}, fmt.Errorf("%w: %s", domain.ErrUnknownQuest, id)
	}
	if st.HasCompletedQuest(id) {
		return st, q, fmt.Errorf("%w: %s", domain.ErrAlreadyClaimed, id)
	}
	if !progression.IsQuestComplete(q, st, now) {
		return st, q, fmt.Errorf("%w: %s", domain.ErrQuestNotComplete, id)
	}

	next := st.Clone()
	credit(&next, domain.WholeCoins(q.Reward))
	next.CompletedQuests = append(next.CompletedQuests, id)
	return next, q, nil
}

// BuySkill purchases the next level of a skill node.
func BuySkill(st domain.State, cat *catalog.Catalog, id string) (domain.State, error) {
	node, ok := cat.Skill(id)
	if !ok {
		return st, fmt.Errorf("%w: %s", domain.ErrUnknownSkill, id)
	}
	if st.SkillLevel(id) >= node.MaxLevel {
		return st, fmt.Errorf("%w: %s", domain.ErrMaxLevel, id)
	}
	if !progression.IsUnlocked(node, st.Skills) {
		return st, fmt.Errorf("%w: %s requires %v", domain.ErrSkillLocked, id, progression.RequiredNodes(cat, id, st.Skills))
	}
	if st.SkillPoints < node.Cost {
		return st, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientSkillPoints, node.Cost, st.SkillPoints)
	}

	next := st.Clone()
	next.SkillPoints -= node.Cost
	next.Skills[id]++
	return next, nil
}

// Prestige resets the run in exchange for one prestige level and one skill
// point. Lifetime totals, clicks, skills, achievements, start time and
// language carry over.
func Prestige(st domain.State) (domain.State, error) {
	cost := progression.PrestigeCost(st.PrestigeLevel)
	if st.Currency < cost {
		return st, fmt.Errorf("%w: need %s, have %s", domain.ErrPrestigeLocked, cost, st.Currency)
	}

	next := st.Clone()
	next.PrestigeLevel++
	next.SkillPoints += domain.SkillPointsPerPrestige
	next.Currency = 0
	next.Upgrades = map[string]int{}
	next.CompletedQuests = []string{}
	return next, nil
}

var languageMatcher = language.NewMatcher(languageTagsInOrder())

func languageTagsInOrder() []language.Tag {
	tags := make([]language.Tag, 0, len(domain.SupportedLanguages))
	for _, l := range domain.SupportedLanguages {
		tags = append(tags, progression.LanguageTag(l))
	}
	return tags
}

// MatchLanguage resolves a BCP 47 tag such as "en-GB" or "pt-BR" to a
// supported language.
func MatchLanguage(raw string) (domain.Language, error) {
	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, raw)
	}
	_, idx, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, raw)
	}
	return domain.SupportedLanguages[idx], nil
}

// SetLanguage changes the persisted UI language.
func SetLanguage(st domain.State, raw string) (domain.State, error) {
	lang, err := MatchLanguage(raw)
	if err != nil {
		return st, err
	}
	next := st.Clone()
	next.Language = lang
	return next, nil
}

// ApplyTick accrues passive income for elapsed and then evaluates
// achievements against the accrued state. All changes land in one new state.
func ApplyTick(st domain.State, cat *catalog.Catalog, elapsed time.Duration, now time.Time) (domain.State, []string) {
	next := st.Clone()

	if ms := elapsed.Milliseconds(); ms > 0 {
		// autoPower coins per second is autoPower milli-coins per millisecond.
		credit(&next, accrual(progression.AutoPower(st, cat), ms))
	}

	unlocked := progression.EvaluateAchievements(next, cat, now)
	next.UnlockedAchievements = append(next.UnlockedAchievements, unlocked...)
	return next, unlocked
}

func accrual(autoPower, ms int64) domain.Coins {
	if autoPower <= 0 {
		return 0
	}
	if ms > int64(domain.MaxCoins)/autoPower {
		return domain.MaxCoins
	}
	return domain.Coins(autoPower * ms)
}

func credit(st *domain.State, amount domain.Coins) {
	st.Currency = st.Currency.Add(amount)
	st.LifetimeCurrency = st.LifetimeCurrency.Add(amount)
	st.LifetimeCurrencyPrestige = st.LifetimeCurrencyPrestige.Add(amount)
}

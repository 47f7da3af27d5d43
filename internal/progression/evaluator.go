package progression

import (
	"time"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
)

// Progress returns the current value of a predicate. upgradeID narrows
// upgrade_count/upgrades_buy to one upgrade and names the auto_count upgrade.
func Progress(pred domain.PredicateType, upgradeID string, st domain.State, now time.Time) int64 {
	switch pred {
	case domain.PredicateClickCount:
		return st.ClickCount
	case domain.PredicateCurrencyTotal, domain.PredicateCurrencyAccumulate:
		return st.LifetimeCurrency.Whole()
	case domain.PredicateUpgradeCount, domain.PredicateUpgradesBuy:
		if upgradeID != "" {
			return int64(st.UpgradeLevel(upgradeID))
		}
		return int64(st.TotalUpgradeLevels())
	case domain.PredicatePlayTime:
		return st.PlaySeconds(now)
	case domain.PredicateQuestCount:
		return int64(len(st.CompletedQuests))
	case domain.PredicatePrestigeCount:
		return int64(st.PrestigeLevel)
	case domain.PredicateAutoCount:
		return int64(st.UpgradeLevel(upgradeID))
	case domain.PredicateAchievementsCount:
		return int64(len(st.UnlockedAchievements))
	default:
		return 0
	}
}

// IsQuestComplete reports whether the quest's predicate has reached its target.
func IsQuestComplete(q domain.Quest, st domain.State, now time.Time) bool {
	return Progress(q.Type, q.Upgrade, st, now) >= q.Target
}

// IsAchievementMet reports whether the achievement's predicate has reached its target.
func IsAchievementMet(a domain.Achievement, st domain.State, now time.Time) bool {
	return Progress(a.Type, "", st, now) >= a.Target
}

// EvaluateAchievements returns the ids of achievements that are met but not
// yet unlocked, in catalog order. Already-unlocked achievements are skipped.
func EvaluateAchievements(st domain.State, cat *catalog.Catalog, now time.Time) []string {
	var unlocked []string
	for _, a := range cat.Achievements {
		if st.HasAchievement(a.ID) {
			continue
		}
		if IsAchievementMet(a, st, now) {
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}

// QuestView is the display state of one quest.
type QuestView struct {
	Quest    domain.Quest
	Progress int64
	Percent  float64
	Complete bool
}

// VisibleQuests returns up to domain.MaxVisibleQuests incomplete quests whose
// unlock threshold is covered by lifetime currency, in catalog order.
func VisibleQuests(st domain.State, cat *catalog.Catalog, now time.Time) []QuestView {
	views := make([]QuestView, 0, domain.MaxVisibleQuests)
	for _, q := range cat.Quests {
		if len(views) == domain.MaxVisibleQuests {
			break
		}
		if st.HasCompletedQuest(q.ID) {
			continue
		}
		if st.LifetimeCurrency < domain.WholeCoins(q.UnlockThreshold) {
			continue
		}
		progress := Progress(q.Type, q.Upgrade, st, now)
		views = append(views, QuestView{
			Quest:    q,
			Progress: progress,
			Percent:  percent(progress, q.Target),
			Complete: progress >= q.Target,
		})
	}
	return views
}

func percent(progress, target int64) float64 {
	if target <= 0 || progress >= target {
		return 100
	}
	if progress <= 0 {
		return 0
	}
	return float64(progress) / float64(target) * 100
}

// AchievementView is the display state of one achievement.
type AchievementView struct {
	Achievement domain.Achievement
	Unlocked    bool
}

// Achievements returns every achievement in catalog order with its unlock flag.
func Achievements(st domain.State, cat *catalog.Catalog) []AchievementView {
	views := make([]AchievementView, 0, len(cat.Achievements))
	for _, a := range cat.Achievements {
		views = append(views, AchievementView{Achievement: a, Unlocked: st.HasAchievement(a.ID)})
	}
	return views
}

// AchievementPoints sums the points of unlocked achievements the catalog knows.
func AchievementPoints(st domain.State, cat *catalog.Catalog) int {
	total := 0
	for _, id := range st.UnlockedAchievements {
		if a, ok := cat.Achievement(id); ok {
			total += a.Points
		}
	}
	return total
}

// UpgradeView is the shop entry for one upgrade.
type UpgradeView struct {
	Upgrade    domain.Upgrade
	Level      int
	NextCost   domain.Coins
	Affordable bool
}

// Upgrades returns the shop in catalog order.
func Upgrades(st domain.State, cat *catalog.Catalog) []UpgradeView {
	views := make([]UpgradeView, 0, len(cat.Upgrades))
	for _, u := range cat.Upgrades {
		level := st.UpgradeLevel(u.ID)
		cost := UpgradeCost(u, level)
		views = append(views, UpgradeView{
			Upgrade:    u,
			Level:      level,
			NextCost:   cost,
			Affordable: st.Currency >= cost,
		})
	}
	return views
}

// PrestigeProgress returns the current prestige cost and the fraction of it
// held in currency, capped at 1.
func PrestigeProgress(st domain.State) (domain.Coins, float64) {
	cost := PrestigeCost(st.PrestigeLevel)
	if cost <= 0 || st.Currency >= cost {
		return cost, 1
	}
	return cost, float64(st.Currency) / float64(cost)
}

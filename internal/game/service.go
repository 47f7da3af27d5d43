package game

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/progression"
)

// Service is the Action and Read API consumed by presentation front ends.
type Service interface {
	ManualAction(ctx context.Context) ClickResult
	BuyUpgrade(ctx context.Context, id string) error
	ClaimQuest(ctx context.Context, id string) error
	BuySkill(ctx context.Context, id string) error
	Prestige(ctx context.Context) error
	SetLanguage(ctx context.Context, lang string) error
	ManualSave(ctx context.Context) error
	HardReset(ctx context.Context) error
	OnLifecycle(ctx context.Context, l Lifecycle)

	Stats() Stats
	Snapshot() domain.State
	Upgrades() []progression.UpgradeView
	VisibleQuests() []progression.QuestView
	Achievements() []progression.AchievementView
	SkillTree() []progression.SkillView
}

// Saver persists snapshots of the state.
type Saver interface {
	Save(ctx context.Context, st domain.State) error
	Delete(ctx context.Context) error
}

// Stats is the derived read model shown next to the state.
type Stats struct {
	Currency          domain.Coins    `json:"currency"`
	ClickPower        int64           `json:"click_power"`
	AutoPower         int64           `json:"auto_power"`
	GlobalMultiplier  decimal.Decimal `json:"global_multiplier"`
	CritChance        float64         `json:"crit_chance"`
	PrestigeCost      domain.Coins    `json:"prestige_cost"`
	PrestigeProgress  float64         `json:"prestige_progress"`
	AchievementPoints int             `json:"achievement_points"`
	PlaySeconds       int64           `json:"play_seconds"`
	At                time.Time       `json:"at"`
}

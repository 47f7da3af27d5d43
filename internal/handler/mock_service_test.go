package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/game"
	"github.com/osse101/GemClicker_Go/internal/progression"
)

// MockGameService is a testify mock of game.Service.
type MockGameService struct {
	mock.Mock
}

var _ game.Service = (*MockGameService)(nil)

func (m *MockGameService) ManualAction(ctx context.Context) game.ClickResult {
	args := m.Called(ctx)
	return args.Get(0).(game.ClickResult)
}

func (m *MockGameService) BuyUpgrade(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGameService) ClaimQuest(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGameService) BuySkill(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGameService) Prestige(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGameService) SetLanguage(ctx context.Context, lang string) error {
	return m.Called(ctx, lang).Error(0)
}

func (m *MockGameService) ManualSave(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGameService) HardReset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGameService) OnLifecycle(ctx context.Context, l game.Lifecycle) {
	m.Called(ctx, l)
}

func (m *MockGameService) Stats() game.Stats {
	return m.Called().Get(0).(game.Stats)
}

func (m *MockGameService) Snapshot() domain.State {
	return m.Called().Get(0).(domain.State)
}

func (m *MockGameService) Upgrades() []progression.UpgradeView {
	return m.Called().Get(0).([]progression.UpgradeView)
}

func (m *MockGameService) VisibleQuests() []progression.QuestView {
	return m.Called().Get(0).([]progression.QuestView)
}

func (m *MockGameService) Achievements() []progression.AchievementView {
	return m.Called().Get(0).([]progression.AchievementView)
}

func (m *MockGameService) SkillTree() []progression.SkillView {
	return m.Called().Get(0).([]progression.SkillView)
}

package handler

import (
	"net/http"
	"time"

	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/game"
	"github.com/osse101/GemClicker_Go/internal/progression"
)

// StateResponse is the full progression state.
type StateResponse struct {
	Currency                 domain.Coins    `json:"currency"`
	LifetimeCurrency         domain.Coins    `json:"lifetime_currency"`
	LifetimeCurrencyPrestige domain.Coins    `json:"lifetime_currency_prestige"`
	ClickCount               int64           `json:"click_count"`
	StartTime                time.Time       `json:"start_time"`
	Upgrades                 map[string]int  `json:"upgrades"`
	CompletedQuests          []string        `json:"completed_quests"`
	UnlockedAchievements     []string        `json:"unlocked_achievements"`
	PrestigeLevel            int             `json:"prestige_level"`
	SkillPoints              int             `json:"skill_points"`
	Skills                   map[string]int  `json:"skills"`
	Language                 domain.Language `json:"language"`
	LastSaveTime             time.Time       `json:"last_save_time"`
}

// UpgradeResponse is one entry of the upgrade shop.
type UpgradeResponse struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Category   domain.UpgradeCategory `json:"category"`
	Power      int64                  `json:"power"`
	Level      int                    `json:"level"`
	NextCost   domain.Coins           `json:"next_cost"`
	Affordable bool                   `json:"affordable"`
}

// QuestResponse is one visible quest.
type QuestResponse struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Type     domain.PredicateType `json:"type"`
	Target   int64                `json:"target"`
	Reward   int64                `json:"reward"`
	Progress int64                `json:"progress"`
	Percent  float64              `json:"percent"`
	Complete bool                 `json:"complete"`
}

// AchievementResponse is one achievement with its unlock flag.
type AchievementResponse struct {
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	Type     domain.PredicateType `json:"type"`
	Target   int64                `json:"target"`
	Points   int                  `json:"points"`
	Unlocked bool                 `json:"unlocked"`
}

// AchievementsResponse lists every achievement and the points earned so far.
type AchievementsResponse struct {
	Points       int                   `json:"points"`
	Achievements []AchievementResponse `json:"achievements"`
}

// SkillResponse is one node of the skill tree.
type SkillResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Branch      domain.SkillBranch `json:"branch"`
	BranchTitle string             `json:"branch_title"`
	Level       int                `json:"level"`
	MaxLevel    int                `json:"max_level"`
	Cost        int                `json:"cost"`
	Parents     []string           `json:"parents"`
	Children    []string           `json:"children"`
	Unlocked    bool               `json:"unlocked"`
	Maxed       bool               `json:"maxed"`
	Affordable  bool               `json:"affordable"`
	Effect      string             `json:"effect"`
}

// HandleGetState returns the progression state.
func HandleGetState(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, newStateResponse(svc.Snapshot()))
	}
}

// HandleGetStats returns the derived stats.
func HandleGetStats(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Stats())
	}
}

// HandleGetUpgrades returns the upgrade shop in catalog order.
func HandleGetUpgrades(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views := svc.Upgrades()
		out := make([]UpgradeResponse, 0, len(views))
		for _, v := range views {
			out = append(out, newUpgradeResponse(v))
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// HandleGetQuests returns the quests currently on display.
func HandleGetQuests(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views := svc.VisibleQuests()
		out := make([]QuestResponse, 0, len(views))
		for _, v := range views {
			out = append(out, QuestResponse{
				ID:       v.Quest.ID,
				Name:     v.Quest.Name,
				Type:     v.Quest.Type,
				Target:   v.Quest.Target,
				Reward:   v.Quest.Reward,
				Progress: v.Progress,
				Percent:  v.Percent,
				Complete: v.Complete,
			})
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// HandleGetAchievements returns every achievement and the points total.
func HandleGetAchievements(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views := svc.Achievements()
		resp := AchievementsResponse{Achievements: make([]AchievementResponse, 0, len(views))}
		for _, v := range views {
			if v.Unlocked {
				resp.Points += v.Achievement.Points
			}
			resp.Achievements = append(resp.Achievements, AchievementResponse{
				ID:       v.Achievement.ID,
				Title:    v.Achievement.Title,
				Type:     v.Achievement.Type,
				Target:   v.Achievement.Target,
				Points:   v.Achievement.Points,
				Unlocked: v.Unlocked,
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetSkills returns the skill tree in catalog order.
func HandleGetSkills(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views := svc.SkillTree()
		out := make([]SkillResponse, 0, len(views))
		for _, v := range views {
			out = append(out, newSkillResponse(v))
		}
		respondJSON(w, http.StatusOK, out)
	}
}

func newStateResponse(st domain.State) StateResponse {
	return StateResponse{
		Currency:                 st.Currency,
		LifetimeCurrency:         st.LifetimeCurrency,
		LifetimeCurrencyPrestige: st.LifetimeCurrencyPrestige,
		ClickCount:               st.ClickCount,
		StartTime:                st.StartTime,
		Upgrades:                 st.Upgrades,
		CompletedQuests:          st.CompletedQuests,
		UnlockedAchievements:     st.UnlockedAchievements,
		PrestigeLevel:            st.PrestigeLevel,
		SkillPoints:              st.SkillPoints,
		Skills:                   st.Skills,
		Language:                 st.Language,
		LastSaveTime:             st.LastSaveTime,
	}
}

func newUpgradeResponse(v progression.UpgradeView) UpgradeResponse {
	return UpgradeResponse{
		ID:         v.Upgrade.ID,
		Name:       v.Upgrade.Name,
		Category:   v.Upgrade.Category,
		Power:      v.Upgrade.Power,
		Level:      v.Level,
		NextCost:   v.NextCost,
		Affordable: v.Affordable,
	}
}

func newSkillResponse(v progression.SkillView) SkillResponse {
	parents := v.Node.Parents
	if parents == nil {
		parents = []string{}
	}
	children := v.Children
	if children == nil {
		children = []string{}
	}
	return SkillResponse{
		ID:          v.Node.ID,
		Name:        v.Node.Name,
		Branch:      v.Node.Branch,
		BranchTitle: v.BranchTitle,
		Level:       v.Level,
		MaxLevel:    v.Node.MaxLevel,
		Cost:        v.Node.Cost,
		Parents:     parents,
		Children:    children,
		Unlocked:    v.Unlocked,
		Maxed:       v.Maxed,
		Affordable:  v.Affordable,
		Effect:      v.EffectText,
	}
}

package catalog

import (
	"github.com/osse101/GemClicker_Go/internal/domain"
)

// Catalog is the immutable static game data. Slices keep the authored order,
// which is also the evaluation and display order.
type Catalog struct {
	Version      string
	Upgrades     []domain.Upgrade
	Quests       []domain.Quest
	Achievements []domain.Achievement
	Skills       []domain.SkillNode

	upgradesByID     map[string]*domain.Upgrade
	questsByID       map[string]*domain.Quest
	achievementsByID map[string]*domain.Achievement
	skillsByID       map[string]*domain.SkillNode
	children         map[string][]string
}

func newCatalog(cfg *Config) *Catalog {
	c := &Catalog{
		Version:          cfg.Version,
		Upgrades:         cfg.Upgrades,
		Quests:           cfg.Quests,
		Achievements:     cfg.Achievements,
		Skills:           cfg.Skills,
		upgradesByID:     make(map[string]*domain.Upgrade, len(cfg.Upgrades)),
		questsByID:       make(map[string]*domain.Quest, len(cfg.Quests)),
		achievementsByID: make(map[string]*domain.Achievement, len(cfg.Achievements)),
		skillsByID:       make(map[string]*domain.SkillNode, len(cfg.Skills)),
		children:         make(map[string][]string),
	}
	for i := range c.Upgrades {
		c.upgradesByID[c.Upgrades[i].ID] = &c.Upgrades[i]
	}
	for i := range c.Quests {
		c.questsByID[c.Quests[i].ID] = &c.Quests[i]
	}
	for i := range c.Achievements {
		c.achievementsByID[c.Achievements[i].ID] = &c.Achievements[i]
	}
	for i := range c.Skills {
		node := &c.Skills[i]
		c.skillsByID[node.ID] = node
		for _, parent := range node.Parents {
			c.children[parent] = append(c.children[parent], node.ID)
		}
	}
	return c
}

// Upgrade returns the upgrade with the given id.
func (c *Catalog) Upgrade(id string) (domain.Upgrade, bool) {
	u, ok := c.upgradesByID[id]
	if !ok {
		return domain.Upgrade{}, false
	}
	return *u, true
}

// Quest returns the quest with the given id.
func (c *Catalog) Quest(id string) (domain.Quest, bool) {
	q, ok := c.questsByID[id]
	if !ok {
		return domain.Quest{}, false
	}
	return *q, true
}

// Achievement returns the achievement with the given id.
func (c *Catalog) Achievement(id string) (domain.Achievement, bool) {
	a, ok := c.achievementsByID[id]
	if !ok {
		return domain.Achievement{}, false
	}
	return *a, true
}

// Skill returns the skill node with the given id.
func (c *Catalog) Skill(id string) (domain.SkillNode, bool) {
	n, ok := c.skillsByID[id]
	if !ok {
		return domain.SkillNode{}, false
	}
	return *n, true
}

// SkillCost returns the per-level cost of a node, or domain.UnknownSkillCost
// for ids the catalog does not know (old saves may carry retired nodes).
func (c *Catalog) SkillCost(id string) int {
	if n, ok := c.skillsByID[id]; ok {
		return n.Cost
	}
	return domain.UnknownSkillCost
}

// Children returns the ids of nodes that list id as a parent, in catalog order.
func (c *Catalog) Children(id string) []string {
	return append([]string(nil), c.children[id]...)
}

package progression

import (
	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
)

// IsUnlocked reports whether every parent of node has level >= 1.
// Nodes without parents are always unlocked.
func IsUnlocked(node domain.SkillNode, skills map[string]int) bool {
	for _, parent := range node.Parents {
		if skills[parent] < 1 {
			return false
		}
	}
	return true
}

// RequiredNodes returns the locked ancestors (level 0) that must be bought
// before id becomes purchasable, nearest first, each listed once.
func RequiredNodes(cat *catalog.Catalog, id string, skills map[string]int) []string {
	node, ok := cat.Skill(id)
	if !ok {
		return nil
	}

	var required []string
	seen := make(map[string]bool)
	queue := append([]string(nil), node.Parents...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if seen[current] {
			continue
		}
		seen[current] = true
		if skills[current] >= 1 {
			continue
		}
		required = append(required, current)
		if parent, ok := cat.Skill(current); ok {
			queue = append(queue, parent.Parents...)
		}
	}
	return required
}

// SkillView is the display state of one skill node.
type SkillView struct {
	Node        domain.SkillNode
	BranchTitle string
	Level       int
	Unlocked    bool
	Maxed       bool
	Affordable  bool
	EffectText  string
	Children    []string
}

// SkillTree returns a view of every node in catalog order.
func SkillTree(st domain.State, cat *catalog.Catalog) []SkillView {
	tag := LanguageTag(st.Language)
	views := make([]SkillView, 0, len(cat.Skills))
	for _, node := range cat.Skills {
		level := st.SkillLevel(node.ID)
		unlocked := IsUnlocked(node, st.Skills)
		maxed := level >= node.MaxLevel
		views = append(views, SkillView{
			Node:        node,
			BranchTitle: BranchTitle(node.Branch, tag),
			Level:       level,
			Unlocked:    unlocked,
			Maxed:       maxed,
			Affordable:  unlocked && !maxed && st.SkillPoints >= node.Cost,
			EffectText:  FormatEffect(node.Effect, level, tag),
			Children:    cat.Children(node.ID),
		})
	}
	return views
}

package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
)

func TestIsUnlocked(t *testing.T) {
	cat := catalog.MustDefault()
	root, _ := cat.Skill(domain.SkillRoot)
	clickBase, _ := cat.Skill(domain.SkillClickBase)
	crit, _ := cat.Skill(domain.SkillClickCrit)

	tests := []struct {
		name   string
		node   domain.SkillNode
		skills map[string]int
		want   bool
	}{
		{"root with nothing", root, nil, true},
		{"root with levels", root, map[string]int{domain.SkillRoot: 1}, true},
		{"child locked", clickBase, map[string]int{}, false},
		{"child unlocked", clickBase, map[string]int{domain.SkillRoot: 1}, true},
		{"grandchild needs direct parent", crit, map[string]int{domain.SkillRoot: 1}, false},
		{"grandchild unlocked", crit, map[string]int{domain.SkillClickBase: 2}, true},
		{"zero level parent is locked", clickBase, map[string]int{domain.SkillRoot: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnlocked(tt.node, tt.skills))
		})
	}
}

func TestRequiredNodes(t *testing.T) {
	cat := catalog.MustDefault()

	assert.Empty(t, RequiredNodes(cat, domain.SkillRoot, nil))
	assert.Nil(t, RequiredNodes(cat, "missing", nil))
	assert.Equal(t,
		[]string{domain.SkillClickBase, domain.SkillRoot},
		RequiredNodes(cat, domain.SkillClickCrit, map[string]int{}))
	assert.Equal(t,
		[]string{domain.SkillClickBase},
		RequiredNodes(cat, domain.SkillClickCrit, map[string]int{domain.SkillRoot: 1}))
	assert.Empty(t, RequiredNodes(cat, domain.SkillClickCrit, map[string]int{domain.SkillClickBase: 1}))
}

func TestSkillTree(t *testing.T) {
	cat := catalog.MustDefault()
	st := newTestState()
	st.Language = domain.LanguageEnglish
	st.SkillPoints = 1
	st.Skills[domain.SkillRoot] = 1
	st.Skills[domain.SkillClickBase] = 5

	views := SkillTree(st, cat)
	require.Len(t, views, len(cat.Skills))

	byID := make(map[string]SkillView, len(views))
	for _, v := range views {
		byID[v.Node.ID] = v
	}

	root := byID[domain.SkillRoot]
	assert.True(t, root.Unlocked)
	assert.True(t, root.Maxed)
	assert.False(t, root.Affordable)
	assert.Equal(t, "+5% Global Multiplier", root.EffectText)
	assert.Equal(t, "Prestige", root.BranchTitle)

	clickBase := byID[domain.SkillClickBase]
	assert.True(t, clickBase.Maxed)
	assert.Equal(t, "+100% Click Power", clickBase.EffectText)
	assert.Equal(t, "Click", clickBase.BranchTitle)

	crit := byID[domain.SkillClickCrit]
	assert.True(t, crit.Unlocked)
	assert.True(t, crit.Affordable)
	assert.Equal(t, "0% Critical Chance", crit.EffectText)

	luck := byID[domain.SkillPrestigeLuck]
	assert.True(t, luck.Unlocked)
	assert.False(t, luck.Affordable, "costs 2 skill points")

	passive := byID[domain.SkillAutoPassive]
	assert.False(t, passive.Unlocked)
	assert.False(t, passive.Affordable)
}

func TestFormatEffect(t *testing.T) {
	linear := domain.Effect{Kind: domain.EffectLinearPercent, Target: domain.TargetClickPower, PerLevel: 0.20, Label: "Click Power"}
	chance := domain.Effect{Kind: domain.EffectChancePercent, Target: domain.TargetCritChance, PerLevel: 0.02, Label: "Critical Chance"}
	fractional := domain.Effect{Kind: domain.EffectLinearPercent, Target: domain.TargetGlobalMultiplier, PerLevel: 0.025, Label: "Bonus"}

	assert.Equal(t, "+20% Click Power", FormatEffect(linear, 1, language.English))
	assert.Equal(t, "+60% Click Power", FormatEffect(linear, 3, language.English))
	assert.Equal(t, "+0% Click Power", FormatEffect(linear, 0, language.English))
	assert.Equal(t, "4% Critical Chance", FormatEffect(chance, 2, language.English))
	assert.Equal(t, "+2.5% Bonus", FormatEffect(fractional, 1, language.English))
	assert.Equal(t, "+20% Click Power", FormatEffect(linear, 1, language.Portuguese))
}

func TestLanguageTag(t *testing.T) {
	assert.Equal(t, language.Portuguese, LanguageTag(domain.LanguagePortuguese))
	assert.Equal(t, language.Spanish, LanguageTag(domain.LanguageSpanish))
	assert.Equal(t, language.English, LanguageTag("xx"))
}

func TestBranchTitle(t *testing.T) {
	assert.Equal(t, "Prestige", BranchTitle(domain.BranchPrestige, language.English))
	assert.Equal(t, "Click", BranchTitle(domain.BranchClick, language.English))
}

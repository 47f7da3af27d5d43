package domain

// Event type constants used for event bus subscriptions, notifications and
// metrics. Notification kinds map one-to-one onto these.
const (
	// EventTypeAchievementUnlocked is published once per achievement unlocked by a tick
	EventTypeAchievementUnlocked = "achievement_unlocked"

	// EventTypeQuestClaimed is published when a quest reward is claimed
	EventTypeQuestClaimed = "quest_claimed"

	// EventTypeAscended is published after a successful prestige
	EventTypeAscended = "ascended"

	// EventTypeCriticalHit is published when a manual action rolls a critical hit
	EventTypeCriticalHit = "critical_hit"

	// EventTypeGeneric covers informational notices such as a manual save
	EventTypeGeneric = "generic"

	// EventTypeUpgradeBought is published when an upgrade level is purchased
	EventTypeUpgradeBought = "upgrade_bought"

	// EventTypeSkillBought is published when a skill level is purchased
	EventTypeSkillBought = "skill_bought"

	// EventTypeStateReset is published after a hard reset
	EventTypeStateReset = "state_reset"
)

// Localized message ids carried by notifications. Text lookup happens in the
// presentation layer.
const (
	MsgAchievementUnlocked = "ach_unlocked"
	MsgQuestComplete       = "quest_complete"
	MsgAscended            = "ascended"
	MsgCriticalClick       = "critical_click"
	MsgSaved               = "saved_msg"
)

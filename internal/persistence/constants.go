package persistence

// Save document keys. They match the camelCase layout of the original web save
// so existing exports load unchanged.
const (
	keyCurrency                 = "currency"
	keyLifetimeCurrency         = "lifetimeCurrency"
	keyLifetimeCurrencyPrestige = "lifetimeCurrencyPrestige"
	keyClickCount               = "clickCount"
	keyStartTime                = "startTime"
	keyUpgrades                 = "upgrades"
	keyCompletedQuests          = "completedQuests"
	keyUnlockedAchievements     = "unlockedAchievements"
	keyPrestigeLevel            = "prestigeLevel"
	keySkillPoints              = "skillPoints"
	keySkills                   = "skills"
	keyLanguage                 = "language"
	keyLastSaveTime             = "lastSaveTime"
)

// Operation labels for persistence metrics
const (
	OperationLoad   = "load"
	OperationSave   = "save"
	OperationDelete = "delete"
)

// Log Messages
const (
	LogMsgSaveLoaded         = "Save loaded"
	LogMsgNoSaveFound        = "No save found, starting fresh"
	LogMsgLoadFailed         = "Failed to load save, starting fresh"
	LogMsgSaveCorrupt        = "Save is not a JSON object, starting fresh"
	LogMsgFieldSanitized     = "Save field sanitized"
	LogMsgSkillPointsRebuilt = "Skill points missing from save, rebuilt from skills"
	LogMsgSaved              = "Game saved"
	LogMsgSaveFailed         = "Failed to save game"
	LogMsgSaveDeleted        = "Save deleted"
)

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/osse101/GemClicker_Go/internal/domain"
)

// Sentinel errors for catalog loading
var (
	ErrDuplicateKey  = errors.New("duplicate catalog id")
	ErrMissingParent = errors.New("parent node not found")
	ErrCycleDetected = errors.New("cycle detected in skill tree")
	ErrInvalidConfig = errors.New("invalid catalog configuration")
)

// Config is the on-disk TOML layout of a catalog.
type Config struct {
	Version      string               `toml:"version"`
	Upgrades     []domain.Upgrade     `toml:"upgrades"`
	Quests       []domain.Quest       `toml:"quests"`
	Achievements []domain.Achievement `toml:"achievements"`
	Skills       []domain.SkillNode   `toml:"skills"`
}

var validPredicates = map[domain.PredicateType]bool{
	domain.PredicateClickCount:         true,
	domain.PredicateCurrencyTotal:      true,
	domain.PredicateCurrencyAccumulate: true,
	domain.PredicateUpgradeCount:       true,
	domain.PredicateUpgradesBuy:        true,
	domain.PredicatePlayTime:           true,
	domain.PredicateQuestCount:         true,
	domain.PredicatePrestigeCount:      true,
	domain.PredicateAutoCount:          true,
	domain.PredicateAchievementsCount:  true,
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("predicate", func(fl validator.FieldLevel) bool {
		return validPredicates[domain.PredicateType(fl.Field().String())]
	})
	return v
}

// Load reads, parses and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML catalog data and validates it.
func Parse(data []byte) (*Catalog, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return newCatalog(&cfg), nil
}

// Validate checks field constraints, id uniqueness, references and
// skill-tree acyclicity.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if len(cfg.Upgrades) == 0 {
		return fmt.Errorf("%w: no upgrades defined", ErrInvalidConfig)
	}

	v := newValidator()

	upgrades := make(map[string]bool, len(cfg.Upgrades))
	for i, u := range cfg.Upgrades {
		if err := v.Struct(u); err != nil {
			return fmt.Errorf("%w: upgrade at index %d: %v", ErrInvalidConfig, i, err)
		}
		if upgrades[u.ID] {
			return fmt.Errorf("%w: upgrade '%s'", ErrDuplicateKey, u.ID)
		}
		upgrades[u.ID] = true
	}

	quests := make(map[string]bool, len(cfg.Quests))
	for i, q := range cfg.Quests {
		if err := v.Struct(q); err != nil {
			return fmt.Errorf("%w: quest at index %d: %v", ErrInvalidConfig, i, err)
		}
		if quests[q.ID] {
			return fmt.Errorf("%w: quest '%s'", ErrDuplicateKey, q.ID)
		}
		quests[q.ID] = true
		if q.Upgrade != "" && !upgrades[q.Upgrade] {
			return fmt.Errorf("%w: quest '%s' references unknown upgrade '%s'", ErrInvalidConfig, q.ID, q.Upgrade)
		}
		if q.Type == domain.PredicateAutoCount && q.Upgrade == "" {
			return fmt.Errorf("%w: quest '%s' of type %s needs an upgrade", ErrInvalidConfig, q.ID, q.Type)
		}
	}

	achievements := make(map[string]bool, len(cfg.Achievements))
	for i, a := range cfg.Achievements {
		if err := v.Struct(a); err != nil {
			return fmt.Errorf("%w: achievement at index %d: %v", ErrInvalidConfig, i, err)
		}
		if a.Type == domain.PredicateAutoCount {
			return fmt.Errorf("%w: achievement '%s' cannot use %s", ErrInvalidConfig, a.ID, a.Type)
		}
		if achievements[a.ID] {
			return fmt.Errorf("%w: achievement '%s'", ErrDuplicateKey, a.ID)
		}
		achievements[a.ID] = true
	}

	nodesByID := make(map[string]*domain.SkillNode, len(cfg.Skills))
	for i := range cfg.Skills {
		node := &cfg.Skills[i]
		if err := v.Struct(node); err != nil {
			return fmt.Errorf("%w: skill at index %d: %v", ErrInvalidConfig, i, err)
		}
		if _, exists := nodesByID[node.ID]; exists {
			return fmt.Errorf("%w: skill '%s'", ErrDuplicateKey, node.ID)
		}
		nodesByID[node.ID] = node
	}

	for _, node := range cfg.Skills {
		for _, parent := range node.Parents {
			if _, exists := nodesByID[parent]; !exists {
				return fmt.Errorf("%w: node '%s' references parent '%s'", ErrMissingParent, node.ID, parent)
			}
		}
	}

	return detectCycles(cfg.Skills, nodesByID)
}

// detectCycles walks parent edges depth-first.
func detectCycles(nodes []domain.SkillNode, nodesByID map[string]*domain.SkillNode) error {
	const (
		unvisited = iota
		visiting
		visited
	)
	state := make(map[string]int, len(nodes))

	var dfs func(id string) error
	dfs = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("%w: at node '%s'", ErrCycleDetected, id)
		case visited:
			return nil
		}
		state[id] = visiting
		for _, parent := range nodesByID[id].Parents {
			if err := dfs(parent); err != nil {
				return err
			}
		}
		state[id] = visited
		return nil
	}

	for _, node := range nodes {
		if state[node.ID] == unvisited {
			if err := dfs(node.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

package settings

import (
	"context"
	"strconv"
	"sync"

	"github.com/osse101/RogueMods_Go/internal/config"
	"github.com/osse101/RogueMods_Go/internal/event"
	"github.com/osse101/RogueMods_Go/internal/logger"
)

// Registry holds the live mod knobs and the option selected for each setting
type Registry struct {
	mu        sync.RWMutex
	mods      config.Mods
	selected  map[Key]int
	publisher event.Publisher
}

// NewRegistry starts from the configured knobs
func NewRegistry(initial config.Mods, publisher event.Publisher) *Registry {
	if publisher == nil {
		publisher = event.Nop{}
	}
	r := &Registry{
		mods:      initial,
		selected:  make(map[Key]int, len(Definitions)),
		publisher: publisher,
	}
	for _, s := range Definitions {
		r.selected[s.Key] = matchOption(s, initial)
	}
	return r
}

// Mods returns a copy of the current knobs
func (r *Registry) Mods() config.Mods {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mods
}

// Selected returns the option index currently chosen for key, or -1
func (r *Registry) Selected(key Key) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i, ok := r.selected[key]; ok {
		return i
	}
	return -1
}

// Apply selects option for key and updates the knobs. It reports false for an
// unknown key or an option index out of range.
func (r *Registry) Apply(ctx context.Context, key Key, option int) bool {
	log := logger.FromContext(ctx)

	i := Index(key)
	if i < 0 || option < 0 || option >= len(Definitions[i].Options) {
		log.Warn(LogMsgSettingRejected, "key", key, "option", option)
		return false
	}
	setting := Definitions[i]
	value := setting.Options[option].Value

	r.mu.Lock()
	if !apply(&r.mods, key, value) {
		r.mu.Unlock()
		log.Warn(LogMsgSettingRejected, "key", key, "value", value)
		return false
	}
	r.selected[key] = option
	r.mu.Unlock()

	log.Info(LogMsgSettingChanged, "key", key, "value", value)
	if err := r.publisher.Publish(ctx, event.NewSettingChangedEvent(string(key), option, value)); err != nil {
		log.Warn(LogMsgPublishFailed, "error", err)
	}
	return true
}

// Reset applies every setting's default option
func (r *Registry) Reset(ctx context.Context) {
	for _, s := range Definitions {
		r.Apply(ctx, s.Key, s.Default)
	}
	logger.FromContext(ctx).Info(LogMsgSettingsReset)
}

func apply(m *config.Mods, key Key, value string) bool {
	switch key {
	case KeyInfiniteBalls:
		m.InfiniteBalls = value == optionOn
	case KeyInfiniteVouchers:
		m.InfiniteVouchers = value == optionOn
	case KeyWaveEggHatch:
		m.OverrideEggHatchWaves = value == optionOn
	case KeyCandyCostMultiplier:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		m.CandyCostMultiplier = f
	default:
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		return applyInt(m, key, n)
	}
	return true
}

func applyInt(m *config.Mods, key Key, n int) bool {
	switch key {
	case KeyShiny:
		m.ShinyModifier = n
	case KeyHiddenAbility:
		m.HiddenAbilityModifier = n
	case KeyCatchTrainerPokemon:
		m.CatchTrainerPokemon = n > 0
		m.CatchTrainerRestricted = n == 1
	case KeyEggRarity:
		if tier, ok := eggRarityTiers[n]; ok {
			n = tier
		}
		m.EggRarity = n
	case KeyEggSpeciesPity:
		m.EggSpeciesPity = n
	case KeyRegenPokemon:
		m.RegenChance = n
	default:
		return false
	}
	return true
}

// matchOption finds the option that produces the knob values in m, falling
// back to the setting's default
func matchOption(s Setting, m config.Mods) int {
	for i, opt := range s.Options {
		trial := m
		if apply(&trial, s.Key, opt.Value) && trial == m {
			return i
		}
	}
	return s.Default
}

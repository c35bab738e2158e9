package logic

import (
	"github.com/redshift-games/tyrian-world/pkg/items"
	"github.com/redshift-games/tyrian-world/pkg/options"
)

// Sink receives the rules and exclusions produced for a world. The
// world wires them onto its entrances and locations; names that fail
// to resolve are reported on that side.
type Sink interface {
	EntranceRule(name string, r Rule)
	LocationRule(name string, r Rule)
	ExcludeLocation(name string)
	ExcludeLocationsByPrefix(prefix string)
}

// Config is the per-world state rule building depends on.
type Config struct {
	Options *options.Set
	Tables  *DamageTables

	// Twiddles rolled for this world. A twiddle granting one of these
	// effects satisfies the same requirements as the matching item.
	TwiddleInvulnerability bool
	TwiddleRepulsor        bool

	// StartInvulnerability marks an Invulnerability special already
	// sitting in the start inventory.
	StartInvulnerability bool
}

// SetLevelRules builds access requirements for every played episode
// and hands them to sink. Level unlocks work outside of this, so on
// no_logic nothing is produced at all and every check is simply
// assumed beatable.
func SetLevelRules(cfg Config, sink Sink) {
	if cfg.Options.LogicDifficulty == options.LogicNoLogic {
		return
	}

	rs := &ruleset{
		opts:   cfg.Options,
		tables: cfg.Tables,
		sink:   sink,
		cfg:    cfg,
	}
	for _, ep := range cfg.Options.PlayEpisodes() {
		switch ep {
		case items.EpisodeEscape:
			rs.episode1()
		case items.EpisodeTreachery:
			rs.episode2()
		case items.EpisodeMissionSuicide:
			rs.episode3()
		case items.EpisodeAnEndToFate, items.EpisodeHazudraFodder:
			// No requirements beyond level access.
		}
	}
}

type ruleset struct {
	opts   *options.Set
	tables *DamageTables
	sink   Sink
	cfg    Config
}

func (rs *ruleset) entrance(name string, r Rule) { rs.sink.EntranceRule(name, r) }
func (rs *ruleset) location(name string, r Rule) { rs.sink.LocationRule(name, r) }
func (rs *ruleset) exclude(name string)          { rs.sink.ExcludeLocation(name) }
func (rs *ruleset) excludeAll(prefix string)     { rs.sink.ExcludeLocationsByPrefix(prefix) }

func (rs *ruleset) logic() options.LogicDifficulty { return rs.opts.LogicDifficulty }

func (rs *ruleset) scale(health int) int         { return ScaleHealth(rs.opts, health, 0) }
func (rs *ruleset) scaleAdj(health, adj int) int { return ScaleHealth(rs.opts, health, adj) }

func (rs *ruleset) armorChoice(base [4]int) int {
	return DifficultyArmorChoice(rs.opts, base)
}

func (rs *ruleset) armorChoiceContact(base, contact [4]int) int {
	return DifficultyArmorChoiceContact(rs.opts, base, contact)
}

func (rs *ruleset) armor(base [4]int) Rule {
	return Armor(rs.armorChoice(base))
}

func (rs *ruleset) armorContact(base, contact [4]int) Rule {
	return Armor(rs.armorChoiceContact(base, contact))
}

// dps wraps a raw requirement with the logic difficulty margin.
func (rs *ruleset) dps(req DPS) Rule { return Damage(rs.tables.MakeDPS(req)) }

// invulnerability and repulsor fold to an unconditional pass when a
// rolled twiddle already grants the effect, since twiddles are known
// before any rule is built.

func (rs *ruleset) invulnerability() Rule {
	if rs.cfg.TwiddleInvulnerability {
		return True()
	}
	return Has("Invulnerability")
}

func (rs *ruleset) repulsor() Rule {
	if rs.cfg.TwiddleRepulsor {
		return True()
	}
	return Has("Repulsor")
}

package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/event"
	"github.com/osse101/RogueMods_Go/internal/gamedata"
	"github.com/osse101/RogueMods_Go/internal/logger"
)

// Builder assembles the item catalog for a roster snapshot
type Builder struct {
	universe  []*domain.Descriptor
	rules     Ruleset
	extension ExtensionProvider
	publisher event.Publisher
}

// Option configures a Builder
type Option func(*Builder)

// WithPublisher publishes a catalog.built event after every build attempt
func WithPublisher(p event.Publisher) Option {
	return func(b *Builder) {
		if p != nil {
			b.publisher = p
		}
	}
}

// NewBuilder creates a builder over the static descriptor universe
func NewBuilder(universe []*domain.Descriptor, rules Ruleset, extension ExtensionProvider, opts ...Option) *Builder {
	b := &Builder{
		universe:  universe,
		rules:     rules,
		extension: extension,
		publisher: event.Nop{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns the two top level categories, Global Items then Pokemon Items.
// Every visible static descriptor lands in exactly one category.
func (b *Builder) Build(ctx context.Context, roster Roster) ([]*Category, error) {
	log := logger.FromContext(ctx)

	ext, err := b.loadExtension(ctx)
	if err != nil {
		log.Warn(LogMsgCatalogUnavailable, "error", err)
		b.publish(ctx, event.NewCatalogBuiltEvent(len(roster.Party), 0, 0, false))
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	p := newPartitioner(b.universe, ext.Items)

	healing := newCategory(CategoryHealing)
	for _, g := range healingGroups {
		healing.Entries = append(healing.Entries, p.take(g))
	}
	pokeballs := p.take(pokeballGroup)
	lures := p.take(lureGroup)
	misc := p.take(miscGroup)
	exp := p.take(expGroup)
	vouchers := p.take(voucherGroup)
	money := p.take(moneyGroup)
	held, global := p.remainder()

	statBoosters := newCategory(CategoryStatBoosters,
		newCategory(CategoryBaseStats, itemsOf(baseStatBoosters())...),
		newCategory(CategoryTemporary, itemsOf(tempStatBoosters())...),
		newCategory(CategorySpeciesSpecific, itemsOf(speciesBoosters(roster.Party, ext.SpeciesBoosters))...),
	)

	pokemon := newCategory(CategoryPokemonItems,
		held,
		healing,
		misc,
		exp,
		newCategory(CategoryTMs, itemsOf(b.machines(roster.Party))...),
		newCategory(CategoryEvolution, itemsOf(b.evolutionItems(roster))...),
		newCategory(CategoryBerries, itemsOf(berries())...),
		statBoosters,
		newCategory(CategoryTypeBoosters, itemsOf(typeBoosters())...),
		newCategory(CategoryNatureMints, itemsOf(natureMints())...),
		newCategory(CategoryTeraShards, itemsOf(teraShards())...),
	)
	globalItems := newCategory(CategoryGlobalItems, global, pokeballs, lures, vouchers, money)

	tree := []*Category{globalItems, pokemon}
	items, categories := len(Flatten(tree...)), CountCategories(tree...)
	log.Info(LogMsgCatalogBuilt, "party_size", len(roster.Party), "items", items, "categories", categories)
	b.publish(ctx, event.NewCatalogBuiltEvent(len(roster.Party), items, categories, true))

	return tree, nil
}

func (b *Builder) loadExtension(ctx context.Context) (*gamedata.Extension, error) {
	if b.extension == nil {
		return nil, errors.New(ErrMsgExtensionNotConfigured)
	}
	ext, err := b.extension.Load(ctx)
	if err != nil {
		return nil, err
	}
	if ext == nil {
		return nil, errors.New(ErrMsgExtensionMissing)
	}
	return ext, nil
}

func (b *Builder) publish(ctx context.Context, evt event.Event) {
	if err := b.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// partitioner hands out visible descriptors to groups, each at most once
type partitioner struct {
	visible []*domain.Descriptor
	placed  map[*domain.Descriptor]bool
}

func newPartitioner(sources ...[]*domain.Descriptor) *partitioner {
	p := &partitioner{placed: make(map[*domain.Descriptor]bool)}
	for _, src := range sources {
		for _, d := range src {
			if d == nil || d.Hidden {
				continue
			}
			p.visible = append(p.visible, d)
		}
	}
	return p
}

func (p *partitioner) take(g group) *Category {
	c := newCategory(g.name)
	for _, pass := range g.passes {
		for _, d := range p.visible {
			if p.placed[d] || !slices.Contains(pass, d.Kind) {
				continue
			}
			p.placed[d] = true
			c.Entries = append(c.Entries, &Item{Descriptor: d})
		}
	}
	return c
}

// remainder splits whatever no group claimed into held and global items.
// Static descriptors of generated kinds land here too; they never collide with
// generated ones since placement is by pointer. Temporary stat boosters are
// always generated, so static ones are dropped.
func (p *partitioner) remainder() (held, global *Category) {
	held, global = newCategory(CategoryMiscHeld), newCategory(CategoryMiscGlobal)
	for _, d := range p.visible {
		if p.placed[d] || d.Kind == domain.KindTempStatBooster {
			continue
		}
		p.placed[d] = true
		if slices.Contains(heldKinds, d.Kind) {
			held.Entries = append(held.Entries, &Item{Descriptor: d})
		} else {
			global.Entries = append(global.Entries, &Item{Descriptor: d})
		}
	}
	return held, global
}

// machines lists TMs any member can learn but does not know, by first appearance
func (b *Builder) machines(party []*domain.Creature) []*domain.Descriptor {
	var out []*domain.Descriptor
	seen := make(map[domain.MoveID]bool)
	for _, c := range party {
		if c == nil {
			continue
		}
		for _, move := range c.CompatibleTMs {
			if seen[move] || c.Knows(move) {
				continue
			}
			seen[move] = true
			out = append(out, &domain.Descriptor{
				Key:  fmt.Sprintf(tmKeyFormat, move),
				Name: fmt.Sprintf(tmNameFormat, b.rules.MoveName(move)),
				Kind: domain.KindTM,
				Move: move,
			})
		}
	}
	return out
}

// evolutionItems lists evolution items then form change items usable by the party
func (b *Builder) evolutionItems(roster Roster) []*domain.Descriptor {
	var out []*domain.Descriptor
	seen := make(map[string]bool)
	add := func(key, name string, kind domain.ItemKind) {
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, &domain.Descriptor{Key: key, Name: name, Kind: kind, ItemKey: key})
	}

	for _, c := range roster.Party {
		if c == nil {
			continue
		}
		for _, e := range b.rules.Evolutions(c.Species) {
			if canEvolve(e, c.FormKey, c.Level) {
				add(e.ItemKey, e.ItemName, domain.KindEvolutionItem)
			}
		}
		if !c.IsFusion() {
			continue
		}
		for _, e := range b.rules.Evolutions(c.FusionSpecies) {
			if canEvolve(e, c.FusionFormKey, c.Level) {
				add(e.ItemKey, e.ItemName, domain.KindEvolutionItem)
			}
		}
	}

	for _, c := range roster.Party {
		if c == nil {
			continue
		}
		for _, fc := range b.rules.FormChanges(c.Species) {
			if canChangeForm(fc, c, roster) {
				add(fc.ItemKey, fc.ItemName, domain.KindFormChangeItem)
			}
		}
	}
	return out
}

func canEvolve(e gamedata.Evolution, formKey string, level int) bool {
	if e.ItemKey == "" {
		return false
	}
	if e.EvoFormKey != "" && e.PreFormKey != formKey {
		return false
	}
	return level >= e.MinLevel
}

func canChangeForm(fc gamedata.FormChange, c *domain.Creature, roster Roster) bool {
	if !fc.Active || fc.ItemKey == "" || c.HoldsFormChangeItem(fc.ItemKey) {
		return false
	}
	if containsAny(fc.FormKey, megaFormKeys) && !roster.MegaAccess {
		return false
	}
	if containsAny(fc.FormKey, gigantamaxFormKeys) && !roster.GigantamaxAccess {
		return false
	}
	return true
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

// speciesBoosters lists boosters whose species list matches a member. A booster
// listing Pikachu also matches any member that knows Fling.
func speciesBoosters(party []*domain.Creature, boosters []gamedata.SpeciesBooster) []*domain.Descriptor {
	var out []*domain.Descriptor
	seen := make(map[string]bool)
	for _, c := range party {
		if c == nil {
			continue
		}
		for _, bst := range boosters {
			if seen[bst.Key] {
				continue
			}
			flingable := slices.Contains(bst.Species, domain.SpeciesPikachu) && c.Knows(domain.MoveFling)
			if !slices.Contains(bst.Species, c.Species) && !flingable {
				continue
			}
			seen[bst.Key] = true
			out = append(out, &domain.Descriptor{
				Key:     bst.Key,
				Name:    bst.Name,
				Kind:    domain.KindSpeciesStatBooster,
				ItemKey: bst.Key,
			})
		}
	}
	return out
}

var keyReplacer = strings.NewReplacer(" ", "_", ".", "", "-", "_")

func keyOf(format, name string) string {
	return fmt.Sprintf(format, keyReplacer.Replace(strings.ToLower(name)))
}

func teraShards() []*domain.Descriptor {
	out := make([]*domain.Descriptor, 0, domain.TeraTypeCount)
	for t := domain.TypeNormal; int(t) < domain.TeraTypeCount; t++ {
		out = append(out, &domain.Descriptor{
			Key:  keyOf(teraKeyFormat, t.String()),
			Name: fmt.Sprintf(teraNameFormat, t),
			Kind: domain.KindTeraShard,
			Type: t,
		})
	}
	return out
}

func berries() []*domain.Descriptor {
	out := make([]*domain.Descriptor, 0, domain.BerryCount)
	for b := domain.BerrySitrus; int(b) < domain.BerryCount; b++ {
		out = append(out, &domain.Descriptor{
			Key:   keyOf(berryKeyFormat, b.String()),
			Name:  b.String(),
			Kind:  domain.KindBerry,
			Berry: b,
		})
	}
	return out
}

func natureMints() []*domain.Descriptor {
	out := make([]*domain.Descriptor, 0, domain.NatureCount)
	for n := domain.NatureHardy; n.Valid(); n++ {
		out = append(out, &domain.Descriptor{
			Key:    keyOf(mintKeyFormat, n.String()),
			Name:   fmt.Sprintf(mintNameFormat, n),
			Kind:   domain.KindNatureMint,
			Nature: n,
		})
	}
	return out
}

func baseStatBoosters() []*domain.Descriptor {
	out := make([]*domain.Descriptor, 0, domain.StatCount)
	for s := domain.StatHP; s.Valid(); s++ {
		out = append(out, &domain.Descriptor{
			Key:  keyOf(vitaminKeyFormat, s.VitaminName()),
			Name: s.VitaminName(),
			Kind: domain.KindBaseStatBooster,
			Stat: s,
		})
	}
	return out
}

func tempStatBoosters() []*domain.Descriptor {
	out := make([]*domain.Descriptor, 0, domain.TempStatCount)
	for s := domain.TempStatAttack; int(s) < domain.TempStatCount; s++ {
		out = append(out, &domain.Descriptor{
			Key:      keyOf(tempStatKeyFormat, s.String()),
			Name:     s.String(),
			Kind:     domain.KindTempStatBooster,
			TempStat: s,
		})
	}
	return out
}

func typeBoosters() []*domain.Descriptor {
	out := make([]*domain.Descriptor, 0, domain.AttackTypeCount)
	for t := domain.TypeNormal; int(t) < domain.AttackTypeCount; t++ {
		out = append(out, &domain.Descriptor{
			Key:    keyOf(typeBoosterKeyFormat, t.String()),
			Name:   typeBoosterNames[t],
			Kind:   domain.KindTypeBooster,
			Type:   t,
			Amount: typeBoosterPercent,
		})
	}
	return out
}

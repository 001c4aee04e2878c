package cheat

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/RogueMods_Go/internal/catalog"
	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/event"
	"github.com/osse101/RogueMods_Go/internal/logger"
	"github.com/osse101/RogueMods_Go/internal/menu"
)

// Modifier is an applied catalog item and what it was pointed at
type Modifier struct {
	PlayerID string             `json:"player_id"`
	Item     *domain.Descriptor `json:"item"`
	// Target and Fusion are party indexes, NoTarget when unused
	Target int `json:"target"`
	Fusion int `json:"fusion"`
	// MoveSlot indexes the target's moveset, NoTarget when unused
	MoveSlot int `json:"move_slot"`
}

// ModifierSink receives applied modifiers, typically the running game
type ModifierSink interface {
	Apply(ctx context.Context, m Modifier) error
}

// SinkFunc adapts a function to ModifierSink
type SinkFunc func(ctx context.Context, m Modifier) error

// Apply implements ModifierSink
func (f SinkFunc) Apply(ctx context.Context, m Modifier) error { return f(ctx, m) }

// GameData resolves the names shown on targeting screens
type GameData interface {
	Species(id domain.SpeciesID) (*domain.Species, error)
	MoveName(id domain.MoveID) string
}

// Service defines the item menu
type Service interface {
	// Open builds the catalog for roster and presents it. It fails with
	// domain.ErrCatalogUnavailable rather than showing a partial tree.
	Open(ctx context.Context, playerID string, roster catalog.Roster) (*menu.Navigator, error)
}

type service struct {
	builder   *catalog.Builder
	data      GameData
	sink      ModifierSink
	publisher event.Publisher
	title     cases.Caser
}

// NewService creates the item menu
func NewService(builder *catalog.Builder, data GameData, sink ModifierSink, publisher event.Publisher) Service {
	if publisher == nil {
		publisher = event.Nop{}
	}
	return &service{
		builder:   builder,
		data:      data,
		sink:      sink,
		publisher: publisher,
		title:     cases.Title(language.English),
	}
}

func (s *service) Open(ctx context.Context, playerID string, roster catalog.Roster) (*menu.Navigator, error) {
	tree, err := s.builder.Build(ctx, roster)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgMenuOpened, "player_id", playerID, "party_size", len(roster.Party))

	b := &treeBuilder{service: s, player: playerID, party: roster.Party}
	root := &menu.Node{Label: TitleItems}
	for _, c := range tree {
		root.Children = append(root.Children, b.category(c))
	}
	return menu.New(ctx, root)
}

// treeBuilder turns catalog categories into menu nodes for one party
type treeBuilder struct {
	*service
	player string
	party  []*domain.Creature
}

func (b *treeBuilder) category(c *catalog.Category) *menu.Node {
	node := &menu.Node{Label: c.Name}
	for _, e := range c.Entries {
		switch v := e.(type) {
		case *catalog.Category:
			node.Children = append(node.Children, b.category(v))
		case *catalog.Item:
			node.Children = append(node.Children, b.item(v.Descriptor, node))
		}
	}
	return node
}

func (b *treeBuilder) item(d *domain.Descriptor, parent *menu.Node) *menu.Node {
	switch d.Kind.Target() {
	case domain.TargetCreature:
		return menu.Leaf(d.Name, b.push(b.members(TitleSelectMember, NoTarget, func(i int) menu.Action {
			return b.apply(Modifier{Item: d, Target: i, Fusion: NoTarget, MoveSlot: NoTarget}, parent)
		})))
	case domain.TargetMove:
		return menu.Leaf(d.Name, b.push(b.members(TitleSelectMember, NoTarget, func(i int) menu.Action {
			return b.push(b.moves(i, func(slot int) menu.Action {
				return b.apply(Modifier{Item: d, Target: i, Fusion: NoTarget, MoveSlot: slot}, parent)
			}))
		})))
	case domain.TargetFusion:
		return menu.Leaf(d.Name, b.push(b.members(TitleSelectMember, NoTarget, func(i int) menu.Action {
			return b.push(b.members(TitleSelectFusion, i, func(j int) menu.Action {
				return b.apply(Modifier{Item: d, Target: i, Fusion: j, MoveSlot: NoTarget}, parent)
			}))
		})))
	default:
		return menu.Leaf(d.Name, b.apply(Modifier{Item: d, Target: NoTarget, Fusion: NoTarget, MoveSlot: NoTarget}, parent))
	}
}

func (b *treeBuilder) push(screen *menu.Node) menu.Action {
	return func(context.Context) (menu.Outcome, error) {
		return menu.Outcome{Next: menu.Push, Target: screen}, nil
	}
}

// members lists the party, leaving out the member at skip
func (b *treeBuilder) members(title string, skip int, pick func(i int) menu.Action) *menu.Node {
	screen := &menu.Node{Label: title}
	for i, c := range b.party {
		if i == skip || c == nil {
			continue
		}
		screen.Children = append(screen.Children, menu.Leaf(b.memberLabel(c), pick(i)))
	}
	return screen
}

func (b *treeBuilder) memberLabel(c *domain.Creature) string {
	name := c.Nickname
	if name == "" {
		if sp, err := b.data.Species(c.Species); err == nil {
			name = sp.Name
		}
	}
	return fmt.Sprintf(memberLabelFormat, b.title.String(name), c.Level)
}

func (b *treeBuilder) moves(member int, pick func(slot int) menu.Action) *menu.Node {
	screen := &menu.Node{Label: TitleSelectMove}
	for slot, move := range b.party[member].Moveset {
		screen.Children = append(screen.Children, menu.Leaf(b.data.MoveName(move), pick(slot)))
	}
	return screen
}

// apply hands the modifier to the sink and returns to the category the item was listed in
func (b *treeBuilder) apply(m Modifier, category *menu.Node) menu.Action {
	m.PlayerID = b.player
	return func(ctx context.Context) (menu.Outcome, error) {
		log := logger.FromContext(ctx)
		if err := b.sink.Apply(ctx, m); err != nil {
			return menu.Outcome{}, err
		}
		log.Info(LogMsgModifierApplied, "player_id", m.PlayerID, "item", m.Item.Key, "kind", m.Item.Kind, "target", m.Target, "fusion", m.Fusion, "move_slot", m.MoveSlot)

		evt := event.NewModifierAppliedEvent(event.ModifierAppliedPayloadV1{
			ItemKey:  m.Item.Key,
			Kind:     m.Item.Kind.String(),
			Target:   m.Target,
			Fusion:   m.Fusion,
			MoveSlot: m.MoveSlot,
		})
		if err := b.publisher.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
		return menu.Outcome{Applied: true, Next: menu.ReturnTo, Target: category}, nil
	}
}

package shop

import (
	"context"
	"math/rand/v2"

	"github.com/osse101/RogueMods_Go/internal/config"
	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/event"
	"github.com/osse101/RogueMods_Go/internal/ledger"
	"github.com/osse101/RogueMods_Go/internal/logger"
	"github.com/osse101/RogueMods_Go/internal/menu"
	"github.com/osse101/RogueMods_Go/internal/session"
)

// GameData resolves species and the names shown on offers
type GameData interface {
	Species(id domain.SpeciesID) (*domain.Species, error)
	MoveName(id domain.MoveID) string
	AbilityName(id domain.AbilityID) string
}

// ModsSource supplies the current mod knobs
type ModsSource interface {
	Mods() config.Mods
}

// screens lists the shop's sub screens in display order
var screens = []struct {
	title string
	kind  domain.UnlockKind
}{
	{TitleEggMoves, domain.UnlockEggMove},
	{TitleShinies, domain.UnlockShiny},
	{TitleAbilities, domain.UnlockAbility},
	{TitleIVs, domain.UnlockIV},
	{TitleNatures, domain.UnlockNature},
}

// Service defines the candy shop
type Service interface {
	// OpenShop opens the unlock menu for a species' root. Sub screens with
	// nothing left to unlock are hidden.
	OpenShop(ctx context.Context, sess *session.Session, species domain.SpeciesID) (*menu.Navigator, error)
	// Offers lists every still lockable unlock with its current price
	Offers(ctx context.Context, sess *session.Session, species domain.SpeciesID) ([]Offer, error)
	// Regenerate rolls the regeneration chance for a fully collected species
	Regenerate(ctx context.Context, sess *session.Session, species domain.SpeciesID) (bool, error)
}

type service struct {
	data      GameData
	mods      ModsSource
	publisher event.Publisher
	rng       ledger.Roller
}

// Option customizes the shop
type Option func(*service)

// WithRoller replaces the random source used by Regenerate
func WithRoller(rng ledger.Roller) Option {
	return func(s *service) { s.rng = rng }
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewService creates the candy shop
func NewService(data GameData, mods ModsSource, publisher event.Publisher, opts ...Option) Service {
	if publisher == nil {
		publisher = event.Nop{}
	}
	s := &service{data: data, mods: mods, publisher: publisher, rng: globalRand{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) root(species domain.SpeciesID) (*domain.Species, error) {
	sp, err := s.data.Species(species)
	if err != nil {
		return nil, err
	}
	if sp.Root() == sp.ID {
		return sp, nil
	}
	return s.data.Species(sp.Root())
}

func (s *service) offerSet(l *ledger.Ledger, sp *domain.Species) offerSet {
	return offerSet{
		data:    s.data,
		pricing: ledger.NewPricing(s.mods.Mods().CandyCostMultiplier),
		ledger:  l,
		species: sp,
	}
}

// offers lists the offers of the given kinds under the session lock
func (s *service) offers(sess *session.Session, sp *domain.Species, kinds ...domain.UnlockKind) ([]Offer, error) {
	var out []Offer
	err := sess.Do(func(l *ledger.Ledger) error {
		set := s.offerSet(l, sp)
		for _, kind := range kinds {
			offers, err := set.byKind(kind)
			if err != nil {
				return err
			}
			out = append(out, offers...)
		}
		return nil
	})
	return out, err
}

func (s *service) Offers(ctx context.Context, sess *session.Session, species domain.SpeciesID) ([]Offer, error) {
	sp, err := s.root(species)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgSpeciesLookupFail, "species", species, "error", err)
		return nil, err
	}
	kinds := make([]domain.UnlockKind, 0, len(screens))
	for _, screen := range screens {
		kinds = append(kinds, screen.kind)
	}
	return s.offers(sess, sp, kinds...)
}

func (s *service) Regenerate(ctx context.Context, sess *session.Session, species domain.SpeciesID) (bool, error) {
	sp, err := s.root(species)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgSpeciesLookupFail, "species", species, "error", err)
		return false, err
	}
	chance := s.mods.Mods().RegenChance
	var ok bool
	err = sess.Do(func(l *ledger.Ledger) error {
		ok, err = l.RollRegeneration(sp.ID, chance, s.rng)
		return err
	})
	if err != nil {
		return false, err
	}
	if ok {
		logger.FromContext(ctx).Info(LogMsgRegenerated, "player_id", sess.PlayerID(), "species", sp.ID)
	}
	return ok, nil
}

func (s *service) OpenShop(ctx context.Context, sess *session.Session, species domain.SpeciesID) (*menu.Navigator, error) {
	sp, err := s.root(species)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgSpeciesLookupFail, "species", species, "error", err)
		return nil, err
	}

	root := menu.Lazy(TitleShop, func(ctx context.Context) ([]*menu.Node, error) {
		var nodes []*menu.Node
		for _, screen := range screens {
			offers, err := s.offers(sess, sp, screen.kind)
			if err != nil {
				return nil, err
			}
			if len(offers) == 0 {
				continue
			}
			nodes = append(nodes, menu.Lazy(screen.title, s.offerScreen(sess, sp, screen.kind)))
		}
		return nodes, nil
	})

	logger.FromContext(ctx).Info(LogMsgShopOpened, "player_id", sess.PlayerID(), "species", sp.ID)
	return menu.New(ctx, root, menu.WithCommitter(sess.Committer()))
}

func (s *service) offerScreen(sess *session.Session, sp *domain.Species, kind domain.UnlockKind) menu.ExpandFunc {
	return func(ctx context.Context) ([]*menu.Node, error) {
		offers, err := s.offers(sess, sp, kind)
		if err != nil {
			return nil, err
		}
		nodes := make([]*menu.Node, 0, len(offers))
		for _, offer := range offers {
			nodes = append(nodes, menu.Leaf(offer.Label, s.purchase(sess, sp, offer)))
		}
		return nodes, nil
	}
}

// purchase checks funds, spends, then unlocks, all under the session lock.
// An unaffordable offer is a rejected outcome, not an error.
func (s *service) purchase(sess *session.Session, sp *domain.Species, offer Offer) menu.Action {
	return func(ctx context.Context) (menu.Outcome, error) {
		log := logger.FromContext(ctx)

		var afforded bool
		err := sess.Do(func(l *ledger.Ledger) error {
			ok, err := l.CanAfford(sp.ID, offer.Price)
			if err != nil || !ok {
				return err
			}
			if err := l.SpendCandy(sp.ID, offer.Price); err != nil {
				return err
			}
			afforded = true
			return offer.unlock(l)
		})
		if err != nil {
			return menu.Outcome{}, err
		}
		if !afforded {
			log.Info(LogMsgCannotAfford, "species", sp.ID, "kind", offer.Kind, "price", offer.Price)
			return menu.Rejected(), nil
		}

		log.Info(LogMsgUnlockPurchased, "player_id", sess.PlayerID(), "species", sp.ID, "kind", offer.Kind, "name", offer.Name, "price", offer.Price)
		evt := event.NewUnlockPurchasedEvent(sess.PlayerID(), sp.ID, offer.Kind, offer.Label, offer.Price)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
		return menu.Outcome{Applied: true, Mutated: true, Next: menu.Root}, nil
	}
}

package shop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RogueMods_Go/internal/commit"
	"github.com/osse101/RogueMods_Go/internal/config"
	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/event"
	"github.com/osse101/RogueMods_Go/internal/gamedata"
	"github.com/osse101/RogueMods_Go/internal/menu"
	"github.com/osse101/RogueMods_Go/internal/repository"
	"github.com/osse101/RogueMods_Go/internal/session"
	"github.com/osse101/RogueMods_Go/internal/worker"
)

const (
	squirtle domain.SpeciesID = 7
	gastly   domain.SpeciesID = 92
	pichu    domain.SpeciesID = 172
	raichu   domain.SpeciesID = 26
)

type staticMods config.Mods

func (m staticMods) Mods() config.Mods { return config.Mods(m) }

func modsWithMultiplier(mult float64) staticMods {
	m := config.DefaultMods()
	m.CandyCostMultiplier = mult
	return staticMods(m)
}

type failingGateway struct{}

func (failingGateway) Commit(context.Context, *domain.Save) error {
	return errors.Join(domain.ErrCommitFailed, errors.New("write timeout"))
}

func loadRegistry(t *testing.T) *gamedata.Registry {
	t.Helper()
	l, err := gamedata.NewLoader()
	require.NoError(t, err)
	reg, err := l.Load("../../configs/gamedata/gamedata.json")
	require.NoError(t, err)
	return reg
}

type fixture struct {
	reg   *gamedata.Registry
	saves *repository.MemorySaves
	sess  *session.Session
}

func newFixture(t *testing.T, gateway commit.Gateway) *fixture {
	t.Helper()
	reg := loadRegistry(t)
	saves := repository.NewMemorySaves()
	if gateway == nil {
		pool := worker.NewPool(1, 4)
		pool.Start()
		t.Cleanup(pool.Stop)
		gateway = commit.NewGateway(pool, saves, nil, time.Second)
	}
	sess, err := session.Open(context.Background(), "ash", reg, saves, gateway)
	require.NoError(t, err)
	return &fixture{reg: reg, saves: saves, sess: sess}
}

func offersOf(offers []Offer, kind domain.UnlockKind) []Offer {
	var out []Offer
	for _, o := range offers {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func prices(offers []Offer) []int {
	out := make([]int, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.Price)
	}
	return out
}

func screenLabels(nav *menu.Navigator) []string {
	var out []string
	for _, e := range nav.Screen() {
		out = append(out, e.Label)
	}
	return out
}

func TestOffers_FreshSave(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewService(f.reg, modsWithMultiplier(1), nil)

	offers, err := svc.Offers(context.Background(), f.sess, squirtle)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 5, 6, 6}, prices(offersOf(offers, domain.UnlockEggMove)))
	assert.Equal(t, []int{40, 60, 80}, prices(offersOf(offers, domain.UnlockShiny)))
	assert.Equal(t, []int{15, 30}, prices(offersOf(offers, domain.UnlockAbility)))
	assert.Len(t, offersOf(offers, domain.UnlockIV), domain.StatCount)
	assert.Len(t, offersOf(offers, domain.UnlockNature), domain.NatureCount)

	eggMoves := offersOf(offers, domain.UnlockEggMove)
	assert.Equal(t, "x5 Unlock Ice Beam", eggMoves[1].Label)
	assert.Equal(t, "x6 Unlock Protect", eggMoves[2].Label)
	abilities := offersOf(offers, domain.UnlockAbility)
	assert.Equal(t, "x30 Unlock Rain Dish", abilities[1].Label)
	assert.Equal(t, "x5 Improve HP", offersOf(offers, domain.UnlockIV)[0].Label)
	assert.Equal(t, "x10 Improve Hardy", offersOf(offers, domain.UnlockNature)[0].Label)
}

func TestOffers_Pricing(t *testing.T) {
	tests := []struct {
		name    string
		species domain.SpeciesID
		mult    float64
		kind    domain.UnlockKind
		want    []int
	}{
		{"rare egg move at half price", squirtle, 0.5, domain.UnlockEggMove, []int{3, 3, 3, 3}},
		{"free", squirtle, 0, domain.UnlockShiny, []int{0, 0, 0}},
		{"shiny tiers for cost 4", gastly, 1, domain.UnlockShiny, []int{30, 45, 60}},
		{"shiny tiers at one and a half", gastly, 1.5, domain.UnlockShiny, []int{45, 68, 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			svc := NewService(f.reg, modsWithMultiplier(tt.mult), nil)
			offers, err := svc.Offers(context.Background(), f.sess, tt.species)
			require.NoError(t, err)
			assert.Equal(t, tt.want, prices(offersOf(offers, tt.kind)))
		})
	}
}

func TestOffers_UnknownSpecies(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewService(f.reg, modsWithMultiplier(1), nil)

	_, err := svc.Offers(context.Background(), f.sess, 9999)
	assert.ErrorIs(t, err, domain.ErrSpeciesNotFound)
	_, err = svc.OpenShop(context.Background(), f.sess, 9999)
	assert.ErrorIs(t, err, domain.ErrSpeciesNotFound)
}

func TestOpenShop_Purchase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.sess.Ledger().AddCandy(squirtle, 50))

	bus := event.NewMemoryBus()
	var purchased []event.UnlockPurchasedPayloadV1
	bus.Subscribe(event.UnlockPurchased, func(_ context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.UnlockPurchasedPayloadV1](evt.Payload)
		purchased = append(purchased, p)
		return err
	})

	svc := NewService(f.reg, modsWithMultiplier(1), bus)
	nav, err := svc.OpenShop(ctx, f.sess, squirtle)
	require.NoError(t, err)
	assert.Equal(t, []string{TitleEggMoves, TitleShinies, TitleAbilities, TitleIVs, TitleNatures, menu.CancelLabel}, screenLabels(nav))

	_, err = nav.Select(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"x40 Unlock common shiny", "x60 Unlock rare shiny", "x80 Unlock epic shiny", menu.CancelLabel,
	}, screenLabels(nav))

	out, err := nav.Select(ctx, 1)
	require.NoError(t, err)
	assert.False(t, out.Applied, "60 candy is more than the balance")
	assert.Equal(t, TitleShinies, nav.Current().Label)

	out, err = nav.Select(ctx, 0)
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, TitleShop, nav.Current().Label)

	candy, err := f.sess.Ledger().Candy(squirtle)
	require.NoError(t, err)
	assert.Equal(t, 10, candy)
	assert.True(t, f.sess.Ledger().HasVariant(squirtle, domain.VariantCommon))

	stored, err := f.saves.LoadSave(ctx, "ash")
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Starter(squirtle).CandyCount)

	require.Len(t, purchased, 1)
	assert.Equal(t, domain.UnlockShiny, purchased[0].Kind)
	assert.Equal(t, 40, purchased[0].Price)
}

func TestOpenShop_HidesCompletedScreens(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	l := f.sess.Ledger()
	require.NoError(t, l.UnlockAbility(squirtle, domain.AbilityAttr1))
	require.NoError(t, l.UnlockAbility(squirtle, domain.AbilityAttrHidden))
	require.NoError(t, l.UnlockVariant(squirtle, domain.VariantEpic))

	nav, err := NewService(f.reg, modsWithMultiplier(1), nil).OpenShop(ctx, f.sess, squirtle)
	require.NoError(t, err)
	assert.Equal(t, []string{TitleEggMoves, TitleIVs, TitleNatures, menu.CancelLabel}, screenLabels(nav))
}

func TestOpenShop_EvolvedSpeciesUsesRoot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.sess.Ledger().AddCandy(pichu, 20))

	nav, err := NewService(f.reg, modsWithMultiplier(1), nil).OpenShop(ctx, f.sess, raichu)
	require.NoError(t, err)

	_, err = nav.Select(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "x5 Unlock Play Rough", nav.Screen()[0].Label)

	out, err := nav.Select(ctx, 0)
	require.NoError(t, err)
	assert.True(t, out.Applied)

	candy, _ := f.sess.Ledger().Candy(pichu)
	assert.Equal(t, 15, candy)
	has, _ := f.sess.Ledger().HasEggMove(pichu, 0)
	assert.True(t, has)
}

func TestOpenShop_CommitFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, failingGateway{})
	require.NoError(t, f.sess.Ledger().AddCandy(squirtle, 50))

	nav, err := NewService(f.reg, modsWithMultiplier(1), nil).OpenShop(ctx, f.sess, squirtle)
	require.NoError(t, err)
	_, err = nav.Select(ctx, 3)
	require.NoError(t, err)

	_, err = nav.Select(ctx, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommitFailed)
	assert.Equal(t, menu.Exited, nav.State())

	require.NoError(t, f.sess.Reload(ctx))
	candy, _ := f.sess.Ledger().Candy(squirtle)
	assert.Equal(t, 0, candy, "nothing was ever stored")
}

type fixedRoll int

func (f fixedRoll) IntN(int) int { return int(f) }

func TestRegenerate(t *testing.T) {
	complete := func(f *fixture) {
		l := f.sess.Ledger()
		l.Save().DexEntry(squirtle).CaughtAttr = domain.DexAttrMale | domain.DexAttrFemale
		require.NoError(t, l.UnlockAbility(squirtle, domain.AbilityAttr1))
		require.NoError(t, l.UnlockAbility(squirtle, domain.AbilityAttrHidden))
	}

	tests := []struct {
		name     string
		chance   int
		roll     fixedRoll
		complete bool
		want     bool
	}{
		{"disabled", 0, 0, true, false},
		{"roll succeeds on complete species", 25, 10, true, true},
		{"roll fails", 25, 60, true, false},
		{"incomplete species", 100, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			if tt.complete {
				complete(f)
			}
			mods := config.DefaultMods()
			mods.RegenChance = tt.chance
			svc := NewService(f.reg, staticMods(mods), nil, WithRoller(tt.roll))

			got, err := svc.Regenerate(context.Background(), f.sess, squirtle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown species", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := NewService(f.reg, modsWithMultiplier(1), nil).Regenerate(context.Background(), f.sess, 99999)
		assert.ErrorIs(t, err, domain.ErrSpeciesNotFound)
	})
}

func TestPurchaseWhileListingOffers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	svc := NewService(f.reg, modsWithMultiplier(0), nil)
	const purchases = 20

	nav, err := svc.OpenShop(ctx, f.sess, squirtle)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	done := make(chan struct{})

	wg.Add(2)
	go func() {
		defer wg.Done()
		defer close(done)
		for range purchases {
			if _, err := nav.Select(ctx, 0); err != nil {
				errs <- err
				return
			}
			out, err := nav.Select(ctx, 0)
			if err != nil {
				errs <- err
				return
			}
			if !out.Applied {
				errs <- errors.New("free offer was not applied")
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if _, err := svc.Offers(ctx, f.sess, squirtle); err != nil {
				errs <- err
				return
			}
			if _, err := svc.Regenerate(ctx, f.sess, squirtle); err != nil {
				errs <- err
				return
			}
		}
	}()
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	stored, err := f.saves.LoadSave(ctx, "ash")
	require.NoError(t, err)
	assert.Equal(t, purchases, stored.Version, "every purchase committed once")
}

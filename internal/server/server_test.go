package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RogueMods_Go/internal/catalog"
	"github.com/osse101/RogueMods_Go/internal/cheat"
	"github.com/osse101/RogueMods_Go/internal/commit"
	"github.com/osse101/RogueMods_Go/internal/config"
	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/gamedata"
	"github.com/osse101/RogueMods_Go/internal/handler"
	"github.com/osse101/RogueMods_Go/internal/repository"
	"github.com/osse101/RogueMods_Go/internal/session"
	"github.com/osse101/RogueMods_Go/internal/settings"
	"github.com/osse101/RogueMods_Go/internal/shop"
	"github.com/osse101/RogueMods_Go/internal/worker"
)

const squirtle domain.SpeciesID = 7

type failingGateway struct{}

func (failingGateway) Commit(context.Context, *domain.Save) error {
	return errors.New("disk full")
}

type testAPI struct {
	router http.Handler
	saves  *repository.MemorySaves
	menus  *handler.MenuStore
}

func newTestAPI(t *testing.T, opts Options, gateway commit.Gateway) *testAPI {
	t.Helper()
	l, err := gamedata.NewLoader()
	require.NoError(t, err)
	reg, err := l.Load("../../configs/gamedata/gamedata.json")
	require.NoError(t, err)

	saves := repository.NewMemorySaves()
	seed := domain.NewSave("ash")
	seed.Starter(squirtle).CandyCount = 100
	require.NoError(t, saves.StoreSave(context.Background(), seed))

	if gateway == nil {
		pool := worker.NewPool(1, 4)
		pool.Start()
		t.Cleanup(pool.Stop)
		gateway = commit.NewGateway(pool, saves, nil, time.Second)
	}

	sessions := session.NewManager(reg, saves, gateway, 8, time.Minute)
	mods := settings.NewRegistry(config.DefaultMods(), nil)
	queue := cheat.NewQueue(0)
	items := cheat.NewService(catalog.NewBuilder(reg.Items(), reg, catalog.RegistryExtension(reg)), reg, queue, nil)
	menus := handler.NewMenuStore(8, time.Minute)

	router := NewRouter(opts, Handlers{
		Menus:    handler.NewMenuHandlers(menus),
		Shop:     handler.NewShopHandlers(sessions, shop.NewService(reg, mods, nil), reg, menus),
		Items:    handler.NewItemHandlers(items, queue, menus),
		Settings: handler.NewSettingsHandlers(mods),
		Players:  handler.NewPlayerHandlers(sessions, saves, reg),
	})
	return &testAPI{router: router, saves: saves, menus: menus}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func labels(m handler.MenuResponse) []string {
	out := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, e.Label)
	}
	return out
}

func (a *testAPI) selectEntry(t *testing.T, menuID string, index int) handler.SelectResponse {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/menus/"+menuID+"/select", handler.SelectRequest{Index: index})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[handler.SelectResponse](t, rec)
}

func TestShopFlow(t *testing.T) {
	api := newTestAPI(t, Options{}, nil)

	rec := api.do(t, http.MethodPost, "/api/v1/players/ash/shop", handler.OpenShopRequest{Species: "squirtle"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	opened := decode[handler.MenuResponse](t, rec)
	assert.Equal(t, shop.TitleShop, opened.Title)
	assert.Equal(t, []string{
		shop.TitleEggMoves, shop.TitleShinies, shop.TitleAbilities, shop.TitleIVs, shop.TitleNatures, "Cancel",
	}, labels(opened))

	sel := api.selectEntry(t, opened.ID, 0)
	assert.Equal(t, "push", sel.Outcome.Next)
	assert.Equal(t, shop.TitleEggMoves, sel.Menu.Title)
	require.NotEmpty(t, sel.Menu.Entries)
	assert.Contains(t, sel.Menu.Entries[0].Label, "x5 Unlock")

	sel = api.selectEntry(t, opened.ID, 0)
	assert.True(t, sel.Outcome.Applied)
	assert.True(t, sel.Outcome.Mutated)
	assert.Equal(t, "root", sel.Outcome.Next)
	assert.Equal(t, shop.TitleShop, sel.Menu.Title)

	stored, err := api.saves.LoadSave(context.Background(), "ash")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Version)
	assert.Equal(t, 95, stored.Starter(squirtle).CandyCount)

	rec = api.do(t, http.MethodGet, "/api/v1/players/ash/offers?species=7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	offers := decode[struct {
		Data handler.OffersResponse `json:"data"`
	}](t, rec)
	assert.Equal(t, 95, offers.Data.Candy)
	assert.Equal(t, 1, offers.Data.SaveVersion)

	// cancel out of the root closes the menu
	sel = api.selectEntry(t, opened.ID, len(sel.Menu.Entries)-1)
	assert.Equal(t, "exit", sel.Outcome.Next)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, "/api/v1/menus/"+opened.ID, nil).Code)
}

func TestShopFlow_CommitFailure(t *testing.T) {
	api := newTestAPI(t, Options{}, failingGateway{})

	rec := api.do(t, http.MethodPost, "/api/v1/players/ash/shop", handler.OpenShopRequest{Species: "7"})
	require.Equal(t, http.StatusCreated, rec.Code)
	opened := decode[handler.MenuResponse](t, rec)
	api.selectEntry(t, opened.ID, 0)

	rec = api.do(t, http.MethodPost, "/api/v1/menus/"+opened.ID+"/select", handler.SelectRequest{Index: 0})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, 0, api.menus.Len(), "failed menu is discarded")

	rec = api.do(t, http.MethodGet, "/api/v1/players/ash/save", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	save := decode[struct {
		Data domain.Save `json:"data"`
	}](t, rec)
	assert.Equal(t, 100, save.Data.Starters[squirtle].CandyCount, "session reloaded from the store")
}

func TestItemFlow(t *testing.T) {
	api := newTestAPI(t, Options{}, nil)

	rec := api.do(t, http.MethodPost, "/api/v1/players/ash/items", handler.OpenItemsRequest{
		Party: []handler.CreatureRequest{{Species: 25, Level: 12, Moveset: []domain.MoveID{85}}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	opened := decode[handler.MenuResponse](t, rec)
	assert.Equal(t, []string{catalog.CategoryGlobalItems, catalog.CategoryPokemonItems, "Cancel"}, labels(opened))
	assert.Equal(t, cheat.TitleItems, opened.Title)
	assert.Equal(t, []string{cheat.TitleItems}, opened.Breadcrumbs)

	sel := api.selectEntry(t, opened.ID, 0)
	lures := -1
	for i, e := range sel.Menu.Entries {
		if e.Label == catalog.CategoryLures {
			lures = i
		}
	}
	require.NotEqual(t, -1, lures)
	sel = api.selectEntry(t, opened.ID, lures)
	sel = api.selectEntry(t, opened.ID, 0)
	assert.True(t, sel.Outcome.Applied)
	assert.Equal(t, catalog.CategoryLures, sel.Menu.Title)

	rec = api.do(t, http.MethodGet, "/api/v1/players/ash/modifiers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mods := decode[struct {
		Data []cheat.Modifier `json:"data"`
	}](t, rec)
	require.Len(t, mods.Data, 1)
	assert.Equal(t, "lure", mods.Data[0].Item.Key)

	rec = api.do(t, http.MethodGet, "/api/v1/players/ash/modifiers", nil)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestSettingsEndpoints(t *testing.T) {
	api := newTestAPI(t, Options{}, nil)

	rec := api.do(t, http.MethodPost, "/api/v1/settings", handler.ApplySettingRequest{Key: "candy_cost_multiplier", Option: 3})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/api/v1/players/ash/offers?species=squirtle", nil)
	offers := decode[struct {
		Data handler.OffersResponse `json:"data"`
	}](t, rec)
	for _, o := range offers.Data.Offers {
		assert.Zero(t, o.Price, o.Label)
	}

	tests := []struct {
		name       string
		req        handler.ApplySettingRequest
		wantStatus int
	}{
		{"unknown key", handler.ApplySettingRequest{Key: "GOD_MODE"}, http.StatusBadRequest},
		{"option out of range", handler.ApplySettingRequest{Key: "SHINY", Option: 40}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, api.do(t, http.MethodPost, "/api/v1/settings", tt.req).Code)
		})
	}

	rec = api.do(t, http.MethodPost, "/api/v1/settings/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Data []handler.SettingView `json:"data"`
	}](t, rec)
	for _, s := range list.Data {
		assert.Equal(t, s.Default, s.Selected, s.Key)
	}
}

func TestRouter_Errors(t *testing.T) {
	api := newTestAPI(t, Options{APIKey: "k"}, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		key        string
		wantStatus int
	}{
		{"health is public", http.MethodGet, "/healthz", nil, "", http.StatusOK},
		{"api needs key", http.MethodGet, "/api/v1/settings", nil, "", http.StatusUnauthorized},
		{"unknown menu", http.MethodGet, "/api/v1/menus/nope", nil, "k", http.StatusNotFound},
		{"unknown species", http.MethodPost, "/api/v1/players/ash/shop", handler.OpenShopRequest{Species: "zzzzzzzzzz"}, "k", http.StatusNotFound},
		{"missing species", http.MethodPost, "/api/v1/players/ash/shop", handler.OpenShopRequest{}, "k", http.StatusBadRequest},
		{"offers without species", http.MethodGet, "/api/v1/players/ash/offers", nil, "k", http.StatusBadRequest},
		{"regenerate roll", http.MethodGet, "/api/v1/players/ash/regenerate?species=7", nil, "k", http.StatusOK},
		{"regenerate without species", http.MethodGet, "/api/v1/players/ash/regenerate", nil, "k", http.StatusBadRequest},
		{"species search", http.MethodGet, "/api/v1/species/search?q=squirtel", nil, "k", http.StatusOK},
		{"player list", http.MethodGet, "/api/v1/players", nil, "k", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if tt.body != nil {
				require.NoError(t, json.NewEncoder(&buf).Encode(tt.body))
			}
			req := httptest.NewRequest(tt.method, tt.path, &buf)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			api.router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

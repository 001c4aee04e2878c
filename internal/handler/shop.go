package handler

import (
	"context"
	"net/http"

	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/ledger"
	"github.com/osse101/RogueMods_Go/internal/logger"
	"github.com/osse101/RogueMods_Go/internal/session"
	"github.com/osse101/RogueMods_Go/internal/shop"
)

// SessionSource hands out the live session of a player
type SessionSource interface {
	Get(ctx context.Context, playerID string) (*session.Session, error)
}

// SpeciesFinder resolves a species from an id or a loosely typed name
type SpeciesFinder interface {
	FindByName(query string) (*domain.Species, error)
}

// OpenShopRequest opens the candy shop for one species
type OpenShopRequest struct {
	Species string `json:"species" validate:"required,max=64"`
}

// OffersResponse lists every unlock still for sale for a species
type OffersResponse struct {
	Species     domain.SpeciesID `json:"species"`
	Name        string           `json:"name"`
	Candy       int              `json:"candy"`
	Offers      []shop.Offer     `json:"offers"`
	PlayerID    string           `json:"player_id"`
	SaveVersion int              `json:"save_version"`
}

// RegenerateResponse reports the outcome of a regeneration roll
type RegenerateResponse struct {
	Species    domain.SpeciesID `json:"species"`
	Regenerate bool             `json:"regenerate"`
}

// ShopHandlers serves the candy shop
type ShopHandlers struct {
	sessions SessionSource
	shop     shop.Service
	species  SpeciesFinder
	menus    *MenuStore
}

// NewShopHandlers creates shop handlers
func NewShopHandlers(sessions SessionSource, svc shop.Service, species SpeciesFinder, menus *MenuStore) *ShopHandlers {
	return &ShopHandlers{sessions: sessions, shop: svc, species: species, menus: menus}
}

func (h *ShopHandlers) resolve(w http.ResponseWriter, r *http.Request, query string) (*session.Session, *domain.Species, bool) {
	playerID, ok := GetPathParam(r, w, ParamPlayerID)
	if !ok {
		return nil, nil, false
	}
	sp, err := h.species.FindByName(query)
	if err != nil {
		respondServiceError(w, r, "Find species", err)
		return nil, nil, false
	}
	sess, err := h.sessions.Get(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Open session", err)
		return nil, nil, false
	}
	return sess, sp, true
}

// HandleOpenShop opens a candy shop menu and renders its first screen
func (h *ShopHandlers) HandleOpenShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OpenShopRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open shop"); err != nil {
			return
		}
		sess, sp, ok := h.resolve(w, r, req.Species)
		if !ok {
			return
		}

		ctx := logger.WithPlayerID(r.Context(), sess.PlayerID())
		nav, err := h.shop.OpenShop(ctx, sess, sp.ID)
		if err != nil {
			respondServiceError(w, r, "Open shop", err)
			return
		}

		m := h.menus.add(MenuKindShop, sess.PlayerID(), nav, sess)
		logger.FromContext(ctx).Info(LogMsgMenuOpened, "menu_id", m.id, "kind", m.kind, "species", sp.ID)
		respondJSON(w, http.StatusCreated, m.render())
	}
}

// HandleGetOffers lists the prices of everything still lockable for a species
func (h *ShopHandlers) HandleGetOffers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, ParamSpecies)
		if !ok {
			return
		}
		sess, sp, ok := h.resolve(w, r, query)
		if !ok {
			return
		}

		offers, err := h.shop.Offers(r.Context(), sess, sp.ID)
		if err != nil {
			respondServiceError(w, r, "Get offers", err)
			return
		}
		var candy, version int
		err = sess.Do(func(l *ledger.Ledger) error {
			version = l.Save().Version
			var candyErr error
			candy, candyErr = l.Candy(sp.ID)
			return candyErr
		})
		if err != nil {
			respondServiceError(w, r, "Get offers", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: OffersResponse{
			Species:     sp.ID,
			Name:        sp.Name,
			Candy:       candy,
			Offers:      offers,
			PlayerID:    sess.PlayerID(),
			SaveVersion: version,
		}})
	}
}

// HandleRegenerate rolls whether a fully collected species regenerates
func (h *ShopHandlers) HandleRegenerate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, ParamSpecies)
		if !ok {
			return
		}
		sess, sp, ok := h.resolve(w, r, query)
		if !ok {
			return
		}

		regen, err := h.shop.Regenerate(r.Context(), sess, sp.ID)
		if err != nil {
			respondServiceError(w, r, "Regenerate", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: RegenerateResponse{Species: sp.ID, Regenerate: regen}})
	}
}

package handler

import (
	"net/http"

	"github.com/osse101/RogueMods_Go/internal/catalog"
	"github.com/osse101/RogueMods_Go/internal/cheat"
	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/logger"
)

// CreatureRequest is one party member as reported by the game client
type CreatureRequest struct {
	ID                  int              `json:"id"`
	Nickname            string           `json:"nickname" validate:"max=32"`
	Species             domain.SpeciesID `json:"species" validate:"required,min=1"`
	FormKey             string           `json:"form_key" validate:"max=64"`
	FusionSpecies       domain.SpeciesID `json:"fusion_species" validate:"min=0"`
	FusionFormKey       string           `json:"fusion_form_key" validate:"max=64"`
	Level               int              `json:"level" validate:"min=1"`
	Nature              domain.Nature    `json:"nature" validate:"min=0"`
	Moveset             []domain.MoveID  `json:"moveset" validate:"max=4"`
	CompatibleTMs       []domain.MoveID  `json:"compatible_tms"`
	HeldFormChangeItems []string         `json:"held_form_change_items"`
}

// OpenItemsRequest opens the item menu for a party
type OpenItemsRequest struct {
	Party            []CreatureRequest `json:"party" validate:"max=6,dive"`
	MegaAccess       bool              `json:"mega_access"`
	GigantamaxAccess bool              `json:"gigantamax_access"`
}

// Roster converts the request into the catalog roster
func (req OpenItemsRequest) Roster() catalog.Roster {
	party := make([]*domain.Creature, 0, len(req.Party))
	for _, c := range req.Party {
		party = append(party, &domain.Creature{
			ID:                  c.ID,
			Nickname:            c.Nickname,
			Species:             c.Species,
			FormKey:             c.FormKey,
			FusionSpecies:       c.FusionSpecies,
			FusionFormKey:       c.FusionFormKey,
			Level:               c.Level,
			Nature:              c.Nature,
			Moveset:             c.Moveset,
			CompatibleTMs:       c.CompatibleTMs,
			HeldFormChangeItems: c.HeldFormChangeItems,
		})
	}
	return catalog.Roster{Party: party, MegaAccess: req.MegaAccess, GigantamaxAccess: req.GigantamaxAccess}
}

// ModifierQueue hands applied modifiers over to the game client
type ModifierQueue interface {
	Drain(playerID string) []cheat.Modifier
}

// ItemHandlers serves the item menu
type ItemHandlers struct {
	items cheat.Service
	queue ModifierQueue
	menus *MenuStore
}

// NewItemHandlers creates item menu handlers
func NewItemHandlers(items cheat.Service, queue ModifierQueue, menus *MenuStore) *ItemHandlers {
	return &ItemHandlers{items: items, queue: queue, menus: menus}
}

// HandleOpenItems builds the item catalog for the posted party and opens it
func (h *ItemHandlers) HandleOpenItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		var req OpenItemsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open items"); err != nil {
			return
		}

		ctx := logger.WithPlayerID(r.Context(), playerID)
		nav, err := h.items.Open(ctx, playerID, req.Roster())
		if err != nil {
			respondServiceError(w, r, "Open items", err)
			return
		}

		m := h.menus.add(MenuKindItems, playerID, nav, nil)
		logger.FromContext(ctx).Info(LogMsgMenuOpened, "menu_id", m.id, "kind", m.kind, "party_size", len(req.Party))
		respondJSON(w, http.StatusCreated, m.render())
	}
}

// HandleDrainModifiers returns and clears the modifiers applied for a player
func (h *ItemHandlers) HandleDrainModifiers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		mods := h.queue.Drain(playerID)
		if mods == nil {
			mods = []cheat.Modifier{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: mods})
	}
}

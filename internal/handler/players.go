package handler

import (
	"net/http"

	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/repository"
)

// SpeciesResponse is a species search hit
type SpeciesResponse struct {
	ID     domain.SpeciesID `json:"id"`
	Name   string           `json:"name"`
	RootID domain.SpeciesID `json:"root_id"`
}

// PlayerHandlers serves saves and species lookups
type PlayerHandlers struct {
	sessions SessionSource
	// lister is nil when the store cannot enumerate players
	lister  repository.PlayerLister
	species SpeciesFinder
}

// NewPlayerHandlers creates player handlers
func NewPlayerHandlers(sessions SessionSource, lister repository.PlayerLister, species SpeciesFinder) *PlayerHandlers {
	return &PlayerHandlers{sessions: sessions, lister: lister, species: species}
}

// HandleListPlayers lists every player with a stored save
func (h *PlayerHandlers) HandleListPlayers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.lister == nil {
			respondError(w, http.StatusNotImplemented, ErrMsgPlayersUnsupported)
			return
		}
		players, err := h.lister.Players(r.Context())
		if err != nil {
			respondServiceError(w, r, "List players", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: players})
	}
}

// HandleGetSave returns the live save of a player
func (h *PlayerHandlers) HandleGetSave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		sess, err := h.sessions.Get(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get save", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: sess.Save()})
	}
}

// HandleSearchSpecies resolves a species by id or fuzzy name
func (h *PlayerHandlers) HandleSearchSpecies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, ParamQuery)
		if !ok {
			return
		}
		sp, err := h.species.FindByName(query)
		if err != nil {
			respondServiceError(w, r, "Search species", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: SpeciesResponse{ID: sp.ID, Name: sp.Name, RootID: sp.Root()}})
	}
}

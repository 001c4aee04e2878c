package handler

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/logger"
	"github.com/osse101/RogueMods_Go/internal/menu"
	"github.com/osse101/RogueMods_Go/internal/session"
)

// openMenu is a navigator kept between requests. mu serialises selections.
type openMenu struct {
	mu       sync.Mutex
	id       string
	kind     string
	playerID string
	nav      *menu.Navigator
	// sess is nil for menus that never commit
	sess *session.Session
}

// MenuStore keeps open navigators addressable by id; idle menus expire
type MenuStore struct {
	menus *expirable.LRU[string, *openMenu]
}

// NewMenuStore creates a store holding at most size menus for ttl each
func NewMenuStore(size int, ttl time.Duration) *MenuStore {
	return &MenuStore{menus: expirable.NewLRU[string, *openMenu](size, nil, ttl)}
}

func (s *MenuStore) add(kind, playerID string, nav *menu.Navigator, sess *session.Session) *openMenu {
	m := &openMenu{id: uuid.NewString(), kind: kind, playerID: playerID, nav: nav, sess: sess}
	s.menus.Add(m.id, m)
	return m
}

func (s *MenuStore) get(id string) (*openMenu, error) {
	m, ok := s.menus.Get(id)
	if !ok {
		return nil, domain.ErrMenuNotFound
	}
	return m, nil
}

func (s *MenuStore) remove(id string) {
	s.menus.Remove(id)
}

// Len reports how many menus are open
func (s *MenuStore) Len() int {
	return s.menus.Len()
}

// MenuResponse is one rendered screen
type MenuResponse struct {
	ID          string       `json:"id"`
	Kind        string       `json:"kind"`
	PlayerID    string       `json:"player_id"`
	State       string       `json:"state"`
	Title       string       `json:"title"`
	Breadcrumbs []string     `json:"breadcrumbs"`
	Entries     []menu.Entry `json:"entries"`
}

// OutcomeResponse reports what a selection did
type OutcomeResponse struct {
	Applied bool   `json:"applied"`
	Mutated bool   `json:"mutated"`
	Next    string `json:"next"`
}

// SelectResponse is the outcome of a selection and the screen that follows it
type SelectResponse struct {
	Outcome OutcomeResponse `json:"outcome"`
	Menu    MenuResponse    `json:"menu"`
}

// SelectRequest picks an entry on the current screen; the last index is Cancel
type SelectRequest struct {
	Index int `json:"index" validate:"min=0"`
}

func (m *openMenu) render() MenuResponse {
	resp := MenuResponse{
		ID:          m.id,
		Kind:        m.kind,
		PlayerID:    m.playerID,
		State:       m.nav.State().String(),
		Breadcrumbs: m.nav.Breadcrumbs(),
		Entries:     m.nav.Screen(),
	}
	if cur := m.nav.Current(); cur != nil && m.nav.State() != menu.Exited {
		resp.Title = cur.Label
	}
	return resp
}

// MenuHandlers serves screens and selections of any open menu
type MenuHandlers struct {
	menus *MenuStore
}

// NewMenuHandlers creates menu handlers over store
func NewMenuHandlers(store *MenuStore) *MenuHandlers {
	return &MenuHandlers{menus: store}
}

func (h *MenuHandlers) lookup(w http.ResponseWriter, r *http.Request) (*openMenu, bool) {
	id, ok := GetPathParam(r, w, ParamMenuID)
	if !ok {
		return nil, false
	}
	m, err := h.menus.get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, ErrMsgMenuNotFoundHTTP)
		return nil, false
	}
	return m, true
}

// HandleGetMenu renders the current screen
func (h *MenuHandlers) HandleGetMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := h.lookup(w, r)
		if !ok {
			return
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		respondJSON(w, http.StatusOK, m.render())
	}
}

// HandleSelect acts on one entry of the current screen. A failed commit closes
// the menu and reloads the player's session from the store.
func (h *MenuHandlers) HandleSelect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := h.lookup(w, r)
		if !ok {
			return
		}
		var req SelectRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Select"); err != nil {
			return
		}

		ctx := logger.WithPlayerID(r.Context(), m.playerID)
		m.mu.Lock()
		defer m.mu.Unlock()

		out, err := m.nav.Select(ctx, req.Index)
		if err != nil {
			if errors.Is(err, domain.ErrCommitFailed) || errors.Is(err, domain.ErrMenuExited) {
				h.menus.remove(m.id)
			}
			if errors.Is(err, domain.ErrCommitFailed) {
				h.reload(ctx, m)
			}
			respondServiceError(w, r, "Select", err)
			return
		}

		if m.nav.State() == menu.Exited {
			h.menus.remove(m.id)
			logger.FromContext(ctx).Info(LogMsgMenuClosed, "menu_id", m.id, "kind", m.kind)
		}

		respondJSON(w, http.StatusOK, SelectResponse{
			Outcome: OutcomeResponse{Applied: out.Applied, Mutated: out.Mutated, Next: out.Next.String()},
			Menu:    m.render(),
		})
	}
}

func (h *MenuHandlers) reload(ctx context.Context, m *openMenu) {
	if m.sess == nil {
		return
	}
	log := logger.FromContext(ctx)
	log.Warn(LogMsgCommitFailedMenu, "menu_id", m.id)
	if err := m.sess.Reload(ctx); err != nil {
		log.Error(LogMsgReloadFailed, "error", err)
	}
}

// HandleCloseMenu discards an open menu
func (h *MenuHandlers) HandleCloseMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := h.lookup(w, r)
		if !ok {
			return
		}
		h.menus.remove(m.id)
		logger.FromContext(r.Context()).Info(LogMsgMenuClosed, "menu_id", m.id, "kind", m.kind)
		w.WriteHeader(http.StatusNoContent)
	}
}

package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/RogueMods_Go/internal/logger"
	"github.com/osse101/RogueMods_Go/internal/settings"
)

// SettingView is a setting with the option currently selected
type SettingView struct {
	settings.Setting
	Selected int `json:"selected"`
}

// ApplySettingRequest selects an option of a setting by index
type ApplySettingRequest struct {
	Key    string `json:"key" validate:"required,setting_key"`
	Option int    `json:"option" validate:"min=0"`
}

// SettingsHandlers serves the mod settings
type SettingsHandlers struct {
	registry *settings.Registry
}

// NewSettingsHandlers creates settings handlers
func NewSettingsHandlers(registry *settings.Registry) *SettingsHandlers {
	return &SettingsHandlers{registry: registry}
}

func (h *SettingsHandlers) views() []SettingView {
	out := make([]SettingView, 0, len(settings.Definitions))
	for _, s := range settings.Definitions {
		out = append(out, SettingView{Setting: s, Selected: h.registry.Selected(s.Key)})
	}
	return out
}

// HandleListSettings lists every setting and its selected option
func (h *SettingsHandlers) HandleListSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: h.views()})
	}
}

// HandleApplySetting selects one option
func (h *SettingsHandlers) HandleApplySetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ApplySettingRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Apply setting"); err != nil {
			return
		}

		key := settings.Key(strings.ToUpper(req.Key))
		if !h.registry.Apply(r.Context(), key, req.Option) {
			logger.FromContext(r.Context()).Warn(LogMsgSettingRejected, "key", key, "option", req.Option)
			respondError(w, http.StatusBadRequest, ErrMsgUnknownOptionError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: h.views()})
	}
}

// HandleResetSettings restores every default
func (h *SettingsHandlers) HandleResetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.registry.Reset(r.Context())
		respondJSON(w, http.StatusOK, DataResponse{Data: h.views()})
	}
}

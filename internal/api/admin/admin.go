package admin

import (
	dto "gamehub_backend/internal/api/dto/admin"
	"gamehub_backend/internal/converter"
	"gamehub_backend/internal/service"
	"gamehub_backend/pkg/req"
	"gamehub_backend/pkg/resp"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	ConfigServ service.GameConfigService
}

type Handler struct {
	configServ service.GameConfigService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{configServ: deps.ConfigServ}
}

// GetAllConfigs - все конфигурации игр
func (h *Handler) GetAllConfigs(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameConfigResponses(h.configServ.GetAll()))
}

// GetConfig - конфигурация одной игры
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	gameType := chi.URLParam(r, "game")
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameConfigResponse(h.configServ.Get(gameType)))
}

// UpdateConfig - частичное обновление конфигурации игры.
// При ошибке сохранения в БД ничего не меняется
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UpdateConfigRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	gameType := chi.URLParam(r, "game")
	ok := h.configServ.Update(r.Context(), gameType, converter.ToGameConfigPatch(payload))
	if !ok {
		http.Error(w, "config update failed", http.StatusConflict)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameConfigResponse(h.configServ.Get(gameType)))
}

// ReloadConfigs - перечитать конфигурации из БД
func (h *Handler) ReloadConfigs(w http.ResponseWriter, r *http.Request) {
	if err := h.configServ.Reload(r.Context()); err != nil {
		http.Error(w, "reload failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameConfigResponses(h.configServ.GetAll()))
}

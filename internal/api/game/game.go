package game

import (
	dto "gamehub_backend/internal/api/dto/game"
	"gamehub_backend/internal/converter"
	"gamehub_backend/internal/middleware"
	"gamehub_backend/internal/service"
	"gamehub_backend/pkg/req"
	"gamehub_backend/pkg/resp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv        service.GameService
	CricketServ service.CricketService
	ConfigServ  service.GameConfigService
	PaymentServ service.PaymentService
}

type Handler struct {
	serv        service.GameService
	cricketServ service.CricketService
	configServ  service.GameConfigService
	paymentServ service.PaymentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:        deps.Serv,
		cricketServ: deps.CricketServ,
		configServ:  deps.ConfigServ,
		paymentServ: deps.PaymentServ,
	}
}

// Play разыгрывает один раунд игры из URL
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found", http.StatusUnauthorized)
		return
	}

	gameType := chi.URLParam(r, "game")
	if payload.BasePayout <= 0 {
		http.Error(w, "base_payout must be positive", http.StatusBadRequest)
		return
	}

	// Проверка игры до раунда: флаг и границы ставки.
	// Баланс проверит сам движок
	cfg := h.configServ.Get(gameType)
	if !cfg.Enabled {
		http.Error(w, "game is disabled", http.StatusBadRequest)
		return
	}
	if payload.Bet < cfg.MinBet || payload.Bet > cfg.MaxBet {
		http.Error(w, "bet is out of game limits", http.StatusBadRequest)
		return
	}

	result, err := h.serv.PlayRound(r.Context(), converter.ToBetRequest(payload, userID, gameType))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*result))
}

// CanPlay - проверка допустимости ставки без побочных эффектов
func (h *Handler) CanPlay(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found", http.StatusUnauthorized)
		return
	}

	bet, err := strconv.Atoi(r.URL.Query().Get("bet"))
	if err != nil {
		http.Error(w, "invalid bet parameter", http.StatusBadRequest)
		return
	}

	balance, err := h.paymentServ.GetBalance(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to get balance", http.StatusInternalServerError)
		return
	}

	gameType := chi.URLParam(r, "game")
	reason := h.configServ.ExplainIneligibility(bet, balance, gameType)

	resp.WriteJSONResponse(w, http.StatusOK, dto.CanPlayResponse{
		CanPlay: reason == "",
		Reason:  reason,
	})
}

// List - каталог игр
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameInfos(h.configServ.GetAll()))
}

// CricketBet разыгрывает ставку на крикет по котировке
func (h *Handler) CricketBet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CricketBetRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found", http.StatusUnauthorized)
		return
	}

	result, err := h.cricketServ.PlaceBet(r.Context(), converter.ToCricketBet(payload, userID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*result))
}

package wallet

import (
	dto "gamehub_backend/internal/api/dto/wallet"
	"gamehub_backend/internal/middleware"
	"gamehub_backend/internal/service"
	"gamehub_backend/pkg/req"
	"gamehub_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	PaymentServ service.PaymentService
}

type Handler struct {
	paymentServ service.PaymentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{paymentServ: deps.PaymentServ}
}

// Deposit - пополнение баланса
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found", http.StatusUnauthorized)
		return
	}

	newBalance, err := h.paymentServ.Deposit(r.Context(), userID, payload.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: newBalance})
}

// Balance - текущий баланс
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found", http.StatusUnauthorized)
		return
	}

	balance, err := h.paymentServ.GetBalance(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to get balance", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

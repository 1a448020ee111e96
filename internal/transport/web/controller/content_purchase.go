package controller

import (
	"encoding/json"
	"net/http"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/gorilla/mux"
)

type ContentPurchase struct {
	PurchaseCmd command.Command[command.PurchaseContentRequest, command.PurchaseContentResponse]
}

type contentPurchaseRequest struct {
	Price float64 `json:"price"`
}

type ContentPurchaseResponse struct {
	ContentID     string `json:"content_id"`
	EncryptionKey string `json:"encryption_key"`
}

func (c ContentPurchase) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]
	logger := domain.LoggerFromContext(r.Context())
	r = r.WithContext(domain.ContextWithLogger(r.Context(), logger.With("content_id", id)))

	var body contentPurchaseRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)).Decode(&body); err != nil {
		writeBadRequest(w, r, "unable to decode purchase body", err)
		return
	}

	resp, err := c.PurchaseCmd.Execute(r.Context(), command.PurchaseContentRequest{
		ContentID:   id,
		UserAddress: domain.UserAddressFromContext(r.Context()),
		Price:       body.Price,
	})
	if err != nil {
		writeError(w, r, "unable to purchase content", err)
		return
	}

	writeJSON(w, r, http.StatusOK, ContentPurchaseResponse{
		ContentID:     id,
		EncryptionKey: resp.EncryptionKey,
	})
}

type ContentTip struct {
	TipCmd command.Command[command.TipContentRequest, command.Empty]
}

type contentTipRequest struct {
	Amount float64 `json:"amount"`
}

func (c ContentTip) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]
	logger := domain.LoggerFromContext(r.Context())
	r = r.WithContext(domain.ContextWithLogger(r.Context(), logger.With("content_id", id)))

	var body contentTipRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)).Decode(&body); err != nil {
		writeBadRequest(w, r, "unable to decode tip body", err)
		return
	}

	if _, err := c.TipCmd.Execute(r.Context(), command.TipContentRequest{
		ContentID:   id,
		UserAddress: domain.UserAddressFromContext(r.Context()),
		Amount:      body.Amount,
	}); err != nil {
		writeError(w, r, "unable to tip content", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ContentInteraction struct {
	RecordCmd command.Command[command.RecordInteractionRequest, command.Empty]
}

func (c ContentInteraction) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["content_id"]
	logger := domain.LoggerFromContext(r.Context())
	r = r.WithContext(domain.ContextWithLogger(r.Context(), logger.With("content_id", id)))

	if _, err := c.RecordCmd.Execute(r.Context(), command.RecordInteractionRequest{
		ContentID:   id,
		UserAddress: domain.UserAddressFromContext(r.Context()),
		Type:        domain.InteractionType(vars["type"]),
	}); err != nil {
		writeError(w, r, "unable to record interaction", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/gorilla/mux"
)

type UserGet struct {
	GetCmd      command.Command[string, domain.User]
	CacheMaxAge time.Duration
}

func (c UserGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	address := strings.ToLower(mux.Vars(r)["address"])

	user, err := c.GetCmd.Execute(r.Context(), address)
	if err != nil {
		writeError(w, r, "unable to fetch user", err)
		return
	}

	setPublicCacheControl(w, r, c.CacheMaxAge)
	writeJSON(w, r, http.StatusOK, user)
}

// PurchasedContentList serves the authenticated user's own purchases.
type PurchasedContentList struct {
	ListCmd command.Command[command.ListPurchasedContentRequest, command.ContentPage]
}

func (c PurchasedContentList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	userAddress := domain.UserAddressFromContext(r.Context())
	if !strings.EqualFold(address, userAddress) {
		writeError(w, r, "attempt to list another user's purchases", domain.ErrForbidden)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		writeBadRequest(w, r, "unable to parse pagination in query string", err)
		return
	}

	result, err := c.ListCmd.Execute(r.Context(), command.ListPurchasedContentRequest{
		UserAddress: userAddress,
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		writeError(w, r, "unable to list purchased content", err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, newContentListResponse(result))
}

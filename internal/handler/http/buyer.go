package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
)

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	buyer := principalFrom(r)

	var req models.AddToCartRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.services.CartService.AddToCart(r.Context(), buyer.UserID, req.ProductID)
	if err != nil {
		switch status := statusFromError(err); status {
		case http.StatusNotFound:
			writeMessage(w, r, app.MsgCartProductNotFound, status)
		default:
			log.Err(err).Int64("product_id", req.ProductID).Msg("adding to cart failed")
			writeError(w, r, app.MsgAddToCartFailed, http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, r, item, http.StatusOK)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	buyer := principalFrom(r)

	cartItemID, ok := pathID(w, r, app.MsgInvalidCartItemID)
	if !ok {
		return
	}

	if err := h.services.CartService.RemoveFromCart(r.Context(), cartItemID, buyer.UserID); err != nil {
		switch status := statusFromError(err); status {
		case http.StatusNotFound:
			writeMessage(w, r, app.MsgCartItemNotFound, status)
		default:
			log.Err(err).Int64("cart_item_id", cartItemID).Msg("removing from cart failed")
			writeError(w, r, app.MsgRemoveFromCartFailed, http.StatusInternalServerError)
		}
		return
	}

	writeMessage(w, r, app.MsgProductRemovedFromCart, http.StatusOK)
}

package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
)

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	seller := principalFrom(r)

	var req models.ProductCreateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	product, err := h.services.ProductService.AddProduct(r.Context(), seller.UserID, req)
	if err != nil {
		log.Err(err).Int64("seller_id", seller.UserID).Msg("adding product failed")
		writeError(w, r, app.MsgAddProductFailed, http.StatusInternalServerError)
		return
	}

	log.Info().Int64("product_id", product.ProductID).Int64("seller_id", seller.UserID).Msg("product added")
	writeJSON(w, r, product, http.StatusCreated)
}

func (h *Handler) editProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	seller := principalFrom(r)

	productID, ok := pathID(w, r, app.MsgInvalidProductID)
	if !ok {
		return
	}

	var req models.ProductUpdateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	product, err := h.services.ProductService.EditProduct(r.Context(), productID, seller.UserID, req)
	if err != nil {
		switch status := statusFromError(err); status {
		case http.StatusNotFound:
			writeMessage(w, r, app.MsgProductNotFound, status)
		case http.StatusBadRequest:
			writeMessage(w, r, app.MsgNothingToUpdate, status)
		default:
			log.Err(err).Int64("product_id", productID).Msg("editing product failed")
			writeError(w, r, app.MsgEditProductFailed, http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, r, product, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	seller := principalFrom(r)

	productID, ok := pathID(w, r, app.MsgInvalidProductID)
	if !ok {
		return
	}

	if err := h.services.ProductService.DeleteProduct(r.Context(), productID, seller.UserID); err != nil {
		switch status := statusFromError(err); status {
		case http.StatusNotFound:
			writeMessage(w, r, app.MsgProductNotFound, status)
		default:
			log.Err(err).Int64("product_id", productID).Msg("deleting product failed")
			writeError(w, r, app.MsgDeleteProductFailed, http.StatusInternalServerError)
		}
		return
	}

	log.Info().Int64("product_id", productID).Int64("seller_id", seller.UserID).Msg("product deleted")
	writeMessage(w, r, app.MsgProductDeleted, http.StatusOK)
}

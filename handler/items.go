package handler

import (
	"errors"
	"net/http"

	"github.com/tobenna/animon/service"
)

// ShowItem godoc
// @Summary Show a catalog item
// @Description This endpoint shows a catalog item with its aggregate rating and review count
// @Tags items
// @Produce json
// @Param itemUid path string true "UID of the item (final character encodes the category)"
// @Success 200 {object} data.Item
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /v1/items/{itemUid} [get]
func (h *Handler) showItemHandler(w http.ResponseWriter, r *http.Request) {
	uid := h.readUIDParam(r, "itemUid")
	item, err := h.service.GetItem(uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCategory):
			h.badRequestResponse(w, r, err)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"item": item}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

package handler

import "net/http"

func (h *Handler) CreateMatchRequest(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req CreateMatchRequestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	created, err := h.requestService.CreateRequest(r.Context(), teamID, httpRequestToInput(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainRequestToHTTP(created))
}

// ListMyMatchRequests - заявки команды из токена
func (h *Handler) ListMyMatchRequests(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	reqs, err := h.requestService.ListOwnedBy(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainRequestsToHTTP(reqs))
}

func (h *Handler) ListOpenMatchRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.requestService.ListOpen(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainRequestsToHTTP(reqs))
}

// ListReceivedJoins - отклики других команд на заявки вызывающей команды
func (h *Handler) ListReceivedJoins(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	joins, err := h.requestService.ListJoinersOf(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainJoinsToHTTP(joins))
}

func (h *Handler) GetMatchRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	req, err := h.requestService.GetRequest(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainRequestToHTTP(req))
}

func (h *Handler) UpdateMatchRequest(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateMatchRequestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	upd, err := httpRequestUpdateToDomain(req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	updated, err := h.requestService.UpdateRequest(r.Context(), id, teamID, upd)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainRequestToHTTP(updated))
}

func (h *Handler) DeleteMatchRequest(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	deleted, err := h.requestService.DeleteRequest(r.Context(), id, teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainRequestToHTTP(deleted))
}

func (h *Handler) JoinMatchRequest(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	join, err := h.requestService.JoinRequest(r.Context(), id, teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainJoinToHTTP(join))
}

package handler

import "net/http"

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req CreateMatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	m, err := h.matchService.CreateMatch(r.Context(), teamID, httpMatchToInput(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainMatchToHTTP(m))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.ListAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMatchesToHTTP(matches))
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	matches, err := h.matchService.ListUpcomingFor(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMatchesToHTTP(matches))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	m, err := h.matchService.GetMatch(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMatchToHTTP(m))
}

func (h *Handler) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
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

	var req UpdateMatchStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	m, err := h.matchService.UpdateMatchStatus(r.Context(), id, teamID, req.Status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMatchToHTTP(m))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
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

	m, err := h.matchService.DeleteMatch(r.Context(), id, teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMatchToHTTP(m))
}

package handler

import "net/http"

func (h *Handler) SendChallenge(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req SendChallengeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	c, err := h.challengeService.SendChallenge(r.Context(), teamID, httpChallengeToInput(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainChallengeToHTTP(c))
}

func (h *Handler) ListSentChallenges(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	challenges, err := h.challengeService.ListSent(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainChallengesToHTTP(challenges))
}

func (h *Handler) ListReceivedChallenges(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	challenges, err := h.challengeService.ListReceived(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainChallengesToHTTP(challenges))
}

func (h *Handler) GetChallenge(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.challengeService.GetChallenge(r.Context(), id, teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainChallengeToHTTP(c))
}

// AcceptChallenge отвечает созданным матчем
func (h *Handler) AcceptChallenge(w http.ResponseWriter, r *http.Request) {
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

	m, err := h.challengeService.AcceptChallenge(r.Context(), id, teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainMatchToHTTP(m))
}

func (h *Handler) RejectChallenge(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.challengeService.RejectChallenge(r.Context(), id, teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainChallengeToHTTP(c))
}

func (h *Handler) CancelChallenge(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.challengeService.CancelChallenge(r.Context(), id, teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainChallengeToHTTP(c))
}

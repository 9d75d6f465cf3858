package handler

import "net/http"

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamsToHTTP(teams))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

// GetMyTeam возвращает команду, которой выдан токен
func (h *Handler) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := callerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/utils"
	"github.com/MKhiriev/algo-sync/models"
)

func (h *Handler) saveRepositorySettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.saveRepositorySettings").Msg("no user ID was given")
		utils.WriteError(w, ErrNoUserID.Error(), http.StatusUnauthorized)
		return
	}

	var req models.RepositorySettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.saveRepositorySettings").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	repo, err := h.services.SettingsService.SaveRepository(ctx, userID, req.Token, req.Repository)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.saveRepositorySettings").Int("status", status).Msg("error saving repository settings")
		utils.WriteError(w, publicMessage(err, status), status)
		return
	}

	_, _ = utils.WriteJSON(w, map[string]string{"repository": repo.String()}, http.StatusOK)
}

func (h *Handler) saveJudgeSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.saveJudgeSettings").Msg("no user ID was given")
		utils.WriteError(w, ErrNoUserID.Error(), http.StatusUnauthorized)
		return
	}

	var req models.JudgeSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.saveJudgeSettings").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.services.JudgeProfileService.LinkHandle(ctx, userID, req.Handle)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.saveJudgeSettings").Int("status", status).Msg("error linking judge handle")
		utils.WriteError(w, publicMessage(err, status), status)
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}

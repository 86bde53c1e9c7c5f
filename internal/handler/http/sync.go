package http

import (
	"net/http"

	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/utils"
	"github.com/MKhiriev/algo-sync/models"
)

// sync runs one ingestion for the caller and answers with the SyncResult.
// Terminal failures keep the result body and use the mapped status code.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.sync").Msg("no user ID was given")
		utils.WriteError(w, ErrNoUserID.Error(), http.StatusUnauthorized)
		return
	}

	result, err := h.services.SyncService.Sync(ctx, userID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.sync").Int("status", status).Msg("sync failed")
		result.Success = false
		result.Error = publicMessage(err, status)
		_, _ = utils.WriteJSON(w, result, status)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listSubmissions").Msg("no user ID was given")
		utils.WriteError(w, ErrNoUserID.Error(), http.StatusUnauthorized)
		return
	}

	submissions, err := h.services.SubmissionService.List(ctx, userID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.listSubmissions").Msg("error listing submissions")
		utils.WriteError(w, publicMessage(err, status), status)
		return
	}

	_, _ = utils.WriteJSON(w, models.SubmissionsResponse{
		Submissions: submissions,
		Length:      len(submissions),
	}, http.StatusOK)
}

package restapi

import (
	"net/http"
	"time"
)

// feedRefreshHandler downloads a fresh feed snapshot into the cache. The
// upstream endpoint is slow and flaky, so failures surface as 502 rather than
// 500: the problem is on the far side.
func (api *RestAPI) feedRefreshHandler(w http.ResponseWriter, r *http.Request) {
	if !api.FeedManager.Status().HasCredentials {
		api.errorResponse(w, http.StatusBadRequest, "missing TFWM_APP_ID/TFWM_APP_KEY credentials")
		return
	}

	if err := api.FeedManager.Refresh(r.Context()); err != nil {
		api.Logger.Error("feed refresh failed", "error", err)
		api.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	api.sendResponse(w, r, struct {
		OK          bool      `json:"ok"`
		RefreshedAt time.Time `json:"refreshedAt"`
	}{
		OK:          true,
		RefreshedAt: time.Now().UTC(),
	})
}

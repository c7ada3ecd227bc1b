package restapi

import "net/http"

// feedStatusHandler reports whether credentials are configured and a cached
// feed snapshot exists, so the front end can prompt for a refresh.
func (api *RestAPI) feedStatusHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, api.FeedManager.Status())
}

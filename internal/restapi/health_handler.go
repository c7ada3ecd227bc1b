package restapi

import "net/http"

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, map[string]string{"status": "ok"})
}

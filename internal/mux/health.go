package mux

import "net/http"

type healthResponse struct {
	Status    string   `json:"status"`
	Version   string   `json:"version"`
	Bots      []string `json:"bots"`
	BaseBlind int      `json:"baseBlind"`
	FullTable int      `json:"fullTable"`
}

// getHealth reports the version and the table a default simulation would seat
func (m *Mux) getHealth() http.HandlerFunc {
	payload := healthResponse{
		Status:    "OK",
		Version:   m.version,
		Bots:      m.config.bots,
		BaseBlind: m.config.options.BaseBlind,
		FullTable: m.config.options.FullTable,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}

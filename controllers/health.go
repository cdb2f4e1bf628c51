package controllers

import (
	"net/http"
	"time"

	"acad-service/utils"
)

type HealthController struct{}

func (hc HealthController) HealthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, map[string]string{
			"status":    "Acad Service is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

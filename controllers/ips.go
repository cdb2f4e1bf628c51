package controllers

import (
	"database/sql"
	"errors"
	"net/http"

	"acad-service/models"
	"acad-service/utils"

	log "github.com/sirupsen/logrus"
)

type IPSController struct{}

// GetIPS serves /api/acad/ips?nim=. The not-found case maps to 404 with the
// registrar's message; every other failure is a plain 500 with the raw error.
func (ic IPSController) GetIPS(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nim := r.URL.Query().Get("nim")
		if nim == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "nim is required"})
			return
		}

		transkrip, err := FetchTranskrip(db, nim)
		if err != nil {
			if errors.Is(err, models.ErrMahasiswaNotFound) {
				utils.RespondWithError(w, http.StatusNotFound, models.Error{
					Message: "Data mahasiswa tidak ditemukan atau belum mengambil mata kuliah",
				})
				return
			}
			log.WithError(err).WithField("nim", nim).Error("failed to get transkrip")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		ips, totalSKS, err := HitungIPS(transkrip)
		if err != nil {
			log.WithError(err).WithField("nim", nim).Error("failed to compute ips")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		utils.ResponseJSON(w, models.IPS{
			Nim:      transkrip[0].Nim,
			Nama:     transkrip[0].Nama,
			Jurusan:  transkrip[0].Jurusan,
			IPS:      ips,
			TotalSKS: totalSKS,
		})
	}
}

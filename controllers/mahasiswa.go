package controllers

import (
	"database/sql"
	"net/http"

	"acad-service/models"
	"acad-service/utils"

	log "github.com/sirupsen/logrus"
)

type MahasiswaController struct{}

func (mc MahasiswaController) GetMahasiswa(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mahasiswa, err := FetchMahasiswa(db)
		if err != nil {
			log.WithError(err).Error("failed to get mahasiswa")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}
		if mahasiswa == nil {
			mahasiswa = []models.Mahasiswa{}
		}
		utils.ResponseJSON(w, mahasiswa)
	}
}

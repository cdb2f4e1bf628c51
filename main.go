package main

import (
	"database/sql"
	"net/http"

	"acad-service/config"
	"acad-service/controllers"
	"acad-service/driver"
	"acad-service/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var db *sql.DB

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using process environment")
	}
	cfg := config.Load()
	db = driver.ConnectDB(cfg)
	defer db.Close()

	healthController := controllers.HealthController{}
	mahasiswaController := controllers.MahasiswaController{}
	ipsController := controllers.IPSController{}
	router := mux.NewRouter()

	router.HandleFunc("/health", healthController.HealthCheck()).Methods("GET")
	router.HandleFunc("/api/acad/mahasiswa", mahasiswaController.GetMahasiswa(db)).Methods("GET")
	router.HandleFunc("/api/acad/ips", ipsController.GetIPS(db)).Methods("GET")

	handler := utils.CORS(utils.RequestID(router))

	log.Info("Server started on port 8000")
	log.Fatal(http.ListenAndServe(":8000", handler))
}

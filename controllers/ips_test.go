package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"acad-service/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIPSSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"nim", "nama", "jurusan", "nilai", "sks"}).
		AddRow("2211001", "Budi Santoso", "Informatika", "A", 3).
		AddRow("2211001", "Budi Santoso", "Informatika", "B+", 3)
	mock.ExpectQuery("JOIN krs").WithArgs("2211001").WillReturnRows(rows)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/acad/ips?nim=2211001", nil)
	IPSController{}.GetIPS(db)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.IPS
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "2211001", got.Nim)
	assert.Equal(t, "Budi Santoso", got.Nama)
	assert.Equal(t, "Informatika", got.Jurusan)
	assert.InDelta(t, 3.75, got.IPS, 1e-9)
	assert.Equal(t, 6, got.TotalSKS)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetIPSMissingNim(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/acad/ips", nil)
	IPSController{}.GetIPS(db)(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetIPSUnknownStudentIs404(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"nim", "nama", "jurusan", "nilai", "sks"})
	mock.ExpectQuery("JOIN krs").WithArgs("9999999").WillReturnRows(rows)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/acad/ips?nim=9999999", nil)
	IPSController{}.GetIPS(db)(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	var got models.Error
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "Data mahasiswa tidak ditemukan atau belum mengambil mata kuliah", got.Message)
}

func TestGetIPSStoreFailureIs500(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("JOIN krs").WithArgs("2211001").
		WillReturnError(fmt.Errorf("connection reset by peer"))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/acad/ips?nim=2211001", nil)
	IPSController{}.GetIPS(db)(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var got models.Error
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Contains(t, got.Message, "connection reset by peer")
}

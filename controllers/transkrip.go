package controllers

import (
	"database/sql"

	"acad-service/models"

	"github.com/pkg/errors"
)

// FetchMahasiswa returns the full roster in store order.
func FetchMahasiswa(db *sql.DB) ([]models.Mahasiswa, error) {
	rows, err := db.Query("SELECT nim, nama, jurusan, angkatan FROM mahasiswa")
	if err != nil {
		return nil, errors.Wrap(err, "query mahasiswa")
	}
	defer rows.Close()

	var mahasiswa []models.Mahasiswa
	for rows.Next() {
		var m models.Mahasiswa
		if err := rows.Scan(&m.Nim, &m.Nama, &m.Jurusan, &m.Angkatan); err != nil {
			return nil, errors.Wrap(err, "scan mahasiswa")
		}
		mahasiswa = append(mahasiswa, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate mahasiswa")
	}
	return mahasiswa, nil
}

// FetchTranskrip returns every (grade, sks) row for one student by joining
// krs to mata_kuliah. A student with no rows yields ErrMahasiswaNotFound so
// callers never mistake "no data" for a zero IPS.
func FetchTranskrip(db *sql.DB, nim string) ([]models.TranskripRow, error) {
	rows, err := db.Query(`
		SELECT m.nim, m.nama, m.jurusan, krs.nilai, mk.sks
		FROM mahasiswa m
		JOIN krs ON krs.nim = m.nim
		JOIN mata_kuliah mk ON mk.kode_mk = krs.kode_mk
		WHERE m.nim = $1`, nim)
	if err != nil {
		return nil, errors.Wrap(err, "query transkrip")
	}
	defer rows.Close()

	var transkrip []models.TranskripRow
	for rows.Next() {
		var t models.TranskripRow
		if err := rows.Scan(&t.Nim, &t.Nama, &t.Jurusan, &t.Nilai, &t.SKS); err != nil {
			return nil, errors.Wrap(err, "scan transkrip")
		}
		transkrip = append(transkrip, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate transkrip")
	}
	if len(transkrip) == 0 {
		return nil, models.ErrMahasiswaNotFound
	}
	return transkrip, nil
}

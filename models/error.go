package models

import "errors"

type Error struct {
	Message string `json:"message"`
}

// ErrMahasiswaNotFound is returned when a student has no enrollment records,
// including when the nim itself does not exist.
var ErrMahasiswaNotFound = errors.New("mahasiswa not found or has no course records")

// ErrTranskripKosong is returned when the IPS calculation is asked to average
// zero credit hours.
var ErrTranskripKosong = errors.New("transkrip has no credit hours")

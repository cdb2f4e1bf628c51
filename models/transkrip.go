package models

// TranskripRow is one row of the mahasiswa/krs/mata_kuliah join for a
// single student: the letter grade earned in a course plus its credit hours.
type TranskripRow struct {
	Nim     string `json:"nim"`
	Nama    string `json:"nama"`
	Jurusan string `json:"jurusan"`
	Nilai   string `json:"nilai"`
	SKS     int    `json:"sks"`
}

type IPS struct {
	Nim      string  `json:"nim"`
	Nama     string  `json:"nama"`
	Jurusan  string  `json:"jurusan"`
	IPS      float64 `json:"ips"`
	TotalSKS int     `json:"total_sks"`
}

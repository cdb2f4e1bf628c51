package controllers

import (
	"acad-service/models"

	"github.com/shopspring/decimal"
)

// bobotNilai maps letter grades to grade points. Symbols outside the table
// weigh 0 but their SKS still count toward total_sks; the registrar treats
// such rows as failed courses, not as data errors.
var bobotNilai = map[string]decimal.Decimal{
	"A":  decimal.NewFromFloat(4.0),
	"B+": decimal.NewFromFloat(3.5),
	"B":  decimal.NewFromFloat(3.0),
	"B-": decimal.NewFromFloat(2.75),
	"C+": decimal.NewFromFloat(2.5),
	"C":  decimal.NewFromFloat(2.0),
	"D":  decimal.NewFromFloat(1.0),
	"E":  decimal.NewFromFloat(0.0),
}

// HitungIPS computes the credit-weighted grade average over one student's
// transcript rows. Sums are kept exact and only the final quotient is
// rounded, to 2 decimal places, half away from zero.
func HitungIPS(transkrip []models.TranskripRow) (float64, int, error) {
	if len(transkrip) == 0 {
		return 0, 0, models.ErrTranskripKosong
	}

	totalBobot := decimal.Zero
	totalSKS := 0
	for _, t := range transkrip {
		bobot := bobotNilai[t.Nilai]
		totalBobot = totalBobot.Add(bobot.Mul(decimal.NewFromInt(int64(t.SKS))))
		totalSKS += t.SKS
	}
	if totalSKS == 0 {
		return 0, 0, models.ErrTranskripKosong
	}

	ips, _ := totalBobot.Div(decimal.NewFromInt(int64(totalSKS))).Round(2).Float64()
	return ips, totalSKS, nil
}

package compensation

import (
	"github.com/shopspring/decimal"
)

const (
	EmploymentFullTime = "full_time"
	EmploymentPartTime = "part_time"

	LineTypeAllowance = "allowance"
	LineTypeDeduction = "deduction"
)

// overtime is always paid at time-and-a-half, uncapped.
var overtimeMultiplier = decimal.NewFromFloat(1.5)

// BenefitItem is one assigned allowance or deduction. Amount is the
// per-staff override; when nil the catalog default applies.
type BenefitItem struct {
	Name          string
	Amount        *decimal.Decimal
	CatalogAmount decimal.Decimal
}

func (b BenefitItem) EffectiveAmount() decimal.Decimal {
	if b.Amount != nil {
		return *b.Amount
	}
	return b.CatalogAmount
}

// Hours holds the attendance figures driving hourly pay for one period.
type Hours struct {
	Present  decimal.Decimal
	Absent   decimal.Decimal
	Overtime decimal.Decimal
}

// StaffProfile is everything the resolver needs about one staff member:
// employment type, the active salary structure amount (zero when none),
// the hourly rate for part-time staff and the period's attendance.
type StaffProfile struct {
	EmploymentType string
	BasicSalary    decimal.Decimal
	HourlyRate     *decimal.Decimal
	Attendance     *Hours
	Allowances     []BenefitItem
	Deductions     []BenefitItem
}

type LineItem struct {
	Type   string
	Name   string
	Amount decimal.Decimal
}

type Result struct {
	BasicSalary     decimal.Decimal
	GrossPay        decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	LineItems       []LineItem
}

// Resolve computes one staff member's pay figures.
//
// Salaried staff are paid the active salary structure amount. Hourly staff
// are paid hoursPresent*rate plus overtime*rate*1.5; missing attendance or
// rate simply yields zero base pay. Net pay is not floored at zero: when
// deductions exceed gross the negative figure is passed through as-is.
func Resolve(p StaffProfile) Result {
	var res Result

	if p.EmploymentType == EmploymentPartTime {
		rate := decimal.Zero
		if p.HourlyRate != nil {
			rate = *p.HourlyRate
		}
		if p.Attendance != nil {
			regular := p.Attendance.Present.Mul(rate)
			overtime := p.Attendance.Overtime.Mul(rate).Mul(overtimeMultiplier)
			res.GrossPay = regular.Add(overtime)
		}
	} else {
		res.BasicSalary = p.BasicSalary
		res.GrossPay = p.BasicSalary
	}

	for _, a := range p.Allowances {
		amount := a.EffectiveAmount()
		res.TotalAllowances = res.TotalAllowances.Add(amount)
		res.LineItems = append(res.LineItems, LineItem{
			Type:   LineTypeAllowance,
			Name:   a.Name,
			Amount: amount,
		})
	}

	for _, d := range p.Deductions {
		amount := d.EffectiveAmount()
		res.TotalDeductions = res.TotalDeductions.Add(amount)
		res.LineItems = append(res.LineItems, LineItem{
			Type:   LineTypeDeduction,
			Name:   d.Name,
			Amount: amount,
		})
	}

	res.GrossPay = res.GrossPay.Add(res.TotalAllowances)
	res.NetPay = res.GrossPay.Sub(res.TotalDeductions)

	return res
}

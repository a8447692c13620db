package compensation_test

import (
	"testing"

	"github.com/Fritz24/Remunera/internal/compensation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func dp(v string) *decimal.Decimal {
	dec := decimal.RequireFromString(v)
	return &dec
}

func TestResolve_FullTime(t *testing.T) {
	res := compensation.Resolve(compensation.StaffProfile{
		EmploymentType: compensation.EmploymentFullTime,
		BasicSalary:    d("500000"),
		Allowances: []compensation.BenefitItem{
			{Name: "Transport", Amount: dp("50000"), CatalogAmount: d("40000")},
		},
		Deductions: []compensation.BenefitItem{
			{Name: "Tax", Amount: dp("30000"), CatalogAmount: d("30000")},
		},
	})

	assert.True(t, res.BasicSalary.Equal(d("500000")))
	assert.True(t, res.TotalAllowances.Equal(d("50000")))
	assert.True(t, res.TotalDeductions.Equal(d("30000")))
	assert.True(t, res.GrossPay.Equal(d("550000")))
	assert.True(t, res.NetPay.Equal(d("520000")))
	assert.Len(t, res.LineItems, 2)
	assert.Equal(t, compensation.LineTypeAllowance, res.LineItems[0].Type)
	assert.Equal(t, "Transport", res.LineItems[0].Name)
}

func TestResolve_HourlyWithOvertime(t *testing.T) {
	res := compensation.Resolve(compensation.StaffProfile{
		EmploymentType: compensation.EmploymentPartTime,
		HourlyRate:     dp("2000"),
		Attendance: &compensation.Hours{
			Present:  d("160"),
			Absent:   d("4"),
			Overtime: d("10"),
		},
	})

	// 160*2000 + 10*2000*1.5 = 320000 + 30000
	assert.True(t, res.BasicSalary.IsZero())
	assert.True(t, res.GrossPay.Equal(d("350000")), "got %s", res.GrossPay)
	assert.True(t, res.NetPay.Equal(d("350000")))
}

func TestResolve_HourlyWithoutAttendance(t *testing.T) {
	res := compensation.Resolve(compensation.StaffProfile{
		EmploymentType: compensation.EmploymentPartTime,
		HourlyRate:     dp("2000"),
	})

	assert.True(t, res.GrossPay.IsZero())
	assert.True(t, res.NetPay.IsZero())
}

func TestResolve_CatalogFallback(t *testing.T) {
	res := compensation.Resolve(compensation.StaffProfile{
		EmploymentType: compensation.EmploymentFullTime,
		BasicSalary:    d("100000"),
		Allowances: []compensation.BenefitItem{
			{Name: "Housing", CatalogAmount: d("25000")},
		},
	})

	assert.True(t, res.TotalAllowances.Equal(d("25000")))
	assert.True(t, res.GrossPay.Equal(d("125000")))
}

func TestResolve_NegativeNetPassesThrough(t *testing.T) {
	res := compensation.Resolve(compensation.StaffProfile{
		EmploymentType: compensation.EmploymentFullTime,
		BasicSalary:    d("10000"),
		Deductions: []compensation.BenefitItem{
			{Name: "Loan Repayment", Amount: dp("15000")},
		},
	})

	assert.True(t, res.NetPay.Equal(d("-5000")), "net pay must not be clamped, got %s", res.NetPay)
}

func TestResolve_InvariantGrossAndNet(t *testing.T) {
	res := compensation.Resolve(compensation.StaffProfile{
		EmploymentType: compensation.EmploymentFullTime,
		BasicSalary:    d("750000"),
		Allowances: []compensation.BenefitItem{
			{Name: "Transport", Amount: dp("20000")},
			{Name: "Meal", Amount: dp("15000")},
		},
		Deductions: []compensation.BenefitItem{
			{Name: "Pension", Amount: dp("37500")},
		},
	})

	assert.True(t, res.GrossPay.Equal(res.BasicSalary.Add(res.TotalAllowances)))
	assert.True(t, res.NetPay.Equal(res.GrossPay.Sub(res.TotalDeductions)))
}

package report

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DetailRow is one payslip line item for the period, flattened with its
// owning staff member.
type DetailRow struct {
	StaffID string
	Type    string
	Name    string
	Amount  decimal.Decimal
}

// PayslipRow is one payslip for the period with the figures and the
// position title the aggregations group by.
type PayslipRow struct {
	StaffID         string
	Position        string
	GrossPay        decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Status          string
}

type Repository interface {
	ListDetailsByPeriod(ctx context.Context, month, year int, detailType string) ([]DetailRow, error)
	ListPayslipsByPeriod(ctx context.Context, month, year int) ([]PayslipRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListDetailsByPeriod(ctx context.Context, month, year int, detailType string) ([]DetailRow, error) {
	query := `
SELECT
	p.staff_id::text AS staff_id,
	d.type,
	d.name,
	d.amount
FROM payslip_details d
JOIN payslip p ON p.id = d.payslip_id
WHERE p.month = ? AND p.year = ? AND d.type = ?
ORDER BY d.name ASC
`

	var rows []DetailRow
	err := r.db.WithContext(ctx).Raw(query, month, year, detailType).Scan(&rows).Error
	return rows, err
}

func (r *repository) ListPayslipsByPeriod(ctx context.Context, month, year int) ([]PayslipRow, error) {
	query := `
SELECT
	p.staff_id::text AS staff_id,
	COALESCE(pos.title, 'Unassigned') AS position,
	p.gross_pay,
	p.total_allowances,
	p.total_deductions,
	p.net_pay,
	p.status
FROM payslip p
JOIN staff s ON s.id = p.staff_id
LEFT JOIN position pos ON pos.id = s.position_id
WHERE p.month = ? AND p.year = ?
ORDER BY pos.title ASC NULLS LAST
`

	var rows []PayslipRow
	err := r.db.WithContext(ctx).Raw(query, month, year).Scan(&rows).Error
	return rows, err
}

package report

import (
	"context"
	"sort"

	"github.com/Fritz24/Remunera/internal/compensation"
	reporterrors "github.com/Fritz24/Remunera/internal/report/errors"

	"github.com/shopspring/decimal"
)

type Service interface {
	Allowances(ctx context.Context, filter PeriodFilterRequest) (BenefitReportResponse, error)
	Deductions(ctx context.Context, filter PeriodFilterRequest) (BenefitReportResponse, error)
	MonthlySummary(ctx context.Context, filter PeriodFilterRequest) (MonthlySummaryResponse, error)
	PositionPayroll(ctx context.Context, filter PeriodFilterRequest) (PositionPayrollResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Allowances(ctx context.Context, filter PeriodFilterRequest) (BenefitReportResponse, error) {
	return s.benefitReport(ctx, filter, compensation.LineTypeAllowance)
}

func (s *service) Deductions(ctx context.Context, filter PeriodFilterRequest) (BenefitReportResponse, error) {
	return s.benefitReport(ctx, filter, compensation.LineTypeDeduction)
}

// benefitReport groups the period's line items by name. Aggregation is
// done in memory; the period's row count is bounded by headcount times
// catalog size.
func (s *service) benefitReport(ctx context.Context, filter PeriodFilterRequest, detailType string) (BenefitReportResponse, error) {
	if err := validatePeriod(filter); err != nil {
		return BenefitReportResponse{}, err
	}

	rows, err := s.repo.ListDetailsByPeriod(ctx, filter.Month, filter.Year, detailType)
	if err != nil {
		return BenefitReportResponse{}, err
	}

	type bucket struct {
		staff map[string]struct{}
		total decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, row := range rows {
		b, ok := buckets[row.Name]
		if !ok {
			b = &bucket{staff: make(map[string]struct{})}
			buckets[row.Name] = b
		}
		b.staff[row.StaffID] = struct{}{}
		b.total = b.total.Add(row.Amount)
	}

	resp := BenefitReportResponse{Month: filter.Month, Year: filter.Year}
	for name, b := range buckets {
		resp.Items = append(resp.Items, BenefitReportRow{
			Name:       name,
			StaffCount: len(b.staff),
			Total:      b.total,
		})
		resp.Total = resp.Total.Add(b.total)
	}
	sort.Slice(resp.Items, func(i, j int) bool {
		return resp.Items[i].Name < resp.Items[j].Name
	})

	return resp, nil
}

func (s *service) MonthlySummary(ctx context.Context, filter PeriodFilterRequest) (MonthlySummaryResponse, error) {
	if err := validatePeriod(filter); err != nil {
		return MonthlySummaryResponse{}, err
	}

	rows, err := s.repo.ListPayslipsByPeriod(ctx, filter.Month, filter.Year)
	if err != nil {
		return MonthlySummaryResponse{}, err
	}

	resp := MonthlySummaryResponse{
		Month:        filter.Month,
		Year:         filter.Year,
		StaffCount:   len(rows),
		StatusCounts: make(map[string]int),
	}
	for _, row := range rows {
		resp.TotalGross = resp.TotalGross.Add(row.GrossPay)
		resp.TotalAllowances = resp.TotalAllowances.Add(row.TotalAllowances)
		resp.TotalDeductions = resp.TotalDeductions.Add(row.TotalDeductions)
		resp.TotalNet = resp.TotalNet.Add(row.NetPay)
		resp.StatusCounts[row.Status]++
	}

	return resp, nil
}

func (s *service) PositionPayroll(ctx context.Context, filter PeriodFilterRequest) (PositionPayrollResponse, error) {
	if err := validatePeriod(filter); err != nil {
		return PositionPayrollResponse{}, err
	}

	rows, err := s.repo.ListPayslipsByPeriod(ctx, filter.Month, filter.Year)
	if err != nil {
		return PositionPayrollResponse{}, err
	}

	type bucket struct {
		count int
		gross decimal.Decimal
		net   decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, row := range rows {
		b, ok := buckets[row.Position]
		if !ok {
			b = &bucket{}
			buckets[row.Position] = b
		}
		b.count++
		b.gross = b.gross.Add(row.GrossPay)
		b.net = b.net.Add(row.NetPay)
	}

	resp := PositionPayrollResponse{Month: filter.Month, Year: filter.Year}
	for position, b := range buckets {
		resp.Items = append(resp.Items, PositionPayrollRow{
			Position:   position,
			StaffCount: b.count,
			TotalGross: b.gross,
			TotalNet:   b.net,
		})
	}
	sort.Slice(resp.Items, func(i, j int) bool {
		return resp.Items[i].Position < resp.Items[j].Position
	})

	return resp, nil
}

func validatePeriod(filter PeriodFilterRequest) error {
	if filter.Month < 1 || filter.Month > 12 {
		return reporterrors.ErrInvalidMonth
	}
	if filter.Year < 1 {
		return reporterrors.ErrInvalidYear
	}
	return nil
}

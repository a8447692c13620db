package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Fritz24/Remunera/internal/compensation"
	"github.com/Fritz24/Remunera/internal/events"
	"github.com/Fritz24/Remunera/internal/messaging/kafka"
	payrollerrors "github.com/Fritz24/Remunera/internal/payroll/errors"
	"github.com/Fritz24/Remunera/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusDraft      = "draft"
	StatusProcessing = "processing"
	StatusApproved   = "approved"
	StatusPaid       = "paid"

	PayslipStatusPending   = "pending"
	PayslipStatusApproved  = "approved"
	PayslipStatusPaid      = "paid"
	PayslipStatusCancelled = "cancelled"

	OverallComplete   = "complete"
	OverallIncomplete = "incomplete"
)

// allowedTransitions is the run status machine. paid -> approved is the
// explicit revert path; everything else moves forward only.
var allowedTransitions = map[string][]string{
	StatusDraft:      {StatusProcessing},
	StatusProcessing: {StatusApproved},
	StatusApproved:   {StatusPaid},
	StatusPaid:       {StatusApproved},
}

const runLockTTL = 2 * time.Minute

type Service interface {
	Run(ctx context.Context, actorID string, req RunPayrollRequest) (RunPayrollResponse, error)
	SetStatus(ctx context.Context, id string, req SetRunStatusRequest) (PayrollRunResponse, error)
	GetAll(ctx context.Context, filter GetRunsFilterRequest) ([]PayrollRunResponse, error)
	GetByID(ctx context.Context, id string) (PayrollRunResponse, error)
	GetPayslips(ctx context.Context, runID string) ([]PayslipResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func NewServiceWithOutbox(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox}
}

// NewServiceWithLocker adds a redis lock keyed by period so two
// concurrent runs for the same (month, year) cannot interleave.
func NewServiceWithLocker(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, rdb *redis.Client) Service {
	return &service{db: db, repo: repo, outbox: outbox, rdb: rdb}
}

func (s *service) Run(ctx context.Context, actorID string, req RunPayrollRequest) (RunPayrollResponse, error) {
	if req.Month < 1 || req.Month > 12 {
		return RunPayrollResponse{}, payrollerrors.ErrInvalidMonth
	}
	if req.Year < 1 {
		return RunPayrollResponse{}, payrollerrors.ErrInvalidYear
	}

	var processedBy *uuid.UUID
	if id, err := uuid.Parse(actorID); err == nil {
		processedBy = &id
	}

	if s.rdb != nil {
		lockKey := fmt.Sprintf("payroll:run:%d-%02d", req.Year, req.Month)
		acquired, err := s.rdb.SetNX(ctx, lockKey, "locked", runLockTTL).Result()
		if err == nil && !acquired {
			return RunPayrollResponse{}, payrollerrors.ErrRunInProgress
		}
		if err == nil {
			defer s.rdb.Del(context.WithoutCancel(ctx), lockKey)
		}
	}

	var out RunPayrollResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		now := time.Now().UTC()

		run, err := qtx.FindRunByPeriod(ctx, req.Month, req.Year)
		switch {
		case err == nil:
			if run.Status == StatusPaid {
				return payrollerrors.ErrRunAlreadyPaid
			}
			// Purge children before parents, then regenerate.
			if err := qtx.DeleteDetailsByRun(ctx, run.ID); err != nil {
				return err
			}
			if err := qtx.DeletePayslipsByRun(ctx, run.ID); err != nil {
				return err
			}
			run.Status = StatusProcessing
			run.ProcessedBy = processedBy
			run.ProcessedAt = &now
			if err := qtx.UpdateRun(ctx, run); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			run = &PayrollRun{
				ID:          uuid.New(),
				Month:       req.Month,
				Year:        req.Year,
				Status:      StatusProcessing,
				ProcessedBy: processedBy,
				ProcessedAt: &now,
			}
			if err := qtx.CreateRun(ctx, run); err != nil {
				return err
			}
		default:
			return err
		}

		staffList, err := qtx.ListEligibleStaff(ctx, req.Month, req.Year)
		if err != nil {
			return err
		}

		var (
			payslips        []Payslip
			details         []PayslipDetail
			totalGross      decimal.Decimal
			totalDeductions decimal.Decimal
			totalNet        decimal.Decimal
			rowErrors       []RunRowError
		)

		for _, st := range staffList {
			profile, err := st.PayProfile()
			if err != nil {
				rowErrors = append(rowErrors, RunRowError{
					StaffID:   st.ID.String(),
					StaffName: st.FullName(),
					Error:     err.Error(),
				})
				continue
			}

			comp := compensation.Resolve(profile)

			slip := Payslip{
				ID:              uuid.New(),
				PayrollRunID:    run.ID,
				StaffID:         st.ID,
				Month:           req.Month,
				Year:            req.Year,
				BasicSalary:     comp.BasicSalary,
				TotalAllowances: comp.TotalAllowances,
				TotalDeductions: comp.TotalDeductions,
				GrossPay:        comp.GrossPay,
				NetPay:          comp.NetPay,
				Status:          PayslipStatusPending,
			}
			payslips = append(payslips, slip)

			for _, li := range comp.LineItems {
				details = append(details, PayslipDetail{
					ID:        uuid.New(),
					PayslipID: slip.ID,
					Type:      li.Type,
					Name:      li.Name,
					Amount:    li.Amount,
				})
			}

			totalGross = totalGross.Add(comp.GrossPay)
			totalDeductions = totalDeductions.Add(comp.TotalDeductions)
			totalNet = totalNet.Add(comp.NetPay)
		}

		if len(payslips) > 0 {
			if err := qtx.CreatePayslips(ctx, payslips); err != nil {
				return err
			}
		}
		if len(details) > 0 {
			if err := qtx.CreateDetails(ctx, details); err != nil {
				return err
			}
		}

		run.TotalGross = totalGross
		run.TotalDeductions = totalDeductions
		run.TotalNet = totalNet
		if len(rowErrors) == 0 {
			run.Status = StatusApproved
		}
		if err := qtx.UpdateRun(ctx, run); err != nil {
			return err
		}

		if s.outbox != nil {
			if err := s.queueRunProcessedEvent(ctx, tx, run, actorID, len(payslips)); err != nil {
				return err
			}
		}

		out = RunPayrollResponse{
			PayrollRun:        mapRunToResponse(*run, false),
			PayslipsGenerated: len(payslips),
			Errors:            rowErrors,
		}
		return nil
	})
	if err != nil {
		return RunPayrollResponse{}, err
	}

	return out, nil
}

func (s *service) SetStatus(ctx context.Context, id string, req SetRunStatusRequest) (PayrollRunResponse, error) {
	var out PayrollRunResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		run, err := qtx.FindRunByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return payrollerrors.ErrRunNotFound
			}
			return err
		}

		if !transitionAllowed(run.Status, req.Status) {
			return payrollerrors.ErrInvalidStatusTransition
		}

		reverting := run.Status == StatusPaid && req.Status == StatusApproved
		run.Status = req.Status
		if err := qtx.UpdateRun(ctx, run); err != nil {
			return err
		}

		switch {
		case req.Status == StatusPaid:
			now := time.Now().UTC()
			if err := qtx.UpdatePayslipStatusByRun(ctx, run.ID, PayslipStatusPaid, &now); err != nil {
				return err
			}
		case reverting:
			if err := qtx.UpdatePayslipStatusByRun(ctx, run.ID, PayslipStatusPending, nil); err != nil {
				return err
			}
		}

		out = mapRunToResponse(*run, false)
		return nil
	})
	if err != nil {
		return PayrollRunResponse{}, err
	}

	return out, nil
}

func (s *service) GetAll(ctx context.Context, filter GetRunsFilterRequest) ([]PayrollRunResponse, error) {
	runs, err := s.repo.ListRuns(ctx, filter.Month, filter.Year)
	if err != nil {
		return nil, err
	}

	res := make([]PayrollRunResponse, len(runs))
	for i, run := range runs {
		res[i] = mapRunToResponse(run, true)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollRunResponse, error) {
	run, err := s.repo.FindRunByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollRunResponse{}, payrollerrors.ErrRunNotFound
		}
		return PayrollRunResponse{}, err
	}

	return mapRunToResponse(*run, true), nil
}

func (s *service) GetPayslips(ctx context.Context, runID string) ([]PayslipResponse, error) {
	payslips, err := s.repo.ListPayslipsByRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	res := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		res[i] = mapPayslipToResponse(p)
	}
	return res, nil
}

func (s *service) queueRunProcessedEvent(ctx context.Context, tx *gorm.DB, run *PayrollRun, actorID string, generated int) error {
	event := events.PayrollRunProcessedEvent{
		EventType:         "payroll.run.processed",
		PayrollRunID:      run.ID.String(),
		Month:             run.Month,
		Year:              run.Year,
		Status:            run.Status,
		PayslipsGenerated: generated,
		ProcessedBy:       actorID,
		OccurredAt:        time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_run",
		AggregateID:   run.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollRunProcessedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// mapRunToResponse formats a run. withOverall also derives the
// children-completion view: complete when every payslip is paid or
// approved. The stored status column stays the source of truth.
func mapRunToResponse(run PayrollRun, withOverall bool) PayrollRunResponse {
	resp := PayrollRunResponse{
		ID:              run.ID.String(),
		Month:           run.Month,
		Year:            run.Year,
		TotalGross:      run.TotalGross,
		TotalDeductions: run.TotalDeductions,
		TotalNet:        run.TotalNet,
		Status:          run.Status,
	}

	if withOverall {
		resp.OverallStatus = deriveOverallStatus(run.Payslips)
	}
	if run.ProcessedBy != nil {
		v := run.ProcessedBy.String()
		resp.ProcessedBy = &v
	}
	if run.ProcessedAt != nil {
		v := run.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}

	return resp
}

func deriveOverallStatus(payslips []Payslip) string {
	for _, p := range payslips {
		if p.Status != PayslipStatusPaid && p.Status != PayslipStatusApproved {
			return OverallIncomplete
		}
	}
	return OverallComplete
}

func mapPayslipToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:              p.ID.String(),
		PayrollRunID:    p.PayrollRunID.String(),
		StaffID:         p.StaffID.String(),
		Month:           p.Month,
		Year:            p.Year,
		BasicSalary:     p.BasicSalary,
		TotalAllowances: p.TotalAllowances,
		TotalDeductions: p.TotalDeductions,
		GrossPay:        p.GrossPay,
		NetPay:          p.NetPay,
		Status:          p.Status,
	}

	if p.Staff != nil {
		resp.StaffName = p.Staff.FirstName + " " + p.Staff.LastName
		if p.Staff.Position != nil {
			resp.Position = p.Staff.Position.Title
		}
	}
	if p.PaymentDate != nil {
		v := p.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &v
	}
	for _, d := range p.Details {
		resp.Details = append(resp.Details, PayslipDetailResponse{
			Type:   d.Type,
			Name:   d.Name,
			Amount: d.Amount,
		})
	}

	return resp
}

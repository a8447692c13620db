package events

import "time"

const PayrollRunProcessedTopic = "hr.payroll.run.processed.v1"

type PayrollRunProcessedEvent struct {
	EventType         string    `json:"event_type"`
	PayrollRunID      string    `json:"payroll_run_id"`
	Month             int       `json:"month"`
	Year              int       `json:"year"`
	Status            string    `json:"status"`
	PayslipsGenerated int       `json:"payslips_generated"`
	ProcessedBy       string    `json:"processed_by,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}

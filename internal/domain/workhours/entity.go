package workhours

import (
	"time"
)

// WorkType is the closed set of concurrent work categories an employee can
// punch under. The category is carried as a suffix on the employee id at
// punch time ("1234 SP") and resolved once by the classifier.
type WorkType string

const (
	WorkTypeRegular        WorkType = "regular"
	WorkTypeSpecialProject WorkType = "sp"
	WorkTypePeriodicWork   WorkType = "pw"
	WorkTypePartTime       WorkType = "pt"
)

// AllWorkTypes lists every bucket in report order.
var AllWorkTypes = []WorkType{WorkTypeRegular, WorkTypeSpecialProject, WorkTypePeriodicWork, WorkTypePartTime}

// Direction of a single punch. Recomputed from the action description on
// every calculation run, never persisted.
type Direction string

const (
	DirectionIn  Direction = "check_in"
	DirectionOut Direction = "check_out"
)

// Event is the canonical attendance event the pipeline operates on. All
// external punch representations are converted to this shape by the
// normalizer before any business logic runs.
type Event struct {
	RecordID     int64
	EmployeeID   string
	BaseID       string
	WorkType     WorkType
	Date         time.Time
	TimeOfDay    time.Time
	LocationName string
	Direction    Direction
	// Timestamp is Date combined with TimeOfDay, used only for ordering
	// events within a day.
	Timestamp time.Time
}

// Pair is a candidate shift: optionally a check-in, optionally a check-out.
// Built transiently for one day of one bucket and consumed immediately by
// the daily calculator.
type Pair struct {
	CheckIn   *Event
	CheckOut  *Event
	MissPunch bool
}

// DurationMinutes returns the worked minutes for a matched pair, or -1 when
// either leg is missing or the pair is flagged as a miss-punch. The sentinel
// keeps an incomplete day distinguishable from a day with zero hours.
func (p Pair) DurationMinutes() int {
	if p.MissPunch || p.CheckIn == nil || p.CheckOut == nil {
		return -1
	}
	return int(p.CheckOut.Timestamp.Sub(p.CheckIn.Timestamp).Minutes())
}

// MissPunchDetail surfaces one unmatched punch for operator review.
type MissPunchDetail struct {
	WorkType  WorkType `json:"work_type"`
	Direction string   `json:"direction"`
	Time      string   `json:"time"`
	Location  string   `json:"location"`
}

// DailyEntry is the per-date breakdown inside an employee report.
type DailyEntry struct {
	TotalMinutes     int               `json:"total_minutes"`
	TotalHours       float64           `json:"total_hours"`
	RegularHours     float64           `json:"regular_hours"`
	SPHours          float64           `json:"sp_hours"`
	PWHours          float64           `json:"pw_hours"`
	PTHours          float64           `json:"pt_hours"`
	IsMissPunch      bool              `json:"is_miss_punch"`
	RecordsCount     int               `json:"records_count"`
	MissPunchDetails []MissPunchDetail `json:"miss_punch_details"`
}

// WeeklyEntry is one Sunday-terminated (or period-terminated) week summary.
// RegularHours is capped at 40; the excess lands in OvertimeHours. SP/PW/PT
// hours are additive and never feed the overtime split.
type WeeklyEntry struct {
	WeekStart     string  `json:"week_start"`
	WeekEnd       string  `json:"week_end"`
	TotalHours    float64 `json:"total_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	SPHours       float64 `json:"sp_hours"`
	PWHours       float64 `json:"pw_hours"`
	PTHours       float64 `json:"pt_hours"`
}

// GrandTotals sums all weekly entries for the requested range.
type GrandTotals struct {
	TotalHours      float64 `json:"total_hours"`
	RegularHours    float64 `json:"regular_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	SPHours         float64 `json:"sp_hours"`
	PWHours         float64 `json:"pw_hours"`
	PTHours         float64 `json:"pt_hours"`
	TotalMinutes    int     `json:"total_minutes"`
	RegularMinutes  int     `json:"regular_minutes"`
	OvertimeMinutes int     `json:"overtime_minutes"`
	SPMinutes       int     `json:"sp_minutes"`
	PWMinutes       int     `json:"pw_minutes"`
	PTMinutes       int     `json:"pt_minutes"`
}

// EmployeeReport is the full daily/weekly/grand-total structure for one base
// employee over a date range.
type EmployeeReport struct {
	EmployeeID     string                `json:"employee_id"`
	BaseEmployeeID string                `json:"base_employee_id"`
	StartDate      string                `json:"start_date"`
	EndDate        string                `json:"end_date"`
	DailyHours     map[string]DailyEntry `json:"daily_hours"`
	WeeklyHours    []WeeklyEntry         `json:"weekly_hours"`
	GrandTotals    GrandTotals           `json:"grand_totals"`
}

// MultiEmployeeReport wraps per-employee reports for a whole batch run.
type MultiEmployeeReport struct {
	CalculationDate string                    `json:"calculation_date"`
	PeriodStart     string                    `json:"period_start"`
	PeriodEnd       string                    `json:"period_end"`
	EmployeeCount   int                       `json:"employee_count"`
	Employees       map[string]EmployeeReport `json:"employees"`
}

package report

// DayLine is one calendar day of a monthly report. Days without a
// record keep nil punches so absences stay visible.
type DayLine struct {
	Date       string  `json:"date"`
	Weekday    string  `json:"weekday"`
	Entry1     *string `json:"entry1"`
	Exit1      *string `json:"exit1"`
	Entry2     *string `json:"entry2"`
	Exit2      *string `json:"exit2"`
	TotalHours *string `json:"total_hours"`
	IsAdjusted bool    `json:"is_adjusted"`
}

type MonthlyReport struct {
	UserID                 string    `json:"user_id"`
	UserName               string    `json:"user_name"`
	CPF                    *string   `json:"cpf,omitempty"`
	DepartmentID           *string   `json:"department_id,omitempty"`
	Month                  string    `json:"month"`
	PeriodStart            string    `json:"period_start"`
	PeriodEnd              string    `json:"period_end"`
	Days                   []DayLine `json:"days"`
	TotalWorked            string    `json:"total_worked"`
	ApprovedJustifications int       `json:"approved_justifications"`
}

package domain

// Category names the dashboard treats as work time.
const (
	WorkCategoryName  = "Work"
	FocusCategoryName = "Focus"
)

type WorkTrend string

const (
	TrendIncrease WorkTrend = "increase"
	TrendDecrease WorkTrend = "decrease"
	TrendNeutral  WorkTrend = "neutral"
)

type WorkHours struct {
	Hours   int
	Minutes int
}

// DailySummary holds per-category minutes for today as two
// index-aligned sequences, labels sorted alphabetically.
type DailySummary struct {
	Labels []string
	Data   []int
}

type ProductiveApp struct {
	Name    string
	Minutes int
}

type Insight struct {
	Icon string
	Text string
}

// CompletedTask is the slice of a task the metrics engine needs:
// a DONE task with a recorded duration, plus its optional category
// and app/website names.
type CompletedTask struct {
	DurationMinutes int
	CategoryName    *string
	AppWebsiteName  *string
}

// DashboardSnapshot is the full dashboard response for one user on
// one calendar day. It is recomputed on every request and never
// persisted.
type DashboardSnapshot struct {
	WorkHours       WorkHours
	WorkHoursTrend  WorkTrend
	PercentOfTarget int
	FocusPercent    int
	DailySummary    DailySummary
	ProductiveApps  []ProductiveApp
	Insights        []Insight
	TasksDueToday   int
}

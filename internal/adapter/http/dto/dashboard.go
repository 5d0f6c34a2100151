package dto

// Field names follow the shape the dashboard frontend consumes.

type WorkHours struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type DailySummary struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

type ProductiveApp struct {
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
}

type Insight struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

type DashboardSnapshot struct {
	WorkHours       WorkHours       `json:"workHours"`
	WorkHoursTrend  string          `json:"workHoursTrend"`
	PercentOfTarget int             `json:"percentOfTarget"`
	FocusPercent    int             `json:"focusPercent"`
	DailySummary    DailySummary    `json:"dailySummary"`
	ProductiveApps  []ProductiveApp `json:"productiveApps"`
	AiInsights      []Insight       `json:"aiInsights"`
	TasksDueToday   int             `json:"tasksDueToday"`
}

type Suggestion struct {
	Suggestion string `json:"suggestion"`
}

package dto

type DailyActivity struct {
	Date      string `json:"date"`
	Completed int64  `json:"completed"`
	Added     int64  `json:"added"`
}

type StatusCount struct {
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
}

type PriorityCount struct {
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
}

type AnalyticsSummary struct {
	Daily    []DailyActivity `json:"daily"`
	Status   StatusCount     `json:"status"`
	Priority PriorityCount   `json:"priority"`
}

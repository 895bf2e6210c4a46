package domain

// StatusCount holds the per-status totals. Tasks whose status matches
// neither literal are counted in neither bucket.
type StatusCount struct {
	Completed int64
	Pending   int64
}

type PriorityCount struct {
	High   int64
	Medium int64
	Low    int64
}

// DailyActivity is one calendar day of the trailing trend. Added counts
// tasks created that day. Completed counts tasks created that day whose
// current status is "completed" (there is no completion timestamp).
type DailyActivity struct {
	Date      string
	Completed int64
	Added     int64
}

type AnalyticsSummary struct {
	Daily    []DailyActivity
	Status   StatusCount
	Priority PriorityCount
}

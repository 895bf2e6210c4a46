package dto

// TaskItem mirrors the persisted task on the wire. description and
// due_date serialize as explicit nulls when absent.
type TaskItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	CreatedAt   string  `json:"created_at"`
}

// TaskPayload is the body of both POST /tasks and PATCH /tasks/:id. The
// update is a full replacement, so the same shape serves both: absent
// optional fields fall back to their defaults rather than keeping the old
// value. status and priority are deliberately unconstrained strings.
type TaskPayload struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
}

package apierrors

const (
	MsgTaskNotFound       = "taskNotFound"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInternalError      = "internalError"
)

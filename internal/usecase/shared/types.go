package shared

// LessonSnapshot is the write side's copy of a lesson row.
type LessonSnapshot struct {
	ID       string
	Topic    string
	Location string
	Price    float64
	Space    int
}

const (
	NotificationKindOrder    = "order"
	NotificationTopicPlaced  = "order_placed"
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
	NotificationMaxAttempts  = 5
)

package utils

// Notification dispatch is fire-and-forget: handlers enqueue a job and
// return without waiting, the worker logs failures and never retries them.

// NotificationJob describes one form submission to announce on the
// side channels (email + WhatsApp)
type NotificationJob struct {
	Label  string
	Fields map[string]string
}

var (
	notificationQueue chan NotificationJob

	// swapped out by tests
	sendEmailFn    = SendFormSubmissionEmail
	sendWhatsAppFn = SendFormSubmissionNotification
)

// InitNotifier creates the bounded notification queue and starts the worker
func InitNotifier(buffer int) {
	if buffer < 1 {
		buffer = 1
	}
	notificationQueue = make(chan NotificationJob, buffer)
	go notificationWorker(notificationQueue)
	LogInfo("Notification worker started with queue size %d", buffer)
}

// DispatchNotification enqueues a job without blocking the request handler.
// Jobs are dropped (and logged) when the queue is full or not initialized.
func DispatchNotification(job NotificationJob) {
	if notificationQueue == nil {
		LogError("Notification dropped - queue not initialized: %s", job.Label)
		return
	}
	select {
	case notificationQueue <- job:
	default:
		LogError("Notification dropped - queue full: %s", job.Label)
	}
}

func notificationWorker(queue <-chan NotificationJob) {
	for job := range queue {
		if err := sendEmailFn(job.Label, job.Fields); err != nil {
			LogError("Failed to send %s notification email: %v", job.Label, err)
		}
		if err := sendWhatsAppFn(job.Label, job.Fields); err != nil {
			LogError("Failed to send %s WhatsApp notification: %v", job.Label, err)
		}
	}
}

package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDispatchWithoutInitDoesNotPanic(t *testing.T) {
	notificationQueue = nil
	assert.NotPanics(t, func() {
		DispatchNotification(NotificationJob{Label: "Consultation"})
	})
}

func TestNotifierDeliversToBothChannels(t *testing.T) {
	var mu sync.Mutex
	var emails, whatsapps []string
	done := make(chan struct{}, 2)

	origEmail, origWhatsApp := sendEmailFn, sendWhatsAppFn
	defer func() {
		sendEmailFn, sendWhatsAppFn = origEmail, origWhatsApp
	}()
	sendEmailFn = func(label string, fields map[string]string) error {
		mu.Lock()
		emails = append(emails, label)
		mu.Unlock()
		done <- struct{}{}
		return nil
	}
	sendWhatsAppFn = func(label string, fields map[string]string) error {
		mu.Lock()
		whatsapps = append(whatsapps, label)
		mu.Unlock()
		done <- struct{}{}
		return nil
	}

	InitNotifier(4)
	DispatchNotification(NotificationJob{Label: "Callback Request", Fields: map[string]string{"Name": "Ravi"}})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for notification delivery")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Callback Request"}, emails)
	assert.Equal(t, []string{"Callback Request"}, whatsapps)
}

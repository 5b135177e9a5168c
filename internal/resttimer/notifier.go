package resttimer

import (
	log "github.com/sirupsen/logrus"
)

// Notifier receives the reached-zero signal so the client can play the
// buzzer sound / vibration / push notification. Delivery is fire-and-forget:
// the engine never waits on it and a misbehaving notifier cannot fail or
// stall a run.
type Notifier interface {
	NotifyReachedZero()
}

func safeNotifyReachedZero(n Notifier) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("rest timer: reached-zero notifier panicked: %v", r)
			}
		}()
		n.NotifyReachedZero()
	}()
}

// LogNotifier is the default server-side notifier: it only records that
// the buzzer moment happened, actual delivery belongs to the client.
type LogNotifier struct{}

func (LogNotifier) NotifyReachedZero() {
	log.Tracef("rest timer: reached zero")
}

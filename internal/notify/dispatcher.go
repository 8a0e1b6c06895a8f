package notify

import "github.com/sirupsen/logrus"

type Event struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher sends emails off the request path. Delivery is best effort:
// when the queue is full the event is dropped rather than blocking the API.
type Dispatcher struct {
	mailer *Mailer
	queue  chan Event
}

func NewDispatcher(mailer *Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.mailer.Send(ev.To, ev.Subject, ev.Body); err != nil {
			logrus.WithError(err).Warn("email error")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logrus.Warn("email queue full, dropping event")
	}
}

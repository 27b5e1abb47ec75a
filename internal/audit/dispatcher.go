package audit

import "github.com/rs/zerolog"

type Event struct {
	InstituteID uint
	UserID      *uint
	Action      string
	Entity      string
	EntityID    string
	Metadata    any
}

type Dispatcher struct {
	logger *Logger
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.InstituteID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch met l'événement en file sans bloquer. Un dispatcher nil
// ignore tout : l'audit n'est jamais requis pour répondre.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
		// envoyé
	default:
		// file pleine → on perd l'audit, jamais l'API
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

package schedule

import "github.com/InstitutAurelia/institute-scheduler/internal/httperr"

// ===============================
// Statut de réservation
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Transitions : pending → confirmed → completed ; cancelled est atteignable
// depuis pending ou confirmed. Aucune sortie de cancelled ni de completed.
// Le moteur de disponibilité ne distingue que confirmed (occupe le
// planning) du reste ; le graphe complet sert aux cas d'usage et à l'UI.

// CanConfirm : seule une réservation en attente se confirme.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel : annulable tant que le soin n'a pas eu lieu.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete : seul un rendez-vous confirmé se termine.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// Occupies indique si ce statut occupe le planning.
func (s Status) Occupies() bool {
	return s == StatusConfirmed
}

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

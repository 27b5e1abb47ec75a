package schedule

const (
	// Temps de préparation non réservable, ajouté après chaque rendez-vous
	// confirmé. Il suit le rendez-vous, jamais l'inverse : un soin peut
	// commencer à l'instant exact où le tampon précédent se termine.
	PrepBufferMin = 15

	// Durée de repli quand ni la réservation ni le catalogue ne permettent
	// de résoudre une durée. Une donnée absente ne doit jamais casser le
	// rendu du planning.
	FallbackDurationMin = 60

	// Écart toléré entre une sélection étirée à la main et la durée
	// catalogue avant de demander confirmation au personnel.
	MismatchToleranceMin = 30
)

// Reservation est la vue planning d'une réservation : uniquement ce dont
// le moteur a besoin pour décider de l'occupation d'un créneau.
type Reservation struct {
	Date  DateKey
	Start TimeOfDay

	// Slugs (ou noms) des soins réservés.
	Services []string

	// Durée explicite en minutes ; 0 = non renseignée, calculée depuis le
	// catalogue.
	Duration int

	Status Status
}

// BlockedSlot est un blocage manuel : soit la journée entière, soit une
// cellule de la grille.
type BlockedSlot struct {
	Date   DateKey
	Time   TimeOfDay
	AllDay bool
}

// Interval est un intervalle semi-ouvert [Start, End) en minutes depuis
// minuit. End peut dépasser 1440 pour un soin chevauchant minuit.
type Interval struct {
	Start int
	End   int
}

// Overlaps teste l'intersection de deux intervalles semi-ouverts. Deux
// intervalles qui se touchent seulement en bord ne se chevauchent pas :
// l'adjacence est permise, le tampon étant déjà inclus dans chaque fin.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains indique si un instant tombe dans l'intervalle.
func (i Interval) Contains(t TimeOfDay) bool {
	return i.Start <= int(t) && int(t) < i.End
}

// resolveRef résout la durée d'une référence de soin : slug d'abord, puis
// nom lisible, sinon repli.
func resolveRef(ref string, cat Catalog) int {
	if s, ok := cat.BySlug(ref); ok && s.Duration > 0 {
		return s.Duration
	}
	if s, ok := cat.ByName(ref); ok && s.Duration > 0 {
		return s.Duration
	}
	return FallbackDurationMin
}

// ResolveDuration retourne la durée en minutes d'une réservation.
// Ordre de résolution : durée explicite, puis somme des soins référencés
// (slug, puis nom), puis repli de 60 minutes. Toujours strictement
// positive, ne retourne jamais d'erreur : une donnée mal formée dégrade
// vers le repli plutôt que de faire échouer l'affichage.
func ResolveDuration(r Reservation, cat Catalog) int {
	if r.Duration > 0 {
		return r.Duration
	}

	if len(r.Services) == 0 {
		return FallbackDurationMin
	}

	total := 0
	for _, ref := range r.Services {
		total += resolveRef(ref, cat)
	}
	return total
}

// OccupiedInterval calcule l'intervalle occupé par une réservation :
// [début, début + durée + tampon). Le tampon de préparation est replié
// dans la borne de fin pour tous les calculs de chevauchement.
func OccupiedInterval(r Reservation, cat Catalog) Interval {
	start := int(r.Start)
	return Interval{
		Start: start,
		End:   start + ResolveDuration(r, cat) + PrepBufferMin,
	}
}

// IsDateBlocked indique si la journée entière est bloquée. Une journée
// bloquée désactive toute interaction, quelle que soit la disponibilité
// créneau par créneau.
func IsDateBlocked(date DateKey, blocks []BlockedSlot) bool {
	for _, b := range blocks {
		if b.Date == date && b.AllDay {
			return true
		}
	}
	return false
}

// ReservationsForDate filtre les réservations confirmées du jour, dans
// l'ordre du store. Les appelants qui veulent un ordre chronologique
// trient eux-mêmes.
func ReservationsForDate(date DateKey, reservations []Reservation) []Reservation {
	out := make([]Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.Date == date && r.Status == StatusConfirmed {
			out = append(out, r)
		}
	}
	return out
}

// IsSlotAvailable décide si un rendez-vous de durationMin minutes peut
// commencer à start le jour donné.
//
// Seules les réservations confirmées occupent le planning : une attente
// non confirmée ou une annulation ne doit jamais assécher le calendrier.
func IsSlotAvailable(
	date DateKey,
	start TimeOfDay,
	durationMin int,
	reservations []Reservation,
	blocks []BlockedSlot,
	cat Catalog,
) bool {

	if IsDateBlocked(date, blocks) {
		return false
	}

	candidate := Interval{
		Start: int(start),
		End:   int(start) + durationMin + PrepBufferMin,
	}

	for _, r := range ReservationsForDate(date, reservations) {
		if candidate.Overlaps(OccupiedInterval(r, cat)) {
			return false
		}
	}

	for _, b := range blocks {
		if b.Date != date || b.AllDay {
			continue
		}
		if candidate.Contains(b.Time) {
			return false
		}
	}

	return true
}

// DurationMismatch signale une sélection étirée à la main nettement plus
// longue que la durée catalogue. Le moteur ne bloque pas la réservation :
// l'écart est soumis à confirmation du personnel par l'appelant.
func DurationMismatch(selectionMin int, r Reservation, cat Catalog) bool {
	catalog := ResolveDuration(Reservation{Services: r.Services}, cat)
	return selectionMin > catalog+MismatchToleranceMin
}

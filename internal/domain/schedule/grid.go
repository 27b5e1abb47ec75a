package schedule

import (
	"fmt"
	"time"
)

// Pas de la grille du planning, en minutes.
const GridStepMin = 30

// TimeOfDay est une heure murale exprimée en minutes depuis minuit (0–1439).
// La sélection de créneaux se fait sur une grille de 30 minutes, mais des
// valeurs arbitraires peuvent arriver via des données importées ou saisies
// à la main.
type TimeOfDay int

// ParseTimeOfDay lit une heure au format "15:04".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < 24*60
}

// OnGrid indique si l'heure tombe sur la grille de 30 minutes.
func (t TimeOfDay) OnGrid() bool {
	return int(t)%GridStepMin == 0
}

// DateKey est une date calendaire sans composante horaire. Deux DateKey
// sont égales ssi leurs champs (année, mois, jour) coïncident — jamais par
// durée écoulée, pour éviter les décalages de fuseau.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// DateKeyOf extrait la date calendaire locale d'un instant.
func DateKeyOf(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey{Year: y, Month: m, Day: d}
}

// ParseDateKey lit une date au format "2006-01-02".
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return DateKey{}, err
	}
	return DateKeyOf(t), nil
}

func (d DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// At replace la date dans un fuseau donné, à l'heure fournie.
func (d DateKey) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, int(t)/60, int(t)%60, 0, 0, loc)
}

func (d DateKey) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

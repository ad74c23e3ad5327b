package domain

// Session categories used by the seed data. The set is open-ended: the store may hold
// any label.
const (
	CategoryTechnical            = "Técnica"
	CategoryPhysicalCoordinative = "Física-Coordinativa"
	CategoryTacticalGame         = "Táctica-Juego"
)

// Session is one scheduled practice (a training day) made of exercises.
type Session struct {
	ID        int        `bson:"id" json:"id"`
	Category  string     `bson:"tipo" json:"tipo"`
	Name      string     `bson:"nombre" json:"nombre"`
	Day       string     `bson:"dia" json:"dia"`           // e.g. "Lunes"
	Duration  int        `bson:"duracion" json:"duracion"` // Minutes
	Image     string     `bson:"imagen" json:"imagen"`     // Absolute URL or storage object key
	Exercises []Exercise `bson:"ejercicios" json:"ejercicios"`
}

// ExerciseMinutes sums the durations of the session's exercises. It is expected, but not
// enforced, to equal Duration.
func (s Session) ExerciseMinutes() int {
	total := 0
	for _, ex := range s.Exercises {
		total += ex.Duration
	}
	return total
}

// WeeklyTraining groups the sessions of one week of a mesocycle.
type WeeklyTraining struct {
	ID          int       `bson:"id" json:"id"`
	MesocycleID int       `bson:"mesociclo_id" json:"mesociclo_id"` // Foreign key to Mesocycle.ID
	Week        int       `bson:"semana" json:"semana"`             // 1-based within the mesocycle
	Sessions    []Session `bson:"sesiones" json:"sesiones"`
}

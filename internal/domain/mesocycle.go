package domain

// Mesocycle is a multi-week training phase of the program.
type Mesocycle struct {
	ID          int    `bson:"id" json:"id"`
	Name        string `bson:"nombre" json:"nombre"`
	Month       string `bson:"mes" json:"mes"` // e.g. "Mes 1"
	Description string `bson:"descripcion" json:"descripcion"`
	Color       string `bson:"color" json:"color"` // Display token, e.g. "bg-blue-500"
	Objective   string `bson:"objetivo" json:"objetivo"`
	Weeks       int    `bson:"semanas" json:"semanas"`
}

// MesocycleDetail is assembled on read and never persisted.
type MesocycleDetail struct {
	Mesocycle       Mesocycle        `json:"mesociclo"`
	Objectives      []string         `json:"objetivos"`
	WeeklyTrainings []WeeklyTraining `json:"sesiones_semanales"`
}

// MesocycleCreate is the request shape of a mesocycle embedded in a new plan. There is no
// write route for the mesociclos collection; seeding is its only producer.
type MesocycleCreate struct {
	Name        string `json:"nombre" binding:"required"`
	Month       string `json:"mes" binding:"required"`
	Description string `json:"descripcion"`
	Color       string `json:"color"`
	Objective   string `json:"objetivo"`
	Weeks       int    `json:"semanas" binding:"min=1"`
}

// internal/domain/training_plan.go
package domain

import (
	"time"
)

// FullPlan is the top-level aggregate describing the whole multi-month program.
// Mesocycles are embedded copies, not references.
type FullPlan struct {
	ID              string      `bson:"id" json:"id"` // UUID string, generated on create
	Title           string      `bson:"titulo" json:"titulo"`
	Description     string      `bson:"descripcion" json:"descripcion"`
	Category        string      `bson:"categoria" json:"categoria"` // e.g. "Benjamines (8-10 años)"
	DurationMonths  int         `bson:"duracion_meses" json:"duracion_meses"`
	SessionsPerWeek int         `bson:"sesiones_por_semana" json:"sesiones_por_semana"`
	SessionDuration int         `bson:"duracion_sesion" json:"duracion_sesion"` // Minutes
	Mesocycles      []Mesocycle `bson:"mesociclos" json:"mesociclos"`
	BasicMaterial   []string    `bson:"material_basico" json:"material_basico"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt       *time.Time  `bson:"updated_at,omitempty" json:"updated_at"` // Never set by this service
}

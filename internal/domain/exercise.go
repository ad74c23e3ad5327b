// internal/domain/exercise.go
package domain

// Exercise is a single timed drill inside a Session.
type Exercise struct {
	ID          int    `bson:"id" json:"id"`
	Name        string `bson:"nombre" json:"nombre"`
	Duration    int    `bson:"duracion" json:"duracion"` // Minutes
	Description string `bson:"descripcion" json:"descripcion"`
	Material    string `bson:"material" json:"material"` // Free text, e.g. "Balones, conos"
	Objective   string `bson:"objetivo" json:"objetivo"`
}

package service

// mesocycleObjectives is fixed at build time and never read from the store.
var mesocycleObjectives = map[int][]string{
	1: {"Familiarización con el balón", "Coordinación básica", "Diversión y participación"},
	2: {"Técnica individual", "Pase y recepción", "Control del balón"},
	3: {"Perfeccionamiento técnico", "Coordinación avanzada", "Creatividad"},
	4: {"Juego colectivo", "Conceptos tácticos básicos", "Competencia sana"},
	5: {"Consolidación", "Aplicación práctica", "Evaluación final"},
}

// objectivesFor returns a copy of the objectives of a mesocycle, or an empty list for
// ids outside the table.
func objectivesFor(mesocycleID int) []string {
	return append([]string{}, mesocycleObjectives[mesocycleID]...)
}

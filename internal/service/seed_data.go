package service

import "alcyxob/football-training/internal/domain"

// basicMaterial is the equipment list served by /material-basico and embedded in the
// seeded plan.
var basicMaterial = []string{
	"Balones de fútbol (nº 3 o 4)",
	"Conos de diferentes colores",
	"Petos o camisetas de entrenamiento",
	"Porterías pequeñas (portátiles)",
	"Aros de coordinación",
	"Escalera de coordinación",
	"Silbato",
	"Cronómetro",
	"Bidones de agua",
	"Botiquín básico",
}

// Seeded plan header.
const (
	seedPlanTitle           = "Entrenamiento Fútbol 7 - Benjamines"
	seedPlanDescription     = "Planificación completa de entrenamiento para benjamines en fútbol 7"
	seedPlanCategory        = "Benjamines (8-10 años)"
	seedPlanDurationMonths  = 5
	seedPlanSessionsPerWeek = 3
	seedPlanSessionDuration = 90
)

// seedMesocycles returns a fresh copy of the five program mesocycles, one per month.
func seedMesocycles() []domain.Mesocycle {
	return []domain.Mesocycle{
		{
			ID:          1,
			Name:        "Adaptación y Familiarización",
			Month:       "Mes 1",
			Description: "Introducción al fútbol 7, familiarización con el balón y adaptación física básica",
			Color:       "bg-blue-500",
			Objective:   "Crear una base sólida para el aprendizaje futuro",
			Weeks:       4,
		},
		{
			ID:          2,
			Name:        "Técnica Individual Básica",
			Month:       "Mes 2",
			Description: "Desarrollo de habilidades técnicas fundamentales: pase, recepción, conducción",
			Color:       "bg-green-500",
			Objective:   "Dominar los fundamentos técnicos del fútbol",
			Weeks:       4,
		},
		{
			ID:          3,
			Name:        "Técnica Individual Avanzada",
			Month:       "Mes 3",
			Description: "Perfeccionamiento técnico y coordinación con balón",
			Color:       "bg-orange-500",
			Objective:   "Mejorar la técnica individual y coordinación",
			Weeks:       4,
		},
		{
			ID:          4,
			Name:        "Técnica Colectiva y Táctica",
			Month:       "Mes 4",
			Description: "Introducción a conceptos tácticos básicos y juego colectivo",
			Color:       "bg-purple-500",
			Objective:   "Desarrollar el juego en equipo y nociones tácticas",
			Weeks:       4,
		},
		{
			ID:          5,
			Name:        "Consolidación y Juego",
			Month:       "Mes 5",
			Description: "Consolidación de aprendizajes y aplicación en situaciones reales de juego",
			Color:       "bg-red-500",
			Objective:   "Aplicar todos los conocimientos adquiridos",
			Weeks:       4,
		},
	}
}

// seedWeeklyTrainings returns the first week of mesocycle 1: three 90 minute sessions.
func seedWeeklyTrainings() []domain.WeeklyTraining {
	return []domain.WeeklyTraining{
		{
			ID:          1,
			MesocycleID: 1,
			Week:        1,
			Sessions: []domain.Session{
				{
					ID:       1,
					Category: domain.CategoryTechnical,
					Name:     "Familiarización con el balón",
					Day:      "Lunes",
					Duration: 90,
					Image:    "https://images.unsplash.com/photo-1574242957680-7c8371ed191e",
					Exercises: []domain.Exercise{
						{ID: 1, Name: "Saludo y presentación", Duration: 10,
							Description: "Círculo de presentación, explicación de reglas básicas",
							Material:    "Ninguno",
							Objective:   "Crear ambiente de confianza y establecer normas"},
						{ID: 2, Name: "Calentamiento dinámico", Duration: 15,
							Description: "Carrera suave, movilidad articular, estiramientos dinámicos",
							Material:    "Conos, silbato",
							Objective:   "Preparar el cuerpo para la actividad física"},
						{ID: 3, Name: "Toque libre con el balón", Duration: 20,
							Description: "Cada jugador con su balón, exploración libre de toques",
							Material:    "1 balón por jugador",
							Objective:   "Familiarización inicial con el balón"},
						{ID: 4, Name: "Conducción básica", Duration: 25,
							Description: "Conducción con ambos pies en línea recta y curvas",
							Material:    "Balones, conos",
							Objective:   "Desarrollar control básico del balón"},
						{ID: 5, Name: "Juego libre", Duration: 15,
							Description: "Partido libre 4vs4 sin reglas complejas",
							Material:    "Balones, porterías pequeñas",
							Objective:   "Aplicar lo aprendido en situación de juego"},
						{ID: 6, Name: "Vuelta a la calma", Duration: 5,
							Description: "Estiramientos suaves y reflexión del entrenamiento",
							Material:    "Ninguno",
							Objective:   "Relajación y evaluación positiva"},
					},
				},
				{
					ID:       2,
					Category: domain.CategoryPhysicalCoordinative,
					Name:     "Desarrollo coordinativo básico",
					Day:      "Miércoles",
					Duration: 90,
					Image:    "https://images.unsplash.com/photo-1650897877790-0e171d2207dc",
					Exercises: []domain.Exercise{
						{ID: 1, Name: "Activación corporal", Duration: 10,
							Description: "Movimientos articulares y activación muscular",
							Material:    "Ninguno",
							Objective:   "Preparar el cuerpo para el ejercicio"},
						{ID: 2, Name: "Circuito coordinativo", Duration: 25,
							Description: "Saltos, giros, desplazamientos laterales entre conos",
							Material:    "Conos, aros, escalera de coordinación",
							Objective:   "Desarrollar coordinación general"},
						{ID: 3, Name: "Equilibrio y propiocepción", Duration: 15,
							Description: "Ejercicios de equilibrio estático y dinámico",
							Material:    "Balones, superficies inestables",
							Objective:   "Mejorar el equilibrio y propiocepción"},
						{ID: 4, Name: "Velocidad de reacción", Duration: 20,
							Description: "Juegos de reacción a estímulos visuales y auditivos",
							Material:    "Conos de colores, silbato",
							Objective:   "Desarrollar velocidad de reacción"},
						{ID: 5, Name: "Juego coordinativo", Duration: 15,
							Description: "Juegos que combinen coordinación y diversión",
							Material:    "Balones, conos",
							Objective:   "Aplicar coordinación en contexto lúdico"},
						{ID: 6, Name: "Relajación", Duration: 5,
							Description: "Respiración y relajación muscular",
							Material:    "Ninguno",
							Objective:   "Vuelta a la calma progresiva"},
					},
				},
				{
					ID:       3,
					Category: domain.CategoryTacticalGame,
					Name:     "Introducción al juego colectivo",
					Day:      "Viernes",
					Duration: 90,
					Image:    "https://images.unsplash.com/photo-1573639615462-3a16eabd9390",
					Exercises: []domain.Exercise{
						{ID: 1, Name: "Calentamiento con balón", Duration: 15,
							Description: "Trote suave conduciendo el balón",
							Material:    "1 balón por jugador",
							Objective:   "Activación con familiarización del balón"},
						{ID: 2, Name: "Pases por parejas", Duration: 20,
							Description: "Pases cortos estáticos, aumentando progresivamente la distancia",
							Material:    "Balones",
							Objective:   "Introducir el concepto de pase"},
						{ID: 3, Name: "Juego de persecución", Duration: 15,
							Description: "El que la pica debe tocar con el balón controlado",
							Material:    "Balones",
							Objective:   "Combinar diversión con control del balón"},
						{ID: 4, Name: "Partidillo 3vs3", Duration: 25,
							Description: "Partidos cortos con rotaciones, porterías pequeñas",
							Material:    "Balones, porterías pequeñas, petos",
							Objective:   "Aplicar conceptos básicos en situación real"},
						{ID: 5, Name: "Tiros a portería", Duration: 10,
							Description: "Tiros libres desde diferentes posiciones",
							Material:    "Balones, porterías",
							Objective:   "Desarrollar la precisión en el tiro"},
						{ID: 6, Name: "Charla final", Duration: 5,
							Description: "Comentarios positivos y despedida",
							Material:    "Ninguno",
							Objective:   "Refuerzo positivo y motivación"},
					},
				},
			},
		},
	}
}

// seedPlan builds the program aggregate around the given mesocycles.
func seedPlan(mesocycles []domain.Mesocycle) *domain.FullPlan {
	return &domain.FullPlan{
		Title:           seedPlanTitle,
		Description:     seedPlanDescription,
		Category:        seedPlanCategory,
		DurationMonths:  seedPlanDurationMonths,
		SessionsPerWeek: seedPlanSessionsPerWeek,
		SessionDuration: seedPlanSessionDuration,
		Mesocycles:      append([]domain.Mesocycle(nil), mesocycles...),
		BasicMaterial:   append([]string(nil), basicMaterial...),
	}
}

// Package scoring implementa la corrección del inventario: clasificación por
// puntos de corte fijos y ensamblado del informe.
package scoring

import "scl90-api/internal/domain"

// Puntos de corte del esquema de 4 niveles. La clasificación compara con <,
// así que un promedio exactamente en el corte cae en el nivel superior.
const (
	mildBreakpoint     = 2.0
	moderateBreakpoint = 3.0
	severeBreakpoint   = 4.0
)

// ClassifyFactor asigna nivel de severidad al promedio de un factor.
// Función pura y total: cualquier promedio recibe un nivel.
func ClassifyFactor(average float64) domain.Level {
	switch {
	case average < mildBreakpoint:
		return domain.LevelNormal
	case average < moderateBreakpoint:
		return domain.LevelMild
	case average < severeBreakpoint:
		return domain.LevelModerate
	default:
		return domain.LevelSevere
	}
}

var overallTexts = map[domain.Level]string{
	domain.LevelNormal:   "Tu estado psicológico general se encuentra dentro del rango normal. No se aprecia malestar significativo en el conjunto de la prueba.",
	domain.LevelMild:     "El resultado global muestra un malestar leve. Conviene prestar atención a los factores elevados y reforzar hábitos de autocuidado.",
	domain.LevelModerate: "El resultado global muestra un malestar moderado. Es recomendable una valoración con un profesional de salud mental.",
	domain.LevelSevere:   "El resultado global muestra un malestar severo. Busca valoración profesional cuanto antes.",
}

// ClassifyOverall valora el resultado global a partir del promedio por ítem
// de los 90 ítems, con los mismos puntos de corte que los factores.
func ClassifyOverall(itemAverage float64) domain.Assessment {
	level := ClassifyFactor(itemAverage)
	return domain.Assessment{
		Text:       overallTexts[level],
		ColorToken: level.ColorToken(),
	}
}

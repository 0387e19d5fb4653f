// Package knowledge contiene el texto explicativo asociado a cada factor y
// nivel de severidad. Es data estática: se construye una vez al arranque y
// nunca se modifica en tiempo de ejecución.
package knowledge

import (
	"errors"

	"scl90-api/internal/domain"
)

// Entry agrupa la descripción de síntomas y el consejo para un par
// (factor, nivel).
type Entry struct {
	Symptoms string `json:"symptoms"`
	Advice   string `json:"advice"`
}

// ErrMissingEntry indica que falta una entrada para un par alcanzable.
// Es un defecto de completitud de la data, no un error del usuario.
var ErrMissingEntry = errors.New("knowledge: missing entry")

// PlaceholderEntry se devuelve cuando falta una entrada, para no tumbar la
// petición completa por un hueco en la data.
var PlaceholderEntry = Entry{
	Symptoms: "No hay descripción disponible para este resultado.",
	Advice:   "Consulta con un profesional para una valoración detallada.",
}

// Base es la tabla inmutable (factor, nivel) -> Entry.
type Base struct {
	entries map[string]map[domain.Level]Entry
}

// NewBase construye la base de conocimiento con la data por defecto.
func NewBase() *Base {
	return NewBaseFromEntries(defaultEntries())
}

// NewBaseFromEntries construye una base con entradas arbitrarias. Pensado
// para tests y para validar data alternativa.
func NewBaseFromEntries(entries map[string]map[domain.Level]Entry) *Base {
	return &Base{entries: entries}
}

// Lookup devuelve la entrada para (factor, nivel). Si no existe devuelve el
// placeholder junto con ErrMissingEntry; el caller decide cómo reportarlo.
func (b *Base) Lookup(factor string, level domain.Level) (Entry, error) {
	levels, ok := b.entries[factor]
	if !ok {
		return PlaceholderEntry, ErrMissingEntry
	}
	entry, ok := levels[level]
	if !ok {
		return PlaceholderEntry, ErrMissingEntry
	}
	return entry, nil
}

func defaultEntries() map[string]map[domain.Level]Entry {
	return map[string]map[domain.Level]Entry{
		domain.FactorSomatization: {
			domain.LevelNormal: {
				Symptoms: "No se aprecian molestias corporales significativas asociadas a malestar psicológico.",
				Advice:   "Mantén hábitos regulares de sueño, alimentación y ejercicio físico.",
			},
			domain.LevelMild: {
				Symptoms: "Molestias corporales ocasionales como dolores de cabeza, tensión muscular o malestar digestivo, sin origen médico claro.",
				Advice:   "Observa en qué situaciones aparecen las molestias e incorpora pausas de descanso y técnicas de relajación.",
			},
			domain.LevelModerate: {
				Symptoms: "Malestar corporal frecuente: dolores difusos, palpitaciones, sensación de debilidad o alteraciones digestivas recurrentes.",
				Advice:   "Descarta causas médicas con tu centro de salud y valora apoyo psicológico para trabajar la relación entre estrés y cuerpo.",
			},
			domain.LevelSevere: {
				Symptoms: "Malestar corporal intenso y persistente que interfiere con la vida diaria, con múltiples quejas somáticas simultáneas.",
				Advice:   "Busca valoración profesional cuanto antes; la combinación de revisión médica y psicoterapia suele ser necesaria.",
			},
		},
		domain.FactorObsessive: {
			domain.LevelNormal: {
				Symptoms: "Los pensamientos repetitivos y las comprobaciones se mantienen dentro de lo esperable.",
				Advice:   "Conserva tus rutinas de organización sin exigirte una precisión innecesaria.",
			},
			domain.LevelMild: {
				Symptoms: "Pensamientos insistentes o necesidad ocasional de comprobar y repetir tareas, con dificultad leve para concentrarse.",
				Advice:   "Limita las comprobaciones a una sola vez y practica dejar tareas en un nivel razonable de acabado.",
			},
			domain.LevelModerate: {
				Symptoms: "Ideas no deseadas difíciles de apartar, repetición de actos y lentitud notable para completar tareas cotidianas.",
				Advice:   "Un profesional puede ayudarte con técnicas específicas de exposición y manejo de pensamientos intrusivos.",
			},
			domain.LevelSevere: {
				Symptoms: "Pensamientos intrusivos constantes y rituales de repetición que consumen gran parte del día y bloquean la actividad normal.",
				Advice:   "Solicita atención especializada; este patrón responde bien a tratamiento estructurado y no suele remitir solo.",
			},
		},
		domain.FactorInterpersonal: {
			domain.LevelNormal: {
				Symptoms: "La relación con los demás se vive sin inferioridad ni incomodidad destacables.",
				Advice:   "Sigue cultivando tus vínculos sociales habituales.",
			},
			domain.LevelMild: {
				Symptoms: "Cierta timidez o incomodidad en situaciones sociales, con tendencia ocasional a sentirse juzgado o herido con facilidad.",
				Advice:   "Exponte de forma gradual a situaciones sociales y evita interpretar neutralidad ajena como rechazo.",
			},
			domain.LevelModerate: {
				Symptoms: "Sentimientos frecuentes de inferioridad, hipersensibilidad a la crítica y malestar marcado al ser observado por otros.",
				Advice:   "Trabajar la autoestima y las habilidades sociales con apoyo profesional reduce este malestar de forma consistente.",
			},
			domain.LevelSevere: {
				Symptoms: "Malestar social intenso con evitación de contacto, convicción de no valer ante los demás y heridas emocionales constantes.",
				Advice:   "Busca psicoterapia; el aislamiento progresivo tiende a reforzar el problema y conviene frenarlo pronto.",
			},
		},
		domain.FactorDepression: {
			domain.LevelNormal: {
				Symptoms: "El estado de ánimo, el interés por las cosas y la energía se mantienen en niveles esperables.",
				Advice:   "Mantén actividades que te resulten gratificantes y contacto social regular.",
			},
			domain.LevelMild: {
				Symptoms: "Tristeza o desánimo ocasional, con algo menos de energía e interés del habitual.",
				Advice:   "Cuida el sueño, planifica actividades agradables y comparte cómo te sientes con personas de confianza.",
			},
			domain.LevelModerate: {
				Symptoms: "Desánimo frecuente, pérdida de interés, llanto fácil, sentimientos de culpa o desesperanza y sensación de que todo cuesta.",
				Advice:   "Es recomendable una valoración profesional; la intervención temprana mejora claramente la evolución.",
			},
			domain.LevelSevere: {
				Symptoms: "Tristeza profunda y persistente, desesperanza marcada, sentimientos de inutilidad y posibles pensamientos de muerte.",
				Advice:   "Busca ayuda profesional de forma prioritaria; si aparecen ideas de hacerte daño, acude a un servicio de urgencias o a una línea de atención inmediata.",
			},
		},
		domain.FactorAnxiety: {
			domain.LevelNormal: {
				Symptoms: "El nivel de tensión y preocupación se encuentra dentro del rango esperable.",
				Advice:   "Conserva espacios de descanso y desconexión en tu rutina.",
			},
			domain.LevelMild: {
				Symptoms: "Nerviosismo o tensión ocasional, con episodios puntuales de inquietud o dificultad para dormir.",
				Advice:   "Practica respiración lenta o relajación muscular y reduce estimulantes como la cafeína.",
			},
			domain.LevelModerate: {
				Symptoms: "Tensión frecuente, sobresaltos, palpitaciones, problemas de sueño y preocupación difícil de controlar.",
				Advice:   "Valora apoyo psicológico; las técnicas de manejo de ansiedad tienen eficacia bien establecida.",
			},
			domain.LevelSevere: {
				Symptoms: "Ansiedad intensa casi constante, con posibles crisis de pánico, insomnio marcado y sensación de peligro inminente.",
				Advice:   "Solicita atención profesional cuanto antes para frenar la escalada y recuperar el descanso.",
			},
		},
		domain.FactorHostility: {
			domain.LevelNormal: {
				Symptoms: "La irritabilidad y los enfados se mantienen en niveles esperables y controlables.",
				Advice:   "Sigue expresando el desacuerdo de forma directa y calmada.",
			},
			domain.LevelMild: {
				Symptoms: "Irritabilidad algo mayor de lo habitual, con discusiones o enfados puntuales.",
				Advice:   "Identifica los disparadores de tu enfado y date tiempo antes de responder en caliente.",
			},
			domain.LevelModerate: {
				Symptoms: "Enfados frecuentes y difíciles de contener, discusiones repetidas e impulsos de romper cosas.",
				Advice:   "El entrenamiento en regulación emocional con un profesional ayuda a recuperar el control.",
			},
			domain.LevelSevere: {
				Symptoms: "Arrebatos de cólera intensos con impulsos de agredir o destrozar, que deterioran relaciones y convivencia.",
				Advice:   "Busca ayuda especializada de forma prioritaria, tanto por ti como por tu entorno cercano.",
			},
		},
		domain.FactorPhobicAnxiety: {
			domain.LevelNormal: {
				Symptoms: "No se aprecian miedos significativos a lugares, transportes o situaciones concretas.",
				Advice:   "Mantén tu rango habitual de actividades y desplazamientos.",
			},
			domain.LevelMild: {
				Symptoms: "Incomodidad o aprensión leve en sitios concurridos, transportes o al salir solo, sin evitación sistemática.",
				Advice:   "No evites esas situaciones; la exposición gradual impide que el miedo crezca.",
			},
			domain.LevelModerate: {
				Symptoms: "Miedo marcado a determinados lugares o situaciones, con evitación frecuente que empieza a limitar la rutina.",
				Advice:   "La terapia de exposición guiada por un profesional es el abordaje de referencia para estos miedos.",
			},
			domain.LevelSevere: {
				Symptoms: "Evitación extensa de lugares, transportes o salidas en solitario, con fuerte restricción de la vida diaria.",
				Advice:   "Busca tratamiento especializado; recuperar terreno es posible y habitual con ayuda adecuada.",
			},
		},
		domain.FactorParanoidIdeation: {
			domain.LevelNormal: {
				Symptoms: "La confianza en los demás y la lectura de sus intenciones se mantienen en rangos esperables.",
				Advice:   "Sigue contrastando tus impresiones con personas de confianza cuando dudes.",
			},
			domain.LevelMild: {
				Symptoms: "Desconfianza ocasional, con momentos puntuales de sentirse criticado o poco reconocido.",
				Advice:   "Antes de dar por cierta una mala intención ajena, busca una explicación alternativa y compruébala.",
			},
			domain.LevelModerate: {
				Symptoms: "Suspicacia frecuente: sensación repetida de ser observado, juzgado o de que otros se aprovecharán.",
				Advice:   "Hablar estas interpretaciones con un profesional ayuda a distinguir percepción de hecho.",
			},
			domain.LevelSevere: {
				Symptoms: "Desconfianza generalizada e ideas persistentes de perjuicio que tensan gravemente las relaciones.",
				Advice:   "Es importante una valoración especializada pronto; este patrón aísla y se refuerza con el tiempo.",
			},
		},
		domain.FactorPsychoticism: {
			domain.LevelNormal: {
				Symptoms: "No se aprecian experiencias inusuales de pensamiento o percepción destacables.",
				Advice:   "Mantén tus rutinas de descanso y tus vínculos habituales.",
			},
			domain.LevelMild: {
				Symptoms: "Experiencias aisladas de extrañeza, sensación puntual de distancia respecto a los demás o ideas poco compartidas.",
				Advice:   "Cuida especialmente el sueño y el estrés, que amplifican este tipo de experiencias.",
			},
			domain.LevelModerate: {
				Symptoms: "Sensación frecuente de aislamiento incluso acompañado, ideas de culpa o castigo y pensamientos vividos como ajenos.",
				Advice:   "Consulta con un profesional de salud mental para una valoración detallada.",
			},
			domain.LevelSevere: {
				Symptoms: "Experiencias marcadas como oír voces, convicción de ser controlado o ideas intensas de castigo, con gran aislamiento.",
				Advice:   "Busca atención especializada de forma prioritaria; estas experiencias requieren valoración clínica directa.",
			},
		},
	}
}

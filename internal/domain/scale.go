package domain

// Level clasifica la severidad de un factor o del resultado global.
type Level int

const (
	LevelNormal Level = iota
	LevelMild
	LevelModerate
	LevelSevere
)

var levelKeys = map[Level]string{
	LevelNormal:   "normal",
	LevelMild:     "mild",
	LevelModerate: "moderate",
	LevelSevere:   "severe",
}

var levelLabels = map[Level]string{
	LevelNormal:   "Normal",
	LevelMild:     "Leve",
	LevelModerate: "Moderado",
	LevelSevere:   "Severo",
}

var levelColors = map[Level]string{
	LevelNormal:   "green",
	LevelMild:     "yellow",
	LevelModerate: "orange",
	LevelSevere:   "red",
}

func (l Level) String() string {
	if key, ok := levelKeys[l]; ok {
		return key
	}
	return "unknown"
}

// Label devuelve la etiqueta de presentación del nivel.
func (l Level) Label() string {
	return levelLabels[l]
}

// ColorToken devuelve el token de color asociado al nivel.
func (l Level) ColorToken() string {
	return levelColors[l]
}

// Levels enumera los niveles en orden ascendente de severidad.
func Levels() []Level {
	return []Level{LevelNormal, LevelMild, LevelModerate, LevelSevere}
}

// Nombres de los 9 factores de la escala.
const (
	FactorSomatization     = "Somatización"
	FactorObsessive        = "Obsesiones y compulsiones"
	FactorInterpersonal    = "Sensibilidad interpersonal"
	FactorDepression       = "Depresión"
	FactorAnxiety          = "Ansiedad"
	FactorHostility        = "Hostilidad"
	FactorPhobicAnxiety    = "Ansiedad fóbica"
	FactorParanoidIdeation = "Ideación paranoide"
	FactorPsychoticism     = "Psicoticismo"
)

// Factor agrupa los ítems que componen una dimensión psicológica.
type Factor struct {
	Name  string `json:"name"`
	Items []int  `json:"items"`
}

// Factors devuelve la tabla fija de factores. Los ítems 1..90 quedan
// repartidos exactamente una vez entre los 9 factores; alterar estas listas
// cambia la normalización de los promedios.
func Factors() []Factor {
	return []Factor{
		{Name: FactorSomatization, Items: []int{1, 4, 12, 19, 27, 40, 42, 48, 49, 52, 53, 56, 58}},
		{Name: FactorObsessive, Items: []int{3, 9, 10, 28, 38, 45, 46, 51, 55, 60, 65}},
		{Name: FactorInterpersonal, Items: []int{6, 21, 34, 36, 37, 41, 61, 69, 73}},
		{Name: FactorDepression, Items: []int{5, 14, 15, 20, 22, 26, 29, 30, 31, 32, 54, 71, 79}},
		{Name: FactorAnxiety, Items: []int{2, 17, 23, 33, 39, 44, 57, 64, 66, 72, 78, 80, 86}},
		{Name: FactorHostility, Items: []int{11, 24, 63, 67, 74, 81}},
		{Name: FactorPhobicAnxiety, Items: []int{13, 25, 47, 50, 70, 75, 82}},
		{Name: FactorParanoidIdeation, Items: []int{8, 18, 43, 68, 76, 83}},
		{Name: FactorPsychoticism, Items: []int{7, 16, 35, 59, 62, 77, 84, 85, 87, 88, 89, 90}},
	}
}

// ItemCount es la cantidad fija de ítems del inventario.
const ItemCount = 90

// ScaleItem es un ítem individual del cuestionario.
type ScaleItem struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Items devuelve el texto de los 90 ítems, en orden.
func Items() []ScaleItem {
	items := make([]ScaleItem, len(itemTexts))
	for i, text := range itemTexts {
		items[i] = ScaleItem{ID: i + 1, Text: text}
	}
	return items
}

var itemTexts = [ItemCount]string{
	"Dolores de cabeza",
	"Nerviosismo o agitación interior",
	"Pensamientos desagradables repetitivos que no se van de la mente",
	"Sensación de desmayo o mareo",
	"Pérdida de interés o placer sexual",
	"Sentirse crítico con los demás",
	"La idea de que otra persona pueda controlar sus pensamientos",
	"Sentir que otros tienen la culpa de la mayoría de sus problemas",
	"Dificultad para recordar las cosas",
	"Preocupación por el desorden o el descuido",
	"Sentirse fácilmente molesto o irritado",
	"Dolores en el corazón o en el pecho",
	"Miedo a los espacios abiertos o a la calle",
	"Sentirse bajo de energía o enlentecido",
	"Pensamientos de acabar con su vida",
	"Oír voces que otras personas no oyen",
	"Temblores",
	"Sentir que no se puede confiar en la mayoría de la gente",
	"Falta de apetito",
	"Llorar con facilidad",
	"Timidez o incomodidad ante el sexo opuesto",
	"Sensación de estar atrapado o acorralado",
	"Asustarse de repente sin motivo",
	"Arrebatos de cólera que no puede controlar",
	"Miedo a salir solo de casa",
	"Culparse a sí mismo de lo que pasa",
	"Dolores en la parte baja de la espalda",
	"Sentirse incapaz de terminar las cosas",
	"Sentirse solo",
	"Sentirse triste",
	"Preocuparse demasiado por las cosas",
	"No sentir interés por nada",
	"Sentirse temeroso",
	"Ser herido fácilmente en sus sentimientos",
	"Que los demás se enteren de sus pensamientos privados",
	"Sentir que los demás no le comprenden o no le hacen caso",
	"Sentir que la gente es poco amistosa o que usted no les gusta",
	"Tener que hacer las cosas muy despacio para asegurarse de que están bien hechas",
	"Palpitaciones o taquicardia",
	"Náuseas o malestar de estómago",
	"Sentirse inferior a los demás",
	"Dolores musculares",
	"Sentir que le observan o que hablan de usted",
	"Dificultad para conciliar el sueño",
	"Tener que comprobar una y otra vez lo que hace",
	"Dificultad para tomar decisiones",
	"Miedo a viajar en autobús, metro o tren",
	"Dificultad para respirar",
	"Escalofríos o sofocos",
	"Tener que evitar ciertas cosas, lugares o actividades porque le dan miedo",
	"Que se le quede la mente en blanco",
	"Entumecimiento u hormigueo en partes del cuerpo",
	"Sensación de nudo en la garganta",
	"Sentirse sin esperanza respecto al futuro",
	"Dificultad para concentrarse",
	"Sensación de debilidad en partes del cuerpo",
	"Sentirse tenso o con los nervios de punta",
	"Pesadez en brazos o piernas",
	"Pensamientos de muerte o de morirse",
	"Comer en exceso",
	"Sentirse incómodo cuando le miran o hablan de usted",
	"Tener pensamientos que no son suyos",
	"Impulsos de golpear, herir o hacer daño a alguien",
	"Despertarse de madrugada",
	"Tener que repetir los mismos actos, como tocar, contar o lavarse",
	"Sueño inquieto o desvelado",
	"Impulsos de romper o destrozar cosas",
	"Tener ideas o creencias que los demás no comparten",
	"Sentirse muy cohibido entre otras personas",
	"Sentirse incómodo entre mucha gente, como en tiendas o cines",
	"Sentir que todo requiere un gran esfuerzo",
	"Ataques de terror o pánico",
	"Sentirse incómodo comiendo o bebiendo en público",
	"Tener discusiones frecuentes",
	"Ponerse nervioso cuando le dejan solo",
	"Que los demás no reconozcan adecuadamente sus logros",
	"Sentirse solo aunque esté acompañado",
	"Sentirse tan inquieto que no puede permanecer sentado",
	"Sentimientos de inutilidad",
	"Presentimiento de que algo malo le va a pasar",
	"Gritar o tirar cosas",
	"Miedo a desmayarse en público",
	"Sentir que se aprovecharán de usted si les deja",
	"Tener pensamientos sobre el sexo que le molestan mucho",
	"La idea de que debería ser castigado por sus pecados",
	"Pensamientos e imágenes que le dan miedo",
	"La idea de que algo grave anda mal en su cuerpo",
	"No sentirse nunca cercano a otra persona",
	"Sentimientos de culpabilidad",
	"La idea de que algo anda mal en su mente",
}

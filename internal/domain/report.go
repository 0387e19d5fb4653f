package domain

// ItemResponse es la respuesta cruda a un ítem del cuestionario. Score se
// declara como any: el cliente histórico envía números, cadenas o nada, y
// todo lo no numérico se interpreta como 0.
type ItemResponse struct {
	ID    int `json:"id"`
	Score any `json:"score"`
}

// Stats resume el resultado global de una entrega.
type Stats struct {
	TotalScore             int     `json:"total_score"`
	ItemAverageScore       float64 `json:"item_average_score"`
	PositiveItemCount      int     `json:"positive_item_count"`
	PositiveItemPercentage float64 `json:"positive_item_percentage"`
}

// Assessment es la valoración global con su token de color para presentación.
type Assessment struct {
	Text       string `json:"text"`
	ColorToken string `json:"color_token"`
}

// FactorDetail es el resultado calculado de un factor.
type FactorDetail struct {
	Name         string  `json:"name"`
	TotalScore   int     `json:"total_score"`
	AverageScore float64 `json:"average_score"`
	Level        string  `json:"level"`
	Label        string  `json:"label"`
	ColorToken   string  `json:"color_token"`
}

// Explanation es el texto explicativo asociado al nivel de un factor.
type Explanation struct {
	Factor   string `json:"factor"`
	Label    string `json:"label"`
	Symptoms string `json:"symptoms"`
	Advice   string `json:"advice"`
}

// Report es el informe completo devuelto por el motor de corrección.
type Report struct {
	Stats                Stats          `json:"stats"`
	OverallAssessment    Assessment     `json:"overall_assessment"`
	FactorDetails        []FactorDetail `json:"factor_details"`
	DetailedExplanations []Explanation  `json:"detailed_explanations"`
}

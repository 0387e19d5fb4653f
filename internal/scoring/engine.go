package scoring

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"scl90-api/internal/domain"
	"scl90-api/internal/knowledge"
)

var (
	// ErrInvalidSubmission indica una entrega con forma incorrecta; se
	// reporta al cliente, nunca se reintenta.
	ErrInvalidSubmission = fmt.Errorf("submission must contain exactly %d answers", domain.ItemCount)
)

// Engine corrige entregas del inventario. No tiene estado mutable: las
// tablas se inyectan al construirlo y cada llamada a Score es independiente,
// así que es seguro bajo cualquier nivel de concurrencia.
type Engine struct {
	factors   []domain.Factor
	knowledge *knowledge.Base
	logger    *zap.Logger
}

// NewEngine crea un motor con el mapa de factores y la base de conocimiento.
func NewEngine(factors []domain.Factor, kb *knowledge.Base, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		factors:   factors,
		knowledge: kb,
		logger:    logger,
	}
}

// Score valida la entrega, agrega puntuaciones, clasifica cada factor y el
// resultado global, y ensambla el informe completo.
func (e *Engine) Score(responses []domain.ItemResponse) (domain.Report, error) {
	if len(responses) != domain.ItemCount {
		e.logger.Warn("invalid submission size", zap.Int("answers", len(responses)))
		return domain.Report{}, ErrInvalidSubmission
	}

	// Última respuesta gana ante ids repetidos; ids ausentes puntúan 0.
	scores := make(map[int]int, domain.ItemCount)
	for _, resp := range responses {
		scores[resp.ID] = coerceScore(resp.Score)
	}

	totalScore := 0
	positiveItems := 0
	for id := 1; id <= domain.ItemCount; id++ {
		score := scores[id]
		totalScore += score
		if score >= 2 {
			positiveItems++
		}
	}
	itemAverage := float64(totalScore) / float64(domain.ItemCount)

	details := make([]domain.FactorDetail, 0, len(e.factors))
	explanations := make([]domain.Explanation, 0, len(e.factors))
	for _, factor := range e.factors {
		factorTotal := 0
		for _, id := range factor.Items {
			factorTotal += scores[id]
		}
		// La clasificación usa el promedio sin redondear; redondear antes
		// desplazaría los casos justo bajo un punto de corte.
		factorAverage := float64(factorTotal) / float64(len(factor.Items))
		level := ClassifyFactor(factorAverage)

		details = append(details, domain.FactorDetail{
			Name:         factor.Name,
			TotalScore:   factorTotal,
			AverageScore: round2(factorAverage),
			Level:        level.String(),
			Label:        level.Label(),
			ColorToken:   level.ColorToken(),
		})

		entry, err := e.knowledge.Lookup(factor.Name, level)
		if errors.Is(err, knowledge.ErrMissingEntry) {
			e.logger.Error("knowledge base entry missing",
				zap.String("factor", factor.Name),
				zap.String("level", level.String()),
			)
		}
		explanations = append(explanations, domain.Explanation{
			Factor:   factor.Name,
			Label:    level.Label(),
			Symptoms: entry.Symptoms,
			Advice:   entry.Advice,
		})
	}

	return domain.Report{
		Stats: domain.Stats{
			TotalScore:             totalScore,
			ItemAverageScore:       round2(itemAverage),
			PositiveItemCount:      positiveItems,
			PositiveItemPercentage: round2(float64(positiveItems) / float64(domain.ItemCount) * 100),
		},
		OverallAssessment:    ClassifyOverall(itemAverage),
		FactorDetails:        details,
		DetailedExplanations: explanations,
	}, nil
}

// coerceScore normaliza la puntuación cruda de un ítem. Lo no numérico vale
// 0; nunca falla. Valores fuera de 0..4 se suman tal cual, sin recorte.
func coerceScore(raw any) int {
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if n, err := strconv.Atoi(trimmed); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

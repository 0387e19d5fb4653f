package scoring

import (
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"scl90-api/internal/domain"
	"scl90-api/internal/knowledge"
)

func newTestEngine() *Engine {
	return NewEngine(domain.Factors(), knowledge.NewBase(), zap.NewNop())
}

func uniformResponses(score any) []domain.ItemResponse {
	responses := make([]domain.ItemResponse, domain.ItemCount)
	for i := range responses {
		responses[i] = domain.ItemResponse{ID: i + 1, Score: score}
	}
	return responses
}

func TestScoreAllZeros(t *testing.T) {
	report, err := newTestEngine().Score(uniformResponses(0))
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if report.Stats.TotalScore != 0 {
		t.Fatalf("expected total 0, got %d", report.Stats.TotalScore)
	}
	if report.Stats.PositiveItemCount != 0 || report.Stats.PositiveItemPercentage != 0 {
		t.Fatalf("expected no positive items, got %+v", report.Stats)
	}
	if len(report.FactorDetails) != 9 || len(report.DetailedExplanations) != 9 {
		t.Fatalf("expected 9 factor details and explanations, got %d/%d",
			len(report.FactorDetails), len(report.DetailedExplanations))
	}
	for _, detail := range report.FactorDetails {
		if detail.Level != domain.LevelNormal.String() {
			t.Fatalf("factor %q expected normal, got %s", detail.Name, detail.Level)
		}
	}
	if report.OverallAssessment.ColorToken != domain.LevelNormal.ColorToken() {
		t.Fatalf("expected normal overall, got %+v", report.OverallAssessment)
	}
}

func TestScoreAllFours(t *testing.T) {
	report, err := newTestEngine().Score(uniformResponses(4))
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if report.Stats.TotalScore != 360 {
		t.Fatalf("expected total 360, got %d", report.Stats.TotalScore)
	}
	if report.Stats.PositiveItemCount != domain.ItemCount {
		t.Fatalf("expected 90 positive items, got %d", report.Stats.PositiveItemCount)
	}
	factorSum := 0
	for _, detail := range report.FactorDetails {
		if detail.Level != domain.LevelSevere.String() {
			t.Fatalf("factor %q expected severe, got %s", detail.Name, detail.Level)
		}
		factorSum += detail.TotalScore
	}
	if factorSum != report.Stats.TotalScore {
		t.Fatalf("factor totals sum %d != total %d", factorSum, report.Stats.TotalScore)
	}
	if report.OverallAssessment.ColorToken != domain.LevelSevere.ColorToken() {
		t.Fatalf("expected severe overall, got %+v", report.OverallAssessment)
	}
}

func TestScoreStatsAndRounding(t *testing.T) {
	responses := uniformResponses(0)
	// 45 ítems a 2 puntos: total 90, promedio 1.0, 50% positivos.
	for i := 0; i < 45; i++ {
		responses[i].Score = 2
	}
	report, err := newTestEngine().Score(responses)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if report.Stats.TotalScore != 90 {
		t.Fatalf("expected total 90, got %d", report.Stats.TotalScore)
	}
	if report.Stats.ItemAverageScore != 1.0 {
		t.Fatalf("expected item average 1.0, got %v", report.Stats.ItemAverageScore)
	}
	if report.Stats.PositiveItemCount != 45 || report.Stats.PositiveItemPercentage != 50.0 {
		t.Fatalf("unexpected positive stats: %+v", report.Stats)
	}

	factorSum := 0
	for _, detail := range report.FactorDetails {
		factorSum += detail.TotalScore
	}
	if factorSum != report.Stats.TotalScore {
		t.Fatalf("factor totals sum %d != total %d", factorSum, report.Stats.TotalScore)
	}
}

func TestScoreItemAverageRoundsToTwoDecimals(t *testing.T) {
	responses := uniformResponses(0)
	// Total 100 sobre 90 ítems: 1.1111... debe mostrarse como 1.11.
	for i := 0; i < 50; i++ {
		responses[i].Score = 2
	}
	report, err := newTestEngine().Score(responses)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if report.Stats.ItemAverageScore != 1.11 {
		t.Fatalf("expected item average 1.11, got %v", report.Stats.ItemAverageScore)
	}
}

func TestScoreDuplicateIDLastWins(t *testing.T) {
	responses := uniformResponses(0)
	// La entrada 6 repite el id 1: la última gana y el id 6 queda en 0.
	responses[5] = domain.ItemResponse{ID: 1, Score: 4}
	report, err := newTestEngine().Score(responses)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if report.Stats.TotalScore != 4 {
		t.Fatalf("expected total 4, got %d", report.Stats.TotalScore)
	}
}

func TestScoreCoercesNonNumericScores(t *testing.T) {
	responses := uniformResponses(0)
	responses[0].Score = "3"
	responses[1].Score = "2.0"
	responses[2].Score = nil
	responses[3].Score = true
	responses[4].Score = "no aplica"
	report, err := newTestEngine().Score(responses)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if report.Stats.TotalScore != 5 {
		t.Fatalf("expected total 5 after coercion, got %d", report.Stats.TotalScore)
	}
}

func TestScoreWrongSizeFails(t *testing.T) {
	responses := uniformResponses(0)[:89]
	_, err := newTestEngine().Score(responses)
	if !errors.Is(err, ErrInvalidSubmission) {
		t.Fatalf("expected ErrInvalidSubmission, got %v", err)
	}
	if _, err := newTestEngine().Score(nil); !errors.Is(err, ErrInvalidSubmission) {
		t.Fatalf("expected ErrInvalidSubmission for nil input, got %v", err)
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	engine := newTestEngine()
	responses := uniformResponses(0)
	for i := range responses {
		responses[i].Score = (i * 7) % 5
	}
	first, err := engine.Score(responses)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	second, err := engine.Score(responses)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input produced different reports")
	}
}

func TestScoreRaisingOneItemNeverLowersSeverity(t *testing.T) {
	engine := newTestEngine()
	base := uniformResponses(2)
	baseline, err := engine.Score(base)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}

	raised := uniformResponses(2)
	raised[0].Score = 4
	report, err := engine.Score(raised)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}

	for i := range report.FactorDetails {
		before := levelIndex(t, baseline.FactorDetails[i].Level)
		after := levelIndex(t, report.FactorDetails[i].Level)
		if after < before {
			t.Fatalf("factor %q severity decreased from %s to %s",
				report.FactorDetails[i].Name,
				baseline.FactorDetails[i].Level, report.FactorDetails[i].Level)
		}
	}
}

func levelIndex(t *testing.T, key string) int {
	t.Helper()
	for i, level := range domain.Levels() {
		if level.String() == key {
			return i
		}
	}
	t.Fatalf("unknown level key %q", key)
	return -1
}

func TestScoreMissingKnowledgeEntryUsesPlaceholder(t *testing.T) {
	// Base sin la entrada severa de Somatización: el informe debe salir
	// igualmente con el texto placeholder en ese factor.
	entries := map[string]map[domain.Level]knowledge.Entry{}
	for _, factor := range domain.Factors() {
		entries[factor.Name] = map[domain.Level]knowledge.Entry{}
		for _, level := range domain.Levels() {
			entries[factor.Name][level] = knowledge.Entry{Symptoms: "s", Advice: "a"}
		}
	}
	delete(entries[domain.FactorSomatization], domain.LevelSevere)

	engine := NewEngine(domain.Factors(), knowledge.NewBaseFromEntries(entries), zap.NewNop())
	report, err := engine.Score(uniformResponses(4))
	if err != nil {
		t.Fatalf("score should succeed despite missing entry, got %v", err)
	}
	for _, expl := range report.DetailedExplanations {
		if expl.Factor == domain.FactorSomatization {
			if expl.Symptoms != knowledge.PlaceholderEntry.Symptoms {
				t.Fatalf("expected placeholder symptoms, got %q", expl.Symptoms)
			}
			return
		}
	}
	t.Fatalf("somatization explanation not found")
}

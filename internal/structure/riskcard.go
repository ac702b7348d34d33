package structure

import (
	"github.com/draftwatch/authorisk/internal/models"
)

// untriggeredCard is the card for insufficient-data documents: all seven
// indicators present, none evaluated, overall low.
func untriggeredCard() models.RiskCard {
	card := buildCard(findings{})
	for i := range card.Indicators {
		card.Indicators[i].Triggered = false
	}
	card.Overall = models.RiskLow
	return card
}

// buildCard derives the seven canonical indicators from sub-analyses the
// heuristics already computed; nothing here re-scans the document. The
// card always carries exactly seven indicators in a fixed order.
func buildCard(f findings) models.RiskCard {
	indicators := []models.StructuralIndicator{
		{ID: models.IndicatorSymmetry, Triggered: f.uniformLen, RiskLevel: 2},
		{ID: models.IndicatorUniformFunction, Triggered: f.distribution.Kind == "uniform", RiskLevel: 2},
		{ID: models.IndicatorConnectorDependence, Triggered: f.echo.Ratio > 0.5, RiskLevel: 2},
		{ID: models.IndicatorLinearEnumeration, Triggered: f.linearFlow, RiskLevel: 3},
		{ID: models.IndicatorRhythmicRegularity, Triggered: f.repetitive, RiskLevel: 2},
		{ID: models.IndicatorOverConclusive, Triggered: f.closure.Points >= strongClosurePoints, RiskLevel: 3},
		{ID: models.IndicatorMissingCrossRef, Triggered: f.crossRef.Found == 0, RiskLevel: 1},
	}

	triggered := 0
	severe := 0
	for _, ind := range indicators {
		if !ind.Triggered {
			continue
		}
		triggered++
		if ind.RiskLevel >= 3 {
			severe++
		}
	}

	overall := models.RiskLow
	switch {
	case triggered >= 4 || severe >= 2:
		overall = models.RiskHigh
	case triggered >= 2:
		overall = models.RiskMedium
	}

	return models.RiskCard{Indicators: indicators, Overall: overall}
}

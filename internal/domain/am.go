package domain

import "github.com/shopspring/decimal"

// Limites da prime de AM
const (
	AmGrowthThreshold       = 0.30
	AmAutoRatioThreshold    = 0.80
	AmQualityDealsThreshold = 3
)

var amGrowthThreshold = decimal.NewFromFloat(AmGrowthThreshold)

// AmRecord é uma linha mensal da equipe de Account Management
type AmRecord struct {
	ID               string  `json:"id"`
	Month            Month   `json:"month"`
	Year             int     `json:"year"`
	CollaboratorName string  `json:"collab_name" validate:"max=120"`
	GmvPrev          float64 `json:"gmv_prev"`
	GmvCurr          float64 `json:"gmv_curr"`
	TotalStores      int     `json:"total_stores"`
	AutomatedStores  int     `json:"automated_stores"`
	QualityDeals     int     `json:"quality_deals"`
}

// GrowthDecimal calcula (GMV atual - GMV anterior) / GMV anterior sem erro de
// ponto flutuante; GMV anterior zero resulta em 0
func (r AmRecord) GrowthDecimal() decimal.Decimal {
	prev := decimal.NewFromFloat(r.GmvPrev)
	if prev.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromFloat(r.GmvCurr).Sub(prev).Div(prev)
}

func (r AmRecord) Growth() float64 {
	return r.GrowthDecimal().InexactFloat64()
}

func (r AmRecord) AutoRatio() float64 {
	return safeRatio(r.AutomatedStores, r.TotalStores)
}

func (r AmRecord) IsEligible() bool {
	return r.GrowthDecimal().GreaterThanOrEqual(amGrowthThreshold) &&
		r.AutoRatio() >= AmAutoRatioThreshold &&
		r.QualityDeals >= AmQualityDealsThreshold
}

func (r *AmRecord) Normalize() {
	if r.GmvPrev < 0 {
		r.GmvPrev = 0
	}
	if r.GmvCurr < 0 {
		r.GmvCurr = 0
	}
	r.TotalStores = clampNonNegative(r.TotalStores)
	r.AutomatedStores = clampNonNegative(r.AutomatedStores)
	r.QualityDeals = clampNonNegative(r.QualityDeals)
}

func DefaultAmRecords(period Period) []AmRecord {
	records := make([]AmRecord, 0, DefaultRowCount)
	for i := 1; i <= DefaultRowCount; i++ {
		records = append(records, AmRecord{
			Month:            period.Month,
			Year:             period.Year,
			CollaboratorName: defaultCollaboratorName(i),
			GmvPrev:          10000.0,
			GmvCurr:          10000.0,
			TotalStores:      20,
			AutomatedStores:  0,
			QualityDeals:     0,
		})
	}
	return records
}

type AmEvaluation struct {
	AmRecord
	Growth    float64 `json:"growth"`
	AutoRatio float64 `json:"auto_ratio"`
	Eligible  bool    `json:"eligible"`
}

type AmSummary struct {
	EligibleCount int     `json:"eligible_count"`
	RowCount      int     `json:"row_count"`
	MeanGrowth    float64 `json:"mean_growth"`
	MeanAutoRatio float64 `json:"mean_auto_ratio"`
}

type AmThresholds struct {
	Growth       float64 `json:"growth"`
	AutoRatio    float64 `json:"auto_ratio"`
	QualityDeals int     `json:"quality_deals"`
}

var DefaultAmThresholds = AmThresholds{
	Growth:       AmGrowthThreshold,
	AutoRatio:    AmAutoRatioThreshold,
	QualityDeals: AmQualityDealsThreshold,
}

type AmSheet struct {
	Period     Period         `json:"period"`
	Thresholds AmThresholds   `json:"thresholds"`
	Persisted  bool           `json:"persisted"`
	Rows       []AmEvaluation `json:"rows"`
	Summary    AmSummary      `json:"summary"`
}

func EvaluateAm(records []AmRecord) []AmEvaluation {
	evaluations := make([]AmEvaluation, 0, len(records))
	for _, r := range records {
		evaluations = append(evaluations, AmEvaluation{
			AmRecord:  r,
			Growth:    r.Growth(),
			AutoRatio: r.AutoRatio(),
			Eligible:  r.IsEligible(),
		})
	}
	return evaluations
}

func SummarizeAm(rows []AmEvaluation) AmSummary {
	summary := AmSummary{RowCount: len(rows)}
	if len(rows) == 0 {
		return summary
	}

	var growthSum, autoSum float64
	for _, row := range rows {
		growthSum += row.Growth
		autoSum += row.AutoRatio
		if row.Eligible {
			summary.EligibleCount++
		}
	}
	summary.MeanGrowth = growthSum / float64(len(rows))
	summary.MeanAutoRatio = autoSum / float64(len(rows))

	return summary
}

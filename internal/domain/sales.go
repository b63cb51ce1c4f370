package domain

// SalesPerfThreshold é a fração mínima de lojas ativas para a prime de Sales
const SalesPerfThreshold = 0.70

// SalesRecord é uma linha mensal da equipe de Sales
type SalesRecord struct {
	ID               string `json:"id"`
	Month            Month  `json:"month"`
	Year             int    `json:"year"`
	CollaboratorName string `json:"collab_name" validate:"max=120"`
	AcquisitionReal  int    `json:"acquisition_real"`
	TotalStores      int    `json:"total_stores"`
	ActiveStores     int    `json:"active_stores"`
}

// PerfRatio = lojas ativas / total do portfólio (0 quando o portfólio é vazio)
func (r SalesRecord) PerfRatio() float64 {
	return safeRatio(r.ActiveStores, r.TotalStores)
}

func (r SalesRecord) IsEligible(targetAcquisition float64) bool {
	return float64(r.AcquisitionReal) >= targetAcquisition && r.PerfRatio() >= SalesPerfThreshold
}

// Normalize limita os campos numéricos a valores não negativos
func (r *SalesRecord) Normalize() {
	r.AcquisitionReal = clampNonNegative(r.AcquisitionReal)
	r.TotalStores = clampNonNegative(r.TotalStores)
	r.ActiveStores = clampNonNegative(r.ActiveStores)
}

// DefaultSalesRecords gera as linhas em branco de um período sem dados
func DefaultSalesRecords(period Period) []SalesRecord {
	records := make([]SalesRecord, 0, DefaultRowCount)
	for i := 1; i <= DefaultRowCount; i++ {
		records = append(records, SalesRecord{
			Month:            period.Month,
			Year:             period.Year,
			CollaboratorName: defaultCollaboratorName(i),
			AcquisitionReal:  0,
			TotalStores:      10,
			ActiveStores:     0,
		})
	}
	return records
}

type SalesEvaluation struct {
	SalesRecord
	PerfRatio float64 `json:"perf_ratio"`
	Eligible  bool    `json:"eligible"`
}

type SalesSummary struct {
	TotalAcquisition   int     `json:"total_acquisition"`
	EligibleCount      int     `json:"eligible_count"`
	RowCount           int     `json:"row_count"`
	GlobalActivityRate float64 `json:"global_activity_rate"`
}

// SalesSheet é a visão completa de um período de Sales
type SalesSheet struct {
	Period            Period            `json:"period"`
	BusinessDays      int               `json:"business_days"`
	Holidays          int               `json:"holidays"`
	TargetAcquisition float64           `json:"target_acquisition"`
	PerfThreshold     float64           `json:"perf_threshold"`
	Persisted         bool              `json:"persisted"`
	Rows              []SalesEvaluation `json:"rows"`
	Summary           SalesSummary      `json:"summary"`
}

func EvaluateSales(records []SalesRecord, targetAcquisition float64) []SalesEvaluation {
	evaluations := make([]SalesEvaluation, 0, len(records))
	for _, r := range records {
		evaluations = append(evaluations, SalesEvaluation{
			SalesRecord: r,
			PerfRatio:   r.PerfRatio(),
			Eligible:    r.IsEligible(targetAcquisition),
		})
	}
	return evaluations
}

func SummarizeSales(rows []SalesEvaluation) SalesSummary {
	summary := SalesSummary{RowCount: len(rows)}
	if len(rows) == 0 {
		return summary
	}

	var perfSum float64
	for _, row := range rows {
		summary.TotalAcquisition += row.AcquisitionReal
		perfSum += row.PerfRatio
		if row.Eligible {
			summary.EligibleCount++
		}
	}
	summary.GlobalActivityRate = perfSum / float64(len(rows))

	return summary
}

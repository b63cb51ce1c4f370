package domain

// Tamanhos das listas de ranking
const (
	PodiumSize = 3
	FlopSize   = 5
)

type SalesPodiumEntry struct {
	CollaboratorName string `json:"collab_name"`
	AcquisitionReal  int    `json:"acquisition_real"`
}

type AmPodiumEntry struct {
	CollaboratorName string  `json:"collab_name"`
	Growth           float64 `json:"growth"`
}

// MonthlyPodium é o top 3 do mês para cada equipe
type MonthlyPodium struct {
	Period  Period             `json:"period"`
	HasData bool               `json:"has_data"`
	Sales   []SalesPodiumEntry `json:"sales"`
	Am      []AmPodiumEntry    `json:"am"`
}

// SalesQuarterAggregate soma os meses do trimestre de um colaborador
type SalesQuarterAggregate struct {
	CollaboratorName string  `json:"collab_name"`
	AcquisitionReal  int     `json:"acquisition_real"`
	TotalStores      int     `json:"total_stores"`
	ActiveStores     int     `json:"active_stores"`
	AvgPerf          float64 `json:"avg_perf"`
}

// QuarterlyReview alimenta a matriz volume x qualidade e os alertas de performance
type QuarterlyReview struct {
	Year             int                     `json:"year"`
	Quarter          Quarter                 `json:"quarter"`
	Months           []Month                 `json:"months"`
	HasData          bool                    `json:"has_data"`
	QualityObjective float64                 `json:"quality_objective"`
	Matrix           []SalesQuarterAggregate `json:"matrix"`
	Flop             []SalesQuarterAggregate `json:"flop"`
}

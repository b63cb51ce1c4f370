package bonusing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/prime-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var july2025 = domain.Period{Month: domain.July, Year: 2025}

func newTestService(t *testing.T) (*Service, *mocks.MockSalesRecordRepository, *mocks.MockAmRecordRepository) {
	ctrl := gomock.NewController(t)
	salesRepo := mocks.NewMockSalesRecordRepository(ctrl)
	amRepo := mocks.NewMockAmRecordRepository(ctrl)

	return &Service{salesRepository: salesRepo, amRepository: amRepo}, salesRepo, amRepo
}

func TestService_Calendar(t *testing.T) {
	service, _, _ := newTestService(t)

	tests := []struct {
		name       string
		holidays   int
		wantDays   int
		wantTarget float64
		wantErr    bool
	}{
		{name: "Julho 2025 sem feriados", holidays: 0, wantDays: 23, wantTarget: 20.7},
		{name: "Julho 2025 com 2 feriados", holidays: 2, wantDays: 21, wantTarget: 18.9},
		{name: "Feriados no limite", holidays: MaxHolidays, wantDays: 13, wantTarget: 11.7},
		{name: "Feriados negativos", holidays: -1, wantErr: true},
		{name: "Feriados acima do limite", holidays: 11, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calendar, err := service.Calendar(july2025, tt.holidays)
			if tt.wantErr {
				assert.True(t, domain.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, calendar.BusinessDays)
			assert.InDelta(t, tt.wantTarget, calendar.TargetAcquisition, 1e-9)
		})
	}
}

func TestService_LoadSalesSheet(t *testing.T) {
	ctx := context.Background()

	t.Run("Período sem dados devolve linhas padrão", func(t *testing.T) {
		service, salesRepo, _ := newTestService(t)
		salesRepo.EXPECT().Load(ctx, july2025).Return([]domain.SalesRecord{}, nil)

		sheet, err := service.LoadSalesSheet(ctx, july2025, 0)
		require.NoError(t, err)
		assert.False(t, sheet.Persisted)
		require.Len(t, sheet.Rows, domain.DefaultRowCount)
		assert.Equal(t, "Collab 1", sheet.Rows[0].CollaboratorName)
		assert.Equal(t, 10, sheet.Rows[0].TotalStores)
		assert.Equal(t, 0, sheet.Summary.EligibleCount)
		assert.Equal(t, 23, sheet.BusinessDays)
	})

	t.Run("Período com dados calcula elegibilidade", func(t *testing.T) {
		service, salesRepo, _ := newTestService(t)
		salesRepo.EXPECT().Load(ctx, july2025).Return([]domain.SalesRecord{
			{ID: "2025_Juillet_0", CollaboratorName: "Ana", AcquisitionReal: 21, TotalStores: 10, ActiveStores: 8},
			{ID: "2025_Juillet_1", CollaboratorName: "Bruno", AcquisitionReal: 25, TotalStores: 10, ActiveStores: 6},
		}, nil)

		sheet, err := service.LoadSalesSheet(ctx, july2025, 0)
		require.NoError(t, err)
		assert.True(t, sheet.Persisted)
		assert.InDelta(t, 20.7, sheet.TargetAcquisition, 1e-9)
		assert.True(t, sheet.Rows[0].Eligible)
		assert.False(t, sheet.Rows[1].Eligible)
		assert.Equal(t, 46, sheet.Summary.TotalAcquisition)
		assert.Equal(t, 1, sheet.Summary.EligibleCount)
		assert.InDelta(t, 0.7, sheet.Summary.GlobalActivityRate, 1e-9)
	})

	t.Run("Falha do repositório é propagada", func(t *testing.T) {
		service, salesRepo, _ := newTestService(t)
		repoErr := domain.NewPersistenceError("sales.load", errors.New("db fora"))
		salesRepo.EXPECT().Load(ctx, july2025).Return(nil, repoErr)

		_, err := service.LoadSalesSheet(ctx, july2025, 0)
		assert.True(t, domain.IsPersistenceError(err))
	})

	t.Run("Feriados inválidos não consultam o repositório", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.LoadSalesSheet(ctx, july2025, 42)
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestService_SaveSalesSheet(t *testing.T) {
	ctx := context.Background()

	t.Run("Valores negativos são limitados a zero antes de gravar", func(t *testing.T) {
		service, salesRepo, _ := newTestService(t)
		input := []domain.SalesRecord{
			{CollaboratorName: "Ana", AcquisitionReal: -3, TotalStores: -1, ActiveStores: 4},
		}

		salesRepo.EXPECT().
			ReplacePeriod(ctx, july2025, gomock.Any()).
			DoAndReturn(func(_ context.Context, period domain.Period, records []domain.SalesRecord) ([]domain.SalesRecord, error) {
				require.Len(t, records, 1)
				assert.Equal(t, 0, records[0].AcquisitionReal)
				assert.Equal(t, 0, records[0].TotalStores)
				records[0].ID = period.RecordID(0)
				records[0].Month = period.Month
				records[0].Year = period.Year
				return records, nil
			})

		sheet, err := service.SaveSalesSheet(ctx, july2025, 0, input)
		require.NoError(t, err)
		assert.True(t, sheet.Persisted)
		assert.Equal(t, "2025_Juillet_0", sheet.Rows[0].ID)
		assert.Equal(t, 0.0, sheet.Rows[0].PerfRatio)
		assert.Equal(t, -3, input[0].AcquisitionReal, "entrada do chamador não é alterada")
	})

	t.Run("Nome de colaborador longo é rejeitado", func(t *testing.T) {
		service, _, _ := newTestService(t)
		input := []domain.SalesRecord{{CollaboratorName: strings.Repeat("a", 121)}}

		_, err := service.SaveSalesSheet(ctx, july2025, 0, input)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
		assert.Contains(t, err.Error(), "CollaboratorName")
	})

	t.Run("Falha de persistência é propagada", func(t *testing.T) {
		service, salesRepo, _ := newTestService(t)
		salesRepo.EXPECT().
			ReplacePeriod(ctx, july2025, gomock.Any()).
			Return(nil, domain.NewPersistenceError("sales.replace_period", errors.New("rollback")))

		_, err := service.SaveSalesSheet(ctx, july2025, 0, []domain.SalesRecord{{CollaboratorName: "Ana"}})
		assert.True(t, domain.IsPersistenceError(err))
	})
}

func TestService_AmSheets(t *testing.T) {
	ctx := context.Background()

	t.Run("Período sem dados devolve linhas padrão", func(t *testing.T) {
		service, _, amRepo := newTestService(t)
		amRepo.EXPECT().Load(ctx, july2025).Return([]domain.AmRecord{}, nil)

		sheet, err := service.LoadAmSheet(ctx, july2025)
		require.NoError(t, err)
		assert.False(t, sheet.Persisted)
		require.Len(t, sheet.Rows, domain.DefaultRowCount)
		assert.Equal(t, 10000.0, sheet.Rows[0].GmvPrev)
		assert.Equal(t, 20, sheet.Rows[0].TotalStores)
		assert.Equal(t, domain.DefaultAmThresholds, sheet.Thresholds)
	})

	t.Run("Salvar reavalia as linhas gravadas", func(t *testing.T) {
		service, _, amRepo := newTestService(t)
		input := []domain.AmRecord{
			{CollaboratorName: "Ana", GmvPrev: 10000, GmvCurr: 13000, TotalStores: 20, AutomatedStores: 16, QualityDeals: 3},
			{CollaboratorName: "Bruno", GmvPrev: -5, GmvCurr: 100, TotalStores: 20, AutomatedStores: 20, QualityDeals: 5},
		}

		amRepo.EXPECT().
			ReplacePeriod(ctx, july2025, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Period, records []domain.AmRecord) ([]domain.AmRecord, error) {
				assert.Equal(t, 0.0, records[1].GmvPrev)
				return records, nil
			})

		sheet, err := service.SaveAmSheet(ctx, july2025, input)
		require.NoError(t, err)
		assert.True(t, sheet.Rows[0].Eligible)
		assert.False(t, sheet.Rows[1].Eligible)
		assert.Equal(t, 0.0, sheet.Rows[1].Growth)
		assert.Equal(t, 1, sheet.Summary.EligibleCount)
	})
}

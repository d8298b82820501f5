package report_test

import (
	"testing"
	"time"

	"go-talento/internal/report"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	t.Run("status counts and pie", func(t *testing.T) {
		var records []report.Record
		add := func(n int, status, dimension string) {
			for i := 0; i < n; i++ {
				records = append(records, report.Record{
					Status:    status,
					CreatedAt: now.AddDate(0, 0, -i),
					Requester: "maria",
					Dimension: dimension,
				})
			}
		}
		add(6, "APPROVED", "CITA MEDICA")
		add(2, "PENDING", "CALAMIDAD")
		add(2, "REJECTED", "CALAMIDAD")

		s := report.Summarize(records, now)

		assert.Equal(t, 10, s.Total)
		assert.Equal(t, 6, s.ByStatus["APPROVED"])
		assert.Equal(t, 2, s.ByStatus["PENDING"])
		assert.Equal(t, 2, s.ByStatus["REJECTED"])

		sum := 0
		for _, slice := range s.ByDimension {
			sum += slice.Percent
		}
		assert.Equal(t, 100, sum)
		assert.Equal(t, report.Slice{Label: "CITA MEDICA", Count: 6, Percent: 60}, s.ByDimension[0])
		assert.Equal(t, report.Slice{Label: "CALAMIDAD", Count: 4, Percent: 40}, s.ByDimension[1])
	})

	t.Run("this month compares month and year", func(t *testing.T) {
		records := []report.Record{
			{Status: "PENDING", CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
			{Status: "PENDING", CreatedAt: time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)},
			{Status: "PENDING", CreatedAt: time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)},
		}
		s := report.Summarize(records, now)
		assert.Equal(t, 1, s.ThisMonth)
	})

	t.Run("trailing six month series", func(t *testing.T) {
		records := []report.Record{
			{Status: "APPROVED", CreatedAt: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)},
			{Status: "APPROVED", CreatedAt: time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)},
			{Status: "APPROVED", CreatedAt: time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)},
			// Fuera de la ventana de 6 meses.
			{Status: "APPROVED", CreatedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		}
		s := report.Summarize(records, now)

		assert.Len(t, s.Monthly, 6)
		assert.Equal(t, "2026-03", s.Monthly[0].Label)
		assert.Equal(t, "2026-08", s.Monthly[5].Label)
		assert.Equal(t, 2, s.Monthly[3].Count) // 2026-06
		assert.Equal(t, 1, s.Monthly[5].Count)
	})

	t.Run("series from a month-end date keeps every month", func(t *testing.T) {
		// El 31 de marzo retrocede por meses de 28/30 días; cada mes de
		// la ventana debe aparecer una sola vez y contar sus registros.
		endOfMarch := time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC)
		records := []report.Record{
			{Status: "APPROVED", CreatedAt: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)},
			{Status: "APPROVED", CreatedAt: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
		}
		s := report.Summarize(records, endOfMarch)

		labels := make([]string, 0, len(s.Monthly))
		total := 0
		for _, b := range s.Monthly {
			labels = append(labels, b.Label)
			total += b.Count
		}
		assert.Equal(t, []string{"2025-10", "2025-11", "2025-12", "2026-01", "2026-02", "2026-03"}, labels)
		assert.Equal(t, 2, total)
	})

	t.Run("average amount rounds to nearest integer", func(t *testing.T) {
		records := []report.Record{
			{Status: "APPROVED", CreatedAt: now, Amount: 2_000_000},
			{Status: "APPROVED", CreatedAt: now, Amount: 1_500_000},
			{Status: "APPROVED", CreatedAt: now, Amount: 1_000_001},
		}
		s := report.Summarize(records, now)
		assert.Equal(t, int64(1_500_000), s.AverageAmount)
	})

	t.Run("empty set", func(t *testing.T) {
		s := report.Summarize(nil, now)
		assert.Equal(t, 0, s.Total)
		assert.Empty(t, s.ByDimension)
		assert.Len(t, s.Monthly, 6)
	})
}

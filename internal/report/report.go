package report

import (
	"math"
	"sort"
	"time"
)

// Record is the projection each request module maps its rows into before
// aggregating. Dimension carries the type-specific breakdown value (tipo
// de permiso, tipo de turno, método de retiro).
type Record struct {
	Status    string
	CreatedAt time.Time
	Requester string
	Dimension string
	Amount    int64
}

type Slice struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type MonthBucket struct {
	Label string `json:"label"` // YYYY-MM
	Count int    `json:"count"`
}

type Summary struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	ThisMonth     int            `json:"this_month"`
	ByRequester   []Slice        `json:"by_requester"`
	ByDimension   []Slice        `json:"by_dimension"`
	Monthly       []MonthBucket  `json:"monthly"`
	AverageAmount int64          `json:"average_amount"`
}

// Summarize computes the read-side projection over an already
// visibility-filtered record set. Pure; now is injected so the
// current-month and trailing-series cutoffs are testable.
func Summarize(records []Record, now time.Time) Summary {
	s := Summary{
		Total:    len(records),
		ByStatus: make(map[string]int),
	}

	var amountSum int64
	var amountCount int
	byRequester := make(map[string]int)
	byDimension := make(map[string]int)

	for _, r := range records {
		s.ByStatus[r.Status]++
		if r.CreatedAt.Year() == now.Year() && r.CreatedAt.Month() == now.Month() {
			s.ThisMonth++
		}
		if r.Requester != "" {
			byRequester[r.Requester]++
		}
		if r.Dimension != "" {
			byDimension[r.Dimension]++
		}
		if r.Amount != 0 {
			amountSum += r.Amount
			amountCount++
		}
	}

	if amountCount > 0 {
		s.AverageAmount = int64(math.Round(float64(amountSum) / float64(amountCount)))
	}

	s.ByRequester = toSlices(byRequester, s.Total)
	s.ByDimension = toSlices(byDimension, s.Total)
	s.Monthly = monthlySeries(records, now, 6)

	return s
}

func toSlices(counts map[string]int, total int) []Slice {
	if len(counts) == 0 {
		return nil
	}
	slices := make([]Slice, 0, len(counts))
	for label, count := range counts {
		slices = append(slices, Slice{
			Label:   label,
			Count:   count,
			Percent: percent(count, total),
		})
	}
	sortSlices(slices)
	return slices
}

// percent redondea al entero más cercano.
func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func monthlySeries(records []Record, now time.Time, months int) []MonthBucket {
	buckets := make([]MonthBucket, months)
	index := make(map[string]int, months)
	// Se retrocede desde el día 1: AddDate sobre un 29-31 normaliza el
	// mes corto y saltaría etiquetas.
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < months; i++ {
		m := first.AddDate(0, -(months - 1 - i), 0)
		label := m.Format("2006-01")
		buckets[i] = MonthBucket{Label: label}
		index[label] = i
	}
	for _, r := range records {
		if i, ok := index[r.CreatedAt.Format("2006-01")]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}

// sortSlices orders by count descending, then label, so the breakdown is
// stable for equal counts.
func sortSlices(slices []Slice) {
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Count != slices[j].Count {
			return slices[i].Count > slices[j].Count
		}
		return slices[i].Label < slices[j].Label
	})
}

package service

import (
	"math/rand"
	"time"

	"linksphere_backend/internals/features/settings/dto"
)

// MetricsSource menghasilkan angka "realtime" untuk endpoint analytics.
// Sumbernya pluggable: produksi pakai RandomMetrics (angka simulasi),
// test menyuntik sumber dengan nilai tetap.
type MetricsSource interface {
	Snapshot(totalContent int64) dto.AnalyticsDTO
}

// ============================
// RandomMetrics (default)
// ============================
type RandomMetrics struct {
	rng *rand.Rand
}

func NewRandomMetrics() *RandomMetrics {
	return &RandomMetrics{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *RandomMetrics) Snapshot(totalContent int64) dto.AnalyticsDTO {
	growth := make([]dto.GrowthPoint, 12)
	for i := range growth {
		growth[i] = dto.GrowthPoint{Week: i + 1, Content: r.rng.Intn(50) + 10}
	}

	activity := make([]dto.ActivityPoint, 7)
	for i := range activity {
		day := time.Now().AddDate(0, 0, -i)
		activity[i] = dto.ActivityPoint{
			Day:    day.Format("1/2/2006"),
			Active: r.rng.Intn(1000) + 100,
		}
	}

	return dto.AnalyticsDTO{
		TotalViews:    int64(r.rng.Intn(10000) + 5000),
		ActiveUsers:   int64(r.rng.Intn(500) + 100),
		Engagement:    r.rng.Float64()*0.8 + 0.2,
		TotalContent:  totalContent,
		ContentGrowth: growth,
		UserActivity:  activity,
	}
}

// ============================
// FixedMetrics (untuk test & mode deterministik)
// ============================
type FixedMetrics struct {
	Value dto.AnalyticsDTO
}

func (f *FixedMetrics) Snapshot(totalContent int64) dto.AnalyticsDTO {
	out := f.Value
	out.TotalContent = totalContent
	return out
}

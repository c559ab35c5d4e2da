package match

// Bucket is one band of the ratio histogram.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary aggregates a result list.
type Summary struct {
	Count        int      `json:"count"`
	AverageRatio float64  `json:"average_ratio"`
	MaxRatio     float64  `json:"max_ratio"`
	Buckets      []Bucket `json:"buckets"`
}

// Histogram band labels, highest first.
const (
	BucketTop    = "90%+"
	BucketHigh   = "70-89%"
	BucketMedium = "50-69%"
	BucketLow    = "<50%"
)

// Summarize computes count, mean and max ratio, and the 90/70/50 histogram.
// All buckets are present even when empty.
func Summarize(results []Result) Summary {
	s := Summary{
		Count: len(results),
		Buckets: []Bucket{
			{Label: BucketTop},
			{Label: BucketHigh},
			{Label: BucketMedium},
			{Label: BucketLow},
		},
	}
	if len(results) == 0 {
		return s
	}
	sum := 0.0
	for _, r := range results {
		sum += r.MatchRatio
		if r.MatchRatio > s.MaxRatio {
			s.MaxRatio = r.MatchRatio
		}
		switch {
		case r.MatchRatio >= 90:
			s.Buckets[0].Count++
		case r.MatchRatio >= 70:
			s.Buckets[1].Count++
		case r.MatchRatio >= 50:
			s.Buckets[2].Count++
		default:
			s.Buckets[3].Count++
		}
	}
	s.AverageRatio = round1(sum / float64(len(results)))
	return s
}

// Grade is a coarse quality band used to colour ratios.
type Grade int

// Grades from worst to best.
const (
	GradeLow Grade = iota
	GradeMedium
	GradeHigh
)

// GradeOf maps a ratio to its band: high from 80, medium from 60.
func GradeOf(ratio float64) Grade {
	switch {
	case ratio >= 80:
		return GradeHigh
	case ratio >= 60:
		return GradeMedium
	default:
		return GradeLow
	}
}

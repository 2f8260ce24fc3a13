package acquire

import "github.com/blackwell-systems/zenscore/internal/health"

// DefaultStepWeight converts steps into activity-load units.
const DefaultStepWeight = 0.02

// reduce collapses one day's samples of a kind into a single value. Sleep
// and the additive kinds are summed; heart readings are averaged. A kind
// with no samples reduces to 0.
func reduce(kind Kind, samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var total float64
	for _, s := range samples {
		if kind == KindSleep {
			total += s.Hours()
		} else {
			total += s.Value
		}
	}
	switch kind {
	case KindRestingHR, KindHRV:
		return total / float64(len(samples))
	default:
		return total
	}
}

// numKinds is len(Kinds).
const numKinds = 5

// dayValues holds the reduced value of every kind for one day, indexed like
// Kinds.
type dayValues [numKinds]float64

func (v dayValues) metrics(stepWeight float64) health.Metrics {
	return health.Metrics{
		Sleep:        v[0],
		RestingHR:    v[1],
		HRV:          v[2],
		ActivityLoad: ActivityLoad(v[3], v[4], stepWeight),
	}
}

// ActivityLoad combines active energy (kcal) and steps into one load value.
func ActivityLoad(activeEnergy, steps, stepWeight float64) float64 {
	return activeEnergy + steps*stepWeight
}

package feature

type FeatureType int

const (
	FeatureTypeConstant FeatureType = iota
	FeatureTypeTrend
	FeatureTypeDummy
	FeatureTypeEvent
)

func (f FeatureType) String() string {
	switch f {
	case FeatureTypeConstant:
		return "constant"
	case FeatureTypeTrend:
		return "trend"
	case FeatureTypeDummy:
		return "dummy"
	case FeatureTypeEvent:
		return "event"
	}
	return "unknown"
}

// Feature labels a single column of a design matrix.
type Feature interface {
	String() string
	Get(string) (string, bool)
	Type() FeatureType
	Decode() map[string]string
}

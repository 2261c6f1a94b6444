package feature

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Trend is a piecewise linear trend column. Order 0 is the base time counter and every
// following order is the hinge starting at the matching knot.
type Trend struct {
	Order int `json:"order"`
}

func NewTrend(order int) *Trend {
	return &Trend{order}
}

func (t Trend) String() string {
	return fmt.Sprintf("trend(%d)", t.Order)
}

func (t Trend) Get(label string) (string, bool) {
	switch strings.ToLower(label) {
	case "order":
		return strconv.Itoa(t.Order), true
	}
	return "", false
}

func (t Trend) Type() FeatureType {
	return FeatureTypeTrend
}

func (t Trend) Decode() map[string]string {
	res := make(map[string]string)
	res["order"] = strconv.Itoa(t.Order)
	return res
}

// UnmarshalJSON is the custom unmarshalling to convert a map[string]string
// to a trend feature
func (t *Trend) UnmarshalJSON(data []byte) error {
	var labelStr struct {
		Order string `json:"order"`
	}
	if err := json.Unmarshal(data, &labelStr); err != nil {
		return err
	}
	order, err := strconv.Atoi(labelStr.Order)
	if err != nil {
		return err
	}
	t.Order = order
	return nil
}

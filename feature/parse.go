package feature

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownFeature = errors.New("unknown feature label")

// Parse converts the string representation of a feature back into its typed label.
func Parse(label string) (Feature, error) {
	switch {
	case label == "const":
		return NewConstant(), nil
	case strings.HasPrefix(label, "trend(") && strings.HasSuffix(label, ")"):
		order, err := strconv.Atoi(label[len("trend(") : len(label)-1])
		if err != nil {
			return nil, fmt.Errorf("%q, %w", label, ErrUnknownFeature)
		}
		return NewTrend(order), nil
	case strings.HasPrefix(label, "holiday_"):
		return NewEvent(strings.TrimPrefix(label, "holiday_")), nil
	}

	attr, val, found := strings.Cut(label, "=")
	if !found || attr == "" {
		return nil, fmt.Errorf("%q, %w", label, ErrUnknownFeature)
	}
	value, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("%q, %w", label, ErrUnknownFeature)
	}
	return NewDummy(attr, value), nil
}

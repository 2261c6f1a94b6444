package feature

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Dummy is the indicator column of one observed value of a datetime attribute, e.g. the
// column that is 1 for every timestamp falling in March.
type Dummy struct {
	Attribute string `json:"attribute"`
	Value     int    `json:"value"`
}

func NewDummy(attribute string, value int) *Dummy {
	return &Dummy{attribute, value}
}

func (d Dummy) String() string {
	return fmt.Sprintf("%s=%d", d.Attribute, d.Value)
}

func (d Dummy) Get(label string) (string, bool) {
	switch strings.ToLower(label) {
	case "attribute":
		return d.Attribute, true
	case "value":
		return strconv.Itoa(d.Value), true
	}
	return "", false
}

func (d Dummy) Type() FeatureType {
	return FeatureTypeDummy
}

func (d Dummy) Decode() map[string]string {
	res := make(map[string]string)
	res["attribute"] = d.Attribute
	res["value"] = strconv.Itoa(d.Value)
	return res
}

func (d *Dummy) UnmarshalJSON(data []byte) error {
	var labelStr struct {
		Attribute string `json:"attribute"`
		Value     string `json:"value"`
	}
	err := json.Unmarshal(data, &labelStr)
	if err != nil {
		return err
	}
	d.Attribute = labelStr.Attribute
	d.Value, err = strconv.Atoi(labelStr.Value)
	if err != nil {
		return err
	}
	return nil
}

package feature

// Constant is the intercept column, 1 for every observation.
type Constant struct{}

func NewConstant() *Constant {
	return &Constant{}
}

func (c Constant) String() string {
	return "const"
}

func (c Constant) Get(label string) (string, bool) {
	return "", false
}

func (c Constant) Type() FeatureType {
	return FeatureTypeConstant
}

func (c Constant) Decode() map[string]string {
	return map[string]string{}
}

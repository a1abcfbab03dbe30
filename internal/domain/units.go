package domain

type WeightUnit string

const (
	Pounds    WeightUnit = "lb"
	Kilograms WeightUnit = "kg"
)

func (u WeightUnit) Valid() bool {
	return u == Pounds || u == Kilograms
}

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

func (t Theme) Valid() bool {
	return t == Dark || t == Light
}

package model

type Student struct {
	Name  string  `json:"name"`
	Age   int     `json:"age"`
	Grade float64 `json:"grade"`
}

package domain

import "fmt"

// View перечисляет страницы дашборда.
type View int

const (
	MarketOverview View = iota + 1
	DetailAnalysis
	Converter
)

var viewNames = map[View]string{
	MarketOverview: "overview",
	DetailAnalysis: "detail",
	Converter:      "converter",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// ParseView сопоставляет имя из URL со страницей.
func ParseView(s string) (View, error) {
	for v, name := range viewNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: view %q", ErrInvalidArgument, s)
}

// RequestState это состояние загрузки страницы для UI.
type RequestState string

const (
	StateIdle    RequestState = "idle"
	StateLoading RequestState = "loading"
	StateSuccess RequestState = "success"
	StateError   RequestState = "error"
)

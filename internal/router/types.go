package router

// Intent represents the user's intention.
type Intent string

const (
	IntentCurrentWeather Intent = "CURRENT_WEATHER"
	IntentForecast       Intent = "FORECAST"
	IntentGeneral        Intent = "GENERAL"
)

// valid reports whether the intent is one of the known categories.
func (i Intent) valid() bool {
	switch i {
	case IntentCurrentWeather, IntentForecast, IntentGeneral:
		return true
	}
	return false
}

// IsWeather reports whether the intent requires live weather data.
func (i Intent) IsWeather() bool {
	return i == IntentCurrentWeather || i == IntentForecast
}

// RouterOutput is the structured classification result. Location is set
// for weather intents; Days carries the forecast horizon (default 1).
type RouterOutput struct {
	Intent     Intent `json:"intent"`
	Location   string `json:"location"`
	Days       int    `json:"days"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`
}

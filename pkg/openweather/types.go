package openweather

// CurrentResponse is the wire format of GET /data/2.5/weather.
// Numeric fields that the provider may omit are pointers so missing
// data is distinguishable from zero.
type CurrentResponse struct {
	Name    string `json:"name"`
	Dt      int64  `json:"dt"`
	Main    Main   `json:"main"`
	Wind    Wind   `json:"wind"`
	Weather []Condition `json:"weather"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// ForecastResponse is the wire format of GET /data/2.5/forecast.
// Entries arrive in 3-hour steps, 8 per day, up to 5 days.
type ForecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []ForecastEntry `json:"list"`
}

// ForecastEntry is a single 3-hour forecast slot.
type ForecastEntry struct {
	Dt      int64       `json:"dt"`
	DtTxt   string      `json:"dt_txt"`
	Main    Main        `json:"main"`
	Wind    Wind        `json:"wind"`
	Weather []Condition `json:"weather"`
}

// Main carries the thermal block shared by both endpoints.
type Main struct {
	Temp     *float64 `json:"temp"`
	TempMin  *float64 `json:"temp_min"`
	TempMax  *float64 `json:"temp_max"`
	Humidity *int     `json:"humidity"`
}

// Wind carries wind measurements.
type Wind struct {
	Speed *float64 `json:"speed"`
	Deg   int      `json:"deg"`
}

// Condition is a single weather descriptor.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

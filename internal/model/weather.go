package model

// WeatherResult holds the fields of a WeatherAPI current-conditions response
// that the CLI displays.
type WeatherResult struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

type Location struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type Current struct {
	TempC      float64   `json:"temp_c"`
	FeelsLikeC float64   `json:"feelslike_c"`
	Humidity   int       `json:"humidity"`
	Condition  Condition `json:"condition"`
}

type Condition struct {
	Text string `json:"text"`
}

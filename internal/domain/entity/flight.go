package entity

// Flight mirrors one record from the flight-data API
type Flight struct {
	FlightDate   string        `json:"flight_date"`
	FlightStatus string        `json:"flight_status"`
	Departure    *FlightStop   `json:"departure,omitempty"`
	Arrival      *FlightStop   `json:"arrival,omitempty"`
	Airline      *AirlineInfo  `json:"airline,omitempty"`
	FlightNumber *FlightNumber `json:"flight,omitempty"`
}

// FlightStop holds departure or arrival details
type FlightStop struct {
	Airport   string `json:"airport"`
	IATA      string `json:"iata"`
	ICAO      string `json:"icao,omitempty"`
	Terminal  string `json:"terminal,omitempty"`
	Gate      string `json:"gate,omitempty"`
	Scheduled string `json:"scheduled,omitempty"`
	Estimated string `json:"estimated,omitempty"`
	Delay     int    `json:"delay,omitempty"`
}

// AirlineInfo identifies the operating airline
type AirlineInfo struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
	ICAO string `json:"icao,omitempty"`
}

// FlightNumber holds the flight designator variants
type FlightNumber struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
	ICAO   string `json:"icao,omitempty"`
}

// FlightAPIResponse is the envelope returned by the flight-data API
type FlightAPIResponse struct {
	Pagination struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
		Count  int `json:"count"`
		Total  int `json:"total"`
	} `json:"pagination"`
	Data []Flight `json:"data"`
}

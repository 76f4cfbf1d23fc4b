package ipgeo

// STATUS_SUCCESS is the status of a resolved lookup; anything else is a
// failure described by Message.
const STATUS_SUCCESS = "success"

// IPLocationResponse is the subset of the ip-api.com JSON payload we read.
type IPLocationResponse struct {
	Status     string  `json:"status"`
	Message    string  `json:"message,omitempty"`
	Query      string  `json:"query,omitempty"`
	City       string  `json:"city,omitempty"`
	RegionName string  `json:"regionName,omitempty"`
	Country    string  `json:"country,omitempty"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Timezone   string  `json:"timezone,omitempty"`
}

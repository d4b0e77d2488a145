package dto

type DistanceResponse struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Miles float64 `json:"miles"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	RecordSink string `json:"record_sink"`
}

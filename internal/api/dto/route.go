package dto

type RoutesRequest struct {
	Origin                string `json:"origin"`
	Destination           string `json:"destination"`
	Mode                  string `json:"mode"`
	IncludeTrafficDetails bool   `json:"include_traffic_details"`
}

type StepResponse struct {
	Instruction     string `json:"instruction"`
	Distance        string `json:"distance"`
	Duration        string `json:"duration"`
	DurationSeconds int    `json:"duration_seconds"`
}

type StreetDetailResponse struct {
	Street            string  `json:"street"`
	TrafficLevel      string  `json:"traffic_level"`
	Multiplier        float64 `json:"congestion_multiplier"`
	DailyVehicleCount int     `json:"daily_vehicle_count"`
	Weight            float64 `json:"weight"`
}

type TrafficAnalysisResponse struct {
	Multiplier      float64                `json:"multiplier"`
	Confidence      float64                `json:"confidence"`
	StreetsAnalyzed int                    `json:"streets_analyzed"`
	StreetDetails   []StreetDetailResponse `json:"street_details,omitempty"`
}

type RouteResponse struct {
	Details                 []StepResponse          `json:"details"`
	TotalDuration           string                  `json:"total_duration"`
	TotalDurationSeconds    int                     `json:"total_duration_seconds"`
	TotalDistance           string                  `json:"total_distance"`
	Geometry                string                  `json:"geometry"`
	TrafficAdjustedDuration string                  `json:"traffic_adjusted_duration"`
	TrafficAdjustedSeconds  int                     `json:"traffic_adjusted_seconds"`
	TrafficAnalysis         TrafficAnalysisResponse `json:"traffic_analysis"`
	ProviderTrafficDuration string                  `json:"provider_traffic_duration,omitempty"`
	ProviderTrafficSeconds  int                     `json:"provider_traffic_seconds,omitempty"`
}

type RoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

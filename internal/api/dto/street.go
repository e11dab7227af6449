package dto

type StreetTrafficResponse struct {
	Street            string  `json:"street"`
	TrafficLevel      string  `json:"traffic_level"`
	Multiplier        float64 `json:"congestion_multiplier"`
	DailyVehicleCount int     `json:"daily_vehicle_count"`
}

package dto

type ReservationListDTO struct {
	ID          uint     `json:"id"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	EndTime     string   `json:"end_time"`
	Status      string   `json:"status"`
	ClientName  string   `json:"client_name"`
	ServiceName string   `json:"service_name"`
	Services    []string `json:"services"`
	Duration    int      `json:"duration"`
	TotalPrice  float64  `json:"total_price"`
}

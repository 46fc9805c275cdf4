package entities

// Dashboard aggregates consumed by the back-office charts. All values are
// derived from the orders table on demand.

type MonthCount struct {
	Month string `json:"month"` // yyyy-mm
	Count int    `json:"count"`
}

type CompletedVsPending struct {
	Completados int `json:"completados"`
	Pendentes   int `json:"pendentes"`
}

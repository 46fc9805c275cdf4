package response

import "elo_drinks/internal/domain/entities"

type RevenueResponse struct {
	Total float64 `json:"total"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type MonthCountResponse struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type CompletedVsPendingResponse struct {
	Completados int `json:"completados"`
	Pendentes   int `json:"pendentes"`
}

func FromMonthCounts(counts []entities.MonthCount) []MonthCountResponse {
	out := make([]MonthCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, MonthCountResponse{Month: c.Month, Count: c.Count})
	}
	return out
}

func FromCompletedVsPending(v entities.CompletedVsPending) CompletedVsPendingResponse {
	return CompletedVsPendingResponse{Completados: v.Completados, Pendentes: v.Pendentes}
}

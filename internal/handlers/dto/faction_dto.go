package dto

import (
	"time"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
)

// FactionStatsResponse representa os contadores de uma facção
type FactionStatsResponse struct {
	Faction      string    `json:"faction"`
	MemberCount  int64     `json:"memberCount"`
	WeeklyGrowth int64     `json:"weeklyGrowth"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// FactionStandingResponse acrescenta a posição no ranking
type FactionStandingResponse struct {
	FactionStatsResponse
	Rank int `json:"rank"`
}

// UpdateFactionStatsRequest é o corpo do hook administrativo de contadores.
// Os deltas podem ser negativos; ausentes valem zero.
type UpdateFactionStatsRequest struct {
	Faction            string `json:"faction" binding:"required,faction"`
	MemberChange       int64  `json:"memberChange"`
	WeeklyGrowthChange int64  `json:"weeklyGrowthChange"`
}

// UpdateFactionStatsResponse devolve o estado relido após o delta
type UpdateFactionStatsResponse struct {
	Faction FactionStatsResponse `json:"faction"`
}

// ToFactionStatsResponse converte FactionStats
func ToFactionStatsResponse(stats *entities.FactionStats) FactionStatsResponse {
	return FactionStatsResponse{
		Faction:      string(stats.Faction),
		MemberCount:  stats.MemberCount,
		WeeklyGrowth: stats.WeeklyGrowth,
		LastUpdated:  stats.LastUpdated,
	}
}

// ToFactionStatsResponses converte uma lista de FactionStats
func ToFactionStatsResponses(stats []*entities.FactionStats) []FactionStatsResponse {
	responses := make([]FactionStatsResponse, len(stats))
	for i, s := range stats {
		responses[i] = ToFactionStatsResponse(s)
	}
	return responses
}

// ToFactionStandingResponse converte FactionStanding
func ToFactionStandingResponse(standing *entities.FactionStanding) FactionStandingResponse {
	return FactionStandingResponse{
		FactionStatsResponse: ToFactionStatsResponse(&standing.FactionStats),
		Rank:                 standing.Rank,
	}
}

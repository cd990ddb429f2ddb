package entities

import (
	"time"

	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
)

// Faction representa uma das afiliações fixas da comunidade
type Faction string

const (
	FactionBoneMarch         Faction = "bone-march"
	FactionChoirSilence      Faction = "choir-silence"
	FactionCultWitheredFlame Faction = "cult-withered-flame"
	FactionGravewroughtCourt Faction = "gravewrought-court"
	FactionSwarmMireborn     Faction = "swarm-mireborn"
	FactionDawnflameOrder    Faction = "dawnflame-order"
	FactionHollowedRedeemed  Faction = "hollowed-redeemed"
)

var allFactions = []Faction{
	FactionBoneMarch,
	FactionChoirSilence,
	FactionCultWitheredFlame,
	FactionGravewroughtCourt,
	FactionSwarmMireborn,
	FactionDawnflameOrder,
	FactionHollowedRedeemed,
}

// AllFactions retorna todas as facções na ordem canônica
func AllFactions() []Faction {
	out := make([]Faction, len(allFactions))
	copy(out, allFactions)
	return out
}

// ParseFaction converte uma string em Faction, falhando para valores fora da enumeração
func ParseFaction(value string) (Faction, error) {
	f := Faction(value)
	if !f.IsValid() {
		return "", errors.ErrInvalidFaction
	}
	return f, nil
}

// IsValid verifica se a facção pertence à enumeração
func (f Faction) IsValid() bool {
	for _, known := range allFactions {
		if f == known {
			return true
		}
	}
	return false
}

func (f Faction) String() string {
	return string(f)
}

// FactionStats contém os contadores agregados de uma facção
type FactionStats struct {
	Faction      Faction   `json:"faction"`
	MemberCount  int64     `json:"memberCount"`
	WeeklyGrowth int64     `json:"weeklyGrowth"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// FactionStanding é um FactionStats acompanhado da posição no ranking por membros
type FactionStanding struct {
	FactionStats
	Rank int `json:"rank"`
}

// Package events define as mensagens empurradas aos clientes conectados pelo canal de broadcast.
package events

import (
	"time"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
)

// Type identifica a variante de um FactionUpdate
type Type string

const (
	TypeMemberAdded    Type = "memberAdded"
	TypeStatsUpdated   Type = "statsUpdated"
	TypeGalleryUpdated Type = "galleryUpdated"
)

// GalleryAction distingue as variantes de galleryUpdated
type GalleryAction string

const (
	GalleryNewCharacter   GalleryAction = "newCharacter"
	GalleryArtworkDeleted GalleryAction = "artworkDeleted"
)

// FactionUpdate é o evento publicado no tópico "factionUpdate"
type FactionUpdate struct {
	Faction   entities.Faction `json:"faction"`
	Type      Type             `json:"type"`
	Timestamp time.Time        `json:"timestamp"`

	// statsUpdated
	MemberCount  *int64     `json:"memberCount,omitempty"`
	WeeklyGrowth *int64     `json:"weeklyGrowth,omitempty"`
	LastUpdated  *time.Time `json:"lastUpdated,omitempty"`

	// galleryUpdated
	Action        GalleryAction `json:"action,omitempty"`
	CharacterName string        `json:"characterName,omitempty"`
	ArtworkID     string        `json:"artworkId,omitempty"`
	Username      string        `json:"username,omitempty"`
}

// MemberAdded cria o evento de novo recruta
func MemberAdded(f entities.Faction, at time.Time) FactionUpdate {
	return FactionUpdate{Faction: f, Type: TypeMemberAdded, Timestamp: at}
}

// StatsUpdated carrega os contadores relidos após a escrita.
// LastUpdated é o da linha relida e permite comparar o evento com um snapshot.
func StatsUpdated(stats *entities.FactionStats, at time.Time) FactionUpdate {
	members := stats.MemberCount
	growth := stats.WeeklyGrowth
	lastUpdated := stats.LastUpdated
	return FactionUpdate{
		Faction:      stats.Faction,
		Type:         TypeStatsUpdated,
		Timestamp:    at,
		MemberCount:  &members,
		WeeklyGrowth: &growth,
		LastUpdated:  &lastUpdated,
	}
}

// OlderThan indica se o evento statsUpdated é anterior ao estado em stats.
// Eventos de outros tipos, ou sem LastUpdated, nunca são considerados antigos.
func (e FactionUpdate) OlderThan(stats *entities.FactionStats) bool {
	if e.Type != TypeStatsUpdated || e.LastUpdated == nil || stats == nil {
		return false
	}
	return e.LastUpdated.Before(stats.LastUpdated)
}

// NewCharacter anuncia uma nova arte na galeria
func NewCharacter(item *entities.GalleryItem, at time.Time) FactionUpdate {
	return FactionUpdate{
		Faction:       item.Faction,
		Type:          TypeGalleryUpdated,
		Timestamp:     at,
		Action:        GalleryNewCharacter,
		CharacterName: item.CharacterName,
		Username:      item.Username,
	}
}

// ArtworkDeleted anuncia a remoção de uma arte
func ArtworkDeleted(item *entities.GalleryItem, at time.Time) FactionUpdate {
	return FactionUpdate{
		Faction:   item.Faction,
		Type:      TypeGalleryUpdated,
		Timestamp: at,
		Action:    GalleryArtworkDeleted,
		ArtworkID: item.ID,
		Username:  item.Username,
	}
}

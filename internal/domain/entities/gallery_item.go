package entities

import "time"

// GalleryItem representa uma arte de personagem publicada na galeria.
// Username e Faction são snapshots do momento do upload e não acompanham
// mudanças posteriores do autor.
type GalleryItem struct {
	ID            string
	OwnerID       string
	Username      string
	Faction       Faction
	CharacterName string
	Description   *string
	ImageKey      *string
	CreatedAt     time.Time

	// Campos derivados na leitura, nunca persistidos
	ImageURL     *string
	ImageMissing bool
}

// IsOwnedBy verifica se o item pertence ao usuário
func (g *GalleryItem) IsOwnedBy(userID string) bool {
	return g.OwnerID == userID
}

package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID                string  `gorm:"type:varchar(36);primaryKey"`
	Username          string  `gorm:"type:varchar(30);uniqueIndex;not null"`
	UsernameLower     string  `gorm:"type:varchar(30);index;not null"`
	Email             string  `gorm:"type:varchar(254);uniqueIndex;not null"`
	PasswordHash      string  `gorm:"type:varchar(255);not null"`
	Faction           string  `gorm:"type:varchar(40);not null;index"`
	Role              string  `gorm:"type:varchar(20);not null"`
	AvatarKey         *string `gorm:"type:varchar(500)"`
	ProfileVisibility string  `gorm:"type:varchar(20);not null"`
	CreatedAt         int64   `gorm:"autoCreateTime:milli"`
	FactionJoinedAt   int64   `gorm:"not null"`
	LastActivityAt    int64   `gorm:"not null;index"`
}

func (UserModel) TableName() string {
	return "users"
}

// FactionStatsModel é o model GORM para os contadores por facção
type FactionStatsModel struct {
	Faction      string `gorm:"type:varchar(40);primaryKey"`
	MemberCount  int64  `gorm:"not null;default:0"`
	WeeklyGrowth int64  `gorm:"not null;default:0"`
	LastUpdated  int64  `gorm:"not null"`
}

func (FactionStatsModel) TableName() string {
	return "faction_stats"
}

// GalleryItemModel é o model GORM para a galeria
type GalleryItemModel struct {
	ID            string  `gorm:"type:varchar(36);primaryKey"`
	OwnerID       string  `gorm:"type:varchar(36);not null;index"`
	Username      string  `gorm:"type:varchar(30);not null"`
	Faction       string  `gorm:"type:varchar(40);not null;index"`
	CharacterName string  `gorm:"type:varchar(100);not null"`
	Description   *string `gorm:"type:text"`
	ImageKey      *string `gorm:"type:varchar(500)"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;index"`
}

func (GalleryItemModel) TableName() string {
	return "gallery_items"
}

package repositories

import (
	"context"
	"time"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// ExistsOther verifica se username ou email pertencem a outro usuário
	ExistsOther(ctx context.Context, username, email, exceptID string) (bool, error)
	Update(ctx context.Context, user *entities.User) error
	// ChangeFaction troca a facção apenas se a atual ainda for "from"; retorna false caso contrário
	ChangeFaction(ctx context.Context, id string, from, to entities.Faction, at time.Time) (bool, error)
	TouchActivity(ctx context.Context, id string, at time.Time) error
	// Delete remove o usuário apenas se ainda estiver em "faction"; retorna false caso contrário
	Delete(ctx context.Context, id string, faction entities.Faction) (bool, error)
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
	// CountByFaction recontagem usada pela reconciliação
	CountByFaction(ctx context.Context) (map[entities.Faction]int64, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Query      string            // substring do username, sem diferenciar maiúsculas
	Faction    *entities.Faction // filtra por facção
	ExcludeID  string            // normalmente o próprio usuário
	PublicOnly bool
	Limit      int // default: 20, max: 100
	Offset     int
}

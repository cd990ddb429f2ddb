package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
	"github.com/rafabene/gravegrounds-backend/internal/domain/repositories"
	"github.com/rafabene/gravegrounds-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	factions *FactionService
	gallery  *GalleryService
	images   *ImageIntake
	hasher   ports.PasswordHasher
	tokens   ports.TokenProvider
	isAdmin  func(email string) bool
	logger   ports.Logger
	now      func() time.Time
}

// UserServiceDeps agrupa as dependências do UserService
type UserServiceDeps struct {
	UserRepo   repositories.UserRepository
	UnitOfWork ports.UnitOfWork
	Factions   *FactionService
	Gallery    *GalleryService
	Images     *ImageIntake
	Hasher     ports.PasswordHasher
	Tokens     ports.TokenProvider
	Logger     ports.Logger

	// IsAdminEmail decide se o cadastro recebe o papel de admin; nil nunca promove
	IsAdminEmail func(email string) bool
}

// NewUserService cria um novo UserService
func NewUserService(deps UserServiceDeps) *UserService {
	return &UserService{
		userRepo: deps.UserRepo,
		uow:      deps.UnitOfWork,
		factions: deps.Factions,
		gallery:  deps.Gallery,
		images:   deps.Images,
		hasher:   deps.Hasher,
		tokens:   deps.Tokens,
		isAdmin:  deps.IsAdminEmail,
		logger:   deps.Logger,
		now:      time.Now,
	}
}

// SignupInput representa os dados de cadastro
type SignupInput struct {
	Username string
	Email    string
	Password string
	Faction  string
}

// AuthResult é o retorno de cadastro e login
type AuthResult struct {
	Token string
	User  *entities.User
}

// Signup cria o usuário, contabiliza o membro na facção e emite o token.
// Se a atualização dos contadores falhar, o usuário permanece criado e o erro é retornado.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	faction, err := entities.ParseFaction(input.Faction)
	if err != nil {
		return nil, err
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	now := s.now()
	user := &entities.User{
		Username:          strings.TrimSpace(input.Username),
		Email:             email,
		Faction:           faction,
		Role:              entities.RoleMember,
		ProfileVisibility: entities.VisibilityPublic,
		CreatedAt:         now,
		FactionJoinedAt:   now,
		LastActivityAt:    now,
	}
	if s.isAdmin != nil && s.isAdmin(email.String()) {
		user.Role = entities.RoleAdmin
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	user.PasswordHash, err = s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("creating user", "username", user.Username, "faction", faction)

	if err := s.userRepo.Create(ctx, user); err != nil {
		if stderrors.Is(err, errors.ErrUsernameOrEmailTaken) {
			return nil, err
		}
		return nil, errors.NewStoreError("create user", err)
	}

	if _, err := s.factions.RecordSignup(ctx, faction); err != nil {
		s.logger.Error("user created but faction stats update failed",
			"user_id", user.ID,
			"faction", faction,
			"error", err,
		)
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Login confere as credenciais e atualiza a última atividade
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewStoreError("find user", err)
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	user.LastActivityAt = s.now()
	if err := s.userRepo.TouchActivity(ctx, user.ID, user.LastActivityAt); err != nil {
		s.logger.Warn("failed to touch activity on login", "user_id", user.ID, "error", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewStoreError("find user", err)
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// GetPublicProfile busca um perfil visível para outros usuários
func (s *UserService) GetPublicProfile(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsPublic() {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfileInput representa os campos editáveis do perfil
type UpdateProfileInput struct {
	Username string
	Email    string
}

// UpdateProfile altera username e email, mantendo a unicidade
func (s *UserService) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}
	user.Username = strings.TrimSpace(input.Username)
	user.Email = email
	if err := user.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.userRepo.ExistsOther(ctx, user.Username, email.String(), user.ID)
	if err != nil {
		return nil, errors.NewStoreError("check username/email", err)
	}
	if taken {
		return nil, errors.ErrUsernameOrEmailTaken
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if stderrors.Is(err, errors.ErrUsernameOrEmailTaken) {
			return nil, err
		}
		return nil, errors.NewStoreError("update user", err)
	}

	s.logger.Info("profile updated", "user_id", user.ID)
	return user, nil
}

// UpdateSettings altera a visibilidade do perfil
func (s *UserService) UpdateSettings(ctx context.Context, id, visibility string) (*entities.User, error) {
	v := entities.ProfileVisibility(visibility)
	if !v.IsValid() {
		return nil, errors.ErrInvalidVisibility
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ProfileVisibility = v
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.NewStoreError("update user", err)
	}
	return user, nil
}

// ChangeFaction move o usuário para outra facção numa única transação:
// update condicional do usuário, -1 na facção antiga e +1 na nova.
// O crescimento semanal não é alterado em nenhuma das duas.
func (s *UserService) ChangeFaction(ctx context.Context, id, newFaction string) (*entities.User, error) {
	to, err := entities.ParseFaction(newFaction)
	if err != nil {
		return nil, err
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	from := user.Faction
	if from == to {
		return nil, errors.ErrAlreadyInFaction
	}

	now := s.now()
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		changed, err := s.userRepo.ChangeFaction(txCtx, user.ID, from, to, now)
		if err != nil {
			return errors.NewStoreError("change user faction", err)
		}
		if !changed {
			return errors.ErrConcurrentUpdate
		}

		if _, err := s.factions.ApplyDelta(txCtx, from, -1, 0); err != nil {
			return err
		}
		if _, err := s.factions.ApplyDelta(txCtx, to, 1, 0); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user changed faction", "user_id", user.ID, "from", from, "to", to)

	user.JoinFaction(to, now)
	user.LastActivityAt = now
	return user, nil
}

// TouchActivity registra atividade do usuário
func (s *UserService) TouchActivity(ctx context.Context, id string) error {
	if err := s.userRepo.TouchActivity(ctx, id, s.now()); err != nil {
		return errors.NewStoreError("touch activity", err)
	}
	return nil
}

// DeleteAccount remove a galeria, o usuário e o membro da contagem da facção numa transação.
// A remoção é condicional à facção lida dentro da transação: uma troca de facção
// concorrente faz a exclusão falhar com ErrConcurrentUpdate.
func (s *UserService) DeleteAccount(ctx context.Context, id string) error {
	var user *entities.User
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		user, err = s.GetUser(txCtx, id)
		if err != nil {
			return err
		}

		if _, err := s.gallery.DeleteAllByOwner(txCtx, user.ID); err != nil {
			return err
		}

		deleted, err := s.userRepo.Delete(txCtx, user.ID, user.Faction)
		if err != nil {
			return errors.NewStoreError("delete user", err)
		}
		if !deleted {
			return errors.ErrConcurrentUpdate
		}

		if _, err := s.factions.ApplyDelta(txCtx, user.Faction, -1, 0); err != nil {
			return err
		}

		if user.AvatarKey != nil {
			key := *user.AvatarKey
			s.uow.AfterCommit(txCtx, func() {
				s.images.Discard(ctx, key)
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("account deleted", "user_id", user.ID, "faction", user.Faction)
	return nil
}

// UploadAvatar grava e modera a imagem e substitui o avatar atual
func (s *UserService) UploadAvatar(ctx context.Context, id string, img *ImageUpload) (*entities.User, error) {
	if err := s.images.Validate(img); err != nil {
		return nil, err
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	key, err := s.images.Accept(ctx, img)
	if err != nil {
		return nil, err
	}

	previous := user.AvatarKey
	user.AvatarKey = &key
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.images.Discard(ctx, key)
		return nil, errors.NewStoreError("update avatar", err)
	}

	if previous != nil {
		s.images.Discard(ctx, *previous)
	}
	return user, nil
}

// AvatarURL retorna o endereço público do avatar, se houver
func (s *UserService) AvatarURL(user *entities.User) *string {
	return s.images.URL(user.AvatarKey)
}

// ListFilters representa a paginação das listagens de usuários
type ListFilters struct {
	Limit  int
	Offset int
}

// Search busca perfis públicos por trecho do username e, opcionalmente, facção
func (s *UserService) Search(ctx context.Context, requesterID, query, faction string, page ListFilters) ([]*entities.User, error) {
	filters := repositories.UserFilters{
		Query:      query,
		ExcludeID:  requesterID,
		PublicOnly: true,
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	if faction != "" {
		f, err := entities.ParseFaction(faction)
		if err != nil {
			return nil, err
		}
		filters.Faction = &f
	}

	if err := s.userRepo.TouchActivity(ctx, requesterID, s.now()); err != nil {
		s.logger.Warn("failed to touch activity on search", "user_id", requesterID, "error", err)
	}

	return s.list(ctx, filters)
}

// Recent lista os perfis públicos mais ativos recentemente
func (s *UserService) Recent(ctx context.Context, requesterID string, page ListFilters) ([]*entities.User, error) {
	return s.list(ctx, repositories.UserFilters{
		ExcludeID:  requesterID,
		PublicOnly: true,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
}

// ListByFaction lista os perfis públicos de uma facção
func (s *UserService) ListByFaction(ctx context.Context, requesterID, faction string, page ListFilters) ([]*entities.User, error) {
	f, err := entities.ParseFaction(faction)
	if err != nil {
		return nil, err
	}

	return s.list(ctx, repositories.UserFilters{
		Faction:    &f,
		ExcludeID:  requesterID,
		PublicOnly: true,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
}

func (s *UserService) list(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	users, err := s.userRepo.List(ctx, filters)
	if err != nil {
		return nil, errors.NewStoreError("list users", err)
	}
	return users, nil
}

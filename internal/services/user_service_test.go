package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/events"
	"github.com/rafabene/gravegrounds-backend/internal/domain/repositories"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/logging"
	"github.com/rafabene/gravegrounds-backend/internal/services"
)

var _ = Describe("UserService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	Describe("Signup", func() {
		It("N cadastros somam N membros e N de crescimento semanal", func() {
			for _, name := range []string{"alice", "bram", "cyra"} {
				e.signup(name, entities.FactionBoneMarch)
			}

			stats := e.stats(entities.FactionBoneMarch)
			Expect(stats.MemberCount).To(BeEquivalentTo(3))
			Expect(stats.WeeklyGrowth).To(BeEquivalentTo(3))
		})

		It("publica statsUpdated seguido de memberAdded", func() {
			e.signup("alice", entities.FactionBoneMarch)

			published := e.publisher.Events()
			Expect(published).To(HaveLen(2))
			Expect(published[0].Type).To(Equal(events.TypeStatsUpdated))
			Expect(published[1].Type).To(Equal(events.TypeMemberAdded))
			Expect(published[1].Faction).To(Equal(entities.FactionBoneMarch))
		})

		It("emite um token e cria o usuário como membro público", func() {
			result, err := e.users.Signup(e.ctx, services.SignupInput{
				Username: "alice",
				Email:    "Alice@GraveGrounds.gg",
				Password: "secret-password",
				Faction:  "bone-march",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Token).NotTo(BeEmpty())
			Expect(result.User.Email.String()).To(Equal("alice@gravegrounds.gg"))
			Expect(result.User.Role).To(Equal(entities.RoleMember))
			Expect(result.User.IsPublic()).To(BeTrue())
		})

		It("promove emails configurados como admin", func() {
			result, err := e.users.Signup(e.ctx, services.SignupInput{
				Username: "warden",
				Email:    adminEmail,
				Password: "secret-password",
				Faction:  "dawnflame-order",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.IsAdmin()).To(BeTrue())
		})

		It("recusa username ou email duplicado sem alterar contadores", func() {
			e.signup("alice", entities.FactionBoneMarch)
			e.publisher.Reset()

			_, err := e.users.Signup(e.ctx, services.SignupInput{
				Username: "alice",
				Email:    "other@gravegrounds.gg",
				Password: "secret-password",
				Faction:  "bone-march",
			})
			Expect(err).To(MatchError(errors.ErrUsernameOrEmailTaken))
			Expect(e.stats(entities.FactionBoneMarch).MemberCount).To(BeEquivalentTo(1))
			Expect(e.publisher.Events()).To(BeEmpty())
		})

		It("recusa facção inválida antes de qualquer escrita", func() {
			_, err := e.users.Signup(e.ctx, services.SignupInput{
				Username: "alice",
				Email:    "alice@gravegrounds.gg",
				Password: "secret-password",
				Faction:  "iron-legion",
			})
			Expect(err).To(MatchError(errors.ErrInvalidFaction))

			user, err := e.userRepo.FindByEmail(e.ctx, "alice@gravegrounds.gg")
			Expect(err).NotTo(HaveOccurred())
			Expect(user).To(BeNil())
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			e.signup("alice", entities.FactionBoneMarch)
		})

		It("autentica com a senha correta", func() {
			result, err := e.users.Login(e.ctx, "ALICE@gravegrounds.gg", "secret-password")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.Username).To(Equal("alice"))
			Expect(result.Token).NotTo(BeEmpty())
		})

		It("falha com senha errada ou email desconhecido", func() {
			_, err := e.users.Login(e.ctx, "alice@gravegrounds.gg", "wrong")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))

			_, err = e.users.Login(e.ctx, "nobody@gravegrounds.gg", "secret-password")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})
	})

	Describe("ChangeFaction", func() {
		It("cenário Alice: bone-march → choir-silence", func() {
			alice := e.signup("alice", entities.FactionBoneMarch)

			boneMarch := e.stats(entities.FactionBoneMarch)
			Expect(boneMarch.MemberCount).To(BeEquivalentTo(1))
			Expect(boneMarch.WeeklyGrowth).To(BeEquivalentTo(1))

			e.publisher.Reset()
			user, err := e.users.ChangeFaction(e.ctx, alice.ID, "choir-silence")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Faction).To(Equal(entities.FactionChoirSilence))

			boneMarch = e.stats(entities.FactionBoneMarch)
			Expect(boneMarch.MemberCount).To(BeZero())
			Expect(boneMarch.WeeklyGrowth).To(BeEquivalentTo(1))

			choir := e.stats(entities.FactionChoirSilence)
			Expect(choir.MemberCount).To(BeEquivalentTo(1))
			Expect(choir.WeeklyGrowth).To(BeZero())

			published := e.publisher.OfType(events.TypeStatsUpdated)
			Expect(published).To(HaveLen(2))
			Expect(published[0].Faction).To(Equal(entities.FactionBoneMarch))
			Expect(published[1].Faction).To(Equal(entities.FactionChoirSilence))

			stored, err := e.userRepo.FindByID(e.ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Faction).To(Equal(entities.FactionChoirSilence))
		})

		It("recusa a mesma facção", func() {
			alice := e.signup("alice", entities.FactionBoneMarch)
			_, err := e.users.ChangeFaction(e.ctx, alice.ID, "bone-march")
			Expect(err).To(MatchError(errors.ErrAlreadyInFaction))
		})

		It("recusa facção inválida", func() {
			alice := e.signup("alice", entities.FactionBoneMarch)
			_, err := e.users.ChangeFaction(e.ctx, alice.ID, "iron-legion")
			Expect(err).To(MatchError(errors.ErrInvalidFaction))
			Expect(e.stats(entities.FactionBoneMarch).MemberCount).To(BeEquivalentTo(1))
		})
	})

	Describe("perfil", func() {
		It("recusa username já usado por outro usuário", func() {
			e.signup("alice", entities.FactionBoneMarch)
			bram := e.signup("bram", entities.FactionBoneMarch)

			_, err := e.users.UpdateProfile(e.ctx, bram.ID, services.UpdateProfileInput{
				Username: "alice",
				Email:    "bram@gravegrounds.gg",
			})
			Expect(err).To(MatchError(errors.ErrUsernameOrEmailTaken))
		})

		It("atualiza username e email", func() {
			alice := e.signup("alice", entities.FactionBoneMarch)

			user, err := e.users.UpdateProfile(e.ctx, alice.ID, services.UpdateProfileInput{
				Username: "alice_the_pale",
				Email:    "pale@gravegrounds.gg",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("alice_the_pale"))

			_, err = e.users.Login(e.ctx, "pale@gravegrounds.gg", "secret-password")
			Expect(err).NotTo(HaveOccurred())
		})

		It("valida a visibilidade", func() {
			alice := e.signup("alice", entities.FactionBoneMarch)
			_, err := e.users.UpdateSettings(e.ctx, alice.ID, "friends")
			Expect(err).To(MatchError(errors.ErrInvalidVisibility))
		})

		It("esconde perfis privados", func() {
			alice := e.signup("alice", entities.FactionBoneMarch)
			_, err := e.users.UpdateSettings(e.ctx, alice.ID, "private")
			Expect(err).NotTo(HaveOccurred())

			_, err = e.users.GetPublicProfile(e.ctx, alice.ID)
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("troca o avatar e remove o anterior", func() {
			alice := e.signup("alice", entities.FactionBoneMarch)

			first, err := e.users.UploadAvatar(e.ctx, alice.ID, e.png())
			Expect(err).NotTo(HaveOccurred())
			firstKey := *first.AvatarKey

			second, err := e.users.UploadAvatar(e.ctx, alice.ID, e.png())
			Expect(err).NotTo(HaveOccurred())
			Expect(*second.AvatarKey).NotTo(Equal(firstKey))

			Expect(e.blobs.Len()).To(Equal(1))
			Expect(e.users.AvatarURL(second)).NotTo(BeNil())
		})
	})

	Describe("diretório de usuários", func() {
		var alice *entities.User

		BeforeEach(func() {
			alice = e.signup("alice", entities.FactionBoneMarch)
			e.signup("bonelord", entities.FactionBoneMarch)
			e.signup("bonnie", entities.FactionChoirSilence)
			hidden := e.signup("bonehidden", entities.FactionBoneMarch)
			_, err := e.users.UpdateSettings(e.ctx, hidden.ID, "private")
			Expect(err).NotTo(HaveOccurred())
		})

		It("busca por trecho do username ignorando maiúsculas", func() {
			found, err := e.users.Search(e.ctx, alice.ID, "BON", "", services.ListFilters{})
			Expect(err).NotTo(HaveOccurred())

			var names []string
			for _, u := range found {
				names = append(names, u.Username)
			}
			Expect(names).To(ConsistOf("bonelord", "bonnie"))
		})

		It("filtra por facção", func() {
			found, err := e.users.Search(e.ctx, alice.ID, "bon", "choir-silence", services.ListFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].Username).To(Equal("bonnie"))
		})

		It("lista membros públicos de uma facção sem incluir o solicitante", func() {
			found, err := e.users.ListByFaction(e.ctx, alice.ID, "bone-march", services.ListFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].Username).To(Equal("bonelord"))
		})

		It("respeita o limite", func() {
			found, err := e.users.Recent(e.ctx, alice.ID, services.ListFilters{Limit: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
		})
	})

	Describe("DeleteAccount", func() {
		It("remove galeria, usuário e membro da facção", func() {
			alice := e.signup("alice", entities.FactionBoneMarch)
			_, err := e.users.UploadAvatar(e.ctx, alice.ID, e.png())
			Expect(err).NotTo(HaveOccurred())

			item, err := e.gallery.Upload(e.ctx, services.UploadInput{
				OwnerID:       alice.ID,
				CharacterName: "Lich of the Ninth Gate",
				Image:         e.png(),
			})
			Expect(err).NotTo(HaveOccurred())
			e.publisher.Reset()

			Expect(e.users.DeleteAccount(e.ctx, alice.ID)).To(Succeed())

			stats := e.stats(entities.FactionBoneMarch)
			Expect(stats.MemberCount).To(BeZero())
			Expect(stats.WeeklyGrowth).To(BeEquivalentTo(1))

			_, err = e.users.GetUser(e.ctx, alice.ID)
			Expect(err).To(MatchError(errors.ErrUserNotFound))

			items, err := e.gallery.ListAll(e.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(BeEmpty())
			Expect(e.blobs.Len()).To(BeZero())

			deleted := e.publisher.OfType(events.TypeGalleryUpdated)
			Expect(deleted).To(HaveLen(1))
			Expect(deleted[0].ArtworkID).To(Equal(item.ID))
			Expect(e.publisher.OfType(events.TypeStatsUpdated)).To(HaveLen(1))
		})

		It("não remove quando a facção mudou depois da leitura", func() {
			alice := e.signup("alice", entities.FactionBoneMarch)

			// a troca concorrente já foi gravada, mas a exclusão ainda enxerga bone-march
			_, err := e.users.ChangeFaction(e.ctx, alice.ID, string(entities.FactionChoirSilence))
			Expect(err).NotTo(HaveOccurred())
			users := services.NewUserService(services.UserServiceDeps{
				UserRepo:   &staleFactionRepo{UserRepository: e.userRepo, faction: entities.FactionBoneMarch},
				UnitOfWork: e.uow,
				Factions:   e.factions,
				Gallery:    e.gallery,
				Images:     services.NewImageIntake(e.blobs, e.scanner, 1024, 0.5, logging.NewNopLogger()),
				Logger:     logging.NewNopLogger(),
			})
			e.publisher.Reset()

			err = users.DeleteAccount(e.ctx, alice.ID)
			Expect(err).To(MatchError(errors.ErrConcurrentUpdate))

			Expect(e.stats(entities.FactionBoneMarch).MemberCount).To(BeZero())
			Expect(e.stats(entities.FactionChoirSilence).MemberCount).To(BeEquivalentTo(1))
			counts, err := e.userRepo.CountByFaction(e.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts[entities.FactionChoirSilence]).To(BeEquivalentTo(1))
			Expect(e.publisher.Events()).To(BeEmpty())

			_, err = e.users.GetUser(e.ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

// staleFactionRepo devolve o usuário com uma facção desatualizada
type staleFactionRepo struct {
	repositories.UserRepository
	faction entities.Faction
}

func (r *staleFactionRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := r.UserRepository.FindByID(ctx, id)
	if user != nil {
		user.Faction = r.faction
	}
	return user, err
}

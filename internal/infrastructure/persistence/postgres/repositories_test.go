package postgres_test

import (
	"context"
	stderrors "errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/repositories"
	"github.com/rafabene/gravegrounds-backend/internal/domain/valueobjects"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/gravegrounds-backend/internal/testutil"
)

func newUser(username string, faction entities.Faction) *entities.User {
	email, err := valueobjects.NewEmail(username + "@gravegrounds.gg")
	Expect(err).NotTo(HaveOccurred())
	now := time.Now()
	return &entities.User{
		Username:          username,
		Email:             email,
		PasswordHash:      "hash",
		Faction:           faction,
		Role:              entities.RoleMember,
		ProfileVisibility: entities.VisibilityPublic,
		FactionJoinedAt:   now,
		LastActivityAt:    now,
	}
}

var _ = Describe("Repositories", func() {
	var (
		ctx   context.Context
		db    *gorm.DB
		users repositories.UserRepository
		stats repositories.FactionStatsRepository
		items repositories.GalleryRepository
		uow   *postgres.UnitOfWork
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = testutil.OpenDB(GinkgoT())
		users = postgres.NewUserRepository(db)
		stats = postgres.NewFactionStatsRepository(db)
		items = postgres.NewGalleryRepository(db)
		uow = postgres.NewUnitOfWork(db).(*postgres.UnitOfWork)
	})

	Describe("FactionStatsRepository", func() {
		It("Seed é idempotente e não zera contadores existentes", func() {
			_, err := stats.ApplyDelta(ctx, entities.FactionBoneMarch, 4, 2)
			Expect(err).NotTo(HaveOccurred())

			Expect(stats.Seed(ctx, entities.AllFactions())).To(Succeed())

			all, err := stats.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(7))

			bm, err := stats.Find(ctx, entities.FactionBoneMarch)
			Expect(err).NotTo(HaveOccurred())
			Expect(bm.MemberCount).To(BeEquivalentTo(4))
		})

		It("ApplyDelta soma sobre o valor atual e aceita deltas negativos", func() {
			_, err := stats.ApplyDelta(ctx, entities.FactionChoirSilence, 3, 3)
			Expect(err).NotTo(HaveOccurred())

			after, err := stats.ApplyDelta(ctx, entities.FactionChoirSilence, -1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(after.MemberCount).To(BeEquivalentTo(2))
			Expect(after.WeeklyGrowth).To(BeEquivalentTo(3))
			Expect(after.LastUpdated).NotTo(BeZero())
		})

		It("ApplyDelta sem linha semeada retorna ErrFactionNotFound", func() {
			Expect(db.Exec("DELETE FROM faction_stats WHERE faction = ?", "hollowed-redeemed").Error).To(Succeed())

			_, err := stats.ApplyDelta(ctx, entities.FactionHollowedRedeemed, 1, 1)
			Expect(err).To(MatchError(errors.ErrFactionNotFound))
		})
	})

	Describe("UserRepository", func() {
		It("traduz violação de unicidade", func() {
			Expect(users.Create(ctx, newUser("alice", entities.FactionBoneMarch))).To(Succeed())
			err := users.Create(ctx, newUser("alice", entities.FactionBoneMarch))
			Expect(err).To(MatchError(errors.ErrUsernameOrEmailTaken))
		})

		It("ChangeFaction só altera quando a facção de origem confere", func() {
			alice := newUser("alice", entities.FactionBoneMarch)
			Expect(users.Create(ctx, alice)).To(Succeed())

			changed, err := users.ChangeFaction(ctx, alice.ID, entities.FactionChoirSilence, entities.FactionSwarmMireborn, time.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeFalse())

			changed, err = users.ChangeFaction(ctx, alice.ID, entities.FactionBoneMarch, entities.FactionSwarmMireborn, time.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())

			stored, err := users.FindByID(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Faction).To(Equal(entities.FactionSwarmMireborn))
		})

		It("Delete só remove quando a facção lida confere", func() {
			alice := newUser("alice", entities.FactionBoneMarch)
			Expect(users.Create(ctx, alice)).To(Succeed())

			deleted, err := users.Delete(ctx, alice.ID, entities.FactionChoirSilence)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())

			deleted, err = users.Delete(ctx, alice.ID, entities.FactionBoneMarch)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())

			stored, err := users.FindByID(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(BeNil())
		})

		It("trata curingas do LIKE como texto", func() {
			Expect(users.Create(ctx, newUser("bone_lord", entities.FactionBoneMarch))).To(Succeed())
			Expect(users.Create(ctx, newUser("bonexlord", entities.FactionBoneMarch))).To(Succeed())

			found, err := users.List(ctx, repositories.UserFilters{Query: "e_l"})
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].Username).To(Equal("bone_lord"))
		})

		It("conta usuários por facção", func() {
			Expect(users.Create(ctx, newUser("alice", entities.FactionBoneMarch))).To(Succeed())
			Expect(users.Create(ctx, newUser("bram", entities.FactionBoneMarch))).To(Succeed())
			Expect(users.Create(ctx, newUser("cyra", entities.FactionChoirSilence))).To(Succeed())

			counts, err := users.CountByFaction(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(HaveKeyWithValue(entities.FactionBoneMarch, int64(2)))
			Expect(counts).To(HaveKeyWithValue(entities.FactionChoirSilence, int64(1)))
			Expect(counts).NotTo(HaveKey(entities.FactionSwarmMireborn))
		})
	})

	Describe("GalleryRepository", func() {
		It("Delete de item inexistente retorna ErrGalleryItemNotFound", func() {
			err := items.Delete(ctx, "missing")
			Expect(err).To(MatchError(errors.ErrGalleryItemNotFound))
		})

		It("remove todos os itens de um autor", func() {
			alice := newUser("alice", entities.FactionBoneMarch)
			Expect(users.Create(ctx, alice)).To(Succeed())

			for _, name := range []string{"One", "Two"} {
				key := name + ".png"
				Expect(items.Create(ctx, &entities.GalleryItem{
					OwnerID:       alice.ID,
					Username:      alice.Username,
					Faction:       alice.Faction,
					CharacterName: name,
					ImageKey:      &key,
				})).To(Succeed())
			}

			owned, err := items.ListByOwner(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(owned).To(HaveLen(2))
			Expect(owned[0].CharacterName).To(Equal("Two"))

			Expect(items.DeleteByOwner(ctx, alice.ID)).To(Succeed())
			owned, err = items.ListByOwner(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(owned).To(BeEmpty())
		})
	})

	Describe("UnitOfWork", func() {
		It("AfterCommit sem transação executa imediatamente", func() {
			ran := false
			uow.AfterCommit(ctx, func() { ran = true })
			Expect(ran).To(BeTrue())
		})

		It("AfterCommit dentro da transação espera o commit", func() {
			ran := false
			err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
				uow.AfterCommit(txCtx, func() { ran = true })
				Expect(ran).To(BeFalse())
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ran).To(BeTrue())
		})

		It("rollback descarta os hooks e as escritas", func() {
			ran := false
			boom := stderrors.New("boom")
			err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
				if _, err := stats.ApplyDelta(txCtx, entities.FactionBoneMarch, 1, 1); err != nil {
					return err
				}
				uow.AfterCommit(txCtx, func() { ran = true })
				return boom
			})
			Expect(err).To(MatchError(boom))
			Expect(ran).To(BeFalse())

			bm, err := stats.Find(ctx, entities.FactionBoneMarch)
			Expect(err).NotTo(HaveOccurred())
			Expect(bm.MemberCount).To(BeZero())
		})

		It("transações aninhadas reutilizam a externa", func() {
			var order []string
			err := uow.WithTransaction(ctx, func(outer context.Context) error {
				return uow.WithTransaction(outer, func(inner context.Context) error {
					uow.AfterCommit(inner, func() { order = append(order, "inner") })
					Expect(order).To(BeEmpty())
					return nil
				})
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(order).To(Equal([]string{"inner"}))
		})
	})
})

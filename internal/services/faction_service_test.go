package services_test

import (
	"context"
	stderrors "errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/events"
)

var _ = Describe("FactionService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	Describe("ApplyDelta", func() {
		It("rejeita facção inválida sem escrever nem publicar", func() {
			_, err := e.factions.ApplyDelta(e.ctx, entities.Faction("iron-legion"), 1, 1)
			Expect(err).To(MatchError(errors.ErrInvalidFaction))
			Expect(e.publisher.Events()).To(BeEmpty())
		})

		It("retorna o estado relido e publica statsUpdated", func() {
			stats, err := e.factions.ApplyDelta(e.ctx, entities.FactionBoneMarch, 2, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.MemberCount).To(BeEquivalentTo(2))
			Expect(stats.WeeklyGrowth).To(BeEquivalentTo(1))

			published := e.publisher.OfType(events.TypeStatsUpdated)
			Expect(published).To(HaveLen(1))
			Expect(published[0].Faction).To(Equal(entities.FactionBoneMarch))
			Expect(*published[0].MemberCount).To(BeEquivalentTo(2))
			Expect(*published[0].WeeklyGrowth).To(BeEquivalentTo(1))
		})

		It("publica somente depois do commit", func() {
			err := e.uow.WithTransaction(e.ctx, func(txCtx context.Context) error {
				_, err := e.factions.ApplyDelta(txCtx, entities.FactionSwarmMireborn, 1, 0)
				Expect(e.publisher.Events()).To(BeEmpty())
				return err
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(e.publisher.OfType(events.TypeStatsUpdated)).To(HaveLen(1))
		})

		It("não publica nem grava quando a transação é desfeita", func() {
			boom := stderrors.New("boom")
			err := e.uow.WithTransaction(e.ctx, func(txCtx context.Context) error {
				if _, err := e.factions.ApplyDelta(txCtx, entities.FactionSwarmMireborn, 1, 1); err != nil {
					return err
				}
				return boom
			})
			Expect(err).To(MatchError(boom))
			Expect(e.publisher.Events()).To(BeEmpty())
			Expect(e.stats(entities.FactionSwarmMireborn).MemberCount).To(BeZero())
		})

		It("soma exatamente K deltas concorrentes", func() {
			const k = 25
			var wg sync.WaitGroup
			for i := 0; i < k; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					_, err := e.factions.ApplyDelta(e.ctx, entities.FactionDawnflameOrder, 1, 1)
					Expect(err).NotTo(HaveOccurred())
				}()
			}
			wg.Wait()

			stats := e.stats(entities.FactionDawnflameOrder)
			Expect(stats.MemberCount).To(BeEquivalentTo(k))
			Expect(stats.WeeklyGrowth).To(BeEquivalentTo(k))
			Expect(e.publisher.OfType(events.TypeStatsUpdated)).To(HaveLen(k))
		})
	})

	Describe("consultas", func() {
		BeforeEach(func() {
			_, err := e.factions.ApplyDelta(e.ctx, entities.FactionChoirSilence, 5, 0)
			Expect(err).NotTo(HaveOccurred())
			_, err = e.factions.ApplyDelta(e.ctx, entities.FactionBoneMarch, 3, 0)
			Expect(err).NotTo(HaveOccurred())
		})

		It("lista por member_count decrescente e facção crescente", func() {
			all, err := e.factions.List(e.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(len(entities.AllFactions())))
			Expect(all[0].Faction).To(Equal(entities.FactionChoirSilence))
			Expect(all[1].Faction).To(Equal(entities.FactionBoneMarch))
			Expect(all[2].Faction).To(Equal(entities.FactionCultWitheredFlame))
		})

		It("calcula o ranking da facção", func() {
			standing, err := e.factions.GetStanding(e.ctx, "bone-march")
			Expect(err).NotTo(HaveOccurred())
			Expect(standing.Rank).To(Equal(2))
			Expect(standing.MemberCount).To(BeEquivalentTo(3))
		})

		It("retorna not found para facção desconhecida", func() {
			_, err := e.factions.Get(e.ctx, "iron-legion")
			Expect(err).To(MatchError(errors.ErrFactionNotFound))
		})
	})

	Describe("Reconcile", func() {
		It("corrige member_count divergente sem tocar no crescimento semanal", func() {
			e.signup("mortis", entities.FactionGravewroughtCourt)
			e.signup("vexa", entities.FactionGravewroughtCourt)

			// deriva artificial
			_, err := e.statsRepo.ApplyDelta(e.ctx, entities.FactionGravewroughtCourt, 5, 0)
			Expect(err).NotTo(HaveOccurred())
			e.publisher.Reset()

			result, err := e.factions.Reconcile(e.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(len(entities.AllFactions())))

			stats := e.stats(entities.FactionGravewroughtCourt)
			Expect(stats.MemberCount).To(BeEquivalentTo(2))
			Expect(stats.WeeklyGrowth).To(BeEquivalentTo(2))

			published := e.publisher.OfType(events.TypeStatsUpdated)
			Expect(published).To(HaveLen(1))
			Expect(published[0].Faction).To(Equal(entities.FactionGravewroughtCourt))
		})

		It("não publica nada quando os contadores já batem", func() {
			e.signup("mortis", entities.FactionGravewroughtCourt)
			e.publisher.Reset()

			_, err := e.factions.Reconcile(e.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.publisher.Events()).To(BeEmpty())
		})
	})
})

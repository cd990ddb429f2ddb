package realtime_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/domain/events"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/logging"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/realtime"
)

type stubSnapshots struct {
	mu    sync.Mutex
	stats []*entities.FactionStats
}

func (s *stubSnapshots) Snapshot(ctx context.Context) ([]*entities.FactionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.FactionStats, len(s.stats))
	copy(out, s.stats)
	return out, nil
}

func (s *stubSnapshots) set(stats ...*entities.FactionStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
}

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func readEnvelope(conn *websocket.Conn) envelope {
	GinkgoHelper()
	Expect(conn.SetReadDeadline(time.Now().Add(2 * time.Second))).To(Succeed())
	var env envelope
	Expect(conn.ReadJSON(&env)).To(Succeed())
	return env
}

var _ = Describe("Hub", func() {
	var (
		hub       *realtime.Hub
		snapshots *stubSnapshots
		server    *httptest.Server
		wsURL     string
	)

	dial := func() *websocket.Conn {
		GinkgoHelper()
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		// alguns specs fecham a conexão antes; o segundo Close falha e é ignorado
		DeferCleanup(func() { _ = conn.Close() })
		return conn
	}

	serve := func(provider ports.SnapshotProvider) {
		hub = realtime.NewHub(provider, logging.NewNopLogger(), []string{"*"})
		server = httptest.NewServer(http.HandlerFunc(hub.ServeWS))
		wsURL = "ws" + strings.TrimPrefix(server.URL, "http")

		h, s := hub, server
		DeferCleanup(func() {
			h.Close()
			s.Close()
		})
	}

	BeforeEach(func() {
		snapshots = &stubSnapshots{}
		snapshots.set(&entities.FactionStats{Faction: entities.FactionBoneMarch, MemberCount: 3, WeeklyGrowth: 1})
		serve(snapshots)
	})

	It("envia o snapshot completo ao conectar", func() {
		conn := dial()

		env := readEnvelope(conn)
		Expect(env.Event).To(Equal(realtime.EventFactionStats))

		var stats []entities.FactionStats
		Expect(json.Unmarshal(env.Data, &stats)).To(Succeed())
		Expect(stats).To(HaveLen(1))
		Expect(stats[0].Faction).To(Equal(entities.FactionBoneMarch))
		Expect(stats[0].MemberCount).To(BeEquivalentTo(3))
	})

	It("reflete no snapshot um evento emitido antes da conexão", func() {
		snapshots.set(&entities.FactionStats{Faction: entities.FactionBoneMarch, MemberCount: 4, WeeklyGrowth: 2})
		hub.Publish(events.StatsUpdated(&entities.FactionStats{Faction: entities.FactionBoneMarch, MemberCount: 4, WeeklyGrowth: 2}, time.Now()))

		conn := dial()
		env := readEnvelope(conn)

		var stats []entities.FactionStats
		Expect(json.Unmarshal(env.Data, &stats)).To(Succeed())
		Expect(stats[0].MemberCount).To(BeEquivalentTo(4))
	})

	Describe("eventos publicados durante a leitura do snapshot", func() {
		var snapshotAt time.Time

		decodeUpdate := func(env envelope) events.FactionUpdate {
			GinkgoHelper()
			Expect(env.Event).To(Equal(realtime.EventFactionUpdate))
			var update events.FactionUpdate
			Expect(json.Unmarshal(env.Data, &update)).To(Succeed())
			return update
		}

		BeforeEach(func() {
			snapshotAt = time.Now()
		})

		It("chegam depois do snapshot quando são mais novos", func() {
			serve(ports.SnapshotFunc(func(ctx context.Context) ([]*entities.FactionStats, error) {
				hub.Publish(events.StatsUpdated(&entities.FactionStats{
					Faction:     entities.FactionBoneMarch,
					MemberCount: 5,
					LastUpdated: snapshotAt.Add(time.Millisecond),
				}, time.Now()))
				return []*entities.FactionStats{
					{Faction: entities.FactionBoneMarch, MemberCount: 4, LastUpdated: snapshotAt},
				}, nil
			}))

			conn := dial()

			env := readEnvelope(conn)
			Expect(env.Event).To(Equal(realtime.EventFactionStats))
			var stats []entities.FactionStats
			Expect(json.Unmarshal(env.Data, &stats)).To(Succeed())
			Expect(stats[0].MemberCount).To(BeEquivalentTo(4))

			update := decodeUpdate(readEnvelope(conn))
			Expect(update.Type).To(Equal(events.TypeStatsUpdated))
			Expect(*update.MemberCount).To(BeEquivalentTo(5))
		})

		It("são descartados quando o snapshot já é mais recente", func() {
			serve(ports.SnapshotFunc(func(ctx context.Context) ([]*entities.FactionStats, error) {
				hub.Publish(events.StatsUpdated(&entities.FactionStats{
					Faction:     entities.FactionBoneMarch,
					MemberCount: 3,
					LastUpdated: snapshotAt.Add(-time.Millisecond),
				}, time.Now()))
				hub.Publish(events.MemberAdded(entities.FactionChoirSilence, time.Now()))
				return []*entities.FactionStats{
					{Faction: entities.FactionBoneMarch, MemberCount: 4, LastUpdated: snapshotAt},
				}, nil
			}))

			conn := dial()

			Expect(readEnvelope(conn).Event).To(Equal(realtime.EventFactionStats))
			update := decodeUpdate(readEnvelope(conn))
			Expect(update.Type).To(Equal(events.TypeMemberAdded))
			Expect(update.Faction).To(Equal(entities.FactionChoirSilence))
		})
	})

	It("entrega eventos publicados a todos os clientes", func() {
		a, b := dial(), dial()
		readEnvelope(a)
		readEnvelope(b)
		Eventually(hub.ClientCount).Should(Equal(2))

		hub.Publish(events.MemberAdded(entities.FactionChoirSilence, time.Now()))

		for _, conn := range []*websocket.Conn{a, b} {
			env := readEnvelope(conn)
			Expect(env.Event).To(Equal(realtime.EventFactionUpdate))

			var update events.FactionUpdate
			Expect(json.Unmarshal(env.Data, &update)).To(Succeed())
			Expect(update.Type).To(Equal(events.TypeMemberAdded))
			Expect(update.Faction).To(Equal(entities.FactionChoirSilence))
		}
	})

	It("preserva a ordem das emissões", func() {
		conn := dial()
		readEnvelope(conn)
		Eventually(hub.ClientCount).Should(Equal(1))

		for i := int64(1); i <= 5; i++ {
			hub.Publish(events.StatsUpdated(&entities.FactionStats{Faction: entities.FactionBoneMarch, MemberCount: i}, time.Now()))
		}

		for i := int64(1); i <= 5; i++ {
			var update events.FactionUpdate
			Expect(json.Unmarshal(readEnvelope(conn).Data, &update)).To(Succeed())
			Expect(*update.MemberCount).To(Equal(i))
		}
	})

	It("remove o cliente do registro ao desconectar", func() {
		conn := dial()
		readEnvelope(conn)
		Eventually(hub.ClientCount).Should(Equal(1))

		Expect(conn.Close()).To(Succeed())
		Eventually(hub.ClientCount).Should(BeZero())
	})

	It("não bloqueia o publicador quando um cliente não consome", func() {
		conn := dial()
		readEnvelope(conn)
		Eventually(hub.ClientCount).Should(Equal(1))

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 1000; i++ {
				hub.Publish(events.MemberAdded(entities.FactionBoneMarch, time.Now()))
			}
		}()
		Eventually(done).Should(BeClosed())
	})

	It("desconecta todos no Close", func() {
		conn := dial()
		readEnvelope(conn)
		Eventually(hub.ClientCount).Should(Equal(1))

		hub.Close()
		Expect(hub.ClientCount()).To(BeZero())

		Expect(conn.SetReadDeadline(time.Now().Add(2 * time.Second))).To(Succeed())
		_, _, err := conn.ReadMessage()
		Expect(websocket.IsCloseError(err, websocket.CloseGoingAway)).To(BeTrue())
	})
})

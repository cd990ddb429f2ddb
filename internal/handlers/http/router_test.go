package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
	"github.com/rafabene/gravegrounds-backend/internal/testutil"
)

var _ = Describe("Router", func() {
	var a *api

	BeforeEach(func() {
		a = newAPI(apiOptions{})
	})

	Describe("cadastro e troca de facção", func() {
		It("mantém os contadores coerentes no cenário da Alice", func() {
			token := a.signup("alice", "bone-march")

			bone := a.stats("bone-march")
			Expect(bone.MemberCount).To(BeEquivalentTo(1))
			Expect(bone.WeeklyGrowth).To(BeEquivalentTo(1))

			w := a.do(http.MethodPut, "/api/profile/faction", token, map[string]string{"newFaction": "choir-silence"})
			Expect(w.Code).To(Equal(http.StatusOK), w.Body.String())

			var body struct {
				User struct {
					Faction string `json:"faction"`
				} `json:"user"`
			}
			decode(w, &body)
			Expect(body.User.Faction).To(Equal("choir-silence"))

			bone = a.stats("bone-march")
			Expect(bone.MemberCount).To(BeEquivalentTo(0))
			Expect(bone.WeeklyGrowth).To(BeEquivalentTo(1))

			choir := a.stats("choir-silence")
			Expect(choir.MemberCount).To(BeEquivalentTo(1))
			Expect(choir.WeeklyGrowth).To(BeEquivalentTo(0))
		})

		It("rejeita facção inválida com problem document e erro por campo", func() {
			w := a.do(http.MethodPost, "/api/signup", "", map[string]string{
				"username": "alice",
				"email":    "alice@gravegrounds.gg",
				"password": "secret-password",
				"faction":  "iron-legion",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			p := problem(w)
			Expect(p.Type).To(Equal("https://api.gravegrounds.test/problems/validation-error"))
			Expect(p.Instance).To(Equal("/api/signup"))
			Expect(p.Errors).To(HaveLen(1))
			Expect(p.Errors[0].Field).To(Equal("faction"))
			Expect(p.Errors[0].Tag).To(Equal("faction"))
		})

		It("responde 409 para username repetido", func() {
			a.signup("alice", "bone-march")

			w := a.do(http.MethodPost, "/api/signup", "", map[string]string{
				"username": "alice",
				"email":    "other@gravegrounds.gg",
				"password": "secret-password",
				"faction":  "bone-march",
			})

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(problem(w).Detail).To(Equal("Username or email already taken"))
			Expect(a.stats("bone-march").MemberCount).To(BeEquivalentTo(1))
		})

		It("responde 400 ao trocar para a facção atual", func() {
			token := a.signup("alice", "bone-march")

			w := a.do(http.MethodPut, "/api/profile/faction", token, map[string]string{"newFaction": "bone-march"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(problem(w).Detail).To(Equal("You are already a member of this faction"))
		})
	})

	Describe("autenticação", func() {
		It("exige token e traduz a resposta", func() {
			w := a.do(http.MethodGet, "/api/profile", "", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(problem(w).Detail).To(Equal("Access token required"))

			w = a.do(http.MethodGet, "/api/profile?lang=pt-BR", "", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(problem(w).Detail).To(Equal("Token de acesso obrigatório"))
		})

		It("faz login com as credenciais do cadastro", func() {
			a.signup("alice", "bone-march")

			w := a.do(http.MethodPost, "/api/login", "", map[string]string{
				"email":    "alice@gravegrounds.gg",
				"password": "secret-password",
			})
			Expect(w.Code).To(Equal(http.StatusOK))

			w = a.do(http.MethodPost, "/api/login", "", map[string]string{
				"email":    "alice@gravegrounds.gg",
				"password": "wrong-password",
			})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("hook administrativo", func() {
		It("recusa membros comuns", func() {
			token := a.signup("alice", "bone-march")

			w := a.do(http.MethodPost, "/api/admin/update-faction", token, map[string]any{
				"faction":      "bone-march",
				"memberChange": 5,
			})

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(a.stats("bone-march").MemberCount).To(BeEquivalentTo(1))
		})

		It("aplica deltas, inclusive negativos, para admins", func() {
			token := a.signupAdmin()

			w := a.do(http.MethodPost, "/api/admin/update-faction", token, map[string]any{
				"faction":            "swarm-mireborn",
				"memberChange":       3,
				"weeklyGrowthChange": -2,
			})
			Expect(w.Code).To(Equal(http.StatusOK), w.Body.String())

			var body struct {
				Faction statsBody `json:"faction"`
			}
			decode(w, &body)
			Expect(body.Faction.MemberCount).To(BeEquivalentTo(3))
			Expect(body.Faction.WeeklyGrowth).To(BeEquivalentTo(-2))
		})

		It("recontagem corrige o contador de membros", func() {
			token := a.signupAdmin()
			a.do(http.MethodPost, "/api/admin/update-faction", token, map[string]any{
				"faction":      "swarm-mireborn",
				"memberChange": 7,
			})

			w := a.do(http.MethodPost, "/api/admin/reconcile", token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(a.stats("swarm-mireborn").MemberCount).To(BeEquivalentTo(0))
			Expect(a.stats("dawnflame-order").MemberCount).To(BeEquivalentTo(1))
		})
	})

	Describe("facções", func() {
		It("lista as sete facções e informa o ranking", func() {
			a.signup("alice", "gravewrought-court")

			w := a.do(http.MethodGet, "/api/factions", "", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			var all []statsBody
			decode(w, &all)
			Expect(all).To(HaveLen(7))
			Expect(all[0].Faction).To(Equal("gravewrought-court"))

			w = a.do(http.MethodGet, "/api/factions/gravewrought-court/stats", "", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			var standing statsBody
			decode(w, &standing)
			Expect(standing.Rank).To(Equal(1))
		})

		It("responde 404 para facção desconhecida", func() {
			w := a.do(http.MethodGet, "/api/factions/iron-legion", "", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(problem(w).Detail).To(Equal("Faction not found"))
		})
	})

	Describe("galeria", func() {
		upload := func(token string, fields map[string]string) *httptest.ResponseRecorder {
			return a.serve(uploadRequest("/api/gallery/upload", token, "characterImage", testutil.PNG, fields))
		}

		It("publica, lista e só deixa o autor remover", func() {
			alice := a.signup("alice", "bone-march")
			bob := a.signup("bob", "bone-march")

			w := upload(alice, map[string]string{"characterName": "Ossuary Knight", "faction": "bone-march"})
			Expect(w.Code).To(Equal(http.StatusOK), w.Body.String())
			var created struct {
				ID       string  `json:"id"`
				ImageURL *string `json:"imageUrl"`
			}
			decode(w, &created)
			Expect(created.ImageURL).NotTo(BeNil())

			w = a.do(http.MethodGet, "/api/gallery", "", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Ossuary Knight"))

			w = a.do(http.MethodDelete, "/api/gallery/"+created.ID, bob, nil)
			Expect(w.Code).To(Equal(http.StatusForbidden))

			w = a.do(http.MethodDelete, "/api/gallery/"+created.ID, alice, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"deletedId":"` + created.ID + `"}`))

			w = a.do(http.MethodGet, "/api/gallery/faction/bone-march", "", nil)
			Expect(w.Body.String()).To(MatchJSON(`[]`))
		})

		It("recusa facção diferente da atual do autor", func() {
			alice := a.signup("alice", "bone-march")

			w := upload(alice, map[string]string{"characterName": "Ossuary Knight", "faction": "choir-silence"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(problem(w).Detail).To(Equal("You can only upload artwork for your current faction"))
		})

		It("rejeita imagem imprópria com os detalhes da moderação", func() {
			alice := a.signup("alice", "bone-march")
			a.scanner.Verdict = ports.ScanVerdict{Unsafe: true, Confidence: 0.93, DetectedClass: "Porn", Reason: "explicit"}

			w := upload(alice, map[string]string{"characterName": "Ossuary Knight"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			p := problem(w)
			Expect(p.Type).To(HaveSuffix("/problems/unsafe-content"))
			Expect(p.Meta).To(HaveKeyWithValue("detectedClass", "Porn"))
			Expect(p.Meta).To(HaveKeyWithValue("confidence", 0.93))
			Expect(a.blobs.Len()).To(Equal(0))
		})

		It("exige a imagem", func() {
			alice := a.signup("alice", "bone-march")

			w := a.serve(uploadRequest("/api/gallery/upload", alice, "characterImage", nil, map[string]string{"characterName": "Ossuary Knight"}))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(problem(w).Detail).To(Equal("An image file is required"))
		})
	})

	Describe("perfil", func() {
		It("envia avatar e o expõe no perfil", func() {
			alice := a.signup("alice", "bone-march")

			w := a.serve(uploadRequest("/api/profile/avatar", alice, "avatar", testutil.PNG, nil))
			Expect(w.Code).To(Equal(http.StatusOK), w.Body.String())
			var avatar struct {
				AvatarURL string `json:"avatarUrl"`
			}
			decode(w, &avatar)
			Expect(avatar.AvatarURL).To(HavePrefix("https://cdn.test/"))

			w = a.do(http.MethodGet, "/api/profile", alice, nil)
			Expect(w.Body.String()).To(ContainSubstring(avatar.AvatarURL))
		})

		It("remove a conta e decrementa a facção", func() {
			alice := a.signup("alice", "bone-march")

			w := a.do(http.MethodDelete, "/api/profile", alice, nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(a.stats("bone-march").MemberCount).To(BeEquivalentTo(0))
		})

		It("lista apenas perfis públicos de outros membros", func() {
			alice := a.signup("alice", "bone-march")
			bob := a.signup("bob", "bone-march")
			a.signup("carol", "bone-march")

			w := a.do(http.MethodPut, "/api/profile/settings", bob, map[string]string{"profileVisibility": "private"})
			Expect(w.Code).To(Equal(http.StatusOK))

			w = a.do(http.MethodGet, "/api/users/faction/bone-march", alice, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			var users []struct {
				Username string `json:"username"`
			}
			decode(w, &users)
			Expect(users).To(HaveLen(1))
			Expect(users[0].Username).To(Equal("carol"))
		})

		It("registra atividade e lista usuários recentes", func() {
			alice := a.signup("alice", "bone-march")
			bob := a.signup("bob", "choir-silence")

			w := a.do(http.MethodPut, "/api/users/activity", bob, nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = a.do(http.MethodPut, "/api/users/activity", "", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))

			w = a.do(http.MethodGet, "/api/users/recent", alice, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			var users []struct {
				Username string `json:"username"`
			}
			decode(w, &users)
			Expect(users).To(HaveLen(1))
			Expect(users[0].Username).To(Equal("bob"))
		})

		It("valida a visibilidade", func() {
			alice := a.signup("alice", "bone-march")

			w := a.do(http.MethodPut, "/api/profile/settings", alice, map[string]string{"profileVisibility": "friends"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(problem(w).Errors[0].Field).To(Equal("profileVisibility"))
		})
	})

	Describe("health", func() {
		It("responde ok com o banco disponível", func() {
			w := a.do(http.MethodGet, "/health", "", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"database":"ok"`))
		})
	})

	Describe("canal de broadcast", func() {
		It("envia o snapshot e depois os eventos de cadastro", func() {
			server := httptest.NewServer(a.router)
			DeferCleanup(server.Close)

			url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
			conn, _, err := websocket.DefaultDialer.Dial(url, nil)
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(conn.Close)

			read := func() map[string]json.RawMessage {
				GinkgoHelper()
				Expect(conn.SetReadDeadline(time.Now().Add(2 * time.Second))).To(Succeed())
				var msg map[string]json.RawMessage
				Expect(conn.ReadJSON(&msg)).To(Succeed())
				return msg
			}

			snapshot := read()
			Expect(string(snapshot["event"])).To(Equal(`"factionStats"`))

			a.signup("alice", "bone-march")

			first := read()
			Expect(string(first["event"])).To(Equal(`"factionUpdate"`))
			Expect(string(first["data"])).To(ContainSubstring(`"type":"statsUpdated"`))
			Expect(string(first["data"])).To(ContainSubstring(`"memberCount":1`))

			second := read()
			Expect(string(second["data"])).To(ContainSubstring(`"type":"memberAdded"`))
		})
	})
})

var _ = Describe("Rate limit", func() {
	It("responde 429 depois do limite por IP", func() {
		a := newAPI(apiOptions{rateLimit: 2})

		Expect(a.do(http.MethodGet, "/api/factions", "", nil).Code).To(Equal(http.StatusOK))
		Expect(a.do(http.MethodGet, "/api/factions", "", nil).Code).To(Equal(http.StatusOK))

		w := a.do(http.MethodGet, "/api/factions", "", nil)
		Expect(w.Code).To(Equal(http.StatusTooManyRequests))
		Expect(problem(w).Status).To(Equal(http.StatusTooManyRequests))

		// fora de /api não há limite
		Expect(a.do(http.MethodGet, "/health", "", nil).Code).To(Equal(http.StatusOK))
	})
})

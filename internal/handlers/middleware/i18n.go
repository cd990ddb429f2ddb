package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta o idioma da requisição e o devolve em Content-Language.
// Prioridade: ?lang=, Accept-Language (por peso q), idioma padrão.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := m.i18nService.MatchLanguage(c.Query("lang"))
		if !ok {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

type weightedLanguage struct {
	tag    string
	weight float64
}

// parseAcceptLanguage devolve o idioma suportado de maior peso.
// Exemplo: "fr;q=0.9,pt;q=0.8,en;q=0.1" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	var candidates []weightedLanguage
	for _, part := range strings.Split(acceptLang, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" || tag == "*" {
			continue
		}

		weight := 1.0
		if q, found := strings.CutPrefix(strings.TrimSpace(params), "q="); found {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil {
				continue
			}
			weight = parsed
		}
		if weight <= 0 {
			continue
		}
		candidates = append(candidates, weightedLanguage{tag: tag, weight: weight})
	}

	// estável: empates mantêm a ordem do header
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	for _, candidate := range candidates {
		if lang, ok := m.i18nService.MatchLanguage(candidate.tag); ok {
			return lang
		}
	}
	return ""
}

// Translate traduz key no idioma detectado para a requisição.
// Sem o middleware no contexto, devolve a própria chave.
func Translate(c *gin.Context, key string, params ...map[string]interface{}) string {
	service, ok := c.Value(I18nServiceContextKey).(*i18n.Service)
	if !ok {
		return key
	}
	return service.T(c.GetString(LanguageContextKey), key, params...)
}

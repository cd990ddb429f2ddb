package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// message é uma tradução; tmpl só existe quando o texto tem interpolação
type message struct {
	text string
	tmpl *template.Template
}

// Service gerencia traduções e internacionalização.
// As traduções são carregadas uma vez e nunca alteradas, então leituras concorrentes são seguras.
type Service struct {
	translations    map[string]map[string]message // [language][key]
	defaultLanguage string
}

// NewService cria um novo serviço de i18n
// fsys: sistema de arquivos contendo os arquivos JSON de tradução na raiz
// defaultLang: idioma padrão (fallback)
func NewService(fsys fs.FS, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	s := &Service{
		translations:    make(map[string]map[string]message, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var raw map[string]string
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		messages := make(map[string]message, len(raw))
		for key, text := range raw {
			msg := message{text: text}
			if strings.Contains(text, "{{") {
				// Templates inválidos são erro de carga, não de requisição
				msg.tmpl, err = template.New(key).Option("missingkey=zero").Parse(text)
				if err != nil {
					return nil, fmt.Errorf("invalid template %s in %s: %w", key, file, err)
				}
			}
			messages[key] = msg
		}
		s.translations[lang] = messages
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// NewEmbeddedService carrega os locales compilados no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	locales, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, err
	}
	return NewService(locales, defaultLang)
}

// T traduz uma chave para o idioma especificado, caindo para o idioma padrão e depois para a própria chave.
// Suporta interpolação de parâmetros usando templates Go ({{.Field}}, {{.Class}}, etc.)
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	msg, ok := s.lookup(lang, key)
	if !ok {
		return key
	}

	if msg.tmpl == nil || len(params) == 0 {
		return msg.text
	}

	var buf bytes.Buffer
	if err := msg.tmpl.Execute(&buf, params[0]); err != nil {
		return msg.text
	}
	return buf.String()
}

func (s *Service) lookup(lang, key string) (message, bool) {
	if msg, ok := s.translations[lang][key]; ok {
		return msg, true
	}
	msg, ok := s.translations[s.defaultLanguage][key]
	return msg, ok
}

// getTranslation devolve o texto bruto de uma chave em um idioma, sem fallback
func (s *Service) getTranslation(lang, key string) string {
	return s.translations[lang][key].text
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna a lista ordenada de idiomas suportados
func (s *Service) GetSupportedLanguages() []string {
	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.translations[lang]
	return ok
}

// MatchLanguage encontra o idioma suportado para uma tag: exato, sem diferenciar
// maiúsculas, ou pela língua base ("pt" e "pt-PT" casam com "pt-BR")
func (s *Service) MatchLanguage(tag string) (string, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", false
	}
	if s.IsLanguageSupported(tag) {
		return tag, true
	}

	base, _, _ := strings.Cut(tag, "-")
	for _, lang := range s.GetSupportedLanguages() {
		if strings.EqualFold(lang, tag) {
			return lang, true
		}
	}
	for _, lang := range s.GetSupportedLanguages() {
		langBase, _, _ := strings.Cut(lang, "-")
		if strings.EqualFold(langBase, base) {
			return lang, true
		}
	}
	return "", false
}

package services

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"

	"praise-board/internal/logger"
	"praise-board/internal/models"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var bundledLocales embed.FS

// fallbackLanguage supplies messages missing from any other catalogue
const fallbackLanguage = models.LangSimplifiedChinese

// Translator resolves UI strings for the active language. Bundled catalogues
// are overlaid with the editable files in the locales directory.
type Translator struct {
	dir    string
	logger logger.Logger

	mu        sync.RWMutex
	lang      models.Language
	localizer *i18n.Localizer
}

func NewTranslator(dir string, log logger.Logger) *Translator {
	t := &Translator{dir: dir, logger: log}
	if bundle, err := newBundle(); err != nil {
		log.Error("Translator", err, nil)
	} else {
		t.activate(bundle, fallbackLanguage)
	}
	return t
}

// Use switches the active language and reloads its catalogue from disk. An
// unreadable override file is reported but the bundled strings stay active.
func (t *Translator) Use(lang models.Language) error {
	if lang.Tag() == language.Und {
		return models.NewValidationError("language", lang, "unsupported language")
	}

	bundle, err := newBundle()
	if err != nil {
		return err
	}

	var overrideErr error
	if t.dir != "" {
		overrideErr = t.addOverrides(bundle, lang)
	}
	t.activate(bundle, lang)

	t.logger.Info("Translator", "language activated", map[string]interface{}{"language": string(lang)})
	return overrideErr
}

// Reload re-reads the active language file
func (t *Translator) Reload() error {
	return t.Use(t.Language())
}

func (t *Translator) Language() models.Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// LocaleFile is the override path for lang
func (t *Translator) LocaleFile(lang models.Language) string {
	return filepath.Join(t.dir, string(lang)+".json")
}

// T returns the message for key, falling back to the zh_CN string and
// finally to the key itself.
func (t *Translator) T(key string) string {
	return t.Tf(key, nil)
}

// Tf renders a message template such as "第{{.Number}}组"
func (t *Translator) Tf(key string, data map[string]interface{}) string {
	t.mu.RLock()
	localizer := t.localizer
	t.mu.RUnlock()

	if localizer == nil {
		return key
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return key
	}
	return msg
}

func (t *Translator) activate(bundle *i18n.Bundle, lang models.Language) {
	localizer := i18n.NewLocalizer(bundle, lang.Tag().String())

	t.mu.Lock()
	defer t.mu.Unlock()
	t.lang = lang
	t.localizer = localizer
}

// newBundle registers every bundled catalogue on top of the zh_CN strings
func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(fallbackLanguage.Tag())

	fallback, err := readBundledCatalogue(fallbackLanguage)
	if err != nil {
		return nil, err
	}

	for _, option := range models.Languages {
		messages, err := readBundledCatalogue(option.Code)
		if err != nil {
			return nil, err
		}
		// later messages replace earlier ones with the same ID
		if err := bundle.AddMessages(option.Tag, slices.Concat(fallback, messages)...); err != nil {
			return nil, fmt.Errorf("failed to register %s catalogue: %w", option.Code, err)
		}
	}
	return bundle, nil
}

func (t *Translator) addOverrides(bundle *i18n.Bundle, lang models.Language) error {
	path := t.LocaleFile(lang)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		t.logger.Warning("Translator", "locale file unreadable, using bundled strings", map[string]interface{}{"path": path, "error": err.Error()})
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	messages, err := parseCatalogue(data)
	if err != nil {
		t.logger.Warning("Translator", "locale file malformed, using bundled strings", map[string]interface{}{"path": path, "error": err.Error()})
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := bundle.AddMessages(lang.Tag(), messages...); err != nil {
		return fmt.Errorf("failed to register %s: %w", path, err)
	}
	return nil
}

func readBundledCatalogue(lang models.Language) ([]*i18n.Message, error) {
	data, err := bundledLocales.ReadFile("locales/" + string(lang) + ".json")
	if err != nil {
		return nil, fmt.Errorf("missing bundled catalogue %s: %w", lang, err)
	}
	return parseCatalogue(data)
}

// parseCatalogue reads a flat {"key": "text"} file. Empty strings are
// skipped so they fall through to the fallback language.
func parseCatalogue(data []byte) ([]*i18n.Message, error) {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	messages := make([]*i18n.Message, 0, len(keys))
	for _, key := range keys {
		if flat[key] == "" {
			continue
		}
		messages = append(messages, &i18n.Message{ID: key, Other: flat[key]})
	}
	return messages, nil
}

// EnsureLocales writes the bundled catalogue for every language whose file
// does not exist in dir yet, and returns the paths it created.
func EnsureLocales(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create locales directory: %w", err)
	}

	var created []string
	for _, option := range models.Languages {
		path := filepath.Join(dir, string(option.Code)+".json")
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return created, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		data, err := bundledLocales.ReadFile("locales/" + string(option.Code) + ".json")
		if err != nil {
			return created, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return created, fmt.Errorf("failed to write %s: %w", path, err)
		}
		created = append(created, path)
	}
	return created, nil
}

package ui

// Localization manages UI text translations. Core status lines coming from
// the browse service are deliberately not localized; they are exact literals
// the rest of the system (and the tests) rely on.
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyGo             = "go"
	KeySettings       = "settings"
	KeyLanguage       = "language"
	KeyEnterURL       = "enter_url"
	KeyHomeAddress    = "home_address"
	KeyRequestTimeout = "request_timeout"
	KeyShowLoading    = "show_loading"
	KeySidebarWidth   = "sidebar_width"
	KeyMaxBodySize    = "max_body_size"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeySettingsSaved  = "settings_saved"
	KeyToggleSource   = "toggle_source"
	KeyToggleSidebar  = "toggle_sidebar"
	KeyLinksHeader    = "links_header"
	KeyNoLinks        = "no_links"
	KeyOpenExternal   = "open_external"
	KeyCopyLink       = "copy_link"
	KeyLinkCopied     = "link_copied"
	KeyUntitledPage   = "untitled_page"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "PagePeek",
		KeyGo:             "Go",
		KeySettings:       "Settings",
		KeyLanguage:       "Language",
		KeyEnterURL:       "Enter URL (https://example.com)",
		KeyHomeAddress:    "Home Address",
		KeyRequestTimeout: "Request Timeout (seconds)",
		KeyShowLoading:    "Show loading status during fetch",
		KeySidebarWidth:   "Sidebar Width",
		KeyMaxBodySize:    "Max Page Size (MB)",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeySettingsSaved:  "Settings saved successfully!",
		KeyToggleSource:   "Toggle HTML source",
		KeyToggleSidebar:  "Toggle link sidebar",
		KeyLinksHeader:    "Links",
		KeyNoLinks:        "No links on this page",
		KeyOpenExternal:   "Open in system browser",
		KeyCopyLink:       "Copy link",
		KeyLinkCopied:     "Link copied",
		KeyUntitledPage:   "(untitled)",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "PagePeek",
		KeyGo:             "Перейти",
		KeySettings:       "Настройки",
		KeyLanguage:       "Язык",
		KeyEnterURL:       "Введите URL (https://example.com)",
		KeyHomeAddress:    "Домашний адрес",
		KeyRequestTimeout: "Тайм-аут запроса (секунды)",
		KeyShowLoading:    "Показывать статус загрузки",
		KeySidebarWidth:   "Ширина боковой панели",
		KeyMaxBodySize:    "Макс. размер страницы (МБ)",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeySettingsSaved:  "Настройки успешно сохранены!",
		KeyToggleSource:   "Показать/скрыть HTML",
		KeyToggleSidebar:  "Показать/скрыть панель ссылок",
		KeyLinksHeader:    "Ссылки",
		KeyNoLinks:        "На странице нет ссылок",
		KeyOpenExternal:   "Открыть в системном браузере",
		KeyCopyLink:       "Копировать ссылку",
		KeyLinkCopied:     "Ссылка скопирована",
		KeyUntitledPage:   "(без названия)",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "PagePeek",
		KeyGo:             "Ir",
		KeySettings:       "Configurações",
		KeyLanguage:       "Idioma",
		KeyEnterURL:       "Digite a URL (https://example.com)",
		KeyHomeAddress:    "Endereço Inicial",
		KeyRequestTimeout: "Tempo Limite (segundos)",
		KeyShowLoading:    "Mostrar status de carregamento",
		KeySidebarWidth:   "Largura da Barra Lateral",
		KeyMaxBodySize:    "Tamanho Máx. da Página (MB)",
		KeySave:           "Salvar",
		KeyCancel:         "Cancelar",
		KeySettingsSaved:  "Configurações salvas com sucesso!",
		KeyToggleSource:   "Alternar código HTML",
		KeyToggleSidebar:  "Alternar barra de links",
		KeyLinksHeader:    "Links",
		KeyNoLinks:        "Nenhum link nesta página",
		KeyOpenExternal:   "Abrir no navegador do sistema",
		KeyCopyLink:       "Copiar link",
		KeyLinkCopied:     "Link copiado",
		KeyUntitledPage:   "(sem título)",
	}
}

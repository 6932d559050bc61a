package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyFile             = "file"
	KeyOpenForm         = "open_form"
	KeyDemoForm         = "demo_form"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyAddRow           = "add_row"
	KeyRemoveRow        = "remove_row"
	KeyDynamicSection   = "dynamic_section"
	KeyDynamicFooter    = "dynamic_footer"
	KeyDynamicRow       = "dynamic_row"
	KeyRowSelected      = "row_selected"
	KeyValueChanged     = "value_changed"
	KeyFormLoaded       = "form_loaded"
	KeyErrorLoadingForm = "error_loading_form"
	KeyLayout           = "layout"
	KeyRowHeight        = "row_height"
	KeyHeaderHeight     = "header_height"
	KeyRecycleCells     = "recycle_cells"
	KeyDiagnostics      = "diagnostics"
	KeyLogLevel         = "log_level"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
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

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Former Demo",
		KeyFile:             "File",
		KeyOpenForm:         "Open Form…",
		KeyDemoForm:         "Demo Form",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyAddRow:           "Add row",
		KeyRemoveRow:        "Remove row",
		KeyDynamicSection:   "Dynamic rows",
		KeyDynamicFooter:    "Rows are added and removed at runtime",
		KeyDynamicRow:       "Row %d",
		KeyRowSelected:      "Selected %s at %s",
		KeyValueChanged:     "%s changed to %v",
		KeyFormLoaded:       "Loaded %s",
		KeyErrorLoadingForm: "Error loading form",
		KeyLayout:           "Layout",
		KeyRowHeight:        "Row height",
		KeyHeaderHeight:     "Header height",
		KeyRecycleCells:     "Recycle cells",
		KeyDiagnostics:      "Diagnostics",
		KeyLogLevel:         "Log level",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Демо Former",
		KeyFile:             "Файл",
		KeyOpenForm:         "Открыть форму…",
		KeyDemoForm:         "Демо-форма",
		KeySettings:         "Настройки",
		KeyLanguage:         "Язык",
		KeyAddRow:           "Добавить строку",
		KeyRemoveRow:        "Удалить строку",
		KeyDynamicSection:   "Динамические строки",
		KeyDynamicFooter:    "Строки добавляются и удаляются на лету",
		KeyDynamicRow:       "Строка %d",
		KeyRowSelected:      "Выбрано %s в %s",
		KeyValueChanged:     "%s изменено на %v",
		KeyFormLoaded:       "Загружено %s",
		KeyErrorLoadingForm: "Ошибка загрузки формы",
		KeyLayout:           "Разметка",
		KeyRowHeight:        "Высота строки",
		KeyHeaderHeight:     "Высота заголовка",
		KeyRecycleCells:     "Переиспользовать ячейки",
		KeyDiagnostics:      "Диагностика",
		KeyLogLevel:         "Уровень логов",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки сохранены",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Demo do Former",
		KeyFile:             "Arquivo",
		KeyOpenForm:         "Abrir formulário…",
		KeyDemoForm:         "Formulário demo",
		KeySettings:         "Configurações",
		KeyLanguage:         "Idioma",
		KeyAddRow:           "Adicionar linha",
		KeyRemoveRow:        "Remover linha",
		KeyDynamicSection:   "Linhas dinâmicas",
		KeyDynamicFooter:    "Linhas são adicionadas e removidas em tempo real",
		KeyDynamicRow:       "Linha %d",
		KeyRowSelected:      "Selecionado %s em %s",
		KeyValueChanged:     "%s alterado para %v",
		KeyFormLoaded:       "Carregado %s",
		KeyErrorLoadingForm: "Erro ao carregar formulário",
		KeyLayout:           "Layout",
		KeyRowHeight:        "Altura da linha",
		KeyHeaderHeight:     "Altura do cabeçalho",
		KeyRecycleCells:     "Reutilizar células",
		KeyDiagnostics:      "Diagnóstico",
		KeyLogLevel:         "Nível de log",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas",
	}
}

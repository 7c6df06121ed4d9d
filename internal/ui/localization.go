package ui

import (
	"fmt"

	"github.com/ytget/site-cloner/internal/clone"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyClone                = "clone"
	KeyCloning              = "cloning"
	KeySettings             = "settings"
	KeyFile                 = "file"
	KeyLanguage             = "language"
	KeyQuickExport          = "quick_export"
	KeyEnterURL             = "enter_url"
	KeyCopy                 = "copy"
	KeyDownload             = "download"
	KeyOpenInBrowser        = "open_in_browser"
	KeyOriginal             = "original"
	KeyGenerated            = "generated"
	KeySource               = "source"
	KeyNothingYet           = "nothing_yet"
	KeyCopied               = "copied"
	KeyClipboardUnavailable = "clipboard_unavailable"
	KeySavedTo              = "saved_to"
	KeyExportFailed         = "export_failed"
	KeyErrorOpeningFile     = "error_opening_file"
	KeyPreviewFailed        = "preview_failed"
	KeyServiceEndpoint      = "service_endpoint"
	KeyExportDirectory      = "export_directory"
	KeyRevealAfterExport    = "reveal_after_export"
	KeyLogLevel             = "log_level"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeyBrowse               = "browse"
	KeySettingsSaved        = "settings_saved"
	KeyInvalidEndpoint      = "invalid_endpoint"
	KeyServiceOnline        = "service_online"
	KeyServiceOffline       = "service_offline"
	KeyErrInvalidURL        = "err_invalid_url"
	KeyErrNetwork           = "err_network"
	KeyErrHTTP              = "err_http"
	KeyErrDecode            = "err_decode"
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

// ErrorText returns the banner text for a failed submission
func (l *Localization) ErrorText(kind clone.ErrorKind, status int) string {
	switch kind {
	case clone.KindInvalidURL:
		return l.GetText(KeyErrInvalidURL)
	case clone.KindNetwork:
		return l.GetText(KeyErrNetwork)
	case clone.KindHTTP:
		return fmt.Sprintf(l.GetText(KeyErrHTTP), status)
	case clone.KindDecode:
		return l.GetText(KeyErrDecode)
	default:
		return l.GetText(KeyErrNetwork)
	}
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
		KeyAppTitle:             "Site Cloner",
		KeyClone:                "Clone",
		KeyCloning:              "Cloning website...",
		KeySettings:             "Settings",
		KeyFile:                 "File",
		KeyLanguage:             "Language",
		KeyQuickExport:          "Export to Folder",
		KeyEnterURL:             "Enter a website URL (https://example.com)",
		KeyCopy:                 "Copy HTML",
		KeyDownload:             "Download",
		KeyOpenInBrowser:        "Open in Browser",
		KeyOriginal:             "Original",
		KeyGenerated:            "Generated",
		KeySource:               "Source",
		KeyNothingYet:           "Clone a website to see it here.",
		KeyCopied:               "HTML copied to clipboard",
		KeyClipboardUnavailable: "Clipboard is not available",
		KeySavedTo:              "Saved to",
		KeyExportFailed:         "Export failed",
		KeyErrorOpeningFile:     "Error opening file",
		KeyPreviewFailed:        "Preview is not available for this page",
		KeyServiceEndpoint:      "Service Endpoint",
		KeyExportDirectory:      "Export Directory",
		KeyRevealAfterExport:    "Show exported file in file manager",
		KeyLogLevel:             "Log Level",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeyBrowse:               "Browse",
		KeySettingsSaved:        "Settings saved successfully!",
		KeyInvalidEndpoint:      "Invalid service endpoint",
		KeyServiceOnline:        "Cloning service is online",
		KeyServiceOffline:       "Cloning service is not reachable",
		KeyErrInvalidURL:        "Please enter a valid URL, including http:// or https://",
		KeyErrNetwork:           "Could not reach the cloning service. Check that it is running and try again.",
		KeyErrHTTP:              "The cloning service returned an error (%d).",
		KeyErrDecode:            "The cloning service sent a response that could not be read.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "Клонировщик сайтов",
		KeyClone:                "Клонировать",
		KeyCloning:              "Клонирование сайта...",
		KeySettings:             "Настройки",
		KeyFile:                 "Файл",
		KeyLanguage:             "Язык",
		KeyQuickExport:          "Экспорт в папку",
		KeyEnterURL:             "Введите URL сайта (https://example.com)",
		KeyCopy:                 "Копировать HTML",
		KeyDownload:             "Скачать",
		KeyOpenInBrowser:        "Открыть в браузере",
		KeyOriginal:             "Оригинал",
		KeyGenerated:            "Результат",
		KeySource:               "Код",
		KeyNothingYet:           "Клонируйте сайт, чтобы увидеть его здесь.",
		KeyCopied:               "HTML скопирован в буфер обмена",
		KeyClipboardUnavailable: "Буфер обмена недоступен",
		KeySavedTo:              "Сохранено в",
		KeyExportFailed:         "Ошибка экспорта",
		KeyErrorOpeningFile:     "Ошибка открытия файла",
		KeyPreviewFailed:        "Предпросмотр недоступен для этой страницы",
		KeyServiceEndpoint:      "Адрес сервиса",
		KeyExportDirectory:      "Папка экспорта",
		KeyRevealAfterExport:    "Показывать файл после экспорта",
		KeyLogLevel:             "Уровень логирования",
		KeySave:                 "Сохранить",
		KeyCancel:               "Отмена",
		KeyBrowse:               "Обзор",
		KeySettingsSaved:        "Настройки успешно сохранены!",
		KeyInvalidEndpoint:      "Неверный адрес сервиса",
		KeyServiceOnline:        "Сервис клонирования доступен",
		KeyServiceOffline:       "Сервис клонирования недоступен",
		KeyErrInvalidURL:        "Введите корректный URL, начиная с http:// или https://",
		KeyErrNetwork:           "Не удалось связаться с сервисом клонирования. Проверьте, что он запущен, и повторите попытку.",
		KeyErrHTTP:              "Сервис клонирования вернул ошибку (%d).",
		KeyErrDecode:            "Не удалось прочитать ответ сервиса клонирования.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:             "Site Cloner",
		KeyClone:                "Clonar",
		KeyCloning:              "Clonando site...",
		KeySettings:             "Configurações",
		KeyFile:                 "Arquivo",
		KeyLanguage:             "Idioma",
		KeyQuickExport:          "Exportar para Pasta",
		KeyEnterURL:             "Digite a URL do site (https://example.com)",
		KeyCopy:                 "Copiar HTML",
		KeyDownload:             "Baixar",
		KeyOpenInBrowser:        "Abrir no Navegador",
		KeyOriginal:             "Original",
		KeyGenerated:            "Gerado",
		KeySource:               "Código",
		KeyNothingYet:           "Clone um site para vê-lo aqui.",
		KeyCopied:               "HTML copiado para a área de transferência",
		KeyClipboardUnavailable: "Área de transferência indisponível",
		KeySavedTo:              "Salvo em",
		KeyExportFailed:         "Falha na exportação",
		KeyErrorOpeningFile:     "Erro ao abrir arquivo",
		KeyPreviewFailed:        "Pré-visualização indisponível para esta página",
		KeyServiceEndpoint:      "Endereço do Serviço",
		KeyExportDirectory:      "Diretório de Exportação",
		KeyRevealAfterExport:    "Mostrar arquivo exportado no gerenciador",
		KeyLogLevel:             "Nível de Log",
		KeySave:                 "Salvar",
		KeyCancel:               "Cancelar",
		KeyBrowse:               "Navegar",
		KeySettingsSaved:        "Configurações salvas com sucesso!",
		KeyInvalidEndpoint:      "Endereço do serviço inválido",
		KeyServiceOnline:        "Serviço de clonagem disponível",
		KeyServiceOffline:       "Serviço de clonagem inacessível",
		KeyErrInvalidURL:        "Digite uma URL válida, incluindo http:// ou https://",
		KeyErrNetwork:           "Não foi possível contatar o serviço de clonagem. Verifique se ele está em execução e tente novamente.",
		KeyErrHTTP:              "O serviço de clonagem retornou um erro (%d).",
		KeyErrDecode:            "Não foi possível ler a resposta do serviço de clonagem.",
	}
}

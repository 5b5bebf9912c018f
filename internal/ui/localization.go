package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyPrompt            = "prompt"
	KeySelectFile        = "select_file"
	KeyRemoveMetadata    = "remove_metadata"
	KeySelectedFile      = "selected_file"
	KeyConfirmDeletion   = "confirm_deletion"
	KeyConfirmRemove     = "confirm_remove"
	KeyNoFileSelected    = "no_file_selected"
	KeySelectFileFirst   = "select_file_first"
	KeyYes               = "yes"
	KeyNo                = "no"
	KeyFile              = "file"
	KeyView              = "view"
	KeyHistory           = "history"
	KeyNoHistory         = "no_history"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyShowInFolder      = "show_in_folder"
	KeyOpenFile          = "open_file"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyExiftoolPath      = "exiftool_path"
	KeyExiftoolPathHint  = "exiftool_path_hint"
	KeyUseNativeDialogs  = "use_native_dialogs"
	KeyToolInUse         = "tool_in_use"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyInterfaceSettings = "interface_settings"
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

// sortedLanguageCodes returns language codes in a stable menu order
func sortedLanguageCodes(languages map[string]string) []string {
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Metadata Editor",
		KeyPrompt:            "Select a file to view or remove metadata:",
		KeySelectFile:        "Select File",
		KeyRemoveMetadata:    "Remove Metadata",
		KeySelectedFile:      "Selected",
		KeyConfirmDeletion:   "Confirm Deletion",
		KeyConfirmRemove:     "Are you sure you want to remove metadata?",
		KeyNoFileSelected:    "No File Selected",
		KeySelectFileFirst:   "Please select a file first.",
		KeyYes:               "Yes",
		KeyNo:                "No",
		KeyFile:              "File",
		KeyView:              "View",
		KeyHistory:           "History",
		KeyNoHistory:         "No invocations yet",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyShowInFolder:      "Show in Folder",
		KeyOpenFile:          "Open File",
		KeyErrorOpeningFile:  "Error opening file",
		KeyExiftoolPath:      "ExifTool Path",
		KeyExiftoolPathHint:  "Leave empty to use the bundled ExifTool",
		KeyUseNativeDialogs:  "Use native file dialogs",
		KeyToolInUse:         "In use",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved. A new ExifTool path is used after restart.",
		KeyInterfaceSettings: "Interface Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Редактор метаданных",
		KeyPrompt:            "Выберите файл, чтобы просмотреть или удалить метаданные:",
		KeySelectFile:        "Выбрать файл",
		KeyRemoveMetadata:    "Удалить метаданные",
		KeySelectedFile:      "Выбран",
		KeyConfirmDeletion:   "Подтверждение удаления",
		KeyConfirmRemove:     "Вы уверены, что хотите удалить метаданные?",
		KeyNoFileSelected:    "Файл не выбран",
		KeySelectFileFirst:   "Сначала выберите файл.",
		KeyYes:               "Да",
		KeyNo:                "Нет",
		KeyFile:              "Файл",
		KeyView:              "Вид",
		KeyHistory:           "История",
		KeyNoHistory:         "Запусков пока нет",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyShowInFolder:      "Показать в папке",
		KeyOpenFile:          "Открыть файл",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyExiftoolPath:      "Путь к ExifTool",
		KeyExiftoolPathHint:  "Оставьте пустым, чтобы использовать встроенный ExifTool",
		KeyUseNativeDialogs:  "Системные диалоги выбора файла",
		KeyToolInUse:         "Используется",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки сохранены. Новый путь к ExifTool будет использован после перезапуска.",
		KeyInterfaceSettings: "Интерфейс",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Editor de Metadados",
		KeyPrompt:            "Selecione um arquivo para ver ou remover metadados:",
		KeySelectFile:        "Selecionar Arquivo",
		KeyRemoveMetadata:    "Remover Metadados",
		KeySelectedFile:      "Selecionado",
		KeyConfirmDeletion:   "Confirmar Exclusão",
		KeyConfirmRemove:     "Tem certeza de que deseja remover os metadados?",
		KeyNoFileSelected:    "Nenhum Arquivo Selecionado",
		KeySelectFileFirst:   "Por favor, selecione um arquivo primeiro.",
		KeyYes:               "Sim",
		KeyNo:                "Não",
		KeyFile:              "Arquivo",
		KeyView:              "Exibir",
		KeyHistory:           "Histórico",
		KeyNoHistory:         "Nenhuma execução ainda",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyShowInFolder:      "Mostrar na Pasta",
		KeyOpenFile:          "Abrir Arquivo",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyExiftoolPath:      "Caminho do ExifTool",
		KeyExiftoolPathHint:  "Deixe vazio para usar o ExifTool incluído",
		KeyUseNativeDialogs:  "Usar diálogos nativos de arquivo",
		KeyToolInUse:         "Em uso",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas. O novo caminho do ExifTool será usado após reiniciar.",
		KeyInterfaceSettings: "Interface",
	}
}

package ui

import "testing"

func TestLocalization_Defaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	expected := map[string]string{
		KeyAppTitle:        "Metadata Editor",
		KeyPrompt:          "Select a file to view or remove metadata:",
		KeySelectFile:      "Select File",
		KeyRemoveMetadata:  "Remove Metadata",
		KeyConfirmDeletion: "Confirm Deletion",
		KeyConfirmRemove:   "Are you sure you want to remove metadata?",
		KeyNoFileSelected:  "No File Selected",
		KeySelectFileFirst: "Please select a file first.",
	}
	for key, want := range expected {
		if got := l.GetText(key); got != want {
			t.Errorf("GetText(%s) = %q, expected %q", key, got, want)
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Fatalf("Expected ru, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeySelectFile) != "Выбрать файл" {
		t.Errorf("unexpected Russian text %q", l.GetText(KeySelectFile))
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system should resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("missing key should fall back to itself, got %q", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		if len(l.texts[lang]) != len(l.texts["en"]) {
			t.Errorf("language %s has %d texts, English has %d", lang, len(l.texts[lang]), len(l.texts["en"]))
		}
	}
}

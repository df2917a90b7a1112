package core

// prompts.go defines the per-language strings used by the chat surface and
// the system prompts sent to the model.  Keeping them in one place makes them
// easy to tweak without touching the rest of the code.

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownLocale is returned for a locale key with no bundle.  It is a
// configuration error: callers should reject it up front.
var ErrUnknownLocale = errors.New("unknown locale")

// Locale is a read-only bundle of UI strings and prompts for one language.
type Locale struct {
	ID              string `json:"id"`
	SelectorName    string `json:"selector_name"`
	Title           string `json:"title"`
	Label           string `json:"label"`
	Placeholder     string `json:"placeholder"`
	Button          string `json:"button"`
	Welcome         string `json:"welcome"`
	EmptyInput      string `json:"empty_input"`
	DoctorPrefix    string `json:"doctor_prefix"`
	AssistantPrefix string `json:"assistant_prefix"`
	Disclaimer      string `json:"disclaimer"`
	SystemPrompt    string `json:"system_prompt"`
	SymptomsPrefix  string `json:"symptoms_prefix"`
	// ErrorMessage is shown, followed by the disclaimer, when the model
	// could not be reached or answered with nothing usable.
	ErrorMessage string `json:"error_message"`
	// StoreFailure is shown under an answer that could not be written to
	// the audit log.
	StoreFailure string `json:"store_failure"`
}

var locales = map[string]Locale{
	"ru": {
		ID:              "ru",
		SelectorName:    "Русский (ru)",
		Title:           "ИИ-Помощник для Диагностики",
		Label:           "ИИ-Помощник: Введите симптомы пациента",
		Placeholder:     "Например: Болит горло, температура 37.5, насморк",
		Button:          "Получить диагноз",
		Welcome:         "Привет! Введите симптомы пациента, и я предложу возможные диагнозы.",
		EmptyInput:      "ИИ-Помощник: Пожалуйста, введите симптомы.",
		DoctorPrefix:    "Врач",
		AssistantPrefix: "ИИ-Помощник",
		Disclaimer:      "Это не замена врачу, проконсультируйтесь со специалистом.",
		SystemPrompt: "Ты ИИ-помощник для врачей, анализирующий симптомы и предлагающий до 3 возможных диагнозов. " +
			"Отвечай кратко, структурированно (список диагнозов), избегай окончательных выводов. " +
			"В конце каждого ответа обязательно добавляй: \"Это не замена врачу, проконсультируйтесь со специалистом.\"",
		SymptomsPrefix: "Симптомы",
		ErrorMessage:   "Извините, произошла ошибка.",
		StoreFailure:   "Не удалось сохранить запись в журнал.",
	},
	"kk": {
		ID:              "kk",
		SelectorName:    "Қазақша (kk)",
		Title:           "Диагнозға арналған ИИ-Көмекші",
		Label:           "ИИ-Көмекші: Пациенттің белгілерін енгізіңіз",
		Placeholder:     "Мысалы: Көмей ауырады, температура 37.5, мұрын ағады",
		Button:          "Диагноз алу",
		Welcome:         "Сәлем! Пациенттің белгілерін енгізіңіз, мен мүмкін диагноздарды ұсынамын.",
		EmptyInput:      "ИИ-Көмекші: Белгілерді енгізіңіз.",
		DoctorPrefix:    "Дәрігер",
		AssistantPrefix: "ИИ-Көмекші",
		Disclaimer:      "Бұл дәрігердің орнын баспайды, маманмен кеңесіңіз.",
		SystemPrompt: "Сен дәрігерлерге арналған ИИ-көмекшісің, белгілерді талдап, 3-ке дейін мүмкін диагноздарды ұсынасың. " +
			"Жауаптарың қысқа, құрылымдалған (диагноздар тізімі) болсын, нақты қорытындылардан аулақ бол. " +
			"Әр жауаптың соңына міндетті түрде мына мәтінді қос: \"Бұл дәрігердің орнын баспайды, маманмен кеңесіңіз.\"",
		SymptomsPrefix: "Белгілер",
		ErrorMessage:   "Кешіріңіз, қате орын алды.",
		StoreFailure:   "Жазбаны журналға сақтау мүмкін болмады.",
	},
}

// LookupLocale returns the bundle for id.
func LookupLocale(id string) (Locale, error) {
	l, ok := locales[id]
	if !ok {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, id)
	}
	return l, nil
}

// Locales returns every bundle ordered by ID.
func Locales() []Locale {
	ids := LocaleIDs()
	out := make([]Locale, 0, len(ids))
	for _, id := range ids {
		out = append(out, locales[id])
	}
	return out
}

// LocaleIDs lists the supported locale keys in a stable order.
func LocaleIDs() []string {
	ids := make([]string, 0, len(locales))
	for id := range locales {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

package preresume

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template purposes. Answer templates are keyed "answer_" + intent.
const (
	PurposeIntro         = "intro"
	PurposeResumeAck     = "resume_ack"
	PurposeOptOutAck     = "opt_out_ack"
	PurposePromiseAck    = "promise_ack"
	PurposeFollowup      = "followup"
	PurposeResumeRequest = "resume_request"
)

// ErrNoTemplate is returned when no language carries the requested purpose.
var ErrNoTemplate = errors.New("no template")

// AnswerPurpose maps a question intent to its answer template purpose.
func AnswerPurpose(intent string) string {
	switch intent {
	case IntentSalary, IntentStack, IntentTimeline, IntentSendJDFirst:
		return "answer_" + intent
	default:
		return "answer_default"
	}
}

// Vars are the placeholder values a template can reference.
type Vars struct {
	Name               string `json:"name"`
	JobTitle           string `json:"job_title"`
	ScopeSummary       string `json:"scope_summary"`
	CoreProfileSummary string `json:"core_profile_summary"`
}

// Bundle is an immutable purpose-by-language template set. Operator bundles
// overlay the built-ins; reloading swaps the whole bundle.
type Bundle struct {
	defaultLanguage string
	templates       map[string]map[string]string
}

// NewBundle returns the built-in templates with the given fallback language.
func NewBundle(defaultLanguage string) *Bundle {
	if defaultLanguage == "" {
		defaultLanguage = "en"
	}
	templates := make(map[string]map[string]string, len(builtinTemplates))
	for purpose, byLang := range builtinTemplates {
		langs := make(map[string]string, len(byLang))
		for lang, text := range byLang {
			langs[lang] = text
		}
		templates[purpose] = langs
	}
	return &Bundle{defaultLanguage: defaultLanguage, templates: templates}
}

type bundleFile struct {
	Templates map[string]map[string]string `yaml:"templates"`
}

// LoadBundle reads an operator bundle and overlays it on the built-ins.
func LoadBundle(path, defaultLanguage string) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template bundle: %w", err)
	}
	var file bundleFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse template bundle: %w", err)
	}

	bundle := NewBundle(defaultLanguage)
	for purpose, byLang := range file.Templates {
		langs := bundle.templates[purpose]
		if langs == nil {
			langs = make(map[string]string, len(byLang))
			bundle.templates[purpose] = langs
		}
		for lang, text := range byLang {
			langs[lang] = text
		}
	}
	return bundle, nil
}

// Render fills a template for (purpose, language), falling back to the
// default language and then to any language the purpose carries.
//
// Placeholders are replaced literally; an operator bundle can never make
// rendering panic.
func (b *Bundle) Render(purpose, language string, vars Vars) (string, error) {
	byLang, ok := b.templates[purpose]
	if !ok || len(byLang) == 0 {
		return "", fmt.Errorf("%w for purpose %q", ErrNoTemplate, purpose)
	}

	text, ok := byLang[language]
	if !ok {
		text, ok = byLang[b.defaultLanguage]
	}
	if !ok {
		langs := make([]string, 0, len(byLang))
		for lang := range byLang {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		text = byLang[langs[0]]
	}

	replacer := strings.NewReplacer(
		"{{name}}", vars.Name,
		"{{job_title}}", vars.JobTitle,
		"{{scope_summary}}", vars.ScopeSummary,
		"{{core_profile_summary}}", vars.CoreProfileSummary,
	)
	return strings.TrimSpace(replacer.Replace(text)), nil
}

// Bundle returns the bundle itself, letting a bare *Bundle serve as a
// TemplateSource in tests and single-shot tools.
func (b *Bundle) Bundle() *Bundle { return b }

var builtinTemplates = map[string]map[string]string{
	PurposeIntro: {
		"en": "Hi {{name}}! I came across your profile and think you could be a great fit for the {{job_title}} role. {{scope_summary}} Given your background ({{core_profile_summary}}), I'd love to connect. Could you share your CV so I can tell you more?",
		"ru": "Здравствуйте, {{name}}! Ваш профиль показался мне отличным совпадением для роли {{job_title}}. {{scope_summary}} Могли бы вы прислать резюме?",
		"es": "¡Hola {{name}}! Tu perfil encaja muy bien con el puesto de {{job_title}}. {{scope_summary}} ¿Podrías compartir tu CV?",
	},
	PurposeResumeAck: {
		"en": "Thanks {{name}}, got your resume! I'll review it against the {{job_title}} role and get back to you shortly.",
		"ru": "Спасибо, {{name}}! Резюме получено, вернусь с ответом по роли {{job_title}} в ближайшее время.",
		"es": "¡Gracias {{name}}! Recibí tu CV, te responderé pronto sobre el puesto de {{job_title}}.",
	},
	PurposeOptOutAck: {
		"en": "Understood, {{name}}. I won't reach out about this again. Best of luck!",
		"ru": "Понимаю, {{name}}. Больше не побеспокою. Удачи!",
		"es": "Entendido, {{name}}. No volveré a escribirte. ¡Mucha suerte!",
	},
	PurposePromiseAck: {
		"en": "Sounds good, {{name}}. I'll check back in a few days. Looking forward to your resume!",
		"ru": "Отлично, {{name}}! Буду ждать резюме, напомню через пару дней.",
		"es": "¡Perfecto, {{name}}! Quedo atento a tu CV.",
	},
	PurposeFollowup: {
		"en": "Hi {{name}}, just checking in on the {{job_title}} role. Could you share your resume when you have a minute?",
		"ru": "Здравствуйте, {{name}}! Напоминаю о роли {{job_title}}. Пришлёте резюме?",
		"es": "Hola {{name}}, ¿tuviste oportunidad de revisar el puesto de {{job_title}}? ¿Podrías enviarme tu CV?",
	},
	PurposeResumeRequest: {
		"en": "Hi {{name}}, to move forward with the {{job_title}} role I'd need your resume. Could you share it here?",
		"ru": "Здравствуйте, {{name}}! Чтобы двигаться дальше по роли {{job_title}}, пришлите, пожалуйста, резюме.",
		"es": "Hola {{name}}, para avanzar con el puesto de {{job_title}} necesito tu CV. ¿Podrías compartirlo aquí?",
	},
	"answer_salary": {
		"en": "Good question! Compensation for the {{job_title}} role depends on experience; I can share the exact range once I've seen your resume. Could you send it over?",
	},
	"answer_stack": {
		"en": "The team works on {{scope_summary}}. Happy to go deeper once I've had a look at your resume. Could you share it?",
	},
	"answer_timeline": {
		"en": "The process is quick: a short intro call, a technical conversation, and a decision. Send me your resume and I'll get things moving.",
	},
	"answer_send_jd_first": {
		"en": "Of course, here is the short version: {{scope_summary}}. If it sounds interesting, share your resume and I'll send the full description.",
	},
	"answer_default": {
		"en": "Thanks for getting back to me, {{name}}! To move forward with the {{job_title}} role, could you share your resume?",
		"ru": "Спасибо за ответ, {{name}}! Чтобы двигаться дальше по роли {{job_title}}, пришлите, пожалуйста, резюме.",
		"es": "¡Gracias por responder, {{name}}! Para avanzar con el puesto de {{job_title}}, ¿podrías compartir tu CV?",
	},
}

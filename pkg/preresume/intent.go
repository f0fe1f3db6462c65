package preresume

import (
	"regexp"
	"strings"
	"unicode"
)

// Intents, in classification priority order. The first matching rule wins.
const (
	IntentResumeShared  = "resume_shared"
	IntentNotInterested = "not_interested"
	IntentWillSendLater = "will_send_later"
	IntentSalary        = "salary"
	IntentStack         = "stack"
	IntentTimeline      = "timeline"
	IntentSendJDFirst   = "send_jd_first"
	IntentDefault       = "default"
)

var urlPattern = regexp.MustCompile(`https?://[^\s<>"')\]]+`)

// resumeURLHints mark a URL as a plausible CV: document extensions, common
// file hosts, or the words themselves.
var resumeURLHints = []string{".pdf", ".doc", "drive.", "dropbox.", "notion.", "resume", "cv"}

var resumePhrases = []string{"my cv", "my resume", "attached resume"}

type intentRule struct {
	intent  string
	phrases []string
	words   []string
}

var intentRules = []intentRule{
	{
		intent:  IntentNotInterested,
		phrases: []string{"not interested", "no thanks", "not looking"},
		words:   []string{"stop", "unsubscribe"},
	},
	{
		intent:  IntentWillSendLater,
		phrases: []string{"will send", "i'll send", "next week"},
		words:   []string{"later", "tomorrow"},
	},
	{
		intent:  IntentSalary,
		phrases: []string{"how much"},
		words:   []string{"salary", "compensation", "pay", "rate"},
	},
	{
		intent:  IntentStack,
		phrases: []string{"tech stack"},
		words:   []string{"stack", "technologies", "technology"},
	},
	{
		intent:  IntentTimeline,
		phrases: []string{"how long", "next steps"},
		words:   []string{"timeline", "process", "steps"},
	},
	{
		intent:  IntentSendJDFirst,
		phrases: []string{"job description", "send the jd", "jd first", "more details", "more info"},
		words:   []string{"jd"},
	},
}

// ClassifyIntent classifies one inbound text and extracts any resume links.
func ClassifyIntent(text string) (string, []string) {
	lowered := strings.ToLower(text)

	if links := ResumeLinks(text); len(links) > 0 {
		return IntentResumeShared, links
	}
	for _, phrase := range resumePhrases {
		if strings.Contains(lowered, phrase) {
			return IntentResumeShared, nil
		}
	}

	words := wordSet(lowered)
	for _, rule := range intentRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(lowered, phrase) {
				return rule.intent, nil
			}
		}
		for _, word := range rule.words {
			if words[word] {
				return rule.intent, nil
			}
		}
	}
	return IntentDefault, nil
}

// ResumeLinks extracts the URLs in a text that look like a CV.
func ResumeLinks(text string) []string {
	var links []string
	for _, url := range urlPattern.FindAllString(text, -1) {
		url = strings.TrimRight(url, ".,;:!?")
		lowered := strings.ToLower(url)
		for _, hint := range resumeURLHints {
			if strings.Contains(lowered, hint) {
				links = append(links, url)
				break
			}
		}
	}
	return links
}

// ResumeHinted reports whether the text carries a CV marker anywhere, not
// just inside a URL. The poller uses it to judge attachment names.
func ResumeHinted(text string) bool {
	lowered := strings.ToLower(text)
	for _, hint := range resumeURLHints {
		if strings.Contains(lowered, hint) {
			return true
		}
	}
	return false
}

func wordSet(lowered string) map[string]bool {
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

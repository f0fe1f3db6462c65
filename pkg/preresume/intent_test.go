package preresume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		intent string
		links  []string
	}{
		{
			name:   "pdf link",
			text:   "Here is my resume https://example.com/alex.pdf",
			intent: IntentResumeShared,
			links:  []string{"https://example.com/alex.pdf"},
		},
		{
			name:   "drive link",
			text:   "sure: https://drive.google.com/file/d/abc123",
			intent: IntentResumeShared,
			links:  []string{"https://drive.google.com/file/d/abc123"},
		},
		{
			name:   "cv in url path",
			text:   "https://example.com/files/dana-cv-2026",
			intent: IntentResumeShared,
			links:  []string{"https://example.com/files/dana-cv-2026"},
		},
		{
			name:   "resume phrase without link",
			text:   "I attached my resume to the previous message",
			intent: IntentResumeShared,
		},
		{
			name:   "plain link is not a resume",
			text:   "check out https://example.com/blog/post-1 when you can, not interested though",
			intent: IntentNotInterested,
		},
		{"not interested", "Sorry, not interested.", IntentNotInterested, nil},
		{"unsubscribe word", "unsubscribe", IntentNotInterested, nil},
		{"stop word", "please STOP messaging me", IntentNotInterested, nil},
		{"promise", "I will send it next week", IntentWillSendLater, nil},
		{"later word", "can we talk later?", IntentWillSendLater, nil},
		{"salary question", "What is the salary range?", IntentSalary, nil},
		{"stack question", "what's your tech stack?", IntentStack, nil},
		{"timeline question", "how long is the interview process?", IntentTimeline, nil},
		{"jd first", "could you send the job description first?", IntentSendJDFirst, nil},
		{"default", "hi, tell me more", IntentDefault, nil},
		{"empty", "", IntentDefault, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intent, links := ClassifyIntent(tc.text)

			assert.Equal(t, tc.intent, intent)
			assert.Equal(t, tc.links, links)
		})
	}
}

func TestResumeLinksTrimsTrailingPunctuation(t *testing.T) {
	links := ResumeLinks("see https://example.com/dana.pdf.")

	assert.Equal(t, []string{"https://example.com/dana.pdf"}, links)
}

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Привет, вот моё резюме", "ru"},
		{"¿Cuál es el salario?", "es"},
		{"Sounds interesting, tell me more", "en"},
		{"", "en"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectLanguage(tc.text), "text %q", tc.text)
	}
}

package provider

// Profile is a candidate profile as the provider reports it. Identity fields
// vary by provider; the workflow picks the first non-empty one along a
// preference chain.
type Profile struct {
	LinkedinID         string   `json:"linkedin_id,omitempty"`
	UnipileProfileID   string   `json:"unipile_profile_id,omitempty"`
	AttendeeProviderID string   `json:"attendee_provider_id,omitempty"`
	ProviderID         string   `json:"provider_id,omitempty"`
	ID                 string   `json:"id,omitempty"`
	FullName           string   `json:"full_name"`
	Headline           string   `json:"headline,omitempty"`
	Location           string   `json:"location,omitempty"`
	Languages          []string `json:"languages,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	YearsExperience    float64  `json:"years_experience,omitempty"`
}

// SendResult is the provider's answer to an outbound send.
type SendResult struct {
	Sent      bool   `json:"sent"`
	ChatID    string `json:"chat_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ChatMessage is one message of a provider chat.
type ChatMessage struct {
	ProviderMessageID string       `json:"provider_message_id"`
	Direction         string       `json:"direction"` // inbound | outbound
	Text              string       `json:"text"`
	Attachments       []Attachment `json:"attachments,omitempty"`
}

// Attachment is a file attached to a chat message.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Identity returns the first non-empty identifier along the preference
// chain, falling back to the full name. Profiles with equal identities are
// the same person to the dedupe logic.
func Identity(p Profile) string {
	for _, id := range []string{p.LinkedinID, p.UnipileProfileID, p.AttendeeProviderID, p.ProviderID, p.ID} {
		if id != "" {
			return id
		}
	}
	return p.FullName
}

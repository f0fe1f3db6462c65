package provider

import (
	"context"
	"fmt"
	"sync"
)

// Fake is an in-memory provider for tests and local development. All state
// is guarded by one mutex; every mutator is safe for concurrent use.
type Fake struct {
	mu sync.Mutex

	// SearchResults maps query → profiles. Queries without an entry fall
	// back to Profiles.
	SearchResults map[string][]Profile

	// Profiles is the default search result set.
	Profiles []Profile

	// EnrichErrors holds provider ids whose enrichment fails.
	EnrichErrors map[string]error

	// Disconnected holds provider ids with no first-degree connection; a
	// SendMessage to them fails with ErrNoConnection until a connection
	// request has been sent.
	Disconnected map[string]bool

	// SendErr, when set, fails every SendMessage.
	SendErr error

	// ChatMessages maps chat id → messages returned by FetchChatMessages.
	ChatMessages map[string][]ChatMessage

	sent     []SentRecord
	connects []SentRecord
	nextChat int
}

// SentRecord captures one outbound call for assertions.
type SentRecord struct {
	AccountID  string
	ProviderID string
	Text       string
	ChatID     string
}

// NewFake returns an empty fake provider.
func NewFake() *Fake {
	return &Fake{
		SearchResults: make(map[string][]Profile),
		EnrichErrors:  make(map[string]error),
		Disconnected:  make(map[string]bool),
		ChatMessages:  make(map[string][]ChatMessage),
	}
}

// SearchProfiles implements Client.
func (f *Fake) SearchProfiles(_ context.Context, query string, limit int) ([]Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	results, ok := f.SearchResults[query]
	if !ok {
		results = f.Profiles
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	out := make([]Profile, len(results))
	copy(out, results)
	return out, nil
}

// EnrichProfile implements Client.
func (f *Fake) EnrichProfile(_ context.Context, p Profile) (Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.EnrichErrors[Identity(p)]; ok {
		return p, err
	}
	return p, nil
}

// SendMessage implements Client.
func (f *Fake) SendMessage(_ context.Context, accountID string, p Profile, text string) (SendResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.SendErr != nil {
		return SendResult{Error: f.SendErr.Error()}, f.SendErr
	}
	id := Identity(p)
	if f.Disconnected[id] {
		return SendResult{Error: ErrNoConnection.Error()}, fmt.Errorf("send to %s: %w", id, ErrNoConnection)
	}

	f.nextChat++
	chatID := fmt.Sprintf("chat-%d", f.nextChat)
	f.sent = append(f.sent, SentRecord{AccountID: accountID, ProviderID: id, Text: text, ChatID: chatID})
	return SendResult{Sent: true, ChatID: chatID, MessageID: fmt.Sprintf("msg-%d", len(f.sent))}, nil
}

// SendConnectionRequest implements Client. A granted request reconnects the
// profile so later sends succeed.
func (f *Fake) SendConnectionRequest(_ context.Context, accountID string, p Profile, note string) (SendResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := Identity(p)
	delete(f.Disconnected, id)
	f.connects = append(f.connects, SentRecord{AccountID: accountID, ProviderID: id, Text: note})
	return SendResult{Sent: true, RequestID: fmt.Sprintf("req-%d", len(f.connects))}, nil
}

// CheckConnectionStatus implements Client.
func (f *Fake) CheckConnectionStatus(_ context.Context, _ string, p Profile) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.Disconnected[Identity(p)], nil
}

// FetchChatMessages implements Client.
func (f *Fake) FetchChatMessages(_ context.Context, _ string, chatID string, limit int) ([]ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	msgs := f.ChatMessages[chatID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

// Sent returns a copy of all delivered messages.
func (f *Fake) Sent() []SentRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SentRecord, len(f.sent))
	copy(out, f.sent)
	return out
}

// Connects returns a copy of all connection requests.
func (f *Fake) Connects() []SentRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SentRecord, len(f.connects))
	copy(out, f.connects)
	return out
}


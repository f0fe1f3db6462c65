// Package provider defines the messaging-provider contract the core depends
// on. Concrete adapters live outside the core; the bundled Fake implements
// the contract for tests and local runs.
//
// Adapters are responsible for provider-specific quirks such as placeholder
// records returned by search endpoints; the core only sees real profiles.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoConnection is returned (possibly wrapped) by SendMessage when the
// sender account has no first-degree connection with the recipient. The
// dispatcher falls back to a connection request.
var ErrNoConnection = errors.New("no connection with recipient")

// Error marks a provider call failure that propagates to a synchronous
// caller. Boundaries classify it separately from repository errors.
type Error struct {
	Op  string // provider operation, e.g. "search" or "send_message"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNoConnection reports whether err represents a missing first-degree
// connection, either as the sentinel or as provider error text.
func IsNoConnection(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoConnection) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no connection") || strings.Contains(msg, "not connected")
}

// Client is the outbound messaging channel.
type Client interface {
	// SearchProfiles returns up to limit profiles matching the query.
	SearchProfiles(ctx context.Context, query string, limit int) ([]Profile, error)

	// EnrichProfile fills in missing profile fields. The returned profile
	// replaces the input on success.
	EnrichProfile(ctx context.Context, p Profile) (Profile, error)

	// SendMessage delivers text to the profile from the given account.
	SendMessage(ctx context.Context, accountID string, p Profile, text string) (SendResult, error)

	// SendConnectionRequest asks for a first-degree connection, with an
	// optional note.
	SendConnectionRequest(ctx context.Context, accountID string, p Profile, note string) (SendResult, error)

	// CheckConnectionStatus reports whether the account is connected to the
	// profile.
	CheckConnectionStatus(ctx context.Context, accountID string, p Profile) (bool, error)

	// FetchChatMessages returns the last limit messages of a chat, oldest
	// first.
	FetchChatMessages(ctx context.Context, accountID, chatID string, limit int) ([]ChatMessage, error)
}

package preresume

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/config"
)

var fsmNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func newTestMachine() *Machine {
	return NewMachine(nil, nil)
}

func TestMachineStart(t *testing.T) {
	machine := newTestMachine()

	intro, st := machine.Start(Vars{Name: "Alex", JobTitle: "Sr Backend"}, "en", fsmNow)

	assert.Contains(t, intro, "Alex")
	assert.Contains(t, intro, "Sr Backend")
	assert.Equal(t, StatusAwaitingReply, st.Status)
	assert.Equal(t, "en", st.Language)
	assert.Zero(t, st.FollowupsSent)
	assert.Zero(t, st.Turns)
	require.NotNil(t, st.NextFollowupAt)
	assert.Equal(t, fsmNow.Add(48*time.Hour), *st.NextFollowupAt)
}

func TestMachineResumeFlow(t *testing.T) {
	machine := newTestMachine()

	_, st := machine.Start(Vars{Name: "Alex", JobTitle: "Sr Backend"}, "en", fsmNow)
	result := machine.HandleInbound(st, "Here is my resume https://example.com/alex.pdf", fsmNow.Add(time.Hour))

	assert.Equal(t, EventInboundProcessed, result.Event)
	assert.Equal(t, IntentResumeShared, result.Intent)
	assert.Equal(t, StatusResumeReceived, result.State.Status)
	assert.Equal(t, []string{"https://example.com/alex.pdf"}, result.State.ResumeLinks)
	assert.Nil(t, result.State.NextFollowupAt)
	assert.Equal(t, 1, result.State.Turns)
	assert.Contains(t, result.OutboundText, "Alex")
}

func TestMachineOptOut(t *testing.T) {
	machine := newTestMachine()

	_, st := machine.Start(Vars{Name: "Alex"}, "en", fsmNow)
	result := machine.HandleInbound(st, "not interested", fsmNow.Add(time.Hour))

	assert.Equal(t, IntentNotInterested, result.Intent)
	assert.Equal(t, StatusNotInterested, result.State.Status)
	assert.Nil(t, result.State.NextFollowupAt)
	assert.NotEmpty(t, result.OutboundText)
}

func TestMachinePromiseSchedulesFollowup(t *testing.T) {
	machine := newTestMachine()

	_, st := machine.Start(Vars{Name: "Alex"}, "en", fsmNow)
	inboundAt := fsmNow.Add(2 * time.Hour)
	result := machine.HandleInbound(st, "I will send it tomorrow", inboundAt)

	assert.Equal(t, IntentWillSendLater, result.Intent)
	assert.Equal(t, StatusResumePromised, result.State.Status)
	require.NotNil(t, result.State.NextFollowupAt)
	// No follow-ups sent yet, so the first delay applies.
	assert.Equal(t, inboundAt.Add(48*time.Hour), *result.State.NextFollowupAt)
}

func TestMachineQuestionKeepsEngaging(t *testing.T) {
	machine := newTestMachine()

	_, st := machine.Start(Vars{Name: "Alex", JobTitle: "Sr Backend"}, "en", fsmNow)
	result := machine.HandleInbound(st, "what is the salary range?", fsmNow.Add(time.Hour))

	assert.Equal(t, IntentSalary, result.Intent)
	assert.Equal(t, StatusEngagedNoResume, result.State.Status)
	require.NotNil(t, result.State.NextFollowupAt)
	// The answer always ends in a resume ask.
	assert.Contains(t, result.OutboundText, "resume")
}

func TestMachineDetectsLanguageOnInbound(t *testing.T) {
	machine := newTestMachine()

	_, st := machine.Start(Vars{Name: "Алексей"}, "", fsmNow)
	require.Empty(t, st.Language)

	result := machine.HandleInbound(st, "Сколько платите?", fsmNow.Add(time.Hour))

	assert.Equal(t, "ru", result.State.Language)
}

func TestMachineTerminalInboundIgnored(t *testing.T) {
	machine := newTestMachine()

	st := State{Status: StatusResumeReceived, Turns: 3}
	result := machine.HandleInbound(st, "one more thing", fsmNow)

	assert.Equal(t, EventIgnoredTerminal, result.Event)
	assert.Empty(t, result.Intent)
	assert.Empty(t, result.OutboundText)
	assert.Equal(t, st, result.State)
}

func TestMachineFollowupCap(t *testing.T) {
	machine := newTestMachine()

	_, st := machine.Start(Vars{Name: "Alex", JobTitle: "Sr Backend"}, "en", fsmNow)
	now := fsmNow

	// First follow-up: reschedules with the second delay.
	now = st.NextFollowupAt.Add(time.Minute)
	first := machine.BuildFollowup(st, now)
	require.True(t, first.Sent)
	assert.Equal(t, 1, first.State.FollowupsSent)
	assert.Equal(t, StatusAwaitingReply, first.State.Status)
	require.NotNil(t, first.State.NextFollowupAt)
	assert.Equal(t, now.Add(72*time.Hour), *first.State.NextFollowupAt)
	assert.Contains(t, first.Text, "Alex")

	// Second follow-up: last delay repeats.
	st = first.State
	now = st.NextFollowupAt.Add(time.Minute)
	second := machine.BuildFollowup(st, now)
	require.True(t, second.Sent)
	assert.Equal(t, 2, second.State.FollowupsSent)
	require.NotNil(t, second.State.NextFollowupAt)
	assert.Equal(t, now.Add(72*time.Hour), *second.State.NextFollowupAt)

	// Third follow-up reaches the cap: still sent, session stalls.
	st = second.State
	now = st.NextFollowupAt.Add(time.Minute)
	third := machine.BuildFollowup(st, now)
	require.True(t, third.Sent)
	assert.Equal(t, 3, third.State.FollowupsSent)
	assert.Equal(t, StatusStalled, third.State.Status)
	assert.Nil(t, third.State.NextFollowupAt)

	// Fourth call is skipped.
	fourth := machine.BuildFollowup(third.State, now.Add(time.Hour))
	assert.False(t, fourth.Sent)
	assert.Equal(t, ReasonMaxFollowups, fourth.Reason)
	assert.Equal(t, 3, fourth.State.FollowupsSent)
}

func TestMachineFollowupAtCapWithoutStalledStatus(t *testing.T) {
	machine := NewMachine(&config.PreResumeConfig{
		FollowupDelayHours: []int{24},
		MaxFollowups:       1,
		DefaultLanguage:    "en",
	}, nil)

	// A session persisted before a cap decrease can sit over the cap while
	// still non-terminal; the next attempt stalls it without sending.
	st := State{Status: StatusAwaitingReply, FollowupsSent: 2}
	result := machine.BuildFollowup(st, fsmNow)

	assert.False(t, result.Sent)
	assert.Equal(t, ReasonMaxFollowups, result.Reason)
	assert.Equal(t, StatusStalled, result.State.Status)
	assert.Nil(t, result.State.NextFollowupAt)
}

func TestMachineFollowupTerminalState(t *testing.T) {
	machine := newTestMachine()

	result := machine.BuildFollowup(State{Status: StatusResumeReceived}, fsmNow)

	assert.False(t, result.Sent)
	assert.Equal(t, ReasonTerminalState, result.Reason)
	assert.Equal(t, StatusResumeReceived, result.State.Status)
}

func TestMachineMarkUnreachable(t *testing.T) {
	machine := newTestMachine()

	next := fsmNow.Add(48 * time.Hour)
	st := machine.MarkUnreachable(State{Status: StatusAwaitingReply, NextFollowupAt: &next})

	assert.Equal(t, StatusUnreachable, st.Status)
	assert.Nil(t, st.NextFollowupAt)

	// Terminal sessions never change.
	st = machine.MarkUnreachable(State{Status: StatusResumeReceived})
	assert.Equal(t, StatusResumeReceived, st.Status)
}

func TestMergeLinksDeduplicates(t *testing.T) {
	merged := mergeLinks(
		[]string{"https://a.example/cv.pdf"},
		[]string{"https://a.example/cv.pdf", "https://b.example/cv.pdf"},
	)

	assert.Equal(t, []string{"https://a.example/cv.pdf", "https://b.example/cv.pdf"}, merged)
}

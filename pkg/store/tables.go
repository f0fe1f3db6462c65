package store

// tableSpec describes one tracked table for the backfill, parity, and
// serial-id mirror paths. Column lists must match the ent-generated DDL.
type tableSpec struct {
	Name string
	Cols []string
	// JSON columns need a native-JSON cast on Postgres and text coercion
	// when copied out of SQLite.
	JSON []string
	// Serial tables carry store-assigned integer ids; their sequences are
	// resynced after a bulk load.
	Serial bool
}

// trackedTables lists every table in foreign-key dependency order. The
// backfill copies in this order; truncation runs against it in reverse.
var trackedTables = []tableSpec{
	{
		Name: "jobs",
		Cols: []string{"id", "title", "jd_text", "location", "preferred_languages", "seniority", "routing_mode", "created_at", "updated_at"},
		JSON: []string{"preferred_languages"},
	},
	{
		Name: "candidates",
		Cols: []string{"id", "provider_id", "full_name", "headline", "location", "languages", "skills", "years_experience", "created_at", "updated_at"},
		JSON: []string{"languages", "skills"},
	},
	{
		Name: "sender_accounts",
		Cols: []string{"id", "provider_account_id", "provider_user_id", "label", "status", "connected_at", "last_synced_at", "created_at", "updated_at"},
	},
	{
		Name: "matches",
		Cols: []string{"id", "job_id", "candidate_id", "score", "status", "verification_notes", "created_at", "updated_at"},
		JSON: []string{"verification_notes"},
	},
	{
		Name: "conversations",
		Cols: []string{"id", "job_id", "candidate_id", "channel", "status", "external_chat_id", "account_id", "last_message_at", "created_at"},
	},
	{
		Name: "pre_resume_sessions",
		Cols: []string{"id", "conversation_id", "job_id", "candidate_id", "status", "language", "followups_sent", "turns", "last_intent", "resume_links", "next_followup_at", "state", "last_error", "created_at", "updated_at"},
		JSON: []string{"resume_links", "state"},
	},
	{
		Name:   "messages",
		Cols:   []string{"id", "conversation_id", "direction", "language", "content", "meta", "created_at"},
		JSON:   []string{"meta"},
		Serial: true,
	},
	{
		Name:   "pre_resume_events",
		Cols:   []string{"id", "session_id", "job_id", "candidate_id", "event_type", "intent", "inbound_text", "outbound_text", "status", "created_at"},
		Serial: true,
	},
	{
		Name: "agent_assessments",
		Cols: []string{"id", "job_id", "candidate_id", "agent_key", "stage_key", "score", "status", "reason", "details", "created_at", "updated_at"},
		JSON: []string{"details"},
	},
	{
		Name: "outbound_actions",
		Cols: []string{"id", "job_id", "candidate_id", "conversation_id", "kind", "status", "payload", "account_id", "attempts", "last_error", "created_at", "updated_at"},
		JSON: []string{"payload"},
	},
	{
		Name:   "account_counters",
		Cols:   []string{"id", "account_id", "period", "period_start", "new_threads_sent", "connects_sent", "updated_at"},
		Serial: true,
	},
	{
		Name:   "job_account_assignments",
		Cols:   []string{"id", "job_id", "account_id", "created_at"},
		Serial: true,
	},
	{
		Name:   "operation_logs",
		Cols:   []string{"id", "operation", "status", "entity_type", "entity_id", "job_id", "candidate_id", "details", "created_at"},
		JSON:   []string{"details"},
		Serial: true,
	},
	{
		Name:   "candidate_signals",
		Cols:   []string{"id", "job_id", "candidate_id", "source_type", "source_id", "signal_type", "category", "title", "detail", "impact", "confidence", "signal_meta", "observed_at", "created_at"},
		JSON:   []string{"signal_meta"},
		Serial: true,
	},
	{
		Name:   "job_step_progress",
		Cols:   []string{"id", "job_id", "step", "status", "output", "last_error", "started_at", "completed_at", "created_at", "updated_at"},
		JSON:   []string{"output"},
		Serial: true,
	},
	{
		Name:   "idempotency_records",
		Cols:   []string{"id", "route", "key", "payload_hash", "status_code", "response", "created_at"},
		Serial: true,
	},
}

func tableByName(name string) (tableSpec, bool) {
	for _, ts := range trackedTables {
		if ts.Name == name {
			return ts, true
		}
	}
	return tableSpec{}, false
}

func (ts tableSpec) isJSON(col string) bool {
	for _, c := range ts.JSON {
		if c == col {
			return true
		}
	}
	return false
}

func isJSONColumn(table, col string) bool {
	ts, ok := tableByName(table)
	return ok && ts.isJSON(col)
}

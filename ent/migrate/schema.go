// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountCountersColumns holds the columns for the "account_counters" table.
	AccountCountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "period", Type: field.TypeEnum, Enums: []string{"day", "week"}},
		{Name: "period_start", Type: field.TypeTime},
		{Name: "new_threads_sent", Type: field.TypeInt, Default: 0},
		{Name: "connects_sent", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountCountersTable holds the schema information for the "account_counters" table.
	AccountCountersTable = &schema.Table{
		Name:       "account_counters",
		Columns:    AccountCountersColumns,
		PrimaryKey: []*schema.Column{AccountCountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "accountcounter_account_id_period_period_start",
				Unique:  true,
				Columns: []*schema.Column{AccountCountersColumns[1], AccountCountersColumns[2], AccountCountersColumns[3]},
			},
		},
	}
	// AgentAssessmentsColumns holds the columns for the "agent_assessments" table.
	AgentAssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "job_id", Type: field.TypeString},
		{Name: "candidate_id", Type: field.TypeString},
		{Name: "agent_key", Type: field.TypeEnum, Enums: []string{"sourcing_vetting", "communication", "interview_evaluation", "culture_analyst", "job_architect"}},
		{Name: "stage_key", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "completed"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentAssessmentsTable holds the schema information for the "agent_assessments" table.
	AgentAssessmentsTable = &schema.Table{
		Name:       "agent_assessments",
		Columns:    AgentAssessmentsColumns,
		PrimaryKey: []*schema.Column{AgentAssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentassessment_job_id_candidate_id_agent_key_stage_key",
				Unique:  true,
				Columns: []*schema.Column{AgentAssessmentsColumns[1], AgentAssessmentsColumns[2], AgentAssessmentsColumns[3], AgentAssessmentsColumns[4]},
			},
			{
				Name:    "agentassessment_job_id_candidate_id",
				Unique:  false,
				Columns: []*schema.Column{AgentAssessmentsColumns[1], AgentAssessmentsColumns[2]},
			},
		},
	}
	// CandidatesColumns holds the columns for the "candidates" table.
	CandidatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "provider_id", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString},
		{Name: "headline", Type: field.TypeString, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "languages", Type: field.TypeJSON, Nullable: true},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "years_experience", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CandidatesTable holds the schema information for the "candidates" table.
	CandidatesTable = &schema.Table{
		Name:       "candidates",
		Columns:    CandidatesColumns,
		PrimaryKey: []*schema.Column{CandidatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "candidate_full_name",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[2]},
			},
		},
	}
	// CandidateSignalsColumns holds the columns for the "candidate_signals" table.
	CandidateSignalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "candidate_id", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"assessment", "pre_resume_event", "operation_log", "match_snapshot"}},
		{Name: "source_id", Type: field.TypeString},
		{Name: "signal_type", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "impact", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "signal_meta", Type: field.TypeJSON, Nullable: true},
		{Name: "observed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// CandidateSignalsTable holds the schema information for the "candidate_signals" table.
	CandidateSignalsTable = &schema.Table{
		Name:       "candidate_signals",
		Columns:    CandidateSignalsColumns,
		PrimaryKey: []*schema.Column{CandidateSignalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "candidate_signals_jobs_signals",
				Columns:    []*schema.Column{CandidateSignalsColumns[13]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "candidatesignal_job_id_candidate_id_source_type_source_id",
				Unique:  true,
				Columns: []*schema.Column{CandidateSignalsColumns[13], CandidateSignalsColumns[1], CandidateSignalsColumns[2], CandidateSignalsColumns[3]},
			},
			{
				Name:    "candidatesignal_job_id_candidate_id_observed_at",
				Unique:  false,
				Columns: []*schema.Column{CandidateSignalsColumns[13], CandidateSignalsColumns[1], CandidateSignalsColumns[11]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "channel", Type: field.TypeString, Default: "provider"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "waiting_connection", "closed"}, Default: "active"},
		{Name: "external_chat_id", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "account_id", Type: field.TypeString, Nullable: true},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "candidate_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_candidates_conversations",
				Columns:    []*schema.Column{ConversationsColumns[7]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "conversations_jobs_conversations",
				Columns:    []*schema.Column{ConversationsColumns[8]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_job_id_candidate_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[8], ConversationsColumns[7]},
			},
			{
				Name:    "conversation_status",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[2]},
			},
		},
	}
	// IdempotencyRecordsColumns holds the columns for the "idempotency_records" table.
	IdempotencyRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "route", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "payload_hash", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeInt},
		{Name: "response", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IdempotencyRecordsTable holds the schema information for the "idempotency_records" table.
	IdempotencyRecordsTable = &schema.Table{
		Name:       "idempotency_records",
		Columns:    IdempotencyRecordsColumns,
		PrimaryKey: []*schema.Column{IdempotencyRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idempotencyrecord_route_key",
				Unique:  true,
				Columns: []*schema.Column{IdempotencyRecordsColumns[1], IdempotencyRecordsColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "jd_text", Type: field.TypeString, Size: 2147483647},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "preferred_languages", Type: field.TypeJSON, Nullable: true},
		{Name: "seniority", Type: field.TypeString, Nullable: true},
		{Name: "routing_mode", Type: field.TypeEnum, Enums: []string{"auto", "manual"}, Default: "auto"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_routing_mode",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[6]},
			},
			{
				Name:    "job_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7]},
			},
		},
	}
	// JobAccountAssignmentsColumns holds the columns for the "job_account_assignments" table.
	JobAccountAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// JobAccountAssignmentsTable holds the schema information for the "job_account_assignments" table.
	JobAccountAssignmentsTable = &schema.Table{
		Name:       "job_account_assignments",
		Columns:    JobAccountAssignmentsColumns,
		PrimaryKey: []*schema.Column{JobAccountAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_account_assignments_jobs_account_assignments",
				Columns:    []*schema.Column{JobAccountAssignmentsColumns[3]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobaccountassignment_job_id_account_id",
				Unique:  true,
				Columns: []*schema.Column{JobAccountAssignmentsColumns[3], JobAccountAssignmentsColumns[1]},
			},
		},
	}
	// JobStepProgressColumns holds the columns for the "job_step_progress" table.
	JobStepProgressColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// JobStepProgressTable holds the schema information for the "job_step_progress" table.
	JobStepProgressTable = &schema.Table{
		Name:       "job_step_progress",
		Columns:    JobStepProgressColumns,
		PrimaryKey: []*schema.Column{JobStepProgressColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_step_progress_jobs_step_progress",
				Columns:    []*schema.Column{JobStepProgressColumns[9]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobstepprogress_job_id_step",
				Unique:  true,
				Columns: []*schema.Column{JobStepProgressColumns[9], JobStepProgressColumns[1]},
			},
		},
	}
	// MatchesColumns holds the columns for the "matches" table.
	MatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"sourced", "verified", "needs_resume", "resume_received", "rejected", "outreached", "interview_scheduled", "interview_completed", "hired"}, Default: "sourced"},
		{Name: "verification_notes", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "candidate_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString},
	}
	// MatchesTable holds the schema information for the "matches" table.
	MatchesTable = &schema.Table{
		Name:       "matches",
		Columns:    MatchesColumns,
		PrimaryKey: []*schema.Column{MatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "matches_candidates_matches",
				Columns:    []*schema.Column{MatchesColumns[6]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "matches_jobs_matches",
				Columns:    []*schema.Column{MatchesColumns[7]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "match_job_id_candidate_id",
				Unique:  true,
				Columns: []*schema.Column{MatchesColumns[7], MatchesColumns[6]},
			},
			{
				Name:    "match_status",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[2]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"inbound", "outbound"}},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[6], MessagesColumns[5]},
			},
		},
	}
	// OperationLogsColumns holds the columns for the "operation_logs" table.
	OperationLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "operation", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "ok"},
		{Name: "entity_type", Type: field.TypeString, Nullable: true},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "candidate_id", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OperationLogsTable holds the schema information for the "operation_logs" table.
	OperationLogsTable = &schema.Table{
		Name:       "operation_logs",
		Columns:    OperationLogsColumns,
		PrimaryKey: []*schema.Column{OperationLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "operationlog_operation_created_at",
				Unique:  false,
				Columns: []*schema.Column{OperationLogsColumns[1], OperationLogsColumns[8]},
			},
			{
				Name:    "operationlog_job_id_candidate_id",
				Unique:  false,
				Columns: []*schema.Column{OperationLogsColumns[5], OperationLogsColumns[6]},
			},
		},
	}
	// OutboundActionsColumns holds the columns for the "outbound_actions" table.
	OutboundActionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "candidate_id", Type: field.TypeString},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"message", "connect_request"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "pending_connection", "completed", "deferred", "failed"}, Default: "pending"},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "account_id", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// OutboundActionsTable holds the schema information for the "outbound_actions" table.
	OutboundActionsTable = &schema.Table{
		Name:       "outbound_actions",
		Columns:    OutboundActionsColumns,
		PrimaryKey: []*schema.Column{OutboundActionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "outbound_actions_jobs_outbound_actions",
				Columns:    []*schema.Column{OutboundActionsColumns[11]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "outboundaction_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{OutboundActionsColumns[4], OutboundActionsColumns[9]},
			},
			{
				Name:    "outboundaction_job_id_candidate_id",
				Unique:  false,
				Columns: []*schema.Column{OutboundActionsColumns[11], OutboundActionsColumns[1]},
			},
		},
	}
	// PreResumeEventsColumns holds the columns for the "pre_resume_events" table.
	PreResumeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "candidate_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"session_started", "inbound_processed", "followup_sent", "session_unreachable"}},
		{Name: "intent", Type: field.TypeString, Nullable: true},
		{Name: "inbound_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "outbound_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// PreResumeEventsTable holds the schema information for the "pre_resume_events" table.
	PreResumeEventsTable = &schema.Table{
		Name:       "pre_resume_events",
		Columns:    PreResumeEventsColumns,
		PrimaryKey: []*schema.Column{PreResumeEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pre_resume_events_pre_resume_sessions_events",
				Columns:    []*schema.Column{PreResumeEventsColumns[9]},
				RefColumns: []*schema.Column{PreResumeSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "preresumeevent_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PreResumeEventsColumns[9], PreResumeEventsColumns[8]},
			},
			{
				Name:    "preresumeevent_job_id_candidate_id",
				Unique:  false,
				Columns: []*schema.Column{PreResumeEventsColumns[1], PreResumeEventsColumns[2]},
			},
		},
	}
	// PreResumeSessionsColumns holds the columns for the "pre_resume_sessions" table.
	PreResumeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "candidate_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"awaiting_reply", "engaged_no_resume", "resume_promised", "resume_received", "not_interested", "unreachable", "stalled"}, Default: "awaiting_reply"},
		{Name: "language", Type: field.TypeString, Default: "en"},
		{Name: "followups_sent", Type: field.TypeInt, Default: 0},
		{Name: "turns", Type: field.TypeInt, Default: 0},
		{Name: "last_intent", Type: field.TypeString, Nullable: true},
		{Name: "resume_links", Type: field.TypeJSON, Nullable: true},
		{Name: "next_followup_at", Type: field.TypeTime, Nullable: true},
		{Name: "state", Type: field.TypeJSON, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString, Unique: true, Nullable: true},
	}
	// PreResumeSessionsTable holds the schema information for the "pre_resume_sessions" table.
	PreResumeSessionsTable = &schema.Table{
		Name:       "pre_resume_sessions",
		Columns:    PreResumeSessionsColumns,
		PrimaryKey: []*schema.Column{PreResumeSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pre_resume_sessions_conversations_pre_resume_session",
				Columns:    []*schema.Column{PreResumeSessionsColumns[14]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "preresumesession_status_next_followup_at",
				Unique:  false,
				Columns: []*schema.Column{PreResumeSessionsColumns[3], PreResumeSessionsColumns[9]},
			},
			{
				Name:    "preresumesession_job_id_candidate_id",
				Unique:  false,
				Columns: []*schema.Column{PreResumeSessionsColumns[1], PreResumeSessionsColumns[2]},
			},
		},
	}
	// SenderAccountsColumns holds the columns for the "sender_accounts" table.
	SenderAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "provider_account_id", Type: field.TypeString, Unique: true},
		{Name: "provider_user_id", Type: field.TypeString, Nullable: true},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"connected", "pending", "error", "disconnected"}, Default: "pending"},
		{Name: "connected_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_synced_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SenderAccountsTable holds the schema information for the "sender_accounts" table.
	SenderAccountsTable = &schema.Table{
		Name:       "sender_accounts",
		Columns:    SenderAccountsColumns,
		PrimaryKey: []*schema.Column{SenderAccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "senderaccount_status",
				Unique:  false,
				Columns: []*schema.Column{SenderAccountsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountCountersTable,
		AgentAssessmentsTable,
		CandidatesTable,
		CandidateSignalsTable,
		ConversationsTable,
		IdempotencyRecordsTable,
		JobsTable,
		JobAccountAssignmentsTable,
		JobStepProgressTable,
		MatchesTable,
		MessagesTable,
		OperationLogsTable,
		OutboundActionsTable,
		PreResumeEventsTable,
		PreResumeSessionsTable,
		SenderAccountsTable,
	}
)

func init() {
	AccountCountersTable.Annotation = &entsql.Annotation{
		Table: "account_counters",
	}
	AgentAssessmentsTable.Annotation = &entsql.Annotation{
		Table: "agent_assessments",
	}
	CandidatesTable.Annotation = &entsql.Annotation{
		Table: "candidates",
	}
	CandidateSignalsTable.ForeignKeys[0].RefTable = JobsTable
	CandidateSignalsTable.Annotation = &entsql.Annotation{
		Table: "candidate_signals",
	}
	ConversationsTable.ForeignKeys[0].RefTable = CandidatesTable
	ConversationsTable.ForeignKeys[1].RefTable = JobsTable
	ConversationsTable.Annotation = &entsql.Annotation{
		Table: "conversations",
	}
	IdempotencyRecordsTable.Annotation = &entsql.Annotation{
		Table: "idempotency_records",
	}
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	JobAccountAssignmentsTable.ForeignKeys[0].RefTable = JobsTable
	JobAccountAssignmentsTable.Annotation = &entsql.Annotation{
		Table: "job_account_assignments",
	}
	JobStepProgressTable.ForeignKeys[0].RefTable = JobsTable
	JobStepProgressTable.Annotation = &entsql.Annotation{
		Table: "job_step_progress",
	}
	MatchesTable.ForeignKeys[0].RefTable = CandidatesTable
	MatchesTable.ForeignKeys[1].RefTable = JobsTable
	MatchesTable.Annotation = &entsql.Annotation{
		Table: "matches",
	}
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	MessagesTable.Annotation = &entsql.Annotation{
		Table: "messages",
	}
	OperationLogsTable.Annotation = &entsql.Annotation{
		Table: "operation_logs",
	}
	OutboundActionsTable.ForeignKeys[0].RefTable = JobsTable
	OutboundActionsTable.Annotation = &entsql.Annotation{
		Table: "outbound_actions",
	}
	PreResumeEventsTable.ForeignKeys[0].RefTable = PreResumeSessionsTable
	PreResumeEventsTable.Annotation = &entsql.Annotation{
		Table: "pre_resume_events",
	}
	PreResumeSessionsTable.ForeignKeys[0].RefTable = ConversationsTable
	PreResumeSessionsTable.Annotation = &entsql.Annotation{
		Table: "pre_resume_sessions",
	}
	SenderAccountsTable.Annotation = &entsql.Annotation{
		Table: "sender_accounts",
	}
}

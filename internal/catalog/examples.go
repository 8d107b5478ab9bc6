package catalog

// Examples returns the worked-prompt example library.
func Examples() []ExampleEntry {
	return []ExampleEntry{
		{
			ID:          "ex-code-review",
			Title:       "Scoped Code Review",
			Category:    "engineering",
			Difficulty:  Beginner,
			Tags:        []string{"persona", "scoping"},
			Description: "A review prompt that names the reviewer, the scope, and what to ignore.",
			Prompt: "You are a senior Go reviewer. Review the following diff for data races and\n" +
				"goroutine leaks only. Ignore naming and formatting. For each finding, quote\n" +
				"the line and explain the failure scenario in one sentence.",
		},
		{
			ID:          "ex-meeting-extract",
			Title:       "Meeting Minutes to JSON",
			Category:    "data-extraction",
			Difficulty:  Beginner,
			Tags:        []string{"json", "extraction"},
			Description: "Pulling structured action items out of free-form notes.",
			Prompt: "Extract every action item from the transcript below. Respond with JSON only:\n" +
				"{\"actionItems\": [{\"owner\": \"...\", \"task\": \"...\", \"due\": \"YYYY-MM-DD or null\"}]}",
		},
		{
			ID:          "ex-sql-tutor",
			Title:       "Socratic SQL Tutor",
			Category:    "education",
			Difficulty:  Intermediate,
			Tags:        []string{"persona", "constraints"},
			Description: "A tutor that guides instead of answering outright.",
			Prompt: "You are a patient SQL tutor. The student will paste a query that returns the\n" +
				"wrong rows. Do not give the corrected query. Instead ask one question at a time\n" +
				"that leads them to find the bug themselves. Keep each question under 25 words.",
		},
		{
			ID:          "ex-triage-agent",
			Title:       "Support Ticket Triage Agent",
			Category:    "agents",
			Difficulty:  Advanced,
			Tags:        []string{"agents", "tools", "stop-condition"},
			Description: "An agent loop with explicit routing rules and a stop condition.",
			Prompt: "You triage support tickets. For each ticket: call classify_ticket, then\n" +
				"lookup_customer if the plan tier matters for routing, then assign_queue.\n" +
				"Never assign without classifying first. Stop when every ticket in the batch\n" +
				"has a queue, or after 20 tool calls, whichever comes first.",
		},
	}
}

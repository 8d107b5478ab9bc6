package catalog

import "prompt_school_backend/internal/validation"

// Tutorials returns the full tutorial catalog. Each exercise is constructed
// with its own validation rule; nothing downstream switches on exercise ids.
func Tutorials() []Tutorial {
	return []Tutorial{
		{
			ID:          "prompt-foundations",
			Title:       "Prompt Foundations",
			Description: "Write clear, specific prompts that get reliable answers.",
			Difficulty:  Beginner,
			Duration:    "45 min",
			Lessons: []Lesson{
				{
					ID:          "clarity-basics",
					Title:       "Clarity and Specificity",
					Description: "Vague prompts produce vague answers. Learn to say exactly what you want.",
					Duration:    "15 min",
					Concepts:    []string{"instructions", "specificity", "constraints"},
					Theory: "A model cannot read your mind. The single highest-leverage change you can " +
						"make to a prompt is replacing vague asks with concrete ones: name the task, the " +
						"audience, the length, and the format. Constraints are not restrictions on the " +
						"model, they are information about what a good answer looks like.",
					Examples: []WorkedExample{
						{
							Title:       "Vague vs. specific",
							Description: "The same request, before and after adding constraints.",
							Code: "Before: Tell me about Go.\n\n" +
								"After: Explain Go's goroutines to a Python developer in 3 short " +
								"paragraphs. Include one code sample per paragraph.",
						},
					},
					Exercises: []Exercise{
						{
							ID:          "clarity-ex-1",
							Title:       "Add constraints",
							Description: "Rewrite the prompt so it names an audience, a length limit, and an output format.",
							StarterCode: "Summarize this article.",
							Solution: "Summarize this article for a busy product manager.\n" +
								"Keep it under 150 words and format the output as 3 bullet points,\n" +
								"each starting with a bolded takeaway.",
							Hints: []string{
								"Who is the summary for? Say so explicitly.",
								"Give a hard length limit, such as a word count.",
								"Name the output format, for example bullet points.",
							},
							Rule: validation.All(
								"Well done. Audience, length and format give the model a target to hit.",
								validation.NotEmpty(),
								validation.ContainsFold("for", "Name the audience the summary is for (e.g. \"for a product manager\")."),
								validation.ContainsAny([]string{"words", "word", "sentences", "paragraphs"},
									"Add a length limit, such as a maximum word count."),
								validation.ContainsAny([]string{"bullet", "list", "table", "points"},
									"Specify the output format, for example bullet points."),
							),
						},
					},
				},
				{
					ID:            "context-and-roles",
					Title:         "Context and Role Prompting",
					Description:   "Give the model a persona and the background it needs.",
					Duration:      "15 min",
					Concepts:      []string{"role", "persona", "context window"},
					Prerequisites: []string{"clarity-basics"},
					Theory: "Assigning a role focuses the model's register and priorities. \"You are a " +
						"senior security reviewer\" produces a very different reading of the same code " +
						"than no role at all. Pair the role with the context the task genuinely needs; " +
						"irrelevant context dilutes the signal.",
					Examples: []WorkedExample{
						{
							Title:       "Role prompt",
							Description: "A role plus an explicit goal.",
							Code: "You are a senior Go reviewer. Review the following diff for " +
								"concurrency bugs only. Ignore style.",
						},
					},
					Exercises: []Exercise{
						{
							ID:          "roles-ex-1",
							Title:       "Assign a role",
							Description: "Turn the starter prompt into a role prompt with a clearly scoped task.",
							StarterCode: "Check my SQL query.",
							Solution: "You are a database performance specialist.\n" +
								"Review the following SQL query for missing indexes and full-table scans.\n" +
								"Only report problems that affect execution time.",
							Hints: []string{
								"Start with \"You are ...\" to set the persona.",
								"Scope the review: what exactly should the reviewer look for?",
							},
							Rule: validation.All(
								"Good. The persona plus a scoped task focuses the review.",
								validation.NotEmpty(),
								validation.ContainsFold("you are", "Open with a role assignment such as \"You are a database specialist\"."),
								validation.ContainsAny([]string{"review", "Review", "look for", "check for"},
									"Tell the reviewer what to do with the query, e.g. review it for something specific."),
							),
						},
						{
							ID:          "roles-ex-2",
							Title:       "Provide context",
							Description: "Extend the prompt with the background the model needs to tailor its answer.",
							StarterCode: "You are a coach. Suggest a study plan.",
							Solution: "You are a programming coach.\n" +
								"Context: I know Python well, have 30 minutes per day, and want to learn Go\n" +
								"for backend work within two months.\n" +
								"Suggest a week-by-week study plan that fits that schedule.",
							Hints: []string{
								"Add a Context: section with the learner's background.",
								"Mention the time budget so the plan is realistic.",
							},
							Rule: validation.All(
								"Exactly. Relevant context turns a generic plan into a usable one.",
								validation.NotEmpty(),
								validation.ContainsFold("context", "Add an explicit Context: section describing the learner."),
								validation.LineCount(3, "Flesh the prompt out; one line of context is rarely enough"),
							),
						},
					},
				},
				{
					ID:            "output-formats",
					Title:         "Structured Output",
					Description:   "Ask for JSON, tables, or templates the caller can parse.",
					Duration:      "15 min",
					Concepts:      []string{"json", "schema", "few-shot"},
					Prerequisites: []string{"context-and-roles"},
					Theory: "When another program consumes the answer, prose is a bug. Pin the shape " +
						"down: name the format, list the fields, and show one example of correct output. " +
						"An example is worth more than a paragraph describing the schema.",
					Examples: []WorkedExample{
						{
							Title:       "JSON with an example",
							Description: "Schema by demonstration.",
							Code: "Extract the people mentioned in the text. Respond with JSON only:\n" +
								"{\"people\": [{\"name\": \"...\", \"role\": \"...\"}]}",
						},
					},
					Exercises: []Exercise{
						{
							ID:          "formats-ex-1",
							Title:       "Demand JSON",
							Description: "Rewrite the prompt so the answer is machine-parseable JSON with named fields.",
							StarterCode: "List the action items from this meeting transcript.",
							Solution: "Extract the action items from this meeting transcript.\n" +
								"Respond with JSON only, no prose, using this shape:\n" +
								"{\"actionItems\": [{\"owner\": \"...\", \"task\": \"...\", \"due\": \"...\"}]}",
							Hints: []string{
								"Say \"JSON only\" so no prose leaks around the payload.",
								"Show the exact shape, including field names.",
							},
							Rule: validation.All(
								"Parseable. The explicit shape makes the output contract testable.",
								validation.NotEmpty(),
								validation.ContainsFold("json", "Name the output format: ask for JSON explicitly."),
								validation.Contains("{", "Show the expected JSON shape, braces and all."),
							),
						},
					},
				},
			},
		},
		{
			ID:          "agent-essentials",
			Title:       "Agent Essentials",
			Description: "Prompts that drive tool-using agents: tool definitions, loops, and stop conditions.",
			Difficulty:  Intermediate,
			Duration:    "60 min",
			Lessons: []Lesson{
				{
					ID:          "tool-calling",
					Title:       "Describing Tools",
					Description: "A tool description is a prompt. Write ones the model can act on.",
					Duration:    "20 min",
					Concepts:    []string{"tools", "function calling", "parameters"},
					Theory: "The model decides when to call a tool from its description alone. Describe " +
						"what the tool does, when to use it, and what each parameter means, including " +
						"units and formats. Ambiguous parameter docs surface as malformed calls at " +
						"runtime, not as errors you can catch earlier.",
					Examples: []WorkedExample{
						{
							Title:       "A usable tool description",
							Description: "Purpose, trigger, and parameter semantics.",
							Code: "search_orders: Look up a customer's orders. Use when the user asks\n" +
								"about order status. Parameters: customer_id (string, required),\n" +
								"since (ISO-8601 date, optional, defaults to 30 days ago).",
						},
					},
					Exercises: []Exercise{
						{
							ID:          "tools-ex-1",
							Title:       "Document a tool",
							Description: "Write a description for a weather tool: what it does, when to call it, and its parameters.",
							StarterCode: "get_weather: returns weather.",
							Solution: "get_weather: Fetch the current weather for one city.\n" +
								"Use when the user asks about present conditions, not forecasts.\n" +
								"Parameters: city (string, required, e.g. \"Lisbon\"),\n" +
								"units (string, optional, \"metric\" or \"imperial\", default \"metric\").",
							Hints: []string{
								"State when the agent should call the tool, not only what it returns.",
								"Document each parameter with its type and an example value.",
								"Mention defaults for optional parameters.",
							},
							Rule: validation.All(
								"Solid. An agent can route to this tool without guessing.",
								validation.NotEmpty(),
								validation.ContainsFold("use when", "Say when the agent should call the tool (\"Use when ...\")."),
								validation.ContainsFold("parameters", "List the parameters with their types."),
								validation.ContainsAny([]string{"required", "optional"},
									"Mark each parameter required or optional."),
							),
						},
					},
				},
				{
					ID:            "agent-loops",
					Title:         "Loops and Stop Conditions",
					Description:   "Keep an agent on task and know when it is done.",
					Duration:      "20 min",
					Concepts:      []string{"agent loop", "termination", "reflection"},
					Prerequisites: []string{"tool-calling"},
					Theory: "An agent prompt needs three things a one-shot prompt does not: the goal " +
						"stated as a verifiable end state, the rules for choosing the next action, and an " +
						"explicit stop condition. Without a stop condition agents either loop forever or " +
						"declare victory early; both are prompt bugs, not model bugs.",
					Examples: []WorkedExample{
						{
							Title:       "Stop condition",
							Description: "The end state is checkable, not aspirational.",
							Code: "Keep fixing failing tests one at a time. Stop when `go test ./...`\n" +
								"exits 0, or after 10 iterations, whichever comes first.",
						},
					},
					Exercises: []Exercise{
						{
							ID:          "loops-ex-1",
							Title:       "Write a stop condition",
							Description: "Give the research agent a verifiable goal and an explicit stop condition with an iteration cap.",
							StarterCode: "Research this topic until you understand it.",
							Solution: "Research the topic by searching and reading sources one at a time.\n" +
								"Goal: produce a summary citing at least 5 distinct sources.\n" +
								"Stop when the summary cites 5 sources, or after 8 search iterations,\n" +
								"whichever comes first.",
							Hints: []string{
								"\"Understand it\" is not checkable. What artifact proves completion?",
								"Add a numeric cap on iterations as a safety net.",
								"Use the words \"stop when\" so the condition is unmissable.",
							},
							Rule: validation.All(
								"That agent will terminate. The goal is now a checkable artifact.",
								validation.NotEmpty(),
								validation.ContainsFold("stop when", "Spell out the stop condition (\"Stop when ...\")."),
								validation.ContainsAny([]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
									"Add a numeric bound: an iteration cap or a countable goal."),
							),
						},
					},
				},
			},
		},
	}
}

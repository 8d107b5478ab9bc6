package catalog

// Patterns returns the prompt-pattern library.
func Patterns() []Pattern {
	return []Pattern{
		{
			ID:          "persona",
			Name:        "Persona",
			Category:    "framing",
			Difficulty:  Beginner,
			Description: "Assign the model a role to focus its register and priorities.",
			Template:    "You are a {role} with expertise in {domain}. {task}",
			UseCases:    []string{"code review", "editing", "domain Q&A"},
		},
		{
			ID:          "few-shot",
			Name:        "Few-Shot Examples",
			Category:    "structure",
			Difficulty:  Beginner,
			Description: "Demonstrate the desired input/output mapping with two or three examples before the real input.",
			Template:    "Convert each entry.\n\nInput: {example-in-1}\nOutput: {example-out-1}\n\nInput: {example-in-2}\nOutput: {example-out-2}\n\nInput: {real-input}\nOutput:",
			UseCases:    []string{"classification", "reformatting", "extraction"},
		},
		{
			ID:          "chain-of-thought",
			Name:        "Chain of Thought",
			Category:    "reasoning",
			Difficulty:  Intermediate,
			Description: "Ask the model to reason step by step before committing to an answer.",
			Template:    "{problem}\n\nThink through the problem step by step, then state your final answer on a line starting with \"Answer:\".",
			UseCases:    []string{"math", "logic puzzles", "debugging"},
		},
		{
			ID:          "output-schema",
			Name:        "Output Schema",
			Category:    "structure",
			Difficulty:  Intermediate,
			Description: "Pin down machine-readable output by showing the exact JSON shape.",
			Template:    "{task}\n\nRespond with JSON only, matching:\n{schema}",
			UseCases:    []string{"pipelines", "API backends", "agents"},
		},
		{
			ID:          "reflection",
			Name:        "Self-Review",
			Category:    "reasoning",
			Difficulty:  Advanced,
			Description: "Have the model critique and revise its own draft before returning it.",
			Template:    "{task}\n\nFirst draft an answer. Then list weaknesses in the draft. Then output the improved final version only.",
			UseCases:    []string{"writing", "code generation", "analysis"},
		},
		{
			ID:          "tool-router",
			Name:        "Tool Router",
			Category:    "agents",
			Difficulty:  Advanced,
			Description: "Describe each tool with purpose, trigger, and parameter semantics so the agent can route unambiguously.",
			Template:    "{tool-name}: {what it does}. Use when {trigger}. Parameters: {name} ({type}, required|optional, {units/format}).",
			UseCases:    []string{"agent toolkits", "function calling"},
		},
	}
}

package catalog

// Templates returns the starter programs for the code playground.
func Templates() []CodeTemplate {
	return []CodeTemplate{
		{
			ID:          "tpl-hello-llm",
			Name:        "First API Call",
			Language:    "python",
			Description: "Minimal chat completion request.",
			Code: "import os\nfrom openai import OpenAI\n\n" +
				"client = OpenAI(api_key=os.environ[\"API_KEY\"])\n" +
				"resp = client.chat.completions.create(\n" +
				"    model=\"gpt-4o-mini\",\n" +
				"    messages=[{\"role\": \"user\", \"content\": \"Say hello in Portuguese.\"}],\n" +
				")\n" +
				"print(resp.choices[0].message.content)\n",
		},
		{
			ID:          "tpl-structured",
			Name:        "Structured Output",
			Language:    "python",
			Description: "Request JSON and parse it.",
			Code: "import json, os\nfrom openai import OpenAI\n\n" +
				"client = OpenAI(api_key=os.environ[\"API_KEY\"])\n" +
				"resp = client.chat.completions.create(\n" +
				"    model=\"gpt-4o-mini\",\n" +
				"    response_format={\"type\": \"json_object\"},\n" +
				"    messages=[{\"role\": \"user\", \"content\": \"List 3 cities as {\\\"cities\\\": [...]}.\"}],\n" +
				")\n" +
				"print(json.loads(resp.choices[0].message.content))\n",
		},
		{
			ID:          "tpl-tool-loop",
			Name:        "Tool-Calling Loop",
			Language:    "python",
			Description: "Skeleton agent loop with one tool and a hard iteration cap.",
			Code: "MAX_ITERATIONS = 10\n\n" +
				"for i in range(MAX_ITERATIONS):\n" +
				"    reply = step(conversation)\n" +
				"    if reply.tool_call is None:\n" +
				"        break\n" +
				"    result = run_tool(reply.tool_call)\n" +
				"    conversation.append(tool_result(result))\n",
		},
	}
}

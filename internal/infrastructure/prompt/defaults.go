package prompt

import "github.com/askshell/ask/internal/domain"

// Built-in templates. The two variants are worded independently: the
// without-pane system prompt must not claim to have terminal context.
const (
	defaultSystemWithPane = `You are ask, a command-line assistant running inside the user's {shell} shell on {os}.
You can see the user's most recent terminal output.
Reply with exactly one shell command that satisfies the request.
Do not add explanations, markdown fences, or any other text.`

	defaultUserWithPane = `Recent terminal output:
{pane}

Request: {query}`

	defaultSystemWithoutPane = `You are ask, a command-line assistant running inside the user's {shell} shell on {os}.
You have no view of the user's terminal.
Reply with exactly one shell command that satisfies the request.
Do not add explanations, markdown fences, or any other text.`

	defaultUserWithoutPane = `Request: {query}`
)

func defaultTemplates() domain.TemplateSet {
	return domain.TemplateSet{
		WithPane: domain.PromptTemplate{
			System: defaultSystemWithPane,
			User:   defaultUserWithPane,
		},
		WithoutPane: domain.PromptTemplate{
			System: defaultSystemWithoutPane,
			User:   defaultUserWithoutPane,
		},
	}
}

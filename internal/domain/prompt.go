package domain

// PaneContext is a snapshot of recent terminal output, captured once per
// invocation. It may be empty: the shell integration did not supply one, or
// the operator suppressed it.
type PaneContext struct {
	Text string
}

// Present reports whether any pane text was captured.
func (p PaneContext) Present() bool {
	return p.Text != ""
}

// PromptTemplate is a (system, user) template pair. Each string may contain
// zero or more {placeholder} tokens.
type PromptTemplate struct {
	System string
	User   string
}

// TemplateSet holds both template variants. The with-pane and without-pane
// variants may differ materially in wording, so selecting between them is a
// hard branch rather than a textual fallback.
type TemplateSet struct {
	WithPane    PromptTemplate
	WithoutPane PromptTemplate
}

// ResolvedPrompt is the (system, user) message pair after placeholder
// substitution. This is what crosses the provider boundary.
type ResolvedPrompt struct {
	System string
	User   string
}

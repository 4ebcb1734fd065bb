package config

// Mode is a named analysis preset: a label and prompt chips for the UI,
// and an instruction block appended to the system prompt.
type Mode struct {
	Label       string   `toml:"label"`
	Instruction string   `toml:"instruction"`
	Chips       []string `toml:"chips"`
}

// mergeModes lays user-defined modes over the built-in catalog. A user mode
// with a built-in key replaces that mode wholesale.
func mergeModes(custom map[string]Mode) map[string]Mode {
	modes := builtinModes()
	for key, mode := range custom {
		modes[key] = mode
	}
	return modes
}

func builtinModes() map[string]Mode {
	return map[string]Mode{
		"general": {
			Label: "🏢 General",
			Instruction: `MODE: General Knowledge Assistant.
Answer questions about company policies, HR procedures, onboarding, benefits,
IT guidelines, and any internal knowledge thoroughly and clearly.`,
			Chips: []string{
				"What is the leave policy?",
				"Explain the reimbursement rules",
				"What are the IT security guidelines?",
				"Summarize the HR compliance requirements",
				"What is the remote work policy?",
				"Give me a 5-point document summary",
			},
		},
		"legal": {
			Label: "⚖️ Legal",
			Instruction: `MODE: Legal Contract Analyzer.
Focus on legal provisions, clauses, obligations, rights, and contractual risks.
Use precise legal terminology. Always add: 'This is not legal advice.'`,
			Chips: []string{
				"What are the termination conditions?",
				"List all indemnification clauses",
				"What are the governing law provisions?",
				"Extract all IP ownership terms",
				"What are the dispute resolution mechanisms?",
				"Summarize NDA obligations",
			},
		},
		"finance": {
			Label: "💰 Finance",
			Instruction: `MODE: Financial Document Reviewer.
Focus on monetary figures, payment terms, penalties, financial obligations,
and fiscal risk. Format all figures clearly with currency symbols.`,
			Chips: []string{
				"What financial penalties apply?",
				"List all payment milestones",
				"What are the late payment consequences?",
				"Summarize all financial obligations",
				"What revenue sharing terms exist?",
				"Identify any hidden costs or fees",
			},
		},
		"risk": {
			Label: "🛡️ Risk",
			Instruction: `MODE: Risk Intelligence Scanner.
Identify, categorize, and score risks as:
  🔴 HIGH   — immediate legal, financial, or operational exposure
  🟡 MEDIUM — significant risk requiring attention
  🟢 LOW    — minor or standard boilerplate risk

Provide a structured risk register: Risk | Category | Severity | Clause | Action.`,
			Chips: []string{
				"Highlight the key liability risks",
				"What compliance violations are mentioned?",
				"Score the overall contract risk level",
				"What limitations of liability exist?",
				"Identify all force majeure provisions",
				"What indemnity obligations do we hold?",
			},
		},
	}
}

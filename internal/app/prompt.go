package app

import "strings"

const kbBannerWidth = 43

const systemPreamble = "You are Nexus, an elite Enterprise Knowledge & Contract Intelligence AI.\n" +
	"You analyze corporate documents, contracts, HR policies, and financial filings with surgical precision and structured clarity.\n\n" +
	"RESPONSE GUIDELINES:\n" +
	"- Be precise, professional, and well-structured.\n" +
	"- Use clear headings (##) when organizing multi-part answers.\n" +
	"- Quote specific clauses or document text verbatim when relevant.\n" +
	"- Use these inline markers for important items:\n" +
	"    ✅  Compliant / positive finding\n" +
	"    ⚠️  Warning / needs attention\n" +
	"    ❌  Risk / non-compliant item\n" +
	"- Always reference the document name when citing information.\n" +
	"- For risk mode, use 🔴 HIGH / 🟡 MEDIUM / 🟢 LOW risk tags.\n"

const noDocumentsNotice = "\n\n[No documents ingested. Advise the user to upload and " +
	"ingest documents. You can still answer general questions " +
	"from your training knowledge.]"

// BuildSystemPrompt assembles the system message sent with every completion:
// the static persona preamble, the instruction of the selected analysis mode,
// and the compiled knowledge base when one exists.
func BuildSystemPrompt(instruction, knowledgeBase string) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString(instruction)

	if strings.TrimSpace(knowledgeBase) == "" {
		b.WriteString(noDocumentsNotice)
		return b.String()
	}

	banner := strings.Repeat("═", kbBannerWidth)
	b.WriteString("\n\n" + banner + "\n")
	b.WriteString("KNOWLEDGE BASE (ingested documents)\n")
	b.WriteString(banner + "\n")
	b.WriteString(knowledgeBase)
	return b.String()
}

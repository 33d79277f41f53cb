package testcase

import "strings"

// FallbackPhrase is what the model is told to write when the domain
// knowledge does not cover a precondition.
const FallbackPhrase = "Preconditions: Information not available in provided domain knowledge"

const fence = "```"

const promptHead = `
You are a Senior QA Engineer specialised in healthcare applications testing.

### Objective:
Using the provided domain knowledge, generate detailed manual test cases for the given User Story or Bug Report.

### Instructions:
- Generate multiple structured test cases covering positive, negative, and boundary scenarios wherever applicable.
- Use only the information from the domain knowledge to stay contextually relevant to healthcare processes.
- If required information is missing, note "` + FallbackPhrase + `".

### Output Format:
` + fence + `
Test Case ID: <ID>
Description: <description>
Preconditions: <preconditions>
Test Steps:
1. <step one>
2. <step two>
...
Expected Result: <expected result>
` + fence + `

### Domain Knowledge:
`

const (
	storyHeading = "\n\n### User Story or Bug Report:\n"
	generateCue  = "\n\n### Generated Test Cases:\n"
)

// BuildPrompt renders the generation prompt. Knowledge and story are inserted
// verbatim; both are required.
func BuildPrompt(knowledge, userStory string) (string, error) {
	if userStory == "" {
		return "", ErrNoUserStory
	}
	if knowledge == "" {
		return "", ErrKnowledgeNotUploaded
	}
	var b strings.Builder
	b.Grow(len(promptHead) + len(knowledge) + len(storyHeading) + len(userStory) + len(generateCue))
	b.WriteString(promptHead)
	b.WriteString(knowledge)
	b.WriteString(storyHeading)
	b.WriteString(userStory)
	b.WriteString(generateCue)
	return b.String(), nil
}

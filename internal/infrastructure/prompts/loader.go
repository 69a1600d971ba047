package prompts

import (
	_ "embed"
)

//go:embed intent.txt
var IntentPrompt string

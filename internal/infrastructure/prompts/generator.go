package prompts

import (
	"bytes"
	"strings"
	"text/template"

	"alfred/internal/domain/entity"
)

type IntentPromptData struct {
	Utterance string
	Intents   []string
}

// NewIntentPromptData lists every intent except unknown, in a stable order.
func NewIntentPromptData(utterance string) IntentPromptData {
	intents := []entity.Intent{
		entity.IntentOpenWebsite,
		entity.IntentSearch,
		entity.IntentScroll,
		entity.IntentNavigate,
		entity.IntentClick,
		entity.IntentList,
		entity.IntentExit,
	}
	names := make([]string, 0, len(intents))
	for _, i := range intents {
		names = append(names, i.String())
	}
	return IntentPromptData{Utterance: utterance, Intents: names}
}

var funcs = template.FuncMap{"join": strings.Join}

// Compile parses a prompt template once so it can be rendered per utterance.
func Compile(name, baseTemplate string) (*template.Template, error) {
	return template.New(name).Funcs(funcs).Parse(baseTemplate)
}

func Render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

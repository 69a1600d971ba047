package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentPrompt_Render(t *testing.T) {
	tmpl, err := Compile("intent", IntentPrompt)
	require.NoError(t, err)

	out, err := Render(tmpl, NewIntentPromptData("open youtube"))
	require.NoError(t, err)

	assert.Contains(t, out, `Command: "open youtube"`)
	assert.Contains(t, out, "open_website, search, scroll, navigate, click, list, exit")
	assert.NotContains(t, out, "unknown")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Return ONLY the JSON object with no additional text."))
}

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile("bad", "{{.Utterance")
	assert.Error(t, err)
}

func TestRender_MissingField(t *testing.T) {
	tmpl, err := Compile("x", "{{.Nope}}")
	require.NoError(t, err)

	_, err = Render(tmpl, NewIntentPromptData("hi"))
	assert.Error(t, err)
}

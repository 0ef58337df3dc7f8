package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPlain(t *testing.T) {
	out, err := extractJSON(`{"status":"法律問題"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"法律問題"}`, out)
}

func TestExtractJSONFenced(t *testing.T) {
	content := "```json\n{\"status\":\"法律問題\"}\n```"
	out, err := extractJSON(content)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"法律問題"}`, out)

	content = "```\n{\"a\":1}\n```"
	out, err = extractJSON(content)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)
}

func TestExtractJSONBraceSpan(t *testing.T) {
	content := "以下是結果：\n{\"a\":{\"b\":1}}\n以上。"
	out, err := extractJSON(content)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":1}}`, out)
}

func TestExtractJSONNoDocument(t *testing.T) {
	var formatErr *FormatError

	_, err := extractJSON("抱歉，我無法回答這個問題。")
	require.ErrorAs(t, err, &formatErr)

	_, err = extractJSON("")
	require.ErrorAs(t, err, &formatErr)

	_, err = extractJSON("}{")
	require.ErrorAs(t, err, &formatErr)
}

package tfout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractErrorMessageText(t *testing.T) {
	t.Parallel()

	got := ExtractErrorMessage("  Unauthorized access  \r\n", "ignored")
	assert.Equal(t, "Unauthorized access", got)
}

func TestExtractErrorMessageEmptyText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", ExtractErrorMessage("   ", "boom"))
}

func TestExtractErrorMessageList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		fallback string
		want     string
	}{
		{
			"msg fields and strings joined in order",
			[]any{map[string]any{"msg": "a"}, map[string]any{"msg": "b"}, "c"},
			"fallback",
			"a, b, c",
		},
		{
			"items without messages contribute nothing",
			[]any{map[string]any{"code": 42}, 7, nil, "only one"},
			"fallback",
			"only one",
		},
		{
			"empty list falls back",
			[]any{},
			"fallback",
			"fallback",
		},
		{
			"blank messages skipped",
			[]any{map[string]any{"msg": "  "}, ""},
			"fallback",
			"fallback",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtractErrorMessage(tt.input, tt.fallback))
		})
	}
}

func TestExtractErrorMessageCandidateKeyPriority(t *testing.T) {
	t.Parallel()

	got := ExtractErrorMessage(map[string]any{
		"detail":  "D",
		"error":   "E",
		"message": "M",
	}, "fallback")
	assert.Equal(t, "D", got)
}

func TestExtractErrorMessageCandidateKeySkipsBlank(t *testing.T) {
	t.Parallel()

	// detail is present but blank; the scan moves on to error.
	got := ExtractErrorMessage(map[string]any{
		"detail": "   ",
		"error":  "E",
	}, "fallback")
	assert.Equal(t, "E", got)
}

func TestExtractErrorMessageCandidateKeyIgnoresNonText(t *testing.T) {
	t.Parallel()

	got := ExtractErrorMessage(map[string]any{
		"detail": map[string]any{"code": 1},
		"reason": "quota exceeded",
	}, "fallback")
	assert.Equal(t, "quota exceeded", got)
}

func TestExtractErrorMessageEmptyMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fallback", ExtractErrorMessage(map[string]any{}, "fallback"))
}

func TestExtractErrorMessageFallbackSafety(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Request failed.", ExtractErrorMessage(map[string]any{}, ""))
	assert.Equal(t, "Request failed.", ExtractErrorMessage(nil, "  \r\n "))
}

func TestExtractErrorMessageLogPatternPriorityAndRecency(t *testing.T) {
	t.Parallel()

	logs := "line1\nFailed to connect\nerror: timeout\nFailed again"
	got := ExtractErrorMessage(map[string]any{"logs": logs}, "fallback")

	// "error:" outranks "failed", and within a pattern the most recent
	// matching line wins.
	assert.Equal(t, "error: timeout", got)
}

func TestExtractErrorMessageLogsLastLineFallback(t *testing.T) {
	t.Parallel()

	logs := "fetching state\nplanning changes\nall done"
	got := ExtractErrorMessage(map[string]any{"logs": logs}, "fallback")
	assert.Equal(t, "all done", got)
}

func TestExtractErrorMessageLogsBeatFormattedOutput(t *testing.T) {
	t.Parallel()

	got := ExtractErrorMessage(map[string]any{
		"logs":  "provisioning\nAPI error (403): forbidden",
		"state": "broken",
	}, "fallback")
	assert.Equal(t, "API error (403): forbidden", got)
}

func TestExtractErrorMessageMapWithoutSignalsFormats(t *testing.T) {
	t.Parallel()

	got := ExtractErrorMessage(map[string]any{"status": 500, "title": "Bad"}, "fallback")

	// No candidate key and no logs: the sanitized JSON rendering is the
	// best remaining summary.
	assert.Equal(t, "{\n  \"status\": 500,\n  \"title\": \"Bad\"\n}", got)
}

func TestExtractErrorMessageScalarPayloads(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fallback", ExtractErrorMessage(nil, "fallback"))
	assert.Equal(t, "fallback", ExtractErrorMessage(true, "fallback"))
	assert.Equal(t, "fallback", ExtractErrorMessage(3.14, "fallback"))
}

func TestLogErrorLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		logs   string
		want   string
		wantOK bool
	}{
		{
			"aws parameter error outranks generic failure",
			"Failed to create\nInvalidParameterCombination: bad subnet\ndone",
			"InvalidParameterCombination: bad subnet",
			true,
		},
		{
			"vpc pattern outranks error prefix",
			"error: something\nVPCIdNotSpecified: no default VPC",
			"VPCIdNotSpecified: no default VPC",
			true,
		},
		{
			"case insensitive match",
			"step one\nUNAUTHORIZED request",
			"UNAUTHORIZED request",
			true,
		},
		{
			"resource not found",
			"reading resource\nresource not found\ncleanup",
			"resource not found",
			true,
		},
		{
			"no pattern returns last non-empty line",
			"alpha\nbeta\n\n  \n",
			"beta",
			true,
		},
		{
			"empty log has no line",
			"  \n \r\n ",
			"",
			false,
		},
		{
			"ansi noise stripped before matching",
			"\x1b[31merror: disk full\x1b[0m",
			"error: disk full",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := LogErrorLine(tt.logs)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractErrorMessageEmptyLogsFallsThrough(t *testing.T) {
	t.Parallel()

	// The logs field has no usable lines, and with logs omitted the map
	// renders empty, so the "logs shown below" placeholder is the result
	// of the format fallback.
	got := ExtractErrorMessage(map[string]any{"logs": "  \n "}, "fallback")
	assert.Equal(t, "No structured Terraform output (logs shown below).", got)
}

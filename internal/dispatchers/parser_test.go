package dispatchers

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gnote-tools/cli/internal/usage"
)

func testingCommand() CommandSpec {
	return CommandSpec{
		Name:     "testing",
		Help:     "exercise the grammar",
		FirstArg: "--test_req_arg",
		Arguments: []ArgumentSpec{
			{Name: "--test_req_arg", Alias: "-tra", Help: "required", Required: true},
			{Name: "--test_arg", Alias: "-ta", Help: "optional", EmptyValue: Some(nil)},
			{Name: "--test_arg2", Alias: "-ta2", Help: "optional too"},
		},
		Flags: []FlagSpec{
			{Name: "--test_flag", Alias: "-tf", Help: "a flag", Default: Some(false)},
		},
	}
}

func newTestParser(t *testing.T, specs ...CommandSpec) (*Parser, *bytes.Buffer) {
	t.Helper()
	table, err := NewTable(specs...)
	require.NoError(t, err)

	var buf bytes.Buffer
	return NewParser(table, WithOutput(&buf)), &buf
}

func requireUsageError(t *testing.T, err error, kind usage.ErrorKind) *usage.Error {
	t.Helper()
	var ue *usage.Error
	require.True(t, errors.As(err, &ue), "expected *usage.Error, got %v", err)
	require.Equal(t, kind, ue.Kind)
	require.True(t, ue.Shown)
	return ue
}

func TestParse_TestingScenario(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   Options
	}{
		{
			name:   "bare value fills first argument",
			tokens: []string{"testing", "test_def_val"},
			want:   Options{"test_req_arg": "test_def_val", "test_flag": false},
		},
		{
			name:   "trailing argument resolves to empty value",
			tokens: []string{"testing", "test_def_val", "--test_arg"},
			want:   Options{"test_req_arg": "test_def_val", "test_arg": nil, "test_flag": false},
		},
		{
			name:   "aliases",
			tokens: []string{"testing", "-tra", "test_def_val", "-tf"},
			want:   Options{"test_req_arg": "test_def_val", "test_flag": true},
		},
		{
			name:   "second optional argument",
			tokens: []string{"testing", "v", "-ta2", "other"},
			want:   Options{"test_req_arg": "v", "test_arg2": "other", "test_flag": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestParser(t, testingCommand())
			res, err := p.Parse(tt.tokens)
			require.NoError(t, err)
			require.Equal(t, "testing", res.Command)
			require.Equal(t, tt.want, res.Options)
		})
	}
}

func TestParse_TestingScenarioFailures(t *testing.T) {
	t.Run("argument name in value position", func(t *testing.T) {
		p, buf := newTestParser(t, testingCommand())
		_, err := p.Parse([]string{"testing", "--test_req_arg", "--test_arg"})
		ue := requireUsageError(t, err, usage.ErrUnexpectedValue)
		require.Equal(t, `Unexpected value "--test_arg" for argument "--test_req_arg"`, ue.Message)
		require.Contains(t, buf.String(), ue.Message)
		require.Contains(t, buf.String(), "Options for: testing")
	})

	t.Run("no value for first argument", func(t *testing.T) {
		p, buf := newTestParser(t, testingCommand())
		_, err := p.Parse([]string{"testing"})
		ue := requireUsageError(t, err, usage.ErrUnexpectedValue)
		require.Equal(t, `Unexpected value "" for argument "--test_req_arg"`, ue.Message)
		require.Contains(t, buf.String(), "Available arguments:")
	})
}

func TestParse_NoTokens(t *testing.T) {
	table := MustTable(testingCommand())
	var buf bytes.Buffer
	p := NewParser(table, WithOutput(&buf), WithAbout(func(w io.Writer) {
		_, _ = io.WriteString(w, "about gnote\n")
	}))

	_, err := p.Parse(nil)
	require.ErrorIs(t, err, ErrNoCommand)
	require.Equal(t, "about gnote\n", buf.String())
}

func TestParse_GeneralHelp(t *testing.T) {
	p, buf := newTestParser(t, testingCommand(), CommandSpec{Name: "ab", Help: "short"})
	_, err := p.Parse([]string{"--help"})
	require.ErrorIs(t, err, ErrHelp)
	require.Equal(t, "Available commands:\n     ab : short\ntesting : exercise the grammar\n", buf.String())
}

func TestParse_CommandHelp(t *testing.T) {
	p, buf := newTestParser(t, testingCommand())
	_, err := p.Parse([]string{"testing", "value", "--help"})
	require.ErrorIs(t, err, ErrHelp)

	want := "Options for: testing\n" +
		"Available arguments:\n" +
		"--test_req_arg : [default] required\n" +
		"    --test_arg : optional\n" +
		"   --test_arg2 : optional too\n" +
		"Available flags:\n" +
		"   --test_flag : a flag\n"
	require.Equal(t, want, buf.String())
}

func TestParse_UnknownCommand(t *testing.T) {
	p, buf := newTestParser(t, testingCommand())
	_, err := p.Parse([]string{"testin"})
	ue := requireUsageError(t, err, usage.ErrUnknownCommand)
	require.Contains(t, ue.Message, `Unexpected command "testin"`)
	require.Contains(t, ue.Message, "Did you mean?\n   testing")
	require.Contains(t, buf.String(), "Available commands:")
}

func TestParse_CompletionKeyword(t *testing.T) {
	p, buf := newTestParser(t, testingCommand())
	_, err := p.Parse([]string{CompletionKeyword, "testing", "--test_flag"})
	require.ErrorIs(t, err, ErrCompletion)
	require.Equal(t, "--test_req_arg --test_arg --test_arg2\n", buf.String())
}

func TestParse_EmptyTokensYieldDefaults(t *testing.T) {
	p, _ := newTestParser(t, CommandSpec{
		Name: "plain",
		Arguments: []ArgumentSpec{
			{Name: "--count", Type: TypeInt, Default: Some(20)},
			{Name: "--title"},
		},
		Flags: []FlagSpec{
			{Name: "--force", Default: Some(false)},
			{Name: "--quiet"},
		},
	})

	res, err := p.Parse([]string{"plain"})
	require.NoError(t, err)
	require.Equal(t, Options{"count": 20, "force": false}, res.Options)
}

func TestParse_EmptyTokensWithRequired(t *testing.T) {
	p, _ := newTestParser(t, CommandSpec{
		Name:      "needs",
		Arguments: []ArgumentSpec{{Name: "--title", Required: true}},
	})

	_, err := p.Parse([]string{"needs"})
	ue := requireUsageError(t, err, usage.ErrMissingArgument)
	require.Equal(t, `Not found required argument "--title" for command "needs"`, ue.Message)
}

func TestParse_FirstArgEmptyValue(t *testing.T) {
	p, _ := newTestParser(t, CommandSpec{
		Name:      "find",
		FirstArg:  "--search",
		Arguments: []ArgumentSpec{{Name: "--search", EmptyValue: Some("*")}},
	})

	res, err := p.Parse([]string{"find"})
	require.NoError(t, err)
	require.Equal(t, Options{"search": "*"}, res.Options)
}

func TestParse_AliasEquivalence(t *testing.T) {
	spec := CommandSpec{
		Name: "create",
		Arguments: []ArgumentSpec{
			{Name: "--title", Alias: "-t"},
			{Name: "--notebook", Alias: "-nb"},
		},
	}
	p, _ := newTestParser(t, spec)

	long, err := p.Parse([]string{"create", "--title", "v", "--notebook", "n"})
	require.NoError(t, err)
	short, err := p.Parse([]string{"create", "-nb", "n", "-t", "v"})
	require.NoError(t, err)
	mixed, err := p.Parse([]string{"create", "-t", "v", "--notebook", "n"})
	require.NoError(t, err)

	require.Equal(t, long.Options, short.Options)
	require.Equal(t, long.Options, mixed.Options)
}

func TestParse_AliasRewritesFirstOccurrenceOnly(t *testing.T) {
	p, _ := newTestParser(t, CommandSpec{
		Name:      "create",
		Arguments: []ArgumentSpec{{Name: "--title", Alias: "-t"}},
	})

	// The second "-t" is not rewritten, so it is not a known name.
	_, err := p.Parse([]string{"create", "-t", "a", "-t", "b"})
	ue := requireUsageError(t, err, usage.ErrUnexpectedArgument)
	require.Equal(t, `Unexpected argument "-t" for command "create"`, ue.Message)

	res, err := p.Parse([]string{"create", "-t", "-t"})
	require.NoError(t, err)
	require.Equal(t, Options{"title": "-t"}, res.Options)
}

func TestParse_Repetitive(t *testing.T) {
	p, _ := newTestParser(t, CommandSpec{
		Name:      "tagged",
		Arguments: []ArgumentSpec{{Name: "--tag", Alias: "-tg", Repetitive: true}},
	})

	res, err := p.Parse([]string{"tagged", "--tag", "a", "-tg", "b", "--tag", "c"})
	require.NoError(t, err)
	require.Equal(t, []any{"a", "b", "c"}, res.Options["tag"])
	require.Equal(t, []string{"a", "b", "c"}, res.Options.Strings("tag"))
}

func TestParse_LastValueWins(t *testing.T) {
	p, _ := newTestParser(t, CommandSpec{
		Name:      "titled",
		Arguments: []ArgumentSpec{{Name: "--title"}},
	})

	res, err := p.Parse([]string{"titled", "--title", "a", "--title", "b"})
	require.NoError(t, err)
	require.Equal(t, Options{"title": "b"}, res.Options)
}

func TestParse_RequiredFailsWhateverElseIsGiven(t *testing.T) {
	p, _ := newTestParser(t, CommandSpec{
		Name: "create",
		Arguments: []ArgumentSpec{
			{Name: "--title", Required: true},
			{Name: "--content"},
			{Name: "--tag", Repetitive: true},
		},
		Flags: []FlagSpec{{Name: "--raw"}},
	})

	_, err := p.Parse([]string{"create", "--content", "x", "--tag", "a", "--raw"})
	requireUsageError(t, err, usage.ErrMissingArgument)
}

func TestParse_UnexpectedArgument(t *testing.T) {
	p, buf := newTestParser(t, testingCommand())
	_, err := p.Parse([]string{"testing", "v", "--bogus"})
	ue := requireUsageError(t, err, usage.ErrUnexpectedArgument)
	require.Equal(t, `Unexpected argument "--bogus" for command "testing"`, ue.Message)
	require.Contains(t, buf.String(), "Options for: testing")
}

func TestParse_BackToBackWithEmptyValue(t *testing.T) {
	spec := CommandSpec{
		Name: "settings",
		Arguments: []ArgumentSpec{
			{Name: "--editor", EmptyValue: Some("#GET#")},
			{Name: "--extras", EmptyValue: Some("#GET#")},
		},
		Flags: []FlagSpec{{Name: "--force", Default: Some(false)}},
	}

	tests := []struct {
		name   string
		tokens []string
		want   Options
	}{
		{
			name:   "argument then argument with value",
			tokens: []string{"settings", "--editor", "--extras", "x"},
			want:   Options{"editor": "#GET#", "extras": "x", "force": false},
		},
		{
			name:   "argument then argument at end",
			tokens: []string{"settings", "--editor", "--extras"},
			want:   Options{"editor": "#GET#", "extras": "#GET#", "force": false},
		},
		{
			name:   "argument then flag sets the flag",
			tokens: []string{"settings", "--editor", "--force"},
			want:   Options{"editor": "#GET#", "force": true},
		},
		{
			name:   "flag then value after empty value",
			tokens: []string{"settings", "--editor", "--force", "--extras", "y"},
			want:   Options{"editor": "#GET#", "extras": "y", "force": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestParser(t, spec)
			res, err := p.Parse(tt.tokens)
			require.NoError(t, err)
			require.Equal(t, tt.want, res.Options)
		})
	}
}

func TestParse_RepetitiveEmptyValue(t *testing.T) {
	spec := CommandSpec{
		Name: "label",
		Arguments: []ArgumentSpec{
			{Name: "--req", EmptyValue: Some("R")},
			{Name: "--tag", Repetitive: true, EmptyValue: Some("E")},
		},
	}

	tests := []struct {
		name   string
		tokens []string
		want   Options
	}{
		{
			name:   "empty value at end is appended",
			tokens: []string{"label", "--req", "--tag", "a", "--tag"},
			want:   Options{"req": "R", "tag": []any{"a", "E"}},
		},
		{
			name:   "empty value before a name is appended",
			tokens: []string{"label", "--tag", "--tag", "b"},
			want:   Options{"tag": []any{"E", "b"}},
		},
		{
			name:   "only an empty value",
			tokens: []string{"label", "--tag"},
			want:   Options{"tag": []any{"E"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestParser(t, spec)
			res, err := p.Parse(tt.tokens)
			require.NoError(t, err)
			require.Equal(t, tt.want, res.Options)
		})
	}
}

func TestParse_IntCoercion(t *testing.T) {
	spec := CommandSpec{
		Name:      "find",
		Arguments: []ArgumentSpec{{Name: "--count", Alias: "-cn", Type: TypeInt}},
	}

	tests := []struct {
		value string
		want  int
		ok    bool
	}{
		{value: "10", want: 10, ok: true},
		{value: "-3", want: -3, ok: true},
		{value: "+7", want: 7, ok: true},
		{value: " 42 ", want: 42, ok: true},
		{value: "ten"},
		{value: "1.5"},
		{value: "0x10"},
		{value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			p, _ := newTestParser(t, spec)
			res, err := p.Parse([]string{"find", "-cn", tt.value})
			if !tt.ok {
				ue := requireUsageError(t, err, usage.ErrUnexpectedValue)
				require.Contains(t, ue.Message, `for argument "--count"`)
				return
			}
			require.NoError(t, err)
			n, ok := res.Options.Int("count")
			require.True(t, ok)
			require.Equal(t, tt.want, n)
		})
	}
}

func TestParse_FlagCustomValue(t *testing.T) {
	p, _ := newTestParser(t, CommandSpec{
		Name:  "show",
		Flags: []FlagSpec{{Name: "--raw", Value: "raw"}},
	})

	res, err := p.Parse([]string{"show", "--raw"})
	require.NoError(t, err)
	require.Equal(t, Options{"raw": "raw"}, res.Options)
}

func TestParse_ParserIsReusable(t *testing.T) {
	p, _ := newTestParser(t, CommandSpec{
		Name:      "tagged",
		Arguments: []ArgumentSpec{{Name: "--tag", Repetitive: true}},
	})

	first, err := p.Parse([]string{"tagged", "--tag", "a"})
	require.NoError(t, err)
	second, err := p.Parse([]string{"tagged", "--tag", "b"})
	require.NoError(t, err)

	require.Equal(t, []any{"a"}, first.Options["tag"])
	require.Equal(t, []any{"b"}, second.Options["tag"])
}

func TestParse_DoesNotMutateTokens(t *testing.T) {
	p, _ := newTestParser(t, testingCommand())
	tokens := []string{"testing", "-tra", "v", "-tf"}
	_, err := p.Parse(tokens)
	require.NoError(t, err)
	require.Equal(t, []string{"testing", "-tra", "v", "-tf"}, tokens)
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"--test-arg":      "test_arg",
		"--note_ext":      "note_ext",
		"-t":              "t",
		"--with-notebook": "with_notebook",
		"plain":           "plain",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			require.Equal(t, want, Normalize(in))
		})
	}
}

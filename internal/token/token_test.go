package token

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty_input",
			input: "",
			want:  []Token{},
		},
		{
			name:  "whitespace_only",
			input: " \t\n ",
			want:  []Token{},
		},
		{
			name:  "structural_only",
			input: "{}",
			want: []Token{
				{Kind: KindStructural, Text: "{"},
				{Kind: KindStructural, Text: "}"},
			},
		},
		{
			name:  "adjacent_structural_produces_no_empty_tokens",
			input: "[,]",
			want: []Token{
				{Kind: KindStructural, Text: "["},
				{Kind: KindStructural, Text: ","},
				{Kind: KindStructural, Text: "]"},
			},
		},
		{
			name:  "bare_identifier",
			input: "hello",
			want: []Token{
				{Kind: KindBare, Text: "hello"},
			},
		},
		{
			name:  "whitespace_separates_bare_tokens",
			input: "a   b",
			want: []Token{
				{Kind: KindBare, Text: "a"},
				{Kind: KindBare, Text: "b"},
			},
		},
		{
			name:  "double_quoted_string",
			input: `"hello"`,
			want: []Token{
				{Kind: KindString, Text: `"hello"`},
			},
		},
		{
			name:  "single_quoted_string_normalized",
			input: `'hello'`,
			want: []Token{
				{Kind: KindString, Text: `"hello"`},
			},
		},
		{
			name:  "structural_inside_string_is_text",
			input: `"a:b,c"`,
			want: []Token{
				{Kind: KindString, Text: `"a:b,c"`},
			},
		},
		{
			name:  "other_quote_inside_single_quoted_string",
			input: `'say "hi"'`,
			want: []Token{
				{Kind: KindString, Text: `"say \"hi\""`},
			},
		},
		{
			name:  "single_quote_inside_double_quoted_string",
			input: `"it's"`,
			want: []Token{
				{Kind: KindString, Text: `"it's"`},
			},
		},
		{
			name:  "escaped_single_quote_loses_backslash",
			input: `'it\'s ok'`,
			want: []Token{
				{Kind: KindString, Text: `"it's ok"`},
			},
		},
		{
			name:  "escape_sequences_preserved",
			input: `"line\nbreak A \\"`,
			want: []Token{
				{Kind: KindString, Text: `"line\nbreak A \\"`},
			},
		},
		{
			name:  "escaped_double_quote_does_not_close_string",
			input: `"a\"b"`,
			want: []Token{
				{Kind: KindString, Text: `"a\"b"`},
			},
		},
		{
			name:  "object_with_unquoted_key",
			input: "{a: 1}",
			want: []Token{
				{Kind: KindStructural, Text: "{"},
				{Kind: KindBare, Text: "a"},
				{Kind: KindStructural, Text: ":"},
				{Kind: KindBare, Text: "1"},
				{Kind: KindStructural, Text: "}"},
			},
		},
		{
			name:  "mixed_quotes_and_delimiters",
			input: `{a: [1, 'x']}`,
			want: []Token{
				{Kind: KindStructural, Text: "{"},
				{Kind: KindBare, Text: "a"},
				{Kind: KindStructural, Text: ":"},
				{Kind: KindStructural, Text: "["},
				{Kind: KindBare, Text: "1"},
				{Kind: KindStructural, Text: ","},
				{Kind: KindString, Text: `"x"`},
				{Kind: KindStructural, Text: "]"},
				{Kind: KindStructural, Text: "}"},
			},
		},
		{
			name:  "unterminated_string_flushes_at_end",
			input: `"abc`,
			want: []Token{
				{Kind: KindString, Text: `"abc`},
			},
		},
		{
			name:  "trailing_bare_token_flushes_at_end",
			input: "[1, 2",
			want: []Token{
				{Kind: KindStructural, Text: "["},
				{Kind: KindBare, Text: "1"},
				{Kind: KindStructural, Text: ","},
				{Kind: KindBare, Text: "2"},
			},
		},
		{
			name:  "negative_number_with_exponent",
			input: "-1.5e10",
			want: []Token{
				{Kind: KindBare, Text: "-1.5e10"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

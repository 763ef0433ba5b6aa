package escape

import "testing"

func TestHTML(t *testing.T) {
	t.Parallel()

	if got, want := HTML(`<a href="x">&'`), "&lt;a href=&#34;x&#34;&gt;&amp;&#39;"; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestUnescapeHTMLRoundTrip(t *testing.T) {
	t.Parallel()

	input := `<b>"quotes" & 'ticks'</b>`
	if got := UnescapeHTML(HTML(input)); got != input {
		t.Errorf("UnescapeHTML(HTML(%q)) = %q", input, got)
	}
}

func TestAttribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{`plain`, `plain`},
		{`a"b`, `a&quot;b`},
		{"tab\there", "tab&#9;here"},
		{"line\nbreak", "line&#10;break"},
		{`<&>`, `&lt;&amp;&gt;`},
	}

	for _, tt := range tests {
		if got := Attribute(tt.input); got != tt.want {
			t.Errorf("Attribute(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestURL(t *testing.T) {
	t.Parallel()

	if got, want := URL("a b&c=d"), "a+b%26c%3Dd"; got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

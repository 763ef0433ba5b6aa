package template

import (
	"encoding/base64"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/jacoelho/jsonmend/internal/casing"
	"github.com/jacoelho/jsonmend/internal/digest"
	"github.com/jacoelho/jsonmend/internal/escape"
)

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"uuidv4": generateUUIDv4,
		"uuid":   generateUUIDv4, // Alias for uuidv4

		"now":       timeNow,
		"timestamp": timeUnix,
		"iso8601":   timeISO8601,
		"rfc3339":   timeRFC3339,

		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"trim":       strings.TrimSpace,
		"title":      casing.Title,
		"camel":      casing.Camelize,
		"snake":      casing.Underscore,
		"capitalize": casing.Capitalize,

		"md5":    digest.MD5Hex,
		"sha1":   digest.SHA1Hex,
		"sha256": digest.SHA256Hex,
		"base64": base64Encode,

		"escapeHTML": escape.HTML,
		"escapeAttr": escape.Attribute,
		"escapeURL":  escape.URL,
	}
}

func generateUUIDv4() string {
	return uuid.New().String()
}

func timeNow() string {
	return time.Now().Format(time.RFC3339)
}

func timeUnix() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}

func timeISO8601() string {
	return time.Now().Format("2006-01-02T15:04:05Z07:00")
}

func timeRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

func base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func NewTemplate(name string) *template.Template {
	return template.New(name).Option("missingkey=error").Funcs(FuncMap())
}

// MustParse panics if the template cannot be parsed.
func MustParse(name, text string) *template.Template {
	return template.Must(NewTemplate(name).Parse(text))
}

func Apply(tmplStr string, data any) (string, error) {
	return ApplyWithName("", tmplStr, data)
}

// ApplyWithName is useful for debugging template errors.
func ApplyWithName(name, tmplStr string, data any) (string, error) {
	if tmplStr == "" {
		return "", nil
	}

	tmpl, err := NewTemplate(name).Parse(tmplStr)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

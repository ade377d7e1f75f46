package render

import (
	"bytes"
	"html/template"
	"log"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	markdownSanitizer = buildMarkdownSanitizer()
)

// 后台文本只允许基础排版标签，链接统一加 rel
func buildMarkdownSanitizer() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

// Markdown renders admin-authored markdown to sanitised HTML.
func Markdown(source string) template.HTML {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		log.Printf("[render] markdown conversion failed: %v", err)
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(markdownSanitizer.SanitizeBytes(buf.Bytes()))
}

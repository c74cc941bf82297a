// Package widget describes the renderable artifact associated with the
// news-impact tool: the static display template, its resource URI, and the
// host metadata that gates whether the template is rendered.
package widget

import (
	"os"
	"path/filepath"
)

// MIMEType identifies the widget template contents to the host.
const MIMEType = "text/html+skybridge"

// Descriptor identifies the widget template and the strings shown around a
// tool invocation.
type Descriptor struct {
	Identifier  string
	Title       string
	TemplateURI string
	Invoking    string
	Invoked     string
	HTMLPath    string
}

// Default returns the news-impact carousel descriptor. htmlPath overrides the
// template location when non-empty.
func Default(htmlPath string) Descriptor {
	if htmlPath == "" {
		htmlPath = filepath.Join("components", "news-impact", "index.html")
	}
	return Descriptor{
		Identifier:  "news-impact",
		Title:       "News Impact Carousel",
		TemplateURI: "ui://widget/news-impact.html",
		Invoking:    "Fetching News Impact…",
		Invoked:     "News Impact ready",
		HTMLPath:    htmlPath,
	}
}

// LoadHTML reads the widget template. A missing template degrades to a
// minimal fallback payload naming the missing path; it never fails the call.
func (d Descriptor) LoadHTML() string {
	path, err := filepath.Abs(d.HTMLPath)
	if err != nil {
		path = d.HTMLPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "<!doctype html><meta charset='utf-8'><title>" + d.Title + "</title>" +
			"<style>body{font-family:system-ui,Segoe UI,Roboto,Arial}</style>" +
			"<h2>" + d.Title + "</h2>" +
			"<p><em>index.html</em> not found at:<br><code>" + path + "</code></p>"
	}
	return string(data)
}

// ToolMeta is the advertise-time metadata. The widget is always declared
// inaccessible here; it is only enabled on a result that actually carries
// items, so a caller cannot infer renderability without executing a query.
func (d Descriptor) ToolMeta() map[string]any {
	return map[string]any{
		"openai/outputTemplate":          d.TemplateURI,
		"openai/toolInvocation/invoking": d.Invoking,
		"openai/toolInvocation/invoked":  d.Invoked,
		"openai/widgetAccessible":        false,
		"annotations": map[string]any{
			"readOnlyHint":    true,
			"destructiveHint": false,
			"openWorldHint":   false,
		},
	}
}

// ResultMeta is the render-enabled metadata attached only to non-empty
// results.
func (d Descriptor) ResultMeta() map[string]any {
	return map[string]any{
		"openai/widgetAccessible":        true,
		"openai/resultCanProduceWidget":  true,
		"openai/outputTemplate":          d.TemplateURI,
		"openai/toolInvocation/invoking": d.Invoking,
		"openai/toolInvocation/invoked":  d.Invoked,
	}
}

// ResourceMeta carries UI hints on the template resource itself.
func (d Descriptor) ResourceMeta() map[string]any {
	return map[string]any{
		"openai/widgetDescription":   "Scrollable News Impact carousel",
		"openai/widgetPrefersBorder": true,
		"openai/widgetCSP": map[string]any{
			"connect_domains":  []string{},
			"resource_domains": []string{},
		},
	}
}

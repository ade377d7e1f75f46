package view

import (
	"html/template"
	"strings"
)

// ServiceIconOption describes a selectable icon option for service cards.
type ServiceIconOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type serviceIconAsset struct {
	Key   string
	SVG   string
	Label string
}

const iconAttrs = `viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"`

var (
	serviceIconDefinitions = []serviceIconAsset{
		{Key: "heart", Label: "Coração", SVG: `<svg ` + iconAttrs + `><path d="M21 8.25c0-2.485-2.099-4.5-4.688-4.5-1.935 0-3.597 1.126-4.312 2.733-.715-1.607-2.377-2.733-4.313-2.733C5.1 3.75 3 5.765 3 8.25c0 7.22 9 12 9 12s9-4.78 9-12Z"/></svg>`},
		{Key: "video", Label: "Online", SVG: `<svg ` + iconAttrs + `><path d="m15.75 10.5 4.72-4.72a.75.75 0 0 1 1.28.53v11.38a.75.75 0 0 1-1.28.53l-4.72-4.72M4.5 18.75h9a2.25 2.25 0 0 0 2.25-2.25v-9a2.25 2.25 0 0 0-2.25-2.25h-9A2.25 2.25 0 0 0 2.25 7.5v9a2.25 2.25 0 0 0 2.25 2.25Z"/></svg>`},
		{Key: "users", Label: "Família", SVG: `<svg ` + iconAttrs + `><path d="M15 19.128a9.38 9.38 0 0 0 2.625.372 9.337 9.337 0 0 0 4.121-.952 4.125 4.125 0 0 0-7.533-2.493M15 19.128v-.003c0-1.113-.285-2.16-.786-3.07M15 19.128v.106A12.318 12.318 0 0 1 8.624 21c-2.331 0-4.512-.645-6.374-1.766l-.001-.109a6.375 6.375 0 0 1 11.964-3.07M12 6.375a3.375 3.375 0 1 1-6.75 0 3.375 3.375 0 0 1 6.75 0Zm8.25 2.25a2.625 2.625 0 1 1-5.25 0 2.625 2.625 0 0 1 5.25 0Z"/></svg>`},
		{Key: "chat", Label: "Conversa", SVG: `<svg ` + iconAttrs + `><path d="M20.25 8.511c.884.284 1.5 1.128 1.5 2.097v4.286c0 1.136-.847 2.1-1.98 2.193-.34.027-.68.052-1.02.072v3.091l-3-3c-1.354 0-2.694-.055-4.02-.163a2.115 2.115 0 0 1-.825-.242m9.345-8.334a2.126 2.126 0 0 0-.476-.095 48.64 48.64 0 0 0-8.048 0c-1.131.094-1.976 1.057-1.976 2.192v4.286c0 .837.46 1.58 1.155 1.951m9.345-8.334V6.637c0-1.621-1.152-3.026-2.76-3.235A48.455 48.455 0 0 0 11.25 3c-2.115 0-4.198.137-6.24.402-1.608.209-2.76 1.614-2.76 3.235v6.226c0 1.621 1.152 3.026 2.76 3.235.577.075 1.157.14 1.74.194V21l4.155-4.155"/></svg>`},
		{Key: "sun", Label: "Bem-estar", SVG: `<svg ` + iconAttrs + `><path d="M12 3v2.25m6.364.386-1.591 1.591M21 12h-2.25m-.386 6.364-1.591-1.591M12 18.75V21m-4.773-4.227-1.591 1.591M5.25 12H3m4.227-4.773L5.636 5.636M15.75 12a3.75 3.75 0 1 1-7.5 0 3.75 3.75 0 0 1 7.5 0Z"/></svg>`},
		{Key: "academic", Label: "Formação", SVG: `<svg ` + iconAttrs + `><path d="M4.26 10.147a60.438 60.438 0 0 0-.491 6.347A48.62 48.62 0 0 1 12 20.904a48.62 48.62 0 0 1 8.232-4.41 60.46 60.46 0 0 0-.491-6.347m-15.482 0a50.636 50.636 0 0 0-2.658-.813A59.906 59.906 0 0 1 12 3.493a59.903 59.903 0 0 1 10.399 5.84c-.896.248-1.783.52-2.658.814m-15.482 0A50.717 50.717 0 0 1 12 13.489a50.702 50.702 0 0 1 7.74-3.342M6.75 15a.75.75 0 1 0 0-1.5.75.75 0 0 0 0 1.5Zm0 0v-3.675A55.378 55.378 0 0 1 12 8.443m-7.007 11.55A5.981 5.981 0 0 0 6.75 15.75v-1.5"/></svg>`},
		{Key: "home", Label: "Presencial", SVG: `<svg ` + iconAttrs + `><path d="m2.25 12 8.954-8.955a1.126 1.126 0 0 1 1.591 0L21.75 12M4.5 9.75v10.125c0 .621.504 1.125 1.125 1.125H9.75v-4.875c0-.621.504-1.125 1.125-1.125h2.25c.621 0 1.125.504 1.125 1.125V21h4.125c.621 0 1.125-.504 1.125-1.125V9.75M8.25 21h8.25"/></svg>`},
	}
	defaultServiceIcon = serviceIconAsset{Key: "default", Label: "Padrão", SVG: `<svg ` + iconAttrs + `><path d="M9.813 15.904 9 18.75l-.813-2.846a4.5 4.5 0 0 0-3.09-3.09L2.25 12l2.846-.813a4.5 4.5 0 0 0 3.09-3.09L9 5.25l.813 2.846a4.5 4.5 0 0 0 3.09 3.09L15.75 12l-2.846.813a4.5 4.5 0 0 0-3.09 3.09Z"/></svg>`}
	serviceIconLookup  = func() map[string]serviceIconAsset {
		lookup := make(map[string]serviceIconAsset, len(serviceIconDefinitions)+1)
		for _, icon := range serviceIconDefinitions {
			lookup[icon.Key] = icon
		}
		lookup[defaultServiceIcon.Key] = defaultServiceIcon
		return lookup
	}()
)

// ServiceIconOptions exposes the selectable icon metadata for admin UI.
func ServiceIconOptions() []ServiceIconOption {
	options := make([]ServiceIconOption, 0, len(serviceIconDefinitions))
	for _, icon := range serviceIconDefinitions {
		options = append(options, ServiceIconOption{Key: icon.Key, Label: icon.Label})
	}
	return options
}

// ServiceIconSVG resolves the SVG markup for a given key, falling back to the default icon.
func ServiceIconSVG(key string) template.HTML {
	trimmed := strings.ToLower(strings.TrimSpace(key))
	if icon, ok := serviceIconLookup[trimmed]; ok && trimmed != "" {
		return template.HTML(icon.SVG)
	}
	return template.HTML(defaultServiceIcon.SVG)
}

// IsServiceIcon reports whether key names a known icon.
func IsServiceIcon(key string) bool {
	_, ok := serviceIconLookup[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

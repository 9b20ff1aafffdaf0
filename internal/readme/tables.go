// ABOUTME: Fixed lookup tables used when describing agents and plugin relationships
// ABOUTME: Absent keys resolve to a default or empty list, never an error
package readme

const defaultModelReasoning = "General purpose"

var modelReasoning = map[string]string{
	"sonnet": "Complex reasoning and architecture decisions",
	"haiku":  "Fast execution and deterministic tasks",
}

var similarPlugins = map[string][]string{
	"development":    {"backend-development", "frontend-mobile-development", "full-stack-orchestration"},
	"languages":      {"python-development", "javascript-typescript", "dotnet-development"},
	"infrastructure": {"kubernetes-operations", "cloud-infrastructure", "cicd-automation"},
}

var complementaryCategories = map[string][]string{
	"development": {"testing", "documentation", "quality"},
	"testing":     {"development", "quality", "workflows"},
	"security":    {"quality", "infrastructure", "testing"},
}

// ModelReasoning explains what an agent model is suited for.
func ModelReasoning(model string) string {
	if reason, ok := modelReasoning[model]; ok {
		return reason
	}
	return defaultModelReasoning
}

// SimilarPlugins returns up to three plugins in the same category, excluding
// the plugin itself. Unknown categories have none.
func SimilarPlugins(category, self string) []string {
	candidates := similarPlugins[category]
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	var similar []string
	for _, name := range candidates {
		if name != self {
			similar = append(similar, name)
		}
	}
	return similar
}

// ComplementaryCategories returns the categories whose plugins pair well with
// category. Unknown categories have none.
func ComplementaryCategories(category string) []string {
	return append([]string(nil), complementaryCategories[category]...)
}

// Package templates holds the methodology prompt catalog: one template
// per research tool, rendered with simple {{variable}} substitution.
package templates

import "strings"

// Template is one catalog entry. System primes the model; User is the
// request body with {{variable}} placeholders.
type Template struct {
	Key    string
	Title  string
	System string
	User   string
}

// Default is returned for any tool the catalog does not know. It is a
// real template, not a sentinel: rendering it always produces usable text.
var Default = Template{
	Key:   "general",
	Title: "General research guidance",
	System: `You are an experienced UX research mentor. Give practical,
step-by-step guidance that a researcher can act on immediately.`,
	User: `Help me plan the "{{tool}}" activity for the {{stage}} stage of a
{{framework}} project. Explain what the activity is for, list the concrete
steps to run it, and give one example of a good outcome.`,
}

// Catalog maps tool keys to their prompt templates.
var Catalog = map[string]Template{
	"user-interviews": {
		Key:   "user-interviews",
		Title: "User interviews",
		System: `You are a senior UX researcher coaching a colleague through
interview planning. Be concrete and avoid generic advice.`,
		User: `Create an interview guide for the {{stage}} stage of a
{{framework}} project. Include:
1. A short introduction script
2. Five open-ended questions about {{topic}}
3. Follow-up probes for each question
For example, show how to rephrase a leading question into a neutral one.`,
	},
	"surveys": {
		Key:   "surveys",
		Title: "Surveys",
		System: `You are a survey methodologist. Prioritize question clarity
and bias avoidance over length.`,
		User: `Design a survey for {{topic}} during the {{stage}} stage.
List the question blocks in order, define the scale for each closed
question, and explain how to pilot the survey before launch.`,
	},
	"personas": {
		Key:   "personas",
		Title: "Personas",
		System: `You are a UX strategist who builds evidence-based personas,
never demographic stereotypes.`,
		User: `Generate a persona outline from research about {{topic}}.
Define the goals, behaviors, and pain points sections, then give an
example persona narrative grounded in the {{framework}} framework.`,
	},
	"journey-maps": {
		Key:   "journey-maps",
		Title: "Journey maps",
		System: `You are a service designer experienced in journey mapping
workshops with mixed stakeholder groups.`,
		User: `Build a journey map structure for {{topic}}. List the stages
across the top, the lanes to fill in (actions, thoughts, emotions,
opportunities), and the workshop steps to populate it with a team.`,
	},
	"usability-tests": {
		Key:   "usability-tests",
		Title: "Usability tests",
		System: `You are a usability specialist. Focus on observable behavior
and task completion, not opinions.`,
		User: `Create a usability test plan for {{topic}}. Define the tasks,
the success criteria for each task, and the metrics to record. Include
an example task script with a realistic scenario.`,
	},
	"affinity-mapping": {
		Key:   "affinity-mapping",
		Title: "Affinity mapping",
		System: `You are a research synthesis facilitator. Emphasize working
bottom-up from observations to themes.`,
		User: `Explain how to run an affinity mapping session on findings
about {{topic}}. List the preparation steps, the clustering process, and
how to turn clusters into insight statements. What should the team do
when a note fits two clusters?`,
	},
}

// Lookup returns the template for key, or Default when the catalog has no
// entry for it.
func Lookup(key string) Template {
	if tpl, ok := Catalog[key]; ok {
		return tpl
	}
	return Default
}

// Keys lists the catalog's tool keys in no particular order.
func Keys() []string {
	keys := make([]string, 0, len(Catalog))
	for key := range Catalog {
		keys = append(keys, key)
	}
	return keys
}

// Render substitutes every {{name}} placeholder in the template's user
// body with vars[name]. Placeholders with no matching variable are left
// intact so missing context stays visible instead of vanishing.
func Render(tpl Template, vars map[string]string) string {
	rendered := tpl.User
	for name, value := range vars {
		rendered = strings.ReplaceAll(rendered, "{{"+name+"}}", value)
	}
	return rendered
}

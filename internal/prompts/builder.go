package prompts

// letterFile is the prompt file backing the letter workflow.
const letterFile = "letter.json"

// Overrides carries user-edited prompt texts. A non-empty field takes
// precedence over the corresponding built-in template.
type Overrides struct {
	System    string `json:"system,omitempty"`
	Initial   string `json:"initial,omitempty"`
	Refine    string `json:"refine,omitempty"`
	LatexFill string `json:"latex_fill,omitempty"`
}

// System returns the system prompt for letter drafting.
func System(o *Overrides) string {
	if o != nil && o.System != "" {
		return o.System
	}
	return MustGet(letterFile, "system")
}

// Initial builds the user prompt for drafting a new letter from a CV and a
// job posting. Both inputs are expected to be pre-truncated.
func Initial(o *Overrides, cvText, jobText string) string {
	tmpl := MustGet(letterFile, "initial_user")
	if o != nil && o.Initial != "" {
		tmpl = o.Initial
	}
	return Format(tmpl, map[string]string{
		"Job": jobText,
		"CV":  cvText,
	})
}

// Refine builds the user prompt for revising the current letter according to
// a change request.
func Refine(o *Overrides, letter, changeRequest, cvText, jobText string) string {
	if changeRequest == "" {
		changeRequest = MustGet(letterFile, "default_change_request")
	}
	tmpl := MustGet(letterFile, "refine_user")
	if o != nil && o.Refine != "" {
		tmpl = o.Refine
	}
	return Format(tmpl, map[string]string{
		"Letter":        letter,
		"ChangeRequest": changeRequest,
		"Job":           jobText,
		"CV":            cvText,
	})
}

// LatexFill builds the user prompt asking the model to splice letter, CV and
// header data into the LaTeX template. Sent without a system prompt; the
// instructions are self-contained.
func LatexFill(o *Overrides, letter, cvText, latexTemplate, jobText, headerHint string) string {
	if headerHint != "" {
		headerHint = "- Trage folgende Kopfdaten in die entsprechenden Befehle ein:\n" + headerHint
	}
	tmpl := MustGet(letterFile, "latex_fill_user")
	if o != nil && o.LatexFill != "" {
		tmpl = o.LatexFill
	}
	return Format(tmpl, map[string]string{
		"Letter":     letter,
		"CV":         cvText,
		"Template":   latexTemplate,
		"Job":        jobText,
		"HeaderHint": headerHint,
	})
}

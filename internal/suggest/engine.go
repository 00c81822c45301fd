package suggest

// Engine runs all registered rules against an AnalysisContext and collects
// the resulting quick wins.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the built-in rules registered in display
// order.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			UnderutilizedSkills,
			MissingImpactDocs,
			SkillGaps,
		},
	}
}

// Run executes the rules in registration order, which is also display order,
// and caps the result at MaxQuickWins. An empty log yields no wins: there is
// nothing to improve yet.
func (e *Engine) Run(ctx *AnalysisContext) []QuickWin {
	if len(ctx.Entries) == 0 {
		return nil
	}

	var all []QuickWin
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}
	if len(all) > MaxQuickWins {
		all = all[:MaxQuickWins]
	}
	return all
}

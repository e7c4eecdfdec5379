package app

import (
	"context"

	"econhub/domain/worldview"
	"econhub/internal"
)

// WorldviewResolution is a generated worldview plus the supplied values it
// could not use
type WorldviewResolution struct {
	Worldview    worldview.Worldview `json:"worldview" yaml:"worldview"`
	Unrecognized []worldview.Issue   `json:"unrecognized" yaml:"unrecognized"`
}

// WorldviewService generates worldviews and reports discarded input
type WorldviewService struct {
	logger *internal.Logger
}

// NewWorldviewService creates a worldview service
func NewWorldviewService(logger *internal.Logger) *WorldviewService {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &WorldviewService{logger: logger}
}

// Resolve generates the worldview for in. It never fails; unusable values
// are listed in Unrecognized with a suggestion when one is close.
func (s *WorldviewService) Resolve(ctx context.Context, in worldview.Input) *WorldviewResolution {
	issues := worldview.Issues(in)
	for _, issue := range issues {
		if issue.Suggestion != "" {
			s.logger.Debug("[Worldview] %s=%v is not an option, did you mean %q?", issue.Factor, issue.Value, issue.Suggestion)
			continue
		}
		s.logger.Debug("[Worldview] %s=%v is not an option, using %q", issue.Factor, issue.Value, worldview.DefaultChoice(issue.Factor))
	}
	if issues == nil {
		issues = []worldview.Issue{}
	}
	return &WorldviewResolution{
		Worldview:    worldview.Generate(in),
		Unrecognized: issues,
	}
}

// FactorDescriptor describes one factor and its options
type FactorDescriptor struct {
	ID      worldview.Factor `json:"id" yaml:"id"`
	Name    string           `json:"name" yaml:"name"`
	Options []string         `json:"options" yaml:"options"`
}

// Catalog lists every factor with its options in factor order
func (s *WorldviewService) Catalog() []FactorDescriptor {
	factors := worldview.Factors()
	out := make([]FactorDescriptor, 0, len(factors))
	for _, f := range factors {
		out = append(out, FactorDescriptor{ID: f, Name: f.Name(), Options: worldview.Options(f)})
	}
	return out
}

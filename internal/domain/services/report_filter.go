package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/complyops/complyops/internal/domain/entities"
)

// ControlEnv defines the variables available during filter expression evaluation.
type ControlEnv struct {
	Code   string   `expr:"code"`
	Title  string   `expr:"title"`
	Status string   `expr:"status"`
	Owner  string   `expr:"owner"`
	Tags   []string `expr:"tags"`
}

// ReportFilter narrows the control set shown in report drill-downs.
// It combines simple status/tag filters with an optional compiled
// expression for advanced selection.
type ReportFilter struct {
	includeStatuses map[string]bool
	includeTags     map[string]bool
	filterProgram   *vm.Program
}

// NewReportFilter initializes a new empty filter that matches everything.
func NewReportFilter() *ReportFilter {
	return &ReportFilter{
		includeStatuses: make(map[string]bool),
		includeTags:     make(map[string]bool),
	}
}

// WithStatuses includes only controls with these implementation statuses.
func (f *ReportFilter) WithStatuses(statuses []string) *ReportFilter {
	f.includeStatuses = toSet(statuses)
	return f
}

// WithTags includes only controls carrying any of these tags.
func (f *ReportFilter) WithTags(tags []string) *ReportFilter {
	f.includeTags = toSet(tags)
	return f
}

// WithExpression compiles and applies an expression for advanced filtering.
// Example: status == "not_implemented" && "access" in tags
func (f *ReportFilter) WithExpression(expression string) (*ReportFilter, error) {
	program, err := expr.Compile(expression,
		expr.Env(ControlEnv{}),
		expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	f.filterProgram = program
	return f, nil
}

// Matches evaluates whether a control passes the filter criteria.
func (f *ReportFilter) Matches(ctrl *entities.Control) (bool, error) {
	if len(f.includeStatuses) > 0 && !f.includeStatuses[string(ctrl.Status)] {
		return false, nil
	}

	if len(f.includeTags) > 0 {
		found := false
		for _, tag := range ctrl.Tags {
			if f.includeTags[tag] {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}

	if f.filterProgram != nil {
		env := ControlEnv{
			Code:   ctrl.Code,
			Title:  ctrl.Title,
			Status: string(ctrl.Status),
			Owner:  ctrl.Owner,
			Tags:   ctrl.Tags,
		}
		output, err := expr.Run(f.filterProgram, env)
		if err != nil {
			return false, fmt.Errorf("filter evaluation failed: %w", err)
		}
		match, ok := output.(bool)
		if !ok {
			return false, fmt.Errorf("filter expression did not return boolean: %v", output)
		}
		return match, nil
	}

	return true, nil
}

// toSet converts a slice to a map (set)
func toSet(slice []string) map[string]bool {
	s := make(map[string]bool, len(slice))
	for _, item := range slice {
		s[item] = true
	}
	return s
}

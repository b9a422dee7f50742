package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/complyops/complyops/internal/domain/values"
)

// Control represents a single requirement within a framework, carrying the
// implementation status that feeds compliance scoring.
//
// Entity Identity: ID is globally unique; Code is unique within a framework
// (uniqueness across the framework is a repository concern).
type Control struct {
	ID          values.RecordID             `json:"id"`
	FrameworkID values.RecordID             `json:"framework_id"`
	Code        string                      `json:"code"`
	Title       string                      `json:"title"`
	Description string                      `json:"description,omitempty"`
	Status      values.ImplementationStatus `json:"status"`
	Owner       string                      `json:"owner,omitempty"`
	Tags        []string                    `json:"tags,omitempty"`
	Active      bool                        `json:"active"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// NewControl creates a control under a framework, starting as not implemented.
func NewControl(frameworkID values.RecordID, code, title string) (*Control, error) {
	if frameworkID.IsZero() {
		return nil, fmt.Errorf("control framework ID is required")
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("control code is required")
	}
	if len(code) > 50 {
		return nil, fmt.Errorf("control code exceeds 50 characters: %d", len(code))
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("control title is required")
	}
	if len(title) > 300 {
		return nil, fmt.Errorf("control title exceeds 300 characters: %d", len(title))
	}

	now := time.Now().UTC()
	return &Control{
		ID:          values.NewRecordID(),
		FrameworkID: frameworkID,
		Code:        code,
		Title:       title,
		Status:      values.StatusNotImplemented,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetStatus reassigns the implementation status. Any status may replace any
// other at any time; unlike policy/audit/finding lifecycles there is no
// transition guard here.
func (c *Control) SetStatus(status values.ImplementationStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// HasTag returns true if the control carries the given tag
func (c *Control) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

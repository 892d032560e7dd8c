package kir

import "fmt"

// ValidationError describes one consistency violation found by Validate.
type ValidationError struct {
	ComponentID uint32
	Message     string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("component %d: %s", e.ComponentID, e.Message)
}

// Validate checks tree-wide invariants: id uniqueness, parent back-pointer
// consistency, and gradient stop ordering. It returns every violation found
// rather than stopping at the first.
func Validate(root *Component) []ValidationError {
	var errs []ValidationError
	seen := make(map[uint32]uint32)

	root.Walk(func(c *Component) bool {
		if prev, ok := seen[c.ID]; ok {
			errs = append(errs, ValidationError{
				ComponentID: c.ID,
				Message:     fmt.Sprintf("duplicate id (first used by component %d)", prev),
			})
		} else {
			seen[c.ID] = c.ID
		}

		for _, ch := range c.Children {
			if ch.parent != c {
				errs = append(errs, ValidationError{
					ComponentID: ch.ID,
					Message:     "parent link does not point at holding component",
				})
			}
		}

		if c.Style != nil {
			errs = append(errs, validateColor(c.ID, "background", c.Style.Background)...)
			errs = append(errs, validateColor(c.ID, "border", c.Style.Border.Color)...)
			errs = append(errs, validateColor(c.ID, "font", c.Style.Font.Color)...)
		}
		return true
	})

	return errs
}

func validateColor(id uint32, field string, c Color) []ValidationError {
	if c.Kind != ColorGradient || c.Gradient == nil {
		return nil
	}
	var errs []ValidationError
	g := c.Gradient
	if len(g.Stops) > MaxGradientStops {
		errs = append(errs, ValidationError{
			ComponentID: id,
			Message:     fmt.Sprintf("%s gradient has %d stops, max %d", field, len(g.Stops), MaxGradientStops),
		})
	}
	prev := 0.0
	for i, s := range g.Stops {
		if s.Position < 0 || s.Position > 1 {
			errs = append(errs, ValidationError{
				ComponentID: id,
				Message:     fmt.Sprintf("%s gradient stop %d position %g outside [0,1]", field, i, s.Position),
			})
		}
		if s.Position < prev {
			errs = append(errs, ValidationError{
				ComponentID: id,
				Message:     fmt.Sprintf("%s gradient stop %d position %g decreases", field, i, s.Position),
			})
		}
		prev = s.Position
	}
	return errs
}

package validation

// Rule checks one business rule against input and returns nil or a *Failure.
type Rule[T any] func(input T) error

// Pipeline is an ordered list of rules.
type Pipeline[T any] []Rule[T]

// NewPipeline builds a pipeline from rules in evaluation order.
func NewPipeline[T any](rules ...Rule[T]) Pipeline[T] {
	return rules
}

// Then returns a new pipeline with rules appended after p's rules.
func (p Pipeline[T]) Then(rules ...Rule[T]) Pipeline[T] {
	out := make(Pipeline[T], 0, len(p)+len(rules))
	out = append(out, p...)
	return append(out, rules...)
}

// Run evaluates the rules in order and stops at the first failure.
func (p Pipeline[T]) Run(input T) error {
	for _, rule := range p {
		if err := rule(input); err != nil {
			return err
		}
	}
	return nil
}

// Required returns a MissingField failure when value is empty.
func Required(value, field, message string) error {
	if value == "" {
		return NewMissingField(field, message)
	}
	return nil
}

// MatchingID returns an IDMismatch failure when payloadID is set and differs
// from routeID. An empty payload id is accepted.
func MatchingID(payloadID, routeID, message string) error {
	if payloadID != "" && payloadID != routeID {
		return NewIDMismatch(payloadID, routeID, message)
	}
	return nil
}

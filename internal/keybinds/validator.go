package keybinds

import (
	"fmt"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys maps keys that must keep their global action
	reservedKeys map[string]Action

	// requiredActions must stay reachable from some context
	requiredActions []Action
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitForce, // Force quit should always work
		},
		requiredActions: []Action{ActionSubmit, ActionFocusNext},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkKeysAndActions(registry, result)
	v.checkReservedKeys(registry, result)
	v.checkRequiredActions(registry, result)
	v.checkShadowing(registry, result)

	return result
}

// checkKeysAndActions rejects empty keys and actions hcp cannot dispatch
func (v *Validator) checkKeysAndActions(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		for key, action := range bindings {
			if err := ValidateKey(key); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     key,
					Message: err.Error(),
				})
			}
			if !IsKnownAction(action) {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("unknown action %q", action),
				})
			}
		}
	}
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for key, want := range v.reservedKeys {
		if action, ok := registry.bindings[ContextGlobal][key]; ok && action != want {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:    "warning",
				Context: ContextGlobal,
				Key:     key,
				Message: "reserved key rebound (may cause issues)",
			})
		}
	}
}

// checkRequiredActions makes sure the app stays usable
func (v *Validator) checkRequiredActions(registry *Registry, result *ValidationResult) {
	for _, action := range v.requiredActions {
		if len(registry.GetBinding(ContextGlobal, action)) == 0 {
			result.Errors = append(result.Errors, ValidationError{
				Type:    "invalid",
				Context: ContextGlobal,
				Key:     "",
				Message: fmt.Sprintf("action %q has no key", action),
			})
		}
	}
}

// checkShadowing warns about pane bindings hidden by a global binding.
// Global bindings are matched first, so the pane binding never fires.
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	for _, context := range PaneContexts() {
		for key, action := range registry.bindings[context] {
			globalAction, ok := registry.Lookup(ContextGlobal, key)
			if !ok || action == ActionNoOp {
				continue
			}
			result.Warnings = append(result.Warnings, ValidationError{
				Type:    "warning",
				Context: context,
				Key:     key,
				Message: fmt.Sprintf("shadowed by global binding (%s hides %s)", globalAction, action),
			})
		}
	}
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	// Check for valid modifier combinations
	for _, mod := range []string{"ctrl+", "alt+", "shift+"} {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

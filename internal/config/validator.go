package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/popmenu/internal/model"
	apperrors "github.com/alexisbeaulieu97/popmenu/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the definition.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Menus))
	for i, menu := range cfg.Menus {
		if _, exists := seen[menu.ID]; exists {
			return apperrors.NewValidationError(fieldForMenu(i, "id"), fmt.Sprintf("duplicate menu id %q", menu.ID), nil)
		}
		seen[menu.ID] = i

		if err := ValidateMenu(i, menu); err != nil {
			return err
		}
	}

	return nil
}

// ValidateMenu checks the rules a single menu must satisfy beyond its schema.
func ValidateMenu(index int, menu Menu) error {
	v := validatorInstance()
	if err := v.Struct(menu); err != nil {
		return convertValidationError(err)
	}

	mode, _ := model.ParseMode(menu.Mode)
	explicitFlat := strings.TrimSpace(menu.Mode) != "" && mode == model.ModeFlat

	switch {
	case menu.Hierarchy == nil && mode != model.ModeFlat:
		return apperrors.NewValidationError(fieldForMenu(index, "hierarchy"), fmt.Sprintf("hierarchy is required in %s mode", mode), nil)
	case menu.Hierarchy != nil && explicitFlat:
		return apperrors.NewValidationError(fieldForMenu(index, "mode"), "flat mode cannot present hierarchy options", nil)
	case menu.Hierarchy != nil && len(menu.Items) > 0:
		return apperrors.NewValidationError(fieldForMenu(index, "items"), "items and hierarchy are mutually exclusive", nil)
	case menu.Hierarchy != nil && menu.MultiSelect:
		return apperrors.NewValidationError(fieldForMenu(index, "multi_select"), "multi-select is only available for flat menus", nil)
	case len(menu.Selected) > 0 && !menu.MultiSelect:
		return apperrors.NewValidationError(fieldForMenu(index, "selected"), "selected requires multi_select", nil)
	}

	if menu.Hierarchy != nil {
		if err := v.Struct(menu.Hierarchy); err != nil {
			return convertValidationError(err)
		}
		return nil
	}

	if err := validateItems(fieldForMenu(index, "items"), menu.Items); err != nil {
		return err
	}

	for _, id := range menu.Selected {
		if !hasLeaf(menu.Items, id) {
			return apperrors.NewValidationError(fieldForMenu(index, "selected"), fmt.Sprintf("references unknown item %q", id), nil)
		}
	}

	return nil
}

func validateItems(field string, items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		itemField := fmt.Sprintf("%s[%d]", field, i)

		if item.Divider {
			if item.Label != "" || item.Icon != "" || item.Disabled || len(item.Children) > 0 {
				return apperrors.NewValidationError(itemField, "dividers cannot carry a label, icon, disabled flag or children", nil)
			}
			continue
		}

		if strings.TrimSpace(item.Label) == "" {
			return apperrors.NewValidationError(itemField+".label", "label is required", nil)
		}
		if _, exists := seen[item.ID]; exists {
			return apperrors.NewValidationError(itemField+".id", fmt.Sprintf("duplicate sibling id %q", item.ID), nil)
		}
		seen[item.ID] = struct{}{}

		if err := validateItems(itemField+".children", item.Children); err != nil {
			return err
		}
	}
	return nil
}

func hasLeaf(items []Item, id string) bool {
	for _, item := range items {
		if item.Divider {
			continue
		}
		if len(item.Children) > 0 {
			if hasLeaf(item.Children, id) {
				return true
			}
			continue
		}
		if item.ID == id {
			return true
		}
	}
	return false
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForMenu(index int, field string) string {
	return fmt.Sprintf("menus[%d].%s", index, field)
}

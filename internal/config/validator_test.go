package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/popmenu/pkg/errors"
)

func baseConfig(menus ...Menu) *Config {
	return &Config{Version: "1.0", Name: "demo", Menus: menus}
}

func flatMenu(items ...Item) Menu {
	return Menu{ID: "file", Label: "File", Items: items}
}

func catalogHierarchy() *Hierarchy {
	return &Hierarchy{
		ChildKeys:  []string{"items"},
		LabelField: "label",
		ValueField: "value",
		Options:    []any{map[string]any{"label": "Laptop", "value": "laptop"}},
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	gap := 40

	cases := []struct {
		name    string
		cfg     *Config
		field   string
		message string
	}{
		{
			name: "valid flat menu",
			cfg:  baseConfig(flatMenu(Item{ID: "new", Label: "New"}, Item{ID: "sep", Divider: true})),
		},
		{
			name: "valid nested hierarchy without explicit mode",
			cfg:  baseConfig(Menu{ID: "catalog", Label: "Catalog", Hierarchy: catalogHierarchy()}),
		},
		{
			name:    "nil config",
			cfg:     nil,
			field:   "config",
			message: "nil",
		},
		{
			name:    "duplicate menu ids",
			cfg:     baseConfig(flatMenu(), flatMenu()),
			field:   "menus[1].id",
			message: "duplicate menu id",
		},
		{
			name:    "menu id pattern",
			cfg:     baseConfig(Menu{ID: "File Menu", Label: "File"}),
			message: "menu_id",
		},
		{
			name:    "unknown mode",
			cfg:     baseConfig(Menu{ID: "m", Label: "M", Mode: "spiral"}),
			message: "menu_mode",
		},
		{
			name:    "unknown align",
			cfg:     baseConfig(Menu{ID: "m", Label: "M", Align: "diagonal"}),
			message: "menu_align",
		},
		{
			name:    "unknown size",
			cfg:     baseConfig(Menu{ID: "m", Label: "M", Size: "xxl"}),
			message: "menu_size",
		},
		{
			name:    "unknown theme",
			cfg:     &Config{Version: "1.0", Name: "demo", Theme: "neon", Menus: []Menu{flatMenu()}},
			message: "theme_name",
		},
		{
			name:    "gap out of range",
			cfg:     baseConfig(Menu{ID: "m", Label: "M", Gap: &gap}),
			message: "gap",
		},
		{
			name:    "cascade requires hierarchy",
			cfg:     baseConfig(Menu{ID: "m", Label: "M", Mode: "cascade"}),
			field:   "menus[0].hierarchy",
			message: "cascade",
		},
		{
			name:    "flat mode rejects hierarchy",
			cfg:     baseConfig(Menu{ID: "m", Label: "M", Mode: "flat", Hierarchy: catalogHierarchy()}),
			field:   "menus[0].mode",
			message: "flat mode",
		},
		{
			name: "items and hierarchy together",
			cfg: baseConfig(Menu{
				ID: "m", Label: "M", Hierarchy: catalogHierarchy(),
				Items: []Item{{ID: "x", Label: "X"}},
			}),
			field:   "menus[0].items",
			message: "mutually exclusive",
		},
		{
			name:    "multi-select with hierarchy",
			cfg:     baseConfig(Menu{ID: "m", Label: "M", MultiSelect: true, Hierarchy: catalogHierarchy()}),
			field:   "menus[0].multi_select",
			message: "flat menus",
		},
		{
			name:    "selected without multi-select",
			cfg:     baseConfig(Menu{ID: "m", Label: "M", Selected: []string{"x"}, Items: []Item{{ID: "x", Label: "X"}}}),
			field:   "menus[0].selected",
			message: "requires multi_select",
		},
		{
			name:    "selected references unknown item",
			cfg:     baseConfig(Menu{ID: "m", Label: "M", MultiSelect: true, Selected: []string{"y"}, Items: []Item{{ID: "x", Label: "X"}}}),
			field:   "menus[0].selected",
			message: `"y"`,
		},
		{
			name:    "duplicate sibling ids",
			cfg:     baseConfig(flatMenu(Item{ID: "a", Label: "A"}, Item{ID: "a", Label: "Again"})),
			field:   "menus[0].items[1].id",
			message: "duplicate sibling id",
		},
		{
			name: "duplicate ids inside children",
			cfg: baseConfig(flatMenu(Item{ID: "recent", Label: "Recent", Children: []Item{
				{ID: "a", Label: "A"}, {ID: "a", Label: "A"},
			}})),
			field:   "menus[0].items[0].children[1].id",
			message: "duplicate sibling id",
		},
		{
			name:    "same id under different parents is fine",
			cfg:     baseConfig(flatMenu(Item{ID: "a", Label: "A", Children: []Item{{ID: "a", Label: "A"}}})),
			message: "",
		},
		{
			name:    "label required",
			cfg:     baseConfig(flatMenu(Item{ID: "a"})),
			field:   "menus[0].items[0].label",
			message: "label is required",
		},
		{
			name:    "divider with label",
			cfg:     baseConfig(flatMenu(Item{ID: "sep", Divider: true, Label: "Oops"})),
			field:   "menus[0].items[0]",
			message: "dividers",
		},
		{
			name: "hierarchy without child keys",
			cfg: baseConfig(Menu{ID: "m", Label: "M", Hierarchy: &Hierarchy{
				LabelField: "label", ValueField: "value", Options: []any{"x"},
			}}),
			message: "childkeys",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(tc.cfg)
			if tc.message == "" && tc.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			if tc.field != "" {
				require.Equal(t, tc.field, validationErr.Field)
			}
			require.Contains(t, validationErr.Message, tc.message)
		})
	}
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
	require.NoError(t, GetValidator().Var("cascade", "menu_mode"))
	require.Error(t, GetValidator().Var("spiral", "menu_mode"))
}

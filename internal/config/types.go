package config

// Config is a menu definition document.
type Config struct {
	Version     string `yaml:"version" validate:"required,semver"`
	Name        string `yaml:"name" validate:"required,min=1,max=100"`
	Description string `yaml:"description,omitempty"`
	Theme       string `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	Menus       []Menu `yaml:"menus" validate:"required,min=1,dive"`
}

// Menu defines one trigger and the popup it opens.
type Menu struct {
	ID          string   `yaml:"id" validate:"required,menu_id"`
	Label       string   `yaml:"label" validate:"required,max=40"`
	Mode        string   `yaml:"mode,omitempty" validate:"omitempty,menu_mode"`
	Align       string   `yaml:"align,omitempty" validate:"omitempty,menu_align"`
	Size        string   `yaml:"size,omitempty" validate:"omitempty,menu_size"`
	MultiSelect bool     `yaml:"multi_select,omitempty"`
	Selected    []string `yaml:"selected,omitempty"`
	MaxHeight   int      `yaml:"max_height,omitempty" validate:"omitempty,min=3"`
	MinWidth    int      `yaml:"min_width,omitempty" validate:"omitempty,min=1,max=200"`
	Gap         *int     `yaml:"gap,omitempty" validate:"omitempty,min=0,max=32"`
	Inset       *int     `yaml:"inset,omitempty" validate:"omitempty,min=0,max=32"`
	// Disabled keeps the trigger visible but never opens its menu.
	Disabled    bool     `yaml:"disabled,omitempty"`

	Items     []Item     `yaml:"items,omitempty" validate:"omitempty,dive"`
	Hierarchy *Hierarchy `yaml:"hierarchy,omitempty"`
}

// Item is one row of a flat menu.
type Item struct {
	ID       string `yaml:"id" validate:"required,max=64"`
	Label    string `yaml:"label,omitempty"`
	Icon     string `yaml:"icon,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Divider  bool   `yaml:"divider,omitempty"`
	Children []Item `yaml:"children,omitempty" validate:"omitempty,dive"`
}

// Hierarchy describes arbitrary nested option data and how to read it.
type Hierarchy struct {
	ChildKeys     []string `yaml:"child_keys" validate:"required,min=1,dive,required"`
	LabelField    string   `yaml:"label_field" validate:"required"`
	ValueField    string   `yaml:"value_field" validate:"required"`
	DisabledField string   `yaml:"disabled_field,omitempty"`
	Value         any      `yaml:"value,omitempty"`
	Options       []any    `yaml:"options" validate:"required,min=1"`
}

// IsHierarchy reports whether the menu presents hierarchy options.
func (m Menu) IsHierarchy() bool {
	return m.Hierarchy != nil
}

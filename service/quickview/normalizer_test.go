package quickview

import "testing"

func TestClassifyOption(t *testing.T) {
	tests := []struct {
		name string
		want OptionRole
	}{
		{"Color", RoleColor},
		{"color", RoleColor},
		{"COLOUR", RoleColor},
		{" Colour ", RoleColor},
		{"Size", RoleSize},
		{"SIZE", RoleSize},
		{"Material", RoleOther},
		{"Shoe size", RoleOther},
		{"Colors", RoleOther},
		{"", RoleOther},
	}
	for _, tt := range tests {
		if got := ClassifyOption(tt.name); got != tt.want {
			t.Errorf("ClassifyOption(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNormalize_ColorAndSize(t *testing.T) {
	controls := Normalize(teeProduct().Options)
	if len(controls) != 2 {
		t.Fatalf("len(controls) = %d, want 2", len(controls))
	}

	color := controls[0]
	if color.Role != RoleColor || color.Position != 0 || !color.Rendered {
		t.Errorf("color control = %+v", color)
	}
	if color.Default != "Red" {
		t.Errorf("color default = %q, want Red", color.Default)
	}
	if color.Values[1].Value != "Black" || color.Values[1].Swatch != "black" {
		t.Errorf("color value[1] = %+v, want Black/black", color.Values[1])
	}

	size := controls[1]
	if size.Role != RoleSize || size.Position != 1 || !size.Rendered {
		t.Errorf("size control = %+v", size)
	}
	if size.Default != "" {
		t.Errorf("size default = %q, want none", size.Default)
	}
	for i, v := range size.Values {
		if v.Value != sizes[i] || v.Swatch != "" {
			t.Errorf("size value[%d] = %+v", i, v)
		}
	}
}

func TestNormalize_OtherIsHiddenWithDefault(t *testing.T) {
	controls := Normalize([]ProductOption{
		{Position: 0, Name: "Size", Values: []string{"S", "M"}},
		{Position: 1, Name: "Material", Values: []string{"Wool", "Cotton"}},
	})
	other := controls[1]
	if other.Role != RoleOther {
		t.Fatalf("role = %v, want other", other.Role)
	}
	if other.Rendered {
		t.Error("other option should not be rendered")
	}
	if other.Default != "Wool" {
		t.Errorf("other default = %q, want Wool", other.Default)
	}
}

func TestOptionRole_String(t *testing.T) {
	for role, want := range map[OptionRole]string{RoleColor: "color", RoleSize: "size", RoleOther: "other"} {
		if role.String() != want {
			t.Errorf("%d.String() = %q, want %q", role, role.String(), want)
		}
		text, _ := role.MarshalText()
		if string(text) != want {
			t.Errorf("MarshalText = %q, want %q", text, want)
		}
	}
}

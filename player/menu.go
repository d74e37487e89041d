package player

import (
	"fmt"
	"slices"
)

type MenuGroup struct {
	Name    string
	Options []string
	Active  int
}

// Menu is the settings popup. Each group has exactly one active option.
type Menu struct {
	Open   bool
	Groups []MenuGroup

	// called after an option is picked
	OnSelect func(group, value string)
}

func NewMenu() *Menu {
	m := new(Menu)

	m.Groups = []MenuGroup{
		{
			Name:    "speed",
			Options: []string{"0.5", "1", "1.5", "2"},
			Active:  1,
		},
		{
			Name:    "quality",
			Options: []string{"Auto", "1080p", "720p", "480p"},
			Active:  0,
		},
	}

	return m
}

func (m *Menu) Toggle() {
	m.Open = !m.Open
}

func (m *Menu) Close() {
	m.Open = false
}

func (m *Menu) group(name string) (*MenuGroup, error) {
	i := slices.IndexFunc(m.Groups, func(g MenuGroup) bool {
		return g.Name == name
	})
	if i < 0 {
		return nil, fmt.Errorf("no settings group %q", name)
	}
	return &m.Groups[i], nil
}

// Select makes value the active option of group.
func (m *Menu) Select(group, value string) error {
	g, err := m.group(group)
	if err != nil {
		return err
	}

	i := slices.Index(g.Options, value)
	if i < 0 {
		return fmt.Errorf("no option %q in settings group %q", value, group)
	}

	g.Active = i

	if m.OnSelect != nil {
		m.OnSelect(group, value)
	}

	return nil
}

// Active returns the active option of group.
func (m *Menu) Active(group string) (string, error) {
	g, err := m.group(group)
	if err != nil {
		return "", err
	}
	return g.Options[g.Active], nil
}

package dashboard

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Menu   key.Binding
	More   key.Binding
	All    key.Binding
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Reset  key.Binding
	Copy   key.Binding
	Search key.Binding
	Export key.Binding
}

var keys = keyMap{
	Menu:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	More:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "more courses")),
	All:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "all courses")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new session")),
	Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
	Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
}

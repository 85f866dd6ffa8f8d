package entity

// ContentTab is one tab of a tabbed panel.
type ContentTab struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Content is what a provider mounts into a panel body. It is either inline
// markup or a set of tabs; the desk never interprets either.
type Content struct {
	Markup string
	Tabs   []ContentTab
}

// IsTabbed reports whether the content is a tab set.
func (c Content) IsTabbed() bool {
	return len(c.Tabs) > 0
}

// TabCount returns the number of tabs, zero for inline content.
func (c Content) TabCount() int {
	return len(c.Tabs)
}

// Body returns the markup shown for the given tab, or the inline markup.
func (c Content) Body(activeTab int) string {
	if !c.IsTabbed() {
		return c.Markup
	}
	if activeTab < 0 || activeTab >= len(c.Tabs) {
		activeTab = 0
	}
	return c.Tabs[activeTab].Content
}

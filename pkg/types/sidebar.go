package types

// SidebarItem is one row of the rendered category tree. A nil DataId marks a
// placeholder, a configured taxonomy slot with no matching category in the
// feed. Placeholders are rendered but not interactive, so the sidebar keeps
// its shape even when the catalog has gaps.
type SidebarItem struct {
	Id       string        `json:"id"`
	Name     string        `json:"name"`
	Slug     string        `json:"slug,omitempty"`
	DataId   *uint         `json:"dataId,omitempty"`
	Count    int           `json:"count,omitempty"`
	Children []SidebarItem `json:"children,omitempty"`
}

func (i SidebarItem) IsPlaceholder() bool {
	return i.DataId == nil
}

type SidebarSection struct {
	Key   string        `json:"key"`
	Title string        `json:"title"`
	Items []SidebarItem `json:"items"`
}
